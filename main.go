package main

import (
	"cdn77cli/cmd"
	"cdn77cli/config"
	"cdn77cli/pkg/exitcode"
	"fmt"
	"os"
)

// main is the only place the process exits: command handlers hand errors
// back up and the exit code is derived from the error exactly once.
func main() {
	cnf, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to load configuration:", err)
		os.Exit(exitcode.InvalidInput)
	}

	if err := cmd.Execute(cnf); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitcode.From(err))
	}
}
