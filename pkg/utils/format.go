package utils

import (
	"cdn77cli/pkg/exitcode"
	"encoding/json"
	"fmt"
	"time"
)

// PrintJSON pretty-prints a decoded JSON value to stdout. Statistics
// endpoints return open-ended schemas the client does not model, so their
// payloads pass through here verbatim.
func PrintJSON(data any) error {
	out, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return exitcode.Unexpectedf("Failed to serialize response, e=%v", err)
	}
	fmt.Println(string(out))
	return nil
}

// FormatEpochDate renders epoch seconds as a UTC calendar date.
func FormatEpochDate(seconds int64) string {
	return time.Unix(seconds, 0).UTC().Format("2006-01-02")
}
