package cmd

import (
	"cdn77cli/config"
	"cdn77cli/internal/cdnclient"
	"cdn77cli/pkg/exitcode"
	"context"
	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"log/slog"
	"os"
	"time"
)

var (
	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "cdn77cli",
	Short: "Command line client for the CDN77 API",
	Long: `cdn77cli is a command-line client for the CDN77 v3 REST API.
It covers the credit balance, purge and prefetch jobs, CDN resources,
statistics and storage locations.
The API token is read from the CDN77_API_TOKEN environment variable
(or a .env file) and can be overridden with --api-token`,
	Version:       cdnclient.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		initLogger(isVerbose(cmd))

		if token, _ := cmd.Flags().GetString("api-token"); token != "" {
			cfg.APIToken = token
		}
		if cfg.APIToken == "" {
			return exitcode.Invalid("No API token detected, please specify one either in the arguments or via env")
		}
		if seconds, _ := cmd.Flags().GetInt("timeout"); seconds > 0 {
			cfg.Timeout = time.Duration(seconds) * time.Second
		}
		return nil
	},
}

func Execute(config *config.Config) error {
	cfg = config
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(billingCmd)
	rootCmd.AddCommand(jobsCmd)
	rootCmd.AddCommand(resourcesCmd)
	rootCmd.AddCommand(statisticsCmd)
	rootCmd.AddCommand(storageCmd)

	rootCmd.PersistentFlags().StringP("api-token", "a", "", "Either provide the token (dangerous!) or create an environment variable CDN77_API_TOKEN (preferred)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().Int("timeout", int(config.DefaultTimeout/time.Second), "Request timeout in seconds")
}

// initLogger wires slog before any command logic runs. Commands stay quiet
// unless --verbose opens up the debug traces of API calls.
func initLogger(verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	var handler slog.Handler
	if isatty.IsTerminal(os.Stderr.Fd()) {
		handler = tint.NewHandler(os.Stderr, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
		})
	} else {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	}
	slog.SetDefault(slog.New(handler))
}

func isVerbose(cmd *cobra.Command) bool {
	verbose, _ := cmd.Flags().GetBool("verbose")
	return verbose
}

func apiClient() *cdnclient.Client {
	return cdnclient.New(cfg)
}

// commandContext caps a single command invocation at the configured timeout.
func commandContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), cfg.Timeout)
}
