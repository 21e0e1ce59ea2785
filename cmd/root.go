package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands.
func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ratenorm",
		Short: "Normalize auto loan rate terms to industry-standard durations",
		Long: `ratenorm maps scraped auto loan terms to the nearest industry-standard
term (36, 48, 60, 72 or 84 months) and labels each rate record with its
normalized term range.

Configuration comes from RATENORM_* environment variables
(RATENORM_LOG_LEVEL, RATENORM_REDIS_ADDR, RATENORM_SERVER_ADDR, ...).

Quick start:
  ratenorm info 48 66 75 84              # Show how terms are normalized
  ratenorm normalize rates.json          # Normalize a JSON array of records
  ratenorm serve                         # Start the HTTP API`,
		SilenceUsage: true,
	}

	cmd.AddCommand(serveCommand())
	cmd.AddCommand(normalizeCommand())
	cmd.AddCommand(infoCommand())
	cmd.AddCommand(termsCommand())

	return cmd
}

// Execute runs the root command. It is called by main.main().
func Execute() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
