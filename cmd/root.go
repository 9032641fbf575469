package cmd

import (
	"fmt"
	"os"

	"rosterctl/pkg/logger"

	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "rosterctl",
	Short: "Turn registrar class list exports into clean rosters and calendars",
	Long: `rosterctl reads the section reports exported by the registrar (CSV, text
or HTML tables), recovers the course, schedule and class list, and lets you
review the result before exporting it as ICS, JSON, YAML or CSV.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := logger.WarnLevel
		if verbose {
			level = logger.DebugLevel
		}
		logger.Configure(logger.Config{Level: level, Pretty: true})
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log parser decisions to stderr")
}
