package cmd

import (
	"fmt"
	"time"

	"rosterctl/pkg/config"
	"rosterctl/pkg/exporter"
	"rosterctl/pkg/roster"
	"rosterctl/pkg/source"
	"rosterctl/pkg/tui"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export <file|url>",
	Short: "Directly export a parsed roster without reviewing it",
	Long: `Export the roster recovered from an export to an ICS calendar, JSON, YAML or a
CSV class list without using the interactive review.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		output, _ := cmd.Flags().GetString("output")
		format, _ := cmd.Flags().GetString("format")
		noCache, _ := cmd.Flags().GetBool("no-cache")

		if format == "" {
			format = cfg.DefaultFormat
		}
		if format == "" {
			format = "ics"
		}

		if cmd.Flags().Changed("term-start") {
			cfg.TermStart, _ = cmd.Flags().GetString("term-start")
		}
		if cmd.Flags().Changed("weeks") {
			cfg.TermWeeks, _ = cmd.Flags().GetInt("weeks")
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		start, err := cfg.TermStartDate(time.Now())
		if err != nil {
			return err
		}
		term := exporter.Term{Start: start, Weeks: cfg.Weeks()}

		client := source.NewClient()
		r, err := tui.ParseWithSpinner(fmt.Sprintf("Parsing %s...", args[0]), func() (*roster.Roster, error) {
			return client.Parse(cmd.Context(), args[0], !noCache)
		})
		if err != nil {
			return fmt.Errorf("failed to parse export: %w", err)
		}

		if output == "" {
			output = fmt.Sprintf("%s-%s.%s", r.CourseCode, r.Section, format)
		}

		if err := exporter.WriteFile(output, format, r, term); err != nil {
			return err
		}

		fmt.Printf("Successfully exported %s %s (%d students, %d meeting times) to %s\n",
			r.CourseCode, r.Section, len(r.Students), len(r.Schedules), output)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringP("output", "o", "", "Output file path (default COURSE-SECTION.<format>)")
	exportCmd.Flags().StringP("format", "f", "", "Output format: ics, json, yaml or csv (default from config, else ics)")
	exportCmd.Flags().String("term-start", "", "First day of classes, YYYY-MM-DD (overrides config)")
	exportCmd.Flags().Int("weeks", 0, "Number of weeks the class meets (overrides config)")
	exportCmd.Flags().Bool("no-cache", false, "Always parse, ignoring cached results")
}
