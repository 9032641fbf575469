package cmd

import (
	"fmt"

	"rosterctl/pkg/config"
	"rosterctl/pkg/tui"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage rosterctl configuration",
	Long:  "View or edit your local configuration settings (term dates, timezone, output defaults).",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		flags := cmd.Flags()
		changed := false
		for _, name := range []string{"term-start", "weeks", "timezone", "output-dir", "format"} {
			changed = changed || flags.Changed(name)
		}
		if !changed {
			// No settings given, launch the interactive TUI flow
			return tui.RunConfigTUI()
		}

		if flags.Changed("term-start") {
			cfg.TermStart, _ = flags.GetString("term-start")
		}
		if flags.Changed("weeks") {
			cfg.TermWeeks, _ = flags.GetInt("weeks")
		}
		if flags.Changed("timezone") {
			cfg.Timezone, _ = flags.GetString("timezone")
		}
		if flags.Changed("output-dir") {
			cfg.OutputDir, _ = flags.GetString("output-dir")
		}
		if flags.Changed("format") {
			cfg.DefaultFormat, _ = flags.GetString("format")
		}

		if err := config.Save(cfg); err != nil {
			return err
		}

		fmt.Println("✅ Configuration saved to ~/.rosterctl.json")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.Flags().String("term-start", "", "First day of classes (YYYY-MM-DD)")
	configCmd.Flags().Int("weeks", 0, "Number of weeks in the term")
	configCmd.Flags().String("timezone", "", "IANA timezone of the campus, e.g. Asia/Manila")
	configCmd.Flags().String("output-dir", "", "Directory exports are written to")
	configCmd.Flags().String("format", "", "Default export format (ics, json, yaml, csv)")
}
