package cmd

import (
	"rosterctl/pkg/tui"

	"github.com/spf13/cobra"
)

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Launch the interactive TUI",
	Long:  `Launch the Text User Interface to review class list exports and manage settings.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return tui.RunTUI()
	},
}

var reviewCmd = &cobra.Command{
	Use:   "review [file|url]",
	Short: "Review a parsed export before saving it",
	Long: `Parse an export, show what was recovered and let you correct the section,
faculty, year level and class list before the roster is written out.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ref := ""
		if len(args) == 1 {
			ref = args[0]
		}
		return tui.RunReviewTUI(ref)
	},
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
	rootCmd.AddCommand(reviewCmd)
}
