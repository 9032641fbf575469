package cmd

import (
	"fmt"

	"rosterctl/pkg/exporter"
	"rosterctl/pkg/logger"
	"rosterctl/pkg/source"
	"rosterctl/pkg/tui"

	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse <file|url>...",
	Short: "Parse one or more exports and print what was recovered",
	Long: `Parse registrar exports and print the recovered roster. Use --format json or
--format yaml to feed the result into other tools.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		noCache, _ := cmd.Flags().GetBool("no-cache")

		if format != "text" && format != "json" && format != "yaml" {
			return fmt.Errorf("unknown format %q (want text, json or yaml)", format)
		}

		client := source.NewClient()
		out := cmd.OutOrStdout()
		failed := 0

		for _, ref := range args {
			r, err := client.Parse(cmd.Context(), ref, !noCache)
			if err != nil {
				logger.Error().Err(err).Str("source", ref).Msg("could not parse export")
				failed++
				continue
			}

			switch format {
			case "json":
				err = exporter.WriteJSON(r, out)
			case "yaml":
				err = exporter.WriteYAML(r, out)
			default:
				_, err = fmt.Fprintln(out, tui.RenderRoster(r))
			}
			if err != nil {
				return err
			}
		}

		if failed > 0 {
			return fmt.Errorf("%d of %d exports could not be parsed", failed, len(args))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().StringP("format", "f", "text", "Output format (text, json, yaml)")
	parseCmd.Flags().Bool("no-cache", false, "Always parse, ignoring cached results")
}
