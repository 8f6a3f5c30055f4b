package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/aretw0/creational"
	"github.com/aretw0/creational/internal/cli"
	"github.com/spf13/cobra"
)

var explainCmd = &cobra.Command{
	Use:   "explain [pattern]",
	Short: "Explain a pattern, or list them all",
	Args:  cobra.MaximumNArgs(1),
	ValidArgs: []string{
		"builder", "factory-method", "abstract-factory", "prototype",
	},
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			for _, info := range creational.Patterns() {
				fmt.Fprintf(w, "%s\t%s\n", info.ID, info.Summary)
			}
			_ = w.Flush()
			return
		}

		width, _ := cmd.Flags().GetInt("width")

		app := setup(cmd)
		defer app.Close()

		if err := cli.RunExplain(app, args[0], width); err != nil {
			exitWithError(cmd, err, app)
		}
	},
}

func init() {
	rootCmd.AddCommand(explainCmd)
	explainCmd.Flags().Int("width", 80, "Word wrap width")
}
