package main

import (
	"github.com/aretw0/creational/internal/cli"
	"github.com/aretw0/creational/internal/presentation/graph"
	"github.com/spf13/cobra"
)

var diagramCmd = &cobra.Command{
	Use:   "diagram <example>",
	Short: "Print the Mermaid diagram of an example",
	Long: `Prints the participants of an example (computer, burger, report, meal,
vehicle or document) as a Mermaid flowchart. --variant highlights what one
selector creates.`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: graph.Examples(),
	Run: func(cmd *cobra.Command, args []string) {
		variant, _ := cmd.Flags().GetString("variant")

		app := setup(cmd)
		defer app.Close()

		if err := cli.RunDiagram(app, args[0], variant); err != nil {
			exitWithError(cmd, err, app)
		}
	},
}

func init() {
	rootCmd.AddCommand(diagramCmd)
	diagramCmd.Flags().String("variant", "", "Selector to highlight, for example beef or electric")
}
