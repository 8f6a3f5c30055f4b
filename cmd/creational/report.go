package main

import (
	"github.com/aretw0/creational/internal/cli"
	"github.com/spf13/cobra"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generate a report (Factory Method)",
	Long: `Generates a sales, inventory or management report through the matching
factory. Without --type you are asked.`,
	Run: func(cmd *cobra.Command, args []string) {
		selector, _ := cmd.Flags().GetString("type")

		app := setup(cmd)
		defer app.Close()

		if err := cli.RunReport(cmd.Context(), app, selector); err != nil {
			exitWithError(cmd, err, app)
		}
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)
	reportCmd.Flags().StringP("type", "t", "", "Report: sales, inventory or management")
}
