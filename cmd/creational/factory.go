package main

import (
	"github.com/aretw0/creational/internal/cli"
	"github.com/spf13/cobra"
)

var factoryCmd = &cobra.Command{
	Use:   "factory",
	Short: "Order a hamburger from a restaurant (Factory Method)",
	Long: `Orders a hamburger. The restaurant chosen with --type (chicken or beef)
decides which hamburger is created. Without --type you are asked.`,
	Run: func(cmd *cobra.Command, args []string) {
		selector, _ := cmd.Flags().GetString("type")

		app := setup(cmd)
		defer app.Close()

		if err := cli.RunFactory(cmd.Context(), app, selector); err != nil {
			exitWithError(cmd, err, app)
		}
	},
}

func init() {
	rootCmd.AddCommand(factoryCmd)
	factoryCmd.Flags().StringP("type", "t", "", "Restaurant: chicken or beef")
}
