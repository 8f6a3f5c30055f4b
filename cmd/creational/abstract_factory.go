package main

import (
	"github.com/aretw0/creational/internal/cli"
	"github.com/spf13/cobra"
)

var abstractFactoryCmd = &cobra.Command{
	Use:     "abstract-factory",
	Aliases: []string{"meal"},
	Short:   "Serve a hamburger and a drink from one family (Abstract Factory)",
	Run: func(cmd *cobra.Command, args []string) {
		family, _ := cmd.Flags().GetString("family")

		app := setup(cmd)
		defer app.Close()

		if err := cli.RunAbstractFactory(app, family); err != nil {
			exitWithError(cmd, err, app)
		}
	},
}

func init() {
	rootCmd.AddCommand(abstractFactoryCmd)
	abstractFactoryCmd.Flags().StringP("family", "f", "", "Family: fast or healthy (all when omitted)")
}
