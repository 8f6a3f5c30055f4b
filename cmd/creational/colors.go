package main

import (
	"github.com/aretw0/creational/internal/cli"
	"github.com/spf13/cobra"
)

var colorsCmd = &cobra.Command{
	Use:   "colors",
	Short: "List the console colors shared by the demos",
	Run: func(cmd *cobra.Command, args []string) {
		app := setup(cmd)
		defer app.Close()

		if err := cli.RunColors(app); err != nil {
			exitWithError(cmd, err, app)
		}
	},
}

func init() {
	rootCmd.AddCommand(colorsCmd)
}
