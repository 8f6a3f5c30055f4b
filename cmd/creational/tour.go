package main

import (
	"github.com/aretw0/creational/internal/cli"
	"github.com/spf13/cobra"
)

var tourCmd = &cobra.Command{
	Use:   "tour",
	Short: "Run every demo in order",
	Run: func(cmd *cobra.Command, args []string) {
		app := setup(cmd)
		defer app.Close()

		if err := cli.RunTour(cmd.Context(), app); err != nil {
			exitWithError(cmd, err, app)
		}
	},
}

func init() {
	rootCmd.AddCommand(tourCmd)
	rootCmd.Run = tourCmd.Run
}
