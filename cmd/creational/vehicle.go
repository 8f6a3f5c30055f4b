package main

import (
	"github.com/aretw0/creational/internal/cli"
	"github.com/spf13/cobra"
)

var vehicleCmd = &cobra.Command{
	Use:   "vehicle",
	Short: "Assemble a car and its engine from one family (Abstract Factory)",
	Run: func(cmd *cobra.Command, args []string) {
		family, _ := cmd.Flags().GetString("family")

		app := setup(cmd)
		defer app.Close()

		if err := cli.RunVehicle(app, family); err != nil {
			exitWithError(cmd, err, app)
		}
	},
}

func init() {
	rootCmd.AddCommand(vehicleCmd)
	vehicleCmd.Flags().StringP("family", "f", "", "Family: electric or gas (all when omitted)")
}
