package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/creational"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of creational",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "creational version %s\n", strings.TrimSpace(creational.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
