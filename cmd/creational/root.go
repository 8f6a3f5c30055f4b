package main

import (
	"fmt"
	"io"
	"os"

	"github.com/aretw0/creational/internal/cli"
	"github.com/aretw0/creational/internal/config"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "creational",
	Short: "A catalog of creational design patterns",
	Long: `creational walks through the Builder, Factory Method, Abstract Factory
and Prototype patterns with small runnable demos.

Run "creational tour" to see all of them, or "creational explain <pattern>"
to read about one.

Settings come from ./creational.yaml (or --config), then from CREATIONAL_*
environment variables, which may also be placed in a .env file.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", "", "Config file (default: ./creational.yaml when present)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error or off (overrides the config file)")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")
}

// setup builds the application from the global flags, exiting on failure.
func setup(cmd *cobra.Command) *cli.App {
	configPath, _ := cmd.Flags().GetString("config")
	logLevel, _ := cmd.Flags().GetString("log-level")
	noColor, _ := cmd.Flags().GetBool("no-color")

	if err := config.LoadDotEnv(".env"); err != nil {
		exitWithError(cmd, err)
	}

	app, err := cli.NewApp(cmd.Context(), cli.Options{
		ConfigPath: configPath,
		LogLevel:   logLevel,
		NoColor:    noColor,
		Stdin:      cmd.InOrStdin(),
		Stdout:     cmd.OutOrStdout(),
		Stderr:     cmd.ErrOrStderr(),
	})
	if err != nil {
		exitWithError(cmd, err)
	}
	return app
}

// exitWithError reports err and exits with status 1.
func exitWithError(cmd *cobra.Command, err error, closers ...io.Closer) {
	reportError(cmd.ErrOrStderr(), err, closers...)
	os.Exit(1)
}

// reportError prints err and closes closers. os.Exit skips deferred calls,
// so open resources such as the redis client are released here.
func reportError(w io.Writer, err error, closers ...io.Closer) {
	fmt.Fprintf(w, "Error: %v\n", err)
	for _, c := range closers {
		_ = c.Close()
	}
}
