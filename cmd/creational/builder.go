package main

import (
	"github.com/aretw0/creational/internal/cli"
	"github.com/aretw0/creational/pkg/computer"
	"github.com/spf13/cobra"
)

var builderCmd = &cobra.Command{
	Use:   "builder",
	Short: "Build computers step by step (Builder)",
	Long: `Builds computers with the Builder pattern.

Without flags the basic and gamer computers are built. Use --preset to build
a named preset, or set individual parts; parts left out keep their defaults.`,
	Run: func(cmd *cobra.Command, args []string) {
		preset, _ := cmd.Flags().GetString("preset")
		cpu, _ := cmd.Flags().GetString("cpu")
		ram, _ := cmd.Flags().GetString("ram")
		storage, _ := cmd.Flags().GetString("storage")
		gpu, _ := cmd.Flags().GetString("gpu")

		app := setup(cmd)
		defer app.Close()

		opts := cli.BuilderOptions{
			Preset: preset,
			Spec:   computer.Spec{CPU: cpu, RAM: ram, Storage: storage, GPU: gpu},
		}
		if err := cli.RunBuilder(app, opts); err != nil {
			exitWithError(cmd, err, app)
		}
	},
}

func init() {
	rootCmd.AddCommand(builderCmd)

	builderCmd.Flags().String("preset", "", "Preset to build (basic, gamer or one from the config file)")
	builderCmd.Flags().String("cpu", "", "Processor")
	builderCmd.Flags().String("ram", "", "Memory")
	builderCmd.Flags().String("storage", "", "Storage")
	builderCmd.Flags().String("gpu", "", "Graphics card (none when omitted)")
	builderCmd.MarkFlagsMutuallyExclusive("preset", "cpu")
	builderCmd.MarkFlagsMutuallyExclusive("preset", "ram")
	builderCmd.MarkFlagsMutuallyExclusive("preset", "storage")
	builderCmd.MarkFlagsMutuallyExclusive("preset", "gpu")
}
