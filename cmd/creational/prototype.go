package main

import (
	"github.com/aretw0/creational/internal/cli"
	"github.com/aretw0/creational/pkg/document"
	"github.com/spf13/cobra"
)

var prototypeCmd = &cobra.Command{
	Use:   "prototype",
	Short: "Clone a document and change the copy (Prototype)",
	Long: `Prints a document template, clones it, changes the clone and prints it.
The template is left untouched.

Without --title, --content or --author the clone gets a new title and author.`,
	Run: func(cmd *cobra.Command, args []string) {
		template, _ := cmd.Flags().GetString("template")
		title, _ := cmd.Flags().GetString("title")
		content, _ := cmd.Flags().GetString("content")
		author, _ := cmd.Flags().GetString("author")

		app := setup(cmd)
		defer app.Close()

		opts := cli.PrototypeOptions{
			Template:  template,
			Overrides: document.Overrides{Title: title, Content: content, Author: author},
		}
		if err := cli.RunPrototype(cmd.Context(), app, opts); err != nil {
			exitWithError(cmd, err, app)
		}
	},
}

func init() {
	rootCmd.AddCommand(prototypeCmd)

	prototypeCmd.Flags().String("template", "sample", "Template to clone")
	prototypeCmd.Flags().String("title", "", "Title of the clone")
	prototypeCmd.Flags().String("content", "", "Content of the clone")
	prototypeCmd.Flags().String("author", "", "Author of the clone")
}
