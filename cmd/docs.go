package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
	"github.com/spf13/viper"

	"github.com/leocov-dev/packmedic/internal/shared"
)

// docsCmd represents the docs command
var docsCmd = &cobra.Command{
	Use:     "docs",
	Short:   "Generate markdown documentation (that you might be reading right now!!)",
	Aliases: []string{"md"},
	Args:    cobra.NoArgs,
	Hidden:  true,
	Run: func(cmd *cobra.Command, args []string) {
		outDir := viper.GetString("docs.dir")
		err := os.MkdirAll(outDir, os.ModePerm)
		if err != nil {
			shared.Exitf("Error creating directory: %s\n", err)
		}
		disableTag(cmd.Root())
		err = doc.GenMarkdownTree(cmd.Root(), outDir)
		if err != nil {
			shared.Exitf("Error generating markdown: %s\n", err)
		}
		fmt.Println("Generated markdown successfully!")
	},
}

func disableTag(cmd *cobra.Command) {
	cmd.DisableAutoGenTag = true
	for _, v := range cmd.Commands() {
		disableTag(v)
	}
}

func init() {
	rootCmd.AddCommand(docsCmd)

	docsCmd.Flags().String("dir", ".", "The destination directory to save docs in")
	_ = viper.BindPFlag("docs.dir", docsCmd.Flags().Lookup("dir"))
}
