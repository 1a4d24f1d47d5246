package cmd

import (
	"fmt"

	"github.com/skratchdot/open-golang/open"
	"github.com/spf13/cobra"

	"github.com/leocov-dev/packmedic/internal/shared"
)

// openCmd represents the open command
var openCmd = &cobra.Command{
	Use:   "open",
	Short: "Open the pack directory in your file browser",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		packDir, err := shared.GetPackDir()
		if err != nil {
			shared.Exitln(err)
		}

		fmt.Println("Opening file browser...")
		err = open.Start(packDir)
		if err != nil {
			fmt.Println("Opening failed, the pack directory is:")
			fmt.Println(packDir)
		}
	},
}

func init() {
	rootCmd.AddCommand(openCmd)
}
