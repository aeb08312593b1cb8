package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// versionCmd returns the caller's installed chip8 version
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Retrieve the currently installed chip8 version",
	Long:  "Run `chip8 version` to get your current chip8 version",
	Args:  cobra.NoArgs,
	Run:   runVersion,
}

func runVersion(cmd *cobra.Command, args []string) {
	fmt.Println(currentReleaseVersion)
}
