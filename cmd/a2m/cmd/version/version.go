package version

import (
	"fmt"

	"github.com/spf13/cobra"
)

var version = "v0.0.1"

// Cmd represents the version command
var Cmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of a2m",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("a2m version:", version)
	},
}
