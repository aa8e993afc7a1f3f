package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"memomaker/cmd/a2m/cmd/export"
	"memomaker/cmd/a2m/cmd/history"
	"memomaker/cmd/a2m/cmd/process"
	"memomaker/cmd/a2m/cmd/version"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "a2m",
	Short: "Turn an audio recording into a transcript and a meeting memo",
	Long: `Turn an audio recording into a transcript and a meeting memo.

- Validates the file locally (format, size bounds, header sniff)
- Sends it to a hosted model inline or via a pre-upload, picked by file size
- Writes transcript.txt and memo.md, overwritten on every run
- Records each run to a local sqlite history`,
	TraverseChildren: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(process.Cmd)
	rootCmd.AddCommand(history.Cmd)
	rootCmd.AddCommand(export.Cmd)
	rootCmd.AddCommand(version.Cmd)
}
