package export

import (
	"fmt"

	"github.com/spf13/cobra"

	"memomaker/internal/app"
	"memomaker/internal/app/export"
)

var outputFilePath string

func init() {
	Cmd.Flags().StringVarP(&outputFilePath, "outputFilePath", "f", "", "Path of the xlsx file to write")
	Cmd.MarkFlagRequired("outputFilePath")
}

// Cmd represents the export command
var Cmd = &cobra.Command{
	Use:   "export",
	Short: "Export the full run history to an xlsx file",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := app.OpenRunDAO()
		if err != nil {
			return err
		}
		defer db.Close()

		records, err := db.GetAll()
		if err != nil {
			return err
		}

		if err := export.ToExcel(records, outputFilePath); err != nil {
			return err
		}
		fmt.Printf("Exported %d runs to %s\n", len(records), outputFilePath)
		return nil
	},
}
