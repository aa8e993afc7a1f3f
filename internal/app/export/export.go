package export

import (
	"fmt"
	"time"

	"github.com/tealeg/xlsx"

	"memomaker/internal/app/model"
)

// ToExcel writes the run history to an xlsx workbook.
func ToExcel(records []model.RunRecord, outputFilePath string) error {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Runs")
	if err != nil {
		return fmt.Errorf("add sheet: %w", err)
	}

	headerRow := sheet.AddRow()
	headerRow.AddCell().Value = "ID"
	headerRow.AddCell().Value = "File"
	headerRow.AddCell().Value = "Size (bytes)"
	headerRow.AddCell().Value = "Method"
	headerRow.AddCell().Value = "Provider"
	headerRow.AddCell().Value = "State"
	headerRow.AddCell().Value = "Input Tokens"
	headerRow.AddCell().Value = "Output Tokens"
	headerRow.AddCell().Value = "Total Tokens"
	headerRow.AddCell().Value = "Elapsed (ms)"
	headerRow.AddCell().Value = "Error Message"
	headerRow.AddCell().Value = "Created At"

	for _, rec := range records {
		row := sheet.AddRow()
		row.AddCell().Value = rec.ID
		row.AddCell().Value = rec.FileName
		row.AddCell().Value = fmt.Sprint(rec.SizeBytes)
		row.AddCell().Value = rec.Method
		row.AddCell().Value = rec.Provider
		row.AddCell().Value = string(rec.State)
		row.AddCell().Value = fmt.Sprint(rec.InputTokens)
		row.AddCell().Value = fmt.Sprint(rec.OutputTokens)
		row.AddCell().Value = fmt.Sprint(rec.TotalTokens)
		row.AddCell().Value = fmt.Sprint(rec.ElapsedMs)
		row.AddCell().Value = rec.ErrorMessage
		row.AddCell().Value = rec.CreatedAt.Format(time.RFC3339)
	}

	if err := file.Save(outputFilePath); err != nil {
		return fmt.Errorf("save %s: %w", outputFilePath, err)
	}
	return nil
}
