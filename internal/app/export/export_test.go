package export

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx"

	"memomaker/internal/app/model"
)

func TestToExcel(t *testing.T) {
	records := []model.RunRecord{
		{
			ID:           "run-1",
			FileName:     "weekly.mp3",
			SizeBytes:    12345,
			Method:       "inline",
			Provider:     "gemini",
			State:        model.StateCompleted,
			InputTokens:  100,
			OutputTokens: 50,
			TotalTokens:  150,
			ElapsedMs:    4200,
			CreatedAt:    time.Date(2025, 6, 1, 10, 30, 0, 0, time.UTC),
		},
		{
			ID:           "run-2",
			FileName:     "allhands.wav",
			Method:       "upload",
			Provider:     "gemini",
			State:        model.StateFailed,
			ErrorMessage: "remote service error (gemini): quota exceeded",
			CreatedAt:    time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC),
		},
	}

	path := filepath.Join(t.TempDir(), "runs.xlsx")
	require.NoError(t, ToExcel(records, path))

	file, err := xlsx.OpenFile(path)
	require.NoError(t, err)
	require.Len(t, file.Sheets, 1)

	sheet := file.Sheets[0]
	assert.Equal(t, "Runs", sheet.Name)
	require.Len(t, sheet.Rows, 3)

	header := sheet.Rows[0]
	assert.Equal(t, "ID", header.Cells[0].Value)
	assert.Equal(t, "Created At", header.Cells[11].Value)

	first := sheet.Rows[1]
	assert.Equal(t, "run-1", first.Cells[0].Value)
	assert.Equal(t, "weekly.mp3", first.Cells[1].Value)
	assert.Equal(t, "completed", first.Cells[5].Value)
	assert.Equal(t, "150", first.Cells[8].Value)

	second := sheet.Rows[2]
	assert.Equal(t, "failed", second.Cells[5].Value)
	assert.Contains(t, second.Cells[10].Value, "quota exceeded")
}

func TestToExcelEmptyHistory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.xlsx")
	require.NoError(t, ToExcel(nil, path))

	file, err := xlsx.OpenFile(path)
	require.NoError(t, err)
	require.Len(t, file.Sheets, 1)
	assert.Len(t, file.Sheets[0].Rows, 1)
}
