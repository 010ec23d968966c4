package spreadsheet

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeWorkbook(t *testing.T, rows [][]any) string {
	t.Helper()

	f := excelize.NewFile()
	for i, cells := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &cells))
	}

	path := filepath.Join(t.TempDir(), "import.xlsx")
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())
	return path
}

func TestDecode(t *testing.T) {
	path := writeWorkbook(t, [][]any{
		{"first_name", "last_name", "Class"},
		{"Aisha", "Nakato", "S1 East"},
		{"Brian", "", "S2"},
	})

	rows, err := Decode(path)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Aisha", rows[0]["first_name"])
	assert.Equal(t, "S1 East", rows[0]["Class"])
	assert.Equal(t, "Brian", rows[1]["first_name"])
	// Empty cells are absent, not empty strings.
	_, ok := rows[1]["last_name"]
	assert.False(t, ok)
}

func TestDecodeSkipsBlankRows(t *testing.T) {
	path := writeWorkbook(t, [][]any{
		{"first_name", "Class"},
		{"", ""},
		{"Joan", "S3"},
	})

	rows, err := Decode(path)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Joan", rows[0]["first_name"])
}

func TestDecodeNumericCells(t *testing.T) {
	path := writeWorkbook(t, [][]any{
		{"admission_no", "score"},
		{"ADM-001", 82},
		{"ADM-002", 0},
	})

	rows, err := Decode(path)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "82", rows[0]["score"])
	assert.Equal(t, "0", rows[1]["score"])
}

func TestDecodeUnreadableFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "not-a-workbook.xlsx")
	require.NoError(t, os.WriteFile(path, []byte("this is not a zip"), 0o644))

	_, err := Decode(path)
	require.ErrorIs(t, err, ErrUnreadable)
}
