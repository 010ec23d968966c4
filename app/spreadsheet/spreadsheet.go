package spreadsheet

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/JORO-NIMO/rms/app/imports"
)

// ErrUnreadable marks a workbook that could not be decoded at all. This is
// the one batch-fatal condition: no rows are attempted.
var ErrUnreadable = errors.New("unreadable spreadsheet")

// Decode reads the first sheet of a workbook into row maps keyed by the
// header row. Blank rows are skipped, matching how the rest of the rows are
// compacted by common spreadsheet-to-JSON tooling.
func Decode(path string) ([]imports.RawRow, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadable, err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("%w: workbook has no sheets", ErrUnreadable)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadable, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	headers := rows[0]
	var out []imports.RawRow
	for _, cells := range rows[1:] {
		row := imports.RawRow{}
		for j, header := range headers {
			if header == "" || j >= len(cells) {
				continue
			}
			if value := strings.TrimSpace(cells[j]); value != "" {
				row[header] = value
			}
		}
		if len(row) == 0 {
			continue
		}
		out = append(out, row)
	}
	return out, nil
}
