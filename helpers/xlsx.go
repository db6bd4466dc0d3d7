package helpers

import (
	"fmt"
	"io"

	"github.com/spektr-org/prism/engine"
	"github.com/xuri/excelize/v2"
)

// ParseXLSX reads one sheet of an Excel workbook. An empty sheet name selects
// the first sheet. The first row is the header; cells follow the CSV rules.
func ParseXLSX(r io.Reader, sheet string) ([]engine.Record, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return []engine.Record{}, nil
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}

	records := []engine.Record{}
	if len(rows) == 0 {
		return records, nil
	}
	keys := fieldKeys(rows[0])
	for _, row := range rows[1:] {
		records = append(records, rowRecord(keys, row))
	}
	return records, nil
}
