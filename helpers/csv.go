package helpers

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spektr-org/prism/engine"
)

// ============================================================================
// CSV HELPER — Parses CSV data into []engine.Record
// ============================================================================
// Header row names the fields. Blank cells become the empty-string sentinel,
// numeric cells become numbers, everything else stays a string. Rows shorter
// than the header leave the trailing fields absent (read as null).
// ============================================================================

// ParseCSV parses CSV bytes into Records. Malformed rows are skipped.
func ParseCSV(data []byte) ([]engine.Record, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1

	headers, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return []engine.Record{}, nil
		}
		return nil, fmt.Errorf("failed to read CSV headers: %w", err)
	}
	keys := fieldKeys(headers)

	records := []engine.Record{}
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			continue // skip malformed rows
		}
		records = append(records, rowRecord(keys, row))
	}
	return records, nil
}

// ParseCSVView parses CSV into a RecordView.
func ParseCSVView(data []byte) (engine.RecordView, error) {
	records, err := ParseCSV(data)
	if err != nil {
		return nil, err
	}
	return engine.NewSliceView(records), nil
}

// rowRecord maps one text row onto keys. Shared by the CSV and XLSX paths.
// Cells past the end of a short row are blank, so they read as the sentinel;
// excelize drops trailing empty cells.
func rowRecord(keys, row []string) engine.Record {
	rec := make(engine.Record, len(keys))
	for i, key := range keys {
		if key == "" {
			continue
		}
		if i >= len(row) {
			rec[key] = engine.Missing
			continue
		}
		rec[key] = engine.ParseCell(row[i])
	}
	return rec
}

func fieldKeys(headers []string) []string {
	keys := make([]string, len(headers))
	for i, h := range headers {
		keys[i] = toSnakeCase(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
	}
	return keys
}

// toSnakeCase converts "Start Year" → "start_year".
func toSnakeCase(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, "-", "_")
	return s
}
