package helpers

import (
	"encoding/json"
	"fmt"

	"github.com/spektr-org/prism/engine"
)

// ParseJSON decodes a JSON array of flat objects. Value kinds are kept as
// written: "" is the sentinel, numbers stay numbers, null stays null.
func ParseJSON(data []byte) ([]engine.Record, error) {
	var records []engine.Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to decode JSON records: %w", err)
	}
	if records == nil {
		records = []engine.Record{}
	}
	for i, r := range records {
		if r == nil {
			records[i] = engine.Record{}
		}
	}
	return records, nil
}

// ParseJSONView parses JSON into a RecordView.
func ParseJSONView(data []byte) (engine.RecordView, error) {
	records, err := ParseJSON(data)
	if err != nil {
		return nil, err
	}
	return engine.NewSliceView(records), nil
}
