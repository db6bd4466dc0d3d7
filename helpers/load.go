package helpers

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/spektr-org/prism/engine"
)

// ============================================================================
// FILE LOADING — Record stores from disk
// ============================================================================
// Format is chosen by extension: .json, .csv, .xlsx. Several files load in
// parallel and are concatenated in argument order.
// ============================================================================

// maxConcurrentLoads bounds how many files are parsed at once.
const maxConcurrentLoads = 4

// LoadFile reads and parses one record file.
func LoadFile(path string) ([]engine.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var records []engine.Record
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		records, err = ParseJSON(data)
	case ".csv":
		records, err = ParseCSV(data)
	case ".xlsx":
		records, err = ParseXLSX(bytes.NewReader(data), "")
	default:
		return nil, fmt.Errorf("unsupported file type %q: %s", ext, path)
	}
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return records, nil
}

// LoadFiles loads every path concurrently and returns a single view over all
// of them, in argument order. Any failure cancels the remaining loads.
func LoadFiles(ctx context.Context, paths ...string) (engine.RecordView, error) {
	if len(paths) == 0 {
		return nil, fmt.Errorf("no input files")
	}

	views := make([]engine.RecordView, len(paths))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentLoads)

	for i, path := range paths {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			records, err := LoadFile(path)
			if err != nil {
				return err
			}
			views[i] = engine.NewSliceView(records)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return engine.NewConcatView(views...), nil
}
