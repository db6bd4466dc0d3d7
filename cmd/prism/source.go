package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spektr-org/prism/engine"
	"github.com/spektr-org/prism/helpers"
	"github.com/spektr-org/prism/internal/config"
	"github.com/spektr-org/prism/internal/logging"
	"github.com/spektr-org/prism/internal/store"
)

var errNoSource = errors.New("no record source: pass --file, --db or --url (or set data in the config)")

// loadView opens the configured record store. Files win over the database,
// the database over the URL.
func loadView(ctx context.Context, d config.Data) (engine.RecordView, error) {
	log := logging.New("source")

	var (
		view engine.RecordView
		err  error
		from string
	)
	switch {
	case len(d.Files) > 0:
		from = fmt.Sprintf("%d file(s)", len(d.Files))
		view, err = helpers.LoadFiles(ctx, d.Files...)
	case d.DB != "":
		from = d.DB + "#" + d.Dataset
		view, err = loadDataset(ctx, d.DB, d.Dataset)
	case d.URL != "":
		from = d.URL
		var records []engine.Record
		records, err = helpers.Fetch(ctx, d.URL)
		if err == nil {
			view = engine.NewSliceView(records)
		}
	default:
		return nil, errNoSource
	}
	if err != nil {
		return nil, err
	}

	log.Info("records loaded", "from", from, "records", view.Len(), "fields", len(view.Fields()))
	return view, nil
}

func loadDataset(ctx context.Context, path, dataset string) (engine.RecordView, error) {
	st, err := store.Open(path)
	if err != nil {
		return nil, err
	}
	defer st.Close()
	return st.View(ctx, dataset)
}
