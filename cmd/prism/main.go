// prism is the insights dashboard CLI: charts, field profiles, SQLite import,
// the HTTP API and a terminal UI over one record store.
//
// Usage:
//
//	prism chart [variable] [filter] -f data.json [--format table|json|csv|svg|...]
//	prism fields -f data.csv
//	prism import --db prism.db --dataset insights data.json more.xlsx
//	prism datasets --db prism.db
//	prism serve --db prism.db [--listen :8080]
//	prism tui -f data.json
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
