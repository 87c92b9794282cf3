// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/pdiddy/get-papers-list/pkg/types"
)

// WriteCSV writes a header row from types.Fields followed by one row per
// record. An empty report produces the header only.
func WriteCSV(w io.Writer, records []types.Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(types.Fields); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}
	for _, r := range records {
		if err := cw.Write(r.Values()); err != nil {
			return fmt.Errorf("writing CSV row %s: %w", r.PubmedID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadCSV parses a report written by WriteCSV.
func ReadCSV(r io.Reader) ([]types.Record, error) {
	rows, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading CSV: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("reading CSV: missing header")
	}
	records := make([]types.Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		records = append(records, types.RecordFromValues(row))
	}
	return records, nil
}
