// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/pdiddy/get-papers-list/pkg/types"
)

// Print writes each record as a single-line JSON object whose keys are the
// report column names in column order.
func Print(w io.Writer, records []types.Record) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	for _, r := range records {
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("printing record %s: %w", r.PubmedID, err)
		}
	}
	return nil
}
