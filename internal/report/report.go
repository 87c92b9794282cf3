// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report runs the search-then-fetch pipeline and serializes the
// resulting records as CSV, XLSX, or one line per record on the console.
package report

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"

	"github.com/pdiddy/get-papers-list/pkg/types"
)

// Searcher returns the identifiers matching a query in relevance order.
type Searcher interface {
	Search(ctx context.Context, query string) ([]string, error)
}

// Fetcher builds the record of a single identifier.
type Fetcher interface {
	FetchDetail(ctx context.Context, id string) (types.Record, error)
}

// Report is the complete output of one run. Records are in fetch order,
// which is the search relevance order.
type Report struct {
	Query     string
	CreatedAt time.Time
	Records   []types.Record
}

// Options controls a pipeline run.
type Options struct {
	Query string

	// Debug prints the identifier list to Diag.
	Debug bool

	// Diag receives diagnostic output. Nil discards it.
	Diag io.Writer
}

// Run searches once and fetches every identifier sequentially. The first
// error aborts the run and no report is returned.
func Run(ctx context.Context, opts Options, s Searcher, f Fetcher, log zerolog.Logger) (Report, error) {
	diag := opts.Diag
	if diag == nil {
		diag = io.Discard
	}

	ids, err := s.Search(ctx, opts.Query)
	if err != nil {
		return Report{}, fmt.Errorf("searching %q: %w", opts.Query, err)
	}
	log.Debug().Strs("ids", ids).Msg("search complete")
	if opts.Debug {
		fmt.Fprintf(diag, "Fetched PubMed IDs: %v\n", ids)
	}

	records := make([]types.Record, 0, len(ids))
	for i, id := range ids {
		select {
		case <-ctx.Done():
			return Report{}, ctx.Err()
		default:
		}

		rec, err := f.FetchDetail(ctx, id)
		if err != nil {
			return Report{}, fmt.Errorf("fetching details for %s: %w", id, err)
		}
		log.Debug().Str("pmid", id).Int("n", i+1).Int("of", len(ids)).Msg("fetched")
		records = append(records, rec)
	}

	return Report{
		Query:     opts.Query,
		CreatedAt: time.Now().UTC(),
		Records:   records,
	}, nil
}
