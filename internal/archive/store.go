// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package archive keeps a local SQLite history of completed report runs so a
// past survey can be listed and re-exported without querying PubMed again.
package archive

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/get-papers-list/internal/report"
	"github.com/pdiddy/get-papers-list/pkg/types"
)

var (
	// ErrRunNotFound is returned when no run matches an ID or ID prefix.
	ErrRunNotFound = errors.New("run not found")

	// ErrAmbiguousID is returned when an ID prefix matches several runs.
	ErrAmbiguousID = errors.New("run ID prefix is ambiguous")
)

// Run is one archived report.
type Run struct {
	ID        string         `yaml:"id"`
	Query     string         `yaml:"query"`
	CreatedAt time.Time      `yaml:"created_at"`
	Records   []types.Record `yaml:"records"`
}

// RunSummary is a run without its records, as listed by Runs.
type RunSummary struct {
	ID          string
	Query       string
	CreatedAt   time.Time
	RecordCount int
}

// Store manages the archive database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the archive at cfg.Path and creates the schema if
// it does not exist.
func Open(cfg types.ArchiveConfig) (*Store, error) {
	if !cfg.Enabled() {
		return nil, fmt.Errorf("archive path is not configured")
	}
	if dir := filepath.Dir(cfg.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating archive directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", cfg.Path+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening archive: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			query TEXT NOT NULL,
			created_at TEXT NOT NULL,
			record_count INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS records (
			run_id TEXT NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
			position INTEGER NOT NULL,
			pubmed_id TEXT NOT NULL,
			title TEXT,
			publication_date TEXT,
			non_academic_authors TEXT,
			company_affiliations TEXT,
			corresponding_email TEXT,
			PRIMARY KEY (run_id, position)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_records_pubmed_id ON records(pubmed_id)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_created_at ON runs(created_at)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Save stores a completed report in a single transaction and returns the
// new run ID.
func (s *Store) Save(ctx context.Context, rep report.Report) (string, error) {
	id := uuid.NewString()
	created := rep.CreatedAt
	if created.IsZero() {
		created = time.Now().UTC()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO runs (id, query, created_at, record_count) VALUES (?, ?, ?, ?)`,
		id, rep.Query, created.UTC().Format(time.RFC3339Nano), len(rep.Records),
	); err != nil {
		return "", fmt.Errorf("inserting run: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO records (run_id, position, pubmed_id, title, publication_date,
			non_academic_authors, company_affiliations, corresponding_email)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return "", fmt.Errorf("preparing record insert: %w", err)
	}
	defer stmt.Close()

	for i, r := range rep.Records {
		if _, err := stmt.ExecContext(ctx, id, i, r.PubmedID, r.Title, r.PublicationDate,
			r.NonAcademicAuthors, r.CompanyAffiliations, r.CorrespondingEmail); err != nil {
			return "", fmt.Errorf("inserting record %s: %w", r.PubmedID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("committing run: %w", err)
	}
	return id, nil
}

// Runs lists archived runs, newest first. A limit of zero or less lists all.
func (s *Store) Runs(ctx context.Context, limit int) ([]RunSummary, error) {
	q := `SELECT id, query, created_at, record_count FROM runs ORDER BY created_at DESC, id`
	var args []any
	if limit > 0 {
		q += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("listing runs: %w", err)
	}
	defer rows.Close()

	var runs []RunSummary
	for rows.Next() {
		var rs RunSummary
		var created string
		if err := rows.Scan(&rs.ID, &rs.Query, &created, &rs.RecordCount); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		if rs.CreatedAt, err = parseCreated(created); err != nil {
			return nil, fmt.Errorf("run %s: %w", rs.ID, err)
		}
		runs = append(runs, rs)
	}
	return runs, rows.Err()
}

// Load returns the run whose ID equals or uniquely starts with idPrefix,
// with its records in report order.
func (s *Store) Load(ctx context.Context, idPrefix string) (Run, error) {
	if idPrefix == "" {
		return Run{}, ErrRunNotFound
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, query, created_at FROM runs WHERE substr(id, 1, ?) = ? LIMIT 2`,
		len(idPrefix), idPrefix)
	if err != nil {
		return Run{}, fmt.Errorf("looking up run: %w", err)
	}
	var matches []Run
	for rows.Next() {
		var r Run
		var created string
		if err := rows.Scan(&r.ID, &r.Query, &created); err != nil {
			rows.Close()
			return Run{}, fmt.Errorf("scanning run: %w", err)
		}
		if r.CreatedAt, err = parseCreated(created); err != nil {
			rows.Close()
			return Run{}, fmt.Errorf("run %s: %w", r.ID, err)
		}
		matches = append(matches, r)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return Run{}, fmt.Errorf("looking up run: %w", err)
	}

	switch len(matches) {
	case 0:
		return Run{}, fmt.Errorf("%w: %s", ErrRunNotFound, idPrefix)
	case 1:
	default:
		return Run{}, fmt.Errorf("%w: %s", ErrAmbiguousID, idPrefix)
	}

	run := matches[0]
	run.Records, err = s.records(ctx, run.ID)
	if err != nil {
		return Run{}, err
	}
	return run, nil
}

func parseCreated(value string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing created_at %q: %w", value, err)
	}
	return t, nil
}

func (s *Store) records(ctx context.Context, runID string) ([]types.Record, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT pubmed_id, title, publication_date, non_academic_authors,
			company_affiliations, corresponding_email
		FROM records WHERE run_id = ? ORDER BY position`, runID)
	if err != nil {
		return nil, fmt.Errorf("loading records: %w", err)
	}
	defer rows.Close()

	records := []types.Record{}
	for rows.Next() {
		var r types.Record
		if err := rows.Scan(&r.PubmedID, &r.Title, &r.PublicationDate,
			&r.NonAcademicAuthors, &r.CompanyAffiliations, &r.CorrespondingEmail); err != nil {
			return nil, fmt.Errorf("scanning record: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// Report converts an archived run back into a report for re-export.
func (r Run) Report() report.Report {
	return report.Report{Query: r.Query, CreatedAt: r.CreatedAt, Records: r.Records}
}
