package archive

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/leasemetric/leasebench/constants"
	"github.com/leasemetric/leasebench/internal/entity"
)

// Store persists extraction runs to a local SQLite file so recall can be
// tracked across pipeline changes. Entirely optional: the batch works the
// same with no archive configured.
type Store struct {
	db     *sql.DB
	logger *slog.Logger
}

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id         TEXT PRIMARY KEY,
	started_at TEXT NOT NULL,
	source_dir TEXT NOT NULL,
	doc_count  INTEGER NOT NULL,
	status     TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS predictions (
	run_id      TEXT NOT NULL REFERENCES runs(id),
	file_name   TEXT NOT NULL,
	value       TEXT,
	start_date  TEXT,
	end_date    TEXT,
	notice_days TEXT,
	party_one   TEXT,
	party_two   TEXT,
	PRIMARY KEY (run_id, file_name)
);
CREATE TABLE IF NOT EXISTS recalls (
	run_id TEXT NOT NULL REFERENCES runs(id),
	field  TEXT NOT NULL,
	recall REAL NOT NULL,
	PRIMARY KEY (run_id, field)
);
`

// Open opens (or creates) the archive database at path and ensures the schema.
func Open(path string, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open archive: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ensure archive schema: %w", err)
	}
	return &Store{db: db, logger: logger}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Run is one archived batch execution.
type Run struct {
	ID        uuid.UUID
	StartedAt time.Time
	SourceDir string
	Status    constants.RunStatus
	Records   []entity.MetadataRecord
	Report    entity.RecallReport
}

// SaveRun writes the run row, its predictions, and any recall scores in one
// transaction.
func (s *Store) SaveRun(ctx context.Context, run Run) error {
	start := time.Now()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO runs (id, started_at, source_dir, doc_count, status) VALUES (?, ?, ?, ?, ?)`,
		run.ID.String(), run.StartedAt.UTC().Format(time.RFC3339), run.SourceDir, len(run.Records), string(run.Status),
	); err != nil {
		return fmt.Errorf("insert run: %w", err)
	}

	for _, r := range run.Records {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO predictions (run_id, file_name, value, start_date, end_date, notice_days, party_one, party_two)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			run.ID.String(), r.FileName, r.Value, r.StartDate, r.EndDate, r.NoticeDays, r.PartyOne, r.PartyTwo,
		); err != nil {
			return fmt.Errorf("insert prediction %q: %w", r.FileName, err)
		}
	}

	for field, recall := range run.Report {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO recalls (run_id, field, recall) VALUES (?, ?, ?)`,
			run.ID.String(), string(field), recall,
		); err != nil {
			return fmt.Errorf("insert recall %q: %w", field, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	s.logger.Info("archive.run.saved",
		"run_id", run.ID.String(),
		"rows", len(run.Records),
		"scored_fields", len(run.Report),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return nil
}

// ListRuns returns archived run summaries, newest first.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, started_at, source_dir, status FROM runs ORDER BY started_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []Run
	for rows.Next() {
		var r Run
		var id, startedAt, status string
		if err := rows.Scan(&id, &startedAt, &r.SourceDir, &status); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		r.ID, err = uuid.Parse(id)
		if err != nil {
			return nil, fmt.Errorf("parse run id %q: %w", id, err)
		}
		r.StartedAt, _ = time.Parse(time.RFC3339, startedAt)
		r.Status = constants.RunStatus(status)
		out = append(out, r)
	}
	return out, rows.Err()
}
