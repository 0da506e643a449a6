package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/craftdex/craftdex/internal/core/domain"
	"github.com/craftdex/craftdex/internal/core/ports/driven"
)

// runStore implements driven.RunStore.
type runStore struct {
	store *Store
}

var _ driven.RunStore = (*runStore)(nil)

// SaveRun stores or updates a run.
func (s *runStore) SaveRun(ctx context.Context, run *domain.ExtractionRun) error {
	var finishedAt sql.NullTime
	if !run.FinishedAt.IsZero() {
		finishedAt = sql.NullTime{Time: run.FinishedAt.UTC(), Valid: true}
	}

	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO extraction_runs (id, started_at, finished_at, archives_total, archives_processed,
			recipes_extracted, error_count, replaced, status)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			finished_at = excluded.finished_at,
			archives_total = excluded.archives_total,
			archives_processed = excluded.archives_processed,
			recipes_extracted = excluded.recipes_extracted,
			error_count = excluded.error_count,
			replaced = excluded.replaced,
			status = excluded.status
	`, run.ID, run.StartedAt.UTC(), finishedAt, run.ArchivesTotal, run.ArchivesProcessed,
		run.RecipesExtracted, run.ErrorCount, run.Replaced, string(run.Status))
	if err != nil {
		return fmt.Errorf("%w: saving run: %v", domain.ErrStoreWrite, err)
	}
	return nil
}

// ListRuns returns the most recent runs first.
func (s *runStore) ListRuns(ctx context.Context, limit int) ([]domain.ExtractionRun, error) {
	if limit <= 0 {
		limit = -1 // SQLite: no limit
	}

	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, started_at, finished_at, archives_total, archives_processed,
			recipes_extracted, error_count, replaced, status
		FROM extraction_runs
		ORDER BY started_at DESC, id
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: listing runs: %v", domain.ErrStoreRead, err)
	}
	defer rows.Close()

	runs := make([]domain.ExtractionRun, 0)
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanning run: %v", domain.ErrStoreRead, err)
		}
		runs = append(runs, *run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreRead, err)
	}
	return runs, nil
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanRun(row scanner) (*domain.ExtractionRun, error) {
	var run domain.ExtractionRun
	var status string
	var finishedAt sql.NullTime
	if err := row.Scan(&run.ID, &run.StartedAt, &finishedAt, &run.ArchivesTotal, &run.ArchivesProcessed,
		&run.RecipesExtracted, &run.ErrorCount, &run.Replaced, &status); err != nil {
		return nil, err
	}
	if finishedAt.Valid {
		run.FinishedAt = finishedAt.Time
	}
	run.Status = domain.RunStatus(status)
	return &run, nil
}
