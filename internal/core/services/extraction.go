package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/craftdex/craftdex/internal/core/domain"
	"github.com/craftdex/craftdex/internal/core/ports/driven"
	"github.com/craftdex/craftdex/internal/core/ports/driving"
	"github.com/craftdex/craftdex/internal/logger"
)

// Ensure ExtractionService implements the interface.
var _ driving.ExtractionService = (*ExtractionService)(nil)

// ExtractionConfig tunes the extraction pipeline.
type ExtractionConfig struct {
	// BatchSize is the number of recipes committed per store transaction.
	BatchSize int

	// ProgressEvery emits an extra progress event every N parsed recipes.
	ProgressEvery int

	// DryRunStore returns a throwaway store for dry runs. Dry runs are
	// rejected when it is nil.
	DryRunStore func() driven.RecipeStore
}

// ExtractionService drives archives through the reader and parser into the
// recipe store. It runs a single sequential worker.
type ExtractionService struct {
	scanner driven.FolderScanner
	reader  driven.ArchiveReader
	parser  driven.RecipeParser
	store   driven.RecipeStore
	runs    driven.RunStore
	lock    driven.ExtractionLock
	config  ExtractionConfig
	now     func() time.Time

	mu     sync.RWMutex
	status driving.ExtractionStatus
}

// NewExtractionService creates a new extraction service.
// The run store and lock are optional.
func NewExtractionService(
	scanner driven.FolderScanner,
	reader driven.ArchiveReader,
	parser driven.RecipeParser,
	store driven.RecipeStore,
	runs driven.RunStore,
	lock driven.ExtractionLock,
	config ExtractionConfig,
) *ExtractionService {
	if config.BatchSize <= 0 {
		config.BatchSize = domain.DefaultBatchSize
	}
	if config.ProgressEvery <= 0 {
		config.ProgressEvery = domain.DefaultProgressEvery
	}
	return &ExtractionService{
		scanner: scanner,
		reader:  reader,
		parser:  parser,
		store:   store,
		runs:    runs,
		lock:    lock,
		config:  config,
		now:     time.Now,
	}
}

// run is the mutable state of one ExtractAll call.
type run struct {
	id       string
	store    driven.RecipeStore
	opts     domain.ExtractionOptions
	progress chan<- domain.ExtractionProgress
	total    int
	batch    []domain.Recipe
	parsed   int
	result   *domain.ExtractionResult
}

func (r *run) fail(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	logger.Warn("extract: %s", msg)
	r.result.Errors = append(r.result.Errors, msg)
}

// ExtractAll extracts recipes from every archive in input order.
// Cancellation is checked between archives; a cancelled run still returns
// its partial result together with the context error.
func (s *ExtractionService) ExtractAll(
	ctx context.Context,
	archivePaths []string,
	opts domain.ExtractionOptions,
	progress chan<- domain.ExtractionProgress,
) (*domain.ExtractionResult, error) {
	archivePaths = uniquePaths(archivePaths)
	r := &run{
		id:       uuid.New().String(),
		store:    s.store,
		opts:     opts,
		progress: progress,
		total:    len(archivePaths),
		batch:    make([]domain.Recipe, 0, s.config.BatchSize),
		result:   &domain.ExtractionResult{Errors: make([]string, 0)},
	}
	r.result.RunID = r.id

	if opts.DryRun {
		if s.config.DryRunStore == nil {
			return nil, fmt.Errorf("%w: dry run is not available", domain.ErrInvalidInput)
		}
		r.store = s.config.DryRunStore()
	} else if s.lock != nil {
		release, err := s.lock.TryAcquire()
		if err != nil {
			return nil, err
		}
		defer func() {
			if err := release(); err != nil {
				logger.Warn("extract: release lock: %v", err)
			}
		}()
	}

	if opts.Replace && !opts.DryRun {
		if err := r.store.Clear(ctx); err != nil {
			return nil, fmt.Errorf("clear store: %w", err)
		}
		logger.Info("extract: cleared existing recipes")
	}

	record := &domain.ExtractionRun{
		ID:            r.id,
		StartedAt:     s.now().UTC(),
		ArchivesTotal: r.total,
		Replaced:      opts.Replace,
	}

	s.setRunning(true, domain.ExtractionProgress{Total: r.total})
	defer s.setRunning(false, domain.ExtractionProgress{})

	logger.Section("Extraction " + r.id)
	for i, path := range archivePaths {
		if ctx.Err() != nil {
			break
		}
		name := domain.ArchiveDisplayName(path)
		s.extractArchive(ctx, r, i, path, name)
		s.emit(r, domain.ExtractionProgress{
			Current:        i + 1,
			Total:          r.total,
			CurrentArchive: name,
			RecipesSoFar:   r.parsed,
		})
	}

	// Commit what was parsed even when cancelled.
	s.flush(context.WithoutCancel(ctx), r)

	record.FinishedAt = s.now().UTC()
	record.ArchivesProcessed = r.result.ArchivesProcessed
	record.RecipesExtracted = r.result.RecipesExtracted
	record.ErrorCount = len(r.result.Errors)
	record.Status = domain.RunStatusCompleted
	if ctx.Err() != nil {
		record.Status = domain.RunStatusCancelled
	}

	if s.runs != nil && !opts.DryRun {
		if err := s.runs.SaveRun(context.WithoutCancel(ctx), record); err != nil {
			return r.result, fmt.Errorf("save run: %w", err)
		}
	}

	logger.Info("extract: %d archives, %d recipes, %d errors in %s",
		r.result.ArchivesProcessed, r.result.RecipesExtracted, len(r.result.Errors), record.Duration())

	if err := ctx.Err(); err != nil {
		return r.result, err
	}
	return r.result, nil
}

// extractArchive reads every recipe entry of one archive into the batch.
// Cancellation is not checked inside an archive, so its writes run
// detached from ctx and the archive in flight is committed whole.
func (s *ExtractionService) extractArchive(ctx context.Context, r *run, index int, path, name string) {
	ctx = context.WithoutCancel(ctx)

	archive, err := s.reader.Open(path)
	if err != nil {
		r.fail("%s: %v", name, err)
		return
	}
	defer archive.Close() //nolint:errcheck

	entries := archive.Entries(domain.IsRecipeEntry)
	r.result.ArchivesProcessed++
	logger.Debug("extract: %s has %d recipe entries", name, len(entries))

	if r.opts.ReplaceArchives {
		// Pending rows may belong to this archive from an earlier position
		// in the input, so they are committed before the delete.
		s.flush(ctx, r)
		removed, err := r.store.DeleteArchive(ctx, path)
		if err != nil {
			r.fail("%s: remove previous recipes: %v", name, err)
			return
		}
		if removed > 0 {
			logger.Debug("extract: removed %d previous recipes of %s", removed, name)
		}
	}

	for _, entry := range entries {
		if entry.IsDir {
			continue
		}
		raw, err := archive.Read(entry.Name)
		if err != nil {
			r.fail("%s:%s: %v", name, entry.Name, err)
			continue
		}

		recipe := s.parser.Parse(name, entry.Name, raw)
		recipe.ArchivePath = path
		recipe.RunID = r.id
		if recipe.Kind == domain.KindInvalid {
			if reason := s.parser.Validate(raw); reason != nil {
				r.fail("%s:%s: %v", name, entry.Name, reason)
			}
		}

		r.batch = append(r.batch, recipe)
		r.parsed++

		if len(r.batch) >= s.config.BatchSize {
			s.flush(ctx, r)
		}
		if r.parsed%s.config.ProgressEvery == 0 {
			s.emit(r, domain.ExtractionProgress{
				Current:        index,
				Total:          r.total,
				CurrentArchive: name,
				RecipesSoFar:   r.parsed,
			})
		}
	}
}

// flush commits the pending batch. A failed batch is reported and its
// rows are not counted.
func (s *ExtractionService) flush(ctx context.Context, r *run) {
	if len(r.batch) == 0 {
		return
	}
	n := len(r.batch)
	if err := r.store.InsertBatch(ctx, r.batch); err != nil {
		r.fail("store batch of %d recipes: %v", n, err)
	} else {
		r.result.RecipesExtracted += n
	}
	r.batch = make([]domain.Recipe, 0, s.config.BatchSize)
}

// emit records progress and offers it to the caller without blocking.
func (s *ExtractionService) emit(r *run, p domain.ExtractionProgress) {
	s.mu.Lock()
	s.status.Progress = p
	s.mu.Unlock()

	if r.progress == nil {
		return
	}
	select {
	case r.progress <- p:
	default:
	}
}

func (s *ExtractionService) setRunning(running bool, p domain.ExtractionProgress) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = driving.ExtractionStatus{Running: running, Progress: p}
}

// ExtractFolder scans dir and extracts every archive found.
func (s *ExtractionService) ExtractFolder(
	ctx context.Context,
	dir string,
	opts domain.ExtractionOptions,
	progress chan<- domain.ExtractionProgress,
) (*domain.ExtractionResult, error) {
	archives, err := s.scanner.Scan(ctx, dir)
	if err != nil {
		return nil, err
	}
	paths := make([]string, 0, len(archives))
	for _, a := range archives {
		paths = append(paths, a.Path)
	}
	logger.Info("extract: found %d archives in %s", len(paths), dir)
	return s.ExtractAll(ctx, paths, opts, progress)
}

// Status returns the progress of the extraction in flight, if any.
func (s *ExtractionService) Status() driving.ExtractionStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}

// History returns the most recent extraction runs.
func (s *ExtractionService) History(ctx context.Context, limit int) ([]domain.ExtractionRun, error) {
	if s.runs == nil {
		return []domain.ExtractionRun{}, nil
	}
	return s.runs.ListRuns(ctx, limit)
}

// uniquePaths drops repeated paths, keeping the first occurrence.
func uniquePaths(paths []string) []string {
	seen := make(map[string]struct{}, len(paths))
	unique := make([]string, 0, len(paths))
	for _, p := range paths {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		unique = append(unique, p)
	}
	return unique
}

// IsCancelled reports whether err came from a cancelled extraction.
func IsCancelled(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
