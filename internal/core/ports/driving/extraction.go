package driving

import (
	"context"

	"github.com/craftdex/craftdex/internal/core/domain"
)

// ExtractionService runs recipe extraction over mod archives.
type ExtractionService interface {
	// ExtractAll extracts recipes from every archive in order.
	// Progress events are sent on progress without blocking; events are
	// dropped when the channel is full. The channel is not closed.
	// Per-archive and per-entry failures are collected in the result;
	// a returned error means the run itself could not proceed.
	ExtractAll(
		ctx context.Context,
		archivePaths []string,
		opts domain.ExtractionOptions,
		progress chan<- domain.ExtractionProgress,
	) (*domain.ExtractionResult, error)

	// ExtractFolder scans dir and extracts every archive found.
	ExtractFolder(
		ctx context.Context,
		dir string,
		opts domain.ExtractionOptions,
		progress chan<- domain.ExtractionProgress,
	) (*domain.ExtractionResult, error)

	// Status returns the progress of the extraction in flight, if any.
	Status() ExtractionStatus

	// History returns the most recent extraction runs.
	History(ctx context.Context, limit int) ([]domain.ExtractionRun, error)
}

// ExtractionStatus represents the current state of an extraction.
type ExtractionStatus struct {
	// Running indicates an extraction is in progress.
	Running bool

	// Progress is the last progress recorded.
	Progress domain.ExtractionProgress
}
