package domain

import "time"

// ExtractionProgress is emitted while an extraction runs.
// Current never decreases within a run and Total is fixed.
type ExtractionProgress struct {
	// Current is the number of archives finished so far.
	Current int `json:"current"`

	// Total is the number of archives in the run.
	Total int `json:"total"`

	// CurrentArchive is the display name of the archive in flight.
	CurrentArchive string `json:"current_mod"`

	// RecipesSoFar is the number of recipes parsed so far.
	RecipesSoFar int `json:"recipes_so_far"`
}

// Fraction returns progress as a value between 0 and 1.
func (p ExtractionProgress) Fraction() float64 {
	if p.Total <= 0 {
		return 0
	}
	return float64(p.Current) / float64(p.Total)
}

// ExtractionResult summarises a finished extraction.
type ExtractionResult struct {
	// RunID identifies the run in the history table.
	RunID string `json:"run_id"`

	// ArchivesProcessed counts archives whose entries could be listed.
	ArchivesProcessed int `json:"mods_processed"`

	// RecipesExtracted counts rows committed to the store, not merely parsed.
	RecipesExtracted int `json:"recipes_extracted"`

	// Errors holds one description per archive or entry that failed.
	Errors []string `json:"errors"`
}

// ExtractionOptions controls how an extraction treats existing rows.
type ExtractionOptions struct {
	// Replace clears the whole store before extracting.
	Replace bool

	// ReplaceArchives deletes prior rows of each archive before its rows
	// are written. Used when re-extracting changed archives.
	ReplaceArchives bool

	// DryRun parses everything but writes to a throwaway store.
	DryRun bool
}

// RunStatus is the outcome of an extraction run.
type RunStatus string

// Run statuses.
const (
	RunStatusCompleted RunStatus = "completed"
	RunStatusCancelled RunStatus = "cancelled"
	RunStatusFailed    RunStatus = "failed"
)

// ExtractionRun is the persisted record of one extraction.
type ExtractionRun struct {
	ID                string    `json:"id"`
	StartedAt         time.Time `json:"started_at"`
	FinishedAt        time.Time `json:"finished_at"`
	ArchivesTotal     int       `json:"archives_total"`
	ArchivesProcessed int       `json:"mods_processed"`
	RecipesExtracted  int       `json:"recipes_extracted"`
	ErrorCount        int       `json:"error_count"`
	Replaced          bool      `json:"replaced"`
	Status            RunStatus `json:"status"`
}

// Duration returns how long the run took.
func (r ExtractionRun) Duration() time.Duration {
	if r.FinishedAt.IsZero() {
		return 0
	}
	return r.FinishedAt.Sub(r.StartedAt)
}
