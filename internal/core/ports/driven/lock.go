package driven

// ExtractionLock prevents two extractions writing the same store.
type ExtractionLock interface {
	// TryAcquire takes the lock without blocking.
	// Returns domain.ErrExtractionInProgress if another holder has it.
	TryAcquire() (release func() error, err error)
}
