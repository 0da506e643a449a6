package driving

import (
	"context"
	"time"

	"github.com/craftdex/craftdex/internal/core/domain"
)

// WatchService keeps the store in step with a mods folder.
type WatchService interface {
	// Watch re-extracts archives as they change until ctx is cancelled.
	// Changes are coalesced for the debounce interval before extracting.
	// onResult, if non-nil, receives each batch's result.
	Watch(ctx context.Context, dir string, debounce time.Duration, onResult func(*domain.ExtractionResult)) error
}
