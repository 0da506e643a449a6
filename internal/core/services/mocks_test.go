package services

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/craftdex/craftdex/internal/adapters/driven/storage/memory"
	"github.com/craftdex/craftdex/internal/core/domain"
	"github.com/craftdex/craftdex/internal/core/ports/driven"
)

// mockArchiveReader serves archives from a map of path -> entry -> content.
// A nil content map makes the archive unreadable; a nil entry value makes
// that entry fail to read.
type mockArchiveReader struct {
	archives map[string]map[string][]byte
	opened   []string
	onOpen   func(path string)
}

var errMockRead = errors.New("mock read failure")

func (m *mockArchiveReader) Open(path string) (driven.Archive, error) {
	m.opened = append(m.opened, path)
	if m.onOpen != nil {
		m.onOpen(path)
	}
	entries, ok := m.archives[path]
	if !ok || entries == nil {
		return nil, domain.ErrArchiveUnreadable
	}
	return &mockArchive{entries: entries}, nil
}

func (m *mockArchiveReader) ListEntries(_ context.Context, path string, filter domain.EntryFilter) ([]domain.ArchiveEntry, error) {
	a, err := m.Open(path)
	if err != nil {
		return nil, err
	}
	defer a.Close() //nolint:errcheck
	return a.Entries(filter), nil
}

func (m *mockArchiveReader) ReadEntry(_ context.Context, path, entry string) ([]byte, error) {
	a, err := m.Open(path)
	if err != nil {
		return nil, err
	}
	defer a.Close() //nolint:errcheck
	return a.Read(entry)
}

type mockArchive struct {
	entries map[string][]byte
}

func (a *mockArchive) Entries(filter domain.EntryFilter) []domain.ArchiveEntry {
	names := make([]string, 0, len(a.entries))
	for name := range a.entries {
		if filter == nil || filter(name) {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	result := make([]domain.ArchiveEntry, 0, len(names))
	for _, name := range names {
		result = append(result, domain.ArchiveEntry{Name: name})
	}
	return result
}

func (a *mockArchive) Read(entry string) ([]byte, error) {
	content, ok := a.entries[entry]
	if !ok {
		return nil, domain.ErrEntryNotFound
	}
	if content == nil {
		return nil, errMockRead
	}
	return content, nil
}

func (a *mockArchive) Close() error { return nil }

// mockScanner returns fixed archives.
type mockScanner struct {
	archives []domain.ArchiveFile
	err      error
}

func (m *mockScanner) Scan(_ context.Context, _ string) ([]domain.ArchiveFile, error) {
	return m.archives, m.err
}

// failingRecipeStore fails InsertBatch for the given call numbers (1-based).
type failingRecipeStore struct {
	*memory.RecipeStore
	mu        sync.Mutex
	calls     int
	failCalls map[int]bool
	clearErr  error
}

func (f *failingRecipeStore) InsertBatch(ctx context.Context, recipes []domain.Recipe) error {
	f.mu.Lock()
	f.calls++
	fail := f.failCalls[f.calls]
	f.mu.Unlock()
	if fail {
		return domain.ErrStoreWrite
	}
	return f.RecipeStore.InsertBatch(ctx, recipes)
}

func (f *failingRecipeStore) Clear(ctx context.Context) error {
	if f.clearErr != nil {
		return f.clearErr
	}
	return f.RecipeStore.Clear(ctx)
}

// mockLock is an in-process ExtractionLock.
type mockLock struct {
	mu       sync.Mutex
	held     bool
	acquired int
}

func (l *mockLock) TryAcquire() (func() error, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.held {
		return nil, domain.ErrExtractionInProgress
	}
	l.held = true
	l.acquired++
	return func() error {
		l.mu.Lock()
		defer l.mu.Unlock()
		l.held = false
		return nil
	}, nil
}

// mockWatcher emits changes pushed by the test.
type mockWatcher struct {
	changes chan domain.ArchiveChange
	err     error
}

func (m *mockWatcher) Watch(_ context.Context, _ string) (<-chan domain.ArchiveChange, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.changes, nil
}

// Ensure mocks implement the interfaces.
var (
	_ driven.ArchiveReader  = (*mockArchiveReader)(nil)
	_ driven.FolderScanner  = (*mockScanner)(nil)
	_ driven.RecipeStore    = (*failingRecipeStore)(nil)
	_ driven.ExtractionLock = (*mockLock)(nil)
	_ driven.FolderWatcher  = (*mockWatcher)(nil)
)
