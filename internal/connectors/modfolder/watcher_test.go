package modfolder

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/craftdex/craftdex/internal/core/domain"
)

func TestWatcher_Watch(t *testing.T) {
	t.Run("reports new archives", func(t *testing.T) {
		dir := t.TempDir()
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		changes, err := NewWatcher(nil).Watch(ctx, dir)
		require.NoError(t, err)

		go func() {
			time.Sleep(50 * time.Millisecond)
			_ = os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0600)
			_ = os.WriteFile(filepath.Join(dir, "new.jar"), []byte("x"), 0600)
		}()

		select {
		case change := <-changes:
			assert.Equal(t, domain.ChangeCreated, change.Type)
			assert.Equal(t, "new.jar", filepath.Base(change.Path))
		case <-time.After(2 * time.Second):
			t.Fatal("timeout waiting for archive change")
		}
	})

	t.Run("closes channel on cancel", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		changes, err := NewWatcher(nil).Watch(ctx, t.TempDir())
		require.NoError(t, err)

		cancel()

		select {
		case _, ok := <-changes:
			assert.False(t, ok)
		case <-time.After(2 * time.Second):
			t.Fatal("channel not closed after cancel")
		}
	})

	t.Run("missing directory", func(t *testing.T) {
		_, err := NewWatcher(nil).Watch(context.Background(), filepath.Join(t.TempDir(), "missing"))
		assert.ErrorIs(t, err, domain.ErrDirectoryUnreadable)
	})
}

func TestWatcher_toChange(t *testing.T) {
	dir := t.TempDir()
	archive := writeFile(t, dir, "mod.jar", "content")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "folder.jar"), 0700))

	tests := []struct {
		name       string
		path       string
		op         fsnotify.Op
		wantChange bool
		wantType   domain.ChangeType
	}{
		{"create archive", archive, fsnotify.Create, true, domain.ChangeCreated},
		{"write archive", archive, fsnotify.Write, true, domain.ChangeUpdated},
		{"remove archive", filepath.Join(dir, "gone.jar"), fsnotify.Remove, true, domain.ChangeDeleted},
		{"rename archive", filepath.Join(dir, "old.jar"), fsnotify.Rename, true, domain.ChangeDeleted},
		{"chmod ignored", archive, fsnotify.Chmod, false, 0},
		{"directory ignored", filepath.Join(dir, "folder.jar"), fsnotify.Create, false, 0},
		{"non archive ignored", filepath.Join(dir, "notes.txt"), fsnotify.Remove, false, 0},
		{"hidden ignored", filepath.Join(dir, ".mod.jar"), fsnotify.Remove, false, 0},
	}

	w := NewWatcher(NewScanner())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			change, ok := w.toChange(fsnotify.Event{Name: tt.path, Op: tt.op})
			assert.Equal(t, tt.wantChange, ok)
			if tt.wantChange {
				assert.Equal(t, tt.wantType, change.Type)
				assert.Equal(t, tt.path, change.Path)
			}
		})
	}
}
