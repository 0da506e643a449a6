package modfolder

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/craftdex/craftdex/internal/core/domain"
	"github.com/craftdex/craftdex/internal/core/ports/driven"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestNewScanner(t *testing.T) {
	t.Run("defaults to jar", func(t *testing.T) {
		s := NewScanner()
		assert.Equal(t, []string{".jar"}, s.extensions)
	})

	t.Run("implements FolderScanner interface", func(t *testing.T) {
		var _ driven.FolderScanner = NewScanner()
	})
}

func TestScanner_Scan(t *testing.T) {
	ctx := context.Background()

	t.Run("lists archives sorted case-insensitively", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "zeta.jar", "zz")
		writeFile(t, dir, "Alpha.jar", "a")
		writeFile(t, dir, "beta.JAR", "bbb")
		writeFile(t, dir, "notes.txt", "ignored")
		writeFile(t, dir, ".hidden.jar", "ignored")
		require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.jar"), 0700))
		writeFile(t, filepath.Join(dir, "sub.jar"), "nested.jar", "ignored")

		archives, err := NewScanner().Scan(ctx, dir)
		require.NoError(t, err)

		require.Len(t, archives, 3)
		assert.Equal(t, "Alpha.jar", archives[0].Name)
		assert.Equal(t, "beta.JAR", archives[1].Name)
		assert.Equal(t, "zeta.jar", archives[2].Name)
		assert.Equal(t, int64(3), archives[1].Size)
		for _, a := range archives {
			assert.True(t, filepath.IsAbs(a.Path))
			assert.Equal(t, a.Name, filepath.Base(a.Path))
		}
	})

	t.Run("empty directory", func(t *testing.T) {
		archives, err := NewScanner().Scan(ctx, t.TempDir())
		require.NoError(t, err)
		assert.Empty(t, archives)
	})

	t.Run("custom extensions", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "a.jar", "")
		writeFile(t, dir, "b.zip", "")

		archives, err := NewScanner(".zip").Scan(ctx, dir)
		require.NoError(t, err)
		require.Len(t, archives, 1)
		assert.Equal(t, "b.zip", archives[0].Name)
	})

	t.Run("missing directory", func(t *testing.T) {
		_, err := NewScanner().Scan(ctx, filepath.Join(t.TempDir(), "missing"))
		assert.ErrorIs(t, err, domain.ErrDirectoryUnreadable)
	})

	t.Run("path is a file", func(t *testing.T) {
		path := writeFile(t, t.TempDir(), "file.jar", "")
		_, err := NewScanner().Scan(ctx, path)
		assert.ErrorIs(t, err, domain.ErrDirectoryUnreadable)
	})

	t.Run("cancelled context", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		_, err := NewScanner().Scan(cctx, t.TempDir())
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestScanner_Accepts(t *testing.T) {
	s := NewScanner(".jar", ".zip")

	assert.True(t, s.Accepts("/mods/create.jar"))
	assert.True(t, s.Accepts("pack.ZIP"))
	assert.False(t, s.Accepts("/mods/.create.jar"))
	assert.False(t, s.Accepts("/mods/create.jar.disabled"))
	assert.False(t, s.Accepts("/mods/readme"))
}
