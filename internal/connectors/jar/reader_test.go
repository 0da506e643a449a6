package jar

import (
	"archive/zip"
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/craftdex/craftdex/internal/core/domain"
	"github.com/craftdex/craftdex/internal/core/ports/driven"
)

type testEntry struct {
	name    string
	content string
}

// createTestJar builds a jar in memory and writes it to dir.
func createTestJar(t *testing.T, dir, name string, entries []testEntry) string {
	t.Helper()

	buf := new(bytes.Buffer)
	w := zip.NewWriter(buf)
	for _, e := range entries {
		f, err := w.Create(e.name)
		require.NoError(t, err)
		if e.content != "" {
			_, err = f.Write([]byte(e.content))
			require.NoError(t, err)
		}
	}
	require.NoError(t, w.Close())

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0600))
	return path
}

func sampleEntries() []testEntry {
	return []testEntry{
		{name: "META-INF/MANIFEST.MF", content: "Manifest-Version: 1.0\n"},
		{name: "data/"},
		{name: "data/examplemod/recipes/"},
		{name: "data/examplemod/recipes/stick.json", content: `{"type":"minecraft:crafting_shaped"}`},
		{name: "data/examplemod/recipes/torch.json", content: `{"type":"minecraft:crafting_shapeless"}`},
		{name: "data/minecraft/recipe/planks.json", content: `{"type":"minecraft:crafting_shapeless"}`},
		{name: "data/examplemod/loot_tables/block.json", content: `{}`},
		{name: "assets/examplemod/lang/en_us.json", content: `{}`},
	}
}

func TestNew(t *testing.T) {
	t.Run("uses default limit", func(t *testing.T) {
		r := New(0)
		assert.Equal(t, int64(domain.DefaultMaxEntryBytes), r.maxEntryBytes)
	})

	t.Run("keeps explicit limit", func(t *testing.T) {
		r := New(10)
		assert.Equal(t, int64(10), r.maxEntryBytes)
	})

	t.Run("implements ArchiveReader interface", func(t *testing.T) {
		var _ driven.ArchiveReader = New(0)
	})
}

func TestReader_ListEntries(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	path := createTestJar(t, dir, "example.jar", sampleEntries())
	r := New(0)

	t.Run("recipe filter returns only qualifying entries", func(t *testing.T) {
		entries, err := r.ListEntries(ctx, path, domain.IsRecipeEntry)
		require.NoError(t, err)

		require.Len(t, entries, 3)
		for _, e := range entries {
			assert.True(t, domain.IsRecipeEntry(e.Name), e.Name)
			assert.False(t, e.IsDir)
		}
		assert.Equal(t, "data/examplemod/recipes/stick.json", entries[0].Name)
		assert.Equal(t, "data/minecraft/recipe/planks.json", entries[2].Name)
	})

	t.Run("nil filter returns everything", func(t *testing.T) {
		entries, err := r.ListEntries(ctx, path, nil)
		require.NoError(t, err)
		assert.Len(t, entries, len(sampleEntries()))
	})

	t.Run("marks directories", func(t *testing.T) {
		entries, err := r.ListEntries(ctx, path, func(name string) bool { return name == "data/" })
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.True(t, entries[0].IsDir)
	})

	t.Run("zip without recipes has zero entries", func(t *testing.T) {
		other := createTestJar(t, dir, "other.zip", []testEntry{{name: "readme.txt", content: "hi"}})
		entries, err := r.ListEntries(ctx, other, domain.IsRecipeEntry)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("non archive is unreadable", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.jar")
		require.NoError(t, os.WriteFile(bad, []byte("definitely not a zip"), 0600))

		_, err := r.ListEntries(ctx, bad, domain.IsRecipeEntry)
		assert.ErrorIs(t, err, domain.ErrArchiveUnreadable)
	})

	t.Run("truncated archive is unreadable", func(t *testing.T) {
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		truncated := filepath.Join(dir, "truncated.jar")
		require.NoError(t, os.WriteFile(truncated, data[:len(data)/2], 0600))

		_, err = r.ListEntries(ctx, truncated, domain.IsRecipeEntry)
		assert.ErrorIs(t, err, domain.ErrArchiveUnreadable)
	})

	t.Run("missing file is unreadable", func(t *testing.T) {
		_, err := r.ListEntries(ctx, filepath.Join(dir, "missing.jar"), nil)
		assert.ErrorIs(t, err, domain.ErrArchiveUnreadable)
	})

	t.Run("cancelled context", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		_, err := r.ListEntries(cctx, path, nil)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestReader_ReadEntry(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	path := createTestJar(t, dir, "example.jar", sampleEntries())

	t.Run("returns entry content", func(t *testing.T) {
		data, err := New(0).ReadEntry(ctx, path, "data/examplemod/recipes/stick.json")
		require.NoError(t, err)
		assert.Equal(t, `{"type":"minecraft:crafting_shaped"}`, string(data))
	})

	t.Run("missing entry", func(t *testing.T) {
		_, err := New(0).ReadEntry(ctx, path, "data/examplemod/recipes/gone.json")
		assert.ErrorIs(t, err, domain.ErrEntryNotFound)
	})

	t.Run("directory entry is not readable", func(t *testing.T) {
		_, err := New(0).ReadEntry(ctx, path, "data/")
		assert.ErrorIs(t, err, domain.ErrEntryNotFound)
	})

	t.Run("entry above limit", func(t *testing.T) {
		_, err := New(8).ReadEntry(ctx, path, "data/examplemod/recipes/stick.json")
		assert.ErrorIs(t, err, domain.ErrEntryTooLarge)
	})
}

func TestArchive_RepeatedReads(t *testing.T) {
	dir := t.TempDir()
	path := createTestJar(t, dir, "example.jar", sampleEntries())

	a, err := New(0).Open(path)
	require.NoError(t, err)
	defer a.Close()

	entries := a.Entries(domain.IsRecipeEntry)
	require.Len(t, entries, 3)

	for _, e := range entries {
		data, err := a.Read(e.Name)
		require.NoError(t, err)
		assert.NotEmpty(t, data)
	}
}
