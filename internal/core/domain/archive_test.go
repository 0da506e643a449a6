package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsRecipeEntry(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		expected bool
	}{
		{"vanilla recipe dir", "data/minecraft/recipe/stick.json", true},
		{"plural recipes dir", "data/create/recipes/crushing/ore.json", true},
		{"nested subdirectory", "data/mod/recipes/a/b/c.json", true},
		{"prefixed path", "assets/../data/mod/recipes/x.json", true},
		{"not json", "data/mod/recipes/readme.txt", false},
		{"directory entry", "data/mod/recipes/", false},
		{"missing namespace", "data/recipes/x.json", false},
		{"empty namespace", "data//recipes/x.json", false},
		{"wrong folder", "data/mod/loot_tables/x.json", false},
		{"case sensitive", "Data/mod/Recipes/x.json", false},
		{"assets not data", "assets/mod/recipes/x.json", false},
		{"recipes file not dir", "data/mod/recipes.json", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsRecipeEntry(tt.path))
		})
	}
}

func TestAllEntries(t *testing.T) {
	assert.True(t, AllEntries("anything"))
	assert.True(t, AllEntries(""))
}

func TestArchiveDisplayName(t *testing.T) {
	assert.Equal(t, "create-1.20.jar", ArchiveDisplayName("/home/u/mods/create-1.20.jar"))
	assert.Equal(t, "plain.jar", ArchiveDisplayName("plain.jar"))
}

func TestChangeType_String(t *testing.T) {
	assert.Equal(t, "created", ChangeCreated.String())
	assert.Equal(t, "updated", ChangeUpdated.String())
	assert.Equal(t, "deleted", ChangeDeleted.String())
	assert.Equal(t, "unknown", ChangeType(42).String())
}
