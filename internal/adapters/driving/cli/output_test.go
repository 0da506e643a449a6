package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/craftdex/craftdex/internal/core/domain"
)

func TestFormatResult(t *testing.T) {
	assert.Equal(t, "-", formatResult(&domain.Recipe{}))
	assert.Equal(t, "minecraft:torch", formatResult(&domain.Recipe{ResultItem: strPtr("minecraft:torch")}))
	assert.Equal(t, "minecraft:torch x4", formatResult(&domain.Recipe{ResultItem: strPtr("minecraft:torch"), ResultCount: intPtr(4)}))
}

func TestSummariseIngredients(t *testing.T) {
	tests := []struct {
		name        string
		ingredients []string
		want        string
	}{
		{"empty", nil, ""},
		{"duplicates collapse", []string{"a", "a", "b"}, "a, b"},
		{"truncated", []string{"a", "b", "c", "d", "e"}, "a, b, c, +2 more"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, summariseIngredients(tt.ingredients, 3))
		})
	}
}

func TestFormatProgress(t *testing.T) {
	p := domain.ExtractionProgress{Current: 3, Total: 10, CurrentArchive: "tools.jar", RecipesSoFar: 42}

	assert.Equal(t, "[3/10] tools.jar (42 recipes)", formatProgress(p))
}

func TestNewTable_FooterKeepsCase(t *testing.T) {
	var buf bytes.Buffer
	tbl := newTable(&buf, "Type", "Count")
	tbl.AppendRow([]any{"minecraft:crafting_shaped", 3})
	tbl.AppendFooter([]any{"Total", "3 recipes"})

	tbl.Render()

	assert.Contains(t, buf.String(), "Total")
	assert.Contains(t, buf.String(), "3 recipes")
	assert.NotContains(t, buf.String(), "TOTAL")
}
