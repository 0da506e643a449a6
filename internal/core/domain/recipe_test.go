package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyRecipeType(t *testing.T) {
	tests := []struct {
		recipeType string
		expected   RecipeKind
	}{
		{"minecraft:crafting_shaped", KindShaped},
		{"crafting_shaped", KindShaped},
		{"minecraft:crafting_shapeless", KindShapeless},
		{"minecraft:smelting", KindCooking},
		{"minecraft:blasting", KindCooking},
		{"minecraft:smoking", KindCooking},
		{"minecraft:campfire_cooking", KindCooking},
		{"minecraft:stonecutting", KindStonecutting},
		{"minecraft:smithing_transform", KindSmithing},
		{"minecraft:smithing_trim", KindSmithing},
		{"minecraft:smithing", KindSmithing},
		{"minecraft:crafting_special_bannerduplicate", KindSpecial},
		{"create:crushing", KindGeneric},
		{TypeUnknown, KindGeneric},
		{TypeInvalid, KindInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.recipeType, func(t *testing.T) {
			assert.Equal(t, tt.expected, ClassifyRecipeType(tt.recipeType))
		})
	}
}

func TestRecipe_ResultAndCount(t *testing.T) {
	t.Run("absent result", func(t *testing.T) {
		r := Recipe{}
		assert.Equal(t, "", r.Result())
		assert.Equal(t, 1, r.Count())
	})

	t.Run("present result", func(t *testing.T) {
		item := "minecraft:torch"
		count := 4
		r := Recipe{ResultItem: &item, ResultCount: &count}
		assert.Equal(t, "minecraft:torch", r.Result())
		assert.Equal(t, 4, r.Count())
	})
}
