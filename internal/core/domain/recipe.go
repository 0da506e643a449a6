package domain

import (
	"strings"
	"time"
)

// Recipe type markers used when the document does not declare a usable type.
const (
	// TypeUnknown is recorded when the JSON has no string "type" field.
	TypeUnknown = "unknown"

	// TypeInvalid is recorded when the bytes are not a JSON object.
	TypeInvalid = "invalid"

	// UnknownIngredient stands in for an ingredient slot that could not be resolved.
	UnknownIngredient = "unknown"

	// TagPrefix marks an ingredient that references an item tag.
	TagPrefix = "#"

	// AlternativeSeparator joins the alternatives accepted by a single slot.
	AlternativeSeparator = "|"
)

// RecipeKind is the closed set of recipe shapes the parser understands.
// It is resolved once from the declared type string.
type RecipeKind string

// Recipe kinds.
const (
	// KindShaped is a grid recipe resolved through a pattern and key.
	KindShaped RecipeKind = "shaped"

	// KindShapeless is a flat ingredient list with no positions.
	KindShapeless RecipeKind = "shapeless"

	// KindCooking covers smelting, blasting, smoking and campfire cooking.
	KindCooking RecipeKind = "cooking"

	// KindStonecutting is a single-input stonecutter recipe.
	KindStonecutting RecipeKind = "stonecutting"

	// KindSmithing covers smithing transform, trim and the legacy smithing table.
	KindSmithing RecipeKind = "smithing"

	// KindSpecial is a hardcoded recipe with nothing to extract.
	KindSpecial RecipeKind = "special"

	// KindGeneric is any other (usually modded) type; common fields are probed.
	KindGeneric RecipeKind = "generic"

	// KindInvalid marks bytes that could not be decoded.
	KindInvalid RecipeKind = "invalid"
)

// ClassifyRecipeType maps a declared type string to its kind.
// The namespace prefix is ignored, so "minecraft:crafting_shaped" and
// "crafting_shaped" classify the same.
func ClassifyRecipeType(recipeType string) RecipeKind {
	if recipeType == TypeInvalid {
		return KindInvalid
	}
	name := recipeType
	if i := strings.LastIndex(name, ":"); i >= 0 {
		name = name[i+1:]
	}

	switch name {
	case "crafting_shaped":
		return KindShaped
	case "crafting_shapeless":
		return KindShapeless
	case "smelting", "blasting", "smoking", "campfire_cooking":
		return KindCooking
	case "stonecutting":
		return KindStonecutting
	case "smithing", "smithing_transform", "smithing_trim":
		return KindSmithing
	}

	if strings.Contains(name, "special") {
		return KindSpecial
	}
	return KindGeneric
}

// Recipe is a normalised crafting recipe extracted from a mod archive.
type Recipe struct {
	// ID is the surrogate key assigned by the store. Zero until stored.
	ID int64 `json:"id"`

	// ModName is the display name of the owning archive.
	ModName string `json:"mod_name"`

	// ArchivePath is the filesystem path of the owning archive.
	ArchivePath string `json:"archive_path,omitempty"`

	// SourcePath is the entry path the recipe was read from.
	SourcePath string `json:"path"`

	// RecipeType is the declared type, "unknown" or "invalid". Never empty.
	RecipeType string `json:"recipe_type"`

	// Kind is the classified shape of the recipe.
	Kind RecipeKind `json:"kind"`

	// ResultItem is the produced item, nil when no output resolves.
	ResultItem *string `json:"result_item"`

	// ResultCount is the produced quantity, nil when there is no result field.
	ResultCount *int `json:"result_count"`

	// Ingredients lists one resolved identifier per occupied slot, in
	// declaration order. Shaped recipes repeat an ingredient per grid cell.
	Ingredients []string `json:"ingredients"`

	// Grid is the normalised shaped pattern. Only set for shaped recipes
	// and not persisted; it is re-derived from RawJSON on demand.
	Grid *ShapedGrid `json:"grid,omitempty"`

	// RawJSON is the original document.
	RawJSON string `json:"raw_json"`

	// RunID identifies the extraction run that stored the recipe.
	RunID string `json:"run_id,omitempty"`

	// CreatedAt is when the recipe was stored.
	CreatedAt time.Time `json:"created_at,omitempty"`
}

// Result returns the result item or an empty string.
func (r *Recipe) Result() string {
	if r.ResultItem == nil {
		return ""
	}
	return *r.ResultItem
}

// Count returns the result count, treating an absent count as 1.
func (r *Recipe) Count() int {
	if r.ResultCount == nil {
		return 1
	}
	return *r.ResultCount
}

// ShapedGrid is a shaped pattern rewritten with placeholder symbols
// A, B, C... assigned in first-seen order.
type ShapedGrid struct {
	// Rows are the pattern rows using placeholder symbols; blanks are spaces.
	Rows []string `json:"rows"`

	// Legend maps each placeholder to its resolved ingredient.
	Legend []GridSymbol `json:"legend"`
}

// GridSymbol is one legend entry of a ShapedGrid.
type GridSymbol struct {
	Symbol     string `json:"symbol"`
	Ingredient string `json:"ingredient"`
}

// TypeCount is the number of stored recipes of one recipe type.
type TypeCount struct {
	RecipeType string `json:"recipe_type"`
	Count      int64  `json:"count"`
}
