// Package recipe normalises recipe JSON documents found in mod archives.
//
// The declared type is classified once into a domain.RecipeKind and each
// kind has its own extraction rules. Unrecognised (usually modded) types
// fall back to probing the common ingredient fields. Parsing never fails:
// bytes that are not a JSON object become an "invalid" recipe that still
// carries the raw document.
package recipe

import (
	"encoding/json"
	"fmt"
	"unicode/utf8"

	"github.com/craftdex/craftdex/internal/core/domain"
	"github.com/craftdex/craftdex/internal/core/ports/driven"
)

// Ensure Parser implements the interface.
var _ driven.RecipeParser = (*Parser)(nil)

// Parser converts recipe documents into domain recipes.
type Parser struct{}

// New creates a new recipe parser.
func New() *Parser {
	return &Parser{}
}

// document is a decoded recipe object.
type document map[string]any

// Parse normalises one recipe document.
func (p *Parser) Parse(modName, entryPath string, raw []byte) domain.Recipe {
	recipe := domain.Recipe{
		ModName:     modName,
		SourcePath:  entryPath,
		Ingredients: make([]string, 0),
		RawJSON:     rawText(raw),
	}

	doc, err := decode(raw)
	if err != nil {
		recipe.RecipeType = domain.TypeInvalid
		recipe.Kind = domain.KindInvalid
		return recipe
	}

	recipe.RecipeType = declaredType(doc)
	recipe.Kind = domain.ClassifyRecipeType(recipe.RecipeType)
	recipe.ResultItem, recipe.ResultCount = resolveResult(doc)

	var ings ingredients
	switch recipe.Kind {
	case domain.KindShaped:
		recipe.Grid = ings.addGrid(doc)

	case domain.KindShapeless:
		ings.addList(doc["ingredients"])

	case domain.KindCooking, domain.KindStonecutting:
		ings.addOptionalSlot(doc["ingredient"])

	case domain.KindSmithing:
		// Legacy smithing has no template; the order is the table's slot order.
		for _, field := range []string{"template", "base", "addition"} {
			ings.addOptionalSlot(doc[field])
		}

	case domain.KindSpecial:
		// Hardcoded recipes declare nothing to extract.

	case domain.KindGeneric:
		recipe.Grid = ings.addProbed(doc)

	case domain.KindInvalid:
		// A declared type of "invalid" is taken at face value.
	}

	recipe.Ingredients = ings.list()
	return recipe
}

// Validate reports why raw is not a recipe document, or nil if it is one.
func (p *Parser) Validate(raw []byte) error {
	_, err := decode(raw)
	return err
}

func decode(raw []byte) (document, error) {
	var value any
	if err := json.Unmarshal(raw, &value); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedRecipe, err)
	}
	obj, ok := value.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: top level is not an object", domain.ErrMalformedRecipe)
	}
	return document(obj), nil
}

// declaredType returns the "type" field, or "unknown" when it is missing,
// empty or not a string.
func declaredType(doc document) string {
	if t, ok := doc["type"].(string); ok && t != "" {
		return t
	}
	return domain.TypeUnknown
}

// rawText keeps the document verbatim when it is valid UTF-8.
func rawText(raw []byte) string {
	if utf8.Valid(raw) {
		return string(raw)
	}
	return fmt.Sprintf("<binary content: %d bytes>", len(raw))
}
