package recipe

import (
	"strings"

	"github.com/craftdex/craftdex/internal/core/domain"
)

// placeholders are assigned to pattern symbols in first-seen order.
const placeholders = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// overflowPlaceholder is used once every placeholder is taken.
const overflowPlaceholder = "?"

// addGrid walks the pattern row by row, left to right, appending the
// resolved ingredient of every occupied cell. Spaces are empty cells.
// A symbol missing from the key resolves to "unknown".
func (i *ingredients) addGrid(doc document) *domain.ShapedGrid {
	rows := patternRows(doc["pattern"])
	key, _ := doc["key"].(map[string]any)

	grid := &domain.ShapedGrid{
		Rows:   make([]string, 0, len(rows)),
		Legend: make([]domain.GridSymbol, 0),
	}
	assigned := make(map[rune]string)

	for _, row := range rows {
		var out strings.Builder
		for _, cell := range row {
			if cell == ' ' {
				out.WriteRune(' ')
				continue
			}

			symbol, seen := assigned[cell]
			if !seen {
				symbol = nextPlaceholder(len(assigned))
				assigned[cell] = symbol

				ingredient := domain.UnknownIngredient
				if value, ok := key[string(cell)]; ok {
					if token, ok := resolveSlot(value); ok {
						ingredient = token
					}
				}
				grid.Legend = append(grid.Legend, domain.GridSymbol{
					Symbol:     symbol,
					Ingredient: ingredient,
				})
			}

			out.WriteString(symbol)
			i.slots = append(i.slots, legendIngredient(grid.Legend, symbol))
		}
		grid.Rows = append(grid.Rows, out.String())
	}

	return grid
}

// patternRows accepts an array of strings and ignores anything else.
func patternRows(value any) []string {
	arr, ok := value.([]any)
	if !ok {
		return nil
	}
	rows := make([]string, 0, len(arr))
	for _, elem := range arr {
		if row, ok := elem.(string); ok {
			rows = append(rows, row)
		}
	}
	return rows
}

func nextPlaceholder(n int) string {
	if n < len(placeholders) {
		return placeholders[n : n+1]
	}
	return overflowPlaceholder
}

func legendIngredient(legend []domain.GridSymbol, symbol string) string {
	for _, entry := range legend {
		if entry.Symbol == symbol {
			return entry.Ingredient
		}
	}
	return domain.UnknownIngredient
}
