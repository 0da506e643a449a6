package recipe

import (
	"sort"
	"strings"

	"github.com/craftdex/craftdex/internal/core/domain"
)

// ingredients accumulates one resolved token per slot.
type ingredients struct {
	slots []string
}

func (i *ingredients) list() []string {
	if i.slots == nil {
		return make([]string, 0)
	}
	return i.slots
}

// addSlot appends one slot, recording "unknown" when it cannot be resolved.
func (i *ingredients) addSlot(value any) {
	token, ok := resolveSlot(value)
	if !ok {
		token = domain.UnknownIngredient
	}
	i.slots = append(i.slots, token)
}

// addOptionalSlot appends a slot only if the field is present.
func (i *ingredients) addOptionalSlot(value any) {
	if value != nil {
		i.addSlot(value)
	}
}

// addList appends one slot per array element. A non-array value is a
// single slot.
func (i *ingredients) addList(value any) {
	switch v := value.(type) {
	case nil:
	case []any:
		for _, elem := range v {
			i.addSlot(elem)
		}
	default:
		i.addSlot(v)
	}
}

// addProbed extracts ingredients from a recipe of unrecognised type by
// probing the fields common to modded recipes. It returns a grid when the
// recipe carries a pattern and key.
func (i *ingredients) addProbed(doc document) *domain.ShapedGrid {
	if v, ok := doc["ingredients"]; ok {
		i.addList(v)
	} else if v, ok := doc["ingredient"]; ok {
		i.addList(v)
	}

	var grid *domain.ShapedGrid
	if key, ok := doc["key"].(map[string]any); ok {
		if _, hasPattern := doc["pattern"]; hasPattern {
			grid = i.addGrid(doc)
		} else {
			symbols := make([]string, 0, len(key))
			for symbol := range key {
				symbols = append(symbols, symbol)
			}
			sort.Strings(symbols)
			for _, symbol := range symbols {
				i.addSlot(key[symbol])
			}
		}
	}

	if v, ok := doc["input"]; ok {
		i.addList(v)
	} else if v, ok := doc["inputs"]; ok {
		i.addList(v)
	}

	return grid
}

// resolveSlot turns one ingredient representation into a token:
//
//	"minecraft:stick"                  -> minecraft:stick
//	"#minecraft:planks"                -> #minecraft:planks
//	{"item": "minecraft:stick"}        -> minecraft:stick
//	{"tag": "c:ingots/iron"}           -> #c:ingots/iron
//	[{"item": "a:x"}, {"tag": "a:y"}]  -> a:x|#a:y
func resolveSlot(value any) (string, bool) {
	switch v := value.(type) {
	case string:
		if v == "" {
			return "", false
		}
		return v, true

	case map[string]any:
		if item, ok := v["item"].(string); ok && item != "" {
			return item, true
		}
		if tag, ok := v["tag"].(string); ok && tag != "" {
			if strings.HasPrefix(tag, domain.TagPrefix) {
				return tag, true
			}
			return domain.TagPrefix + tag, true
		}
		if id, ok := v["id"].(string); ok && id != "" {
			return id, true
		}
		// Wrapped ingredients, e.g. {"ingredient": {...}, "count": 2}.
		if inner, ok := v["ingredient"]; ok {
			return resolveSlot(inner)
		}
		return "", false

	case []any:
		alternatives := make([]string, 0, len(v))
		seen := make(map[string]bool, len(v))
		for _, elem := range v {
			token, ok := resolveSlot(elem)
			if !ok || seen[token] {
				continue
			}
			seen[token] = true
			alternatives = append(alternatives, token)
		}
		if len(alternatives) == 0 {
			return "", false
		}
		return strings.Join(alternatives, domain.AlternativeSeparator), true

	default:
		return "", false
	}
}
