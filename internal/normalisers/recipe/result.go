package recipe

import "math"

// resultFields are checked in order; the first present one is the result.
var resultFields = []string{"result", "output"}

// resolveResult reads the produced item and count. The result may be a bare
// item string or an object with "item" (or "id") and "count". The count
// defaults to 1 whenever a result field exists and is nil only when there
// is none. Some modded recipes use "output", or a "results" array whose
// first element is taken.
func resolveResult(doc document) (*string, *int) {
	var value any
	found := false
	for _, field := range resultFields {
		if v, ok := doc[field]; ok {
			value, found = v, true
			break
		}
	}
	if !found {
		if arr, ok := doc["results"].([]any); ok && len(arr) > 0 {
			value, found = arr[0], true
		}
	}
	if !found {
		return nil, nil
	}

	count := 1
	switch v := value.(type) {
	case string:
		// Older stonecutting recipes put the count beside a bare result.
		if n, ok := positiveInt(doc["count"]); ok {
			count = n
		}
		if v == "" {
			return nil, &count
		}
		return &v, &count

	case map[string]any:
		if n, ok := positiveInt(v["count"]); ok {
			count = n
		}
		for _, field := range []string{"item", "id"} {
			if item, ok := v[field].(string); ok && item != "" {
				return &item, &count
			}
		}
		return nil, &count

	default:
		return nil, &count
	}
}

// positiveInt accepts whole JSON numbers greater than zero.
func positiveInt(value any) (int, bool) {
	f, ok := value.(float64)
	if !ok || f < 1 || f != math.Trunc(f) || f > math.MaxInt32 {
		return 0, false
	}
	return int(f), true
}
