// Package normalize coerces loosely-typed admin input into the canonical
// shapes the persistence layer stores. These are last-resort sanitizers, not
// validators: they never fail. Validation that reports back to the operator
// lives in Warnings.
package normalize

import (
	"encoding/json"
	"fmt"
	"strings"

	"portfolio_backend/internal/models"
)

// MediaType uppercases the input and checks membership against the known
// enum. Empty or unrecognized values fall back to VIDEO.
func MediaType(value string) models.MediaType {
	mt := models.MediaType(strings.ToUpper(strings.TrimSpace(value)))
	if models.KnownMediaTypes[mt] {
		return mt
	}
	return models.MediaTypeVideo
}

// StringArray accepts an array (each element stringified) or a
// comma-separated string (split, trimmed, empties dropped). Any other input
// yields an empty, non-nil slice.
func StringArray(value any) []string {
	switch v := value.(type) {
	case []string:
		out := make([]string, len(v))
		copy(out, v)
		return out
	case []any:
		out := make([]string, 0, len(v))
		for _, el := range v {
			out = append(out, stringify(el))
		}
		return out
	case string:
		out := []string{}
		for _, part := range strings.Split(v, ",") {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				out = append(out, trimmed)
			}
		}
		return out
	default:
		return []string{}
	}
}

// JSONObject accepts a map directly. A string is parsed and kept only when it
// decodes to an object. Every failure path returns an empty, non-nil map.
func JSONObject(value any) map[string]any {
	switch v := value.(type) {
	case map[string]any:
		return v
	case string:
		var parsed any
		if err := json.Unmarshal([]byte(v), &parsed); err != nil {
			return map[string]any{}
		}
		if obj, ok := parsed.(map[string]any); ok {
			return obj
		}
		return map[string]any{}
	default:
		return map[string]any{}
	}
}

func stringify(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case float64:
		// JSON numbers decode as float64; keep integers unpadded.
		if s == float64(int64(s)) {
			return fmt.Sprintf("%d", int64(s))
		}
		return fmt.Sprintf("%g", s)
	default:
		return fmt.Sprintf("%v", v)
	}
}
