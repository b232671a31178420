package normalize

import (
	"fmt"
	"strings"

	"portfolio_backend/internal/models"
)

// Warnings reports what the coercion pass changed, so operator mistakes do
// not vanish silently. The write still proceeds; warnings ride along in the
// response for the admin UI to display.
func Warnings(payload map[string]any) []string {
	var warnings []string

	if raw, ok := payload["mediaType"]; ok {
		str, isString := raw.(string)
		if !isString {
			warnings = append(warnings, "mediaType is not a string; stored as VIDEO")
		} else {
			mt := models.MediaType(strings.ToUpper(strings.TrimSpace(str)))
			if !models.KnownMediaTypes[mt] {
				warnings = append(warnings, fmt.Sprintf("unknown mediaType %q; stored as VIDEO", str))
			}
		}
	}

	for _, field := range []string{"tags", "gallery"} {
		raw, ok := payload[field]
		if !ok {
			continue
		}
		switch raw.(type) {
		case []any, []string, string:
		default:
			warnings = append(warnings, fmt.Sprintf("%s is neither a list nor a comma-separated string; stored empty", field))
		}
	}

	if raw, ok := payload["content"]; ok {
		if len(JSONObject(raw)) == 0 {
			if _, isMap := raw.(map[string]any); !isMap {
				warnings = append(warnings, "content is not a JSON object; stored empty")
			}
		}
	}

	return warnings
}
