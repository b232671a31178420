package normalize

// fieldAliases maps legacy snake_case payload keys onto their canonical
// camelCase names. Older admin clients sent snake_case; this is the one place
// that compatibility lives.
var fieldAliases = map[string]string{
	"media_type":     "mediaType",
	"video_provider": "videoProvider",
	"video_id":       "videoId",
	"video_url":      "videoUrl",
	"media_url":      "mediaUrl",
	"thumbnail_url":  "thumbnailUrl",
	"document_url":   "documentUrl",
	"external_url":   "externalUrl",
	"logo_url":       "logoUrl",
	"client_name":    "clientName",
	"order_index":    "order",
	"measurement_id": "measurementId",
}

// Aliases returns a copy of payload with legacy keys renamed to their
// canonical form. When both spellings are present the canonical one wins.
func Aliases(payload map[string]any) map[string]any {
	out := make(map[string]any, len(payload))
	for key, value := range payload {
		canonical, isAlias := fieldAliases[key]
		if !isAlias {
			out[key] = value
			continue
		}
		if _, exists := payload[canonical]; exists {
			continue
		}
		out[canonical] = value
	}
	return out
}
