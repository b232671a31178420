package normalize

import (
	"testing"

	"portfolio_backend/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestMediaType(t *testing.T) {
	cases := []struct {
		in   string
		want models.MediaType
	}{
		{"video", models.MediaTypeVideo},
		{"VIDEO", models.MediaTypeVideo},
		{"  image ", models.MediaTypeImage},
		{"Gallery", models.MediaTypeGallery},
		{"article", models.MediaTypeArticle},
		{"document", models.MediaTypeDocument},
		{"text", models.MediaTypeText},
		{"", models.MediaTypeVideo},
		{"podcast", models.MediaTypeVideo},
		{"IMAGEX", models.MediaTypeVideo},
	}

	for _, tc := range cases {
		got := MediaType(tc.in)
		assert.Equal(t, tc.want, got, "input %q", tc.in)
		assert.True(t, models.KnownMediaTypes[got], "result must always be a known media type")
	}
}

func TestStringArray(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, StringArray("a, b ,c"))
	assert.Equal(t, []string{"a", "b"}, StringArray("a,,b,"))
	assert.Equal(t, []string{}, StringArray(""))
	assert.Equal(t, []string{"x", "y"}, StringArray([]any{"x", "y"}))
	assert.Equal(t, []string{"1", "2.5"}, StringArray([]any{float64(1), 2.5}))
	assert.Equal(t, []string{"x"}, StringArray([]string{"x"}))
	assert.Equal(t, []string{}, StringArray(42))
	assert.Equal(t, []string{}, StringArray(nil))
	assert.Equal(t, []string{}, StringArray(map[string]any{"a": 1}))
}

func TestJSONObject(t *testing.T) {
	obj := map[string]any{"k": "v"}
	assert.Equal(t, obj, JSONObject(obj))

	assert.Equal(t, map[string]any{"a": float64(1)}, JSONObject(`{"a":1}`))
	assert.Equal(t, map[string]any{}, JSONObject(`not json`))
	assert.Equal(t, map[string]any{}, JSONObject(`[1,2,3]`))
	assert.Equal(t, map[string]any{}, JSONObject(`"just a string"`))
	assert.Equal(t, map[string]any{}, JSONObject(nil))
	assert.Equal(t, map[string]any{}, JSONObject(123))
}

func TestAliases(t *testing.T) {
	out := Aliases(map[string]any{
		"video_url": "https://legacy",
		"title":     "T",
	})
	assert.Equal(t, "https://legacy", out["videoUrl"])
	assert.Equal(t, "T", out["title"])
	assert.NotContains(t, out, "video_url")
}

func TestAliasesCamelCaseWins(t *testing.T) {
	out := Aliases(map[string]any{
		"logo_url": "old",
		"logoUrl":  "new",
	})
	assert.Equal(t, "new", out["logoUrl"])
	assert.NotContains(t, out, "logo_url")
}

func TestWarnings(t *testing.T) {
	warnings := Warnings(map[string]any{
		"mediaType": "podcast",
		"tags":      42,
		"content":   "not json",
	})
	assert.Len(t, warnings, 3)

	assert.Empty(t, Warnings(map[string]any{
		"mediaType": "image",
		"tags":      "a,b",
		"content":   map[string]any{"k": "v"},
	}))
}
