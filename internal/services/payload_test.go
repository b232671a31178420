package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPayloadString(t *testing.T) {
	assert.Equal(t, "hello", payloadString("hello"))
	assert.Equal(t, "42", payloadString(float64(42)))
	assert.Equal(t, "3.5", payloadString(3.5))
	assert.Equal(t, "true", payloadString(true))
	assert.Equal(t, "", payloadString(nil))
}

func TestPayloadBool(t *testing.T) {
	assert.True(t, payloadBool(true))
	assert.True(t, payloadBool("true"))
	assert.False(t, payloadBool("yes"))
	assert.False(t, payloadBool(nil))
	assert.False(t, payloadBool(float64(1)))
}

func TestPayloadInt(t *testing.T) {
	// JSON numbers arrive as float64
	assert.Equal(t, 7, payloadInt(float64(7)))
	assert.Equal(t, 7, payloadInt("7"))
	assert.Equal(t, 0, payloadInt("seven"))
	assert.Equal(t, 0, payloadInt(nil))
}

func TestPayloadStringArray(t *testing.T) {
	assert.JSONEq(t, `["a","b"]`, string(payloadStringArray([]any{"a", "b"})))
	assert.JSONEq(t, `["a","b"]`, string(payloadStringArray("a, b")))
	assert.JSONEq(t, `[]`, string(payloadStringArray(42)))
	assert.JSONEq(t, `[]`, string(payloadStringArray(nil)))
}

func TestPayloadJSONObject(t *testing.T) {
	assert.JSONEq(t, `{"k":"v"}`, string(payloadJSONObject(map[string]any{"k": "v"})))
	assert.JSONEq(t, `{"k":"v"}`, string(payloadJSONObject(`{"k":"v"}`)))
	assert.JSONEq(t, `{}`, string(payloadJSONObject(`[1,2]`)))
	assert.JSONEq(t, `{}`, string(payloadJSONObject(nil)))
}

func TestClampRating(t *testing.T) {
	assert.Equal(t, 1, clampRating(-10))
	assert.Equal(t, 1, clampRating(1))
	assert.Equal(t, 3, clampRating(3))
	assert.Equal(t, 5, clampRating(5))
	assert.Equal(t, 5, clampRating(99))
}

func TestProjectFields(t *testing.T) {
	doc := map[string]any{
		"contactEmail": "a@b.c",
		"heroHeading":  "private",
	}

	out := ProjectFields(doc, []string{"contactEmail", "contactPhone"})
	assert.Equal(t, map[string]any{"contactEmail": "a@b.c"}, out)
}
