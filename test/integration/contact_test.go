package integration_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContactSubmit_Success(t *testing.T) {
	ts := GetTestServer(t)

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/contact", "", map[string]interface{}{
		"name":    "Visitor",
		"email":   "visitor@example.com",
		"subject": "Availability",
		"message": "Are you free in October?",
	})
	assert.Equal(t, http.StatusOK, res.StatusCode, bodyStr)
	assert.Contains(t, bodyStr, `"sent":true`)
}

func TestContactSubmit_ValidationFailure(t *testing.T) {
	ts := GetTestServer(t)

	// Missing message and a malformed email
	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/contact", "", map[string]interface{}{
		"name":  "Visitor",
		"email": "not-an-email",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, bodyStr, "email")
}

func TestHealthCheck(t *testing.T) {
	ts := GetTestServer(t)

	res, bodyStr := ts.SendRequest(t, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, `"status":"ok"`)
	assert.Contains(t, bodyStr, "uptime")
}
