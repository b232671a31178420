package integration_test

import (
	"encoding/json"
	"net/http"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio_backend/internal/models"
	"portfolio_backend/test/helpers"
)

func TestContent_AbsentDocumentReadsEmpty(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	res, bodyStr := ts.SendRequest(t, http.MethodGet, "/api/v1/admin/skills", "", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode, "absence is not an error")
	assert.JSONEq(t, `{}`, bodyStr)
}

func TestContent_PutThenGet(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)
	token := helpers.LoginAdmin(t, ts, testAdminUser, testAdminPassword)

	doc := map[string]interface{}{
		"siteName": "Studio",
		"tagline":  "Film and motion design",
	}
	res, bodyStr := ts.SendRequest(t, http.MethodPut, "/api/v1/admin/site-settings", token, doc)
	require.Equal(t, http.StatusOK, res.StatusCode, bodyStr)

	res, bodyStr = ts.SendRequest(t, http.MethodGet, "/api/v1/admin/site-settings", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var stored map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &stored))
	assert.Equal(t, "Studio", stored["siteName"])
	assert.Equal(t, "Film and motion design", stored["tagline"])
}

func TestContent_PutReplacesWholeDocument(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)
	token := helpers.LoginAdmin(t, ts, testAdminUser, testAdminPassword)

	_, _ = ts.SendRequest(t, http.MethodPut, "/api/v1/admin/about", token, map[string]interface{}{
		"heading": "About me",
		"body":    "First version",
	})
	_, _ = ts.SendRequest(t, http.MethodPut, "/api/v1/admin/about", token, map[string]interface{}{
		"heading": "About",
	})

	_, bodyStr := ts.SendRequest(t, http.MethodGet, "/api/v1/admin/about", "", nil)
	assert.JSONEq(t, `{"heading":"About"}`, bodyStr)
}

func TestContent_ConcurrentUpsertsKeepOneRow(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)
	token := helpers.LoginAdmin(t, ts, testAdminUser, testAdminPassword)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_, _ = ts.SendRequest(t, http.MethodPut, "/api/v1/admin/footer", token, map[string]interface{}{
				"note": n,
			})
		}(i)
	}
	wg.Wait()

	var count int64
	ts.DB.Model(&models.SingletonDocument{}).Where("kind = ?", models.KindFooter).Count(&count)
	assert.Equal(t, int64(1), count, "concurrent writes must never duplicate a singleton")
}

func TestContent_PublicPageContentProjection(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)
	token := helpers.LoginAdmin(t, ts, testAdminUser, testAdminPassword)

	_, _ = ts.SendRequest(t, http.MethodPut, "/api/v1/admin/page-content", token, map[string]interface{}{
		"contactEmail":    "hello@example.com",
		"contactPhone":    "+1 555 0100",
		"contactLocation": "Berlin",
		"heroHeading":     "internal copy",
		"seoDescription":  "internal copy",
	})

	res, bodyStr := ts.SendRequest(t, http.MethodGet, "/api/v1/page-content", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var public map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &public))
	assert.Equal(t, "hello@example.com", public["contactEmail"])
	assert.Equal(t, "+1 555 0100", public["contactPhone"])
	assert.Equal(t, "Berlin", public["contactLocation"])
	assert.NotContains(t, public, "heroHeading")
	assert.NotContains(t, public, "seoDescription")

	// The admin read still returns the full document
	_, adminBody := ts.SendRequest(t, http.MethodGet, "/api/v1/admin/page-content", "", nil)
	assert.Contains(t, adminBody, "heroHeading")
}

func TestContent_WriteRequiresAuth(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	res, _ := ts.SendRequest(t, http.MethodPut, "/api/v1/admin/navigation", "", map[string]interface{}{
		"links": []string{"/work"},
	})
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

func TestAnalytics_UpsertAndRead(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)
	token := helpers.LoginAdmin(t, ts, testAdminUser, testAdminPassword)

	res, bodyStr := ts.SendRequest(t, http.MethodPut, "/api/v1/admin/analytics", token, map[string]interface{}{
		"provider":       "ga4",
		"measurement_id": "G-XYZ123",
		"enabled":        true,
	})
	require.Equal(t, http.StatusOK, res.StatusCode, bodyStr)

	var settings models.AnalyticsSettings
	_, bodyStr = ts.SendRequest(t, http.MethodGet, "/api/v1/analytics", "", nil)
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &settings))
	assert.Equal(t, "ga4", settings.Provider)
	assert.Equal(t, "G-XYZ123", settings.MeasurementID)
	assert.True(t, settings.Enabled)

	// A second write updates the same row
	_, _ = ts.SendRequest(t, http.MethodPut, "/api/v1/admin/analytics", token, map[string]interface{}{
		"enabled": false,
	})
	var count int64
	ts.DB.Model(&models.AnalyticsSettings{}).Count(&count)
	assert.Equal(t, int64(1), count)
}
