package integration_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio_backend/internal/models"
	"portfolio_backend/test/helpers"
)

type itemEnvelope struct {
	Item     models.PortfolioItem `json:"item"`
	Warnings []string             `json:"warnings"`
}

func createItem(t *testing.T, ts *helpers.TestServer, token string, body map[string]interface{}) itemEnvelope {
	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/admin/portfolio", token, body)
	require.Equal(t, http.StatusCreated, res.StatusCode, "create should succeed: "+bodyStr)

	var envelope itemEnvelope
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &envelope))
	require.NotEmpty(t, envelope.Item.ID)
	return envelope
}

func TestPortfolioCreate_CoercesMediaType(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)
	token := helpers.LoginAdmin(t, ts, testAdminUser, testAdminPassword)

	envelope := createItem(t, ts, token, map[string]interface{}{
		"title":     "Showreel 2026",
		"mediaType": "video", // lowercase on the wire
		"tags":      []string{"film", "editing"},
	})
	assert.Equal(t, models.MediaTypeVideo, envelope.Item.MediaType)
	assert.Empty(t, envelope.Warnings)

	// Unknown value falls back to VIDEO with a warning
	envelope = createItem(t, ts, token, map[string]interface{}{
		"title":     "Mystery",
		"mediaType": "hologram",
	})
	assert.Equal(t, models.MediaTypeVideo, envelope.Item.MediaType)
	require.Len(t, envelope.Warnings, 1)
	assert.Contains(t, envelope.Warnings[0], "mediaType")
}

func TestPortfolioCreate_SnakeCaseAliases(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)
	token := helpers.LoginAdmin(t, ts, testAdminUser, testAdminPassword)

	envelope := createItem(t, ts, token, map[string]interface{}{
		"title":         "Legacy payload",
		"media_type":    "IMAGE",
		"thumbnail_url": "https://cdn.example.com/thumb.jpg",
		"order_index":   7,
	})
	assert.Equal(t, models.MediaTypeImage, envelope.Item.MediaType)
	assert.Equal(t, "https://cdn.example.com/thumb.jpg", envelope.Item.ThumbnailURL)
	assert.Equal(t, 7, envelope.Item.Order)
}

func TestPortfolioCreate_CamelCaseWinsOverAlias(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)
	token := helpers.LoginAdmin(t, ts, testAdminUser, testAdminPassword)

	envelope := createItem(t, ts, token, map[string]interface{}{
		"title":      "Both spellings",
		"mediaType":  "ARTICLE",
		"media_type": "IMAGE",
	})
	assert.Equal(t, models.MediaTypeArticle, envelope.Item.MediaType)
}

func TestPortfolioUpdate_PartialPreservesFields(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)
	token := helpers.LoginAdmin(t, ts, testAdminUser, testAdminPassword)

	created := createItem(t, ts, token, map[string]interface{}{
		"title":    "Original title",
		"featured": true,
		"tags":     []string{"motion"},
	})

	res, bodyStr := ts.SendRequest(t, http.MethodPut, "/api/v1/admin/portfolio/"+created.Item.ID, token, map[string]interface{}{
		"title": "Renamed",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, bodyStr)

	var updated itemEnvelope
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &updated))
	assert.Equal(t, "Renamed", updated.Item.Title)
	assert.True(t, updated.Item.Featured, "omitted fields must keep their value")
	assert.JSONEq(t, `["motion"]`, string(updated.Item.Tags))
}

func TestPortfolioUpdate_EmptyPayloadIsIdempotent(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)
	token := helpers.LoginAdmin(t, ts, testAdminUser, testAdminPassword)

	created := createItem(t, ts, token, map[string]interface{}{"title": "Untouched"})

	res, bodyStr := ts.SendRequest(t, http.MethodPut, "/api/v1/admin/portfolio/"+created.Item.ID, token, map[string]interface{}{})
	require.Equal(t, http.StatusOK, res.StatusCode, bodyStr)

	var updated itemEnvelope
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &updated))
	assert.Equal(t, "Untouched", updated.Item.Title)
}

func TestPortfolioUpdate_UnknownID(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)
	token := helpers.LoginAdmin(t, ts, testAdminUser, testAdminPassword)

	res, _ := ts.SendRequest(t, http.MethodPut, "/api/v1/admin/portfolio/00000000-0000-0000-0000-000000000000", token, map[string]interface{}{
		"title": "nope",
	})
	assert.Equal(t, http.StatusNotFound, res.StatusCode)

	// Empty payload against an unknown id is still a 404
	res, _ = ts.SendRequest(t, http.MethodPut, "/api/v1/admin/portfolio/00000000-0000-0000-0000-000000000000", token, map[string]interface{}{})
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestPortfolioList_Ordering(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)
	token := helpers.LoginAdmin(t, ts, testAdminUser, testAdminPassword)

	createItem(t, ts, token, map[string]interface{}{"title": "plain", "featured": false, "order": 2})
	createItem(t, ts, token, map[string]interface{}{"title": "featured-late", "featured": true, "order": 5})
	createItem(t, ts, token, map[string]interface{}{"title": "featured-first", "featured": true, "order": 1})

	res, bodyStr := ts.SendRequest(t, http.MethodGet, "/api/v1/portfolio", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var items []models.PortfolioItem
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &items))
	require.Len(t, items, 3)
	assert.Equal(t, "featured-first", items[0].Title)
	assert.Equal(t, "featured-late", items[1].Title)
	assert.Equal(t, "plain", items[2].Title)
}

func TestPortfolioList_CategoryFilter(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)
	token := helpers.LoginAdmin(t, ts, testAdminUser, testAdminPassword)

	createItem(t, ts, token, map[string]interface{}{"title": "film-1", "category": "film"})
	createItem(t, ts, token, map[string]interface{}{"title": "print-1", "category": "print"})

	res, bodyStr := ts.SendRequest(t, http.MethodGet, "/api/v1/portfolio?category=film", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var items []models.PortfolioItem
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &items))
	require.Len(t, items, 1)
	assert.Equal(t, "film-1", items[0].Title)
}

func TestPortfolioGet_PublicRead(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)
	token := helpers.LoginAdmin(t, ts, testAdminUser, testAdminPassword)

	created := createItem(t, ts, token, map[string]interface{}{"title": "Visible to visitors"})

	res, bodyStr := ts.SendRequest(t, http.MethodGet, "/api/v1/portfolio/"+created.Item.ID, "", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, "Visible to visitors")
}

func TestPortfolioDelete(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)
	token := helpers.LoginAdmin(t, ts, testAdminUser, testAdminPassword)

	created := createItem(t, ts, token, map[string]interface{}{"title": "Ephemeral"})

	res, bodyStr := ts.SendRequest(t, http.MethodDelete, "/api/v1/admin/portfolio/"+created.Item.ID, token, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, `"deleted":true`)

	res, _ = ts.SendRequest(t, http.MethodGet, "/api/v1/portfolio/"+created.Item.ID, "", nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)

	// Deleting twice is a 404, not a silent success
	res, _ = ts.SendRequest(t, http.MethodDelete, "/api/v1/admin/portfolio/"+created.Item.ID, token, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestPortfolioCreate_LenientListCoercion(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)
	token := helpers.LoginAdmin(t, ts, testAdminUser, testAdminPassword)

	envelope := createItem(t, ts, token, map[string]interface{}{
		"title": "Comma tags",
		"tags":  "one, two , ,three",
	})
	assert.JSONEq(t, `["one","two","three"]`, string(envelope.Item.Tags))

	envelope = createItem(t, ts, token, map[string]interface{}{
		"title":   "Bad gallery",
		"gallery": 42,
	})
	assert.JSONEq(t, `[]`, string(envelope.Item.Gallery))
	require.NotEmpty(t, envelope.Warnings)
	assert.Contains(t, fmt.Sprint(envelope.Warnings), "gallery")
}
