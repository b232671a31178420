package integration_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio_backend/internal/models"
	"portfolio_backend/test/helpers"
)

func TestLogin_SetsCookieAndReturnsToken(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)
	helpers.CreateAdminUser(t, ts.DB, testAdminUser, testAdminPassword)

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/admin/login", "", map[string]interface{}{
		"username": testAdminUser,
		"password": testAdminPassword,
	})
	require.Equal(t, http.StatusOK, res.StatusCode, "login should succeed: "+bodyStr)
	assert.Contains(t, bodyStr, "token")
	assert.Contains(t, bodyStr, "expiresAt")

	var sessionCookie *http.Cookie
	for _, cookie := range res.Cookies() {
		if cookie.Name == ts.Config.Session.CookieName {
			sessionCookie = cookie
		}
	}
	require.NotNil(t, sessionCookie, "login should set the session cookie")
	assert.True(t, sessionCookie.HttpOnly)
	assert.NotEmpty(t, sessionCookie.Value)

	// A session row backs the token
	var count int64
	ts.DB.Model(&models.Session{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestLogin_WrongPassword(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)
	helpers.CreateAdminUser(t, ts.DB, testAdminUser, testAdminPassword)

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/admin/login", "", map[string]interface{}{
		"username": testAdminUser,
		"password": "not-the-password",
	})
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
	assert.Contains(t, bodyStr, "Invalid username or password")

	for _, cookie := range res.Cookies() {
		assert.NotEqual(t, ts.Config.Session.CookieName, cookie.Name, "failed login must not set a session cookie")
	}
}

func TestLogin_UnknownUserMatchesWrongPassword(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/admin/login", "", map[string]interface{}{
		"username": "nobody",
		"password": "whatever1",
	})
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
	assert.Contains(t, bodyStr, "Invalid username or password")
}

func TestVerify_RoundTrip(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)
	token := helpers.LoginAdmin(t, ts, testAdminUser, testAdminPassword)

	res, bodyStr := ts.SendRequest(t, http.MethodGet, "/api/v1/admin/verify", token, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, `"authenticated":true`)
}

func TestVerify_NoToken(t *testing.T) {
	ts := GetTestServer(t)

	res, bodyStr := ts.SendRequest(t, http.MethodGet, "/api/v1/admin/verify", "", nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
	assert.Contains(t, bodyStr, `"authenticated":false`)
}

func TestLogout_RevokesSession(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)
	token := helpers.LoginAdmin(t, ts, testAdminUser, testAdminPassword)

	res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/admin/logout", token, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	// Revoked server-side, not just cookie expiry
	var session models.Session
	require.NoError(t, ts.DB.First(&session).Error)
	assert.NotNil(t, session.RevokedAt)

	// The same token no longer verifies
	verifyRes, verifyBody := ts.SendRequest(t, http.MethodGet, "/api/v1/admin/verify", token, nil)
	assert.Equal(t, http.StatusUnauthorized, verifyRes.StatusCode)
	assert.Contains(t, verifyBody, `"authenticated":false`)
}

func TestAdminWrite_RequiresAuth(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/admin/portfolio", "", map[string]interface{}{
		"title": "should not land",
	})
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)

	var count int64
	ts.DB.Model(&models.PortfolioItem{}).Count(&count)
	assert.Equal(t, int64(0), count)
}
