package helpers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"portfolio_backend/internal/models"
)

// CreateAdminUser inserts an admin row with a bcrypt-hashed password.
func CreateAdminUser(t *testing.T, db *gorm.DB, username, password string) *models.User {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err, "hashing the admin password should not fail")

	user := &models.User{
		Username:     username,
		PasswordHash: string(hashed),
	}
	require.NoError(t, db.Create(user).Error, "creating the admin user should not fail")
	return user
}

// LoginAdmin creates the admin row (if needed) and logs in through the API,
// returning the session token.
func LoginAdmin(t *testing.T, ts *TestServer, username, password string) string {
	var count int64
	ts.DB.Model(&models.User{}).Where("username = ?", username).Count(&count)
	if count == 0 {
		CreateAdminUser(t, ts.DB, username, password)
	}

	loginBody := map[string]interface{}{
		"username": username,
		"password": password,
	}
	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/admin/login", "", loginBody)
	require.Equal(t, http.StatusOK, res.StatusCode, "login should succeed, got: "+bodyStr)

	var loginResponse struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &loginResponse))
	require.NotEmpty(t, loginResponse.Token, "login response should carry a token")

	return loginResponse.Token
}
