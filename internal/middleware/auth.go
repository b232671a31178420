package middleware

import (
	"net/http"
	"strings"

	"portfolio_backend/internal/services"
	"portfolio_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ExtractToken pulls the session token from the Authorization header first,
// falling back to the session cookie.
func ExtractToken(c *gin.Context, cookieName string) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	if cookie, err := c.Cookie(cookieName); err == nil {
		return cookie
	}
	return ""
}

// AuthMiddleware gates mutating admin routes. It validates both the token
// signature and the server-side session, so revoked sessions fail here.
func AuthMiddleware(authService services.AuthService, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := ExtractToken(c, cookieName)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}

		db, ok := c.Request.Context().Value(contextkeys.DBContextKey).(*gorm.DB)
		if !ok {
			if val, exists := c.Get(string(contextkeys.DBContextKey)); exists {
				db, _ = val.(*gorm.DB)
			}
		}
		if db == nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Database unavailable"})
			return
		}

		if _, err := authService.VerifyToken(db, token); err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired session"})
			return
		}

		c.Next()
	}
}
