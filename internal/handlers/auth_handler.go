package handlers

import (
	"net/http"

	"portfolio_backend/internal/middleware"
	"portfolio_backend/internal/services"
	"portfolio_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

// CookieConfig holds the session cookie flags from configuration.
type CookieConfig struct {
	Name   string
	Secure bool
	Domain string
	MaxAge int
}

type AuthHandler struct {
	*BaseHandler
	authService services.AuthService
	cookie      CookieConfig
}

func NewAuthHandler(base *BaseHandler, authService services.AuthService, cookie CookieConfig) *AuthHandler {
	return &AuthHandler{
		BaseHandler: base,
		authService: authService,
		cookie:      cookie,
	}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.authService.Login(h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.SetCookie(h.cookie.Name, resp.Token, h.cookie.MaxAge, "/", h.cookie.Domain, h.cookie.Secure, true)
	c.JSON(http.StatusOK, resp)
}

func (h *AuthHandler) Verify(c *gin.Context) {
	token := middleware.ExtractToken(c, h.cookie.Name)
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"authenticated": false})
		return
	}

	resp, err := h.authService.VerifyToken(h.GetDB(c), token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"authenticated": false})
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	token := middleware.ExtractToken(c, h.cookie.Name)
	if token != "" {
		if err := h.authService.Logout(h.GetDB(c), token); err != nil {
			h.HandleServiceError(c, err)
			return
		}
	}

	// Expire the cookie regardless of token state.
	c.SetCookie(h.cookie.Name, "", -1, "/", h.cookie.Domain, h.cookie.Secure, true)
	c.JSON(http.StatusOK, gin.H{"loggedOut": true})
}
