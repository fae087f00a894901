package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/tillworks/tilldesk/internal/core/ports/services"
	"github.com/tillworks/tilldesk/internal/dto"
)

// authHandler handles login, token refresh and logout.
type authHandler struct {
	authService portssvc.AuthSvcFacade
}

// registerAuthRoutes registers the public authentication routes. The
// credential-bearing endpoints sit behind the login rate limiter.
func registerAuthRoutes(r *gin.Engine, authService portssvc.AuthSvcFacade, loginLimiter gin.HandlerFunc) {
	h := &authHandler{authService: authService}

	auth := r.Group("/auth")
	{
		auth.POST("/login", loginLimiter, h.login)
		auth.POST("/login/google", loginLimiter, h.loginWithGoogle)
		auth.GET("/login/google/url", h.googleLoginURL)
		auth.POST("/refresh", h.refresh)
	}
}

// registerLogoutRoute registers the authenticated logout endpoint.
func registerLogoutRoute(rg *gin.RouterGroup, authService portssvc.AuthSvcFacade) {
	h := &authHandler{authService: authService}
	rg.POST("/auth/logout", h.logout)
}

// login godoc
// @Summary Log in with username and password
// @Tags auth
// @Accept  json
// @Produce  json
// @Param   credentials body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 401 {object} map[string]string "Invalid credentials"
// @Failure 429 {object} map[string]string "Too many attempts"
// @Router /auth/login [post]
func (h *authHandler) login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to log in")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// loginWithGoogle godoc
// @Summary Log in with a Google ID token
// @Description Validates the ID token and signs in the user whose username matches the verified email
// @Tags auth
// @Accept  json
// @Produce  json
// @Param   token body dto.GoogleLoginRequest true "Google ID token"
// @Success 200 {object} dto.LoginResponse
// @Failure 401 {object} map[string]string "Token invalid or no matching account"
// @Router /auth/login/google [post]
func (h *authHandler) loginWithGoogle(c *gin.Context) {
	var req dto.GoogleLoginRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.authService.LoginWithGoogle(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to log in with Google")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// googleLoginURL godoc
// @Summary Get the Google consent URL
// @Description Returns the URL to redirect a browser to for the Google login flow
// @Tags auth
// @Produce  json
// @Success 200 {object} map[string]string
// @Router /auth/login/google/url [get]
func (h *authHandler) googleLoginURL(c *gin.Context) {
	state, err := h.authService.GenerateOAuthState()
	if err != nil {
		respondError(c, err, "Failed to prepare Google login")
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": h.authService.GoogleLoginURL(state), "state": state})
}

// refresh godoc
// @Summary Rotate a refresh token
// @Tags auth
// @Accept  json
// @Produce  json
// @Param   token body dto.RefreshRequest true "User ID and refresh token"
// @Success 200 {object} dto.LoginResponse
// @Failure 401 {object} map[string]string "Token invalid or expired"
// @Router /auth/refresh [post]
func (h *authHandler) refresh(c *gin.Context) {
	var req dto.RefreshRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.authService.RefreshToken(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to refresh token")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// logout godoc
// @Summary Log out
// @Description Invalidates the caller's refresh token
// @Tags auth
// @Success 204 "Logged out"
// @Security BearerAuth
// @Router /auth/logout [post]
func (h *authHandler) logout(c *gin.Context) {
	userID, ok := actingUser(c)
	if !ok {
		return
	}
	if err := h.authService.Logout(c.Request.Context(), userID); err != nil {
		respondError(c, err, "Failed to log out")
		return
	}
	c.Status(http.StatusNoContent)
}
