package handlers

import (
	"errors"
	"net/http"

	"hantrip/services/user"
	"hantrip/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler serves Google sign-in and session management.
type AuthHandler struct {
	UserService *user.Service
}

// GoogleSignInHandler handles POST /api/auth/google.
func (h *AuthHandler) GoogleSignInHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req struct {
		IDToken string `json:"idToken" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	usr, token, err := h.UserService.SignInWithGoogle(c.Request.Context(), req.IDToken)
	if err != nil {
		if errors.Is(err, user.ErrInvalidIDToken) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid Google token"})
			return
		}
		logger.Error("Google sign-in failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Sign-in failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": usr, "token": token})
}

// SignOutHandler handles POST /api/auth/signout.
func (h *AuthHandler) SignOutHandler(c *gin.Context) {
	logger := utils.GetLogger()

	token, ok := c.Get("sessionToken")
	tokenStr, _ := token.(string)
	if !ok || tokenStr == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
		return
	}

	if err := h.UserService.SignOut(c.Request.Context(), tokenStr); err != nil {
		logger.Error("Sign-out failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Sign-out failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Signed out"})
}

// CurrentUserHandler handles GET /api/auth/me.
func (h *AuthHandler) CurrentUserHandler(c *gin.Context) {
	logger := utils.GetLogger()

	token, ok := c.Get("sessionToken")
	tokenStr, _ := token.(string)
	if !ok || tokenStr == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
		return
	}

	usr, err := h.UserService.CurrentUser(c.Request.Context(), tokenStr)
	if err != nil {
		if errors.Is(err, user.ErrSessionRevoked) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Session has been signed out"})
			return
		}
		logger.Warn("Failed to resolve current user", zap.Error(err))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
		return
	}
	if usr == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	c.JSON(http.StatusOK, usr)
}
