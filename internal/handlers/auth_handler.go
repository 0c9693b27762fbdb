package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bytestudio_backend/internal/services"
	"bytestudio_backend/internal/services/dto"
	"bytestudio_backend/pkg/apperrors"
)

type AuthHandler struct {
	BaseHandler
	authService services.AuthService
}

func NewAuthHandler(base BaseHandler, authService services.AuthService) *AuthHandler {
	return &AuthHandler{BaseHandler: base, authService: authService}
}

// Login deliberately skips struct validation: the service owns the check
// order so each failure maps to its fixed message.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequest("auth", "Invalid request body."))
		return
	}
	resp, err := h.authService.Login(c, h.GetDB(c), &req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":      "Welcome back!",
		"kind":         "success",
		"access_token": resp.AccessToken,
		"user":         resp.User,
	})
}

func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}
	user, err := h.authService.CurrentUser(h.GetDB(c), userID)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}
	if err := h.authService.Logout(c, userID); err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logged out.", "kind": "info"})
}
