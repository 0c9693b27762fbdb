package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"bytestudio_backend/internal/validator"
	"bytestudio_backend/pkg/apperrors"
	"bytestudio_backend/pkg/contextkeys"
)

// BaseHandler carries the pieces every handler needs. Embed it.
type BaseHandler struct {
	validator *validator.Validator
}

func NewBaseHandler(v *validator.Validator) BaseHandler {
	return BaseHandler{validator: v}
}

func (h *BaseHandler) GetDB(c *gin.Context) *gorm.DB {
	db, _ := c.MustGet(contextkeys.DB).(*gorm.DB)
	return db
}

// BindAndValidateJSON binds the body and runs struct validation. On failure
// it writes the error response and returns false.
func (h *BaseHandler) BindAndValidateJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		apperrors.HandleError(c, apperrors.Wrap(err, apperrors.CodeValidationFailed,
			"request", "Invalid request body.", http.StatusBadRequest))
		return false
	}
	if err := h.validator.Struct(dst); err != nil {
		var vErr *validator.ValidationError
		if errors.As(err, &vErr) {
			apperrors.HandleError(c, apperrors.
				NewBadRequest("request", "Validation failed.").
				WithDetails(vErr.Errors))
		} else {
			apperrors.HandleError(c, apperrors.NewInternal("request", "Validation error.", err))
		}
		return false
	}
	return true
}

// CurrentUserID returns the authenticated user id set by the auth
// middleware, rejecting the request when it is missing.
func (h *BaseHandler) CurrentUserID(c *gin.Context) (string, bool) {
	v, ok := c.Get(contextkeys.UserID)
	id, _ := v.(string)
	if !ok || id == "" {
		apperrors.HandleError(c, apperrors.NewUnauthorized("auth", "Authentication required."))
		return "", false
	}
	return id, true
}
