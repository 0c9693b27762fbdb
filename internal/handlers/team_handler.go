package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bytestudio_backend/internal/services"
	"bytestudio_backend/pkg/apperrors"
)

type TeamHandler struct {
	BaseHandler
	teamService services.TeamService
}

func NewTeamHandler(base BaseHandler, teamService services.TeamService) *TeamHandler {
	return &TeamHandler{BaseHandler: base, teamService: teamService}
}

func (h *TeamHandler) List(c *gin.Context) {
	members, err := h.teamService.List(h.GetDB(c))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"team": members})
}
