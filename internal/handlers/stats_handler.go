package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bytestudio_backend/internal/services"
	"bytestudio_backend/internal/services/dto"
	"bytestudio_backend/pkg/apperrors"
)

// StatsHandler combines work and message aggregates for the admin dashboard.
type StatsHandler struct {
	BaseHandler
	portfolioService services.PortfolioService
	messageService   services.MessageService
}

func NewStatsHandler(base BaseHandler, portfolioService services.PortfolioService, messageService services.MessageService) *StatsHandler {
	return &StatsHandler{
		BaseHandler:      base,
		portfolioService: portfolioService,
		messageService:   messageService,
	}
}

func (h *StatsHandler) Dashboard(c *gin.Context) {
	db := h.GetDB(c)

	workStats, err := h.portfolioService.Stats(db)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	counts, err := h.messageService.Counts(db)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.DashboardStats{
		TotalWorks:     workStats.TotalWorks,
		TotalViews:     workStats.TotalViews,
		StorageBytes:   workStats.StorageBytes,
		TotalMessages:  counts.Total,
		UnreadMessages: counts.Unread,
	})
}
