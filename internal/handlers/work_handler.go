package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"bytestudio_backend/internal/services"
	"bytestudio_backend/internal/services/dto"
	"bytestudio_backend/pkg/apperrors"
)

type WorkHandler struct {
	BaseHandler
	portfolioService services.PortfolioService
}

func NewWorkHandler(base BaseHandler, portfolioService services.PortfolioService) *WorkHandler {
	return &WorkHandler{BaseHandler: base, portfolioService: portfolioService}
}

// List returns works newest-first, optionally narrowed to one category.
// "all" and an absent parameter mean no filter.
func (h *WorkHandler) List(c *gin.Context) {
	category := c.DefaultQuery("category", "all")
	works, err := h.portfolioService.List(h.GetDB(c), category)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"works": works})
}

func (h *WorkHandler) Get(c *gin.Context) {
	work, err := h.portfolioService.Open(c, h.GetDB(c), c.Param("workId"))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"work": work})
}

func (h *WorkHandler) Create(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		file = nil
	}
	year, _ := strconv.Atoi(strings.TrimSpace(c.PostForm("year")))

	req := &dto.UploadWorkRequest{
		Title:       c.PostForm("title"),
		Category:    c.PostForm("category"),
		Description: c.PostForm("description"),
		Client:      c.PostForm("client"),
		Artist:      c.PostForm("artist"),
		Year:        year,
		File:        file,
	}

	work, err := h.portfolioService.Upload(c, h.GetDB(c), req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Work uploaded successfully.",
		"kind":    "success",
		"work":    work,
	})
}

func (h *WorkHandler) Update(c *gin.Context) {
	var req dto.UpdateWorkRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}
	work, err := h.portfolioService.Update(c, h.GetDB(c), c.Param("workId"), &req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Work updated.",
		"kind":    "success",
		"work":    work,
	})
}

func (h *WorkHandler) Delete(c *gin.Context) {
	if err := h.portfolioService.Delete(c, h.GetDB(c), c.Param("workId")); err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Work deleted.", "kind": "success"})
}
