package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bytestudio_backend/internal/services"
	"bytestudio_backend/internal/services/dto"
	"bytestudio_backend/pkg/apperrors"
)

type MessageHandler struct {
	BaseHandler
	messageService services.MessageService
}

func NewMessageHandler(base BaseHandler, messageService services.MessageService) *MessageHandler {
	return &MessageHandler{BaseHandler: base, messageService: messageService}
}

// Create is the public contact-form endpoint.
func (h *MessageHandler) Create(c *gin.Context) {
	var req dto.ContactRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}
	if _, err := h.messageService.Submit(c, h.GetDB(c), &req); err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Thanks for reaching out! We'll get back to you soon.",
		"kind":    "success",
	})
}

func (h *MessageHandler) List(c *gin.Context) {
	status := c.DefaultQuery("status", "all")
	msgs, err := h.messageService.List(h.GetDB(c), status)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"messages": msgs})
}

func (h *MessageHandler) Get(c *gin.Context) {
	msg, err := h.messageService.Open(c, h.GetDB(c), c.Param("messageId"))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": msg})
}

func (h *MessageHandler) ToggleRead(c *gin.Context) {
	msg, err := h.messageService.ToggleRead(c, h.GetDB(c), c.Param("messageId"))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	text := "Marked as unread."
	if msg.Read {
		text = "Marked as read."
	}
	c.JSON(http.StatusOK, gin.H{"message": text, "kind": "success", "data": msg})
}

func (h *MessageHandler) Reply(c *gin.Context) {
	var req dto.ReplyRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}
	if err := h.messageService.Reply(c, h.GetDB(c), c.Param("messageId"), &req); err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Reply sent.", "kind": "success"})
}

func (h *MessageHandler) Delete(c *gin.Context) {
	if err := h.messageService.Delete(c, h.GetDB(c), c.Param("messageId")); err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Message deleted.", "kind": "success"})
}
