package routes

import (
	"github.com/gin-gonic/gin"

	"bytestudio_backend/internal/handlers"
	"bytestudio_backend/internal/middleware"
	"bytestudio_backend/internal/notifier"
)

// Handlers bundles everything RegisterRoutes needs to wire.
type Handlers struct {
	Auth    *handlers.AuthHandler
	Work    *handlers.WorkHandler
	Message *handlers.MessageHandler
	Team    *handlers.TeamHandler
	Stats   *handlers.StatsHandler
	WS      *notifier.Handler
}

func RegisterRoutes(router *gin.Engine, h *Handlers, jwtSecret string) {
	api := router.Group("/api/v1")

	// Public surface: the gallery, team page and contact form.
	api.GET("/works", h.Work.List)
	api.GET("/works/:workId", h.Work.Get)
	api.GET("/team", h.Team.List)
	api.POST("/messages", h.Message.Create)
	api.POST("/auth/login", h.Auth.Login)

	authed := api.Group("")
	authed.Use(middleware.AuthMiddleware(jwtSecret))
	authed.GET("/auth/me", h.Auth.Me)
	authed.POST("/auth/logout", h.Auth.Logout)

	admin := api.Group("/admin")
	admin.Use(middleware.AuthMiddleware(jwtSecret))
	admin.GET("/works", h.Work.List)
	admin.POST("/works", h.Work.Create)
	admin.PUT("/works/:workId", h.Work.Update)
	admin.DELETE("/works/:workId", h.Work.Delete)
	admin.GET("/messages", h.Message.List)
	admin.GET("/messages/:messageId", h.Message.Get)
	admin.PUT("/messages/:messageId/read", h.Message.ToggleRead)
	admin.POST("/messages/:messageId/reply", h.Message.Reply)
	admin.DELETE("/messages/:messageId", h.Message.Delete)
	admin.GET("/stats", h.Stats.Dashboard)

	ws := router.Group("/ws")
	ws.Use(middleware.AuthMiddleware(jwtSecret))
	ws.GET("/admin", h.WS.ServeWS)
}
