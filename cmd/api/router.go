package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ngo-cms-backend/internal/shared/middleware"
	"ngo-cms-backend/internal/shared/response"
	"ngo-cms-backend/pkg/container"
)

// SetupRouter wire toàn bộ HTTP surface
//
// Public routes: không auth - đây là content cho website
// Admin routes:  JWT + role=admin
func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// ========== GLOBAL MIDDLEWARE ==========
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.CORS())

	v1 := router.Group("/api/v1")

	// ========== HEALTH CHECK ==========
	v1.GET("/health", func(ctx *gin.Context) {
		if err := c.DB.HealthCheck(ctx.Request.Context()); err != nil {
			response.ErrorResponse(ctx, http.StatusServiceUnavailable, "SYS_002", "database unavailable")
			return
		}
		if err := c.Cache.Ping(ctx.Request.Context()); err != nil {
			response.ErrorResponse(ctx, http.StatusServiceUnavailable, "SYS_003", "cache unavailable")
			return
		}
		response.Success(ctx, http.StatusOK, gin.H{
			"status":  "ok",
			"app":     c.Config.App.Name,
			"version": c.Config.App.Version,
		})
	})

	// ========== PUBLIC ROUTES ==========
	{
		posts := v1.Group("/posts")
		posts.GET("", c.PostHandler.List)
		posts.GET("/:slug", c.PostHandler.GetBySlug)
		posts.GET("/:slug/related", c.PostHandler.GetRelated)

		events := v1.Group("/events")
		events.GET("", c.EventHandler.List)
		events.GET("/:slug", c.EventHandler.GetBySlug)
		events.GET("/:slug/related", c.EventHandler.GetRelated)
		events.GET("/:slug/countdown", c.EventHandler.GetCountdown)

		reports := v1.Group("/reports")
		reports.GET("", c.ReportHandler.ListPublished)

		contact := v1.Group("/contact")
		contact.POST("/whatsapp", c.ContactHandler.WhatsApp)
	}

	// ========== ADMIN ROUTES ==========
	admin := v1.Group("/admin")
	admin.Use(middleware.AuthMiddleware(c.Config.JWT.Secret))
	admin.Use(middleware.AdminMiddleware())
	{
		posts := admin.Group("/posts")
		posts.POST("", c.PostHandler.Create)
		posts.GET("/:id", c.PostHandler.GetByID)
		posts.PUT("/:id", c.PostHandler.Update)
		posts.DELETE("/:id", c.PostHandler.Delete)

		events := admin.Group("/events")
		events.POST("", c.EventHandler.Create)
		events.GET("/:id", c.EventHandler.GetByID)
		events.PUT("/:id", c.EventHandler.Update)
		events.DELETE("/:id", c.EventHandler.Delete)

		reports := admin.Group("/reports")
		reports.POST("", c.ReportHandler.Create)
		reports.GET("", c.ReportHandler.ListAll)
		reports.GET("/:id", c.ReportHandler.GetByID)
		reports.PUT("/:id", c.ReportHandler.Update)
		reports.DELETE("/:id", c.ReportHandler.Delete)

		admin.POST("/media", c.MediaHandler.Upload)
	}

	return router
}
