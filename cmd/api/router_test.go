package main

import (
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"ngo-cms-backend/internal/config"
	contacthandler "ngo-cms-backend/internal/domains/contact/handler"
	eventhandler "ngo-cms-backend/internal/domains/event/handler"
	mediahandler "ngo-cms-backend/internal/domains/media/handler"
	posthandler "ngo-cms-backend/internal/domains/post/handler"
	reporthandler "ngo-cms-backend/internal/domains/report/handler"
	"ngo-cms-backend/pkg/container"
)

func TestSetupRouterRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)

	// Handlers rỗng đủ cho route registration - không request nào được gửi
	c := &container.Container{
		Config:         &config.Config{},
		PostHandler:    &posthandler.PostHandler{},
		EventHandler:   &eventhandler.EventHandler{},
		ReportHandler:  &reporthandler.ReportHandler{},
		MediaHandler:   &mediahandler.MediaHandler{},
		ContactHandler: &contacthandler.ContactHandler{},
	}

	router := SetupRouter(c)

	registered := map[string]bool{}
	for _, r := range router.Routes() {
		registered[r.Method+" "+r.Path] = true
	}

	want := []string{
		"GET /api/v1/health",
		"GET /api/v1/posts",
		"GET /api/v1/posts/:slug",
		"GET /api/v1/posts/:slug/related",
		"GET /api/v1/events",
		"GET /api/v1/events/:slug",
		"GET /api/v1/events/:slug/related",
		"GET /api/v1/events/:slug/countdown",
		"GET /api/v1/reports",
		"POST /api/v1/contact/whatsapp",
		"POST /api/v1/admin/posts",
		"GET /api/v1/admin/posts/:id",
		"PUT /api/v1/admin/posts/:id",
		"DELETE /api/v1/admin/posts/:id",
		"POST /api/v1/admin/events",
		"GET /api/v1/admin/events/:id",
		"PUT /api/v1/admin/events/:id",
		"DELETE /api/v1/admin/events/:id",
		"POST /api/v1/admin/reports",
		"GET /api/v1/admin/reports",
		"GET /api/v1/admin/reports/:id",
		"PUT /api/v1/admin/reports/:id",
		"DELETE /api/v1/admin/reports/:id",
		"POST /api/v1/admin/media",
	}

	for _, route := range want {
		assert.True(t, registered[route], "missing route: %s", route)
	}
}
