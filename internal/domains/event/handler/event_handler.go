package handler

import (
	"errors"
	"net/http"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"ngo-cms-backend/internal/domains/event"
	"ngo-cms-backend/internal/shared/response"
)

type EventHandler struct {
	service event.EventService
}

func NewEventHandler(svc event.EventService) *EventHandler {
	return &EventHandler{service: svc}
}

// ========== CREATE: POST /v1/admin/events ==========
func (h *EventHandler) Create(c *gin.Context) {
	var req event.CreateEventReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		renderError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp)
}

// ========== READ: GET /v1/events/:slug ==========
func (h *EventHandler) GetBySlug(c *gin.Context) {
	slug := strings.TrimSpace(c.Param("slug"))
	if slug == "" {
		response.BadRequest(c, "invalid slug")
		return
	}

	resp, err := h.service.GetBySlug(c.Request.Context(), slug)
	if err != nil {
		renderError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// ========== READ (ADMIN): GET /v1/admin/events/:id ==========
func (h *EventHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid event id")
		return
	}

	resp, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		renderError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// ========== LIST: GET /v1/events?category= ==========
// Upcoming => start_date ASC, Past => start_date DESC
func (h *EventHandler) List(c *gin.Context) {
	category := c.Query("category")

	resp, err := h.service.List(c.Request.Context(), category)
	if err != nil {
		renderError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// ========== RELATED: GET /v1/events/:slug/related ==========
func (h *EventHandler) GetRelated(c *gin.Context) {
	slug := strings.TrimSpace(c.Param("slug"))
	if slug == "" {
		response.BadRequest(c, "invalid slug")
		return
	}

	resp, err := h.service.GetRelated(c.Request.Context(), slug)
	if err != nil {
		renderError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// ========== COUNTDOWN: GET /v1/events/:slug/countdown ==========
func (h *EventHandler) GetCountdown(c *gin.Context) {
	slug := strings.TrimSpace(c.Param("slug"))
	if slug == "" {
		response.BadRequest(c, "invalid slug")
		return
	}

	resp, err := h.service.GetCountdown(c.Request.Context(), slug)
	if err != nil {
		renderError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// ========== UPDATE: PUT /v1/admin/events/:id ==========
func (h *EventHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid event id")
		return
	}

	var req event.UpdateEventReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		renderError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// ========== DELETE (SOFT): DELETE /v1/admin/events/:id ==========
func (h *EventHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid event id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		renderError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func renderError(c *gin.Context, err error) {
	var vErrs validation.Errors
	if errors.As(err, &vErrs) {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "validation failed", vErrs)
		return
	}

	status := event.GetHTTPStatusCode(err)
	switch status {
	case http.StatusNotFound:
		response.NotFound(c, err.Error())
	default:
		response.InternalServerError(c, "internal server error")
	}
}
