package handler

import (
	"errors"
	"net/http"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"ngo-cms-backend/internal/domains/post"
	"ngo-cms-backend/internal/shared/response"
)

type PostHandler struct {
	service post.PostService
}

func NewPostHandler(svc post.PostService) *PostHandler {
	return &PostHandler{service: svc}
}

// ========== CREATE: POST /v1/admin/posts ==========
func (h *PostHandler) Create(c *gin.Context) {
	var req post.CreatePostReq
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

// ========== READ: GET /v1/posts/:slug ==========
func (h *PostHandler) GetBySlug(c *gin.Context) {
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

// ========== READ (ADMIN): GET /v1/admin/posts/:id ==========
// Admin lookup thấy cả soft-deleted rows (deleted_at trong response)
func (h *PostHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid post id")
		return
	}

	resp, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		renderError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// ========== LIST: GET /v1/posts?category= ==========
func (h *PostHandler) List(c *gin.Context) {
	category := c.Query("category")

	resp, err := h.service.List(c.Request.Context(), category)
	if err != nil {
		renderError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// ========== RELATED: GET /v1/posts/:slug/related ==========
func (h *PostHandler) GetRelated(c *gin.Context) {
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

// ========== UPDATE: PUT /v1/admin/posts/:id ==========
func (h *PostHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid post id")
		return
	}

	var req post.UpdatePostReq
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

// ========== DELETE (SOFT): DELETE /v1/admin/posts/:id ==========
func (h *PostHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid post id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		renderError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

// renderError map domain error => HTTP response
// Validation errors trả về field-level details (tất cả fields fail)
func renderError(c *gin.Context, err error) {
	var vErrs validation.Errors
	if errors.As(err, &vErrs) {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "validation failed", vErrs)
		return
	}

	status := post.GetHTTPStatusCode(err)
	switch status {
	case http.StatusNotFound:
		response.NotFound(c, err.Error())
	case http.StatusConflict:
		response.Conflict(c, err.Error())
	default:
		response.InternalServerError(c, "internal server error")
	}
}
