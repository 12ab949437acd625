package handler

import (
	"errors"
	"net/http"
	"strconv"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/gin-gonic/gin"

	"ngo-cms-backend/internal/domains/report"
	"ngo-cms-backend/internal/shared/response"
)

type ReportHandler struct {
	service report.ReportService
}

func NewReportHandler(svc report.ReportService) *ReportHandler {
	return &ReportHandler{service: svc}
}

// ========== CREATE: POST /v1/admin/reports ==========
func (h *ReportHandler) Create(c *gin.Context) {
	var req report.CreateReportReq
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

// ========== READ (ADMIN): GET /v1/admin/reports/:id ==========
func (h *ReportHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	resp, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		renderError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// ========== LIST: GET /v1/reports ==========
// Public view: chỉ published
func (h *ReportHandler) ListPublished(c *gin.Context) {
	resp, err := h.service.ListPublished(c.Request.Context())
	if err != nil {
		renderError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// ========== LIST (ADMIN): GET /v1/admin/reports ==========
func (h *ReportHandler) ListAll(c *gin.Context) {
	resp, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		renderError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// ========== UPDATE: PUT /v1/admin/reports/:id ==========
func (h *ReportHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req report.UpdateReportReq
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

// ========== DELETE (HARD): DELETE /v1/admin/reports/:id ==========
func (h *ReportHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		renderError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.BadRequest(c, "invalid report id")
		return 0, false
	}
	return id, true
}

func renderError(c *gin.Context, err error) {
	var vErrs validation.Errors
	if errors.As(err, &vErrs) {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "validation failed", vErrs)
		return
	}

	status := report.GetHTTPStatusCode(err)
	switch status {
	case http.StatusNotFound:
		response.NotFound(c, err.Error())
	default:
		response.InternalServerError(c, "internal server error")
	}
}
