package handler

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"ngo-cms-backend/internal/domains/media"
	"ngo-cms-backend/internal/shared/response"
)

type MediaHandler struct {
	service media.MediaService
}

func NewMediaHandler(svc media.MediaService) *MediaHandler {
	return &MediaHandler{service: svc}
}

// ========== UPLOAD: POST /v1/admin/media ==========
// multipart form: "file" (required), "folder" (optional, allowlisted)
func (h *MediaHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "file is required")
		return
	}

	// Size check trước khi đọc vào memory
	if fileHeader.Size > media.MaxUploadSize {
		response.BadRequest(c, media.ErrFileTooLarge.Error())
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		response.BadRequest(c, "failed to read uploaded file")
		return
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, media.MaxUploadSize+1))
	if err != nil {
		response.InternalServerError(c, "failed to read uploaded file")
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	folder := c.PostForm("folder")

	resp, err := h.service.Upload(c.Request.Context(), folder, fileHeader.Filename, data, contentType)
	if err != nil {
		status := media.GetHTTPStatusCode(err)
		if status == http.StatusBadRequest {
			response.BadRequest(c, err.Error())
		} else {
			response.InternalServerError(c, "failed to upload file")
		}
		return
	}

	response.Success(c, http.StatusCreated, resp)
}
