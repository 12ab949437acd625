package handler

import (
	"errors"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/gin-gonic/gin"

	"ngo-cms-backend/internal/domains/contact"
	"ngo-cms-backend/internal/shared/response"
)

type ContactHandler struct {
	whatsAppNumber string
}

func NewContactHandler(whatsAppNumber string) *ContactHandler {
	return &ContactHandler{whatsAppNumber: whatsAppNumber}
}

// ========== WHATSAPP: POST /v1/contact/whatsapp ==========
func (h *ContactHandler) WhatsApp(c *gin.Context) {
	var req contact.WhatsAppReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		var vErrs validation.Errors
		if errors.As(err, &vErrs) {
			response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "validation failed", vErrs)
			return
		}
		response.BadRequest(c, err.Error())
		return
	}

	resp := &contact.WhatsAppResp{
		URL: contact.BuildWhatsAppURL(h.whatsAppNumber, req.Name, req.Message),
	}

	response.Success(c, http.StatusOK, resp)
}
