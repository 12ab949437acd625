package contact

import (
	"fmt"
	"net/url"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ============================================================
// CONTACT -> WHATSAPP DEEP LINK
// ============================================================
// Không có mailbox/CRM: form liên hệ chỉ build wa.me link
// để frontend redirect user sang WhatsApp chat với org.

type WhatsAppReq struct {
	Name    string `json:"name"`
	Message string `json:"message"`
}

func (r WhatsAppReq) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(1, 100).Error("name must not exceed 100 characters"),
		),
		validation.Field(&r.Message,
			validation.Required.Error("message is required"),
			validation.Length(1, 1000).Error("message must not exceed 1000 characters"),
		),
	)
}

type WhatsAppResp struct {
	URL string `json:"url"`
}

// BuildWhatsAppURL tạo wa.me link với pre-filled text
// number dạng E.164 không dấu + (vd "84901234567")
func BuildWhatsAppURL(number, name, message string) string {
	text := fmt.Sprintf("Hi, I'm %s. %s", strings.TrimSpace(name), strings.TrimSpace(message))
	return fmt.Sprintf("https://wa.me/%s?text=%s", number, url.QueryEscape(text))
}
