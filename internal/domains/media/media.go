package media

import (
	"context"
	"errors"
	"net/http"
)

// ============================================================
// MEDIA UPLOAD
// ============================================================
// Upload ảnh cover/gallery cho CMS. File đi vào MinIO,
// response trả về public URL để admin paste vào content.

// MaxUploadSize: 5MB là đủ cho ảnh web đã resize
const MaxUploadSize = 5 << 20

var (
	ErrFileTooLarge       = errors.New("file exceeds maximum upload size of 5MB")
	ErrUnsupportedType    = errors.New("unsupported file type, only images are allowed")
	ErrInvalidUploadInput = errors.New("invalid upload input")
)

// allowedContentTypes: chỉ image formats web-safe
var allowedContentTypes = map[string]bool{
	"image/jpeg":    true,
	"image/png":     true,
	"image/gif":     true,
	"image/webp":    true,
	"image/svg+xml": true,
}

// allowedFolders: folder từ client là untrusted input,
// allowlist thay vì sanitize path
var allowedFolders = map[string]bool{
	"posts":   true,
	"events":  true,
	"reports": true,
	"misc":    true,
}

type UploadResp struct {
	URL string `json:"url"`
}

// Storage là phần của MinIO layer mà media cần
type Storage interface {
	Upload(ctx context.Context, folder, filename string, data []byte, contentType string) (string, error)
}

type MediaService interface {
	Upload(ctx context.Context, folder, filename string, data []byte, contentType string) (*UploadResp, error)
}

func GetHTTPStatusCode(err error) int {
	switch {
	case errors.Is(err, ErrFileTooLarge),
		errors.Is(err, ErrUnsupportedType),
		errors.Is(err, ErrInvalidUploadInput):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// ValidFolder check folder nằm trong allowlist; "" default về misc
func ValidFolder(folder string) (string, bool) {
	if folder == "" {
		return "misc", true
	}
	return folder, allowedFolders[folder]
}

func ValidContentType(contentType string) bool {
	return allowedContentTypes[contentType]
}
