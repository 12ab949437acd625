package contact

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWhatsAppReqValidate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		req := WhatsAppReq{Name: "Lan", Message: "I want to volunteer"}
		assert.NoError(t, req.Validate())
	})

	t.Run("missing fields", func(t *testing.T) {
		assert.Error(t, WhatsAppReq{}.Validate())
		assert.Error(t, WhatsAppReq{Name: "Lan"}.Validate())
		assert.Error(t, WhatsAppReq{Message: "hi"}.Validate())
	})

	t.Run("message too long", func(t *testing.T) {
		req := WhatsAppReq{Name: "Lan", Message: strings.Repeat("x", 1001)}
		assert.Error(t, req.Validate())
	})
}

func TestBuildWhatsAppURL(t *testing.T) {
	got := BuildWhatsAppURL("84901234567", "Lan", "I want to volunteer & help")

	assert.True(t, strings.HasPrefix(got, "https://wa.me/84901234567?text="))

	// Text phải được escape đúng để wa.me decode lại nguyên văn
	u, err := url.Parse(got)
	require.NoError(t, err)
	assert.Equal(t, "Hi, I'm Lan. I want to volunteer & help", u.Query().Get("text"))
}
