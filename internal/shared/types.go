package shared

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// ============================================================
// FLEXIBLE JSON TYPES
// ============================================================
// Admin dashboard gửi numeric fields theo nhiều dạng tùy input state:
// 50, "50", "" hoặc null. FlexInt normalize tất cả về một chỗ
// để validation không phải xử lý từng dạng.

// FlexInt là optional integer field chấp nhận number, numeric string,
// empty string và null trong JSON payload.
//
// NORMALIZATION RULE:
// - 50 hoặc "50"  => value present
// - "" hoặc null  => absent (KHÔNG phải 0, không phải parse error)
//
// Dùng *FlexInt trong DTO để phân biệt thêm "field không có trong payload".
type FlexInt struct {
	value *int
}

// NewFlexInt tạo FlexInt có giá trị (dùng trong tests và seeds)
func NewFlexInt(v int) FlexInt {
	return FlexInt{value: &v}
}

func (f *FlexInt) UnmarshalJSON(b []byte) error {
	f.value = nil

	trimmed := bytes.TrimSpace(b)

	// null => absent
	if bytes.Equal(trimmed, []byte("null")) {
		return nil
	}

	// String form: "" => absent, "50" => 50
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			return nil
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return fmt.Errorf("invalid number: %q", s)
		}
		f.value = &n
		return nil
	}

	// Bare number form
	var n int
	if err := json.Unmarshal(trimmed, &n); err != nil {
		return err
	}
	f.value = &n
	return nil
}

func (f FlexInt) MarshalJSON() ([]byte, error) {
	if f.value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*f.value)
}

// Int trả về giá trị nếu có, nil nếu absent
func (f FlexInt) Int() *int {
	return f.value
}

// HasValue = true khi client gửi một số thật sự (không phải "" / null)
func (f FlexInt) HasValue() bool {
	return f.value != nil
}
