package utils

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

var (
	slugInvalidChars = regexp.MustCompile(`[^\w\s-]`)
	slugSeparators   = regexp.MustCompile(`[\s_-]+`)
)

// Slugify chuyển title thành URL-safe slug
//
// Steps:
// 1. Lowercase + trim
//    "Hello, World!  Refugee Support" => "hello, world!  refugee support"
// 2. Strip mọi ký tự ngoài [word chars, whitespace, hyphen]
//    => "hello world  refugee support"
// 3. Collapse runs của whitespace/underscore/hyphen thành một hyphen
//    => "hello-world-refugee-support"
// 4. Trim leading/trailing hyphens
func Slugify(input string) string {
	s := strings.ToLower(strings.TrimSpace(input))
	s = slugInvalidChars.ReplaceAllString(s, "")
	s = slugSeparators.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// EventSlug tạo slug cho event: slugify(title) + "-" + epoch millis
// Timestamp suffix đảm bảo unique kể cả khi trùng title
// Trade-off: không idempotent - chạy lại create với cùng input ra slug khác
func EventSlug(title string, now time.Time) string {
	return fmt.Sprintf("%s-%d", Slugify(title), now.UnixMilli())
}
