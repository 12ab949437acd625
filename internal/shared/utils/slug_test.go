package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple title", "Hello World", "hello-world"},
		{"punctuation and double spaces", "Hello, World!  Refugee Support", "hello-world-refugee-support"},
		{"leading and trailing spaces", "  Annual Gala  ", "annual-gala"},
		{"underscores collapse", "youth_empowerment_program", "youth-empowerment-program"},
		{"mixed separators", "food - drive__2024", "food-drive-2024"},
		{"only punctuation", "!!!", ""},
		{"empty input", "", ""},
		{"already a slug", "clean-water-project", "clean-water-project"},
		{"uppercase with numbers", "Top 10 Stories", "top-10-stories"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.input))
		})
	}
}

func TestEventSlug(t *testing.T) {
	now := time.UnixMilli(1735689600000)

	got := EventSlug("Community Fundraiser!", now)
	assert.Equal(t, "community-fundraiser-1735689600000", got)
}

func TestEventSlugUniqueForSameTitle(t *testing.T) {
	first := EventSlug("Gala Night", time.UnixMilli(1000))
	second := EventSlug("Gala Night", time.UnixMilli(2000))

	assert.NotEqual(t, first, second)
}
