package service

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ngo-cms-backend/internal/domains/media"
)

type mockStorage struct {
	upload func(ctx context.Context, folder, filename string, data []byte, contentType string) (string, error)
}

func (m *mockStorage) Upload(ctx context.Context, folder, filename string, data []byte, contentType string) (string, error) {
	if m.upload != nil {
		return m.upload(ctx, folder, filename, data, contentType)
	}
	return "https://cdn.example.org/" + folder + "/" + filename, nil
}

func TestUploadMedia(t *testing.T) {
	ctx := context.Background()
	png := []byte("fake png bytes")

	t.Run("happy path returns public URL", func(t *testing.T) {
		svc := NewMediaService(&mockStorage{})
		resp, err := svc.Upload(ctx, "posts", "cover.png", png, "image/png")
		require.NoError(t, err)
		assert.Equal(t, "https://cdn.example.org/posts/cover.png", resp.URL)
	})

	t.Run("empty folder defaults to misc", func(t *testing.T) {
		gotFolder := ""
		s := &mockStorage{
			upload: func(ctx context.Context, folder, filename string, data []byte, contentType string) (string, error) {
				gotFolder = folder
				return "url", nil
			},
		}

		svc := NewMediaService(s)
		_, err := svc.Upload(ctx, "", "a.png", png, "image/png")
		require.NoError(t, err)
		assert.Equal(t, "misc", gotFolder)
	})

	t.Run("unlisted folder rejected", func(t *testing.T) {
		svc := NewMediaService(&mockStorage{})
		_, err := svc.Upload(ctx, "../etc", "a.png", png, "image/png")
		assert.ErrorIs(t, err, media.ErrInvalidUploadInput)
	})

	t.Run("oversized file rejected", func(t *testing.T) {
		svc := NewMediaService(&mockStorage{})
		big := bytes.Repeat([]byte("a"), media.MaxUploadSize+1)
		_, err := svc.Upload(ctx, "posts", "huge.png", big, "image/png")
		assert.ErrorIs(t, err, media.ErrFileTooLarge)
	})

	t.Run("non-image content type rejected", func(t *testing.T) {
		svc := NewMediaService(&mockStorage{})
		_, err := svc.Upload(ctx, "posts", "run.exe", png, "application/octet-stream")
		assert.ErrorIs(t, err, media.ErrUnsupportedType)
	})

	t.Run("empty payload rejected", func(t *testing.T) {
		svc := NewMediaService(&mockStorage{})
		_, err := svc.Upload(ctx, "posts", "a.png", nil, "image/png")
		assert.ErrorIs(t, err, media.ErrInvalidUploadInput)
	})
}
