package service

import (
	"context"
	"fmt"

	"ngo-cms-backend/internal/domains/media"
)

type mediaServiceImpl struct {
	storage media.Storage
}

func NewMediaService(storage media.Storage) media.MediaService {
	return &mediaServiceImpl{storage: storage}
}

func (s *mediaServiceImpl) Upload(ctx context.Context, folder, filename string, data []byte, contentType string) (*media.UploadResp, error) {
	if len(data) == 0 || filename == "" {
		return nil, media.ErrInvalidUploadInput
	}
	if len(data) > media.MaxUploadSize {
		return nil, media.ErrFileTooLarge
	}
	if !media.ValidContentType(contentType) {
		return nil, media.ErrUnsupportedType
	}

	folder, ok := media.ValidFolder(folder)
	if !ok {
		return nil, media.ErrInvalidUploadInput
	}

	url, err := s.storage.Upload(ctx, folder, filename, data, contentType)
	if err != nil {
		return nil, fmt.Errorf("upload media: %w", err)
	}

	return &media.UploadResp{URL: url}, nil
}
