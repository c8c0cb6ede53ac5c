package service

import (
	"context"
	"fmt"
	"log/slog"
	"mime/multipart"

	"CivicConnectAPI/internal/adapter"
	"CivicConnectAPI/internal/config"
	"CivicConnectAPI/internal/constant"
	"CivicConnectAPI/internal/helper"
	"CivicConnectAPI/internal/model"

	"github.com/google/uuid"
)

// MediaService stores report photos in object storage and hands back
// the public URLs callers attach to reports.
type MediaService struct {
	config  *config.AppConfig
	storage *adapter.StorageAdapter
}

func NewMediaService(cfg *config.AppConfig, storage *adapter.StorageAdapter) *MediaService {
	return &MediaService{
		config:  cfg,
		storage: storage,
	}
}

// UploadPhotos validates and stores up to five images per request. The
// content type is sniffed from the bytes, not trusted from the header.
// A failed file is skipped so it cannot take down the rest of the
// batch; the request fails only when no file made it through.
func (s *MediaService) UploadPhotos(ctx context.Context, principal *model.UserDTO, files []*multipart.FileHeader) ([]model.UploadedPhotoDTO, error) {
	if len(files) == 0 {
		return nil, helper.NewBadRequestError("No files uploaded")
	}
	if len(files) > constant.MaxPhotoCount {
		return nil, helper.NewBadRequestError(fmt.Sprintf("A maximum of %d photos is allowed", constant.MaxPhotoCount))
	}

	uploaded := make([]model.UploadedPhotoDTO, 0, len(files))
	var firstErr error
	for _, fileHeader := range files {
		photo, err := s.storeOne(ctx, principal.ID, fileHeader)
		if err != nil {
			slog.Warn("Skipping photo", "file", fileHeader.Filename, "error", err)
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		uploaded = append(uploaded, *photo)
	}

	if len(uploaded) == 0 {
		return nil, firstErr
	}

	slog.Info("Photos uploaded", "userID", principal.ID, "count", len(uploaded), "skipped", len(files)-len(uploaded))
	return uploaded, nil
}

func (s *MediaService) storeOne(ctx context.Context, userID uuid.UUID, fileHeader *multipart.FileHeader) (*model.UploadedPhotoDTO, error) {
	if fileHeader.Size > constant.MaxPhotoSize {
		return nil, helper.NewBadRequestError(fmt.Sprintf("File %s exceeds the 5MB limit", fileHeader.Filename))
	}

	file, err := fileHeader.Open()
	if err != nil {
		slog.Error("Failed to open uploaded file", "error", err, "file", fileHeader.Filename)
		return nil, helper.NewInternalServerError("")
	}
	defer file.Close()

	contentType, err := helper.DetectFileContentType(file)
	if err != nil {
		slog.Warn("Failed to detect content type", "error", err, "file", fileHeader.Filename)
		return nil, helper.NewBadRequestError("Uploaded file is not readable")
	}
	if !helper.IsImageContentType(contentType) {
		return nil, helper.NewBadRequestError(fmt.Sprintf("File %s is not a supported image", fileHeader.Filename))
	}

	fileName := helper.GenerateUniqueFileName(fileHeader.Filename)
	path := fmt.Sprintf("reports/%s/%s", userID, fileName)

	if err := s.storage.StoreFromReader(ctx, file, contentType, path); err != nil {
		slog.Error("Failed to store photo", "error", err, "path", path)
		return nil, helper.NewInternalServerError("")
	}

	return &model.UploadedPhotoDTO{
		FileName: fileName,
		URL:      s.storage.PublicURL(path),
		Size:     fileHeader.Size,
	}, nil
}
