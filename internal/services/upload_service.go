package services

import (
	"context"
	"mime/multipart"
	"path/filepath"
	"strings"

	"portfolio_backend/internal/services/dto"
	"portfolio_backend/internal/storage"
	"portfolio_backend/pkg/apperrors"

	"github.com/google/uuid"
)

type UploadConfig struct {
	MaxSize           int64
	AllowedExtensions []string
	AllowedTypes      []string
}

// UploadService streams multipart files to the storage backend. No retries,
// no partial-success state: any failure aborts the whole upload.
type UploadService interface {
	UploadFile(ctx context.Context, file *multipart.FileHeader) (*dto.UploadResponse, error)
	UploadFiles(ctx context.Context, files []*multipart.FileHeader) (*dto.MultiUploadResponse, error)
	DeleteFile(ctx context.Context, filename string) error
}

type uploadService struct {
	storage storage.Storage
	config  UploadConfig
}

func NewUploadService(store storage.Storage, config UploadConfig) UploadService {
	return &uploadService{storage: store, config: config}
}

func (s *uploadService) validate(file *multipart.FileHeader) error {
	if file.Size > s.config.MaxSize {
		return apperrors.ErrFileTooLarge
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !contains(s.config.AllowedExtensions, ext) {
		return apperrors.ErrInvalidFileType
	}

	contentType := file.Header.Get("Content-Type")
	if contentType != "" && !contains(s.config.AllowedTypes, contentType) {
		return apperrors.ErrInvalidFileType
	}

	return nil
}

func (s *uploadService) UploadFile(ctx context.Context, file *multipart.FileHeader) (*dto.UploadResponse, error) {
	if err := s.validate(file); err != nil {
		return nil, err
	}

	src, err := file.Open()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	defer src.Close()

	ext := strings.ToLower(filepath.Ext(file.Filename))
	filename := uuid.New().String() + ext
	contentType := file.Header.Get("Content-Type")

	if err := s.storage.Save(ctx, filename, src, contentType); err != nil {
		return nil, apperrors.UpstreamError(err, "upload")
	}

	url, err := s.storage.GetURL(ctx, filename)
	if err != nil {
		return nil, apperrors.UpstreamError(err, "upload")
	}

	return &dto.UploadResponse{
		Filename:    filename,
		URL:         url,
		Size:        file.Size,
		ContentType: contentType,
	}, nil
}

func (s *uploadService) UploadFiles(ctx context.Context, files []*multipart.FileHeader) (*dto.MultiUploadResponse, error) {
	responses := make([]dto.UploadResponse, 0, len(files))
	for _, file := range files {
		resp, err := s.UploadFile(ctx, file)
		if err != nil {
			return nil, err
		}
		responses = append(responses, *resp)
	}
	return &dto.MultiUploadResponse{Files: responses}, nil
}

func (s *uploadService) DeleteFile(ctx context.Context, filename string) error {
	// Stored names are flat UUIDs; reject anything that looks like a path.
	if filename == "" || strings.ContainsAny(filename, "/\\") || strings.Contains(filename, "..") {
		return apperrors.NewBadRequestError("Invalid filename")
	}

	if err := s.storage.Delete(ctx, filename); err != nil {
		return apperrors.UpstreamError(err, "upload")
	}
	return nil
}

func contains(haystack []string, needle string) bool {
	for _, item := range haystack {
		if item == needle {
			return true
		}
	}
	return false
}
