package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"

	"github.com/vltrn/datav/internal/client/client"
	"github.com/vltrn/datav/internal/client/models"
	"github.com/vltrn/datav/internal/client/plans"
	"github.com/vltrn/datav/internal/filex"
)

type FileService interface {
	Upload(ctx context.Context, projectID string, file client.UploadFile, onProgress client.ProgressFunc) (json.RawMessage, error)
	UploadPath(ctx context.Context, projectID, path string, onProgress client.ProgressFunc) (json.RawMessage, error)
	Status(ctx context.Context, fileID string) (*models.FileRecord, error)
	ProjectFiles(ctx context.Context, projectID string) ([]models.FileRecord, error)
}

type fileService struct {
	client  client.Client
	variant Variant
}

func NewFileService(c client.Client, v Variant) FileService {
	return &fileService{client: c, variant: v}
}

// Upload checks size and content type locally, then sends the file. An
// empty ContentType is detected from the name and content.
func (s *fileService) Upload(ctx context.Context, projectID string, file client.UploadFile, onProgress client.ProgressFunc) (json.RawMessage, error) {
	if int64(len(file.Content)) > plans.MaxFileSizeBytes {
		return nil, fmt.Errorf("%w: %s exceeds %d MB", ErrFileTooLarge, file.Name, plans.MaxFileSizeMB)
	}
	if file.ContentType == "" {
		file.ContentType = plans.DetectContentType(file.Name, file.Content)
	}
	if !plans.IsAllowedType(file.ContentType) {
		return nil, fmt.Errorf("%w: %s", ErrFileTypeNotAllowed, file.ContentType)
	}

	return s.client.Upload(ctx, s.variant.path("/projects/"+segment(projectID)+"/upload"), file, onProgress)
}

// UploadPath reads the file at path and uploads it under its base name.
func (s *fileService) UploadPath(ctx context.Context, projectID, path string, onProgress client.ProgressFunc) (json.RawMessage, error) {
	content, err := filex.ReadLimited(path, plans.MaxFileSizeBytes)
	if err != nil {
		if errors.Is(err, filex.ErrFileTooLarge) {
			return nil, fmt.Errorf("%w: %s exceeds %d MB", ErrFileTooLarge, path, plans.MaxFileSizeMB)
		}
		return nil, err
	}
	return s.Upload(ctx, projectID, client.UploadFile{Name: filepath.Base(path), Content: content}, onProgress)
}

func (s *fileService) Status(ctx context.Context, fileID string) (*models.FileRecord, error) {
	raw, err := s.client.Request(ctx, client.Request{
		Path:   s.variant.path("/files/" + segment(fileID) + "/status"),
		Method: http.MethodGet,
	})
	if err != nil {
		return nil, fmt.Errorf("file status error: %w", err)
	}

	f, err := decode[models.FileRecord](raw, "file status")
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (s *fileService) ProjectFiles(ctx context.Context, projectID string) ([]models.FileRecord, error) {
	raw, err := s.client.Request(ctx, client.Request{
		Path:   s.variant.path("/projects/" + segment(projectID) + "/files"),
		Method: http.MethodGet,
	})
	if err != nil {
		return nil, fmt.Errorf("list files error: %w", err)
	}

	list, err := decode[[]models.FileRecord](raw, "file list")
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []models.FileRecord{}
	}
	return list, nil
}
