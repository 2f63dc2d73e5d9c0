package media

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/courtside/sportbook-backend/internal/pkg/apperror"
	"github.com/courtside/sportbook-backend/internal/pkg/storage"
	"github.com/courtside/sportbook-backend/internal/venue"
)

var (
	ErrVenueNotFound    = apperror.New(http.StatusNotFound, "venue not found")
	ErrUnsupportedType  = apperror.New(http.StatusBadRequest, "unsupported image type")
	ErrFileTooLarge     = apperror.New(http.StatusRequestEntityTooLarge, "file exceeds size limit")
	ErrPermissionDenied = apperror.New(http.StatusForbidden, "permission denied")
	ErrNotFound         = apperror.New(http.StatusNotFound, "photo not found")
)

// MaxUploadBytes caps venue photo uploads.
const MaxUploadBytes = 10 << 20 // 10 MiB

const (
	thumbMaxWidth  = 480
	thumbMaxHeight = 480
)

var allowedExtensions = map[string]struct{}{
	".jpg": {}, ".jpeg": {}, ".png": {},
}

// Photo points at a stored venue photo and its thumbnail.
type Photo struct {
	Path          string
	ThumbnailPath string
}

type Service interface {
	// UploadVenuePhoto stores a photo for a venue, generates a thumbnail and
	// records the path on the venue. Only the venue owner or an admin may
	// upload.
	UploadVenuePhoto(ctx context.Context, venueID, uploaderID string, isAdmin bool, filename string, content io.Reader) (*Photo, error)

	// OpenPhoto streams a stored photo.
	OpenPhoto(ctx context.Context, path string) (io.ReadCloser, error)
}

type service struct {
	store      storage.Storage
	images     *storage.ImageProcessor
	venService venue.Service
}

func NewService(store storage.Storage, images *storage.ImageProcessor, venService venue.Service) Service {
	return &service{
		store:      store,
		images:     images,
		venService: venService,
	}
}

func (s *service) UploadVenuePhoto(ctx context.Context, venueID, uploaderID string, isAdmin bool, filename string, content io.Reader) (*Photo, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if _, ok := allowedExtensions[ext]; !ok {
		return nil, ErrUnsupportedType
	}

	if !isAdmin {
		isOwner, err := s.venService.IsOwner(ctx, venueID, uploaderID)
		if err != nil {
			if errors.Is(err, venue.ErrNotFound) {
				return nil, ErrVenueNotFound
			}
			return nil, err
		}
		if !isOwner {
			return nil, ErrPermissionDenied
		}
	}

	// Read the whole upload once; it feeds both the original and the
	// thumbnail encoder.
	data, err := io.ReadAll(io.LimitReader(content, MaxUploadBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read upload failed: %w", err)
	}
	if len(data) > MaxUploadBytes {
		return nil, ErrFileTooLarge
	}

	name := uuid.NewString()
	photoPath := filepath.Join("venues", venueID, name+ext)
	thumbPath := filepath.Join("venues", venueID, name+"_thumb.jpg")

	if err := s.store.Save(ctx, photoPath, bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("store photo failed: %w", err)
	}

	thumb, err := s.images.GenerateThumbnail(bytes.NewReader(data), thumbMaxWidth, thumbMaxHeight)
	if err != nil {
		_ = s.store.Delete(ctx, photoPath)
		return nil, ErrUnsupportedType
	}
	if err := s.store.Save(ctx, thumbPath, thumb); err != nil {
		_ = s.store.Delete(ctx, photoPath)
		return nil, fmt.Errorf("store thumbnail failed: %w", err)
	}

	if err := s.venService.SetPhotoPath(ctx, venueID, photoPath); err != nil {
		_ = s.store.Delete(ctx, photoPath)
		_ = s.store.Delete(ctx, thumbPath)
		if errors.Is(err, venue.ErrNotFound) {
			return nil, ErrVenueNotFound
		}
		return nil, err
	}

	return &Photo{Path: photoPath, ThumbnailPath: thumbPath}, nil
}

func (s *service) OpenPhoto(ctx context.Context, path string) (io.ReadCloser, error) {
	rc, err := s.store.Get(ctx, path)
	if err != nil {
		return nil, ErrNotFound
	}
	return rc, nil
}
