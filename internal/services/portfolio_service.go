package services

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"gorm.io/gorm"

	"bytestudio_backend/internal/config"
	"bytestudio_backend/internal/logger"
	"bytestudio_backend/internal/models"
	"bytestudio_backend/internal/repositories"
	"bytestudio_backend/internal/services/dto"
	"bytestudio_backend/internal/storage"
	"bytestudio_backend/pkg/apperrors"
)

const defaultArtist = "Unknown Artist"

type PortfolioService interface {
	List(db *gorm.DB, category string) ([]models.Work, error)
	Open(ctx context.Context, db *gorm.DB, id string) (*models.Work, error)
	Upload(ctx context.Context, db *gorm.DB, req *dto.UploadWorkRequest) (*models.Work, error)
	Update(ctx context.Context, db *gorm.DB, id string, req *dto.UpdateWorkRequest) (*models.Work, error)
	Delete(ctx context.Context, db *gorm.DB, id string) error
	Stats(db *gorm.DB) (*repositories.WorkStats, error)
}

type portfolioService struct {
	workRepo repositories.WorkRepository
	store    storage.Storage
	upload   config.UploadConfig
	events   Events
}

func NewPortfolioService(workRepo repositories.WorkRepository, store storage.Storage, upload config.UploadConfig, events Events) PortfolioService {
	if upload.MaxFileSize <= 0 {
		upload.MaxFileSize = 10 << 20
	}
	if len(upload.AllowedTypes) == 0 {
		upload.AllowedTypes = []string{"image/jpeg", "image/jpg", "image/png", "image/gif", "image/webp"}
	}
	return &portfolioService{workRepo: workRepo, store: store, upload: upload, events: events}
}

func (s *portfolioService) List(db *gorm.DB, category string) ([]models.Work, error) {
	works, err := s.workRepo.List(db, strings.TrimSpace(category))
	if err != nil {
		return nil, apperrors.NewInternal("portfolio", "Failed to load works.", err)
	}
	return works, nil
}

// Open returns the work and bumps its view counter. The counter update is a
// SQL increment; the returned struct is adjusted in memory to match, so no
// second read happens.
func (s *portfolioService) Open(ctx context.Context, db *gorm.DB, id string) (*models.Work, error) {
	work, err := s.workRepo.FindByID(db, id)
	if err != nil {
		if errors.Is(err, repositories.ErrWorkNotFound) {
			return nil, apperrors.ErrWorkNotFound
		}
		return nil, apperrors.NewInternal("portfolio", "Failed to load work.", err)
	}
	if err := s.workRepo.IncrementViews(db, id, 1); err != nil {
		return nil, apperrors.NewInternal("portfolio", "Failed to record the view.", err)
	}
	work.Views++
	return work, nil
}

// Upload validates, stores the blob, then creates the record. Each check is
// a hard stop before any storage or database call. A record failure after a
// successful blob write leaves the blob in place; it is logged as orphaned
// for manual reconciliation.
func (s *portfolioService) Upload(ctx context.Context, db *gorm.DB, req *dto.UploadWorkRequest) (*models.Work, error) {
	if req.File == nil || req.File.Size == 0 {
		return nil, apperrors.ErrFileRequired
	}
	contentType := s.detectContentType(req.File)
	if !s.typeAllowed(contentType) {
		return nil, apperrors.ErrInvalidFileType
	}
	if req.File.Size > s.upload.MaxFileSize {
		return nil, apperrors.ErrFileTooLarge
	}
	title := strings.TrimSpace(req.Title)
	category := strings.TrimSpace(req.Category)
	if title == "" || category == "" {
		return nil, apperrors.ErrTitleRequired
	}
	if !s.categoryAllowed(category) {
		return nil, apperrors.NewBadRequest("portfolio", "Unknown category.")
	}

	src, err := req.File.Open()
	if err != nil {
		return nil, apperrors.NewInternal("portfolio", "Failed to read the uploaded file.", err)
	}
	defer src.Close()

	path := fmt.Sprintf("portfolio/%d_%s", time.Now().UnixMilli(), sanitizeFilename(req.File.Filename))

	var lastLogged int64 = -1
	reader := storage.NewProgressReader(src, req.File.Size, func(transferred, total int64) {
		if total <= 0 {
			return
		}
		pct := transferred * 100 / total
		if pct/10 > lastLogged {
			lastLogged = pct / 10
			logger.CtxInfo(ctx, "upload progress", "path", path, "percent", pct)
		}
	})

	url, err := s.store.Save(ctx, path, reader, req.File.Size, contentType)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeStorageFailure, "portfolio",
			"Failed to upload the image. Please try again.", 500)
	}

	artist := strings.TrimSpace(req.Artist)
	if artist == "" {
		artist = defaultArtist
	}

	work := &models.Work{
		Title:       title,
		Category:    category,
		Description: strings.TrimSpace(req.Description),
		Client:      strings.TrimSpace(req.Client),
		Artist:      artist,
		Year:        req.Year,
		ImageURL:    url,
		StoragePath: path,
		Size:        req.File.Size,
		Views:       0,
		UploadedAt:  time.Now().UTC(),
	}
	if err := s.workRepo.Create(db, work); err != nil {
		logger.CtxError(ctx, "work record create failed, blob orphaned", "path", path, "error", err)
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "portfolio",
			"Image stored but the work could not be saved.", 500)
	}

	logger.CtxInfo(ctx, "work uploaded", "work_id", work.ID, "path", path, "size", work.Size)
	publish(s.events, "work.uploaded", "success", fmt.Sprintf("New work uploaded: %s", title))
	return work, nil
}

func (s *portfolioService) Update(ctx context.Context, db *gorm.DB, id string, req *dto.UpdateWorkRequest) (*models.Work, error) {
	patch := map[string]any{}
	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return nil, apperrors.NewBadRequest("portfolio", "Title cannot be empty.")
		}
		patch["title"] = title
	}
	if req.Category != nil {
		category := strings.TrimSpace(*req.Category)
		if !s.categoryAllowed(category) {
			return nil, apperrors.NewBadRequest("portfolio", "Unknown category.")
		}
		patch["category"] = category
	}
	if req.Description != nil {
		patch["description"] = strings.TrimSpace(*req.Description)
	}
	if req.Client != nil {
		patch["client"] = strings.TrimSpace(*req.Client)
	}
	if req.Artist != nil {
		artist := strings.TrimSpace(*req.Artist)
		if artist == "" {
			artist = defaultArtist
		}
		patch["artist"] = artist
	}
	if req.Year != nil {
		patch["year"] = *req.Year
	}

	if len(patch) > 0 {
		if err := s.workRepo.Update(db, id, patch); err != nil {
			if errors.Is(err, repositories.ErrWorkNotFound) {
				return nil, apperrors.ErrWorkNotFound
			}
			return nil, apperrors.NewInternal("portfolio", "Failed to update the work.", err)
		}
	}

	work, err := s.workRepo.FindByID(db, id)
	if err != nil {
		if errors.Is(err, repositories.ErrWorkNotFound) {
			return nil, apperrors.ErrWorkNotFound
		}
		return nil, apperrors.NewInternal("portfolio", "Failed to load work.", err)
	}
	return work, nil
}

// Delete removes the blob first; if that fails the record is left intact so
// the item stays listed. A record failure after blob removal is logged as an
// orphaned record.
func (s *portfolioService) Delete(ctx context.Context, db *gorm.DB, id string) error {
	work, err := s.workRepo.FindByID(db, id)
	if err != nil {
		if errors.Is(err, repositories.ErrWorkNotFound) {
			return apperrors.ErrWorkNotFound
		}
		return apperrors.NewInternal("portfolio", "Failed to load work.", err)
	}

	if err := s.store.Delete(ctx, work.StoragePath); err != nil {
		return apperrors.Wrap(err, apperrors.CodeStorageFailure, "portfolio",
			"Failed to delete the image. The work was not removed.", 500)
	}

	if err := s.workRepo.Delete(db, id); err != nil {
		logger.CtxError(ctx, "work record delete failed after blob removal, record orphaned",
			"work_id", id, "path", work.StoragePath, "error", err)
		return apperrors.Wrap(err, apperrors.CodeDatabaseError, "portfolio",
			"Image deleted but the work record could not be removed.", 500)
	}

	logger.CtxInfo(ctx, "work deleted", "work_id", id, "path", work.StoragePath)
	publish(s.events, "work.deleted", "info", fmt.Sprintf("Work deleted: %s", work.Title))
	return nil
}

func (s *portfolioService) Stats(db *gorm.DB) (*repositories.WorkStats, error) {
	stats, err := s.workRepo.Stats(db)
	if err != nil {
		return nil, apperrors.NewInternal("portfolio", "Failed to load stats.", err)
	}
	return stats, nil
}

func (s *portfolioService) typeAllowed(contentType string) bool {
	for _, t := range s.upload.AllowedTypes {
		if strings.EqualFold(t, contentType) {
			return true
		}
	}
	return false
}

func (s *portfolioService) categoryAllowed(category string) bool {
	if len(s.upload.Categories) == 0 {
		return category != ""
	}
	for _, c := range s.upload.Categories {
		if c == category {
			return true
		}
	}
	return false
}

// detectContentType prefers the declared header and falls back to the file
// extension when the client sent something generic.
func (s *portfolioService) detectContentType(file *multipart.FileHeader) string {
	ct := strings.ToLower(strings.TrimSpace(file.Header.Get("Content-Type")))
	if ct != "" && ct != "application/octet-stream" {
		return ct
	}
	switch strings.ToLower(filepath.Ext(file.Filename)) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".gif":
		return "image/gif"
	case ".webp":
		return "image/webp"
	default:
		return ct
	}
}

// sanitizeFilename keeps the original name recognizable while stripping
// anything that could escape the storage prefix.
func sanitizeFilename(name string) string {
	name = filepath.Base(name)
	name = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, name)
	if name == "" || name == "." {
		name = "upload"
	}
	return name
}
