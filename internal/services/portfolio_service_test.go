package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"bytestudio_backend/internal/config"
	"bytestudio_backend/internal/models"
	"bytestudio_backend/internal/repositories"
	"bytestudio_backend/internal/services/dto"
	"bytestudio_backend/pkg/apperrors"
)

type fakeWorkRepo struct {
	works     map[string]*models.Work
	order     []string
	creates   int
	createErr error
	deleteErr error
}

func newFakeWorkRepo() *fakeWorkRepo {
	return &fakeWorkRepo{works: make(map[string]*models.Work)}
}

func (r *fakeWorkRepo) add(w models.Work) string {
	if w.ID == "" {
		w.ID = uuid.NewString()
	}
	r.works[w.ID] = &w
	r.order = append(r.order, w.ID)
	return w.ID
}

func (r *fakeWorkRepo) List(db *gorm.DB, category string) ([]models.Work, error) {
	out := []models.Work{}
	for _, id := range r.order {
		w := r.works[id]
		if category != "" && category != "all" && w.Category != category {
			continue
		}
		out = append(out, *w)
	}
	return out, nil
}

func (r *fakeWorkRepo) FindByID(db *gorm.DB, id string) (*models.Work, error) {
	w, ok := r.works[id]
	if !ok {
		return nil, repositories.ErrWorkNotFound
	}
	clone := *w
	return &clone, nil
}

func (r *fakeWorkRepo) Create(db *gorm.DB, work *models.Work) error {
	r.creates++
	if r.createErr != nil {
		return r.createErr
	}
	if work.ID == "" {
		work.ID = uuid.NewString()
	}
	clone := *work
	r.works[work.ID] = &clone
	r.order = append(r.order, work.ID)
	return nil
}

func (r *fakeWorkRepo) Update(db *gorm.DB, id string, patch map[string]any) error {
	w, ok := r.works[id]
	if !ok {
		return repositories.ErrWorkNotFound
	}
	for k, v := range patch {
		switch k {
		case "title":
			w.Title = v.(string)
		case "category":
			w.Category = v.(string)
		case "description":
			w.Description = v.(string)
		case "client":
			w.Client = v.(string)
		case "artist":
			w.Artist = v.(string)
		case "year":
			w.Year = v.(int)
		}
	}
	return nil
}

func (r *fakeWorkRepo) Delete(db *gorm.DB, id string) error {
	if r.deleteErr != nil {
		return r.deleteErr
	}
	if _, ok := r.works[id]; !ok {
		return repositories.ErrWorkNotFound
	}
	delete(r.works, id)
	return nil
}

func (r *fakeWorkRepo) IncrementViews(db *gorm.DB, id string, delta int64) error {
	w, ok := r.works[id]
	if !ok {
		return repositories.ErrWorkNotFound
	}
	w.Views += delta
	return nil
}

func (r *fakeWorkRepo) Stats(db *gorm.DB) (*repositories.WorkStats, error) {
	stats := &repositories.WorkStats{}
	for _, w := range r.works {
		stats.TotalWorks++
		stats.TotalViews += w.Views
		stats.StorageBytes += w.Size
	}
	return stats, nil
}

type fakeStorage struct {
	saved     map[string][]byte
	deleted   []string
	saveErr   error
	deleteErr error
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{saved: make(map[string][]byte)}
}

func (s *fakeStorage) Save(ctx context.Context, path string, r io.Reader, size int64, contentType string) (string, error) {
	if s.saveErr != nil {
		return "", s.saveErr
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	s.saved[path] = data
	return s.GetURL(path), nil
}

func (s *fakeStorage) Get(ctx context.Context, path string) (io.ReadCloser, error) {
	data, ok := s.saved[path]
	if !ok {
		return nil, errors.New("not found")
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (s *fakeStorage) Delete(ctx context.Context, path string) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}
	s.deleted = append(s.deleted, path)
	delete(s.saved, path)
	return nil
}

func (s *fakeStorage) Exists(ctx context.Context, path string) (bool, error) {
	_, ok := s.saved[path]
	return ok, nil
}

func (s *fakeStorage) GetURL(path string) string { return "https://cdn.test/" + path }

func (s *fakeStorage) GetSignedURL(ctx context.Context, path string, expiry time.Duration) (string, error) {
	return s.GetURL(path), nil
}

func (s *fakeStorage) GetSize(ctx context.Context, path string) (int64, error) {
	return int64(len(s.saved[path])), nil
}

type fakeEvents struct {
	published []string
}

func (e *fakeEvents) Publish(event, kind, message string) {
	e.published = append(e.published, event)
}

func makeFileHeader(t *testing.T, name, contentType string, size int) *multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="image"; filename="%s"`, name))
	header.Set("Content-Type", contentType)
	part, err := w.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(bytes.Repeat([]byte("x"), size))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(32 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })
	return form.File["image"][0]
}

func newTestPortfolioService(repo *fakeWorkRepo, store *fakeStorage, events *fakeEvents) PortfolioService {
	return NewPortfolioService(repo, store, config.UploadConfig{
		MaxFileSize:  1 << 20,
		AllowedTypes: []string{"image/jpeg", "image/jpg", "image/png", "image/gif", "image/webp"},
		Categories:   []string{"branding", "web-design", "illustration"},
	}, events)
}

func uploadReq(file *multipart.FileHeader) *dto.UploadWorkRequest {
	return &dto.UploadWorkRequest{
		Title:    "Neon Grid",
		Category: "web-design",
		File:     file,
	}
}

func TestUploadRejectsMissingFile(t *testing.T) {
	repo, store := newFakeWorkRepo(), newFakeStorage()
	svc := newTestPortfolioService(repo, store, nil)

	req := uploadReq(nil)
	_, err := svc.Upload(context.Background(), nil, req)

	assert.ErrorIs(t, err, apperrors.ErrFileRequired)
	assert.Zero(t, repo.creates)
	assert.Empty(t, store.saved)
}

func TestUploadRejectsBadFileType(t *testing.T) {
	repo, store := newFakeWorkRepo(), newFakeStorage()
	svc := newTestPortfolioService(repo, store, nil)

	req := uploadReq(makeFileHeader(t, "doc.pdf", "application/pdf", 128))
	_, err := svc.Upload(context.Background(), nil, req)

	assert.ErrorIs(t, err, apperrors.ErrInvalidFileType)
	assert.Zero(t, repo.creates)
	assert.Empty(t, store.saved)
}

func TestUploadRejectsOversizedFile(t *testing.T) {
	repo, store := newFakeWorkRepo(), newFakeStorage()
	svc := NewPortfolioService(repo, store, config.UploadConfig{
		MaxFileSize:  1024,
		AllowedTypes: []string{"image/png"},
		Categories:   []string{"web-design"},
	}, nil)

	req := uploadReq(makeFileHeader(t, "big.png", "image/png", 2048))
	_, err := svc.Upload(context.Background(), nil, req)

	assert.ErrorIs(t, err, apperrors.ErrFileTooLarge)
	assert.Zero(t, repo.creates)
	assert.Empty(t, store.saved)
}

func TestUploadRequiresTitleAndCategory(t *testing.T) {
	repo, store := newFakeWorkRepo(), newFakeStorage()
	svc := newTestPortfolioService(repo, store, nil)

	req := uploadReq(makeFileHeader(t, "shot.png", "image/png", 128))
	req.Title = "   "
	_, err := svc.Upload(context.Background(), nil, req)

	assert.ErrorIs(t, err, apperrors.ErrTitleRequired)
	assert.Zero(t, repo.creates)
	assert.Empty(t, store.saved)
}

func TestUploadCreatesWork(t *testing.T) {
	repo, store := newFakeWorkRepo(), newFakeStorage()
	events := &fakeEvents{}
	svc := newTestPortfolioService(repo, store, events)

	req := uploadReq(makeFileHeader(t, "neon grid.png", "image/png", 512))
	work, err := svc.Upload(context.Background(), nil, req)
	require.NoError(t, err)

	assert.Equal(t, "Neon Grid", work.Title)
	assert.Equal(t, "web-design", work.Category)
	assert.Equal(t, "Unknown Artist", work.Artist)
	assert.EqualValues(t, 0, work.Views)
	assert.EqualValues(t, 512, work.Size)
	assert.True(t, strings.HasPrefix(work.StoragePath, "portfolio/"))
	assert.True(t, strings.HasSuffix(work.StoragePath, "_neon_grid.png"))
	assert.Equal(t, store.GetURL(work.StoragePath), work.ImageURL)
	assert.Len(t, store.saved, 1)
	assert.Len(t, store.saved[work.StoragePath], 512)
	assert.Equal(t, []string{"work.uploaded"}, events.published)

	stored, err := repo.FindByID(nil, work.ID)
	require.NoError(t, err)
	assert.Equal(t, work.StoragePath, stored.StoragePath)
}

func TestUploadKeepsBlobWhenRecordFails(t *testing.T) {
	repo, store := newFakeWorkRepo(), newFakeStorage()
	repo.createErr = errors.New("db down")
	svc := newTestPortfolioService(repo, store, nil)

	req := uploadReq(makeFileHeader(t, "shot.png", "image/png", 128))
	_, err := svc.Upload(context.Background(), nil, req)

	require.Error(t, err)
	assert.Len(t, store.saved, 1, "blob must stay in place after a record failure")
	assert.Empty(t, store.deleted)
}

func TestDeleteStopsWhenBlobDeleteFails(t *testing.T) {
	repo, store := newFakeWorkRepo(), newFakeStorage()
	store.deleteErr = errors.New("storage down")
	id := repo.add(models.Work{Title: "Keep", StoragePath: "portfolio/1_keep.png"})
	store.saved["portfolio/1_keep.png"] = []byte("x")
	svc := newTestPortfolioService(repo, store, nil)

	err := svc.Delete(context.Background(), nil, id)

	require.Error(t, err)
	_, findErr := repo.FindByID(nil, id)
	assert.NoError(t, findErr, "record must survive a failed blob delete")
}

func TestDeleteRemovesBlobThenRecord(t *testing.T) {
	repo, store := newFakeWorkRepo(), newFakeStorage()
	events := &fakeEvents{}
	id := repo.add(models.Work{Title: "Gone", StoragePath: "portfolio/2_gone.png"})
	store.saved["portfolio/2_gone.png"] = []byte("x")
	svc := newTestPortfolioService(repo, store, events)

	require.NoError(t, svc.Delete(context.Background(), nil, id))

	assert.Equal(t, []string{"portfolio/2_gone.png"}, store.deleted)
	_, err := repo.FindByID(nil, id)
	assert.ErrorIs(t, err, repositories.ErrWorkNotFound)
	assert.Equal(t, []string{"work.deleted"}, events.published)
}

func TestOpenIncrementsViews(t *testing.T) {
	repo, store := newFakeWorkRepo(), newFakeStorage()
	id := repo.add(models.Work{Title: "Popular", Views: 4})
	svc := newTestPortfolioService(repo, store, nil)

	first, err := svc.Open(context.Background(), nil, id)
	require.NoError(t, err)
	assert.EqualValues(t, 5, first.Views)

	second, err := svc.Open(context.Background(), nil, id)
	require.NoError(t, err)
	assert.EqualValues(t, 6, second.Views)

	assert.EqualValues(t, 6, repo.works[id].Views)
}

func TestOpenMissingWork(t *testing.T) {
	svc := newTestPortfolioService(newFakeWorkRepo(), newFakeStorage(), nil)
	_, err := svc.Open(context.Background(), nil, "nope")
	assert.ErrorIs(t, err, apperrors.ErrWorkNotFound)
}

func TestListFiltersByCategory(t *testing.T) {
	repo, store := newFakeWorkRepo(), newFakeStorage()
	repo.add(models.Work{Title: "A", Category: "web-design"})
	repo.add(models.Work{Title: "B", Category: "branding"})
	repo.add(models.Work{Title: "C", Category: "web-design"})
	svc := newTestPortfolioService(repo, store, nil)

	filtered, err := svc.List(nil, "web-design")
	require.NoError(t, err)
	assert.Len(t, filtered, 2)

	all, err := svc.List(nil, "all")
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestUpdatePatchesFields(t *testing.T) {
	repo, store := newFakeWorkRepo(), newFakeStorage()
	id := repo.add(models.Work{Title: "Old", Category: "branding", Artist: "Someone"})
	svc := newTestPortfolioService(repo, store, nil)

	title := "New Title"
	work, err := svc.Update(context.Background(), nil, id, &dto.UpdateWorkRequest{Title: &title})
	require.NoError(t, err)

	assert.Equal(t, "New Title", work.Title)
	assert.Equal(t, "branding", work.Category, "unset fields stay untouched")
}

func TestUpdateRejectsUnknownCategory(t *testing.T) {
	repo, store := newFakeWorkRepo(), newFakeStorage()
	id := repo.add(models.Work{Title: "Old", Category: "branding"})
	svc := newTestPortfolioService(repo, store, nil)

	bad := "sculpture"
	_, err := svc.Update(context.Background(), nil, id, &dto.UpdateWorkRequest{Category: &bad})
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.CodeValidationFailed, appErr.Code)
}
