package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"bytestudio_backend/internal/auth"
	"bytestudio_backend/internal/models"
	"bytestudio_backend/internal/repositories"
	"bytestudio_backend/internal/services/dto"
	"bytestudio_backend/pkg/apperrors"
)

type fakeUserRepo struct {
	byEmail map[string]*models.User
	byID    map[string]*models.User
	lookups int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byEmail: make(map[string]*models.User),
		byID:    make(map[string]*models.User),
	}
}

func (r *fakeUserRepo) add(u models.User) {
	r.byEmail[u.Email] = &u
	r.byID[u.ID] = &u
}

func (r *fakeUserRepo) FindByEmail(db *gorm.DB, email string) (*models.User, error) {
	r.lookups++
	u, ok := r.byEmail[email]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *fakeUserRepo) FindByID(db *gorm.DB, id string) (*models.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *fakeUserRepo) Create(db *gorm.DB, user *models.User) error {
	r.add(*user)
	return nil
}

const testSecret = "test-secret"

func newTestAuthService(repo *fakeUserRepo) AuthService {
	return NewAuthService(repo, AuthOptions{
		JWTSecret:     testSecret,
		TokenTTL:      time.Hour,
		MaxAttempts:   3,
		AttemptWindow: time.Minute,
	})
}

func seedAdmin(t *testing.T, repo *fakeUserRepo, email, password string) {
	t.Helper()
	hash, err := auth.HashPassword(password)
	require.NoError(t, err)
	repo.add(models.User{
		BaseModel:    models.BaseModel{ID: "admin-1"},
		Email:        email,
		PasswordHash: hash,
	})
}

func TestLoginRequiresBothFields(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestAuthService(repo)

	_, err := svc.Login(context.Background(), nil, &dto.LoginRequest{Email: "admin@studio.dev", Password: "   "})
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.CodeValidationFailed, appErr.Code)
	assert.Zero(t, repo.lookups, "empty input must not reach the repository")
}

func TestLoginRejectsBadEmailFormat(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestAuthService(repo)

	_, err := svc.Login(context.Background(), nil, &dto.LoginRequest{Email: "not-an-email", Password: "secret"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidEmailFormat)
	assert.Zero(t, repo.lookups)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := newTestAuthService(newFakeUserRepo())
	_, err := svc.Login(context.Background(), nil, &dto.LoginRequest{Email: "ghost@studio.dev", Password: "secret"})
	assert.ErrorIs(t, err, apperrors.ErrAccountNotFound)
}

func TestLoginWrongPassword(t *testing.T) {
	repo := newFakeUserRepo()
	seedAdmin(t, repo, "admin@studio.dev", "correct-horse")
	svc := newTestAuthService(repo)

	_, err := svc.Login(context.Background(), nil, &dto.LoginRequest{Email: "admin@studio.dev", Password: "wrong"})
	assert.ErrorIs(t, err, apperrors.ErrWrongPassword)
}

func TestLoginDisabledAccount(t *testing.T) {
	repo := newFakeUserRepo()
	hash, err := auth.HashPassword("correct-horse")
	require.NoError(t, err)
	repo.add(models.User{
		BaseModel:    models.BaseModel{ID: "admin-2"},
		Email:        "admin@studio.dev",
		PasswordHash: hash,
		Disabled:     true,
	})
	svc := newTestAuthService(repo)

	_, loginErr := svc.Login(context.Background(), nil, &dto.LoginRequest{Email: "admin@studio.dev", Password: "correct-horse"})
	assert.ErrorIs(t, loginErr, apperrors.ErrAccountDisabled)
}

func TestLoginRateLimitsAfterRepeatedFailures(t *testing.T) {
	repo := newFakeUserRepo()
	seedAdmin(t, repo, "admin@studio.dev", "correct-horse")
	svc := newTestAuthService(repo)

	req := &dto.LoginRequest{Email: "admin@studio.dev", Password: "wrong"}
	for i := 0; i < 3; i++ {
		_, err := svc.Login(context.Background(), nil, req)
		assert.ErrorIs(t, err, apperrors.ErrWrongPassword)
	}

	lookupsBefore := repo.lookups
	_, err := svc.Login(context.Background(), nil, req)
	assert.ErrorIs(t, err, apperrors.ErrTooManyAttempts)
	assert.Equal(t, lookupsBefore, repo.lookups, "blocked logins must not hit the repository")
}

func TestLoginSuccess(t *testing.T) {
	repo := newFakeUserRepo()
	seedAdmin(t, repo, "admin@studio.dev", "correct-horse")
	svc := newTestAuthService(repo)

	resp, err := svc.Login(context.Background(), nil, &dto.LoginRequest{
		Email:    "  Admin@Studio.DEV ",
		Password: "correct-horse",
	})
	require.NoError(t, err)

	assert.Equal(t, "admin@studio.dev", resp.User.Email)
	claims, err := auth.ParseToken(resp.AccessToken, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "admin-1", claims.UserID)
}

func TestLoginSuccessResetsAttempts(t *testing.T) {
	repo := newFakeUserRepo()
	seedAdmin(t, repo, "admin@studio.dev", "correct-horse")
	svc := newTestAuthService(repo)

	wrong := &dto.LoginRequest{Email: "admin@studio.dev", Password: "wrong"}
	right := &dto.LoginRequest{Email: "admin@studio.dev", Password: "correct-horse"}

	for i := 0; i < 2; i++ {
		_, _ = svc.Login(context.Background(), nil, wrong)
	}
	_, err := svc.Login(context.Background(), nil, right)
	require.NoError(t, err)

	// The window restarts after a success; new failures count from zero.
	for i := 0; i < 2; i++ {
		_, err = svc.Login(context.Background(), nil, wrong)
		assert.ErrorIs(t, err, apperrors.ErrWrongPassword)
	}
}

func TestCurrentUser(t *testing.T) {
	repo := newFakeUserRepo()
	seedAdmin(t, repo, "admin@studio.dev", "correct-horse")
	svc := newTestAuthService(repo)

	user, err := svc.CurrentUser(nil, "admin-1")
	require.NoError(t, err)
	assert.Equal(t, "admin@studio.dev", user.Email)

	_, err = svc.CurrentUser(nil, "missing")
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.CodeUnauthorized, appErr.Code)
}
