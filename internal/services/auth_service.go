package services

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"gorm.io/gorm"

	"bytestudio_backend/internal/auth"
	"bytestudio_backend/internal/logger"
	"bytestudio_backend/internal/repositories"
	"bytestudio_backend/internal/services/dto"
	"bytestudio_backend/pkg/apperrors"
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type AuthOptions struct {
	JWTSecret     string
	TokenTTL      time.Duration
	MaxAttempts   int
	AttemptWindow time.Duration
}

type AuthService interface {
	Login(ctx context.Context, db *gorm.DB, req *dto.LoginRequest) (*dto.LoginResponse, error)
	CurrentUser(db *gorm.DB, userID string) (*dto.UserResponse, error)
	Logout(ctx context.Context, userID string) error
}

type authService struct {
	userRepo repositories.UserRepository
	opts     AuthOptions
	attempts *loginAttempts
}

func NewAuthService(userRepo repositories.UserRepository, opts AuthOptions) AuthService {
	if opts.MaxAttempts <= 0 {
		opts.MaxAttempts = 5
	}
	if opts.AttemptWindow <= 0 {
		opts.AttemptWindow = 15 * time.Minute
	}
	if opts.TokenTTL <= 0 {
		opts.TokenTTL = 24 * time.Hour
	}
	return &authService{
		userRepo: userRepo,
		opts:     opts,
		attempts: newLoginAttempts(opts.MaxAttempts, opts.AttemptWindow),
	}
}

// Login validates credentials and issues an access token. Input problems are
// rejected before any repository call, and every failure maps to a fixed
// user-facing message.
func (s *authService) Login(ctx context.Context, db *gorm.DB, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	password := strings.TrimSpace(req.Password)

	if email == "" || password == "" {
		return nil, apperrors.NewBadRequest("auth", "Please enter both email and password.")
	}
	if !emailRegex.MatchString(email) {
		return nil, apperrors.ErrInvalidEmailFormat
	}
	if s.attempts.Blocked(email) {
		return nil, apperrors.ErrTooManyAttempts
	}

	user, err := s.userRepo.FindByEmail(db, email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			s.attempts.Fail(email)
			return nil, apperrors.ErrAccountNotFound
		}
		return nil, apperrors.ErrLoginFailed.WithErr(err)
	}

	if user.Disabled {
		return nil, apperrors.ErrAccountDisabled
	}
	if !auth.CheckPassword(user.PasswordHash, password) {
		s.attempts.Fail(email)
		return nil, apperrors.ErrWrongPassword
	}

	s.attempts.Reset(email)

	token, err := auth.GenerateToken(user.ID, user.Email, s.opts.JWTSecret, s.opts.TokenTTL)
	if err != nil {
		return nil, apperrors.ErrLoginFailed.WithErr(err)
	}

	logger.CtxInfo(ctx, "admin logged in", "user_id", user.ID)
	return &dto.LoginResponse{
		AccessToken: token,
		User:        dto.UserResponse{ID: user.ID, Email: user.Email},
	}, nil
}

func (s *authService) CurrentUser(db *gorm.DB, userID string) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NewUnauthorized("auth", "Account no longer exists.")
		}
		return nil, apperrors.NewInternal("auth", "Failed to load account.", err)
	}
	return &dto.UserResponse{ID: user.ID, Email: user.Email}, nil
}

// Logout is advisory: the bearer token is discarded client-side. The event
// still gets logged for the audit trail.
func (s *authService) Logout(ctx context.Context, userID string) error {
	logger.CtxInfo(ctx, "admin logged out", "user_id", userID)
	return nil
}
