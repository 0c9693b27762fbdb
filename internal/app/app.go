package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"bytestudio_backend/internal/auth"
	"bytestudio_backend/internal/config"
	"bytestudio_backend/internal/email"
	"bytestudio_backend/internal/handlers"
	"bytestudio_backend/internal/logger"
	"bytestudio_backend/internal/middleware"
	"bytestudio_backend/internal/models"
	"bytestudio_backend/internal/notifier"
	"bytestudio_backend/internal/repositories"
	"bytestudio_backend/internal/routes"
	"bytestudio_backend/internal/services"
	"bytestudio_backend/internal/storage"
	"bytestudio_backend/internal/validator"
)

// Run wires the whole application and blocks serving HTTP.
func Run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger.Init(cfg.Server.Env)

	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return fmt.Errorf("database handle: %w", err)
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(time.Hour)
	if err := sqlDB.Ping(); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}

	if err := gormDB.AutoMigrate(
		&models.User{},
		&models.Work{},
		&models.Message{},
		&models.TeamMember{},
	); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	if err := seedFirstAdmin(gormDB, cfg); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}

	router, err := SetupRouter(cfg, gormDB)
	if err != nil {
		return fmt.Errorf("setup router: %w", err)
	}

	addr := cfg.Server.Host + ":" + cfg.Server.Port
	logger.Info("server starting", "addr", addr, "env", cfg.Server.Env)
	return router.Run(addr)
}

// SetupRouter builds the dependency graph and the gin engine. Split from Run
// so tests can assemble a router without touching the network.
func SetupRouter(cfg *config.Config, db *gorm.DB) (*gin.Engine, error) {
	store, err := storage.NewStorage(&cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("init storage: %w", err)
	}
	mailer := email.NewSMTPMailer(&cfg.Email)

	hub := notifier.NewHub()
	go hub.Run()

	workRepo := repositories.NewWorkRepository()
	msgRepo := repositories.NewMessageRepository()
	teamRepo := repositories.NewTeamRepository()
	userRepo := repositories.NewUserRepository()

	authService := services.NewAuthService(userRepo, services.AuthOptions{
		JWTSecret:     cfg.JWT.Secret,
		TokenTTL:      time.Duration(cfg.JWT.TTLMinutes) * time.Minute,
		MaxAttempts:   cfg.Auth.MaxLoginAttempts,
		AttemptWindow: time.Duration(cfg.Auth.AttemptWindowMinutes) * time.Minute,
	})
	portfolioService := services.NewPortfolioService(workRepo, store, cfg.Upload, hub)
	messageService := services.NewMessageService(msgRepo, mailer, cfg.Email.FromName, hub)
	teamService := services.NewTeamService(teamRepo)

	base := handlers.NewBaseHandler(validator.New())
	h := &routes.Handlers{
		Auth:    handlers.NewAuthHandler(base, authService),
		Work:    handlers.NewWorkHandler(base, portfolioService),
		Message: handlers.NewMessageHandler(base, messageService),
		Team:    handlers.NewTeamHandler(base, teamService),
		Stats:   handlers.NewStatsHandler(base, portfolioService, messageService),
		WS:      notifier.NewHandler(hub),
	}

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestIDMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.CORSMiddleware(),
		middleware.DBMiddleware(db),
	)

	if cfg.Storage.Type == "local" || cfg.Storage.Type == "" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	routes.RegisterRoutes(router, h, cfg.JWT.Secret)
	return router, nil
}

// seedFirstAdmin creates the initial admin account when none exists. A blank
// password in config skips seeding.
func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	if cfg.Auth.FirstAdminEmail == "" || cfg.Auth.FirstAdminPassword == "" {
		logger.Warn("first admin not configured, skipping seed")
		return nil
	}

	userRepo := repositories.NewUserRepository()
	_, err := userRepo.FindByEmail(db, cfg.Auth.FirstAdminEmail)
	if err == nil {
		return nil
	}
	if !errors.Is(err, repositories.ErrUserNotFound) {
		return err
	}

	hash, err := auth.HashPassword(cfg.Auth.FirstAdminPassword)
	if err != nil {
		return err
	}
	admin := &models.User{
		Email:        cfg.Auth.FirstAdminEmail,
		PasswordHash: hash,
	}
	if err := userRepo.Create(db, admin); err != nil {
		return err
	}
	logger.Info("first admin seeded", "email", cfg.Auth.FirstAdminEmail)
	return nil
}
