package main

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/codeprnv/login-security/config"
	"github.com/codeprnv/login-security/db"
	"github.com/codeprnv/login-security/internal/auth/handler"
	repo "github.com/codeprnv/login-security/internal/auth/repository/postgres"
	"github.com/codeprnv/login-security/internal/auth/security"
	"github.com/codeprnv/login-security/internal/auth/service"
	"github.com/codeprnv/login-security/internal/geo"
	"github.com/codeprnv/login-security/internal/notify"
)

func main() {
	cfg := config.Load()

	ctx := context.Background()

	dbPool, err := db.NewPostgresPool(ctx, cfg.DBURL)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer dbPool.Close()

	repository := repo.NewPostgresRepository(dbPool)

	tokenService := service.NewTokenService(cfg.AccessTokenSecret, cfg.RefreshTokenSecret, cfg.AccessExpiryMin, cfg.RefreshExpiryMin)
	mfaService := service.NewMFAService(repository, cfg.MFAIssuer, cfg.BackupCodeCount)
	evaluator := security.NewEvaluator(repository)
	resolver := geo.NewIPAPIResolver(time.Duration(cfg.GeoLookupTimeoutSec) * time.Second)
	alerter := notify.NewEmailAlerter(newEmailSender(cfg), cfg.FrontendURL)

	userService := service.NewUserService(repository, repository, repository, tokenService, mfaService, evaluator, resolver, alerter, cfg)
	authHandler := handler.NewAuthHandler(userService, mfaService, tokenService, cfg)

	app := fiber.New()
	app.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Join(cfg.AllowedOrigins, ","),
		AllowCredentials: true,
	}))
	handler.RegisterRoutes(app, authHandler)

	go sweepExpiredSessions(ctx, repository)

	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}

func newEmailSender(cfg *config.Config) notify.EmailSender {
	if cfg.AlertProvider == "resend" {
		return notify.NewResendSender(cfg.AlertAPIKey, cfg.AlertFrom)
	}
	return notify.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.AlertFrom)
}

// sweepExpiredSessions is storage hygiene only; session validity is always
// re-checked at redemption time.
func sweepExpiredSessions(ctx context.Context, repository *repo.PostgresRepository) {
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()

	for range ticker.C {
		if err := repository.DeleteExpired(ctx, time.Now()); err != nil {
			log.Printf("warn: session sweep failed: %v", err)
		}
	}
}
