package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

func RegisterRoutes(app *fiber.App, h *AuthHandler) {
	api := app.Group("/api/v1")

	loginLimiter := limiter.New(limiter.Config{
		Max:        20,
		Expiration: time.Minute,
	})

	api.Post("/register", h.Register)
	api.Post("/login", loginLimiter, h.Login)
	api.Post("/token/refresh", h.Refresh)
	api.Delete("/session", h.Logout)

	// Endpoints behind a valid access credential.
	secured := api.Group("", h.RequireAuth())
	secured.Post("/mfa/setup", h.MFASetup)
	secured.Post("/mfa/verify", h.MFAVerify)
	secured.Post("/security/trust-device", h.TrustDevice)
	secured.Post("/security/report-fraud", h.ReportFraud)
}
