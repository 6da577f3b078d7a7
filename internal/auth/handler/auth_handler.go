package handler

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/codeprnv/login-security/config"
	"github.com/codeprnv/login-security/internal/auth/dto"
	"github.com/codeprnv/login-security/internal/auth/service"
	autherror "github.com/codeprnv/login-security/internal/errors"
	"github.com/codeprnv/login-security/pkg/constant"
)

type AuthHandler struct {
	userService  *service.UserService
	mfaService   *service.MFAService
	tokenService service.TokenGenerator
	cfg          *config.Config
}

func NewAuthHandler(userService *service.UserService, mfaService *service.MFAService, tokenService service.TokenGenerator, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		userService:  userService,
		mfaService:   mfaService,
		tokenService: tokenService,
		cfg:          cfg,
	}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var input dto.RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	input.IPAddress = clientIP(c)
	input.UserAgent = string(c.Request().Header.UserAgent())
	input.Fingerprint = c.Get("X-Device-Fingerprint")

	user, err := h.userService.Register(c.Context(), input)
	if err != nil {
		return h.errorResponse(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "User registered successfully. Please log in to continue.",
		"user": dto.UserOutput{
			ID:        user.ID,
			Email:     user.Email,
			Username:  user.Username,
			Role:      user.Role,
			CreatedAt: user.CreatedAt,
		},
	})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input dto.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	input.IPAddress = clientIP(c)
	input.UserAgent = string(c.Request().Header.UserAgent())
	input.Fingerprint = c.Get("X-Device-Fingerprint")

	response, err := h.userService.Login(c.Context(), input)
	if err != nil {
		return h.errorResponse(c, err)
	}

	h.setRefreshCookie(c, response.RefreshToken)

	return c.Status(fiber.StatusOK).JSON(response)
}

func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	input := dto.RefreshInput{
		RefreshToken: c.Cookies(constant.RefreshTokenCookie),
		Fingerprint:  c.Get("X-Device-Fingerprint"),
		IPAddress:    clientIP(c),
		UserAgent:    string(c.Request().Header.UserAgent()),
	}

	response, err := h.userService.Refresh(c.Context(), input)
	if err != nil {
		return h.errorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(response)
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	err := h.userService.Logout(c.Context(), c.Cookies(constant.RefreshTokenCookie))
	if err != nil {
		return h.errorResponse(c, err)
	}

	h.clearRefreshCookie(c)

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "logged out"})
}

func (h *AuthHandler) MFASetup(c *fiber.Ctx) error {
	claims := authenticatedClaims(c)

	output, err := h.mfaService.Setup(c.Context(), claims.UserID)
	if err != nil {
		return h.errorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(output)
}

func (h *AuthHandler) MFAVerify(c *fiber.Ctx) error {
	var input dto.MFAVerifyInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	claims := authenticatedClaims(c)

	if err := h.mfaService.Confirm(c.Context(), claims.UserID, input.Code); err != nil {
		return h.errorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "MFA enabled successfully"})
}

func (h *AuthHandler) TrustDevice(c *fiber.Ctx) error {
	claims := authenticatedClaims(c)

	err := h.userService.TrustDevice(c.Context(), claims.UserID,
		c.Get("X-Device-Fingerprint"), clientIP(c), string(c.Request().Header.UserAgent()))
	if err != nil {
		return h.errorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "device trusted"})
}

func (h *AuthHandler) ReportFraud(c *fiber.Ctx) error {
	claims := authenticatedClaims(c)

	if err := h.userService.ReportFraud(c.Context(), claims.UserID); err != nil {
		return h.errorResponse(c, err)
	}

	h.clearRefreshCookie(c)

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "account locked and all sessions revoked",
	})
}

// errorResponse maps service errors to the HTTP contract: 400 validation,
// 401 bad credentials, 403 state challenges, 409 conflicts, 423 locked.
// Anything unrecognized is an infrastructure failure and stays opaque.
func (h *AuthHandler) errorResponse(c *fiber.Ctx, err error) error {
	var (
		lockedErr     *autherror.AccountLockedError
		mfaErr        *autherror.MFARequiredError
		expiredErr    *autherror.PasswordExpiredError
		validationErr *autherror.ValidationError
	)

	switch {
	case errors.As(err, &validationErr):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": validationErr.Reason})
	case errors.Is(err, autherror.ErrEmailAlreadyInUse), errors.Is(err, autherror.ErrUsernameTaken):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	case errors.As(err, &lockedErr):
		return c.Status(fiber.StatusLocked).JSON(fiber.Map{
			"error":     "Account locked",
			"unlocksAt": lockedErr.UnlocksAt,
		})
	case errors.As(err, &mfaErr):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error":     "MFA code required",
			"mfaMethod": mfaErr.Method,
		})
	case errors.As(err, &expiredErr):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error":         "Password expired",
			"requiresReset": true,
		})
	case errors.Is(err, autherror.ErrInvalidCredentials),
		errors.Is(err, autherror.ErrInvalidMFACode),
		errors.Is(err, autherror.ErrRefreshTokenMissing),
		errors.Is(err, autherror.ErrRefreshTokenInvalid):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, autherror.ErrSessionNotFound), errors.Is(err, autherror.ErrSessionInactive):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, autherror.ErrMFANotEnrolled):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
	}
}

func (h *AuthHandler) setRefreshCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     constant.RefreshTokenCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.cfg.RefreshTokenExpiry().Seconds()),
		Secure:   h.cfg.Env == "production",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteStrictMode,
	})
}

func (h *AuthHandler) clearRefreshCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     constant.RefreshTokenCookie,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		Secure:   h.cfg.Env == "production",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteStrictMode,
	})
}

// clientIP honors proxy headers before falling back to the socket address.
func clientIP(c *fiber.Ctx) string {
	if forwarded := c.Get("X-Forwarded-For"); forwarded != "" {
		first, _, _ := strings.Cut(forwarded, ",")
		return strings.TrimSpace(first)
	}
	if realIP := c.Get("X-Real-IP"); realIP != "" {
		return realIP
	}
	return c.IP()
}
