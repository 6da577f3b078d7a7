package handler

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/codeprnv/login-security/config"
	"github.com/codeprnv/login-security/internal/auth/domain"
	"github.com/codeprnv/login-security/internal/auth/security"
	"github.com/codeprnv/login-security/internal/auth/service"
	"github.com/codeprnv/login-security/internal/mocks"
	"github.com/codeprnv/login-security/pkg/constant"
)

const clientAddr = "203.0.113.10"

type handlerMocks struct {
	repo     *mocks.MockUserRepository
	sessions *mocks.MockSessionRepository
	attempts *mocks.MockAttemptRepository
	geo      *mocks.MockGeoResolver
	alerter  *mocks.MockAlerter
	tokens   *service.TokenService
}

func newTestApp(t *testing.T) (*fiber.App, *handlerMocks, *gomock.Controller) {
	ctrl := gomock.NewController(t)

	m := &handlerMocks{
		repo:     mocks.NewMockUserRepository(ctrl),
		sessions: mocks.NewMockSessionRepository(ctrl),
		attempts: mocks.NewMockAttemptRepository(ctrl),
		geo:      mocks.NewMockGeoResolver(ctrl),
		alerter:  mocks.NewMockAlerter(ctrl),
		tokens:   service.NewTokenService("test-access-secret", "test-refresh-secret", 15, 10080),
	}

	cfg := &config.Config{
		Env:                 "test",
		AccessExpiryMin:     15,
		RefreshExpiryMin:    10080,
		LockoutThreshold:    5,
		LockoutDurationMin:  15,
		InactivityLimitMin:  30,
		MaxActiveSessions:   5,
		PasswordExpiryDays:  90,
		MFAIssuer:           "LoginSecurity",
		BackupCodeCount:     10,
		GeoLookupTimeoutSec: 5,
	}

	mfaService := service.NewMFAService(m.repo, cfg.MFAIssuer, cfg.BackupCodeCount)
	userService := service.NewUserService(
		m.repo, m.sessions, m.attempts, m.tokens, mfaService,
		security.NewEvaluator(m.attempts), m.geo, m.alerter, cfg,
	)

	app := fiber.New()
	RegisterRoutes(app, NewAuthHandler(userService, mfaService, m.tokens, cfg))

	return app, m, ctrl
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Forwarded-For", clientAddr)
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0) Chrome/120.0")
	return req
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func activeUser(t *testing.T, password string) *domain.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	now := time.Now()
	return &domain.User{
		ID:                "user-123",
		Email:             "test@example.com",
		Username:          "tester",
		PasswordHash:      string(hash),
		PasswordChangedAt: now,
		PasswordExpiresAt: now.Add(90 * 24 * time.Hour),
		Role:              "user",
		CreatedAt:         now,
	}
}

func TestRegisterEndpoint(t *testing.T) {
	const payload = `{
		"email": "new@example.com",
		"username": "newuser",
		"password": "Str0ng!Pass",
		"confirmPassword": "Str0ng!Pass"
	}`

	t.Run("created", func(t *testing.T) {
		app, m, ctrl := newTestApp(t)
		defer ctrl.Finish()

		m.repo.EXPECT().GetByEmail(gomock.Any(), "new@example.com").Return(nil, nil)
		m.repo.EXPECT().GetByUsername(gomock.Any(), "newuser").Return(nil, nil)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		m.geo.EXPECT().Lookup(gomock.Any(), clientAddr).Return(nil, nil)
		m.repo.EXPECT().UpsertTrustedDevice(gomock.Any(), gomock.Any()).Return(nil)

		resp, err := app.Test(jsonRequest(http.MethodPost, "/api/v1/register", payload))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

		body := decodeBody(t, resp)
		user, ok := body["user"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "new@example.com", user["email"])
	})

	t.Run("malformed body", func(t *testing.T) {
		app, _, ctrl := newTestApp(t)
		defer ctrl.Finish()

		resp, err := app.Test(jsonRequest(http.MethodPost, "/api/v1/register", `{not json`))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("validation error", func(t *testing.T) {
		app, _, ctrl := newTestApp(t)
		defer ctrl.Finish()

		resp, err := app.Test(jsonRequest(http.MethodPost, "/api/v1/register",
			`{"email":"new@example.com","username":"newuser","password":"short","confirmPassword":"short"}`))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("email conflict", func(t *testing.T) {
		app, m, ctrl := newTestApp(t)
		defer ctrl.Finish()

		m.repo.EXPECT().GetByEmail(gomock.Any(), "new@example.com").Return(&domain.User{ID: "existing"}, nil)

		resp, err := app.Test(jsonRequest(http.MethodPost, "/api/v1/register", payload))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	})
}

func TestLoginEndpoint(t *testing.T) {
	const payload = `{"email":"test@example.com","password":"Str0ng!Pass"}`

	t.Run("success sets refresh cookie", func(t *testing.T) {
		app, m, ctrl := newTestApp(t)
		defer ctrl.Finish()

		user := activeUser(t, "Str0ng!Pass")

		m.geo.EXPECT().Lookup(gomock.Any(), clientAddr).Return(nil, nil)
		m.repo.EXPECT().GetByEmail(gomock.Any(), user.Email).Return(user, nil)
		m.repo.EXPECT().ListTrustedDevices(gomock.Any(), user.ID).
			Return([]domain.TrustedDevice{{IPAddress: clientAddr}}, nil)
		m.attempts.EXPECT().CountFailedByIP(gomock.Any(), user.Email, clientAddr, gomock.Any()).Return(0, nil)
		m.repo.EXPECT().UpdateSecurityState(gomock.Any(), user.ID, gomock.Any()).Return(nil)
		m.repo.EXPECT().UpsertTrustedDevice(gomock.Any(), gomock.Any()).Return(nil)
		m.sessions.EXPECT().Store(gomock.Any(), gomock.Any()).Return(nil)
		m.sessions.EXPECT().DeleteOldestByUserID(gomock.Any(), user.ID, 5).Return(nil)
		m.attempts.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil)

		resp, err := app.Test(jsonRequest(http.MethodPost, "/api/v1/login", payload))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		body := decodeBody(t, resp)
		assert.NotEmpty(t, body["accessToken"])
		assert.Equal(t, "Bearer", body["tokenType"])
		// The rotation token travels only in the cookie.
		assert.NotContains(t, body, "refreshToken")

		var cookie *http.Cookie
		for _, c := range resp.Cookies() {
			if c.Name == constant.RefreshTokenCookie {
				cookie = c
			}
		}
		require.NotNil(t, cookie, "expected a refresh token cookie")
		assert.True(t, cookie.HttpOnly)
		assert.NotEmpty(t, cookie.Value)

		claims, err := m.tokens.VerifyRefreshToken(cookie.Value)
		require.NoError(t, err)
		assert.Equal(t, user.ID, claims.UserID)
	})

	t.Run("invalid credentials", func(t *testing.T) {
		app, m, ctrl := newTestApp(t)
		defer ctrl.Finish()

		user := activeUser(t, "Different!Pass1")

		m.geo.EXPECT().Lookup(gomock.Any(), clientAddr).Return(nil, nil)
		m.repo.EXPECT().GetByEmail(gomock.Any(), user.Email).Return(user, nil)
		m.repo.EXPECT().UpdateSecurityState(gomock.Any(), user.ID, gomock.Any()).Return(nil)
		m.attempts.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil)

		resp, err := app.Test(jsonRequest(http.MethodPost, "/api/v1/login", payload))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("locked account", func(t *testing.T) {
		app, m, ctrl := newTestApp(t)
		defer ctrl.Finish()

		user := activeUser(t, "Str0ng!Pass")
		user.Security.Lock(time.Now().Add(10 * time.Minute))

		m.geo.EXPECT().Lookup(gomock.Any(), clientAddr).Return(nil, nil)
		m.repo.EXPECT().GetByEmail(gomock.Any(), user.Email).Return(user, nil)
		m.attempts.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil)

		resp, err := app.Test(jsonRequest(http.MethodPost, "/api/v1/login", payload))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusLocked, resp.StatusCode)

		body := decodeBody(t, resp)
		assert.Equal(t, "Account locked", body["error"])
		assert.NotEmpty(t, body["unlocksAt"])
	})

	t.Run("mfa required", func(t *testing.T) {
		app, m, ctrl := newTestApp(t)
		defer ctrl.Finish()

		user := activeUser(t, "Str0ng!Pass")
		user.MFAEnabled = true
		user.MFAMethod = domain.MFAMethodTOTP
		user.MFASecret = "JBSWY3DPEHPK3PXP"

		m.geo.EXPECT().Lookup(gomock.Any(), clientAddr).Return(nil, nil)
		m.repo.EXPECT().GetByEmail(gomock.Any(), user.Email).Return(user, nil)
		m.repo.EXPECT().ListTrustedDevices(gomock.Any(), user.ID).
			Return([]domain.TrustedDevice{{IPAddress: clientAddr}}, nil)
		m.attempts.EXPECT().CountFailedByIP(gomock.Any(), user.Email, clientAddr, gomock.Any()).Return(0, nil)
		m.attempts.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil)

		resp, err := app.Test(jsonRequest(http.MethodPost, "/api/v1/login", payload))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

		body := decodeBody(t, resp)
		assert.Equal(t, "totp", body["mfaMethod"])
	})
}

func TestRefreshEndpoint(t *testing.T) {
	t.Run("missing cookie", func(t *testing.T) {
		app, _, ctrl := newTestApp(t)
		defer ctrl.Finish()

		resp, err := app.Test(jsonRequest(http.MethodPost, "/api/v1/token/refresh", ""))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("valid rotation token", func(t *testing.T) {
		app, m, ctrl := newTestApp(t)
		defer ctrl.Finish()

		user := activeUser(t, "Str0ng!Pass")
		_, refreshToken, _, err := m.tokens.Generate(user.ID, user.Email, user.Username, user.Role)
		require.NoError(t, err)

		hash := hashedToken(t, refreshToken)
		now := time.Now()
		m.sessions.EXPECT().GetActiveByUserID(gomock.Any(), user.ID, gomock.Any()).
			Return([]domain.Session{{
				ID:         "session-1",
				UserID:     user.ID,
				TokenHash:  hash,
				CreatedAt:  now.Add(-time.Hour),
				LastUsedAt: now.Add(-time.Minute),
				ExpiresAt:  now.Add(24 * time.Hour),
			}}, nil)
		m.repo.EXPECT().GetByID(gomock.Any(), user.ID).Return(user, nil)
		m.sessions.EXPECT().UpdateLastUsed(gomock.Any(), "session-1", gomock.Any()).Return(nil)

		req := jsonRequest(http.MethodPost, "/api/v1/token/refresh", "")
		req.AddCookie(&http.Cookie{Name: constant.RefreshTokenCookie, Value: refreshToken})

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		body := decodeBody(t, resp)
		assert.NotEmpty(t, body["accessToken"])
	})

	t.Run("inactive session", func(t *testing.T) {
		app, m, ctrl := newTestApp(t)
		defer ctrl.Finish()

		user := activeUser(t, "Str0ng!Pass")
		_, refreshToken, _, err := m.tokens.Generate(user.ID, user.Email, user.Username, user.Role)
		require.NoError(t, err)

		now := time.Now()
		m.sessions.EXPECT().GetActiveByUserID(gomock.Any(), user.ID, gomock.Any()).
			Return([]domain.Session{{
				ID:         "session-1",
				UserID:     user.ID,
				TokenHash:  hashedToken(t, refreshToken),
				CreatedAt:  now.Add(-2 * time.Hour),
				LastUsedAt: now.Add(-45 * time.Minute),
				ExpiresAt:  now.Add(24 * time.Hour),
			}}, nil)
		m.sessions.EXPECT().Delete(gomock.Any(), "session-1").Return(nil)

		req := jsonRequest(http.MethodPost, "/api/v1/token/refresh", "")
		req.AddCookie(&http.Cookie{Name: constant.RefreshTokenCookie, Value: refreshToken})

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	})
}

func TestLogoutEndpoint(t *testing.T) {
	app, m, ctrl := newTestApp(t)
	defer ctrl.Finish()

	user := activeUser(t, "Str0ng!Pass")
	_, refreshToken, _, err := m.tokens.Generate(user.ID, user.Email, user.Username, user.Role)
	require.NoError(t, err)

	now := time.Now()
	m.sessions.EXPECT().GetActiveByUserID(gomock.Any(), user.ID, gomock.Any()).
		Return([]domain.Session{{
			ID:         "session-1",
			UserID:     user.ID,
			TokenHash:  hashedToken(t, refreshToken),
			LastUsedAt: now,
			ExpiresAt:  now.Add(24 * time.Hour),
		}}, nil)
	m.sessions.EXPECT().Delete(gomock.Any(), "session-1").Return(nil)

	req := jsonRequest(http.MethodDelete, "/api/v1/session", "")
	req.AddCookie(&http.Cookie{Name: constant.RefreshTokenCookie, Value: refreshToken})

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	// The cookie is cleared on the way out.
	for _, c := range resp.Cookies() {
		if c.Name == constant.RefreshTokenCookie {
			assert.Empty(t, c.Value)
		}
	}
}

// hashedToken mirrors the fingerprint stored alongside a session: bcrypt over
// the hex SHA-256 of the rotation token.
func hashedToken(t *testing.T, token string) string {
	t.Helper()

	sum := sha256.Sum256([]byte(token))
	hash, err := bcrypt.GenerateFromPassword([]byte(hex.EncodeToString(sum[:])), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}
