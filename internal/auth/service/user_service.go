package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/codeprnv/login-security/config"
	"github.com/codeprnv/login-security/internal/auth/domain"
	"github.com/codeprnv/login-security/internal/auth/dto"
	"github.com/codeprnv/login-security/internal/auth/security"
	"github.com/codeprnv/login-security/internal/device"
	autherror "github.com/codeprnv/login-security/internal/errors"
	"github.com/codeprnv/login-security/pkg/constant"
)

// fraudLockDuration is how long a fraud report keeps the account locked; a
// password reset clears it earlier.
const fraudLockDuration = 24 * time.Hour

type UserService struct {
	repo         domain.UserRepository
	sessions     domain.SessionRepository
	attempts     domain.AttemptRepository
	tokenService TokenGenerator
	mfa          *MFAService
	evaluator    *security.Evaluator
	geo          domain.GeoResolver
	alerter      domain.Alerter
	cfg          *config.Config
}

func NewUserService(
	repo domain.UserRepository,
	sessions domain.SessionRepository,
	attempts domain.AttemptRepository,
	tokenService TokenGenerator,
	mfa *MFAService,
	evaluator *security.Evaluator,
	geo domain.GeoResolver,
	alerter domain.Alerter,
	cfg *config.Config,
) *UserService {
	return &UserService{
		repo:         repo,
		sessions:     sessions,
		attempts:     attempts,
		tokenService: tokenService,
		mfa:          mfa,
		evaluator:    evaluator,
		geo:          geo,
		alerter:      alerter,
		cfg:          cfg,
	}
}

func (s *UserService) Register(ctx context.Context, input dto.RegisterInput) (*domain.User, error) {
	if err := validateRegistration(&input); err != nil {
		return nil, err
	}

	email := normalizeEmail(input.Email)
	username := strings.ToLower(strings.TrimSpace(input.Username))

	existing, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, autherror.ErrEmailAlreadyInUse
	}

	existing, err = s.repo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, autherror.ErrUsernameTaken
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()

	user := &domain.User{
		ID:                uuid.NewString(),
		Email:             email,
		Username:          username,
		PasswordHash:      string(hashedPassword),
		PasswordChangedAt: now,
		PasswordExpiresAt: now.Add(time.Duration(s.cfg.PasswordExpiryDays) * 24 * time.Hour),
		Role:              constant.DefaultUserRole,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	// The registering device becomes the first trusted device, so the first
	// login from it does not read as a brand-new IP.
	loc := s.lookupLocation(ctx, input.IPAddress)
	info := device.Parse(input.UserAgent)
	if err := s.repo.UpsertTrustedDevice(ctx, trustedDevice(user.ID, input.Fingerprint, input.IPAddress, info, loc, now)); err != nil {
		log.Printf("warn: failed to store registering device for user %s: %v", user.ID, err)
	}

	return user, nil
}

// Login runs the authentication pipeline: lookup, lockout, password, password
// expiry, suspicion, MFA, then session issuance. Every attempt produces
// exactly one audit record before the result is returned.
func (s *UserService) Login(ctx context.Context, input dto.LoginInput) (*dto.LoginResponse, error) {
	email := normalizeEmail(input.Email)
	now := time.Now()

	loc := s.lookupLocation(ctx, input.IPAddress)
	info := device.Parse(input.UserAgent)

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		// Record under the submitted email without revealing existence.
		s.recordAttempt(ctx, "", email, input.IPAddress, info, loc, domain.LoginStatusFailed, false, false, []string{"User not found"})
		return nil, autherror.ErrInvalidCredentials
	}

	if user.Security.IsLocked(now) {
		s.recordAttempt(ctx, user.ID, email, input.IPAddress, info, loc, domain.LoginStatusFailed, false, false, []string{"Account locked"})
		return nil, &autherror.AccountLockedError{UnlocksAt: user.Security.LockedUntil}
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(strings.TrimSpace(input.Password))) != nil {
		locked := user.Security.RecordFailure(now, s.cfg.LockoutThreshold, s.cfg.LockoutDuration())
		if err := s.repo.UpdateSecurityState(ctx, user.ID, user.Security); err != nil {
			log.Printf("warn: failed to persist lockout state for user %s: %v", user.ID, err)
		}
		if locked {
			log.Printf("account %s locked after %d failed attempts", user.ID, user.Security.FailedLoginAttempts)
		}
		s.recordAttempt(ctx, user.ID, email, input.IPAddress, info, loc, domain.LoginStatusFailed, false, false, []string{"Invalid password"})
		return nil, autherror.ErrInvalidCredentials
	}

	if user.PasswordExpired(now) {
		s.recordAttempt(ctx, user.ID, email, input.IPAddress, info, loc, domain.LoginStatusFailed, false, false, []string{"Password expired"})
		return nil, &autherror.PasswordExpiredError{ExpiredAt: user.PasswordExpiresAt}
	}

	devices, err := s.repo.ListTrustedDevices(ctx, user.ID)
	if err != nil {
		log.Printf("warn: trusted-device lookup failed for user %s: %v", user.ID, err)
		devices = nil
	}

	reasons := s.evaluator.Evaluate(ctx, user, devices, input.IPAddress, loc)
	suspicious := len(reasons) > 0

	mfaVerified, err := s.mfa.VerifyLogin(ctx, user, input.MFACode)
	if err != nil {
		reason := "Invalid MFA code"
		if _, required := err.(*autherror.MFARequiredError); required {
			reason = "MFA code required"
		} else if err != autherror.ErrInvalidMFACode {
			return nil, err
		}
		s.recordAttempt(ctx, user.ID, email, input.IPAddress, info, loc, domain.LoginStatusFailed, suspicious, false, append(reasons, reason))
		return nil, err
	}

	// Full authentication: clear the counter and lock, refresh the device
	// baseline, then issue the session.
	user.Security.Reset()
	if err := s.repo.UpdateSecurityState(ctx, user.ID, user.Security); err != nil {
		return nil, err
	}

	fingerprint := input.Fingerprint
	if fingerprint == "" {
		fingerprint = deviceFingerprint(input.UserAgent, input.IPAddress)
	}
	if err := s.repo.UpsertTrustedDevice(ctx, trustedDevice(user.ID, fingerprint, input.IPAddress, info, loc, now)); err != nil {
		log.Printf("warn: failed to upsert trusted device for user %s: %v", user.ID, err)
	}

	accessToken, refreshToken, _, err := s.tokenService.Generate(user.ID, user.Email, user.Username, user.Role)
	if err != nil {
		return nil, err
	}

	tokenHash, err := HashToken(refreshToken)
	if err != nil {
		return nil, err
	}

	session := &domain.Session{
		ID:         uuid.NewString(),
		UserID:     user.ID,
		TokenHash:  tokenHash,
		Device:     info,
		IPAddress:  input.IPAddress,
		CreatedAt:  now,
		LastUsedAt: now,
		ExpiresAt:  now.Add(s.tokenService.GetRefreshTokenExpiry()),
	}
	if loc != nil {
		session.Location = *loc
	}

	if err := s.sessions.Store(ctx, session); err != nil {
		return nil, err
	}

	if err := s.sessions.DeleteOldestByUserID(ctx, user.ID, s.cfg.MaxActiveSessions); err != nil {
		log.Printf("warn: failed to prune sessions for user %s: %v", user.ID, err)
	}

	if suspicious {
		s.dispatchAlert(user, input.IPAddress, info, loc, reasons)
	}

	s.recordAttempt(ctx, user.ID, email, input.IPAddress, info, loc, domain.LoginStatusSuccess, suspicious, mfaVerified, reasons)

	return &dto.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    constant.DefaultTokenType,
		ExpiresIn:    int(s.tokenService.GetAccessTokenExpiry().Seconds()),
		User: dto.UserOutput{
			ID:        user.ID,
			Email:     user.Email,
			Username:  user.Username,
			Role:      user.Role,
			CreatedAt: user.CreatedAt,
		},
	}, nil
}

// Refresh redeems a rotation token for a fresh access token. The session is
// matched by hashed fingerprint; an inactive session is deleted rather than
// renewed. The rotation token itself is not reissued.
func (s *UserService) Refresh(ctx context.Context, input dto.RefreshInput) (*dto.RefreshResponse, error) {
	if input.RefreshToken == "" {
		return nil, autherror.ErrRefreshTokenMissing
	}

	claims, err := s.tokenService.VerifyRefreshToken(input.RefreshToken)
	if err != nil {
		return nil, autherror.ErrRefreshTokenInvalid
	}

	now := time.Now()

	session, err := s.findSession(ctx, claims.UserID, input.RefreshToken, now)
	if err != nil {
		return nil, err
	}

	if !session.Usable(now, s.cfg.InactivityLimit()) {
		if err := s.sessions.Delete(ctx, session.ID); err != nil {
			log.Printf("warn: failed to delete inactive session %s: %v", session.ID, err)
		}
		return nil, autherror.ErrSessionInactive
	}

	user, err := s.repo.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, autherror.ErrRefreshTokenInvalid
	}

	accessToken, _, _, err := s.tokenService.Generate(user.ID, user.Email, user.Username, user.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	if err := s.sessions.UpdateLastUsed(ctx, session.ID, now); err != nil {
		return nil, err
	}

	return &dto.RefreshResponse{
		AccessToken: accessToken,
		TokenType:   constant.DefaultTokenType,
		ExpiresIn:   int(s.tokenService.GetAccessTokenExpiry().Seconds()),
	}, nil
}

// Logout revokes the session backing the presented rotation token.
func (s *UserService) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return autherror.ErrRefreshTokenMissing
	}

	claims, err := s.tokenService.VerifyRefreshToken(refreshToken)
	if err != nil {
		return autherror.ErrRefreshTokenInvalid
	}

	session, err := s.findSession(ctx, claims.UserID, refreshToken, time.Now())
	if err != nil {
		return err
	}

	return s.sessions.Delete(ctx, session.ID)
}

// RevokeAll deletes every session for the user. Outstanding access tokens
// stay valid until their own short expiry.
func (s *UserService) RevokeAll(ctx context.Context, userID string) error {
	return s.sessions.DeleteAllByUserID(ctx, userID)
}

// TrustDevice records the calling device as trusted (the "yes, this was me"
// follow-up from a suspicious-login alert).
func (s *UserService) TrustDevice(ctx context.Context, userID, fingerprint, ip, userAgent string) error {
	info := device.Parse(userAgent)
	loc := s.lookupLocation(ctx, ip)
	if fingerprint == "" {
		fingerprint = deviceFingerprint(userAgent, ip)
	}
	return s.repo.UpsertTrustedDevice(ctx, trustedDevice(userID, fingerprint, ip, info, loc, time.Now()))
}

// ReportFraud locks the account and invalidates every session.
func (s *UserService) ReportFraud(ctx context.Context, userID string) error {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return autherror.ErrUserNotFound
	}

	user.Security.Lock(time.Now().Add(fraudLockDuration))
	if err := s.repo.UpdateSecurityState(ctx, user.ID, user.Security); err != nil {
		return err
	}

	return s.sessions.DeleteAllByUserID(ctx, userID)
}

// TouchSession refreshes last-used on the newest active session for the
// user. Called from the auth middleware on each authenticated request.
// Access tokens do not identify a session, so the most recently used one
// stands in for the caller's; with multiple devices this can keep another
// device's session alive.
func (s *UserService) TouchSession(ctx context.Context, userID string) {
	now := time.Now()
	sessions, err := s.sessions.GetActiveByUserID(ctx, userID, now)
	if err != nil || len(sessions) == 0 {
		return
	}
	if err := s.sessions.UpdateLastUsed(ctx, sessions[0].ID, now); err != nil {
		log.Printf("warn: failed to touch session for user %s: %v", userID, err)
	}
}

func (s *UserService) findSession(ctx context.Context, userID, refreshToken string, now time.Time) (*domain.Session, error) {
	sessions, err := s.sessions.GetActiveByUserID(ctx, userID, now)
	if err != nil {
		return nil, err
	}

	for i := range sessions {
		if CompareToken(sessions[i].TokenHash, refreshToken) {
			return &sessions[i], nil
		}
	}
	return nil, autherror.ErrSessionNotFound
}

func (s *UserService) lookupLocation(ctx context.Context, ip string) *domain.Location {
	if s.geo == nil {
		return nil
	}

	lookupCtx, cancel := context.WithTimeout(ctx, time.Duration(s.cfg.GeoLookupTimeoutSec)*time.Second)
	defer cancel()

	loc, err := s.geo.Lookup(lookupCtx, ip)
	if err != nil {
		log.Printf("warn: geolocation lookup failed for %s: %v", ip, err)
		return nil
	}
	return loc
}

func (s *UserService) recordAttempt(ctx context.Context, userID, email, ip string, info domain.DeviceInfo, loc *domain.Location, status string, suspicious, mfaVerified bool, reasons []string) {
	record := &domain.LoginRecord{
		ID:               uuid.NewString(),
		UserID:           userID,
		Email:            email,
		IPAddress:        ip,
		Device:           info,
		Status:           status,
		Suspicious:       suspicious,
		SuspicionReasons: reasons,
		MFAVerified:      mfaVerified,
		Timestamp:        time.Now(),
	}
	if loc != nil {
		record.Location = *loc
	}

	// Audit failures degrade, never abort the login flow.
	if err := s.attempts.Record(ctx, record); err != nil {
		log.Printf("error: failed to record login attempt for %s: %v", email, err)
	}
}

// dispatchAlert is fire-and-forget: delivery failures are logged, never
// surfaced to the login response.
func (s *UserService) dispatchAlert(user *domain.User, ip string, info domain.DeviceInfo, loc *domain.Location, reasons []string) {
	if s.alerter == nil {
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := s.alerter.SendSuspiciousLoginAlert(ctx, user, ip, info, loc, reasons); err != nil {
			log.Printf("error: failed to send suspicious login alert to %s: %v", user.Email, err)
		}
	}()
}

func trustedDevice(userID, fingerprint, ip string, info domain.DeviceInfo, loc *domain.Location, now time.Time) *domain.TrustedDevice {
	d := &domain.TrustedDevice{
		ID:          uuid.NewString(),
		UserID:      userID,
		Fingerprint: fingerprint,
		IPAddress:   ip,
		Browser:     info.Browser,
		OS:          info.OS,
		DeviceType:  info.DeviceType,
		LastSeen:    now,
		CreatedAt:   now,
	}
	if loc != nil {
		d.Country = loc.Country
		d.City = loc.City
	}
	return d
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func deviceFingerprint(userAgent, ip string) string {
	sum := sha256.Sum256([]byte(userAgent + "|" + ip))
	return hex.EncodeToString(sum[:16])
}

// HashToken produces the stored fingerprint of a rotation token. The token is
// pre-hashed with SHA-256 because bcrypt only reads the first 72 bytes and a
// signed JWT is far longer than that.
func HashToken(token string) (string, error) {
	sum := sha256.Sum256([]byte(token))
	hash, err := bcrypt.GenerateFromPassword([]byte(hex.EncodeToString(sum[:])), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CompareToken reports whether token matches a fingerprint produced by
// HashToken.
func CompareToken(tokenHash, token string) bool {
	sum := sha256.Sum256([]byte(token))
	return bcrypt.CompareHashAndPassword([]byte(tokenHash), []byte(hex.EncodeToString(sum[:]))) == nil
}
