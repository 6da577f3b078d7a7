package security_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/codeprnv/login-security/internal/auth/domain"
	"github.com/codeprnv/login-security/internal/auth/security"
	"github.com/codeprnv/login-security/internal/mocks"
)

const (
	trustedIP = "203.0.113.10"
	newIP     = "198.51.100.77"
)

func baseUser() *domain.User {
	return &domain.User{ID: "user-123", Email: "test@example.com"}
}

func trustedDevices() []domain.TrustedDevice {
	return []domain.TrustedDevice{{
		ID:          "device-1",
		UserID:      "user-123",
		Fingerprint: "fp-1",
		IPAddress:   trustedIP,
		Country:     "IN",
	}}
}

func TestEvaluator_NothingUnusual(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	attempts := mocks.NewMockAttemptRepository(ctrl)
	attempts.EXPECT().LatestSuccessful(gomock.Any(), "user-123", gomock.Any()).Return(nil, nil)
	attempts.EXPECT().CountFailedByIP(gomock.Any(), "test@example.com", trustedIP, gomock.Any()).Return(0, nil)

	e := security.NewEvaluator(attempts)
	loc := &domain.Location{Country: "IN", City: "Mumbai", Latitude: 19.07, Longitude: 72.87}

	reasons := e.Evaluate(context.Background(), baseUser(), trustedDevices(), trustedIP, loc)
	assert.Empty(t, reasons)
}

func TestEvaluator_NewIP(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	attempts := mocks.NewMockAttemptRepository(ctrl)
	attempts.EXPECT().LatestSuccessful(gomock.Any(), "user-123", gomock.Any()).Return(nil, nil)
	attempts.EXPECT().CountFailedByIP(gomock.Any(), "test@example.com", newIP, gomock.Any()).Return(0, nil)

	e := security.NewEvaluator(attempts)
	loc := &domain.Location{Country: "IN", City: "Delhi"}

	reasons := e.Evaluate(context.Background(), baseUser(), trustedDevices(), newIP, loc)
	assert.Equal(t, []string{"Login from new IP address"}, reasons)
}

func TestEvaluator_NoTrustedDevicesFlagsNewIPOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	attempts := mocks.NewMockAttemptRepository(ctrl)
	attempts.EXPECT().LatestSuccessful(gomock.Any(), "user-123", gomock.Any()).Return(nil, nil)
	attempts.EXPECT().CountFailedByIP(gomock.Any(), "test@example.com", newIP, gomock.Any()).Return(0, nil)

	e := security.NewEvaluator(attempts)
	loc := &domain.Location{Country: "DE", City: "Berlin"}

	// A brand-new account has no country baseline to deviate from.
	reasons := e.Evaluate(context.Background(), baseUser(), nil, newIP, loc)
	assert.Equal(t, []string{"Login from new IP address"}, reasons)
}

func TestEvaluator_ImpossibleTravelAndNewCountry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	attempts := mocks.NewMockAttemptRepository(ctrl)

	// Successful login from Mumbai one hour ago, now presenting from Berlin:
	// roughly 6300 km apart, far beyond any commercial flight.
	attempts.EXPECT().LatestSuccessful(gomock.Any(), "user-123", gomock.Any()).Return(&domain.LoginRecord{
		ID:        "attempt-1",
		UserID:    "user-123",
		Status:    domain.LoginStatusSuccess,
		Location:  domain.Location{Country: "IN", City: "Mumbai", Latitude: 19.076, Longitude: 72.8777},
		Timestamp: time.Now().Add(-time.Hour),
	}, nil)
	attempts.EXPECT().CountFailedByIP(gomock.Any(), "test@example.com", newIP, gomock.Any()).Return(0, nil)

	e := security.NewEvaluator(attempts)
	loc := &domain.Location{Country: "DE", City: "Berlin", Latitude: 52.52, Longitude: 13.405}

	reasons := e.Evaluate(context.Background(), baseUser(), trustedDevices(), newIP, loc)

	assert.Contains(t, reasons, "Login from new IP address")
	assert.Contains(t, reasons, "Login from new country: DE")

	found := false
	for _, r := range reasons {
		if len(r) > 0 && r[:10] == "Impossible" {
			found = true
		}
	}
	assert.True(t, found, "expected an impossible-travel reason, got %v", reasons)
}

func TestEvaluator_PlausibleTravel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	attempts := mocks.NewMockAttemptRepository(ctrl)

	// Mumbai to Delhi (~1150 km) over twelve hours is unremarkable.
	attempts.EXPECT().LatestSuccessful(gomock.Any(), "user-123", gomock.Any()).Return(&domain.LoginRecord{
		ID:        "attempt-1",
		UserID:    "user-123",
		Status:    domain.LoginStatusSuccess,
		Location:  domain.Location{Country: "IN", City: "Mumbai", Latitude: 19.076, Longitude: 72.8777},
		Timestamp: time.Now().Add(-12 * time.Hour),
	}, nil)
	attempts.EXPECT().CountFailedByIP(gomock.Any(), "test@example.com", trustedIP, gomock.Any()).Return(0, nil)

	e := security.NewEvaluator(attempts)
	loc := &domain.Location{Country: "IN", City: "Delhi", Latitude: 28.6139, Longitude: 77.209}

	reasons := e.Evaluate(context.Background(), baseUser(), trustedDevices(), trustedIP, loc)
	assert.Empty(t, reasons)
}

func TestEvaluator_VPNPrefix(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	vpnIP := "185.241.5.9"

	attempts := mocks.NewMockAttemptRepository(ctrl)
	attempts.EXPECT().LatestSuccessful(gomock.Any(), "user-123", gomock.Any()).Return(nil, nil)
	attempts.EXPECT().CountFailedByIP(gomock.Any(), "test@example.com", vpnIP, gomock.Any()).Return(0, nil)

	e := security.NewEvaluator(attempts)
	loc := &domain.Location{Country: "IN"}

	reasons := e.Evaluate(context.Background(), baseUser(), trustedDevices(), vpnIP, loc)

	assert.Contains(t, reasons, "Login from new IP address")
	assert.Contains(t, reasons, "VPN or proxy detected")
}

func TestEvaluator_FailedVelocity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	attempts := mocks.NewMockAttemptRepository(ctrl)
	attempts.EXPECT().LatestSuccessful(gomock.Any(), "user-123", gomock.Any()).Return(nil, nil)
	attempts.EXPECT().CountFailedByIP(gomock.Any(), "test@example.com", trustedIP, gomock.Any()).Return(3, nil)

	e := security.NewEvaluator(attempts)
	loc := &domain.Location{Country: "IN"}

	reasons := e.Evaluate(context.Background(), baseUser(), trustedDevices(), trustedIP, loc)
	assert.Equal(t, []string{"Multiple failed login attempts (3) from this IP"}, reasons)
}

func TestEvaluator_BelowVelocityThreshold(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	attempts := mocks.NewMockAttemptRepository(ctrl)
	attempts.EXPECT().LatestSuccessful(gomock.Any(), "user-123", gomock.Any()).Return(nil, nil)
	attempts.EXPECT().CountFailedByIP(gomock.Any(), "test@example.com", trustedIP, gomock.Any()).Return(2, nil)

	e := security.NewEvaluator(attempts)
	loc := &domain.Location{Country: "IN"}

	reasons := e.Evaluate(context.Background(), baseUser(), trustedDevices(), trustedIP, loc)
	assert.Empty(t, reasons)
}

func TestEvaluator_UnresolvedLocation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	attempts := mocks.NewMockAttemptRepository(ctrl)
	attempts.EXPECT().CountFailedByIP(gomock.Any(), "test@example.com", trustedIP, gomock.Any()).Return(0, nil)

	e := security.NewEvaluator(attempts)

	// Without coordinates the location heuristics stay silent.
	reasons := e.Evaluate(context.Background(), baseUser(), trustedDevices(), trustedIP, nil)
	assert.Empty(t, reasons)
}

func TestEvaluator_HistoryLookupFailureDegrades(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	attempts := mocks.NewMockAttemptRepository(ctrl)
	attempts.EXPECT().LatestSuccessful(gomock.Any(), "user-123", gomock.Any()).
		Return(nil, errors.New("connection refused"))
	attempts.EXPECT().CountFailedByIP(gomock.Any(), "test@example.com", trustedIP, gomock.Any()).
		Return(0, errors.New("connection refused"))

	e := security.NewEvaluator(attempts)
	loc := &domain.Location{Country: "IN", Latitude: 19.07, Longitude: 72.87}

	// A degraded history query drops the heuristic, not the evaluation.
	reasons := e.Evaluate(context.Background(), baseUser(), trustedDevices(), trustedIP, loc)
	assert.Empty(t, reasons)
}
