// Package security holds the suspicious-login heuristics. Each heuristic is
// an independent signal; the evaluator concatenates every reason that fires
// and leaves policy (block vs. alert) to the caller.
package security

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/codeprnv/login-security/internal/auth/domain"
)

const (
	// Commercial flights top out around 900 km/h; anything implying a
	// faster trip between two observed logins is physically implausible.
	maxTravelSpeedKmh = 900

	travelLookback   = 24 * time.Hour
	velocityWindow   = 30 * time.Minute
	velocityMinCount = 3
)

// Known VPN/proxy address prefixes. A real deployment would consult a
// reputation service; the prefix list keeps the heuristic self-contained.
var vpnPrefixes = []string{
	"103.145",
	"185.241",
	"37.1.208",
}

var knownMaliciousIPs = map[string]struct{}{}

type Evaluator struct {
	attempts domain.AttemptRepository
}

func NewEvaluator(attempts domain.AttemptRepository) *Evaluator {
	return &Evaluator{attempts: attempts}
}

// Evaluate returns the ordered list of risk reasons for this login. An empty
// list means nothing looked unusual. History lookups that fail degrade the
// affected heuristic instead of failing the evaluation.
func (e *Evaluator) Evaluate(ctx context.Context, user *domain.User, devices []domain.TrustedDevice, ip string, loc *domain.Location) []string {
	var reasons []string

	if !knownIP(devices, ip) {
		reasons = append(reasons, "Login from new IP address")
	}

	if reason := e.impossibleTravel(ctx, user, loc); reason != "" {
		reasons = append(reasons, reason)
	}

	if reason := newCountry(devices, loc); reason != "" {
		reasons = append(reasons, reason)
	}

	if isVPNOrProxy(ip) {
		reasons = append(reasons, "VPN or proxy detected")
	}

	if _, known := knownMaliciousIPs[ip]; known {
		reasons = append(reasons, "Login from known malicious IP")
	}

	if reason := e.failedVelocity(ctx, user.Email, ip); reason != "" {
		reasons = append(reasons, reason)
	}

	return reasons
}

func knownIP(devices []domain.TrustedDevice, ip string) bool {
	for _, d := range devices {
		if d.IPAddress == ip {
			return true
		}
	}
	return false
}

func (e *Evaluator) impossibleTravel(ctx context.Context, user *domain.User, loc *domain.Location) string {
	if loc == nil {
		return ""
	}

	now := time.Now()
	last, err := e.attempts.LatestSuccessful(ctx, user.ID, now.Add(-travelLookback))
	if err != nil {
		log.Printf("warn: impossible-travel lookup failed for user %s: %v", user.ID, err)
		return ""
	}
	if last == nil {
		return ""
	}

	distance := DistanceKm(last.Location.Latitude, last.Location.Longitude, loc.Latitude, loc.Longitude)
	elapsed := now.Sub(last.Timestamp).Hours()
	if elapsed <= 0 {
		return ""
	}

	speed := distance / elapsed
	if speed > maxTravelSpeedKmh && elapsed < travelLookback.Hours() {
		return fmt.Sprintf("Impossible travel detected: %.0f km in %.1f hours", distance, elapsed)
	}
	return ""
}

// newCountry only fires when a trusted-device baseline exists; a brand-new
// account has no countries to deviate from.
func newCountry(devices []domain.TrustedDevice, loc *domain.Location) string {
	if loc == nil || loc.Country == "" || len(devices) == 0 {
		return ""
	}

	for _, d := range devices {
		if d.Country == loc.Country {
			return ""
		}
	}
	return fmt.Sprintf("Login from new country: %s", loc.Country)
}

func isVPNOrProxy(ip string) bool {
	for _, prefix := range vpnPrefixes {
		if strings.HasPrefix(ip, prefix) {
			return true
		}
	}
	return false
}

func (e *Evaluator) failedVelocity(ctx context.Context, email, ip string) string {
	count, err := e.attempts.CountFailedByIP(ctx, email, ip, time.Now().Add(-velocityWindow))
	if err != nil {
		log.Printf("warn: failed-attempt count lookup failed for %s: %v", email, err)
		return ""
	}
	if count >= velocityMinCount {
		return fmt.Sprintf("Multiple failed login attempts (%d) from this IP", count)
	}
	return ""
}
