// Package geo resolves client addresses to approximate locations using the
// ip-api.com JSON endpoint, with a small in-memory cache so repeated logins
// from one address do not pay the network round trip.
package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/codeprnv/login-security/internal/auth/domain"
)

const ipAPIBaseURL = "http://ip-api.com/json"

type cacheEntry struct {
	loc     *domain.Location
	fetched time.Time
}

type IPAPIResolver struct {
	client  *http.Client
	baseURL string
	ttl     time.Duration

	mu    sync.Mutex
	cache map[string]cacheEntry
}

func NewIPAPIResolver(timeout time.Duration) *IPAPIResolver {
	return &IPAPIResolver{
		client:  &http.Client{Timeout: timeout},
		baseURL: ipAPIBaseURL,
		ttl:     time.Hour,
		cache:   make(map[string]cacheEntry),
	}
}

// NewIPAPIResolverWithBaseURL exists for tests pointing at a local server.
func NewIPAPIResolverWithBaseURL(baseURL string, timeout time.Duration) *IPAPIResolver {
	r := NewIPAPIResolver(timeout)
	r.baseURL = baseURL
	return r
}

type ipAPIResponse struct {
	Status      string  `json:"status"`
	CountryCode string  `json:"countryCode"`
	City        string  `json:"city"`
	Lat         float64 `json:"lat"`
	Lon         float64 `json:"lon"`
}

// Lookup resolves ip to a coarse location. Private and loopback addresses
// return (nil, nil): there is nothing meaningful to resolve.
func (r *IPAPIResolver) Lookup(ctx context.Context, ip string) (*domain.Location, error) {
	parsed := net.ParseIP(ip)
	if parsed == nil || parsed.IsLoopback() || parsed.IsPrivate() || parsed.IsUnspecified() {
		return nil, nil
	}

	if loc, ok := r.cached(ip); ok {
		return loc, nil
	}

	url := fmt.Sprintf("%s/%s?fields=status,countryCode,city,lat,lon", r.baseURL, ip)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geo lookup for %s: %w", ip, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geo lookup for %s: unexpected status %d", ip, resp.StatusCode)
	}

	var body ipAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("geo lookup for %s: %w", ip, err)
	}

	if body.Status != "success" {
		r.store(ip, nil)
		return nil, nil
	}

	loc := &domain.Location{
		Country:   body.CountryCode,
		City:      body.City,
		Latitude:  body.Lat,
		Longitude: body.Lon,
	}
	r.store(ip, loc)

	return loc, nil
}

func (r *IPAPIResolver) cached(ip string) (*domain.Location, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.cache[ip]
	if !ok || time.Since(entry.fetched) > r.ttl {
		return nil, false
	}
	return entry.loc, true
}

func (r *IPAPIResolver) store(ip string, loc *domain.Location) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cache[ip] = cacheEntry{loc: loc, fetched: time.Now()}
}
