package security_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/codeprnv/login-security/internal/auth/security"
)

func TestDistanceKm(t *testing.T) {
	tests := []struct {
		name                   string
		lat1, lon1, lat2, lon2 float64
		want                   float64
		tolerance              float64
	}{
		{
			name: "same point",
			lat1: 19.076, lon1: 72.8777,
			lat2: 19.076, lon2: 72.8777,
			want: 0, tolerance: 0.001,
		},
		{
			name: "mumbai to delhi",
			lat1: 19.076, lon1: 72.8777,
			lat2: 28.6139, lon2: 77.209,
			want: 1153, tolerance: 20,
		},
		{
			name: "mumbai to berlin",
			lat1: 19.076, lon1: 72.8777,
			lat2: 52.52, lon2: 13.405,
			want: 6300, tolerance: 100,
		},
		{
			name: "across the antimeridian",
			lat1: 35.6762, lon1: 139.6503, // Tokyo
			lat2: 37.7749, lon2: -122.4194, // San Francisco
			want: 8270, tolerance: 100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := security.DistanceKm(tt.lat1, tt.lon1, tt.lat2, tt.lon2)
			assert.InDelta(t, tt.want, got, tt.tolerance)
		})
	}
}

func TestDistanceKm_MissingCoordinates(t *testing.T) {
	// Unresolved lookups store zero coordinates; treat those as no distance
	// rather than a trip to the Gulf of Guinea.
	assert.Zero(t, security.DistanceKm(0, 0, 19.076, 72.8777))
	assert.Zero(t, security.DistanceKm(19.076, 72.8777, 0, 0))
}
