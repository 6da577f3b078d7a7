package security

import "math"

const earthRadiusKm = 6371

// DistanceKm computes the great-circle distance between two coordinates on
// the WGS84-approximated sphere. Missing coordinates (zero values) short-
// circuit to zero distance so the travel heuristic stays quiet rather than
// firing on bad data.
func DistanceKm(lat1, lon1, lat2, lon2 float64) float64 {
	if lat1 == 0 || lon1 == 0 || lat2 == 0 || lon2 == 0 {
		return 0
	}

	dLat := toRadians(lat2 - lat1)
	dLon := toRadians(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(lat1))*math.Cos(toRadians(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

func toRadians(degrees float64) float64 {
	return degrees * (math.Pi / 180)
}
