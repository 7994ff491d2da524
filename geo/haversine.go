// SPDX-License-Identifier: MIT
// Package: geo
//
// Purpose:
//   - Great-circle (haversine) distance between two latitude/longitude points.
//   - Used by the TMG parser and the geometric builder to derive edge weights.
//
// Contract:
//   - Inputs are decimal degrees; no range validation (|lat| > 90 is computed, not rejected).
//   - Result is in meters on a sphere of radius EarthRadiusMeters.
//   - Distance(a, b) and Distance(b, a) produce the same bit pattern.

package geo

import "math"

// EarthRadiusMeters is the fixed spherical Earth radius used by Haversine.
const EarthRadiusMeters = 6371000.0

// degToRad is the degrees → radians factor.
const degToRad = math.Pi / 180

// Coord is a geographic point in decimal degrees.
type Coord struct {
	Lat float64 // latitude, degrees
	Lng float64 // longitude, degrees
}

// radians converts decimal degrees to radians.
func radians(deg float64) float64 { return deg * degToRad }

// Haversine returns the great-circle distance in meters between
// (lat1, lng1) and (lat2, lng2), all given in decimal degrees.
//
//	a = sin²(Δlat/2) + cos(lat1)·cos(lat2)·sin²(Δlng/2)
//	c = 2·atan2(√a, √(1−a))
//	d = R·c
//
// Swapping the two points only flips the sign of the Δ terms, which are
// squared, so the result is exactly symmetric.
// Complexity: O(1).
func Haversine(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := radians(lat2 - lat1)
	dLng := radians(lng2 - lng1)

	sLat := math.Sin(dLat / 2)
	sLng := math.Sin(dLng / 2)

	a := sLat*sLat + math.Cos(radians(lat1))*math.Cos(radians(lat2))*sLng*sLng
	// rounding can push a just past 1 for near-antipodal points
	if a > 1 {
		a = 1
	}
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusMeters * c
}

// Distance is Haversine over two Coord values.
func Distance(a, b Coord) float64 {
	return Haversine(a.Lat, a.Lng, b.Lat, b.Lng)
}
