package geo_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roadapsp/geo"
)

func TestHaversine_KnownDistances(t *testing.T) {
	cases := []struct {
		name                   string
		lat1, lng1, lat2, lng2 float64
		want, delta            float64
	}{
		// one degree of longitude on the equator = R·π/180
		{"equator 1deg", 0, 0, 0, 1, geo.EarthRadiusMeters * math.Pi / 180, 1e-6},
		{"meridian 1deg", 0, 0, 1, 0, geo.EarthRadiusMeters * math.Pi / 180, 1e-6},
		{"pole to pole", 90, 0, -90, 0, geo.EarthRadiusMeters * math.Pi, 1e-3},
		{"antipodal equator", 0, 0, 0, 180, geo.EarthRadiusMeters * math.Pi, 1e-3},
		// White House → nearby point, ~ 555 m
		{"short hop", 38.898556, -77.037852, 38.897147, -77.043934, 549.1, 1.0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := geo.Haversine(tc.lat1, tc.lng1, tc.lat2, tc.lng2)
			assert.InDelta(t, tc.want, got, tc.delta)
		})
	}
}

func TestHaversine_ZeroForSamePoint(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for i := 0; i < 200; i++ {
		lat := r.Float64()*180 - 90
		lng := r.Float64()*360 - 180
		require.Equal(t, 0.0, geo.Haversine(lat, lng, lat, lng), "point (%g,%g)", lat, lng)
	}
}

func TestHaversine_Symmetric(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for i := 0; i < 500; i++ {
		a := geo.Coord{Lat: r.Float64()*180 - 90, Lng: r.Float64()*360 - 180}
		b := geo.Coord{Lat: r.Float64()*180 - 90, Lng: r.Float64()*360 - 180}
		ab := geo.Distance(a, b)
		ba := geo.Distance(b, a)
		require.Equal(t, math.Float64bits(ab), math.Float64bits(ba), "a=%v b=%v", a, b)
		require.GreaterOrEqual(t, ab, 0.0)
	}
}

func TestHaversine_OutOfRangeInputIsComputed(t *testing.T) {
	// no validation: latitudes beyond ±90 still yield a finite number
	d := geo.Haversine(-84.412977, 39.152501, -84.412946, 39.152505)
	assert.False(t, math.IsNaN(d))
	assert.False(t, math.IsInf(d, 0))

	d = geo.Haversine(120, 0, 300, 0)
	assert.False(t, math.IsNaN(d))
}
