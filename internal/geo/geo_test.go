package geo

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
)

func TestDistance_ZeroForIdenticalPoints(t *testing.T) {
	points := []orb.Point{
		{0, 0},
		{121.5654, 25.033},
		{-99.1332, 19.4326},
	}

	for _, p := range points {
		assert.Equal(t, 0.0, Distance(p, p))
	}
}

func TestDistance_Symmetry(t *testing.T) {
	a := orb.Point{-99.1332, 19.4326} // Mexico City
	b := orb.Point{-103.3496, 20.6597} // Guadalajara

	assert.Equal(t, Distance(a, b), Distance(b, a))
}

func TestDistance_QuarterGreatCircle(t *testing.T) {
	// 90 degrees of longitude along the equator is a quarter circumference.
	a := orb.Point{0, 0}
	b := orb.Point{90, 0}

	expected := math.Pi * EarthRadiusMeters / 2

	assert.InDelta(t, expected, Distance(a, b), 1.0)
	assert.InDelta(t, 10007543.0, Distance(a, b), 10.0)
}

func TestDistance_KnownCityPair(t *testing.T) {
	// Mexico City to Guadalajara is roughly 460 km straight-line.
	a := orb.Point{-99.1332, 19.4326}
	b := orb.Point{-103.3496, 20.6597}

	d := Distance(a, b)
	assert.Greater(t, d, 400000.0)
	assert.Less(t, d, 500000.0)
}

func TestDistance_NaNPropagates(t *testing.T) {
	a := orb.Point{math.NaN(), 0}
	b := orb.Point{90, 0}

	assert.True(t, math.IsNaN(Distance(a, b)))
}

func TestDistance_NonNegative(t *testing.T) {
	pairs := [][2]orb.Point{
		{{0, 0}, {0.0001, 0.0001}},
		{{180, 0}, {-180, 0}},
		{{0, 90}, {0, -90}},
	}

	for _, pair := range pairs {
		assert.GreaterOrEqual(t, Distance(pair[0], pair[1]), 0.0)
	}
}
