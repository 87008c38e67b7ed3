package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	battery    = Point{Lat: 40.7002, Lon: -74.0142} // NOAA 8518750
	kingsPoint = Point{Lat: 40.8103, Lon: -73.7649} // NOAA 8516945
	montauk    = Point{Lat: 41.0483, Lon: -71.9594} // NOAA 8510560
)

func TestDistanceKm(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		a, b  Point
		want  float64
		delta float64
	}{
		{name: "same point", a: battery, b: battery, want: 0, delta: 0.001},
		{name: "battery to kings point", a: battery, b: kingsPoint, want: 24.3, delta: 1.5},
		{name: "battery to montauk", a: battery, b: montauk, want: 176, delta: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.InDelta(t, tt.want, DistanceKm(tt.a, tt.b), tt.delta)
			assert.InDelta(t, tt.want, DistanceKm(tt.b, tt.a), tt.delta, "distance should be symmetric")
		})
	}
}

func TestBoxAround(t *testing.T) {
	t.Parallel()

	box := BoxAround(battery, 25)

	assert.True(t, box.Contains(battery))
	assert.True(t, box.Contains(kingsPoint))
	assert.False(t, box.Contains(montauk))

	// The box must cover the full radius: every point at 25 km due
	// north or east stays inside.
	north := Point{Lat: battery.Lat + 25.0/111.0, Lon: battery.Lon}
	assert.True(t, box.Contains(north))
}

func TestBoxAround_ClampsToValidRange(t *testing.T) {
	t.Parallel()

	box := BoxAround(Point{Lat: 89.9, Lon: 0}, 100)
	assert.LessOrEqual(t, box.MaxLat, 90.0)
	assert.GreaterOrEqual(t, box.MinLon, -180.0)
	assert.LessOrEqual(t, box.MaxLon, 180.0)
}

func TestWithin(t *testing.T) {
	t.Parallel()

	assert.True(t, Within(battery, kingsPoint, 30))
	assert.False(t, Within(battery, kingsPoint, 10))
	assert.False(t, Within(battery, montauk, 100))
}

func TestCompass(t *testing.T) {
	t.Parallel()

	tests := []struct {
		deg  float64
		want string
	}{
		{0, "N"},
		{45, "NE"},
		{90, "E"},
		{180, "S"},
		{270, "W"},
		{359, "N"},
		{-90, "W"},
		{450, "E"},
		{22.5, "NNE"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Compass(tt.deg), "bearing %v", tt.deg)
	}
}
