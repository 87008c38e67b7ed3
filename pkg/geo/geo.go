// Package geo provides great-circle distance and bounding-box helpers
// for locating subscribers near an alert.
package geo

import "math"

// EarthRadiusKm is the mean earth radius used for distance calculations.
const EarthRadiusKm = 6371.0

// kmPerDegreeLat is the approximate north-south span of one degree of latitude.
const kmPerDegreeLat = 111.0

// Point is a WGS84 coordinate pair.
type Point struct {
	Lat float64
	Lon float64
}

// DistanceKm returns the great-circle distance between two points using
// the haversine formula.
func DistanceKm(a, b Point) float64 {
	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLon := (b.Lon - a.Lon) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return EarthRadiusKm * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// BoundingBox is a lat/lon rectangle used to prefilter candidates in SQL
// before the exact distance check.
type BoundingBox struct {
	MinLat float64
	MaxLat float64
	MinLon float64
	MaxLon float64
}

// BoxAround returns a bounding box covering at least radiusKm around the
// center point. Longitude spread widens with latitude so the box never
// undershoots; a near-polar center degrades to the full longitude range.
func BoxAround(center Point, radiusKm float64) BoundingBox {
	latDelta := radiusKm / kmPerDegreeLat

	cosLat := math.Cos(center.Lat * math.Pi / 180)
	lonDelta := 180.0
	if cosLat > 1e-6 {
		lonDelta = radiusKm / (kmPerDegreeLat * cosLat)
	}

	return BoundingBox{
		MinLat: math.Max(center.Lat-latDelta, -90),
		MaxLat: math.Min(center.Lat+latDelta, 90),
		MinLon: math.Max(center.Lon-lonDelta, -180),
		MaxLon: math.Min(center.Lon+lonDelta, 180),
	}
}

// Contains reports whether the point lies inside the box.
func (b BoundingBox) Contains(p Point) bool {
	return p.Lat >= b.MinLat && p.Lat <= b.MaxLat &&
		p.Lon >= b.MinLon && p.Lon <= b.MaxLon
}

// Within reports whether p is at most radiusKm from center by exact
// great-circle distance.
func Within(center, p Point, radiusKm float64) bool {
	return DistanceKm(center, p) <= radiusKm
}

// Compass converts a bearing in degrees to a 16-point compass direction.
func Compass(deg float64) string {
	dirs := []string{
		"N", "NNE", "NE", "ENE", "E", "ESE", "SE", "SSE",
		"S", "SSW", "SW", "WSW", "W", "WNW", "NW", "NNW",
	}
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	idx := int(math.Round(deg/22.5)) % 16
	return dirs[idx]
}
