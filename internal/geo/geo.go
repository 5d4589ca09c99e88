// Package geo provides coordinate bounds and great-circle math for
// stop datasets (WGS 84).
package geo

import "math"

// Latitude and longitude limits in decimal degrees.
const (
	MinLat = -90.0
	MaxLat = 90.0
	MinLon = -180.0
	MaxLon = 180.0
)

// earthRadiusKm is the mean Earth radius in kilometers.
const earthRadiusKm = 6371.0

// ValidLat reports whether lat is within [-90, 90].
func ValidLat(lat float64) bool {
	return lat >= MinLat && lat <= MaxLat
}

// ValidLon reports whether lon is within [-180, 180].
func ValidLon(lon float64) bool {
	return lon >= MinLon && lon <= MaxLon
}

// Point is a geographic coordinate in decimal degrees.
type Point struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Valid reports whether both coordinates are in range.
func (p Point) Valid() bool {
	return ValidLat(p.Lat) && ValidLon(p.Lon)
}

// Haversine returns the great-circle distance between two points in
// kilometers.
func Haversine(a, b Point) float64 {
	lat1 := a.Lat * math.Pi / 180
	lon1 := a.Lon * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	lon2 := b.Lon * math.Pi / 180

	dLat := lat2 - lat1
	dLon := lon2 - lon1

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	return earthRadiusKm * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// Bounds is a geographic bounding box.
type Bounds struct {
	MinLat float64 `json:"min_lat"`
	MinLon float64 `json:"min_lon"`
	MaxLat float64 `json:"max_lat"`
	MaxLon float64 `json:"max_lon"`
}

// NewBounds returns a box covering exactly p.
func NewBounds(p Point) *Bounds {
	return &Bounds{MinLat: p.Lat, MinLon: p.Lon, MaxLat: p.Lat, MaxLon: p.Lon}
}

// Extend grows the box to cover p.
func (b *Bounds) Extend(p Point) {
	b.MinLat = math.Min(b.MinLat, p.Lat)
	b.MinLon = math.Min(b.MinLon, p.Lon)
	b.MaxLat = math.Max(b.MaxLat, p.Lat)
	b.MaxLon = math.Max(b.MaxLon, p.Lon)
}
