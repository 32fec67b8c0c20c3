// Package coord provides coordinate rounding and bounding-box math
// shared by the ingestion pipeline and the search path.
//
// The package is pure: no I/O, no failure modes. Both sides of the
// system must use the same rounding and the same axis convention
// (X = longitude, Y = latitude), otherwise stored boxes and query
// boxes drift apart.
package coord

import "math"

const (
	// Precision is the multiplier used to keep six decimal places,
	// about 11 cm of longitude at the equator.
	Precision = 1e6

	// BoxPadding is the half-width in degrees of the box stored for a
	// point, about 11 m at the equator. It only exists to make point
	// data compatible with a box-intersection index; it is not a
	// search radius.
	BoxPadding = 0.0001

	// MetersPerDegree is the equirectangular approximation used to
	// convert a radius in meters to degrees. Good enough at city to
	// continental scale; great-circle precision is a non-goal.
	MetersPerDegree = 111000.0
)

// Clamp rounds a latitude or longitude to six decimal places.
// Idempotent: Clamp(Clamp(v)) == Clamp(v).
func Clamp(v float64) float64 {
	return math.Round(v*Precision) / Precision
}

// MetersToDegrees converts a distance in meters to degrees using the
// fixed linear approximation.
func MetersToDegrees(m float64) float64 {
	return m / MetersPerDegree
}

// BBox is an axis-aligned bounding box with X = longitude and
// Y = latitude. Invariant: MinX <= MaxX and MinY <= MaxY.
type BBox struct {
	MinX float64
	MaxX float64
	MinY float64
	MaxY float64
}

// FromPoint builds the box stored for a located record: the point
// padded by BoxPadding on each axis, bounds clamped to six decimals.
func FromPoint(lat, lon float64) BBox {
	return newBBox(lat, lon, BoxPadding)
}

// QueryBox builds the box used by geo search: the point padded by the
// search radius (meters) converted to degrees.
func QueryBox(lat, lon, radiusMeters float64) BBox {
	return newBBox(lat, lon, MetersToDegrees(radiusMeters))
}

func newBBox(lat, lon, pad float64) BBox {
	return BBox{
		MinX: Clamp(lon - pad),
		MaxX: Clamp(lon + pad),
		MinY: Clamp(lat - pad),
		MaxY: Clamp(lat + pad),
	}
}

// Intersects reports whether two boxes overlap. It mirrors the
// predicate the spatial index evaluates; results near box corners may
// lie slightly outside the nominal radius.
func (b BBox) Intersects(o BBox) bool {
	return b.MinX <= o.MaxX && b.MaxX >= o.MinX &&
		b.MinY <= o.MaxY && b.MaxY >= o.MinY
}
