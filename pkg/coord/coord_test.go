package coord_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tirthatlas/tirthdb/pkg/coord"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		msg string
		in  float64
		out float64
	}{
		{"six decimals kept", 75.8735219, 75.873522},
		{"rounds up", 23.6419555, 23.641956},
		{"short value untouched", 23.64, 23.64},
		{"negative", -75.8735219, -75.873522},
		{"zero", 0, 0},
	}

	for _, v := range tests {
		assert.InDelta(t, v.out, coord.Clamp(v.in), 1e-9, v.msg)
	}
}

func TestClampIdempotent(t *testing.T) {
	vals := []float64{75.8735219, -12.3456789, 179.9999994, 0.0000004}
	for _, v := range vals {
		once := coord.Clamp(v)
		assert.Equal(t, once, coord.Clamp(once))
	}
}

func TestMetersToDegrees(t *testing.T) {
	assert.InDelta(t, 0.009009, coord.MetersToDegrees(1000), 1e-6)
	assert.InDelta(t, 0.0, coord.MetersToDegrees(0), 1e-12)
}

// TestAxisOrder pins the GIS convention: X is longitude, Y is
// latitude. The mapping flipped more than once historically, so this
// test guards against regressions on either side of the system.
func TestAxisOrder(t *testing.T) {
	lat, lon := 23.6420, 75.8735
	b := coord.FromPoint(lat, lon)

	assert.Less(t, b.MinX, b.MaxX)
	assert.Less(t, b.MinY, b.MaxY)
	assert.InDelta(t, lon, (b.MinX+b.MaxX)/2, 1e-6, "X axis is longitude")
	assert.InDelta(t, lat, (b.MinY+b.MaxY)/2, 1e-6, "Y axis is latitude")
}

func TestQueryBoxIntersects(t *testing.T) {
	stored := coord.FromPoint(23.641955, 75.873522)
	near := coord.QueryBox(23.6420, 75.8735, 1000)
	far := coord.QueryBox(21.4850, 74.9260, 1000)

	assert.True(t, near.Intersects(stored))
	assert.True(t, stored.Intersects(near))
	assert.False(t, far.Intersects(stored))
}
