package wiki

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeClaimValue(t *testing.T) {
	tests := []struct {
		msg  string
		raw  string
		kind ValueKind
		text string
	}{
		{"plain string", `"465441"`, KindString, "465441"},
		{"url string", `"https://maps.google.com/?cid=1"`, KindString,
			"https://maps.google.com/?cid=1"},
		{"quantity", `{"amount":"+36","unit":"1"}`, KindQuantity, "+36"},
		{"entity ref",
			`{"entity-type":"item","numeric-id":57,"id":"Q57"}`,
			KindEntityRef, "Q57"},
		{"no value sentinel", ``, KindUnknown, ""},
		{"null value", `null`, KindUnknown, ""},
		{"unrecognized shape", `{"time":"+2025-09-05T00:00:00Z"}`,
			KindUnknown, ""},
	}

	for _, v := range tests {
		cv := decodeClaimValue(json.RawMessage(v.raw))
		assert.Equal(t, v.kind, cv.Kind, v.msg)
		assert.Equal(t, v.text, cv.text(), v.msg)
	}
}

func TestDecodeClaimValueCoordinate(t *testing.T) {
	raw := json.RawMessage(
		`{"latitude":23.641955,"longitude":75.873522,"altitude":null,
		  "precision":0.000001}`,
	)
	cv := decodeClaimValue(raw)

	assert.Equal(t, KindCoordinate, cv.Kind)
	assert.InDelta(t, 23.641955, cv.Coord.Latitude, 1e-9)
	assert.InDelta(t, 75.873522, cv.Coord.Longitude, 1e-9)
	assert.Empty(t, cv.text(), "coordinates carry no claim text")
}
