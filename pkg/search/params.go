// Package search holds the pure parts of the query compositor:
// request parameters, query-mode classification, and construction of
// the full-text match expression. Executing queries against storage
// lives in internal/iosearch.
package search

// Pagination and geo bounds enforced on every request. Requests are
// validated against these before the compositor runs.
const (
	DefaultRadius = 1000.0
	MaxRadius     = 10000.0

	DefaultLimit = 20
	MaxLimit     = 100
	MaxOffset    = 1000

	MaxQueryLen  = 100
	MaxFilterLen = 5
)

// Params is a validated search request. Latitude and Longitude are
// pointers because 0 is a legal coordinate; nil means absent.
type Params struct {
	Query      string   `json:"q,omitempty"`
	Place      string   `json:"place,omitempty"`
	Sect       string   `json:"sect,omitempty"`
	Deity      string   `json:"deity,omitempty"`
	InstanceOf string   `json:"instanceOf,omitempty"`
	Latitude   *float64 `json:"latitude,omitempty"`
	Longitude  *float64 `json:"longitude,omitempty"`
	Radius     float64  `json:"radius"`
	Limit      int      `json:"limit"`
	Offset     int      `json:"offset"`
}

// Mode classifies a request by which halves of the hybrid index it
// needs. First match wins: Empty, Text, Geo, Combined.
type Mode int

const (
	// ModeEmpty means no usable filters at all; this is answered with
	// a guidance message, never an error.
	ModeEmpty Mode = iota

	// ModeText uses only the full-text index.
	ModeText

	// ModeGeo uses only the spatial index.
	ModeGeo

	// ModeCombined intersects full-text matches with the bounding
	// box, ordered by text relevance.
	ModeCombined
)

func (m Mode) String() string {
	switch m {
	case ModeText:
		return "text"
	case ModeGeo:
		return "geo"
	case ModeCombined:
		return "combined"
	default:
		return "empty"
	}
}

// HasText reports whether any text filter is present.
func (p *Params) HasText() bool {
	return p.Query != "" || p.Place != "" || p.Sect != "" ||
		p.Deity != "" || p.InstanceOf != ""
}

// HasGeo reports whether a complete location is present.
func (p *Params) HasGeo() bool {
	return p.Latitude != nil && p.Longitude != nil
}

// Mode returns the query classification for these parameters.
func (p *Params) Mode() Mode {
	hasText, hasGeo := p.HasText(), p.HasGeo()
	switch {
	case !hasText && !hasGeo:
		return ModeEmpty
	case hasText && !hasGeo:
		return ModeText
	case !hasText:
		return ModeGeo
	default:
		return ModeCombined
	}
}
