package wiki

import "encoding/json"

// ValueKind tags the shape of a claim statement's value. Wikibase
// values are polymorphic and only distinguishable by shape at
// runtime, so normalization dispatches on this tag instead of probing
// fields ad hoc.
type ValueKind int

const (
	// KindUnknown covers "unknown value"/"no value" sentinels and
	// shapes we do not recognize. Such statements are skipped.
	KindUnknown ValueKind = iota

	// KindString is a plain string value (addresses, URLs, external
	// identifiers).
	KindString

	// KindQuantity is a numeric amount with a unit; only the amount
	// string is kept.
	KindQuantity

	// KindEntityRef is a reference to another item; only the item id
	// string ("Q57") is kept.
	KindEntityRef

	// KindCoordinate is a geographic point and is routed to the
	// record's location instead of its claims.
	KindCoordinate
)

// ClaimValue is the decoded, tagged form of one statement value.
type ClaimValue struct {
	Kind     ValueKind
	Str      string
	Amount   string
	EntityID string
	Coord    Coordinate
}

// decodeClaimValue classifies a raw datavalue by shape. A missing or
// null value (snak sentinels) decodes to KindUnknown.
func decodeClaimValue(raw json.RawMessage) ClaimValue {
	if len(raw) == 0 || string(raw) == "null" {
		return ClaimValue{Kind: KindUnknown}
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return ClaimValue{Kind: KindString, Str: s}
	}

	var obj struct {
		Latitude  *float64 `json:"latitude"`
		Longitude *float64 `json:"longitude"`
		Amount    string   `json:"amount"`
		ID        string   `json:"id"`
	}
	if err := json.Unmarshal(raw, &obj); err != nil {
		return ClaimValue{Kind: KindUnknown}
	}

	switch {
	case obj.Latitude != nil && obj.Longitude != nil:
		return ClaimValue{
			Kind: KindCoordinate,
			Coord: Coordinate{
				Latitude:  *obj.Latitude,
				Longitude: *obj.Longitude,
			},
		}
	case obj.Amount != "":
		return ClaimValue{Kind: KindQuantity, Amount: obj.Amount}
	case obj.ID != "":
		return ClaimValue{Kind: KindEntityRef, EntityID: obj.ID}
	default:
		return ClaimValue{Kind: KindUnknown}
	}
}

// text returns the string that represents the value inside a claims
// list, or "" for kinds that carry no text (Unknown, Coordinate).
func (cv ClaimValue) text() string {
	switch cv.Kind {
	case KindString:
		return cv.Str
	case KindQuantity:
		return cv.Amount
	case KindEntityRef:
		return cv.EntityID
	default:
		return ""
	}
}
