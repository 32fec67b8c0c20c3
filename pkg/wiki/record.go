// Package wiki normalizes Wikibase-style knowledge-base items into
// the compact projection stored and indexed by TirthDB. It is pure:
// parsing and shrinking never touch storage.
package wiki

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/tirthatlas/tirthdb/pkg/coord"
)

// Property codes of the source knowledge base. PropLocation is
// reserved for coordinates and never appears in Record.Claims.
const (
	PropTypeOf   = "P1"
	PropLocation = "P2"
	PropPlace    = "P4"
	PropSect     = "P16"
	PropDeity    = "P20"
)

// Coordinate is a latitude/longitude pair rounded to six decimals.
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Record is the normalized projection of one source item. It is
// created once per ingestion pass and written with upsert semantics;
// a later pass with the same ID replaces the prior projection.
type Record struct {
	ID          int                 `json:"id"`
	Name        string              `json:"name"`
	Description string              `json:"description"`
	Aliases     string              `json:"alias"`
	Location    *Coordinate         `json:"location,omitempty"`
	Claims      map[string][]string `json:"claims"`
}

type langValue struct {
	Language string `json:"language"`
	Value    string `json:"value"`
}

type statement struct {
	Mainsnak struct {
		Snaktype  string `json:"snaktype"`
		Datavalue struct {
			Value json.RawMessage `json:"value"`
			Type  string          `json:"type"`
		} `json:"datavalue"`
	} `json:"mainsnak"`
}

// Item is the raw decoded form of one source line. Only the fields
// the projection needs are retained; the rest of the deeply nested
// structure is discarded at decode time.
type Item struct {
	ID           string                 `json:"id"`
	Labels       map[string]langValue   `json:"labels"`
	Descriptions map[string]langValue   `json:"descriptions"`
	Aliases      map[string][]langValue `json:"aliases"`
	Claims       map[string][]statement `json:"claims"`
}

// Parse decodes one newline-delimited JSON source line.
func Parse(line []byte) (*Item, error) {
	var it Item
	if err := json.Unmarshal(line, &it); err != nil {
		return nil, err
	}
	return &it, nil
}

// Shrink reduces the raw item to its Record projection.
//
// Per statement the first meaningful value is taken; sentinel
// statements decode to KindUnknown and are skipped. A coordinate
// value becomes the record's location; when several location
// statements exist the last one wins (the source does not define an
// order, so the tie-break is pinned here). The reserved location
// property is removed from claims even when it held no usable value,
// so raw coordinates never leak into text indexing.
//
// An ID that cannot be parsed makes the whole record unusable, since
// nothing can be keyed; that is a hard error, not a skip.
func (it *Item) Shrink() (Record, error) {
	id, err := ItemIDToNumber(it.ID)
	if err != nil {
		return Record{}, err
	}

	aliases := it.joinAliases()

	rec := Record{
		ID:          id,
		Name:        strings.TrimSpace(it.label() + " " + aliases),
		Description: it.description(),
		Aliases:     aliases,
		Claims:      make(map[string][]string),
	}

	for prop, statements := range it.Claims {
		for _, st := range statements {
			cv := decodeClaimValue(st.Mainsnak.Datavalue.Value)
			switch cv.Kind {
			case KindUnknown:
				continue
			case KindCoordinate:
				rec.Location = &Coordinate{
					Latitude:  coord.Clamp(cv.Coord.Latitude),
					Longitude: coord.Clamp(cv.Coord.Longitude),
				}
			default:
				rec.Claims[prop] = append(rec.Claims[prop], cv.text())
			}
		}
	}

	// The location property must not reach the lexical index.
	delete(rec.Claims, PropLocation)

	return rec, nil
}

// ItemIDToNumber converts a source identifier like "Q2517" to its
// numeric form by stripping the alphabetic prefix and parsing the
// remaining digits.
func ItemIDToNumber(itemID string) (int, error) {
	digits := strings.TrimPrefix(itemID, "Q")
	n, err := strconv.Atoi(digits)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("cannot derive numeric id from %q", itemID)
	}
	return n, nil
}

func (it *Item) label() string {
	return it.Labels["en"].Value
}

func (it *Item) description() string {
	return it.Descriptions["en"].Value
}

func (it *Item) joinAliases() string {
	en := it.Aliases["en"]
	if len(en) == 0 {
		return ""
	}
	vals := make([]string, len(en))
	for i, a := range en {
		vals[i] = a.Value
	}
	return strings.Join(vals, ", ")
}
