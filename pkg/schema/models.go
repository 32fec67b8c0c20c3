// Package schema defines the persisted shapes of the TirthDB index:
// the item document store, the geolocation R-tree, the full-text
// table, and the fuzzy-lookup vocabulary.
package schema

// Item stores the full normalized projection of a record as an
// opaque JSON blob keyed by the record id. The ingestion pipeline is
// the only writer; the search path joins against it to attach
// projections to matches.
type Item struct {
	// ID is the numeric record identity derived from the source
	// identifier ("Q2517" -> 2517).
	ID int `db:"id"`

	// Doc is the JSON-encoded wiki.Record projection.
	Doc []byte `db:"d"`
}

// Geolocation is one bounding box per located record, stored in an
// R-tree virtual table. X is longitude, Y is latitude; the box is a
// fixed small padding around the record's point, present only to
// make point data compatible with box intersection.
type Geolocation struct {
	ID   int     `db:"id"`
	MinX float64 `db:"minX"`
	MaxX float64 `db:"maxX"`
	MinY float64 `db:"minY"`
	MaxY float64 `db:"maxY"`
}

// Text is one row per record in the FTS5 virtual table. All fields
// are canonicalized (transliterated, lowercased) before storage;
// fields with no contributing claims are empty strings.
type Text struct {
	ID     int    `db:"id"`
	Name   string `db:"name"`
	Place  string `db:"place"`
	Deity  string `db:"deity"`
	Sect   string `db:"sect"`
	TypeOf string `db:"typeof"`
}

// Vocab is a frequency-ranked term derived in bulk from the text
// table. It backs the optional "did you mean" lookup and is safe to
// rebuild wholesale at any time.
type Vocab struct {
	// Word is the vocabulary term.
	Word string `db:"word"`

	// Rank is the term's frequency weight; higher means more common.
	Rank int `db:"rank"`

	// LangID is reserved for multi-language vocabularies; 0 is the
	// default language.
	LangID int `db:"langid"`

	// SoundsLike is an optional alternative spelling for phonetic
	// matching.
	SoundsLike string `db:"soundslike"`
}
