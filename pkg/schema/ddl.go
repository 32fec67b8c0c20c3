package schema

// DDL statements for the index tables. The geolocation and text
// tables are SQLite virtual tables (rtree, fts5) and cannot be
// produced by an ORM or tag-driven generator, so the statements are
// spelled out. All are idempotent.

// ItemDDL creates the document store.
const ItemDDL = `
CREATE TABLE IF NOT EXISTS item (
    id INTEGER PRIMARY KEY,
    d TEXT
);`

// GeolocationDDL creates the spatial index. Column order follows the
// rtree convention: per-axis min/max pairs, X first.
const GeolocationDDL = `
CREATE VIRTUAL TABLE IF NOT EXISTS geolocation USING rtree(
    id,
    minX, maxX,
    minY, maxY
);`

// TextDDL creates the full-text index. The id column is excluded
// from tokenization; it exists only for joins and upserts.
const TextDDL = `
CREATE VIRTUAL TABLE IF NOT EXISTS text USING fts5(
    id UNINDEXED,
    name,
    place,
    deity,
    sect,
    typeof
);`

// VocabDDL creates the vocabulary term list.
const VocabDDL = `
CREATE TABLE IF NOT EXISTS vocab (
    word TEXT PRIMARY KEY,
    rank INTEGER DEFAULT 1,
    langid INTEGER DEFAULT 0,
    soundslike TEXT
);`

// All returns the DDL statements in creation order.
func All() []string {
	return []string{ItemDDL, GeolocationDDL, TextDDL, VocabDDL}
}

// TableNames lists the tables the schema manages, in creation order.
func TableNames() []string {
	return []string{"item", "geolocation", "text", "vocab"}
}
