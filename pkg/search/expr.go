package search

import "strings"

// Full-text index columns targeted by each filter.
const (
	colName   = "name"
	colPlace  = "place"
	colDeity  = "deity"
	colSect   = "sect"
	colTypeOf = "typeof"
)

// MatchExpr builds the FTS5 match expression for the request: one
// field-scoped clause per present filter, joined with AND. Every
// value is quoted as an FTS string literal, so request tokens can
// never smuggle operators into the query language. Returns "" when
// no text filter is present.
func (p *Params) MatchExpr() string {
	var clauses []string
	add := func(col, val string) {
		if val == "" {
			return
		}
		clauses = append(clauses, col+":"+quoteValue(val))
	}

	add(colName, p.Query)
	add(colPlace, p.Place)
	add(colDeity, p.Deity)
	add(colSect, p.Sect)
	add(colTypeOf, p.InstanceOf)

	return strings.Join(clauses, " AND ")
}

// quoteValue wraps v as an FTS5 string literal. Embedded double
// quotes are doubled; everything else, including FTS operators like
// NEAR, *, and -, is inert inside the quotes.
func quoteValue(v string) string {
	return `"` + strings.ReplaceAll(v, `"`, `""`) + `"`
}
