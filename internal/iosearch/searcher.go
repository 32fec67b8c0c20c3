// Package iosearch executes composed search queries against the
// SQLite index. Classification and match-expression construction are
// pure and live in pkg/search; this package only turns a classified
// request into SQL and decodes the results.
package iosearch

import (
	"context"
	"log/slog"

	"github.com/gnames/gnfmt"

	"github.com/tirthatlas/tirthdb/pkg/config"
	"github.com/tirthatlas/tirthdb/pkg/coord"
	"github.com/tirthatlas/tirthdb/pkg/db"
	"github.com/tirthatlas/tirthdb/pkg/search"
	"github.com/tirthatlas/tirthdb/pkg/tirthdb"
	"github.com/tirthatlas/tirthdb/pkg/wiki"
)

const (
	// Text-only: full-text matches joined back to the stored
	// projection, best match first.
	textQ = `
SELECT item.d
  FROM text
  JOIN item ON item.id = text.id
 WHERE text MATCH ?
 ORDER BY text.rank
 LIMIT ? OFFSET ?`

	// Geo-only: every box overlapping the query box, in storage
	// order. The rtree prunes the scan to the overlapping nodes.
	geoQ = `
SELECT item.d
  FROM geolocation g
  JOIN item ON item.id = g.id
 WHERE g.maxX >= ? AND g.minX <= ?
   AND g.maxY >= ? AND g.minY <= ?
 LIMIT ? OFFSET ?`

	// Combined: text matches restricted to the query box, still in
	// text relevance order.
	combinedQ = `
SELECT item.d
  FROM text
  JOIN geolocation g ON g.id = text.id
  JOIN item ON item.id = text.id
 WHERE text MATCH ?
   AND g.maxX >= ? AND g.minX <= ?
   AND g.maxY >= ? AND g.minY <= ?
 ORDER BY text.rank
 LIMIT ? OFFSET ?`
)

type searcher struct {
	cfg      *config.Config
	operator db.Operator
	enc      gnfmt.Encoder
}

// New creates a Searcher over an already connected database.
func New(cfg *config.Config, op db.Operator) tirthdb.Searcher {
	return &searcher{cfg: cfg, operator: op, enc: gnfmt.GNjson{}}
}

func (s *searcher) Search(
	ctx context.Context,
	p *search.Params,
) ([]wiki.Record, error) {
	if s.operator.DB() == nil {
		return nil, NotConnectedError()
	}

	mode := p.Mode()
	slog.Debug("Running search",
		"mode", mode.String(),
		"limit", p.Limit, "offset", p.Offset,
	)

	switch mode {
	case search.ModeText:
		return s.query(ctx, textQ,
			p.MatchExpr(), p.Limit, p.Offset,
		)
	case search.ModeGeo:
		box := s.queryBox(p)
		return s.query(ctx, geoQ,
			box.MinX, box.MaxX, box.MinY, box.MaxY,
			p.Limit, p.Offset,
		)
	case search.ModeCombined:
		box := s.queryBox(p)
		return s.query(ctx, combinedQ,
			p.MatchExpr(),
			box.MinX, box.MaxX, box.MinY, box.MaxY,
			p.Limit, p.Offset,
		)
	default:
		return nil, nil
	}
}

func (s *searcher) queryBox(p *search.Params) coord.BBox {
	return coord.QueryBox(*p.Latitude, *p.Longitude, p.Radius)
}

// query runs one of the composed statements and decodes each stored
// projection back into a record.
func (s *searcher) query(
	ctx context.Context,
	q string,
	args ...any,
) ([]wiki.Record, error) {
	rows, err := s.operator.DB().QueryContext(ctx, q, args...)
	if err != nil {
		return nil, QueryError(err)
	}
	defer rows.Close()

	var res []wiki.Record
	for rows.Next() {
		var doc []byte
		if err = rows.Scan(&doc); err != nil {
			return nil, ScanError(err)
		}
		var rec wiki.Record
		if err = s.enc.Decode(doc, &rec); err != nil {
			return nil, ScanError(err)
		}
		res = append(res, rec)
	}
	if err = rows.Err(); err != nil {
		return nil, QueryError(err)
	}
	return res, nil
}
