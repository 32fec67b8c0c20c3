package ioingest

import (
	"context"
	"database/sql"

	"github.com/gnames/gnfmt"

	"github.com/tirthatlas/tirthdb/pkg/coord"
	"github.com/tirthatlas/tirthdb/pkg/translit"
	"github.com/tirthatlas/tirthdb/pkg/wiki"
)

const (
	upsertItemQ = `
INSERT INTO item (id, d) VALUES (?, ?)
ON CONFLICT(id) DO UPDATE SET d = excluded.d`

	// The rtree keeps id as its integer primary key, so
	// INSERT OR REPLACE gives upsert semantics directly.
	upsertGeoQ = `
INSERT OR REPLACE INTO geolocation (id, minX, maxX, minY, maxY)
VALUES (?, ?, ?, ?, ?)`

	// FTS5 tables have no unique constraints; the upsert is a
	// delete-then-insert inside the batch transaction.
	deleteTextQ = `DELETE FROM text WHERE id = ?`
	insertTextQ = `
INSERT INTO text (id, name, place, deity, sect, typeof)
VALUES (?, ?, ?, ?, ?, ?)`
)

// upserter writes records in batched transactions. It is not safe
// for concurrent use; each file worker owns one.
type upserter struct {
	db        *sql.DB
	tx        *sql.Tx
	batchSize int
	pending   int
	enc       gnfmt.Encoder
}

func newUpserter(handle *sql.DB, batchSize int) *upserter {
	return &upserter{
		db:        handle,
		batchSize: batchSize,
		enc:       gnfmt.GNjson{},
	}
}

// upsert writes one record to all three tables: the item projection
// always, the bounding box only when the record is located, the text
// row always (absent fields as empty strings). Keyed by record id,
// so replaying a record replaces rather than duplicates.
func (u *upserter) upsert(ctx context.Context, rec wiki.Record) error {
	if u.tx == nil {
		tx, err := u.db.BeginTx(ctx, nil)
		if err != nil {
			return UpsertError(rec.ID, err)
		}
		u.tx = tx
	}

	doc, err := u.enc.Encode(rec)
	if err != nil {
		return UpsertError(rec.ID, err)
	}
	if _, err = u.tx.ExecContext(
		ctx, upsertItemQ, rec.ID, doc,
	); err != nil {
		return UpsertError(rec.ID, err)
	}

	if rec.Location != nil {
		box := coord.FromPoint(
			rec.Location.Latitude, rec.Location.Longitude,
		)
		if _, err = u.tx.ExecContext(
			ctx, upsertGeoQ,
			rec.ID, box.MinX, box.MaxX, box.MinY, box.MaxY,
		); err != nil {
			return UpsertError(rec.ID, err)
		}
	}

	if _, err = u.tx.ExecContext(ctx, deleteTextQ, rec.ID); err != nil {
		return UpsertError(rec.ID, err)
	}
	if _, err = u.tx.ExecContext(
		ctx, insertTextQ,
		rec.ID,
		translit.NormalizeName(rec.Name),
		translit.JoinValues(rec.Claims[wiki.PropPlace]),
		translit.JoinValues(rec.Claims[wiki.PropDeity]),
		translit.JoinValues(rec.Claims[wiki.PropSect]),
		translit.JoinValues(rec.Claims[wiki.PropTypeOf]),
	); err != nil {
		return UpsertError(rec.ID, err)
	}

	u.pending++
	if u.pending >= u.batchSize {
		return u.flush(ctx)
	}
	return nil
}

// flush commits the open batch.
func (u *upserter) flush(_ context.Context) error {
	if u.tx == nil {
		return nil
	}
	err := u.tx.Commit()
	u.tx = nil
	u.pending = 0
	if err != nil {
		return UpsertError(0, err)
	}
	return nil
}

// discard rolls back whatever is left uncommitted. Safe to call
// after flush.
func (u *upserter) discard() {
	if u.tx != nil {
		_ = u.tx.Rollback()
		u.tx = nil
		u.pending = 0
	}
}
