// Package iovocab maintains the fuzzy-lookup vocabulary: a
// frequency-ranked word list derived from the indexed text. The
// vocabulary is auxiliary to the search path and is rebuilt
// wholesale, so it can lag the index without harm.
package iovocab

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"time"
	"unicode"

	"github.com/agext/levenshtein"
	"github.com/cheggaaa/pb/v3"
	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"

	"github.com/tirthatlas/tirthdb/pkg/config"
	"github.com/tirthatlas/tirthdb/pkg/db"
	"github.com/tirthatlas/tirthdb/pkg/tirthdb"
	"github.com/tirthatlas/tirthdb/pkg/translit"
)

// Words shorter than this carry no correction signal.
const minWordLen = 2

// Candidates further than this edit distance are never offered.
const maxDistance = 2

type builder struct {
	cfg      *config.Config
	operator db.Operator
}

// New creates a VocabBuilder over an already connected database.
func New(cfg *config.Config, op db.Operator) tirthdb.VocabBuilder {
	return &builder{cfg: cfg, operator: op}
}

// Rebuild derives the word list from the text table and replaces
// the vocabulary in one transaction.
func (b *builder) Rebuild(ctx context.Context) error {
	if b.operator.DB() == nil {
		return NotConnectedError()
	}
	start := time.Now()

	freq, err := b.wordFrequencies(ctx)
	if err != nil {
		return err
	}

	if err = b.replaceVocab(ctx, freq); err != nil {
		return err
	}

	dur := gnfmt.TimeString(time.Since(start).Seconds())
	slog.Info("Rebuilt vocabulary",
		"words", len(freq), "duration", dur,
	)
	gn.Info("Vocabulary rebuilt: %s words in %s.",
		humanize.Comma(int64(len(freq))), dur,
	)
	return nil
}

// wordFrequencies streams the indexed text and counts every word.
func (b *builder) wordFrequencies(
	ctx context.Context,
) (map[string]int, error) {
	q := "SELECT name, place, deity, sect, typeof FROM text"
	rows, err := b.operator.DB().QueryContext(ctx, q)
	if err != nil {
		return nil, RebuildError(err)
	}
	defer rows.Close()

	freq := make(map[string]int)
	for rows.Next() {
		var name, place, deity, sect, typeof string
		err = rows.Scan(&name, &place, &deity, &sect, &typeof)
		if err != nil {
			return nil, RebuildError(err)
		}
		for _, field := range []string{name, place, deity, sect, typeof} {
			for _, w := range tokenize(field) {
				freq[w]++
			}
		}
	}
	if err = rows.Err(); err != nil {
		return nil, RebuildError(err)
	}
	return freq, nil
}

// replaceVocab swaps the whole vocabulary inside one transaction, so
// readers never see a partially rebuilt word list.
func (b *builder) replaceVocab(
	ctx context.Context,
	freq map[string]int,
) error {
	tx, err := b.operator.DB().BeginTx(ctx, nil)
	if err != nil {
		return RebuildError(err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, "DELETE FROM vocab"); err != nil {
		return RebuildError(err)
	}

	stmt, err := tx.PrepareContext(ctx,
		"INSERT INTO vocab (word, rank, langid) VALUES (?, ?, 0)",
	)
	if err != nil {
		return RebuildError(err)
	}
	defer stmt.Close()

	bar := pb.Full.Start(len(freq))
	bar.Set("prefix", "Vocabulary: ")
	bar.Set(pb.CleanOnFinish, true)
	defer bar.Finish()

	for word, rank := range freq {
		if _, err = stmt.ExecContext(ctx, word, rank); err != nil {
			return RebuildError(err)
		}
		bar.Increment()
	}

	if err = tx.Commit(); err != nil {
		return RebuildError(err)
	}
	return nil
}

// Correct returns up to limit candidates for a possibly misspelled
// word, best first. A trailing '*' switches to prefix lookup.
func (b *builder) Correct(
	ctx context.Context,
	word string,
	limit int,
) ([]tirthdb.Correction, error) {
	if b.operator.DB() == nil {
		return nil, NotConnectedError()
	}
	if limit <= 0 {
		limit = 10
	}

	word = translit.Normalize(strings.TrimSpace(word))
	if prefix, ok := strings.CutSuffix(word, "*"); ok {
		return b.byPrefix(ctx, prefix, limit)
	}
	return b.byDistance(ctx, word, limit)
}

func (b *builder) byPrefix(
	ctx context.Context,
	prefix string,
	limit int,
) ([]tirthdb.Correction, error) {
	q := `
SELECT word, rank FROM vocab
 WHERE word LIKE ? || '%'
 ORDER BY rank DESC, word
 LIMIT ?`
	rows, err := b.operator.DB().QueryContext(ctx, q, prefix, limit)
	if err != nil {
		return nil, LookupError(prefix, err)
	}
	defer rows.Close()

	var res []tirthdb.Correction
	for rows.Next() {
		var c tirthdb.Correction
		if err = rows.Scan(&c.Word, &c.Rank); err != nil {
			return nil, LookupError(prefix, err)
		}
		res = append(res, c)
	}
	if err = rows.Err(); err != nil {
		return nil, LookupError(prefix, err)
	}
	return res, nil
}

// byDistance scans the whole vocabulary and ranks by edit distance,
// then frequency. The vocabulary is small enough that a full scan
// beats maintaining a trigram side table.
func (b *builder) byDistance(
	ctx context.Context,
	word string,
	limit int,
) ([]tirthdb.Correction, error) {
	rows, err := b.operator.DB().QueryContext(
		ctx, "SELECT word, rank FROM vocab",
	)
	if err != nil {
		return nil, LookupError(word, err)
	}
	defer rows.Close()

	var res []tirthdb.Correction
	for rows.Next() {
		var c tirthdb.Correction
		if err = rows.Scan(&c.Word, &c.Rank); err != nil {
			return nil, LookupError(word, err)
		}
		c.Distance = levenshtein.Distance(word, c.Word, nil)
		if c.Distance <= maxDistance {
			res = append(res, c)
		}
	}
	if err = rows.Err(); err != nil {
		return nil, LookupError(word, err)
	}

	sort.Slice(res, func(i, j int) bool {
		if res[i].Distance != res[j].Distance {
			return res[i].Distance < res[j].Distance
		}
		if res[i].Rank != res[j].Rank {
			return res[i].Rank > res[j].Rank
		}
		return res[i].Word < res[j].Word
	})
	if len(res) > limit {
		res = res[:limit]
	}
	return res, nil
}

// tokenize splits a canonicalized field into vocabulary words.
func tokenize(s string) []string {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	var res []string
	for _, f := range fields {
		if len(f) >= minWordLen {
			res = append(res, f)
		}
	}
	return res
}
