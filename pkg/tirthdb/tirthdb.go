// Package tirthdb defines the lifecycle interfaces implemented by
// the impure internal/io* packages. Interfaces are accepted by
// consumers; concrete types are returned by constructors.
package tirthdb

import (
	"context"

	"github.com/tirthatlas/tirthdb/pkg/search"
	"github.com/tirthatlas/tirthdb/pkg/wiki"
)

// SchemaManager creates the index tables (item, geolocation, text,
// vocab). Creation is idempotent - safe to run multiple times.
type SchemaManager interface {
	// Create creates all index tables that do not exist yet.
	Create(ctx context.Context) error
}

// Ingestor drives the ingestion pipeline: it discovers source files,
// normalizes records and upserts the three index tables. All writes
// are idempotent upserts; re-running over the same or updated
// sources converges to the same state.
type Ingestor interface {
	// Ingest processes every *.jsonl file in the configured data
	// directory. Per-record and per-file failures are contained and
	// counted; only a failure to enumerate the directory is fatal.
	Ingest(ctx context.Context) error
}

// Searcher is the read-only query compositor over the persisted
// index.
type Searcher interface {
	// Search classifies the request (text/geo/combined/empty), runs
	// the matching query and returns record projections in rank
	// order. An empty classification yields zero records, not an
	// error.
	Search(ctx context.Context, p *search.Params) ([]wiki.Record, error)
}

// Correction is one fuzzy-lookup candidate.
type Correction struct {
	// Word is the vocabulary term.
	Word string `json:"word"`

	// Rank is the term's frequency weight.
	Rank int `json:"rank"`

	// Distance is the edit distance from the queried word; 0 for
	// prefix lookups.
	Distance int `json:"distance"`
}

// VocabBuilder maintains the auxiliary fuzzy-correction vocabulary.
// It is separable from the live search path.
type VocabBuilder interface {
	// Rebuild derives frequency-ranked terms from the indexed text
	// and replaces the vocabulary wholesale.
	Rebuild(ctx context.Context) error

	// Correct returns candidate words for a possibly misspelled
	// word, best first. A trailing '*' switches to prefix lookup.
	Correct(ctx context.Context, word string, limit int) ([]Correction, error)
}
