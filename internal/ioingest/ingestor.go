// Package ioingest implements the ingestion pipeline: it discovers
// newline-delimited JSON source files, normalizes each record and
// upserts the item, geolocation and text tables. This is an impure
// I/O package; the normalization itself lives in pkg/wiki.
package ioingest

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"golang.org/x/sync/errgroup"

	"github.com/tirthatlas/tirthdb/pkg/config"
	"github.com/tirthatlas/tirthdb/pkg/db"
	"github.com/tirthatlas/tirthdb/pkg/tirthdb"
)

// stats aggregates counters across concurrently processed files.
type stats struct {
	records      atomic.Int64
	located      atomic.Int64
	parseFails   atomic.Int64
	normFails    atomic.Int64
	skippedFiles atomic.Int64
}

// ingestor implements the Ingestor interface.
type ingestor struct {
	cfg      *config.Config
	operator db.Operator
	stats    stats
}

// New creates a new Ingestor.
func New(cfg *config.Config, op db.Operator) tirthdb.Ingestor {
	return &ingestor{cfg: cfg, operator: op}
}

// Ingest processes every *.jsonl file in the configured data
// directory. Files are independent and run concurrently with bounded
// parallelism; every write is an idempotent upsert, so neither file
// order nor line order affects the final state.
//
// Failure policy: malformed lines and unusable records are counted
// and skipped, unreadable files are skipped, and only the inability
// to enumerate the data directory aborts the run.
func (ing *ingestor) Ingest(ctx context.Context) error {
	if ing.operator.DB() == nil {
		return NotConnectedError()
	}

	startTime := time.Now()
	dataDir := ing.cfg.Ingest.DataDir

	files, err := sourceFiles(dataDir)
	if err != nil {
		return DirListError(dataDir, err)
	}

	slog.Info("Starting ingestion",
		"data_dir", dataDir,
		"files", len(files),
		"jobs", ing.cfg.JobsNumber,
	)
	gn.Info("Found <em>%d</em> source files in <em>%s</em>",
		len(files), dataDir)

	if len(files) == 0 {
		gn.Warn("Nothing to ingest")
		return nil
	}

	bar := pb.Full.Start(len(files))
	bar.Set("prefix", "files ")
	bar.Set(pb.CleanOnFinish, true)

	fileTimeout := time.Duration(ing.cfg.Ingest.FileTimeout) * time.Second

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(ing.cfg.JobsNumber)
	for _, file := range files {
		g.Go(func() error {
			defer bar.Increment()

			fctx, cancel := context.WithTimeout(gctx, fileTimeout)
			defer cancel()

			ing.processFile(fctx, file)

			// Only cancellation of the whole run propagates.
			return gctx.Err()
		})
	}

	err = g.Wait()
	bar.Finish()
	if err != nil {
		return CancelledError(err)
	}

	ing.report(len(files), startTime)
	return nil
}

func (ing *ingestor) report(fileCount int, startTime time.Time) {
	records := ing.stats.records.Load()
	failures := ing.stats.parseFails.Load() + ing.stats.normFails.Load()
	duration := time.Since(startTime)

	slog.Info("Ingestion complete",
		"files", fileCount,
		"files_skipped", ing.stats.skippedFiles.Load(),
		"records", records,
		"located", ing.stats.located.Load(),
		"parse_failures", ing.stats.parseFails.Load(),
		"normalization_failures", ing.stats.normFails.Load(),
		"duration", gnfmt.TimeString(duration.Seconds()),
	)

	gn.Info(`Ingestion complete
Records: <em>%s</em>, with location: <em>%s</em>, failed: <em>%s</em>
Elapsed time: <em>%s</em>
`,
		humanize.Comma(records),
		humanize.Comma(ing.stats.located.Load()),
		humanize.Comma(failures),
		gnfmt.TimeString(duration.Seconds()),
	)
}
