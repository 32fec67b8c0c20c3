package ioingest

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/tirthatlas/tirthdb/pkg/wiki"
)

// Source lines can carry items with hundreds of statements; the
// scanner buffer is sized accordingly.
const maxLineSize = 16 * 1024 * 1024

// progressEvery controls how often per-file progress is logged.
const progressEvery = 100

// sourceFiles lists all *.jsonl files in dir, sorted by name.
func sourceFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".jsonl") {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}
	sort.Strings(files)
	return files, nil
}

// processFile ingests one source file line by line. All failures are
// contained: a bad line skips that line, an unreadable file or a
// storage failure skips the file. Nothing here aborts the run.
func (ing *ingestor) processFile(ctx context.Context, path string) {
	name := filepath.Base(path)

	f, err := os.Open(path)
	if err != nil {
		slog.Error("Cannot read source file, skipping",
			"file", name, "error", err)
		ing.stats.skippedFiles.Add(1)
		return
	}
	defer f.Close()

	up := newUpserter(ing.operator.DB(), ing.cfg.Database.BatchSize)
	defer up.discard()

	sc := newLineScanner(f)
	var fileRecords int64

	for sc.Scan() {
		if ctx.Err() != nil {
			slog.Error("File processing cancelled",
				"file", name, "error", ctx.Err())
			ing.stats.skippedFiles.Add(1)
			return
		}

		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 {
			continue
		}

		item, err := wiki.Parse(line)
		if err != nil {
			ing.stats.parseFails.Add(1)
			slog.Error("Cannot parse source line",
				"file", name,
				"error", err,
				"line", truncate(line, 200),
			)
			continue
		}

		rec, err := item.Shrink()
		if err != nil {
			ing.stats.normFails.Add(1)
			slog.Error("Cannot normalize record",
				"file", name,
				"error", err,
				"line", truncate(line, 200),
			)
			continue
		}

		if err = up.upsert(ctx, rec); err != nil {
			slog.Error("Storage failure, skipping rest of file",
				"file", name, "error", err)
			ing.stats.skippedFiles.Add(1)
			return
		}

		ing.stats.records.Add(1)
		if rec.Location != nil {
			ing.stats.located.Add(1)
		}

		fileRecords++
		if fileRecords%progressEvery == 0 {
			slog.Info("Ingest progress",
				"file", name, "records", fileRecords)
		}
	}

	if err = sc.Err(); err != nil {
		slog.Error("Cannot read source file, skipping",
			"file", name, "error", err)
		ing.stats.skippedFiles.Add(1)
		return
	}

	if err = up.flush(ctx); err != nil {
		slog.Error("Cannot commit final batch, skipping file",
			"file", name, "error", err)
		ing.stats.skippedFiles.Add(1)
		return
	}

	slog.Info("Completed file", "file", name, "records", fileRecords)
}

// newLineScanner wraps r with a scanner sized for large source
// lines.
func newLineScanner(r io.Reader) *bufio.Scanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return sc
}

// truncate limits an offending line to n bytes for logging.
func truncate(line []byte, n int) string {
	if len(line) <= n {
		return string(line)
	}
	return string(line[:n]) + "..."
}
