/*
Copyright © 2025 TirthAtlas authors

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"github.com/gnames/gn"
	"github.com/spf13/cobra"
	"github.com/tirthatlas/tirthdb/internal/iodb"
	"github.com/tirthatlas/tirthdb/internal/ioingest"
	"github.com/tirthatlas/tirthdb/pkg/config"
	"github.com/tirthatlas/tirthdb/pkg/errcode"
)

// getIngestCmd returns the ingest command.
// Extracted as a function to facilitate testing and dynamic
// command registration.
func getIngestCmd() *cobra.Command {
	var dataDir string

	ingestCmd := &cobra.Command{
		Use:   "ingest",
		Short: "Ingest source records into the index",
		Long: `Normalize knowledge-base records and upsert them into the index.

This command:
  1. Discovers *.jsonl files in the data directory
  2. Processes files concurrently, one record per line
  3. Shrinks each record to its searchable projection
  4. Upserts the item, geolocation and text tables

All writes are keyed by record id, so re-running the command over
the same or updated sources converges to the same index. Records
that cannot be parsed or normalized are counted and skipped; they
never abort the run.

Examples:
  tirthdb ingest
  tirthdb ingest --data-dir ./atlas-data/wiki
  tirthdb ingest -d ./atlas-data/wiki`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runIngest(cmd, dataDir)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	ingestCmd.Flags().StringVarP(
		&dataDir, "data-dir", "d", "",
		"directory with *.jsonl source files",
	)

	return ingestCmd
}

func runIngest(cmd *cobra.Command, dataDir string) error {
	ctx, stop := signal.NotifyContext(
		context.Background(), syscall.SIGINT, syscall.SIGTERM,
	)
	defer stop()

	if cmd.Flags().Changed("data-dir") {
		cfg.Update([]config.Option{config.OptIngestDataDir(dataDir)})
	}

	op := iodb.NewSqliteOperator()
	if err := op.Connect(ctx, &cfg.Database); err != nil {
		return err
	}
	defer op.Close()

	gn.Info("Using index at <em>%s</em>", cfg.Database.Path)

	hasTables, err := op.HasTables(ctx)
	if err != nil {
		return err
	}
	if !hasTables {
		return &gn.Error{
			Code: errcode.DBEmptyDatabaseError,
			Msg: `<err>The index has no tables.</err>
   Run <em>'tirthdb create'</em> first to initialize the schema.`,
			Err: errors.New("cannot ingest into empty database"),
		}
	}

	ing := ioingest.New(cfg, op)

	gn.Info("Ingesting records from <em>%s</em>...", cfg.Ingest.DataDir)
	if err := ing.Ingest(ctx); err != nil {
		return err
	}

	gn.Info(`Next steps:
	 - Run '<em>tirthdb vocab</em>' to refresh the fuzzy vocabulary
	 - Run '<em>tirthdb serve</em>' to expose the search API
`)

	return nil
}
