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

	"github.com/gnames/gn"
	"github.com/spf13/cobra"
	"github.com/tirthatlas/tirthdb/internal/iodb"
	"github.com/tirthatlas/tirthdb/internal/iovocab"
	"github.com/tirthatlas/tirthdb/pkg/errcode"
)

// getVocabCmd returns the vocab command.
// Extracted as a function to facilitate testing and dynamic
// command registration.
func getVocabCmd() *cobra.Command {
	var limit int

	vocabCmd := &cobra.Command{
		Use:   "vocab [word]",
		Short: "Rebuild or query the fuzzy-lookup vocabulary",
		Long: `Maintain the vocabulary behind "did you mean" lookups.

Without arguments the command derives frequency-ranked words from
the indexed text and replaces the vocabulary wholesale. With a word
argument it prints correction candidates instead; a trailing '*'
switches to prefix lookup.

Examples:
  tirthdb vocab
  tirthdb vocab adinath
  tirthdb vocab "pali*" --limit 5`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runVocab(args, limit)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	vocabCmd.Flags().IntVarP(
		&limit, "limit", "l", 10,
		"maximum number of correction candidates",
	)

	return vocabCmd
}

func runVocab(args []string, limit int) error {
	ctx := context.Background()

	op := iodb.NewSqliteOperator()
	if err := op.Connect(ctx, &cfg.Database); err != nil {
		return err
	}
	defer op.Close()

	hasTables, err := op.HasTables(ctx)
	if err != nil {
		return err
	}
	if !hasTables {
		return &gn.Error{
			Code: errcode.DBEmptyDatabaseError,
			Msg: `<err>The index has no tables.</err>
   Run <em>'tirthdb create'</em> and <em>'tirthdb ingest'</em> first.`,
			Err: errors.New("cannot use vocabulary of empty database"),
		}
	}

	vb := iovocab.New(cfg, op)

	if len(args) == 0 {
		gn.Info("Rebuilding vocabulary from the indexed text...")
		return vb.Rebuild(ctx)
	}

	word := args[0]
	res, err := vb.Correct(ctx, word, limit)
	if err != nil {
		return err
	}
	if len(res) == 0 {
		gn.Info("No candidates for <em>%s</em>.", word)
		return nil
	}
	for _, c := range res {
		gn.Info("%s (rank %d, distance %d)",
			c.Word, c.Rank, c.Distance)
	}
	return nil
}
