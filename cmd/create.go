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
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/gnames/gn"
	"github.com/spf13/cobra"
	"github.com/tirthatlas/tirthdb/internal/iodb"
	"github.com/tirthatlas/tirthdb/internal/ioschema"
	"github.com/tirthatlas/tirthdb/pkg/schema"
)

// getCreateCmd returns the create command.
// Extracted as a function to facilitate testing and dynamic
// command registration.
func getCreateCmd() *cobra.Command {
	var forceCreate bool

	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create the index schema",
		Long: `Create the TirthDB index schema in the configured SQLite file.

This command:
  1. Opens (or creates) the SQLite database
  2. Checks for existing tables and prompts for confirmation
  3. Creates the item, geolocation, text and vocab tables

The geolocation and text tables are rtree and fts5 virtual tables,
so the SQLite build must include both extensions.

Use --force to drop existing tables without confirmation.

Examples:
  tirthdb create
  tirthdb create --force
  tirthdb create -f`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreate(cmd, args, forceCreate)
		},
	}

	createCmd.Flags().BoolVarP(&forceCreate, "force", "f",
		false, "drop existing tables without confirmation")

	return createCmd
}

func runCreate(
	_ *cobra.Command,
	_ []string,
	force bool,
) error {
	ctx := context.Background()

	op := iodb.NewSqliteOperator()
	if err := op.Connect(ctx, &cfg.Database); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	defer op.Close()

	gn.Info("Using index at <em>%s</em>", cfg.Database.Path)

	hasTables, err := op.HasTables(ctx)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if hasTables {
		if !force {
			gn.Warn("\nWarning: the index already contains tables.")
			gn.Warn("Recreating the schema will drop ALL indexed data.")
			fmt.Print("\nDo you want to continue? (yes/no): ")

			reader := bufio.NewReader(os.Stdin)
			response, err := reader.ReadString('\n')
			if err != nil {
				gn.Warn("Failed to read user input")
				return err
			}

			response = strings.TrimSpace(
				strings.ToLower(response))
			if response != "yes" && response != "y" {
				gn.Info("Aborted. No changes made.")
				return nil
			}
		}

		gn.Info("Dropping existing index tables...")
		for _, table := range schema.TableNames() {
			_, err = op.DB().ExecContext(
				ctx, "DROP TABLE IF EXISTS "+table,
			)
			if err != nil {
				gn.PrintErrorMessage(err)
				return err
			}
		}
		gn.Info("All tables dropped")
	}

	sm := ioschema.NewManager(op)
	if err := sm.Create(ctx); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	gn.Info("\nIndex schema creation complete!")
	gn.Info("\nNext steps:")
	gn.Info("  - Run 'tirthdb ingest' to import records")
	gn.Info("  - Run 'tirthdb serve' to expose the search API")

	return nil
}
