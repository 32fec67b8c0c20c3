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
	"github.com/tirthatlas/tirthdb/internal/iosearch"
	"github.com/tirthatlas/tirthdb/internal/ioweb"
	"github.com/tirthatlas/tirthdb/pkg/config"
	"github.com/tirthatlas/tirthdb/pkg/errcode"
)

// getServeCmd returns the serve command.
// Extracted as a function to facilitate testing and dynamic
// command registration.
func getServeCmd() *cobra.Command {
	var (
		host string
		port int
	)

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the search API over HTTP",
		Long: `Expose the search compositor on GET /api/search.

The server is read-only: it classifies each request as text,
geographic or combined, runs the composed query against the index
and returns record projections. GET /health reports liveness.

The server shuts down gracefully on SIGINT or SIGTERM.

Examples:
  tirthdb serve
  tirthdb serve --port 8080
  tirthdb serve -p 8080`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runServe(cmd, host, port)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	serveCmd.Flags().StringVar(
		&host, "host", "", "listen address (empty = all interfaces)",
	)
	serveCmd.Flags().IntVarP(
		&port, "port", "p", 0, "HTTP listen port",
	)

	return serveCmd
}

func runServe(cmd *cobra.Command, host string, port int) error {
	ctx, stop := signal.NotifyContext(
		context.Background(), syscall.SIGINT, syscall.SIGTERM,
	)
	defer stop()

	var serveOpts []config.Option
	if cmd.Flags().Changed("host") {
		serveOpts = append(serveOpts, config.OptServerHost(host))
	}
	if cmd.Flags().Changed("port") {
		serveOpts = append(serveOpts, config.OptServerPort(port))
	}
	if len(serveOpts) > 0 {
		cfg.Update(serveOpts)
	}

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
			Err: errors.New("cannot serve an empty database"),
		}
	}

	searcher := iosearch.New(cfg, op)
	srv := ioweb.New(cfg, searcher)

	gn.Info("Serving the search API on <em>%s</em>",
		cfg.Server.Addr())
	gn.Info("Press Ctrl-C to stop.")

	return srv.Run(ctx)
}
