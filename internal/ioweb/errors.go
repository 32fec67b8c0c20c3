package ioweb

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/tirthatlas/tirthdb/pkg/errcode"
)

// StartError creates an error for a server that cannot listen.
func StartError(addr string, err error) error {
	msg := `Cannot start HTTP server on <em>%s</em>

<em>How to fix:</em>
  1. Check nothing else is listening on the port
  2. Change the port with --port (or server.port)`

	return &gn.Error{
		Code: errcode.WebStartError,
		Msg:  msg,
		Vars: []any{addr},
		Err:  fmt.Errorf("cannot start HTTP server on %s: %w", addr, err),
	}
}

// ShutdownError creates an error for a shutdown that did not drain
// in time.
func ShutdownError(err error) error {
	return &gn.Error{
		Code: errcode.WebShutdownError,
		Msg:  "HTTP server shutdown did not complete cleanly",
		Err:  fmt.Errorf("http server shutdown: %w", err),
	}
}
