// Package tirthdb holds application-wide metadata shared by the CLI
// and the HTTP server.
package tirthdb

var (
	// Version is set during build by ldflags.
	Version = "v0.1.0+dev"

	// Build is a timestamp of the build, set by ldflags.
	Build = "n/a"
)
