// Package version holds build information stamped in via -ldflags.
package version

import "fmt"

// Set at build time with -ldflags "-X github.com/eduardolat/shortid/internal/version.Version=..."
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// String returns a one-line description of the build
func String() string {
	return fmt.Sprintf("shortid/%s (commit %s, built %s)", Version, Commit, Date)
}
