// Package version holds build information for weekly.
package version

// Set via -ldflags "-X github.com/tessro/weekly/internal/version.Version=...".
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)
