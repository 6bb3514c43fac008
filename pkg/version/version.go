// Package version holds the CLI version string, overridden at build time
// via -ldflags.
package version

var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)
