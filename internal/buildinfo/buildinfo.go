// Package buildinfo holds release metadata injected at link time.
package buildinfo

// Set via GoReleaser ldflags for release binaries; empty for dev builds,
// where runtime/debug build info fills the gaps.
var (
	Version = ""
	Commit  = ""
	Date    = ""
)
