// Package version holds the symdoc build information shown by --version
// and in the page footer.
package version

import (
	"fmt"
	"runtime/debug"
)

// Version is set at build time:
// go build -ldflags "-X git.home.luguber.info/inful/symdoc/internal/version.Version=v0.3.0".
var Version = "unknown"

// BuildInfo contains additional build metadata.
var (
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// Resolved returns Version, falling back to the main module version recorded
// by the go tool for binaries installed with go install.
func Resolved() string {
	if Version != "unknown" && Version != "" {
		return Version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return Version
}

// String is the one-line description printed by symdoc --version.
func String() string {
	return fmt.Sprintf("symdoc %s (commit %s, built %s)", Resolved(), GitCommit, BuildTime)
}
