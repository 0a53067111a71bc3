// Command linkpeek replays hover sessions against the link-preview extension.
package main

import (
	"runtime"

	"github.com/bnema/linkpeek/internal/cli/cmd"
	"github.com/bnema/linkpeek/internal/domain/build"
)

// Overridden with -ldflags "-X main.version=...".
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func main() {
	cmd.Execute(build.Info{
		Version:   version,
		Commit:    commit,
		BuildDate: buildDate,
		GoVersion: runtime.Version(),
	})
}
