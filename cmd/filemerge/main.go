// filemerge - concatenate files sharing a suffix into one output file
package main

import (
	"os"

	"github.com/mazeserver/devtools/pkg/cli"
)

// Build-time variables set via ldflags
var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	cli.Version, cli.Commit, cli.BuildDate = Version, Commit, BuildDate
	return cli.Execute(cli.NewMergeCommand())
}
