// wsprobe - WebSocket test client for the maze game server
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
	cli.Version, cli.Commit, cli.BuildDate = Version, Commit, BuildDate
	os.Exit(cli.Execute(cli.NewProbeCommand()))
}
