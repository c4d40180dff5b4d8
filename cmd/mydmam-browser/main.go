// MyDMAM browser - page through and search a MyDMAM file index from a terminal
package main

import (
	"os"

	"github.com/mexm/mydmam-browser/internal/cli"
	"github.com/mexm/mydmam-browser/internal/version"
)

// Version information, overridden by ldflags in release builds.
var (
	Version   = "v0.3.0-dev"
	BuildTime = "unknown"
)

func main() {
	version.Version = Version
	version.BuildTime = BuildTime

	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
