// Command vibepad is a Markdown and JSON scratchpad for the terminal.
package main

import (
	"fmt"
	"os"

	"github.com/custodia-labs/vibepad/internal/adapters/driving/cli"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cli.SetVersion(version)
	cli.SetBootstrap(bootstrap)

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
