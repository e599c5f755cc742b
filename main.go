package main

import (
	"os"

	"github.com/pydash/ares/internal/cli"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "1.0.0"

func main() {
	cmd := cli.NewRootCmd(version)
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
