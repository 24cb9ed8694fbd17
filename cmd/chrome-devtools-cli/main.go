package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/louisbranch/chrome-devtools-cli/internal/cli"
	"github.com/louisbranch/chrome-devtools-cli/internal/platform/config"
)

// Set by the build process.
var (
	Version   = ""
	Commit    = ""
	BuildTime = ""
)

// main runs one Chrome DevTools MCP tool and exits 1 on any failure.
func main() {
	log.SetPrefix("[chrome-devtools-cli] ")
	cli.SetVersionInfo(Version, Commit, BuildTime)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := cli.Execute(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	if err != nil {
		config.Exitf("%s", cli.ErrorLine(err))
	}
}
