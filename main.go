package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.driftline.io/pipeline/cli"
	"go.driftline.io/pipeline/config"
	"go.driftline.io/pipeline/utils/log"
)

// version is injected during build by ldflags.
var version string

func main() {
	if version == "" {
		version = "dev"
	}

	logger, err := log.New(log.Options{})
	if err != nil {
		fmt.Fprintf(os.Stderr, "driftline: failed to build the logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync()
	}()

	cfg, err := config.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "driftline: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	provider := &cli.Provider{Logger: logger, Cfg: cfg}
	if !cli.Execute(ctx, provider) {
		stop()
		os.Exit(1)
	}
}
