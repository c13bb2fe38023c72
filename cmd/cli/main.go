package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/vltrn/datav/internal/buildinfo"
	"github.com/vltrn/datav/internal/client/cli"
	"github.com/vltrn/datav/internal/client/config"
	"github.com/vltrn/datav/internal/logging"
	"github.com/vltrn/datav/internal/observability"
)

func main() {
	os.Exit(run())
}

// run returns the exit code so that deferred cleanup completes before exit.
func run() int {

	buildinfo.PrintBuildData(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		log.Printf("config: %v", err)
		return 1
	}
	logger := logging.New(os.Stderr, cfg.LogLevel)

	shutdown, err := observability.Init(ctx, cfg.Tracing, buildinfo.Version(), os.Stderr)
	if err != nil {
		log.Printf("tracing: %v", err)
		return 1
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(sctx); err != nil {
			logger.Warn(sctx, "tracing shutdown", "error", err)
		}
	}()

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Printf("%v", err)
		return 1
	}

	app.Run(ctx)
	return 0
}
