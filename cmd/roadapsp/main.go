// Command roadapsp computes all-pairs shortest paths over a road graph
// (a TMG file or a generated random graph) and answers distance queries.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/roadapsp/internal/config"
	"github.com/katalvlaran/roadapsp/internal/logging"
)

func main() {
	v, err := config.New(".", "cmd/roadapsp/config")
	if err != nil {
		log.Fatal(err)
	}
	cfg, err := config.Load(v)
	if err != nil {
		log.Fatal(err)
	}

	closer, err := logging.Init(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		log.Fatal(err)
	}
	defer closer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, os.Stdout); err != nil {
		log.Errorf("action: run | result: fail | error: %v", err)
		os.Exit(1)
	}
}
