package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/adrianliechti/voicegate/config"
	"github.com/adrianliechti/voicegate/pkg/otel"
	"github.com/adrianliechti/voicegate/server"

	"github.com/joho/godotenv"
)

var version = "dev"

func main() {
	godotenv.Load()

	path := flag.String("config", "config.yaml", "configuration file")
	flag.Parse()

	if err := otel.Setup("voicegate", version); err != nil {
		slog.Error("telemetry setup failed", "error", err)
		os.Exit(1)
	}

	cfg, err := config.Parse(*path)

	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	s, err := server.New(cfg)

	if err != nil {
		slog.Error("server setup failed", "error", err)
		os.Exit(1)
	}

	slog.Info("starting server", "address", cfg.Address)

	if err := s.ListenAndServe(); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
