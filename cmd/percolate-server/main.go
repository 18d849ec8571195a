// Command percolate-server serves the robustness simulation HTTP API.
package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/cfoyle/percolate/pkg/api"
	"github.com/cfoyle/percolate/pkg/config"
	"github.com/cfoyle/percolate/pkg/logging"
)

func main() {
	configPath := flag.String("config", "", "Path to YAML config file (defaults apply when omitted)")
	listenAddr := flag.String("listen", "", "Listen address override, e.g. :8080")
	flag.Parse()

	bootLogger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			bootLogger.Error("failed to load config", "path", *configPath, "error", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if *listenAddr != "" {
		cfg.ListenAddr = *listenAddr
	}

	logger := logging.NewJSONLogger(os.Stdout, logging.ParseLevel(cfg.LogLevel))

	server := api.NewServer(cfg, logger, nil)
	if err := server.Start(); err != nil {
		bootLogger.Error("server exited", "error", err)
		os.Exit(1)
	}
}
