package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"qdrift-go/internal/config"
	"qdrift-go/internal/controller"
	"qdrift-go/internal/handler"
	"qdrift-go/internal/sim"
)

// runServe exposes the analyzer over HTTP.
func runServe(args []string) int {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	port := fs.Int("port", 0, "Server port (overrides config)")
	configPath := fs.String("config", "", "Path to YAML configuration file")
	verbose := fs.Bool("verbose", false, "Enable debug logging")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	level := zapcore.InfoLevel
	if *verbose {
		level = zapcore.DebugLevel
	}
	logger, err := newLogger(level)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to initialize logger:", err)
		return 1
	}
	defer func() { _ = logger.Sync() }()

	cfg := config.Default()
	if *configPath != "" {
		cfg, err = config.LoadConfig(*configPath)
		if err != nil {
			logger.Error("Failed to load configuration", zap.Error(err))
			return 1
		}
	}
	if *port != 0 {
		cfg.App.Port = *port
	}

	runner := sim.NewRunner(logger)
	analyze := controller.NewAnalyzeController(runner, logger)
	router := handler.SetupRouter(analyze, logger)

	logger.Info("Starting server", zap.Int("port", cfg.App.Port))
	if err := http.ListenAndServe(fmt.Sprintf(":%d", cfg.App.Port), router); err != nil {
		logger.Error("Failed to start server", zap.Error(err))
		return 1
	}
	return 0
}
