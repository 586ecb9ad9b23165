// Command main is the entry point for the postboard server.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"postboard/internal/config"
	"postboard/internal/middleware"
	"postboard/internal/observability"
	"postboard/internal/server"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		middleware.Logger.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := middleware.ConfigureLogger(os.Stdout, cfg.Env, cfg.LogLevel)
	observability.Config.EnableRepoLogging = cfg.RepoLogging

	shutdownTracing, err := observability.InitTracing(observability.TracingConfig{
		ServiceName:    "postboard",
		ServiceVersion: "1.0.0",
		Environment:    cfg.Env,
		Enabled:        cfg.TracingEnabled,
		Exporter:       cfg.TracingExporter,
		OTLPEndpoint:   cfg.OTLPEndpoint,
		SamplerRatio:   cfg.TracingSampleRatio,
	})
	if err != nil {
		logger.Error("Failed to initialize tracing", "error", err)
		os.Exit(1)
	}

	// Create server with dependency injection
	srv, err := server.NewServer(cfg)
	if err != nil {
		logger.Error("Failed to create server", "error", err)
		os.Exit(1)
	}

	app := srv.NewApp()

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		logger.Info("Shutting down server...")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			logger.Error("Server shutdown error", "error", err)
		}
		if err := shutdownTracing(ctx); err != nil {
			logger.Error("Tracing shutdown error", "error", err)
		}
	}()

	logger.Info("Server starting", "port", cfg.Port, "env", cfg.Env, "db_driver", cfg.DBDriver)
	if err := app.Listen(":" + cfg.Port); err != nil {
		logger.Error("Server stopped", "error", err)
		os.Exit(1)
	}
}
