package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
)

func main() {
	cfg, err := LoadConfig()
	if err != nil {
		// Config carries the log level, so failures here log at the default.
		NewLogger(os.Stdout, LevelInfo).Fatalf("could not load config: %v", err)
	}
	logger := NewLogger(os.Stdout, ParseLevel(cfg.LogLevel))
	logger.Debugf("config: port=%d log_level=%s cors_origin=%s", cfg.Port, cfg.LogLevel, cfg.CORSOrigin)
	logger.Debugf("build: version=%s commit=%s date=%s", Version, GitCommit, BuildDate)

	store := NewMemoryStore()
	handler := NewHandler(store, logger)

	mux := http.NewServeMux()
	mux.HandleFunc("/health", handler.healthHandler)
	mux.HandleFunc("/api/v1/items", handler.itemsHandler)
	mux.HandleFunc("/api/v1/items/", handler.itemHandler)

	chain := loggingMiddleware(logger)(corsMiddleware(cfg.CORSOrigin)(mux))

	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      chain,
		ReadTimeout:  cfg.ReadTimeout(),
		WriteTimeout: cfg.WriteTimeout(),
		IdleTimeout:  cfg.IdleTimeout(),
	}

	go func() {
		logger.Infof("server version %s is listening on %s", Version, server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("could not listen: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit
	logger.Infof("server is shutting down")

	ctxShutdown, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout())
	defer cancel()
	if err := server.Shutdown(ctxShutdown); err != nil {
		logger.Fatalf("server forced to shutdown: %v", err)
	}

	logger.Infof("server stopped")
}
