package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"resultsvc/internal/config"
	"resultsvc/internal/database"
	"resultsvc/internal/handler"
	"resultsvc/internal/mw"
	"resultsvc/internal/service"
	"resultsvc/internal/web"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	level, err := parseLevel(cfg.LogLevel)
	if err != nil {
		slog.Error("invalid log level", "error", err)
		os.Exit(1)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})))

	db, err := database.NewDB(ctx, cfg.Database.Driver, cfg.Database.DSN)
	if err != nil {
		slog.Error("error connecting to the database", "driver", cfg.Database.Driver, "error", err)
		os.Exit(1)
	}
	defer database.CloseDB(db)
	slog.Info("connected to database", "driver", db.DriverName())

	if err := database.InitSchema(ctx, db); err != nil {
		slog.Error("failed to init DB schema", "error", err)
		os.Exit(1)
	}

	public, embedded := web.Public(cfg.StaticDir)
	if embedded {
		slog.Warn("static directory not found, serving built-in pages", "dir", cfg.StaticDir)
	}

	router := handler.NewRouter(handler.RouterConfig{
		Results:        service.NewResultService(db),
		Public:         public,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		Metrics:        mw.NewMetrics(),
	})

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info(fmt.Sprintf("Server is running on http://localhost:%d", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server failed", "error", err)
			quit <- syscall.SIGTERM
		}
	}()

	<-quit
	slog.Info("shutting down...")

	ctxShut, cancelShut := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShut()

	if err := srv.Shutdown(ctxShut); err != nil {
		slog.Error("server shutdown failed", "error", err)
	}

	slog.Info("server stopped")
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log level: %s", s)
}
