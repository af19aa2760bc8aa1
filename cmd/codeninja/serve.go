// Copyright (c) 2026 CodeNinjaHub. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/codeninjahub/codeninjahub/internal/api"
	"github.com/codeninjahub/codeninjahub/internal/core/language"
	"github.com/codeninjahub/codeninjahub/internal/platform/constants"
	redisstore "github.com/codeninjahub/codeninjahub/internal/platform/redis"
	"github.com/codeninjahub/codeninjahub/internal/site"
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:           "serve",
		Short:         "Run the HTTP server",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runServe,
	}
}

// runServe is the server entry point.
//
// # Startup Sequence
//
//  1. Load configuration and initialize the structured logger.
//  2. Build the catalog service and page renderer.
//  3. Select the page cache (Redis when REDIS_URL is set, memory otherwise).
//  4. Warm the cache with every page.
//  5. Wire HTTP handlers and serve until SIGINT/SIGTERM.
func runServe(cmd *cobra.Command, _ []string) error {
	// ── 1. Configuration & Logger ─────────────────────────────────────────
	cfg, log, err := loadRuntime()
	if err != nil {
		return err
	}
	log.Info("[CodeNinjaHub] service_initializing")

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// ── 2. Catalog & Renderer ─────────────────────────────────────────────
	service := newCatalogService(log)
	renderer, err := newRenderer(cfg)
	if err != nil {
		return startupError(log, err, "build renderer")
	}

	// ── 3. Page Cache ─────────────────────────────────────────────────────
	var cache site.PageCache = site.NewMemoryCache(cfg.PageCacheTTL)
	if cfg.RedisURL != "" {
		startupCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
		rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
		cancel()
		if err != nil {
			return startupError(log, err, "connect to redis")
		}
		defer func() {
			log.Info("closing redis client")
			if cerr := rdb.Close(); cerr != nil {
				log.Error("redis close error", slog.Any("error", cerr))
			}
		}()
		cache = site.NewRedisCache(rdb, cfg.PageCacheTTL)
	}

	// ── 4. Warm-up ────────────────────────────────────────────────────────
	siteHandler := site.NewHandler(service, renderer, cache, log)
	if err := siteHandler.Warm(ctx); err != nil {
		return startupError(log, err, "warm page cache")
	}

	// ── 5. HTTP Server ────────────────────────────────────────────────────
	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CacheName:  cache.Name(),
		CheckCache: cache.Ping,
	}, log)

	server := api.NewServer(ctx, cfg, log, api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Languages: language.NewHandler(service),
		Site:      siteHandler,
	})

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case <-ctx.Done():
		log.Info("shutdown signal received")
	case err := <-serverErr:
		log.Error("server startup error", slog.Any("error", err))
		return err
	}

	// Give in-flight requests enough time to complete.
	shutdownTimeout := constants.ShutdownTimeout
	log.Info("shutting down server", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownTimeout); err != nil {
		log.Error("shutdown error", slog.Any("error", err))
		return err
	}

	log.Info("server stopped cleanly")
	return nil
}

// startupError logs a structured startup failure and returns it for the exit code.
func startupError(log *slog.Logger, err error, context string) error {
	log.Error("startup failure",
		slog.String("context", context),
		slog.Any("error", err),
	)
	return fmt.Errorf("%s: %w", context, err)
}
