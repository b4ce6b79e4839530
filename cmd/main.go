// polymove is the offer aggregation service.
//
// Composes the offer catalog and the city-intel news/scoring service into a
// single enriched view:
//   - GET /offers                            enriched offers under optional filters
//   - GET /students/{id}/recommended-offers  ranked offers for one student
//
// plus student CRUD against PostgreSQL and a thin news passthrough.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/axelfrache/polymove/internal/aggregator"
	"github.com/axelfrache/polymove/internal/config"
	"github.com/axelfrache/polymove/internal/db"
	"github.com/axelfrache/polymove/internal/health"
	"github.com/axelfrache/polymove/internal/student"
	"github.com/axelfrache/polymove/internal/upstream"
	"github.com/axelfrache/polymove/internal/web"
)

const version = "1.0.0"

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("config error", "err", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ── PostgreSQL ───────────────────────────────────────────────────────────
	slog.Info("connecting to PostgreSQL")
	pool, err := db.NewPostgresPool(ctx, cfg.DatabaseURL)
	if err != nil {
		slog.Error("postgres", "err", err)
		os.Exit(1)
	}
	defer pool.Close()

	// ── Redis ────────────────────────────────────────────────────────────────
	slog.Info("connecting to Redis")
	rdb, err := db.NewRedisClient(ctx, cfg.RedisURL)
	if err != nil {
		slog.Error("redis", "err", err)
		os.Exit(1)
	}
	defer rdb.Close()

	// ── Upstream clients ─────────────────────────────────────────────────────
	timeout := time.Duration(cfg.UpstreamTimeout) * time.Millisecond

	catalog := upstream.NewCatalogClient(cfg.CatalogBaseURL, timeout)

	slog.Info("dialing city-intel", "addr", cfg.CityIntelAddr)
	cityIntel, err := upstream.NewCityIntelClient(cfg.CityIntelAddr, timeout)
	if err != nil {
		slog.Error("city-intel", "err", err)
		os.Exit(1)
	}
	defer cityIntel.Close()

	// ── Services ─────────────────────────────────────────────────────────────
	students := student.NewRepository(pool)
	agg := aggregator.NewService(catalog, cityIntel, students, rdb, cfg.NewsPerCity, cfg.RecommendPool)

	prober := health.New(map[string]health.Check{
		"catalog":   catalog.Ping,
		"cityintel": cityIntel.Ping,
	}, cfg.ProbeIntervalMin)
	if err := prober.Start(ctx); err != nil {
		slog.Error("prober", "err", err)
		os.Exit(1)
	}
	defer prober.Stop()

	// ── HTTP server ──────────────────────────────────────────────────────────
	mux := http.NewServeMux()
	web.NewHandler(agg, students, cityIntel, prober).RegisterRoutes(mux)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("polymove listening", "version", version, "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("http server", "err", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down")
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("forced shutdown", "err", err)
	}
}
