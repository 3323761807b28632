package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rogerio-castellano/inventory-form/internal/config"
	"github.com/rogerio-castellano/inventory-form/internal/form"
	api "github.com/rogerio-castellano/inventory-form/internal/http"
	"github.com/rogerio-castellano/inventory-form/internal/http/handlers"
	rl "github.com/rogerio-castellano/inventory-form/internal/http/rate_limiter"
	"github.com/rogerio-castellano/inventory-form/internal/logger"
	"github.com/rogerio-castellano/inventory-form/internal/metrics"
	"golang.org/x/sync/errgroup"
)

// @title Inventory Form API
// @version 1.0
// @description Product form screen: create, edit, search and delete inventory items.
// @host localhost:8080
// @BasePath /
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		log.Printf("application run failed: %v", err)
		os.Exit(1)
	}
	log.Println("application stopped gracefully")
}

func run(ctx context.Context) error {
	cfg, err := config.Load(config.PathFromEnv())
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := logger.New(os.Stdout, cfg.Log.Level)
	slog.SetDefault(logger)
	logger.Info("configuration loaded", slog.String("config", cfg.String()))

	store, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeStore(); err != nil {
			logger.Error("failed to close store", slog.Any("error", err))
		}
	}()
	logger.Info("store opened", slog.String("driver", cfg.Store.Driver))

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	storeCollectors, err := metrics.NewStoreCollectors(reg)
	if err != nil {
		return fmt.Errorf("failed to register store metrics: %w", err)
	}
	instrumented := metrics.NewInstrumentedRepository(store, storeCollectors)

	controller := form.NewController(instrumented, logger)
	if err := controller.Refresh(ctx); err != nil {
		// the screen still opens with an empty list
		logger.Warn("initial product load failed", slog.Any("error", err))
	}

	limiter := rl.New(cfg.HTTP.RateLimit, cfg.HTTP.RateBurst)
	h := handlers.NewHandlers(controller, instrumented, logger)
	router := api.NewRouter(h, limiter, logger, promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))

	httpServer := &http.Server{
		Addr:         cfg.HTTP.Addr,
		Handler:      router,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("HTTP server listening", slog.String("addr", httpServer.Addr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server failed: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		logger.Info("shutting down HTTP server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	})
	g.Go(func() error {
		return limiter.StartCleanupLoop(gCtx, time.Minute, 5*time.Minute)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("errgroup encountered an error: %w", err)
	}
	return nil
}
