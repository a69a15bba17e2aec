// Package main boots the Product Aggregator Simulator HTTP server.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/fairyhunter13/product-aggregator-simulator/internal/aggregate"
	"github.com/fairyhunter13/product-aggregator-simulator/internal/catalog"
	"github.com/fairyhunter13/product-aggregator-simulator/internal/config"
	httpapi "github.com/fairyhunter13/product-aggregator-simulator/internal/http"
	"github.com/fairyhunter13/product-aggregator-simulator/internal/obs"
	"github.com/fairyhunter13/product-aggregator-simulator/internal/remote"
)

func main() {
	cfg := config.Load()
	logger, syncLogger := obs.NewLogger(cfg.LogProd)
	defer func() { _ = syncLogger() }()
	logger.Info("service_starting")

	if cfg.LogProd {
		gin.SetMode(gin.ReleaseMode)
	}

	products := catalog.NewSimulated(cfg.CatalogDelay)
	// One shared client for every request; see internal/remote.
	todos := remote.New(cfg.RemoteBaseURL, cfg.RemoteTimeout)
	agg := aggregate.New(products, todos, logger)

	app := httpapi.NewApp(cfg, agg, logger)
	router := httpapi.NewRouter(app)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("http_listen", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("http_server_error", zap.Error(err))
			os.Exit(1)
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
	s := <-sigc
	logger.Info("shutdown_signal", zap.String("signal", s.String()))

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("http_shutdown_error", zap.Error(err))
	}
	logger.Info("service_stopped")
}
