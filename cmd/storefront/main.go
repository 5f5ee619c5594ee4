package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/vibevapes/storefront/internal/ai/gemini"
	cartapp "github.com/vibevapes/storefront/internal/cart/app"
	catalogapp "github.com/vibevapes/storefront/internal/catalog/app"
	"github.com/vibevapes/storefront/internal/catalog/infra/static"
	checkoutapp "github.com/vibevapes/storefront/internal/checkout/app"
	"github.com/vibevapes/storefront/internal/gateway/httpx"
	orderapp "github.com/vibevapes/storefront/internal/order/app"
	vibeapp "github.com/vibevapes/storefront/internal/vibe/app"
	"github.com/vibevapes/storefront/internal/vibe/infra/adapter"
	"github.com/vibevapes/storefront/pkg/config"
	"github.com/vibevapes/storefront/pkg/kvstore"
	"github.com/vibevapes/storefront/pkg/logger"
	"github.com/vibevapes/storefront/pkg/metrics"
	"github.com/vibevapes/storefront/pkg/shutdown"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.New(logger.Options{
		Service:   "storefront",
		Env:       cfg.AppEnv,
		Level:     cfg.LogLevel,
		AddSource: true,
	})

	root := context.Background()
	ctx, cancel := shutdown.WithSignals(root)
	defer cancel()

	store := newStore(cfg, log)

	catalog := catalogapp.NewService(static.NewRepo())
	cart := cartapp.NewService()

	orders := orderapp.NewService(store, log)
	orders.Load(ctx)

	checkout := checkoutapp.NewFlow(cart, orders, cfg.CheckoutDelay, log)

	if cfg.GeminiAPIKey == "" {
		log.Warn("GEMINI_API_KEY not set, AI features run degraded")
	}
	ai := gemini.NewClient(cfg.GeminiAPIKey, cfg.GeminiModel, log)
	vibe := vibeapp.NewService(adapter.NewGeminiRecommender(ai), adapter.NewCatalogReader(catalog), log)

	m := metrics.NewStoreMetrics()
	handler := httpx.NewHandler(catalog, cart, orders, checkout, vibe, ai, m, log)

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	server := &http.Server{
		Addr:              addr,
		Handler:           httpx.NewRouter(handler),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		log.Info("http server starting", slog.String("addr", addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("http server error", slog.Any("err", err))
			cancel()
		}
	}()

	<-ctx.Done()
	log.Info("shutdown requested")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("http shutdown error", slog.Any("err", err))
	}

	wg.Wait()
	log.Info("bye")
}

func newStore(cfg config.Config, log *slog.Logger) kvstore.Store {
	switch cfg.StorageBackend {
	case "redis":
		log.Info("using redis storage", slog.String("addr", cfg.RedisAddr))
		return kvstore.NewRedis(cfg.RedisAddr, "storefront")
	case "memory":
		log.Info("using in-memory storage, order history will not survive restarts")
		return kvstore.NewMemory()
	default:
		log.Info("using file storage", slog.String("path", cfg.StorageFile))
		return kvstore.NewFile(cfg.StorageFile)
	}
}
