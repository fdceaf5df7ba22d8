// Package main is the entry point for the stocktake API server.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"stocktake/internal/config"
	"stocktake/internal/domain/auth"
	"stocktake/internal/domain/catalogs/product"
	"stocktake/internal/domain/documents/purchase"
	"stocktake/internal/domain/documents/sales"
	"stocktake/internal/domain/notify"
	"stocktake/internal/domain/posting"
	v1 "stocktake/internal/infrastructure/http/v1"
	"stocktake/internal/infrastructure/storage/memory"
	"stocktake/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(logger.Config{
		Level:       cfg.LogLevel,
		Development: cfg.IsDevelopment(),
	})
	if err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	log.Info("starting stocktake server")

	// --- Storage ---
	store := memory.NewStore()
	if cfg.SeedDemo {
		if err := memory.SeedDemo(ctx, store); err != nil {
			log.Fatalw("failed to seed demo data", "error", err)
		}
		log.Info("demo data seeded")
	}

	// --- Notification relay ---
	relay := notify.NewRelay(cfg.ToastTTL)

	// --- Domain services ---
	productService := product.NewService(store.Products(), relay)
	engine := posting.NewEngine(store.Products())
	purchaseService := purchase.NewService(store.PurchaseOrders(), store.Products(), engine, relay)
	salesService := sales.NewService(store.SalesOrders(), store.Products(), engine, relay)

	// --- Auth ---
	jwtService := auth.NewJWTService(auth.JWTConfig{
		Secret:         cfg.JWTSecret,
		Issuer:         "stocktake",
		AccessTokenTTL: cfg.TokenTTL,
	})
	authService, err := auth.NewService(cfg.AdminUser, cfg.AdminPassword, jwtService)
	if err != nil {
		log.Fatalw("failed to initialize auth service", "error", err)
	}

	// --- Router ---
	router := v1.NewRouter(v1.RouterConfig{
		Logger:          log,
		AuthService:     authService,
		ProductService:  productService,
		PurchaseService: purchaseService,
		SalesService:    salesService,
		Relay:           relay,
	})

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Infow("server starting", "addr", cfg.AppAddr, "env", cfg.AppEnv)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalw("server failed", "error", err)
		}
	}()

	// --- Graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalw("server forced to shutdown", "error", err)
	}

	log.Info("server stopped")
}
