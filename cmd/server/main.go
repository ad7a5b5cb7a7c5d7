package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/mohamadsobeh/menu-sub000/internal/cart"
	"github.com/mohamadsobeh/menu-sub000/internal/catalog"
	"github.com/mohamadsobeh/menu-sub000/internal/checkout"
	"github.com/mohamadsobeh/menu-sub000/internal/config"
	"github.com/mohamadsobeh/menu-sub000/internal/coupon"
	"github.com/mohamadsobeh/menu-sub000/internal/events"
	"github.com/mohamadsobeh/menu-sub000/internal/httpapi"
)

func main() {
	cfg := config.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logger.Sync()

	// Menu seed: file when configured, built-in menu otherwise
	seed := catalog.DefaultSeed()
	if cfg.MenuSeedPath != "" {
		seed, err = catalog.LoadSeed(cfg.MenuSeedPath)
		if err != nil {
			logger.Fatal("failed to load menu seed", zap.String("path", cfg.MenuSeedPath), zap.Error(err))
		}
		logger.Info("menu seed loaded", zap.String("path", cfg.MenuSeedPath))
	}
	repo := catalog.NewMemoryRepository(seed)

	// Catalog cache: Redis when configured, in-process otherwise
	var menuCache catalog.Cache = catalog.NewMemoryCache()
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       0,
		})
		defer redisClient.Close()
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			logger.Fatal("redis connection failed", zap.Error(err))
		}
		logger.Info("redis ping succeeded", zap.String("addr", cfg.RedisAddr))
		menuCache = catalog.NewRedisCache(redisClient)
	}

	catalogService := catalog.NewService(repo, menuCache, logger)

	cartStore := cart.NewStore()
	defer cartStore.Close()

	couponService := coupon.NewService(coupon.DefaultCoupons(), cfg.CouponLatency, logger)

	var publisher events.Publisher = events.NewLogPublisher(logger)
	if len(cfg.KafkaBrokers) > 0 {
		publisher = events.NewKafkaPublisher(cfg.KafkaBrokers...)
		logger.Info("kafka publisher enabled", zap.Strings("brokers", cfg.KafkaBrokers))
	}
	defer publisher.Close()

	checkoutService := checkout.NewService(cartStore, couponService, repo, publisher, cfg.OrderLatency, logger)

	router := httpapi.NewRouter(catalogService, cartStore, checkoutService, cfg.RequestTimeout)

	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("ordering service starting", zap.String("port", cfg.HTTPPort))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("server forced to shutdown", zap.Error(err))
	}

	logger.Info("server exited")
}
