package main

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mvalderrama/flightfunnel/internal/cache"
	"github.com/mvalderrama/flightfunnel/internal/config"
	"github.com/mvalderrama/flightfunnel/internal/handler"
	"github.com/mvalderrama/flightfunnel/internal/inventory"
	"github.com/mvalderrama/flightfunnel/internal/ratelimit"
	"github.com/mvalderrama/flightfunnel/internal/session"
	"github.com/mvalderrama/flightfunnel/pkg/logger"
	"github.com/mvalderrama/flightfunnel/pkg/metrics"
)

func main() {
	cfg := config.Load()
	log := logger.NewLogger()

	store := inventory.NewStore(inventory.Seed())
	log.Info("inventory loaded", "flights", store.Len())

	sessions := session.NewStore(cfg.SessionTTL)
	m := metrics.NewMetrics("flightfunnel")

	var resultCache cache.Cache
	if cfg.CacheEnabled {
		redisCache, err := cache.NewRedisCache(cache.RedisConfig{
			Host: cfg.RedisHost,
			Port: cfg.RedisPort,
			TTL:  cfg.RedisTTL,
		})
		if err != nil {
			log.Fatal("failed to connect to redis", "error", err)
		}
		resultCache = redisCache
		log.Info("redis cache enabled", "host", cfg.RedisHost, "port", cfg.RedisPort, "ttl", cfg.RedisTTL)
	} else {
		resultCache = cache.NewNoOpCache()
		log.Info("cache disabled")
	}

	limiter := ratelimit.NewClientLimiter(ratelimit.RateLimitConfig{
		RequestsPerSecond: cfg.RateLimitRPS,
		BurstSize:         cfg.RateLimitBurst,
	})

	searchHandler := handler.NewSearchHandler(store, sessions, resultCache, m, log)
	checkoutHandler := handler.NewCheckoutHandler(sessions, m, log)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.RequestID())

	api := e.Group("/api/v1")
	api.POST("/flights/search", searchHandler.Search, handler.RateLimit(limiter))
	api.POST("/flights/select", searchHandler.Select)
	api.GET("/routes", searchHandler.Routes)
	api.GET("/seats", handler.SeatsHandler)
	api.POST("/checkout/quote", checkoutHandler.Quote)
	api.POST("/checkout/confirm", checkoutHandler.Confirm)

	e.GET("/health", handler.HealthHandler)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	log.Info("starting flight funnel server", "port", cfg.Port)
	if err := e.Start(":" + cfg.Port); err != nil {
		log.Fatal("server stopped", "error", err)
	}
}
