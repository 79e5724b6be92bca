package main

import (
	"context"
	"log"
	"net/http"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/hubhand/storefront/internal/cache"
	"github.com/hubhand/storefront/internal/catalog"
	"github.com/hubhand/storefront/internal/config"
	"github.com/hubhand/storefront/internal/db"
	api "github.com/hubhand/storefront/internal/http"
	"github.com/hubhand/storefront/internal/http/handlers"
	rl "github.com/hubhand/storefront/internal/http/rate_limiter"
	"github.com/hubhand/storefront/internal/repo"
)

// @title Storefront Catalog API
// @version 1.0
// @description Read-only product catalog: filtered, sorted, paginated browsing.
// @BasePath /
func main() {
	_ = godotenv.Load() // load .env if it exists

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("configuration: %v", err)
	}

	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("could not connect to database: %v", err)
	}
	defer database.Close()

	var featuredCache *cache.Cache
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			log.Printf("redis unavailable, featured cache disabled: %v", err)
		} else {
			defer rdb.Close()
			featuredCache = cache.New(rdb)
		}
	}

	service := catalog.NewService(
		repo.NewPostgresCatalogRepository(database),
		featuredCache,
		cfg.FeaturedLimit,
		cfg.FeaturedTTL,
	)
	handlers.SetCatalogService(service)

	limiter := rl.NewLimiter(cfg.RateLimit, cfg.RateBurst)
	go limiter.StartVisitorCleanupLoop()

	handler := api.RateLimitMiddleware(limiter)(api.NewRouter())

	log.Printf("catalog API listening on %s", cfg.HTTPAddr)
	if err := http.ListenAndServe(cfg.HTTPAddr, handler); err != nil {
		log.Fatal(err)
	}
}
