package config

import (
	"errors"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// ErrMissingDatabaseURL is returned when the required backend connection
// string is absent. The primary query paths cannot start without it.
var ErrMissingDatabaseURL = errors.New("DATABASE_URL is not set")

// Config carries every knob the service needs, resolved once at startup and
// passed explicitly into constructors. Nothing reads the environment after
// Load returns.
type Config struct {
	DatabaseURL   string
	RedisAddr     string
	HTTPAddr      string
	FeaturedLimit int
	FeaturedTTL   time.Duration
	RateLimit     int
	RateBurst     int
}

func Load() (Config, error) {
	v := viper.New()
	v.SetDefault("http_addr", ":8080")
	v.SetDefault("redis_addr", "")
	v.SetDefault("featured_limit", 6)
	v.SetDefault("featured_ttl", 5*time.Minute)
	v.SetDefault("rate_limit", 10)
	v.SetDefault("rate_burst", 30)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv("database_url", "DATABASE_URL")
	_ = v.BindEnv("redis_addr", "REDIS_ADDR")
	_ = v.BindEnv("http_addr", "HTTP_ADDR")
	_ = v.BindEnv("featured_limit", "FEATURED_LIMIT")
	_ = v.BindEnv("featured_ttl", "FEATURED_TTL")
	_ = v.BindEnv("rate_limit", "RATE_LIMIT")
	_ = v.BindEnv("rate_burst", "RATE_BURST")

	cfg := Config{
		DatabaseURL:   v.GetString("database_url"),
		RedisAddr:     v.GetString("redis_addr"),
		HTTPAddr:      v.GetString("http_addr"),
		FeaturedLimit: v.GetInt("featured_limit"),
		FeaturedTTL:   v.GetDuration("featured_ttl"),
		RateLimit:     v.GetInt("rate_limit"),
		RateBurst:     v.GetInt("rate_burst"),
	}

	if cfg.DatabaseURL == "" {
		return Config{}, ErrMissingDatabaseURL
	}
	return cfg, nil
}
