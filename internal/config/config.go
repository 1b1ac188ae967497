// File: internal/config/config.go
package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config carries every process-wide setting. It is built once in run() and
// passed down explicitly; nothing reads the environment after startup.
type Config struct {
	DatabaseURL    string
	JWTSecret      string
	JWTAlgorithm   string
	AccessTokenTTL time.Duration
	RedisAddr      string
	RedisPassword  string
	RedisDB        int
	ListenAddr     string
}

var supportedAlgorithms = map[string]bool{
	"HS256": true,
	"HS384": true,
	"HS512": true,
}

// Load reads configuration from the environment via viper.
func Load() (*Config, error) {
	v := viper.New()
	v.SetDefault("JWT_ALGORITHM", "HS256")
	v.SetDefault("ACCESS_TOKEN_TTL", "15m")
	v.SetDefault("LISTEN_ADDR", ":8080")
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:   v.GetString("DATABASE_URL"),
		JWTSecret:     v.GetString("JWT_SECRET"),
		JWTAlgorithm:  v.GetString("JWT_ALGORITHM"),
		RedisAddr:     v.GetString("REDIS_ADDR"),
		RedisPassword: v.GetString("REDIS_PASSWORD"),
		RedisDB:       v.GetInt("REDIS_DB"),
		ListenAddr:    v.GetString("LISTEN_ADDR"),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is not set")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is not set")
	}
	if !supportedAlgorithms[cfg.JWTAlgorithm] {
		return nil, fmt.Errorf("unsupported JWT_ALGORITHM %q", cfg.JWTAlgorithm)
	}

	ttl, err := time.ParseDuration(v.GetString("ACCESS_TOKEN_TTL"))
	if err != nil || ttl <= 0 {
		return nil, fmt.Errorf("invalid ACCESS_TOKEN_TTL: %v", v.GetString("ACCESS_TOKEN_TTL"))
	}
	cfg.AccessTokenTTL = ttl

	return cfg, nil
}
