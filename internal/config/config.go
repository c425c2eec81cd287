package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/stardrift-game/stardrift/internal/storage/postgres"
	"github.com/stardrift-game/stardrift/internal/storage/redis"
)

// Config holds all server configuration, loaded from the environment
type Config struct {
	Server    ServerConfig
	Storage   StorageConfig
	Anticheat AnticheatConfig
	RateLimit RateLimitConfig
	CORS      CORSConfig
	Logging   LoggingConfig
}

type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// StorageConfig selects and configures the persistence backend
type StorageConfig struct {
	// Type is one of "memory", "redis", "postgres"
	Type     string
	Redis    redis.Config
	Postgres postgres.Config
}

type AnticheatConfig struct {
	StrictYield bool
}

type RateLimitConfig struct {
	Enabled           bool
	RequestsPerSecond float64
	BurstSize         int
	TrustProxy        bool
}

type CORSConfig struct {
	AllowedOrigins []string
}

type LoggingConfig struct {
	Level      string
	JSONFormat bool
}

// Load reads configuration from a .env file (if present) and the
// process environment
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	cfg := &Config{
		Server:    loadServerConfig(),
		Storage:   loadStorageConfig(),
		Anticheat: loadAnticheatConfig(),
		RateLimit: loadRateLimitConfig(),
		CORS:      loadCORSConfig(),
		Logging:   loadLoggingConfig(),
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func loadServerConfig() ServerConfig {
	return ServerConfig{
		Host:            getEnv("SERVER_HOST", ""),
		Port:            getEnvInt("SERVER_PORT", 8080),
		ReadTimeout:     getEnvSeconds("SERVER_READ_TIMEOUT_SECONDS", 15),
		WriteTimeout:    getEnvSeconds("SERVER_WRITE_TIMEOUT_SECONDS", 15),
		ShutdownTimeout: getEnvSeconds("SERVER_SHUTDOWN_TIMEOUT_SECONDS", 30),
	}
}

func loadStorageConfig() StorageConfig {
	redisCfg := redis.DefaultConfig()
	redisCfg.URL = getEnv("REDIS_URL", redisCfg.URL)
	redisCfg.PoolSize = getEnvInt("REDIS_POOL_SIZE", redisCfg.PoolSize)
	redisCfg.MinIdleConns = getEnvInt("REDIS_MIN_IDLE_CONNS", redisCfg.MinIdleConns)

	pgCfg := postgres.DefaultConfig()
	pgCfg.Host = getEnv("DB_HOST", pgCfg.Host)
	pgCfg.Port = getEnv("DB_PORT", pgCfg.Port)
	pgCfg.User = getEnv("DB_USER", pgCfg.User)
	pgCfg.Password = getEnv("DB_PASSWORD", pgCfg.Password)
	pgCfg.Name = getEnv("DB_NAME", pgCfg.Name)
	pgCfg.SSLMode = getEnv("DB_SSLMODE", pgCfg.SSLMode)
	pgCfg.MaxOpenConns = getEnvInt("DB_MAX_OPEN_CONNS", pgCfg.MaxOpenConns)
	pgCfg.MaxIdleConns = getEnvInt("DB_MAX_IDLE_CONNS", pgCfg.MaxIdleConns)
	pgCfg.ConnMaxLifetime = time.Duration(getEnvInt("DB_CONN_MAX_LIFETIME_MINUTES", 5)) * time.Minute

	return StorageConfig{
		Type:     getEnv("STORAGE_TYPE", "memory"),
		Redis:    redisCfg,
		Postgres: pgCfg,
	}
}

func loadAnticheatConfig() AnticheatConfig {
	return AnticheatConfig{
		StrictYield: getEnv("ANTICHEAT_STRICT_YIELD", "false") == "true",
	}
}

func loadRateLimitConfig() RateLimitConfig {
	return RateLimitConfig{
		Enabled:           getEnv("RATE_LIMIT_ENABLED", "true") == "true",
		RequestsPerSecond: getEnvFloat("RATE_LIMIT_REQUESTS_PER_SECOND", 10),
		BurstSize:         getEnvInt("RATE_LIMIT_BURST_SIZE", 20),
		TrustProxy:        getEnv("RATE_LIMIT_TRUST_PROXY", "false") == "true",
	}
}

func loadCORSConfig() CORSConfig {
	return CORSConfig{
		AllowedOrigins: []string{getEnv("FRONTEND_URL", "http://localhost:3000")},
	}
}

func loadLoggingConfig() LoggingConfig {
	return LoggingConfig{
		Level:      getEnv("LOG_LEVEL", "info"),
		JSONFormat: getEnv("LOG_FORMAT", "json") == "json",
	}
}

func (c *Config) validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("SERVER_PORT out of range: %d", c.Server.Port)
	}

	switch c.Storage.Type {
	case "memory", "redis", "postgres":
	default:
		return fmt.Errorf("unknown STORAGE_TYPE: %q", c.Storage.Type)
	}

	return nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if v, ok := os.LookupEnv(key); ok {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func getEnvSeconds(key string, fallback int) time.Duration {
	return time.Duration(getEnvInt(key, fallback)) * time.Second
}
