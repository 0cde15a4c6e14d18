package config

import (
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

type Config struct {
	HTTPPort string

	// Store backend: memory, redis or mongo
	StoreBackend  string
	RedisAddr     string
	RedisPassword string
	MongoURI      string
	MongoDBName   string
	CartTTL       time.Duration

	// Path of the SQLite catalog; ":memory:" seeds a fresh copy on every start
	CatalogDBPath string

	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
	LogLevel        logrus.Level
}

func Load() *Config {
	return &Config{
		HTTPPort:        getEnv("HTTP_PORT", "8080"),
		StoreBackend:    strings.ToLower(getEnv("STORE_BACKEND", "memory")),
		RedisAddr:       getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:   getEnv("REDIS_PASSWORD", ""),
		MongoURI:        getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDBName:     getEnv("MONGO_DB_NAME", "storefront"),
		CartTTL:         parseDuration(getEnv("CART_TTL", "720h"), 720*time.Hour),
		CatalogDBPath:   getEnv("CATALOG_DB_PATH", ":memory:"),
		RequestTimeout:  parseDuration(getEnv("REQUEST_TIMEOUT", "30s"), 30*time.Second),
		ShutdownTimeout: parseDuration(getEnv("SHUTDOWN_TIMEOUT", "10s"), 10*time.Second),
		LogLevel:        parseLevel(getEnv("LOG_LEVEL", "info")),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); strings.TrimSpace(value) != "" {
		return value
	}
	return defaultValue
}

func parseDuration(v string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(v)
	if err != nil || d < 0 {
		return def
	}
	return d
}

func parseLevel(v string) logrus.Level {
	level, err := logrus.ParseLevel(v)
	if err != nil {
		return logrus.InfoLevel
	}
	return level
}
