package config

import (
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
)

const defaultEnvFile = "./configs/.env"

var (
	once     sync.Once
	instance *Config
)

type Config struct {
}

// New loads ENV_FILE (or ./configs/.env) once. Values already present in the
// process environment win over the file, and a missing file is only logged.
func New() *Config {
	once.Do(func() {
		path := os.Getenv("ENV_FILE")
		if path == "" {
			path = defaultEnvFile
		}
		if err := godotenv.Load(path); err != nil {
			slog.Debug("env file not loaded, using process environment", slog.String("path", path), slog.String("error", err.Error()))
		}
		instance = &Config{}
	})
	return instance
}

func (c *Config) GetString(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}

func (c *Config) GetStringOr(key, def string) string {
	if v := c.GetString(key); v != "" {
		return v
	}
	return def
}

// GetDuration parses key as a Go duration. Empty or invalid values yield def.
func (c *Config) GetDuration(key string, def time.Duration) time.Duration {
	v := c.GetString(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		slog.Warn("invalid duration in config", slog.String("key", key), slog.String("value", v))
		return def
	}
	return d
}
