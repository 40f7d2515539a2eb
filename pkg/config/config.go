package config

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port      string
	StorePath string
	AppEnv    string
	JWTSecret string
}

func Load() *Config {
	_ = godotenv.Load() // Ignore error if .env not found (e.g. prod)

	return &Config{
		Port:      getEnv("PORT", "8080"),
		StorePath: getEnv("STORE_PATH", "data/store.yaml"),
		AppEnv:    getEnv("APP_ENV", "local"),
		JWTSecret: getEnv("JWT_SECRET", ""),
	}
}

// Validate enforces the required settings. The server must not start
// without a signing secret.
func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET must be set")
	}
	if c.StorePath == "" {
		return errors.New("STORE_PATH must be set")
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
