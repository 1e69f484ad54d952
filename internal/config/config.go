package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds the runtime settings of the back office
type Config struct {
	Port        string
	DatabaseDSN string
	Env         string
}

// Load reads configuration from the environment with sensible defaults.
// A .env file in the working directory is honored when present; explicit
// environment variables take precedence over it.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Port:        getEnv("PORT", "8080"),
		DatabaseDSN: getEnv("DATABASE_DSN", ""),
		Env:         getEnv("APP_ENV", "development"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
