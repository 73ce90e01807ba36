package config

import (
	"log"
	"os"
)

type Config struct {
	Port        string
	DatabaseDSN string

	// Base URL of the external auth service (login/me/logout).
	AuthServiceURL string
}

// Load reads the environment, with .env as a convenience for local
// development. Missing values fall back to local-dev defaults.
func Load() *Config {
	cfg := &Config{
		Port:           getenv("PORT", "8080"),
		DatabaseDSN:    getenv("DATABASE_DSN", "host=localhost user=postgres password=postgres dbname=recruitment port=5432 sslmode=disable"),
		AuthServiceURL: getenv("AUTH_SERVICE_URL", "http://localhost:8081"),
	}
	if os.Getenv("DATABASE_DSN") == "" {
		log.Println("DATABASE_DSN not set, using local development default")
	}
	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
