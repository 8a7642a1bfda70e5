package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port            string
	CredentialsPath string // service-account JSON file
	CredentialsJSON string // inline service-account JSON, wins over the path
	DBPath          string // snapshot database; empty disables snapshots
	LogLevel        string
}

func Load() (*Config, error) {
	// Attempt to load .env file, but don't fail if it doesn't exist (e.g., prod env)
	_ = godotenv.Load()

	cfg := &Config{
		Port:            getEnv("PORT", "8080"),
		CredentialsPath: os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"),
		CredentialsJSON: os.Getenv("GOOGLE_CREDENTIALS_JSON"),
		DBPath:          os.Getenv("DB_PATH"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
