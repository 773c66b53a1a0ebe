package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// envConfig holds every environment-derived setting. The type stays
// unexported; DefaultEnvConfig is the single shared instance.
type envConfig struct {
	APP_PORT                  string
	LOG_FILE_PATH             string
	LOG_LEVEL                 string
	FIREBASE_CREDENTIALS_FILE string
	FIREBASE_DATABASE_URL     string
	REPORT_CONFIG_PATH        string
}

var DefaultEnvConfig envConfig

// LoadEnvConfig populates DefaultEnvConfig from the environment, reading an
// optional .env file first. FIREBASE_DATABASE_URL has no usable default and
// must be set.
func LoadEnvConfig() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load .env file: %w", err)
	}

	DefaultEnvConfig = envConfig{
		APP_PORT:                  getEnv("APP_PORT", "5000"),
		LOG_FILE_PATH:             getEnv("LOG_FILE_PATH", ""),
		LOG_LEVEL:                 getEnv("LOG_LEVEL", "info"),
		FIREBASE_CREDENTIALS_FILE: getEnv("FIREBASE_CREDENTIALS_FILE", "serviceAccountKey.json"),
		FIREBASE_DATABASE_URL:     getEnv("FIREBASE_DATABASE_URL", ""),
		REPORT_CONFIG_PATH:        getEnv("REPORT_CONFIG_PATH", "report_config.yaml"),
	}

	if DefaultEnvConfig.FIREBASE_DATABASE_URL == "" {
		return errors.New("FIREBASE_DATABASE_URL is not set")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}
