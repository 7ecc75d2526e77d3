// Package config loads runtime settings from the environment, with an
// optional .env file for local development.
package config

import (
	"os"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

// Store backend names accepted in STORE_BACKEND.
const (
	BackendFile   = "file"
	BackendMemory = "memory"
	BackendMongo  = "mongo"
)

// Config holds everything the CLI needs to wire up a store and auth.
type Config struct {
	StoreBackend string
	DataDir      string
	MongoURI     string
	MongoDB      string
	LogLevel     string
}

// Load reads the .env file if present, then the process environment.
// Missing values fall back to local-development defaults.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Debug("No .env file found, using system environment variables")
	}

	cfg := Config{
		StoreBackend: getEnv("STORE_BACKEND", BackendFile),
		DataDir:      getEnv("DATA_DIR", "data"),
		MongoURI:     getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:      getEnv("MONGO_DB", "facility_admin"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
	}

	if level, err := log.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	} else {
		log.WithField("level", cfg.LogLevel).Warn("Unknown log level, keeping default")
	}
	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
