package config

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

var envOnce sync.Once

// LoadEnv loads environment variables from a .env file if one exists.
// It checks the current directory first, then the parent (project root).
// Safe to call more than once; only the first call does any work.
func LoadEnv(logger *logrus.Logger) {
	envOnce.Do(func() {
		envFile := ".env"
		if _, err := os.Stat(envFile); os.IsNotExist(err) {
			envFile = filepath.Join("..", ".env")
			if _, err := os.Stat(envFile); os.IsNotExist(err) {
				return
			}
		}

		if err := godotenv.Load(envFile); err != nil {
			if logger != nil {
				logger.Warnf("Error loading .env file: %v", err)
			}
			return
		}
		if logger != nil {
			logger.Debugf("Loaded environment variables from %s", envFile)
		}
	})
}

// GetEnv retrieves an environment variable with a fallback value if not set
func GetEnv(key, fallback string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	return value
}
