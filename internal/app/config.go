package app

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const defaultEnvFile = ".env"

// Config holds runtime wiring options for building the app.
type Config struct {
	LogLevel        string // zerolog level name, e.g. "info"
	PackagesFile    string // JSON package file; empty means the reference packages
	ContinueOnError bool   // skip failing packages instead of aborting
	MetricsTextfile string // where to write Prometheus metrics; empty disables
}

// LoadConfig reads Config from the environment. Variables found in envFile are
// added first without overriding the process environment. An empty envFile
// means ".env" in the working directory, which may be absent.
func LoadConfig(envFile string) (Config, error) {
	path := envFile
	if path == "" {
		path = defaultEnvFile
	}
	if err := godotenv.Load(path); err != nil {
		if envFile != "" || !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("load env file %s: %w", path, err)
		}
	}

	cfg := Config{
		LogLevel:        getEnv("FTRACKER_LOG_LEVEL", "warn"),
		PackagesFile:    getEnv("FTRACKER_PACKAGES_FILE", ""),
		MetricsTextfile: getEnv("FTRACKER_METRICS_TEXTFILE", ""),
	}
	continueOnError, err := getBoolEnv("FTRACKER_CONTINUE_ON_ERROR", false)
	if err != nil {
		return Config{}, err
	}
	cfg.ContinueOnError = continueOnError
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getBoolEnv(key string, fallback bool) (bool, error) {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback, nil
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("%s: %w", key, err)
	}
	return parsed, nil
}
