// Package config loads the host layer's configuration: an optional
// cwr.yaml file supplies defaults, environment variables (optionally
// loaded from a .env file) override them. Grounded on
// b3_quotations/internal/config/config.go's env-var struct +
// getEnvAsInt default helper, with the file-then-env merge idiom
// layered on top in the style of DIRPX-dxrel's config loaders.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds every host-layer tunable, per spec.md §6's configuration
// surface.
type Config struct {
	DatabaseURL       string `yaml:"database_url"`
	APIPort           string `yaml:"api_port"`
	NumParserWorkers  int    `yaml:"num_parser_workers"`
	NumDBWorkers      int    `yaml:"num_db_workers"`
	DBBatchSize       int    `yaml:"db_batch_size"`
	CWRDefaultVersion string `yaml:"cwr_default_version"`
}

func defaults() Config {
	return Config{
		APIPort:           "8080",
		NumParserWorkers:  4,
		NumDBWorkers:      2,
		DBBatchSize:       5000,
		CWRDefaultVersion: "2.2",
	}
}

// Load builds a Config: defaults, then cwr.yaml if present (yamlPath may
// be empty to skip it), then a .env file if present, then the process
// environment — each layer overriding the previous one field-by-field.
func Load(yamlPath string) (*Config, error) {
	cfg := defaults()

	if yamlPath != "" {
		if data, err := os.ReadFile(yamlPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parsing %s: %w", yamlPath, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("reading %s: %w", yamlPath, err)
		}
	}

	// Missing .env is not an error; the process environment alone is a
	// valid configuration source.
	_ = godotenv.Load()

	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.DatabaseURL = v
	}
	if v := os.Getenv("API_PORT"); v != "" {
		cfg.APIPort = v
	}
	if v := os.Getenv("CWR_DEFAULT_VERSION"); v != "" {
		cfg.CWRDefaultVersion = v
	}

	var err error
	cfg.NumParserWorkers, err = getEnvAsInt("NUM_PARSER_WORKERS", cfg.NumParserWorkers)
	if err != nil {
		return nil, err
	}
	cfg.NumDBWorkers, err = getEnvAsInt("NUM_DB_WORKERS", cfg.NumDBWorkers)
	if err != nil {
		return nil, err
	}
	cfg.DBBatchSize, err = getEnvAsInt("DB_BATCH_SIZE", cfg.DBBatchSize)
	if err != nil {
		return nil, err
	}

	return &cfg, nil
}

func getEnvAsInt(key string, defaultValue int) (int, error) {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue, nil
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return 0, fmt.Errorf("invalid value for %s: expected an integer, got %q", key, valueStr)
	}

	return value, nil
}
