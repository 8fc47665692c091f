package config

import (
	"os"
	"path/filepath"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	vars := []string{"DATABASE_URL", "API_PORT", "NUM_PARSER_WORKERS", "NUM_DB_WORKERS", "DB_BATCH_SIZE", "CWR_DEFAULT_VERSION"}
	for _, v := range vars {
		old, had := os.LookupEnv(v)
		os.Unsetenv(v)
		t.Cleanup(func() {
			if had {
				os.Setenv(v, old)
			}
		})
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.APIPort != "8080" || cfg.NumParserWorkers != 4 || cfg.NumDBWorkers != 2 ||
		cfg.DBBatchSize != 5000 || cfg.CWRDefaultVersion != "2.2" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadEnvOverridesDefaults(t *testing.T) {
	clearEnv(t)
	os.Setenv("API_PORT", "9090")
	os.Setenv("NUM_PARSER_WORKERS", "8")
	os.Setenv("CWR_DEFAULT_VERSION", "2.0")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.APIPort != "9090" || cfg.NumParserWorkers != 8 || cfg.CWRDefaultVersion != "2.0" {
		t.Fatalf("env vars should override defaults: %+v", cfg)
	}
	if cfg.NumDBWorkers != 2 {
		t.Fatalf("an unset env var should keep its default, got %d", cfg.NumDBWorkers)
	}
}

func TestLoadYamlThenEnvOverride(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	yamlPath := filepath.Join(dir, "cwr.yaml")
	if err := os.WriteFile(yamlPath, []byte("api_port: \"7000\"\nnum_db_workers: 9\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	os.Setenv("API_PORT", "9999")

	cfg, err := Load(yamlPath)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.NumDBWorkers != 9 {
		t.Fatalf("yaml value should apply when no env override exists, got %d", cfg.NumDBWorkers)
	}
	if cfg.APIPort != "9999" {
		t.Fatalf("env should win over yaml, got %q", cfg.APIPort)
	}
}

func TestLoadInvalidIntEnvReturnsError(t *testing.T) {
	clearEnv(t)
	os.Setenv("NUM_DB_WORKERS", "not-a-number")

	if _, err := Load(""); err == nil {
		t.Fatal("expected an error for a non-numeric NUM_DB_WORKERS")
	}
}

func TestLoadMissingYamlIsNotAnError(t *testing.T) {
	clearEnv(t)
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err != nil {
		t.Fatalf("a missing yaml file should not error, got %v", err)
	}
}
