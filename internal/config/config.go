// Package config loads settings from an optional YAML file and the environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	ServerAddress    string        `yaml:"server_address"`
	DatabasePath     string        `yaml:"database_path"`
	DataDir          string        `yaml:"data_dir"`
	SynthesizeClaims bool          `yaml:"synthesize_claims"`
	SyntheticSeed    int64         `yaml:"synthetic_seed"`
	ShutdownTimeout  time.Duration `yaml:"shutdown_timeout"`
}

func defaults() Config {
	return Config{
		ServerAddress:    ":8080",
		DatabasePath:     "food_wastage.db",
		DataDir:          "./data",
		SynthesizeClaims: true,
		SyntheticSeed:    42,
		ShutdownTimeout:  30 * time.Second,
	}
}

// Load starts from defaults, applies the YAML file named by CONFIG_FILE if set,
// then lets environment variables override single values.
func Load() (Config, error) {
	cfg := defaults()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := loadFile(filepath.Clean(path), &cfg); err != nil {
			return cfg, err
		}
	}

	cfg.ServerAddress = get("SERVER_ADDRESS", cfg.ServerAddress)
	cfg.DatabasePath = get("SQLITE_PATH", cfg.DatabasePath)
	cfg.DataDir = get("DATA_DIR", cfg.DataDir)

	if v := os.Getenv("SYNTHESIZE_CLAIMS"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return cfg, fmt.Errorf("invalid SYNTHESIZE_CLAIMS %q: %w", v, err)
		}
		cfg.SynthesizeClaims = b
	}
	if v := os.Getenv("SYNTHETIC_SEED"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("invalid SYNTHETIC_SEED %q: %w", v, err)
		}
		cfg.SyntheticSeed = seed
	}
	if v := os.Getenv("SHUTDOWN_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return cfg, fmt.Errorf("invalid SHUTDOWN_TIMEOUT %q: %w", v, err)
		}
		cfg.ShutdownTimeout = d
	}

	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	if err = yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}

	return nil
}

// get returns the value of the environment variable k or def if not set.
func get(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
