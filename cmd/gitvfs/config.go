package main

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"gitvfs/internal/persistentfs"
	"gitvfs/internal/store"
)

// Config is the on-disk gitvfs CLI configuration, grounded on the
// pack's daemon config loader (latentfs internal/daemon/config.go)
// but reduced to the handful of settings this CLI actually needs.
type Config struct {
	LogLevel    string `yaml:"log_level"`    // a logrus level name (trace, debug, info, warn, error); unrecognized names mean info
	BusyTimeout int    `yaml:"busy_timeout"` // SQLite busy_timeout in milliseconds, 0 = default
}

// ApplyDefaults fills zero-value fields with their defaults.
func (cfg *Config) ApplyDefaults() {
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
}

// LoadConfig reads path as YAML. A missing file yields defaults rather
// than an error, since a config file is optional.
func LoadConfig(path string) (*Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.ApplyDefaults()
			return &cfg, nil
		}
		return nil, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	cfg.ApplyDefaults()
	return &cfg, nil
}

// openStore loads the CLI config from --config and opens the store at
// dbPath with its busy-timeout override applied, so every subcommand
// honors the loaded Config instead of silently falling back to
// store.DefaultConfig's hardcoded timeout.
func openStore(dbPath string) (*persistentfs.PersistentFS, error) {
	cfg, err := LoadConfig(configPath)
	if err != nil {
		return nil, err
	}

	storeCfg := store.Config{Path: dbPath}
	if cfg.BusyTimeout > 0 {
		storeCfg.BusyTimeout = time.Duration(cfg.BusyTimeout) * time.Millisecond
	}
	return persistentfs.Open(storeCfg)
}
