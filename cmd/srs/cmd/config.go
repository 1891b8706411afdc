package cmd

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/relaykit/srs"
)

// Config mirrors the engine options for file-based setup. Zero values leave
// the engine defaults in place.
type Config struct {
	Secret                string `yaml:"secret"`
	Separator             string `yaml:"separator"`
	LifetimeDays          int    `yaml:"lifetime_days"`
	HashLength            int    `yaml:"hash_length"`
	MinHashLength         int    `yaml:"min_hash_length"`
	AlwaysRewrite         bool   `yaml:"always_rewrite"`
	VerifySRS1Timestamp   bool   `yaml:"verify_srs1_timestamp"`
	DisableTimestampCheck bool   `yaml:"disable_timestamp_check"`
}

func loadConfig() (*Config, error) {
	cfg := &Config{}
	if configFile != "" {
		data, err := os.ReadFile(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}
	if secretKey != "" {
		cfg.Secret = secretKey
	}
	return cfg, nil
}

func makeEngine() (*srs.Engine, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	var opts []srs.Option
	if cfg.Separator != "" {
		opts = append(opts, srs.WithSeparator(cfg.Separator[0]))
	}
	if cfg.LifetimeDays > 0 {
		opts = append(opts, srs.WithLifetime(time.Duration(cfg.LifetimeDays)*24*time.Hour))
	}
	if cfg.HashLength > 0 {
		opts = append(opts, srs.WithHashLength(cfg.HashLength))
	}
	if cfg.MinHashLength > 0 {
		opts = append(opts, srs.WithMinHashLength(cfg.MinHashLength))
	}
	if cfg.AlwaysRewrite {
		opts = append(opts, srs.AlwaysRewrite())
	}
	if cfg.VerifySRS1Timestamp {
		opts = append(opts, srs.TryVerifySRS1Timestamp())
	}
	if cfg.DisableTimestampCheck {
		opts = append(opts, srs.DisableTimestampCheck())
	}

	return srs.New(cfg.Secret, opts...)
}
