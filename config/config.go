package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the process settings for the feed server and the store
// maintenance commands.
type Config struct {
	Addr            string        `env:"PROFEED_ADDR" envDefault:":8080"`
	DataDir         string        `env:"PROFEED_DATA_DIR" envDefault:"data/badger"`
	InMemory        bool          `env:"PROFEED_IN_MEMORY" envDefault:"false"`
	LogLevel        string        `env:"PROFEED_LOG_LEVEL" envDefault:"info"`
	ShutdownTimeout time.Duration `env:"PROFEED_SHUTDOWN_TIMEOUT" envDefault:"10s"`
	BackupDir       string        `env:"PROFEED_BACKUP_DIR" envDefault:"data/backups"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load reads Config from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
