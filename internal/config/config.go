package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

type Config struct {
	NoCreate  bool   `mapstructure:"no_create"`
	Debug     bool   `mapstructure:"debug"`
	History   bool   `mapstructure:"history"`
	HistoryDB string `mapstructure:"history_db"`
}

var Default = Config{
	NoCreate:  false,
	Debug:     false,
	History:   false,
	HistoryDB: "history.db",
}

// Dir is the per-user directory holding config.yaml and, by default, the
// history database. It is empty when the home directory cannot be found.
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	return filepath.Join(home, ".gotouch")
}

func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")

	configDir := Dir()
	if configDir != "" {
		v.AddConfigPath(configDir)
	}

	v.SetDefault("no_create", Default.NoCreate)
	v.SetDefault("debug", Default.Debug)
	v.SetDefault("history", Default.History)
	v.SetDefault("history_db", Default.HistoryDB)

	v.SetEnvPrefix("GOTOUCH")
	v.AutomaticEnv()

	if configDir != "" {
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if ok := errors.As(err, &notFound); !ok {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.HistoryDB != "" && !filepath.IsAbs(cfg.HistoryDB) && configDir != "" {
		cfg.HistoryDB = filepath.Join(configDir, cfg.HistoryDB)
	}

	return &cfg, nil
}
