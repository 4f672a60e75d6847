package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"fii/internal/appdir"
	"fii/internal/model"
	"fii/internal/reminder"
)

// FileName is the config file looked up in the user config directory.
const FileName = "config.yaml"

// Config holds all application configuration.
type Config struct {
	Data struct {
		File       string `yaml:"file"`
		AtomicSave bool   `yaml:"atomic_save"`
	} `yaml:"data"`
	Withdrawal struct {
		Percent uint8 `yaml:"percent"`
	} `yaml:"withdrawal"`
	Journal struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"journal"`
	Reminder struct {
		Cron string `yaml:"cron"`
	} `yaml:"reminder"`
	Log struct {
		Level string `yaml:"level"`
	} `yaml:"log"`
}

// DefaultPath returns $FII_CONFIG or the config file in the user config directory.
func DefaultPath() string {
	if v := os.Getenv("FII_CONFIG"); v != "" {
		return v
	}
	return appdir.ConfigFile(FileName)
}

// Load reads config from a YAML file, then applies environment variable overrides.
// A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	// Zero is a meaningful value for these, so they are set before parsing.
	cfg.Data.AtomicSave = true
	cfg.Withdrawal.Percent = model.DefaultWithdrawalPercent

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("FII_DATA_FILE"); v != "" {
		cfg.Data.File = v
	}
	if v := os.Getenv("FII_WITHDRAWAL_PERCENT"); v != "" {
		pct, err := strconv.ParseUint(v, 10, 8)
		if err != nil {
			return nil, fmt.Errorf("parse FII_WITHDRAWAL_PERCENT: %w", err)
		}
		cfg.Withdrawal.Percent = uint8(pct)
	}
	if v := os.Getenv("FII_JOURNAL_PATH"); v != "" {
		cfg.Journal.SQLitePath = v
	}
	if v := os.Getenv("FII_REMINDER_CRON"); v != "" {
		cfg.Reminder.Cron = v
	}
	if v := os.Getenv("FII_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}

	// Defaults
	if cfg.Data.File == "" {
		path, err := appdir.DataFile(appdir.DataFileName)
		if err != nil {
			return nil, err
		}
		cfg.Data.File = path
	}
	if cfg.Reminder.Cron == "" {
		cfg.Reminder.Cron = reminder.DefaultSpec
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "warn"
	}

	return cfg, nil
}

// Validate checks every field and reports all problems at once.
func (c *Config) Validate() error {
	var problems []string

	if strings.TrimSpace(c.Data.File) == "" {
		problems = append(problems, "data.file is required")
	}
	if _, err := reminder.New(c.Reminder.Cron); err != nil {
		problems = append(problems, fmt.Sprintf("invalid reminder.cron: %v", err))
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		problems = append(problems, fmt.Sprintf("invalid log.level %q: must be one of debug, info, warn, error", c.Log.Level))
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(problems, "\n- "))
	}
	return nil
}
