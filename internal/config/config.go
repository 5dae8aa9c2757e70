package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

const (
	SourceDB   = "db"
	SourceJSON = "json"

	defaultConnectionString = "file:./dandelion.db"
	devConnectionString     = "file:./local.db"
	defaultJSONPath         = "data_base/written.json"
)

type Config struct {
	DB      DBConfig      `toml:"database"`
	Data    DataConfig    `toml:"data"`
	Log     LogConfig     `toml:"log"`
	Display DisplayConfig `toml:"display"`
}

type DBConfig struct {
	ConnectionString string `toml:"connection_string"` // The entire DB connection string.
	AuthToken        string `toml:"auth_token"`
}

type DataConfig struct {
	Source   string `toml:"source"` // "db" or "json".
	JSONPath string `toml:"json_path"`
}

type LogConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
	JSON  bool   `toml:"json"`
}

type DisplayConfig struct {
	Timezone string `toml:"timezone"`
}

func Default() *Config {
	return &Config{
		DB:      DBConfig{ConnectionString: defaultConnectionString},
		Data:    DataConfig{Source: SourceDB, JSONPath: defaultJSONPath},
		Log:     LogConfig{Level: "warn"},
		Display: DisplayConfig{Timezone: "Local"},
	}
}

// Returns the path to the config file.
func GetConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	dir := filepath.Join(home, ".config", "dandelion")
	return filepath.Join(dir, "config.toml"), nil
}

// LoadConfig reads the configuration at path (the default location when path
// is empty), then applies .env and environment overrides. A missing file is
// not an error; the defaults are used instead.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		p, err := GetConfigPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}

	// .env is optional.
	_ = godotenv.Load()
	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("TURSO_DATABASE_URL"); v != "" {
		cfg.DB.ConnectionString = v
	}
	if v := os.Getenv("TURSO_AUTH_TOKEN"); v != "" {
		cfg.DB.AuthToken = v
	}
	if v := os.Getenv("DANDELION_DATABASE_URL"); v != "" {
		cfg.DB.ConnectionString = v
	}
	if v := os.Getenv("DANDELION_SOURCE"); v != "" {
		cfg.Data.Source = v
	}
	if v := os.Getenv("DANDELION_JSON_PATH"); v != "" {
		cfg.Data.JSONPath = v
	}

	// Check for a DEV_MODE environment variable.
	if os.Getenv("DEV_MODE") == "true" {
		cfg.DB.ConnectionString = devConnectionString
	}
}

func (c *Config) Validate() error {
	switch c.Data.Source {
	case SourceDB:
		if c.DB.ConnectionString == "" {
			return fmt.Errorf("database.connection_string is required for source %q", SourceDB)
		}
	case SourceJSON:
		if c.Data.JSONPath == "" {
			return fmt.Errorf("data.json_path is required for source %q", SourceJSON)
		}
	default:
		return fmt.Errorf("data.source must be %q or %q, got %q", SourceDB, SourceJSON, c.Data.Source)
	}
	return nil
}
