// Package config loads and stores CLI configuration in the XDG config dir.
// Only non-secret settings are kept here; passwords are always prompted for.
package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"cubes/cli/internal/xdg"
)

// Config holds non-sensitive CLI settings.
type Config struct {
	LogLevel string   `json:"log_level"`
	DB       DBConfig `json:"db"`
}

// DBConfig holds database connection settings.
// DSN, when set, takes precedence over the individual fields.
type DBConfig struct {
	Host     string `json:"host"`
	Port     string `json:"port"`
	Database string `json:"database"`
	SSLMode  string `json:"sslmode"`
	User     string `json:"user,omitempty"`
	DSN      string `json:"-"`
}

// Default returns the built-in settings used when no config file exists.
func Default() Config {
	return Config{
		LogLevel: "info",
		DB: DBConfig{
			Host:     "localhost",
			Port:     "5432",
			Database: "cubes",
			SSLMode:  "disable",
		},
	}
}

// Debug reports whether debug logging was requested.
func (c Config) Debug() bool {
	return strings.EqualFold(c.LogLevel, "debug")
}

// path returns the path to the config file.
func path() (string, error) {
	dir, err := xdg.ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads configuration and applies environment overrides;
// a missing file yields defaults.
func Load() (Config, error) {
	c := Default()
	p, err := path()
	if err != nil {
		return c, err
	}
	data, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			c.ApplyEnv(os.Getenv)
			return c, nil
		}
		return c, err
	}
	if err := json.Unmarshal(data, &c); err != nil {
		return c, err
	}
	c.fillDefaults()
	c.ApplyEnv(os.Getenv)
	return c, nil
}

// Save writes configuration with 0600 permissions.
func Save(c Config) error {
	p, err := path()
	if err != nil {
		return err
	}
	b, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(p, b, 0o600)
}

// ApplyEnv overrides settings from CUBES_* variables. CUBES_DSN wins over
// DATABASE_URL, matching the lookup order of the dbinfo command.
func (c *Config) ApplyEnv(getenv func(string) string) {
	set := func(dst *string, key string) {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			*dst = v
		}
	}
	set(&c.DB.Host, "CUBES_HOST")
	set(&c.DB.Port, "CUBES_PORT")
	set(&c.DB.Database, "CUBES_DATABASE")
	set(&c.DB.SSLMode, "CUBES_SSLMODE")
	set(&c.DB.User, "CUBES_USER")
	set(&c.LogLevel, "CUBES_LOG_LEVEL")
	if v := strings.TrimSpace(getenv("CUBES_DSN")); v != "" {
		c.DB.DSN = v
	} else if v := strings.TrimSpace(getenv("DATABASE_URL")); v != "" {
		c.DB.DSN = v
	}
}

// fillDefaults restores defaults for fields a partial config file left empty.
func (c *Config) fillDefaults() {
	d := Default()
	if c.LogLevel == "" {
		c.LogLevel = d.LogLevel
	}
	if c.DB.Host == "" {
		c.DB.Host = d.DB.Host
	}
	if c.DB.Port == "" {
		c.DB.Port = d.DB.Port
	}
	if c.DB.Database == "" {
		c.DB.Database = d.DB.Database
	}
	if c.DB.SSLMode == "" {
		c.DB.SSLMode = d.DB.SSLMode
	}
}
