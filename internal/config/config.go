// Package config reads the hexadb YAML configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the whole configuration file.
type Config struct {
	Database DatabaseConfig `yaml:"database"`
	Log      LogConfig      `yaml:"log"`
	Output   OutputConfig   `yaml:"output"`
}

// DatabaseConfig names the database and where it is persisted.
type DatabaseConfig struct {
	Name     string `yaml:"name"`
	File     string `yaml:"file"`
	Dir      string `yaml:"dir,omitempty"`
	AutoLoad bool   `yaml:"auto_load"`
	AutoSave bool   `yaml:"auto_save"`
}

// LogConfig selects level, handler format and destination of the logger.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Output string `yaml:"output,omitempty"`
}

// OutputConfig selects how command results are printed.
type OutputConfig struct {
	Format string `yaml:"format"`
}

// Output formats.
const (
	FormatTable = "table"
	FormatJSON  = "json"
)

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Database: DatabaseConfig{
			Name:     "HexaDB_Instance",
			File:     "hexadb.data",
			AutoLoad: true,
		},
		Log: LogConfig{
			Level:  "WARN",
			Format: "text",
		},
		Output: OutputConfig{
			Format: FormatTable,
		},
	}
}

// Parse decodes YAML on top of the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: invalid YAML: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load reads the file at path. A missing file is not an error: the defaults
// are returned instead.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("config: cannot read %s: %w", path, err)
	}
	return Parse(data)
}

// Validate checks every field that has a fixed set of values.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Database.Name) == "" {
		return fmt.Errorf("config: database.name is required")
	}
	if strings.ContainsAny(c.Database.Name, "\r\n") {
		return fmt.Errorf("config: database.name must be a single line")
	}
	if strings.TrimSpace(c.Database.Name) != c.Database.Name {
		return fmt.Errorf("config: database.name must not start or end with spaces, got %q", c.Database.Name)
	}
	if strings.TrimSpace(c.Database.File) == "" {
		return fmt.Errorf("config: database.file is required")
	}

	switch strings.ToUpper(c.Log.Level) {
	case "DEBUG", "INFO", "WARN", "ERROR":
	default:
		return fmt.Errorf("config: log.level must be DEBUG, INFO, WARN or ERROR, got %q", c.Log.Level)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("config: log.format must be text or json, got %q", c.Log.Format)
	}
	switch c.Output.Format {
	case FormatTable, FormatJSON:
	default:
		return fmt.Errorf("config: output.format must be table or json, got %q", c.Output.Format)
	}
	return nil
}
