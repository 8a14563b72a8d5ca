// Package config loads the optional finbook configuration file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tsawler/finbook/format"
	"github.com/tsawler/finbook/workbook"
)

// Config holds generation settings. Zero values mean "use the default".
type Config struct {
	Output  string `yaml:"output"`
	Format  string `yaml:"format"`  // docx, html or markdown
	Author  string `yaml:"author"`  // written to document metadata
	Company string `yaml:"company"` // written to DOCX app properties
}

// Default returns the configuration used when no file or flag says
// otherwise: DOCX to the fixed workbook filename.
func Default() *Config {
	return &Config{
		Output: workbook.DefaultFilename,
	}
}

// Load reads a YAML config file over the defaults and then applies
// FINBOOK_* environment overrides. Unknown keys are an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// FromEnv returns the defaults with environment overrides applied.
func FromEnv() *Config {
	cfg := Default()
	cfg.applyEnvOverrides()
	return cfg
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("FINBOOK_OUTPUT"); v != "" {
		c.Output = v
	}
	if v := os.Getenv("FINBOOK_FORMAT"); v != "" {
		c.Format = v
	}
	if v := os.Getenv("FINBOOK_AUTHOR"); v != "" {
		c.Author = v
	}
	if v := os.Getenv("FINBOOK_COMPANY"); v != "" {
		c.Company = v
	}
}

// Validate checks that the configured format, if any, is known.
func (c *Config) Validate() error {
	if c.Output == "" {
		return errors.New("output path must not be empty")
	}
	if c.Format == "" {
		return nil
	}
	if _, err := format.Parse(c.Format); err != nil {
		return fmt.Errorf("invalid format %q: %w", c.Format, err)
	}
	return nil
}

// OutputFormat returns the configured format, or format.Unknown when the
// output extension should decide.
func (c *Config) OutputFormat() format.Format {
	if c.Format == "" {
		return format.Unknown
	}
	f, err := format.Parse(c.Format)
	if err != nil {
		return format.Unknown
	}
	return f
}

// Save writes the configuration as YAML.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
