package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mcncl/jobj/internal/errors"
	"github.com/mcncl/jobj/internal/formatter"
	"github.com/mcncl/jobj/internal/models"
	"gopkg.in/yaml.v3"
)

// DefaultSample is the sample document printed when none is chosen
const DefaultSample = "catalog"

// Config represents the complete configuration for jobj
type Config struct {
	Sample  string        `yaml:"sample"`
	Output  string        `yaml:"output"`
	Printer PrinterConfig `yaml:"printer"`
	Dev     DevConfig     `yaml:"dev"`
}

// PrinterConfig controls how documents are rendered
type PrinterConfig struct {
	FloatPrecision int    `yaml:"float_precision"`
	LabelCase      string `yaml:"label_case"`
}

// DevConfig contains development/debug options
type DevConfig struct {
	Debug bool `yaml:"debug"`
}

// NewConfig creates a new Config with default values
func NewConfig() *Config {
	return &Config{
		Sample: DefaultSample,
		Printer: PrinterConfig{
			FloatPrecision: formatter.DefaultFloatPrecision,
			LabelCase:      string(formatter.LabelAsIs),
		},
		Dev: DevConfig{
			Debug: false,
		},
	}
}

// LoadConfig loads configuration from a YAML file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewConfigError(fmt.Sprintf("failed to read config file '%s'", path), err)
	}

	// Start with defaults
	cfg := NewConfig()

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.NewConfigError(fmt.Sprintf("failed to parse config file '%s'", path), err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// FindConfigFile searches for a config file in current directory and parents
func FindConfigFile() string {
	configNames := []string{".jobj.yml", ".jobj.yaml", "jobj.yml", "jobj.yaml"}

	currentDir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		for _, name := range configNames {
			configPath := filepath.Join(currentDir, name)
			if _, err := os.Stat(configPath); err == nil {
				return configPath
			}
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root directory
			break
		}
		currentDir = parentDir
	}

	return ""
}

// Validate checks the printer settings
func (c *Config) Validate() error {
	if err := formatter.ValidatePrecision(c.Printer.FloatPrecision); err != nil {
		return err
	}
	if _, err := formatter.ParseLabelCase(c.Printer.LabelCase); err != nil {
		return err
	}
	return nil
}

// PrintOptions converts the printer settings for use with models.Printer.
// Call Validate first; an invalid label case falls back to as_is.
func (c *Config) PrintOptions() models.PrintOptions {
	labelCase, err := formatter.ParseLabelCase(c.Printer.LabelCase)
	if err != nil {
		labelCase = formatter.LabelAsIs
	}
	return models.PrintOptions{
		FloatPrecision: c.Printer.FloatPrecision,
		LabelCase:      labelCase,
	}
}

// CLIOverrides carries command-line values that override the config file.
// A nil field means the flag was not given on the command line.
type CLIOverrides struct {
	Sample    *string
	Output    *string
	Precision *int
	LabelCase *string
	Debug     *bool
}

// LoadConfigWithCLI loads config with CLI argument precedence. Only flags
// present in cli are applied, even when their value equals the flag default.
func LoadConfigWithCLI(configPath string, cli CLIOverrides) (*Config, error) {
	cfg := NewConfig()

	if configPath != "" {
		fileConfig, err := LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
		cfg = fileConfig
	}

	if cli.Sample != nil {
		cfg.Sample = *cli.Sample
	}
	if cli.Output != nil {
		cfg.Output = *cli.Output
	}
	if cli.Precision != nil {
		cfg.Printer.FloatPrecision = *cli.Precision
	}
	if cli.LabelCase != nil {
		cfg.Printer.LabelCase = *cli.LabelCase
	}
	if cli.Debug != nil {
		cfg.Dev.Debug = *cli.Debug
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}
