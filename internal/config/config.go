package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/dotcommander/themelint/internal/types"
)

// Config represents the themelint configuration.
type Config struct {
	Root         string            `mapstructure:"root"`
	Format       string            `mapstructure:"format"`
	Output       string            `mapstructure:"output"`
	FailOn       string            `mapstructure:"failOn"`
	Quiet        bool              `mapstructure:"quiet"`
	Verbose      bool              `mapstructure:"verbose"`
	Strict       bool              `mapstructure:"strict"`
	IgnoreChecks []string          `mapstructure:"ignoreChecks"`
	ErrorLevels  map[string]string `mapstructure:"errorLevels"`
	Concurrency  int               `mapstructure:"concurrency"`
}

// LoadConfig loads configuration from defaults, an optional rc file,
// THEMELINT_* environment variables, and bound flags, in that order of
// increasing precedence.
func LoadConfig(rootPath string) (*Config, error) {
	viper.SetDefault("root", "themes")
	viper.SetDefault("format", "console")
	viper.SetDefault("failOn", "error")
	viper.SetDefault("quiet", false)
	viper.SetDefault("verbose", false)
	viper.SetDefault("strict", false)
	viper.SetDefault("concurrency", 4)

	configPaths := []string{".themelintrc.json", ".themelintrc.yaml", ".themelintrc.yml"}
	for _, path := range configPaths {
		viper.SetConfigFile(path)
		if err := viper.ReadInConfig(); err == nil {
			break
		}
	}

	viper.SetEnvPrefix("THEMELINT")
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if rootPath != "" {
		config.Root = rootPath
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// validateConfig validates the configuration.
func validateConfig(config *Config) error {
	if config.Format != "console" && config.Format != "json" && config.Format != "markdown" {
		return fmt.Errorf("invalid format: %s. Must be 'console', 'json', or 'markdown'", config.Format)
	}

	if config.FailOn != types.LevelError && config.FailOn != types.LevelWarning {
		return fmt.Errorf("invalid fail-on level: %s. Must be 'error' or 'warning'", config.FailOn)
	}

	if config.Concurrency < 1 {
		return fmt.Errorf("concurrency must be at least 1")
	}

	for category, level := range config.ErrorLevels {
		if !types.ValidLevel(level) {
			return fmt.Errorf("invalid severity %q for category %q. Must be 'error', 'warning', or 'info'", level, category)
		}
	}

	if config.Format != "console" && config.Output == "" {
		return fmt.Errorf("output file is required when format is not 'console'")
	}

	return nil
}

// SaveConfig saves the current configuration to a file.
func SaveConfig(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	jsonData, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("error marshaling config: %w", err)
	}

	if err := os.WriteFile(path, jsonData, 0644); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}

	return nil
}
