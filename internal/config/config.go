// Package config provides configuration management for the dialog bridge
// CLI: loading with precedence (explicit path, then environment, then project
// file, then user file, then defaults) and struct-level validation.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultDriver is the driver used when none is configured. The terminal
	// driver works everywhere, including headless machines.
	DefaultDriver = "term"

	projectConfigName = "electron.yaml"
	userConfigDir     = ".electron"
	userConfigName    = "config.yaml"
)

// Config is the CLI configuration.
type Config struct {
	// Driver names the dialog driver used to present dialogs.
	Driver string `yaml:"driver,omitempty" mapstructure:"driver" validate:"required"`
	// DefaultPath seeds file pickers when the script passes an empty default.
	DefaultPath string `yaml:"default_path,omitempty" mapstructure:"default_path"`
	// LogFormat is "pretty" or "json".
	LogFormat string `yaml:"log_format,omitempty" mapstructure:"log_format" validate:"oneof=pretty json"`
	// LogLevel is the zap level name.
	LogLevel string `yaml:"log_level,omitempty" mapstructure:"log_level" validate:"oneof=debug info warn error fatal"`
}

var validate = validator.New()

// Validate checks the configuration's declarative constraints.
func (cfg *Config) Validate() error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// Save writes the configuration as YAML to path. The configuration is
// validated first so a broken file is never written.
func (cfg *Config) Save(path string) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Default returns the configuration used when nothing is configured.
func Default() *Config {
	return &Config{
		Driver:    DefaultDriver,
		LogFormat: "json",
		LogLevel:  "info",
	}
}

// GetUserConfigPath returns the path to the user-specific config file
// (~/.electron/config.yaml).
func GetUserConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, userConfigDir, userConfigName), nil
}

// GetProjectConfigPath returns the path to the project-specific config file
// (./electron.yaml) relative to the current working directory.
func GetProjectConfigPath() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current working directory: %w", err)
	}
	return filepath.Join(cwd, projectConfigName), nil
}

// Load loads configuration with precedence. If configPath is non-empty, only
// that file is read (and must exist); otherwise the user config is read first
// and the project config merged over it. Environment variables with the
// ELECTRON_ prefix override file values, and defaults fill the rest.
func Load(configPath string) (*Config, error) {
	if err := setupViper(configPath); err != nil {
		return nil, err
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setupViper(configPath string) error {
	viper.Reset()
	setViperDefaults()
	viper.SetEnvPrefix("ELECTRON")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	// If a specific path is provided, load only that file.
	if configPath != "" {
		viper.SetConfigFile(configPath)
		if err := viper.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file: %w", err)
		}
		return nil
	}

	// Otherwise use precedence: user config first, then project config.
	userPath, userErr := GetUserConfigPath()
	if userErr == nil {
		if _, statErr := os.Stat(userPath); statErr == nil {
			viper.SetConfigFile(userPath)
			if readErr := viper.ReadInConfig(); readErr != nil {
				zap.L().Debug("Failed to read user config file", zap.String("path", userPath), zap.Error(readErr))
			}
		}
	}

	projectPath, projectErr := GetProjectConfigPath()
	if projectErr == nil {
		if _, statErr := os.Stat(projectPath); statErr == nil {
			viper.SetConfigFile(projectPath)
			if mergeErr := viper.MergeInConfig(); mergeErr != nil {
				zap.L().Debug("Failed to merge project config file", zap.String("path", projectPath), zap.Error(mergeErr))
			}
		}
	}

	return nil
}

func setViperDefaults() {
	viper.SetDefault("driver", DefaultDriver)
	viper.SetDefault("default_path", "")
	viper.SetDefault("log_format", "json")
	viper.SetDefault("log_level", "info")
}
