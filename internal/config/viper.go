// Package config provides Viper-based hierarchical configuration management
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config represents the complete application configuration
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	Bai struct {
		// DefaultCurrency is applied by the currency cascade when a group
		// header carries no currency code.
		DefaultCurrency string `mapstructure:"default_currency" yaml:"default_currency"`
		// StrictTotals cross-checks trailer control totals against the
		// assembled document.
		StrictTotals bool `mapstructure:"strict_totals" yaml:"strict_totals"`
		// CodeOverlayFile points at an optional YAML file with site-local
		// type-code descriptions.
		CodeOverlayFile string `mapstructure:"code_overlay_file" yaml:"code_overlay_file"`
	} `mapstructure:"bai" yaml:"bai"`

	CSV struct {
		Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
	} `mapstructure:"csv" yaml:"csv"`
}

// InitializeConfig loads configuration from defaults, an optional config.yaml
// in the working directory, and the environment (highest precedence).
func InitializeConfig() (*Config, error) {
	v := viper.New()

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("bai.default_currency", "USD")
	v.SetDefault("bai.strict_totals", false)
	v.SetDefault("bai.code_overlay_file", "")
	v.SetDefault("csv.delimiter", ",")

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	bindings := map[string]string{
		"log.level":             "LOG_LEVEL",
		"log.format":            "LOG_FORMAT",
		"bai.default_currency":  "BAI_DEFAULT_CURRENCY",
		"bai.strict_totals":     "BAI_STRICT_TOTALS",
		"bai.code_overlay_file": "BAI_CODE_OVERLAY_FILE",
		"csv.delimiter":         "CSV_DELIMITER",
	}
	for key, env := range bindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}
