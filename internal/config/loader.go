package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// defaults are registered so APP_* variables apply even without a config file.
var defaults = map[string]any{
	"logger.level":                "",
	"logger.format":               "",
	"logger.output_target":        "",
	"logger.time_field":           "",
	"logger.time_format":          "",
	"logger.service_name":         "",
	"logger.service_version":      "",
	"logger.env":                  "",
	"logger.with_caller":          false,
	"logger.stacktrace":           false,
	"logger.stacktrace_min_level": "",
	"stats.skip_unplayed":         false,
	"stats.workers":               4,
}

// Load reads the YAML file at path (skipped when path is empty) and applies APP_* overrides,
// e.g. APP_STATS_SKIP_UNPLAYED=true. A .env file in the working directory is loaded first if present.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	for k, val := range defaults {
		v.SetDefault(k, val)
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.SetEnvPrefix("APP")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config file not found: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := validator.New().Struct(config.Stats); err != nil {
		return nil, fmt.Errorf("stats config validation error: %w", err)
	}
	return &config, nil
}
