package config

import (
	"github.com/maxviazov/tournament-standings/internal/logger"
)

type Config struct {
	Logger logger.LoggerConfig `mapstructure:"logger"`
	Stats  StatsConfig         `mapstructure:"stats"`
}

// StatsConfig controls how tournaments are scored.
type StatsConfig struct {
	// SkipUnplayed excludes matches with no recorded score. Off by default: they count as 0-0.
	SkipUnplayed bool `mapstructure:"skip_unplayed"`
	Workers      int  `mapstructure:"workers" validate:"gte=1,lte=64"`
}
