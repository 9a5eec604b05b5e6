// Package config loads service configuration from the environment.
package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config holds the service settings. Values come from ADVISOR_CAL_*
// environment variables; command-line flags may override the address
// and data directory.
type Config struct {
	Addr                 string `envconfig:"ADDR" default:":8099"`
	DataDir              string `envconfig:"DATA_DIR" default:"/data"`
	ReminderIntervalMin  int    `envconfig:"REMINDER_INTERVAL_MIN" default:"5"`
	ReminderLookaheadMin int    `envconfig:"REMINDER_LOOKAHEAD_MIN" default:"15"`
}

// Load reads the configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("ADVISOR_CAL", &cfg); err != nil {
		return Config{}, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}
