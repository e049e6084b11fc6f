package config

import (
	"os"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config is the YAML configuration file. Include is the file whitelist
// (shell globs matched against base names); empty means snapshot every
// file. IntervalSeconds drives the watch poll loop.
type Config struct {
	Include         []string `yaml:"include"`
	IntervalSeconds int      `yaml:"interval_seconds"`
	OutputFile      string   `yaml:"output_file"`
}

const defaultIntervalSeconds = 2

func DefaultConfig() *Config {
	return &Config{
		Include:         []string{},
		IntervalSeconds: defaultIntervalSeconds,
	}
}

// LoadConfig reads a YAML config from path. A missing file is not an
// error: the defaults are returned.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, errors.Wrapf(err, "reading config %s", path)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrapf(err, "parsing config %s", path)
	}

	// Normalize empty configs
	if cfg.Include == nil {
		cfg.Include = []string{}
	}
	if cfg.IntervalSeconds <= 0 {
		cfg.IntervalSeconds = defaultIntervalSeconds
	}

	return &cfg, nil
}

// Interval returns the poll interval as a duration.
func (c *Config) Interval() time.Duration {
	return time.Duration(c.IntervalSeconds) * time.Second
}
