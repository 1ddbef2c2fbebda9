package typeguard

import (
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/typeguard/pkg/config"
	"github.com/dmitrymomot/typeguard/pkg/logger"
)

// Config holds the environment-driven settings of an Enforcer.
type Config struct {
	Disabled  bool          `env:"TYPEGUARD_DISABLED" envDefault:"false"`
	LogLevel  slog.Level    `env:"TYPEGUARD_LOG_LEVEL" envDefault:"INFO"`
	LogFormat logger.Format `env:"TYPEGUARD_LOG_FORMAT" envDefault:"json"`
}

// ParseConfig reads Config from the current process environment.
// It does not read .env files.
func ParseConfig() (Config, error) {
	var cfg Config
	if err := config.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, cfg.validate()
}

func (c Config) validate() error {
	switch c.LogFormat {
	case logger.FormatJSON, logger.FormatText:
		return nil
	default:
		return fmt.Errorf("%w: invalid log format %q", config.ErrParsingConfig, c.LogFormat)
	}
}
