package config

import (
	"errors"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Parse reads the current process environment into v using `env` field tags.
// It never reads .env files; call LoadEnv first when that is wanted.
//
// Example:
//
//	type Config struct {
//		Disabled bool `env:"TYPEGUARD_DISABLED" envDefault:"false"`
//	}
//
//	var cfg Config
//	if err := config.Parse(&cfg); err != nil {
//		// Handle error
//	}
func Parse[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// LoadEnv reads the given .env files into the process environment.
// With no paths it reads .env from the working directory.
// Variables that are already set are not overridden.
func LoadEnv(paths ...string) error {
	if err := godotenv.Load(paths...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}
