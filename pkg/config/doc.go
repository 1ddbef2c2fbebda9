// Package config loads typed configuration from environment variables.
//
// It wraps `github.com/caarlos0/env/v11` and `github.com/joho/godotenv`:
//
//   - Parse reads the process environment into any struct using `env` field
//     tags. It has no side effects on the environment.
//   - LoadEnv reads one or more `.env` files into the process environment.
//     Nothing reads a `.env` file unless LoadEnv is called.
//
// # Usage
//
//	type Config struct {
//	    Disabled bool       `env:"TYPEGUARD_DISABLED" envDefault:"false"`
//	    Level    slog.Level `env:"TYPEGUARD_LOG_LEVEL" envDefault:"INFO"`
//	}
//
//	if err := config.LoadEnv("local.env"); err != nil {
//	    log.Fatalf("loading env file: %v", err)
//	}
//
//	var cfg Config
//	if err := config.Parse(&cfg); err != nil {
//	    log.Fatalf("parsing env: %v", err)
//	}
//
// # Error Handling
//
// Errors can be compared with `errors.Is`:
//
//   - ErrParsingConfig  - failed to parse env vars into the struct
//   - ErrLoadingEnvFile - a .env file could not be read
//   - ErrNilPointer     - nil pointer passed to Parse
package config
