package typeguard

import (
	"log/slog"
	"os"
	"sync"
	"sync/atomic"

	"github.com/dmitrymomot/typeguard/pkg/config"
	"github.com/dmitrymomot/typeguard/pkg/logger"
)

// Enforcer decorates callables with argument validation.
// It is immutable after construction and safe for concurrent use.
type Enforcer struct {
	log      *slog.Logger
	disabled bool
}

// Option configures an Enforcer.
type Option func(*Enforcer)

// WithLogger sets the logger used for decoration diagnostics.
// Nil loggers are ignored.
func WithLogger(l *slog.Logger) Option {
	return func(e *Enforcer) {
		if l != nil {
			e.log = l
		}
	}
}

// WithDisabled turns decoration into a pass-through: callables are still
// introspected but returned unwrapped.
func WithDisabled(disabled bool) Option {
	return func(e *Enforcer) { e.disabled = disabled }
}

// WithConfig applies environment-driven settings.
// Decoration events are logged to stderr at the configured level; an invalid
// log format panics.
func WithConfig(cfg Config) Option {
	return func(e *Enforcer) {
		format := cfg.LogFormat
		if format == "" {
			format = logger.FormatJSON
		}
		e.disabled = cfg.Disabled
		e.log = logger.New(
			logger.WithLevel(cfg.LogLevel),
			logger.WithFormat(format),
			logger.WithOutput(os.Stderr),
			logger.WithAttr(logger.Component("typeguard")),
		)
	}
}

// New creates an Enforcer. Without options it validates every call and logs nothing.
func New(opts ...Option) *Enforcer {
	e := &Enforcer{log: logger.Discard()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// NewFromEnv creates an Enforcer configured from the environment.
// Options are applied after the environment settings.
func NewFromEnv(opts ...Option) (*Enforcer, error) {
	cfg, err := ParseConfig()
	if err != nil {
		return nil, err
	}
	return New(append([]Option{WithConfig(cfg)}, opts...)...), nil
}

// NewFromEnvFiles loads the given .env files into the process environment
// and then behaves like NewFromEnv. With no paths it reads .env from the
// working directory.
func NewFromEnvFiles(paths []string, opts ...Option) (*Enforcer, error) {
	if err := config.LoadEnv(paths...); err != nil {
		return nil, err
	}
	return NewFromEnv(opts...)
}

// Disabled reports whether the enforcer passes callables through unwrapped.
func (e *Enforcer) Disabled() bool { return e.disabled }

var (
	defaultEnforcer atomic.Pointer[Enforcer]
	defaultOnce     sync.Once
)

// Default returns the enforcer used by the package-level functions. Its
// logging is configured from the environment on first use and an unreadable
// environment falls back to New(). The default enforcer always enforces:
// TYPEGUARD_DISABLED is honoured only by NewFromEnv, since the package-level
// functions are shared by every library in the process.
func Default() *Enforcer {
	defaultOnce.Do(func() {
		if defaultEnforcer.Load() != nil {
			return
		}
		defaultEnforcer.CompareAndSwap(nil, newDefault())
	})
	return defaultEnforcer.Load()
}

func newDefault() *Enforcer {
	cfg, err := ParseConfig()
	if err != nil {
		slog.Warn("typeguard: falling back to default configuration", logger.Error(err))
		return New()
	}
	if cfg.Disabled {
		slog.Warn("typeguard: TYPEGUARD_DISABLED is ignored by the default enforcer; use NewFromEnv to opt out")
		cfg.Disabled = false
	}
	return New(WithConfig(cfg))
}

// SetDefault replaces the enforcer used by the package-level functions.
func SetDefault(e *Enforcer) {
	if e != nil {
		defaultEnforcer.Store(e)
	}
}
