// Package logger provides a thin factory around Go's slog package with
// functional options and helper attribute constructors.
//
// New creates a *slog.Logger configured by Option functions:
//
//   • Select an output format (text or json)
//   • Set the minimum log level
//   • Supply default slog.Attr values applied to every record
//
// Discard returns a logger that drops every record; it is the default for
// enforcers that were not given a logger.
//
// Helper constructors such as Error, Component, Callable and Signature live in
// attr.go and keep attribute naming consistent across the module.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithLevel(slog.LevelDebug),
//	    logger.WithTextFormatter(),
//	    logger.WithAttr(logger.Component("typeguard")),
//	)
//	log.Debug("callable decorated", logger.Callable(name), logger.Signature(sig))
//
// # Error Handling
//
// Error and Errors produce attributes only for non-nil errors, so
//
//	log.Info("operation finished", logger.Error(err))
//
// needs no nil check.
package logger
