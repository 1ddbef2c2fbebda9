package logger

import "log/slog"

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Callable records the name of a decorated callable under the key "callable".
func Callable(name string) slog.Attr {
	return slog.String("callable", name)
}

// Signature records a rendered parameter list under the key "signature".
func Signature(sig string) slog.Attr {
	return slog.String("signature", sig)
}

// Param records a parameter name under the key "param".
func Param(name string) slog.Attr {
	return slog.String("param", name)
}

// Annotation records a declared annotation under the key "annotation".
// If a is nil, it returns an empty Attr.
func Annotation(a any) slog.Attr {
	if a == nil {
		return slog.Attr{}
	}
	return slog.Any("annotation", a)
}

// Disabled records whether enforcement is switched off under the key "disabled".
func Disabled(disabled bool) slog.Attr {
	return slog.Bool("disabled", disabled)
}
