package typeguard

import (
	"errors"
	"fmt"

	"github.com/dmitrymomot/typeguard/pkg/annotation"
	"github.com/dmitrymomot/typeguard/pkg/conform"
	"github.com/dmitrymomot/typeguard/pkg/signature"
)

var (
	// ErrIntrospection is returned at decoration time when the parameters of a
	// callable cannot be determined.
	ErrIntrospection = signature.ErrIntrospection

	// ErrTypeMismatch is returned at call time when an argument does not conform
	// to its declared annotation.
	ErrTypeMismatch = errors.New("type mismatch")
)

// IntrospectionError reports a callable that cannot be decorated.
type IntrospectionError struct {
	Callable string
	Err      error
}

func (e *IntrospectionError) Error() string {
	return fmt.Sprintf("typeguard: cannot decorate %s: %v", e.Callable, e.Err)
}

func (e *IntrospectionError) Unwrap() error { return e.Err }

// TypeMismatch reports an argument that failed validation. For literal
// annotations the offending value is reported, otherwise its runtime type.
type TypeMismatch struct {
	Param      string
	Annotation annotation.Annotation
	Value      any
	Literal    bool
}

func (e *TypeMismatch) Error() string {
	if e.Literal {
		return fmt.Sprintf("typeguard: expected type '%s' for parameter '%s' but received value '%v'",
			e.Annotation, e.Param, e.Value)
	}
	return fmt.Sprintf("typeguard: expected type '%s' for parameter '%s' but received type '%s'",
		e.Annotation, e.Param, conform.RuntimeTypeName(e.Value))
}

func (e *TypeMismatch) Is(target error) bool { return target == ErrTypeMismatch }

// IsTypeMismatch reports whether err is or wraps a TypeMismatch.
func IsTypeMismatch(err error) bool {
	return errors.Is(err, ErrTypeMismatch)
}

// AsTypeMismatch extracts a TypeMismatch from err.
func AsTypeMismatch(err error) (*TypeMismatch, bool) {
	if err == nil {
		return nil, false
	}
	var mismatch *TypeMismatch
	if errors.As(err, &mismatch) {
		return mismatch, true
	}
	return nil, false
}

// IsIntrospectionError reports whether err was produced while decorating a callable.
func IsIntrospectionError(err error) bool {
	return errors.Is(err, ErrIntrospection)
}
