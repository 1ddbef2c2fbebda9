package typeguard

import (
	"context"
	"fmt"
	"log/slog"
	"reflect"
	"runtime"
	"strconv"

	"github.com/dmitrymomot/typeguard/pkg/annotation"
	"github.com/dmitrymomot/typeguard/pkg/logger"
	"github.com/dmitrymomot/typeguard/pkg/signature"
)

// Param declares one parameter of a decorated callable.
type Param = signature.Param

// P declares a parameter with an annotation.
func P(name string, a annotation.Annotation) Param {
	return signature.P(name, a)
}

// Untyped declares a parameter without an annotation.
func Untyped(name string) Param {
	return signature.Untyped(name)
}

var errorType = reflect.TypeFor[error]()

// Enforce returns a Func that validates its arguments against params before
// delegating to fn with the original arguments.
func (e *Enforcer) Enforce(fn Func, params ...Param) (Func, error) {
	name := funcName(fn)
	if fn == nil {
		return nil, e.introspectionFailed(name, fmt.Errorf("%w: nil callable", ErrIntrospection))
	}
	sig, err := signature.New(params...)
	if err != nil {
		return nil, e.introspectionFailed(name, err)
	}
	e.decorated(name, sig)
	if e.disabled {
		return fn, nil
	}
	return func(args Args) (any, error) {
		if err := Check(sig, args); err != nil {
			return nil, err
		}
		return fn(args)
	}, nil
}

// EnforceTypes decorates target, which is a Func, a *Class[T] or any native
// Go function. Functions are returned as new values of the same type; a class
// is returned as the same pointer with its constructor replaced.
//
// A native function whose last result is an error reports a TypeMismatch
// through it, with every other result zeroed. Any other native function
// panics with the *TypeMismatch.
func (e *Enforcer) EnforceTypes(target any, params ...Param) (any, error) {
	switch t := target.(type) {
	case Func:
		wrapped, err := e.Enforce(t, params...)
		if err != nil {
			return nil, err
		}
		return wrapped, nil
	case func(Args) (any, error):
		wrapped, err := e.Enforce(t, params...)
		if err != nil {
			return nil, err
		}
		return (func(Args) (any, error))(wrapped), nil
	case constructor:
		wrapped, err := e.enforceClass(t, params)
		if err != nil {
			return nil, err
		}
		return wrapped, nil
	default:
		return e.wrapNative(target, params)
	}
}

func (e *Enforcer) enforceClass(c constructor, params []Param) (constructor, error) {
	name := c.className()
	var (
		sig signature.Signature
		err error
	)
	if len(c.Parameters()) == 0 {
		sig, err = signature.New(params...)
	} else {
		sig, err = signature.Extract(c, params...)
	}
	if err != nil {
		return nil, e.introspectionFailed(name, err)
	}
	e.decorated(name, sig)
	if !e.disabled {
		c.interceptInit(sig)
	}
	return c, nil
}

func (e *Enforcer) wrapNative(fn any, params []Param) (any, error) {
	name := funcName(fn)
	sig, err := signature.FromFunc(fn, params...)
	if err != nil {
		return nil, e.introspectionFailed(name, err)
	}
	e.decorated(name, sig)
	if e.disabled {
		return fn, nil
	}

	original := reflect.ValueOf(fn)
	ft := original.Type()
	returnsError := ft.NumOut() > 0 && ft.Out(ft.NumOut()-1) == errorType

	wrapped := reflect.MakeFunc(ft, func(in []reflect.Value) []reflect.Value {
		positional := make([]any, len(in))
		for i, v := range in {
			positional[i] = v.Interface()
		}
		if err := Check(sig, Positional(positional...)); err != nil {
			if !returnsError {
				panic(err)
			}
			out := make([]reflect.Value, ft.NumOut())
			for i := range out {
				out[i] = reflect.Zero(ft.Out(i))
			}
			out[len(out)-1] = reflect.ValueOf(&err).Elem()
			return out
		}
		if ft.IsVariadic() {
			return original.CallSlice(in)
		}
		return original.Call(in)
	})
	return wrapped.Interface(), nil
}

func (e *Enforcer) decorated(name string, sig signature.Signature) {
	ctx := context.Background()
	if !e.log.Enabled(ctx, slog.LevelDebug) {
		return
	}
	params := make([]slog.Attr, 0, sig.Len())
	for i, p := range sig.Names() {
		attrs := []slog.Attr{logger.Param(p)}
		if a, ok := sig.Annotation(p); ok && a != nil {
			attrs = append(attrs, logger.Annotation(a.String()))
		}
		params = append(params, logger.Group(strconv.Itoa(i), attrs...))
	}
	e.log.LogAttrs(ctx, slog.LevelDebug, "callable decorated",
		logger.Callable(name),
		logger.Signature(sig.String()),
		logger.Disabled(e.disabled),
		logger.Group("params", params...),
	)
}

func (e *Enforcer) introspectionFailed(name string, err error) error {
	e.log.Warn("callable cannot be decorated", logger.Callable(name), logger.Error(err))
	return &IntrospectionError{Callable: name, Err: err}
}

// WrapWith decorates fn using e and returns it with its original type.
func WrapWith[F any](e *Enforcer, fn F, params ...Param) (F, error) {
	wrapped, err := e.EnforceTypes(fn, params...)
	if err != nil {
		var zero F
		return zero, err
	}
	return wrapped.(F), nil
}

// Wrap decorates fn using the default enforcer. See Enforcer.EnforceTypes.
func Wrap[F any](fn F, params ...Param) (F, error) {
	return WrapWith(Default(), fn, params...)
}

// MustWrap is like Wrap but panics if fn cannot be decorated.
func MustWrap[F any](fn F, params ...Param) F {
	wrapped, err := Wrap(fn, params...)
	if err != nil {
		panic(err)
	}
	return wrapped
}

// Enforce decorates a Func using the default enforcer.
func Enforce(fn Func, params ...Param) (Func, error) {
	return Default().Enforce(fn, params...)
}

// EnforceTypes decorates target using the default enforcer.
func EnforceTypes(target any, params ...Param) (any, error) {
	return Default().EnforceTypes(target, params...)
}

// EnforceClass replaces the constructor of c with a validating one and
// returns c. Parameters come either from the class or from params: passing
// params to a class that already declares Params is an IntrospectionError.
// The receiver binds to the first parameter.
func EnforceClass[T any](c *Class[T], params ...Param) (*Class[T], error) {
	return WrapWith(Default(), c, params...)
}

// MustEnforceClass is like EnforceClass but panics if c cannot be decorated.
func MustEnforceClass[T any](c *Class[T], params ...Param) *Class[T] {
	return MustWrap(c, params...)
}

func funcName(fn any) string {
	rv := reflect.ValueOf(fn)
	if rv.Kind() != reflect.Func || rv.IsNil() {
		return fmt.Sprintf("%T", fn)
	}
	if f := runtime.FuncForPC(rv.Pointer()); f != nil {
		return f.Name()
	}
	return rv.Type().String()
}
