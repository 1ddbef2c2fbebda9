// Package signature extracts the ordered parameter names and declared
// annotations of a callable. Extraction happens once, when a callable is
// decorated; the resulting Signature is immutable and safe for concurrent use.
package signature

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/dmitrymomot/typeguard/pkg/annotation"
)

// Param declares one parameter. A nil Annotation means the parameter carries
// no contract and is never checked.
type Param struct {
	Name       string
	Annotation annotation.Annotation
}

// P is shorthand for an annotated Param.
func P(name string, a annotation.Annotation) Param {
	return Param{Name: name, Annotation: a}
}

// Untyped declares a parameter without an annotation.
func Untyped(name string) Param {
	return Param{Name: name}
}

// Introspector is implemented by callables that can describe their own parameters.
type Introspector interface {
	Parameters() []Param
}

// Signature is the ordered parameter list of a callable together with the
// annotations declared on it.
type Signature struct {
	names       []string
	annotations map[string]annotation.Annotation
}

// New builds a Signature from declared parameters.
// Parameter names must be non-empty and unique.
func New(params ...Param) (Signature, error) {
	sig := Signature{
		names:       make([]string, 0, len(params)),
		annotations: make(map[string]annotation.Annotation, len(params)),
	}
	seen := make(map[string]bool, len(params))
	for i, p := range params {
		if p.Name == "" {
			return Signature{}, fmt.Errorf("%w: parameter %d has no name", ErrIntrospection, i)
		}
		if seen[p.Name] {
			return Signature{}, fmt.Errorf("%w: duplicate parameter %q", ErrIntrospection, p.Name)
		}
		seen[p.Name] = true
		sig.names = append(sig.names, p.Name)
		if p.Annotation != nil {
			sig.annotations[p.Name] = p.Annotation
		}
	}
	return sig, nil
}

// FromFunc builds the Signature of a native Go function. Go does not retain
// parameter names at runtime, so one Param must be declared per parameter;
// a variadic tail counts as a single parameter bound to the whole slice.
func FromFunc(fn any, params ...Param) (Signature, error) {
	rv := reflect.ValueOf(fn)
	if rv.Kind() != reflect.Func || rv.IsNil() {
		return Signature{}, fmt.Errorf("%w: %T is not a function", ErrIntrospection, fn)
	}
	if n := rv.Type().NumIn(); n != len(params) {
		return Signature{}, fmt.Errorf("%w: %s takes %d parameters, %d declared",
			ErrIntrospection, rv.Type(), n, len(params))
	}
	return New(params...)
}

// Extract builds the Signature of callable. An Introspector describes itself
// and must not be given declared parameters; a function value is handled by
// FromFunc. Anything else cannot be introspected.
func Extract(callable any, declared ...Param) (Signature, error) {
	switch c := callable.(type) {
	case nil:
		return Signature{}, fmt.Errorf("%w: nil callable", ErrIntrospection)
	case Introspector:
		if len(declared) > 0 {
			return Signature{}, fmt.Errorf("%w: %T describes its own parameters", ErrIntrospection, callable)
		}
		return New(c.Parameters()...)
	default:
		return FromFunc(callable, declared...)
	}
}

// Names returns the parameter names in declaration order.
func (s Signature) Names() []string {
	return append([]string(nil), s.names...)
}

// Len returns the number of declared parameters.
func (s Signature) Len() int { return len(s.names) }

// Annotation returns the annotation declared on name, if any.
func (s Signature) Annotation(name string) (annotation.Annotation, bool) {
	a, ok := s.annotations[name]
	return a, ok
}

// Annotated reports whether any parameter carries an annotation.
func (s Signature) Annotated() bool { return len(s.annotations) > 0 }

func (s Signature) String() string {
	parts := make([]string, len(s.names))
	for i, name := range s.names {
		if a, ok := s.annotations[name]; ok {
			parts[i] = name + ": " + a.String()
			continue
		}
		parts[i] = name
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
