package typeguard

import (
	"github.com/dmitrymomot/typeguard/pkg/annotation"
	"github.com/dmitrymomot/typeguard/pkg/conform"
	"github.com/dmitrymomot/typeguard/pkg/signature"
)

// Args holds the values supplied to one call.
type Args struct {
	Positional []any
	Keyword    map[string]any
}

// Positional builds Args from positional values only.
func Positional(values ...any) Args {
	return Args{Positional: values}
}

// Keyword builds Args from keyword values only.
func Keyword(values map[string]any) Args {
	return Args{Keyword: values}
}

// With returns a copy of a with the keyword name set to v.
func (a Args) With(name string, v any) Args {
	kw := make(map[string]any, len(a.Keyword)+1)
	for k, val := range a.Keyword {
		kw[k] = val
	}
	kw[name] = v
	return Args{Positional: a.Positional, Keyword: kw}
}

// prepend returns a copy of a with v bound before the positional values.
func (a Args) prepend(v any) Args {
	positional := make([]any, 0, len(a.Positional)+1)
	positional = append(positional, v)
	positional = append(positional, a.Positional...)
	return Args{Positional: positional, Keyword: a.Keyword}
}

// Func is a dynamically typed callable.
type Func func(args Args) (any, error)

// Bind associates the supplied values with parameter names. Positional values
// are matched to names in declaration order and values beyond the declared
// parameters are dropped; keyword values then override them.
func Bind(sig signature.Signature, args Args) map[string]any {
	names := sig.Names()
	bound := make(map[string]any, len(names)+len(args.Keyword))
	for i, v := range args.Positional {
		if i >= len(names) {
			break
		}
		bound[names[i]] = v
	}
	for name, v := range args.Keyword {
		bound[name] = v
	}
	return bound
}

// Check binds args to sig and validates every annotated argument in
// declaration order. It returns the first TypeMismatch, or nil.
func Check(sig signature.Signature, args Args) error {
	if !sig.Annotated() {
		return nil
	}
	bound := Bind(sig, args)
	for _, name := range sig.Names() {
		declared, ok := sig.Annotation(name)
		if !ok {
			continue
		}
		v, ok := bound[name]
		if !ok {
			continue
		}
		c := annotation.Normalize(declared)
		if conform.Validate(c, v) {
			continue
		}
		_, literal := c.(annotation.LiteralSet)
		return &TypeMismatch{Param: name, Annotation: declared, Value: v, Literal: literal}
	}
	return nil
}
