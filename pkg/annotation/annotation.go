package annotation

import (
	"fmt"
	"reflect"
	"strings"
)

// Annotation is a type contract declared on a parameter.
// The set of implementations is closed; use the constructors in this package.
type Annotation interface {
	fmt.Stringer
	annotation()
}

// RuntimeType is an Annotation that values can be matched against directly.
// It is implemented by Type and Kind.
type RuntimeType interface {
	Annotation
	runtimeType()
}

// Parameterized annotations expose the construct they were built from and the
// arguments it was applied to.
type Parameterized interface {
	Annotation
	Origin() any
	Args() []any
}

// noneType is the runtime type assigned to the untyped nil value.
type noneType struct{}

// Type is a plain runtime type.
type Type struct {
	rt reflect.Type
}

// None is the type of the untyped nil value.
var None = Type{rt: reflect.TypeFor[noneType]()}

// Of returns the plain type annotation for T.
// Interface types are allowed: Of[io.Reader]() accepts every implementation.
func Of[T any]() Type {
	return Type{rt: reflect.TypeFor[T]()}
}

// TypeOf returns the plain type annotation for rt. A nil rt yields None.
func TypeOf(rt reflect.Type) Type {
	if rt == nil {
		return None
	}
	return Type{rt: rt}
}

// Reflect returns the underlying reflect.Type.
func (t Type) Reflect() reflect.Type { return t.rt }

// IsNone reports whether t is the type of the untyped nil value.
func (t Type) IsNone() bool { return t.rt == None.rt }

func (t Type) String() string {
	if t.rt == nil {
		return "<invalid>"
	}
	if t.IsNone() {
		return "None"
	}
	return t.rt.String()
}

func (Type) annotation()  {}
func (Type) runtimeType() {}

// Kind matches every runtime type of one reflect.Kind.
type Kind struct {
	kind reflect.Kind
}

// KindOf returns the annotation matching all types of kind k.
func KindOf(k reflect.Kind) Kind {
	return Kind{kind: k}
}

// Reflect returns the underlying reflect.Kind.
func (k Kind) Reflect() reflect.Kind { return k.kind }

func (k Kind) String() string { return k.kind.String() }

func (Kind) annotation()  {}
func (Kind) runtimeType() {}

// SpecialForm is a typing construct that is not itself a runtime type.
// Used bare, a special form imposes no constraint.
type SpecialForm struct {
	name     string
	catchAll bool
}

var (
	// Any accepts every value.
	Any = &SpecialForm{name: "Any", catchAll: true}
	// UnionForm is the origin of Union and Optional annotations.
	UnionForm = &SpecialForm{name: "Union"}
	// OptionalForm is kept for introspection of Optional annotations.
	OptionalForm = &SpecialForm{name: "Optional"}
	// LiteralForm is the origin of Literal annotations.
	LiteralForm = &SpecialForm{name: "Literal"}
	// FinalForm is the origin of Final annotations.
	FinalForm = &SpecialForm{name: "Final"}
)

func (f *SpecialForm) String() string {
	if f == nil {
		return "<invalid>"
	}
	return f.name
}

// CatchAll reports whether the form means "no constraint".
func (f *SpecialForm) CatchAll() bool { return f != nil && f.catchAll }

func (*SpecialForm) annotation() {}

// Generic is a container parameterized by element annotations, such as a slice
// of int. Only the origin is enforced.
type Generic struct {
	origin RuntimeType
	args   []Annotation
}

// NewGeneric builds a parameterized container annotation.
func NewGeneric(origin RuntimeType, args ...Annotation) Generic {
	return Generic{origin: origin, args: append([]Annotation(nil), args...)}
}

// SliceOf describes a slice with elements of elem.
func SliceOf(elem Annotation) Generic {
	return NewGeneric(KindOf(reflect.Slice), elem)
}

// MapOf describes a map from key to elem.
func MapOf(key, elem Annotation) Generic {
	return NewGeneric(KindOf(reflect.Map), key, elem)
}

// PointerOf describes a pointer to elem.
func PointerOf(elem Annotation) Generic {
	return NewGeneric(KindOf(reflect.Pointer), elem)
}

// ChanOf describes a channel of elem.
func ChanOf(elem Annotation) Generic {
	return NewGeneric(KindOf(reflect.Chan), elem)
}

// Origin returns the container runtime type.
func (g Generic) Origin() any { return g.origin }

// Args returns the element annotations.
func (g Generic) Args() []any {
	out := make([]any, len(g.args))
	for i, a := range g.args {
		out[i] = a
	}
	return out
}

func (g Generic) String() string {
	if g.origin == nil {
		return formatApplied("<invalid>", g.Args(), false)
	}
	return formatApplied(g.origin.String(), g.Args(), false)
}

func (Generic) annotation() {}

// Applied is a special form applied to arguments: a union of types, a literal
// value set, or a qualifier.
type Applied struct {
	form *SpecialForm
	args []any
	name string
}

// Origin returns the special form the annotation was built from.
func (a Applied) Origin() any { return a.form }

// Args returns a copy of the arguments. For Literal these are values, for the
// other forms they are annotations.
func (a Applied) Args() []any { return append([]any(nil), a.args...) }

func (a Applied) String() string {
	if a.form == nil {
		return formatApplied("<invalid>", a.args, false)
	}
	if a.name == OptionalForm.name {
		shown := make([]any, 0, len(a.args))
		for _, arg := range a.args {
			if t, ok := arg.(Type); ok && t.IsNone() {
				continue
			}
			shown = append(shown, arg)
		}
		return formatApplied(a.name, shown, false)
	}
	return formatApplied(a.form.name, a.args, a.form == LiteralForm)
}

func (Applied) annotation() {}

// Union accepts a value matching any of the alternatives.
// Nested unions are flattened and duplicates dropped.
func Union(alternatives ...Annotation) Applied {
	return Applied{form: UnionForm, args: flattenUnion(alternatives)}
}

// Optional accepts a value matching a, or the untyped nil.
func Optional(a Annotation) Applied {
	u := Union(a, None)
	u.name = OptionalForm.name
	return u
}

// Literal accepts only values equal to one of values.
func Literal(values ...any) Applied {
	return Applied{form: LiteralForm, args: append([]any(nil), values...)}
}

// Final qualifies a as not reassignable; it validates as a.
func Final(a Annotation) Applied {
	return Applied{form: FinalForm, args: []any{a}}
}

func flattenUnion(alternatives []Annotation) []any {
	out := make([]any, 0, len(alternatives))
	seen := make(map[RuntimeType]bool, len(alternatives))
	var add func(a Annotation)
	add = func(a Annotation) {
		switch a := a.(type) {
		case nil:
			return
		case Applied:
			if a.form == UnionForm {
				for _, inner := range a.args {
					add(inner.(Annotation))
				}
				return
			}
		case RuntimeType:
			if seen[a] {
				return
			}
			seen[a] = true
		}
		out = append(out, a)
	}
	for _, a := range alternatives {
		add(a)
	}
	return out
}

func formatApplied(name string, args []any, literal bool) string {
	parts := make([]string, len(args))
	for i, arg := range args {
		if literal {
			parts[i] = formatLiteral(arg)
			continue
		}
		parts[i] = fmt.Sprint(arg)
	}
	return name + "[" + strings.Join(parts, ", ") + "]"
}

func formatLiteral(v any) string {
	switch v := v.(type) {
	case nil:
		return "None"
	case string:
		return fmt.Sprintf("%q", v)
	default:
		return fmt.Sprintf("%v", v)
	}
}
