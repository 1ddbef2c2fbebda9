// Package typeguard enforces declared parameter types at the call boundary of
// dynamically typed callables.
//
// A decorated callable binds every call's arguments to its declared parameter
// names, validates each annotated argument against its annotation and only then
// delegates to the original callable with the original, unmodified arguments.
// The first failing parameter aborts the call with a *TypeMismatch; the original
// is never invoked.
//
// Key Features:
//
//   - Dynamic callables (Func) with positional and keyword arguments
//   - Native Go functions wrapped with reflect.MakeFunc, keeping their exact type
//   - Classes (Class[T]) whose constructor slot is replaced in place
//   - Plain types, unions, optionals, literal value sets and the Any catch-all
//   - Environment-driven configuration and slog diagnostics at decoration time
//
// Basic Usage:
//
//	greet, err := typeguard.Enforce(
//		func(args typeguard.Args) (any, error) {
//			return fmt.Sprintf("%v %v", args.Positional[0], args.Positional[1]), nil
//		},
//		typeguard.P("a", annotation.Of[int]()),
//		typeguard.P("b", annotation.Of[string]()),
//	)
//	if err != nil {
//		// the callable could not be introspected
//	}
//
//	greet(typeguard.Positional(1, "x")) // ok
//	greet(typeguard.Positional(1, 2))   // *TypeMismatch naming parameter "b"
//
// Native functions keep their type:
//
//	store := typeguard.MustWrap(func(key string, v any) error { ... },
//		typeguard.Untyped("key"),
//		typeguard.P("v", annotation.Union(annotation.Of[int](), annotation.Of[float64]())),
//	)
//
// Binding:
//
// Positional values are matched to parameter names in declaration order, then
// keyword values are merged over them: when a name is supplied both ways the
// keyword value wins. Parameters without an annotation are never checked.
//
// Classes:
//
// EnforceClass replaces Class.Init and returns the same *Class. The instance is
// bound to the first declared parameter, so a receiver annotation is validated
// like any other.
//
// Errors:
//
// Decoration fails with an *IntrospectionError (errors.Is ErrIntrospection).
// Calls fail with a *TypeMismatch (errors.Is ErrTypeMismatch). Errors returned by
// the original callable pass through unchanged.
package typeguard
