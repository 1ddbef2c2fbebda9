// Package annotation models the type contracts declared on callable parameters
// and classifies them for runtime validation.
//
// An Annotation is one of a closed set of shapes:
//
//   - Type        - a plain runtime type (Of[int](), TypeOf(rt), None)
//   - Kind        - every runtime type sharing a reflect.Kind (KindOf(reflect.Slice))
//   - SpecialForm - a typing construct such as Any that is not a runtime type
//   - Generic     - a container parameterization (SliceOf, MapOf, PointerOf, ChanOf)
//   - Applied     - a special form applied to arguments (Union, Literal, Optional, Final)
//
// Generic and Applied implement Parameterized: they expose the construct they
// were built from (Origin) and its arguments (Args).
//
// # Normalization
//
// Normalize reduces any Annotation to a Classification, a tagged variant with
// exactly three cases:
//
//   - Skip       - no constraint; the parameter is never checked
//   - LiteralSet - the value must equal one of a fixed set of values
//   - TypeSet    - the value's runtime type must match one of a set of alternatives
//
// Classification is a pure function of the annotation and is never cached.
//
// # Usage
//
//	mode := annotation.Literal("fast", "slow")
//	switch c := annotation.Normalize(mode).(type) {
//	case annotation.LiteralSet:
//	    fmt.Println(c.Values) // [fast slow]
//	}
//
// Element types of containers are described but never enforced: SliceOf(Of[int]())
// normalizes to the set of all slices.
package annotation
