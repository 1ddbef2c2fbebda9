package conform

import (
	"reflect"

	"github.com/dmitrymomot/typeguard/pkg/annotation"
)

// Validate reports whether v conforms to c.
func Validate(c annotation.Classification, v any) bool {
	switch c := c.(type) {
	case annotation.Skip:
		return true
	case annotation.LiteralSet:
		for _, allowed := range c.Values {
			if literalEqual(allowed, v) {
				return true
			}
		}
		return false
	case annotation.TypeSet:
		for _, member := range c.Types {
			if matches(member, v) {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// Check normalizes a and validates v against it.
func Check(a annotation.Annotation, v any) bool {
	return Validate(annotation.Normalize(a), v)
}

// RuntimeTypeName describes the dynamic type of v for diagnostics.
func RuntimeTypeName(v any) string {
	if v == nil {
		return annotation.None.String()
	}
	return reflect.TypeOf(v).String()
}

func matches(member annotation.Annotation, v any) bool {
	switch m := member.(type) {
	case annotation.Type:
		return matchesType(m, v)
	case annotation.Kind:
		return v != nil && reflect.TypeOf(v).Kind() == m.Reflect()
	default:
		return Check(member, v)
	}
}

func matchesType(t annotation.Type, v any) bool {
	if v == nil {
		return t.IsNone()
	}
	want := t.Reflect()
	if want == nil {
		return false
	}
	got := reflect.TypeOf(v)
	if want.Kind() == reflect.Interface {
		return got.Implements(want)
	}
	return got == want
}

func literalEqual(allowed, v any) bool {
	if allowed == nil || v == nil {
		return allowed == nil && v == nil
	}
	if reflect.TypeOf(allowed) != reflect.TypeOf(v) {
		return false
	}
	a, b := reflect.ValueOf(allowed), reflect.ValueOf(v)
	if a.Comparable() && b.Comparable() {
		return a.Equal(b)
	}
	return reflect.DeepEqual(allowed, v)
}
