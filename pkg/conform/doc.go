// Package conform decides whether a runtime value satisfies a normalized
// annotation.
//
// Validate is a total function over annotation.Classification:
//
//   - annotation.Skip accepts everything
//   - annotation.LiteralSet accepts values equal to a member (same dynamic type
//     and equal value)
//   - annotation.TypeSet accepts values whose dynamic type matches a member
//
// Type matching never coerces. An int does not satisfy int64, and a named type
// does not satisfy its underlying type. Interface members are the only subtype
// relation: a value matches an interface type when its dynamic type implements
// it. The untyped nil matches only annotation.None.
//
// Usage:
//
//	ok := conform.Check(annotation.Union(annotation.Of[int](), annotation.Of[float64]()), 3)
package conform
