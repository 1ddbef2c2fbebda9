package conform_test

import (
	"bytes"
	"io"
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/typeguard/pkg/annotation"
	"github.com/dmitrymomot/typeguard/pkg/conform"
)

type celsius float64

type point struct{ X, Y int }

func TestValidate_Skip(t *testing.T) {
	t.Parallel()

	for _, v := range []any{nil, 1, "x", []int{1}, map[string]int{}, struct{}{}} {
		assert.True(t, conform.Validate(annotation.Skip{}, v))
	}
}

func TestValidate_TypeSet(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a    annotation.Annotation
		v    any
		want bool
	}{
		{name: "exact int", a: annotation.Of[int](), v: 5, want: true},
		{name: "string for int", a: annotation.Of[int](), v: "5", want: false},
		{name: "no widening int to int64", a: annotation.Of[int64](), v: 5, want: false},
		{name: "no narrowing float to int", a: annotation.Of[int](), v: 5.0, want: false},
		{name: "named type is distinct", a: annotation.Of[float64](), v: celsius(21.5), want: false},
		{name: "named type matches itself", a: annotation.Of[celsius](), v: celsius(21.5), want: true},
		{name: "interface implemented", a: annotation.Of[io.Reader](), v: strings.NewReader("x"), want: true},
		{name: "interface not implemented", a: annotation.Of[io.Reader](), v: 42, want: false},
		{name: "any interface", a: annotation.Of[any](), v: point{}, want: true},
		{name: "nil for interface", a: annotation.Of[io.Reader](), v: nil, want: false},
		{name: "nil for none", a: annotation.None, v: nil, want: true},
		{name: "value for none", a: annotation.None, v: 0, want: false},
		{name: "typed nil pointer", a: annotation.Of[*bytes.Buffer](), v: (*bytes.Buffer)(nil), want: true},
		{name: "struct", a: annotation.Of[point](), v: point{1, 2}, want: true},
		{name: "pointer to struct for struct", a: annotation.Of[point](), v: &point{}, want: false},
		{name: "kind slice", a: annotation.KindOf(reflect.Slice), v: []string{"a"}, want: true},
		{name: "kind slice for array", a: annotation.KindOf(reflect.Slice), v: [1]string{"a"}, want: false},
		{name: "kind nil", a: annotation.KindOf(reflect.Slice), v: nil, want: false},
		{name: "union int", a: annotation.Union(annotation.Of[int](), annotation.Of[float64]()), v: 1, want: true},
		{name: "union float", a: annotation.Union(annotation.Of[int](), annotation.Of[float64]()), v: 1.5, want: true},
		{name: "union string", a: annotation.Union(annotation.Of[int](), annotation.Of[float64]()), v: "1", want: false},
		{name: "optional nil", a: annotation.Optional(annotation.Of[string]()), v: nil, want: true},
		{name: "optional value", a: annotation.Optional(annotation.Of[string]()), v: "x", want: true},
		{name: "optional wrong", a: annotation.Optional(annotation.Of[string]()), v: 1, want: false},
		{name: "final", a: annotation.Final(annotation.Of[int]()), v: 1, want: true},
		{name: "final wrong", a: annotation.Final(annotation.Of[int]()), v: "1", want: false},
		{name: "slice of int any elements", a: annotation.SliceOf(annotation.Of[int]()), v: []string{"x"}, want: true},
		{name: "slice of int for map", a: annotation.SliceOf(annotation.Of[int]()), v: map[int]int{}, want: false},
		{name: "map of", a: annotation.MapOf(annotation.Of[string](), annotation.Any), v: map[string]int{}, want: true},
		{name: "pointer of", a: annotation.PointerOf(annotation.Of[point]()), v: &point{}, want: true},
		{name: "chan of", a: annotation.ChanOf(annotation.Of[int]()), v: make(chan int), want: true},
		{name: "union with literal member", a: annotation.Union(annotation.Of[int](), annotation.Literal("auto")), v: "auto", want: true},
		{name: "union with literal member miss", a: annotation.Union(annotation.Of[int](), annotation.Literal("auto")), v: "manual", want: false},
		{name: "union with any member", a: annotation.Union(annotation.Of[int](), annotation.Any), v: "anything", want: true},
		{name: "union of generics", a: annotation.Union(annotation.SliceOf(annotation.Any), annotation.Of[string]()), v: []int{1}, want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, conform.Check(tt.a, tt.v))
		})
	}
}

func TestValidate_EmptyTypeSet(t *testing.T) {
	t.Parallel()

	for _, v := range []any{nil, 0, "", struct{}{}} {
		assert.False(t, conform.Validate(annotation.TypeSet{}, v))
		assert.False(t, conform.Check(annotation.Union(), v))
	}
}

func TestValidate_ZeroValueAnnotations(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a    annotation.Annotation
	}{
		{name: "zero applied", a: annotation.Applied{}},
		{name: "zero generic", a: annotation.Generic{}},
		{name: "zero type", a: annotation.Type{}},
		{name: "nil special form", a: (*annotation.SpecialForm)(nil)},
		{name: "union of zero values", a: annotation.Union(annotation.Applied{}, annotation.Generic{})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			for _, v := range []any{nil, 1, "x", []int{1}} {
				assert.NotPanics(t, func() {
					assert.False(t, conform.Check(tt.a, v))
				})
			}
		})
	}
}

func TestValidate_LiteralSet(t *testing.T) {
	t.Parallel()

	modes := annotation.Literal("fast", "slow")
	tests := []struct {
		name string
		a    annotation.Annotation
		v    any
		want bool
	}{
		{name: "member", a: modes, v: "fast", want: true},
		{name: "other member", a: modes, v: "slow", want: true},
		{name: "not a member", a: modes, v: "medium", want: false},
		{name: "compatible type not in set", a: annotation.Literal(1, 2, 3), v: 4, want: false},
		{name: "equal value different type", a: annotation.Literal(1), v: int64(1), want: false},
		{name: "float and int", a: annotation.Literal(1.0), v: 1, want: false},
		{name: "nil literal", a: annotation.Literal(nil), v: nil, want: true},
		{name: "nil not in set", a: modes, v: nil, want: false},
		{name: "bool", a: annotation.Literal(true), v: true, want: true},
		{name: "named type", a: annotation.Literal(celsius(0)), v: celsius(0), want: true},
		{name: "struct value", a: annotation.Literal(point{1, 2}), v: point{1, 2}, want: true},
		{name: "uncomparable value", a: annotation.Literal([]int{1, 2}), v: []int{1, 2}, want: true},
		{name: "uncomparable mismatch", a: annotation.Literal([]int{1, 2}), v: []int{2, 1}, want: false},
		{name: "empty literal", a: annotation.Literal(), v: "x", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, conform.Check(tt.a, tt.v))
		})
	}
}

func TestValidate_NilAnnotation(t *testing.T) {
	t.Parallel()
	assert.True(t, conform.Check(nil, "anything"))
	assert.True(t, conform.Check(annotation.Any, nil))
}

func TestRuntimeTypeName(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "int", conform.RuntimeTypeName(1))
	assert.Equal(t, "None", conform.RuntimeTypeName(nil))
	assert.Equal(t, "*strings.Reader", conform.RuntimeTypeName(strings.NewReader("")))
}
