package annotation_test

import (
	"io"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/typeguard/pkg/annotation"
)

type celsius float64

func TestString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a    annotation.Annotation
		want string
	}{
		{name: "plain", a: annotation.Of[int](), want: "int"},
		{name: "named", a: annotation.Of[celsius](), want: "annotation_test.celsius"},
		{name: "interface", a: annotation.Of[io.Reader](), want: "io.Reader"},
		{name: "none", a: annotation.None, want: "None"},
		{name: "nil reflect type", a: annotation.TypeOf(nil), want: "None"},
		{name: "kind", a: annotation.KindOf(reflect.Slice), want: "slice"},
		{name: "any", a: annotation.Any, want: "Any"},
		{name: "union", a: annotation.Union(annotation.Of[int](), annotation.Of[float64]()), want: "Union[int, float64]"},
		{name: "optional", a: annotation.Optional(annotation.Of[string]()), want: "Optional[string]"},
		{name: "literal", a: annotation.Literal("fast", "slow"), want: `Literal["fast", "slow"]`},
		{name: "literal mixed", a: annotation.Literal(1, nil, true), want: "Literal[1, None, true]"},
		{name: "final", a: annotation.Final(annotation.Of[bool]()), want: "Final[bool]"},
		{name: "slice", a: annotation.SliceOf(annotation.Of[int]()), want: "slice[int]"},
		{name: "map", a: annotation.MapOf(annotation.Of[string](), annotation.Any), want: "map[string, Any]"},
		{name: "zero type", a: annotation.Type{}, want: "<invalid>"},
		{name: "zero applied", a: annotation.Applied{}, want: "<invalid>[]"},
		{name: "zero generic", a: annotation.Generic{}, want: "<invalid>[]"},
		{name: "nil special form", a: (*annotation.SpecialForm)(nil), want: "<invalid>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.a.String())
		})
	}
}

func TestUnion(t *testing.T) {
	t.Parallel()

	t.Run("flattens nested unions", func(t *testing.T) {
		t.Parallel()
		u := annotation.Union(
			annotation.Of[int](),
			annotation.Union(annotation.Of[string](), annotation.Of[float64]()),
		)
		assert.Equal(t, []any{annotation.Of[int](), annotation.Of[string](), annotation.Of[float64]()}, u.Args())
	})

	t.Run("drops duplicates and nil", func(t *testing.T) {
		t.Parallel()
		u := annotation.Union(annotation.Of[int](), nil, annotation.Of[int]())
		assert.Equal(t, []any{annotation.Of[int]()}, u.Args())
	})

	t.Run("optional of optional keeps one none", func(t *testing.T) {
		t.Parallel()
		o := annotation.Optional(annotation.Optional(annotation.Of[int]()))
		assert.Equal(t, []any{annotation.Of[int](), annotation.None}, o.Args())
	})

	t.Run("origin is the union form", func(t *testing.T) {
		t.Parallel()
		u := annotation.Union(annotation.Of[int]())
		assert.Same(t, annotation.UnionForm, u.Origin())
		assert.Same(t, annotation.UnionForm, annotation.Optional(annotation.Of[int]()).Origin())
	})
}

func TestLiteral(t *testing.T) {
	t.Parallel()

	values := []any{"a", "b"}
	l := annotation.Literal(values...)
	values[0] = "changed"

	assert.Equal(t, []any{"a", "b"}, l.Args())
	assert.Same(t, annotation.LiteralForm, l.Origin())

	args := l.Args()
	args[1] = "mutated"
	assert.Equal(t, []any{"a", "b"}, l.Args())
}

func TestGeneric(t *testing.T) {
	t.Parallel()

	g := annotation.MapOf(annotation.Of[string](), annotation.Of[int]())
	assert.Equal(t, annotation.KindOf(reflect.Map), g.Origin())
	assert.Equal(t, []any{annotation.Of[string](), annotation.Of[int]()}, g.Args())
}

func TestType(t *testing.T) {
	t.Parallel()

	require.Equal(t, reflect.TypeFor[int](), annotation.Of[int]().Reflect())
	assert.Equal(t, annotation.Of[int](), annotation.TypeOf(reflect.TypeFor[int]()))
	assert.True(t, annotation.None.IsNone())
	assert.False(t, annotation.Of[int]().IsNone())
	assert.True(t, annotation.Any.CatchAll())
	assert.False(t, annotation.UnionForm.CatchAll())
}
