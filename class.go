package typeguard

import (
	"reflect"

	"github.com/dmitrymomot/typeguard/pkg/signature"
)

// Class is a constructible type with a substitutable constructor slot.
// Init receives the freshly allocated instance and the call arguments.
type Class[T any] struct {
	Name   string
	Params []Param
	Init   func(self *T, args Args) error
}

// NewClass declares a class with the given constructor.
func NewClass[T any](init func(self *T, args Args) error, params ...Param) *Class[T] {
	return &Class[T]{Params: params, Init: init}
}

// New allocates an instance and runs the constructor on it.
func (c *Class[T]) New(args Args) (*T, error) {
	self := new(T)
	if c.Init == nil {
		return self, nil
	}
	if err := c.Init(self, args); err != nil {
		return nil, err
	}
	return self, nil
}

// Parameters lists the constructor parameters, receiver first.
func (c *Class[T]) Parameters() []signature.Param {
	return append([]signature.Param(nil), c.Params...)
}

func (c *Class[T]) className() string {
	if c.Name != "" {
		return c.Name
	}
	return reflect.TypeFor[T]().String()
}

// interceptInit substitutes the constructor slot. The receiver is bound as the
// first positional value.
func (c *Class[T]) interceptInit(sig signature.Signature) {
	original := c.Init
	c.Init = func(self *T, args Args) error {
		if err := Check(sig, args.prepend(self)); err != nil {
			return err
		}
		if original == nil {
			return nil
		}
		return original(self, args)
	}
}

// constructor is implemented by every *Class[T].
type constructor interface {
	signature.Introspector
	className() string
	interceptInit(sig signature.Signature)
}
