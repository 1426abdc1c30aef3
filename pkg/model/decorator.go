package model

// Decorator enriches a field descriptor after construction, for example to
// attach widget hints or derived labels.
type Decorator interface {
	Decorate(*FieldSpec) error
}

// DecoratorFunc adapts a function into a Decorator.
type DecoratorFunc func(*FieldSpec) error

// Decorate calls the underlying function.
func (fn DecoratorFunc) Decorate(spec *FieldSpec) error {
	return fn(spec)
}
