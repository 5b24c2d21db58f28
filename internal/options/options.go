// Package options implements the functional-options pattern shared by
// codec.EncodeOptions and codec.DecodeOptions: a config struct is built
// with sane defaults, then a variadic list of Option[T] values is
// applied over it in order, any of which may fail (an option built with
// New may reject its input; one built with NoError never fails).
package options

// Option mutates a *T in place and may reject the mutation. T is
// always a pointer to a config struct (*codec.EncodeOptions,
// *codec.DecodeOptions) so that Apply's mutations are visible to the
// caller without a return value.
type Option[T any] interface {
	apply(T) error
}

// Func adapts a plain function into an Option.
type Func[T any] struct {
	applyFunc func(T) error
}

func (f *Func[T]) apply(target T) error {
	return f.applyFunc(target)
}

// New builds an Option from a function that can reject its input,
// e.g. a setter that refuses an out-of-range value.
func New[T any](fn func(T) error) *Func[T] {
	return &Func[T]{applyFunc: fn}
}

// Apply runs opts over target in order, stopping at the first error.
func Apply[T any](target T, opts ...Option[T]) error {
	for _, opt := range opts {
		if err := opt.apply(target); err != nil {
			return err
		}
	}

	return nil
}

// NoError builds an Option from a function that cannot fail, e.g.
// WithAdapter, which accepts any value.Adapter unconditionally.
func NoError[T any](fn func(T)) *Func[T] {
	return &Func[T]{
		applyFunc: func(target T) error {
			fn(target)
			return nil
		},
	}
}
