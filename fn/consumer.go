package fn

import "sync"

// Consumer performs an action on elem.
type Consumer[T any] func(elem T)

// BiConsumer performs an action on a and b.
type BiConsumer[T any, U any] func(a T, b U)

// Supplier returns a new value each time it is called.
type Supplier[T any] func() T

// Accept calls c with elem.
func (c Consumer[T]) Accept(elem T) {
	c(elem)
}

// AndThen returns a consumer that calls c, then next, with the same element.
// If c panics, next is never called.
func (c Consumer[T]) AndThen(next Consumer[T]) Consumer[T] {
	return func(elem T) {
		c(elem)
		next(elem)
	}
}

// Accept calls c with a and b.
func (c BiConsumer[T, U]) Accept(a T, b U) {
	c(a, b)
}

// AndThen returns a consumer that calls c, then next, with the same arguments.
func (c BiConsumer[T, U]) AndThen(next BiConsumer[T, U]) BiConsumer[T, U] {
	return func(a T, b U) {
		c(a, b)
		next(a, b)
	}
}

// Get calls s.
func (s Supplier[T]) Get() T {
	return s()
}

// Memoize returns a supplier that calls s at most once, on first use, and returns the same value thereafter.
func Memoize[T any](s func() T) Supplier[T] {
	return sync.OnceValue(s)
}

// Noop returns a consumer that does nothing.
func Noop[T any]() Consumer[T] {
	return func(T) {}
}
