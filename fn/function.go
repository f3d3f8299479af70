package fn

// Function returns the result of applying an operation to elem.
type Function[T any, R any] func(elem T) R

// BiFunction returns the result of applying an operation to a and b.
type BiFunction[T any, U any, R any] func(a T, b U) R

// UnaryOperator is a Function whose argument and result have the same type.
type UnaryOperator[T any] func(elem T) T

// Apply calls f with elem.
func (f Function[T, R]) Apply(elem T) R {
	return f(elem)
}

// Apply calls f with a and b.
func (f BiFunction[T, U, R]) Apply(a T, b U) R {
	return f(a, b)
}

// Apply calls op with elem.
func (op UnaryOperator[T]) Apply(elem T) T {
	return op(elem)
}

// AndThen returns an operator that applies op, then next to its result.
func (op UnaryOperator[T]) AndThen(next UnaryOperator[T]) UnaryOperator[T] {
	return func(elem T) T {
		return next(op(elem))
	}
}

// Compose returns an operator that applies before, then op to its result.
func (op UnaryOperator[T]) Compose(before UnaryOperator[T]) UnaryOperator[T] {
	return func(elem T) T {
		return op(before(elem))
	}
}

// AndThen returns a function that applies f, then g to its result.
// If f panics, g is never called.
func AndThen[T any, U any, R any](f func(T) U, g func(U) R) Function[T, R] {
	return func(elem T) R {
		return g(f(elem))
	}
}

// Pipe returns a function equivalent to g(f(elem)).
// It reads left to right at the call site: the first argument is applied first.
func Pipe[T any, U any, R any](f func(T) U, g func(U) R) Function[T, R] {
	return func(elem T) R {
		u := f(elem)
		return g(u)
	}
}

// Compose returns a function that applies before, then f to its result, that is f(before(elem)).
func Compose[T any, U any, R any](f func(U) R, before func(T) U) Function[T, R] {
	return func(elem T) R {
		return f(before(elem))
	}
}

// BiAndThen returns a two-argument function that applies f, then g to its result.
func BiAndThen[T any, U any, V any, R any](f func(T, U) V, g func(V) R) BiFunction[T, U, R] {
	return func(a T, b U) R {
		return g(f(a, b))
	}
}

// Chain returns an operator that applies ops in order.
// With no ops, it returns Identity.
func Chain[T any](ops ...func(T) T) UnaryOperator[T] {
	return func(elem T) T {
		for _, op := range ops {
			elem = op(elem)
		}

		return elem
	}
}

// Identity returns an operator that returns the same element it receives.
func Identity[T any]() UnaryOperator[T] {
	return func(elem T) T {
		return elem
	}
}

// Constant returns a function that ignores its argument and always returns value.
func Constant[T any, R any](value R) Function[T, R] {
	return func(_ T) R {
		return value
	}
}

// Curry converts f into a chain of single-argument functions.
func Curry[T any, U any, R any](f func(T, U) R) Function[T, Function[U, R]] {
	return func(a T) Function[U, R] {
		return func(b U) R {
			return f(a, b)
		}
	}
}

// Bind fixes the first argument of f, returning a function of the remaining argument.
// It is the equivalent of a function reference bound to a receiver, such as prefix.Concat.
func Bind[T any, U any, R any](f func(T, U) R, first T) Function[U, R] {
	return func(b U) R {
		return f(first, b)
	}
}
