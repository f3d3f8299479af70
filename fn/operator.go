package fn

import "cmp"

// BinaryOperator combines a and b into a value of the same type.
type BinaryOperator[T any] func(a T, b T) T

// Comparator returns a negative number if a sorts before b, a positive number if a sorts after b, or 0 otherwise.
type Comparator[T any] func(a T, b T) int

// Apply calls op with a and b.
func (op BinaryOperator[T]) Apply(a T, b T) T {
	return op(a, b)
}

// MaxBy returns an operator that returns the greater of its arguments according to comp.
// Ties return a.
func MaxBy[T any](comp func(T, T) int) BinaryOperator[T] {
	return func(a T, b T) T {
		if comp(a, b) >= 0 {
			return a
		}

		return b
	}
}

// MinBy returns an operator that returns the lesser of its arguments according to comp.
// Ties return a.
func MinBy[T any](comp func(T, T) int) BinaryOperator[T] {
	return func(a T, b T) T {
		if comp(a, b) <= 0 {
			return a
		}

		return b
	}
}

// Compare calls comp with a and b.
func (comp Comparator[T]) Compare(a T, b T) int {
	return comp(a, b)
}

// ThenComparing returns a comparator that uses comp, falling back to next when comp reports a tie.
func (comp Comparator[T]) ThenComparing(next Comparator[T]) Comparator[T] {
	return func(a T, b T) int {
		if c := comp(a, b); c != 0 {
			return c
		}

		return next(a, b)
	}
}

// Reversed returns a comparator that imposes the reverse ordering of comp.
func (comp Comparator[T]) Reversed() Comparator[T] {
	return func(a T, b T) int {
		return comp(b, a)
	}
}

// NaturalOrder returns a comparator that orders elements by cmp.Compare.
func NaturalOrder[T cmp.Ordered]() Comparator[T] {
	return cmp.Compare[T]
}

// Comparing returns a comparator that orders elements by the key extracted by key.
func Comparing[T any, K cmp.Ordered](key func(T) K) Comparator[T] {
	return func(a T, b T) int {
		return cmp.Compare(key(a), key(b))
	}
}
