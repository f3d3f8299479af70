package fn

// Predicate returns true if elem matches a condition.
type Predicate[T any] func(elem T) bool

// BiPredicate returns true if a and b match a condition.
type BiPredicate[T any, U any] func(a T, b U) bool

// Test calls p with elem.
func (p Predicate[T]) Test(elem T) bool {
	return p(elem)
}

// And returns a predicate that is the short-circuiting logical AND of p and other.
// other is not evaluated if p returns false.
func (p Predicate[T]) And(other Predicate[T]) Predicate[T] {
	return func(elem T) bool {
		return p(elem) && other(elem)
	}
}

// Or returns a predicate that is the short-circuiting logical OR of p and other.
// other is not evaluated if p returns true.
func (p Predicate[T]) Or(other Predicate[T]) Predicate[T] {
	return func(elem T) bool {
		return p(elem) || other(elem)
	}
}

// Negate returns a predicate that is the logical complement of p.
func (p Predicate[T]) Negate() Predicate[T] {
	return func(elem T) bool {
		return !p(elem)
	}
}

// Test calls p with a and b.
func (p BiPredicate[T, U]) Test(a T, b U) bool {
	return p(a, b)
}

// And returns a predicate that is the short-circuiting logical AND of p and other.
func (p BiPredicate[T, U]) And(other BiPredicate[T, U]) BiPredicate[T, U] {
	return func(a T, b U) bool {
		return p(a, b) && other(a, b)
	}
}

// Or returns a predicate that is the short-circuiting logical OR of p and other.
func (p BiPredicate[T, U]) Or(other BiPredicate[T, U]) BiPredicate[T, U] {
	return func(a T, b U) bool {
		return p(a, b) || other(a, b)
	}
}

// Negate returns a predicate that is the logical complement of p.
func (p BiPredicate[T, U]) Negate() BiPredicate[T, U] {
	return func(a T, b U) bool {
		return !p(a, b)
	}
}

// Not returns the logical complement of pred.
func Not[T any](pred func(T) bool) Predicate[T] {
	return func(elem T) bool {
		return !pred(elem)
	}
}

// AllOf returns a predicate that matches if all preds match, evaluating them in order and stopping at the first
// that does not. With no preds, it always matches.
func AllOf[T any](preds ...func(T) bool) Predicate[T] {
	return func(elem T) bool {
		for _, pred := range preds {
			if !pred(elem) {
				return false
			}
		}

		return true
	}
}

// AnyOf returns a predicate that matches if any of preds matches, evaluating them in order and stopping at the first
// that does. With no preds, it never matches.
func AnyOf[T any](preds ...func(T) bool) Predicate[T] {
	return func(elem T) bool {
		for _, pred := range preds {
			if pred(elem) {
				return true
			}
		}

		return false
	}
}

// IsEqual returns a predicate that matches elements equal to value.
func IsEqual[T comparable](value T) Predicate[T] {
	return func(elem T) bool {
		return elem == value
	}
}
