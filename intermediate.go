package gostreams

import (
	"cmp"
	"context"
	"iter"

	"golang.org/x/exp/slices"
)

// MapperFunc maps element elem to type U.
// The index is the 0-based index of elem, in the order produced by the upstream producer.
type MapperFunc[T any, U any] func(ctx context.Context, cancel context.CancelCauseFunc, elem T, index uint64) U

// PredicateFunc returns true elem matches a predicate.
// The index is the 0-based index of elem, in the order produced by the upstream producer.
type PredicateFunc[T any] func(ctx context.Context, cancel context.CancelCauseFunc, elem T, index uint64) bool

// CompareFunc returns a negative number if a sorts before b, a positive number if a sorts after b, or 0 otherwise.
type CompareFunc[T any] func(ctx context.Context, cancel context.CancelCauseFunc, a T, b T) int

// FuncMapper returns a mapper that calls mapp for each element.
func FuncMapper[T any, U any](mapp func(T) U) MapperFunc[T, U] {
	return func(_ context.Context, _ context.CancelCauseFunc, elem T, _ uint64) U {
		return mapp(elem)
	}
}

// FuncPredicate returns a predicate that calls pred for each element.
func FuncPredicate[T any](pred func(T) bool) PredicateFunc[T] {
	return func(_ context.Context, _ context.CancelCauseFunc, elem T, _ uint64) bool {
		return pred(elem)
	}
}

// FuncComparator returns a compare function that calls comp.
func FuncComparator[T any](comp func(T, T) int) CompareFunc[T] {
	return func(_ context.Context, _ context.CancelCauseFunc, a T, b T) int {
		return comp(a, b)
	}
}

// Map returns a producer that calls mapp for each element produced by prod, mapping it to type U.
func Map[T any, U any](prod ProducerFunc[T], mapp MapperFunc[T, U]) ProducerFunc[U] {
	return func(ctx context.Context, cancel context.CancelCauseFunc) iter.Seq[U] {
		return func(yield func(U) bool) {
			index := uint64(0)

			for elem := range prod(ctx, cancel) {
				outElem := mapp(ctx, cancel, elem, index)

				if contextDone(ctx) {
					return
				}

				if !yield(outElem) {
					return
				}

				index++
			}
		}
	}
}

// FlatMap returns a producer that calls mapp for each element produced by prod, mapping it to an intermediate producer
// that produces elements of type U.
// The new producer produces all elements produced by the intermediate producers, in order.
func FlatMap[T any, U any](prod ProducerFunc[T], mapp MapperFunc[T, ProducerFunc[U]]) ProducerFunc[U] {
	return func(ctx context.Context, cancel context.CancelCauseFunc) iter.Seq[U] {
		return func(yield func(U) bool) {
			index := uint64(0)

			for elem := range prod(ctx, cancel) {
				inner := mapp(ctx, cancel, elem, index)

				if contextDone(ctx) {
					return
				}

				for innerElem := range inner(ctx, cancel) {
					if !yield(innerElem) {
						return
					}
				}

				index++
			}
		}
	}
}

// Flatten returns a producer that produces the elements of the slices produced by prod, in order.
func Flatten[T any](prod ProducerFunc[[]T]) ProducerFunc[T] {
	return FlatMap(prod, FuncMapper(func(slice []T) ProducerFunc[T] {
		return Produce(slice)
	}))
}

// Filter returns a producer that calls filter for each element produced by prod, and only produces elements for which
// filter returns true.
// filter is only called for elements that are requested by a downstream operation.
func Filter[T any](prod ProducerFunc[T], filter PredicateFunc[T]) ProducerFunc[T] {
	return func(ctx context.Context, cancel context.CancelCauseFunc) iter.Seq[T] {
		return func(yield func(T) bool) {
			index := uint64(0)

			for elem := range prod(ctx, cancel) {
				filterResult := filter(ctx, cancel, elem, index)

				if contextDone(ctx) {
					return
				}

				index++

				if !filterResult {
					continue
				}

				if !yield(elem) {
					return
				}
			}
		}
	}
}

// Peek returns a producer that calls peek for each element produced by prod, in order, and produces the same elements.
func Peek[T any](prod ProducerFunc[T], peek ConsumerFunc[T]) ProducerFunc[T] {
	return func(ctx context.Context, cancel context.CancelCauseFunc) iter.Seq[T] {
		return func(yield func(T) bool) {
			index := uint64(0)

			for elem := range prod(ctx, cancel) {
				peek(ctx, cancel, elem, index)

				if contextDone(ctx) {
					return
				}

				if !yield(elem) {
					return
				}

				index++
			}
		}
	}
}

// Limit returns a producer that produces the same elements as prod, in order, up to max elements.
// prod is stopped as soon as max elements have been produced.
// If max is negative, the stream is canceled with a PreconditionError wrapping ErrNegativeCount.
func Limit[T any](prod ProducerFunc[T], max int) ProducerFunc[T] {
	return func(ctx context.Context, cancel context.CancelCauseFunc) iter.Seq[T] {
		return func(yield func(T) bool) {
			if max < 0 {
				cancel(negativeCount("Limit", max))
				return
			}

			if max == 0 {
				return
			}

			done := 0

			for elem := range prod(ctx, cancel) {
				if !yield(elem) {
					return
				}

				done++
				if done == max {
					return
				}
			}
		}
	}
}

// Skip returns a producer that produces the same elements as prod, in order, skipping the first num elements.
// If num is negative, the stream is canceled with a PreconditionError wrapping ErrNegativeCount.
func Skip[T any](prod ProducerFunc[T], num int) ProducerFunc[T] {
	return func(ctx context.Context, cancel context.CancelCauseFunc) iter.Seq[T] {
		return func(yield func(T) bool) {
			if num < 0 {
				cancel(negativeCount("Skip", num))
				return
			}

			done := 0

			for elem := range prod(ctx, cancel) {
				done++
				if done <= num {
					continue
				}

				if !yield(elem) {
					return
				}
			}
		}
	}
}

// Sort returns a producer that consumes elements from prod, sorts them using comp, and produces them in sorted order.
// The sort is stable: elements that comp reports as equal keep the order in which prod produced them.
func Sort[T any](prod ProducerFunc[T], comp CompareFunc[T]) ProducerFunc[T] {
	return func(ctx context.Context, cancel context.CancelCauseFunc) iter.Seq[T] {
		return func(yield func(T) bool) {
			result := []T{}

			for elem := range prod(ctx, cancel) {
				result = append(result, elem)
			}

			if contextDone(ctx) {
				return
			}

			slices.SortStableFunc(result, func(a T, b T) int {
				return comp(ctx, cancel, a, b)
			})

			if contextDone(ctx) {
				return
			}

			for _, elem := range result {
				if !yield(elem) {
					return
				}
			}
		}
	}
}

// Sorted returns a producer that consumes elements from prod and produces them in ascending natural order.
func Sorted[T cmp.Ordered](prod ProducerFunc[T]) ProducerFunc[T] {
	return Sort(prod, FuncComparator(cmp.Compare[T]))
}

// Distinct returns a producer that produces the elements produced by prod, in order, skipping elements that are equal
// to an element produced before.
func Distinct[T comparable](prod ProducerFunc[T]) ProducerFunc[T] {
	return DistinctBy(prod, Identity[T]())
}

// DistinctBy returns a producer that produces the elements produced by prod, in order, skipping elements whose key
// is equal to the key of an element produced before.
func DistinctBy[T any, K comparable](prod ProducerFunc[T], key MapperFunc[T, K]) ProducerFunc[T] {
	return func(ctx context.Context, cancel context.CancelCauseFunc) iter.Seq[T] {
		return func(yield func(T) bool) {
			seen := map[K]struct{}{}

			index := uint64(0)

			for elem := range prod(ctx, cancel) {
				k := key(ctx, cancel, elem, index)

				if contextDone(ctx) {
					return
				}

				index++

				if _, ok := seen[k]; ok {
					continue
				}

				seen[k] = struct{}{}

				if !yield(elem) {
					return
				}
			}
		}
	}
}

// Identity returns a mapper that returns the same element it receives.
func Identity[T any]() MapperFunc[T, T] {
	return func(_ context.Context, _ context.CancelCauseFunc, elem T, _ uint64) T {
		return elem
	}
}
