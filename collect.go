package gostreams

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"

	"github.com/deadlyengineer/functional-streams-with-go/optional"
)

// Number is a constraint that permits any integer or floating-point type.
type Number interface {
	constraints.Integer | constraints.Float
}

// A Collector describes a mutable reduction: Supply creates a new accumulator, Accumulate folds an element into it,
// and Finish converts the final accumulator into the result.
type Collector[T any, A any, R any] struct {
	Supply     func() A
	Accumulate AccumulatorFunc[T, A]
	Finish     func(A) R
}

// average is the accumulator of Averaging.
type average struct {
	sum   float64
	count int
}

// Collect performs the reduction described by collector on the elements produced by prod.
// If prod or the collector cancel the stream's context, it returns the result for the elements collected so far,
// and the cause of the cancelation.
func Collect[T any, A any, R any](ctx context.Context, prod ProducerFunc[T], collector Collector[T, A, R]) (R, error) {
	acc, err := Reduce(ctx, prod, collector.Supply(), collector.Accumulate)
	return collector.Finish(acc), err
}

// ToSlice returns a collector that collects elements into a slice, in order.
// The result is never nil.
func ToSlice[T any]() Collector[T, []T, []T] {
	return ToCollection(func() []T { return []T{} }, func(acc []T, elem T) []T {
		return append(acc, elem)
	})
}

// ToCollection returns a collector that collects elements into a container created by supply, using add to add
// each element.
func ToCollection[T any, C any](supply func() C, add func(C, T) C) Collector[T, C, C] {
	return Collector[T, C, C]{
		Supply:     supply,
		Accumulate: FuncAccumulator(add),
		Finish:     identity[C],
	}
}

// ToSet returns a collector that collects elements into a set.
func ToSet[T comparable]() Collector[T, map[T]struct{}, map[T]struct{}] {
	return ToCollection(func() map[T]struct{} { return map[T]struct{}{} }, func(acc map[T]struct{}, elem T) map[T]struct{} {
		acc[elem] = struct{}{}
		return acc
	})
}

// ToMap returns a collector that collects elements into a map.
// Elements are mapped using key and value, respectively.
// If a key is already in the map, the stream's context will be canceled with a DuplicateKeyError.
func ToMap[T any, K comparable, V any](key MapperFunc[T, K], value MapperFunc[T, V]) Collector[T, map[K]V, map[K]V] {
	return Collector[T, map[K]V, map[K]V]{
		Supply: func() map[K]V { return map[K]V{} },

		Accumulate: func(ctx context.Context, cancel context.CancelCauseFunc, elem T, index uint64, acc map[K]V) map[K]V {
			key := key(ctx, cancel, elem, index)

			if _, ok := acc[key]; ok {
				cancel(&DuplicateKeyError[T, K]{
					Element: elem,
					Key:     key,
				})

				return acc
			}

			acc[key] = value(ctx, cancel, elem, index)

			return acc
		},

		Finish: identity[map[K]V],
	}
}

// ToMapMerge returns a collector that collects elements into a map.
// Elements are mapped using key and value, respectively.
// If a key is already in the map, the existing and the new value are combined using merge.
func ToMapMerge[T any, K comparable, V any](key MapperFunc[T, K], value MapperFunc[T, V], merge func(V, V) V) Collector[T, map[K]V, map[K]V] {
	return Collector[T, map[K]V, map[K]V]{
		Supply: func() map[K]V { return map[K]V{} },

		Accumulate: func(ctx context.Context, cancel context.CancelCauseFunc, elem T, index uint64, acc map[K]V) map[K]V {
			key := key(ctx, cancel, elem, index)
			value := value(ctx, cancel, elem, index)

			if old, ok := acc[key]; ok {
				value = merge(old, value)
			}

			acc[key] = value

			return acc
		},

		Finish: identity[map[K]V],
	}
}

// Joining returns a collector that concatenates the string representations of elements, in order, separated by
// delim. Strings are used as they are, other elements are formatted using fmt.Sprint.
// It produces an empty string if there are no elements.
func Joining[T any](delim string) Collector[T, []string, string] {
	return Collector[T, []string, string]{
		Supply: func() []string { return nil },

		Accumulate: func(_ context.Context, _ context.CancelCauseFunc, elem T, _ uint64, acc []string) []string {
			return append(acc, fmt.Sprint(elem))
		},

		Finish: func(acc []string) string {
			return strings.Join(acc, delim)
		},
	}
}

// Counting returns a collector that counts elements.
func Counting[T any]() Collector[T, int, int] {
	return Reducing(0, func(acc int, _ T) int {
		return acc + 1
	})
}

// Summing returns a collector that sums the numbers extracted from elements by value.
func Summing[T any, N Number](value MapperFunc[T, N]) Collector[T, N, N] {
	return Collector[T, N, N]{
		Supply: func() N { return 0 },

		Accumulate: func(ctx context.Context, cancel context.CancelCauseFunc, elem T, index uint64, acc N) N {
			return acc + value(ctx, cancel, elem, index)
		},

		Finish: identity[N],
	}
}

// Averaging returns a collector that computes the arithmetic mean of the numbers extracted from elements by value.
// It produces 0 if there are no elements.
func Averaging[T any, N Number](value MapperFunc[T, N]) Collector[T, average, float64] {
	return Collector[T, average, float64]{
		Supply: func() average { return average{} },

		Accumulate: func(ctx context.Context, cancel context.CancelCauseFunc, elem T, index uint64, acc average) average {
			acc.sum += float64(value(ctx, cancel, elem, index))
			acc.count++

			return acc
		},

		Finish: func(acc average) float64 {
			if acc.count == 0 {
				return 0
			}

			return acc.sum / float64(acc.count)
		},
	}
}

// MaxBy returns a collector that produces the greatest element according to comp, or an absent Optional if there are
// no elements. If several elements are greatest, the first one is produced.
func MaxBy[T any](comp func(T, T) int) Collector[T, optional.Optional[T], optional.Optional[T]] {
	return best(func(current T, elem T) bool {
		return comp(current, elem) >= 0
	})
}

// MinBy returns a collector that produces the least element according to comp, or an absent Optional if there are
// no elements. If several elements are least, the first one is produced.
func MinBy[T any](comp func(T, T) int) Collector[T, optional.Optional[T], optional.Optional[T]] {
	return best(func(current T, elem T) bool {
		return comp(current, elem) <= 0
	})
}

// Reducing returns a collector that folds elements from left to right into identity using reduce.
func Reducing[T any, A any](identity A, reduce func(A, T) A) Collector[T, A, A] {
	return ToCollection(func() A { return identity }, reduce)
}

// Mapping returns a collector that maps elements using mapp before passing them to downstream.
func Mapping[T any, U any, A any, R any](mapp MapperFunc[T, U], downstream Collector[U, A, R]) Collector[T, A, R] {
	return Collector[T, A, R]{
		Supply: downstream.Supply,

		Accumulate: func(ctx context.Context, cancel context.CancelCauseFunc, elem T, index uint64, acc A) A {
			outElem := mapp(ctx, cancel, elem, index)

			if contextDone(ctx) {
				return acc
			}

			return downstream.Accumulate(ctx, cancel, outElem, index, acc)
		},

		Finish: downstream.Finish,
	}
}

// Filtering returns a collector that only passes elements for which pred returns true to downstream.
func Filtering[T any, A any, R any](pred PredicateFunc[T], downstream Collector[T, A, R]) Collector[T, A, R] {
	return Collector[T, A, R]{
		Supply: downstream.Supply,

		Accumulate: func(ctx context.Context, cancel context.CancelCauseFunc, elem T, index uint64, acc A) A {
			if !pred(ctx, cancel, elem, index) || contextDone(ctx) {
				return acc
			}

			return downstream.Accumulate(ctx, cancel, elem, index, acc)
		},

		Finish: downstream.Finish,
	}
}

// CollectingAndThen returns a collector that applies finish to the result of downstream.
func CollectingAndThen[T any, A any, R any, RR any](downstream Collector[T, A, R], finish func(R) RR) Collector[T, A, RR] {
	return Collector[T, A, RR]{
		Supply:     downstream.Supply,
		Accumulate: downstream.Accumulate,
		Finish: func(acc A) RR {
			return finish(downstream.Finish(acc))
		},
	}
}

// GroupingBy returns a collector that groups elements into slices according to key.
// Groups are ordered by the first occurrence of their key, and elements within a group keep their order.
func GroupingBy[T any, K comparable](key MapperFunc[T, K]) Collector[T, *Grouping[K, []T], *Grouping[K, []T]] {
	return GroupingByWith(key, ToSlice[T]())
}

// GroupingByWith returns a collector that groups elements according to key, and reduces the elements of each group
// using downstream. Groups are ordered by the first occurrence of their key.
// The index passed to downstream is the element's index in the stream, not in its group.
func GroupingByWith[T any, K comparable, A any, R any](key MapperFunc[T, K], downstream Collector[T, A, R]) Collector[T, *Grouping[K, A], *Grouping[K, R]] {
	return Collector[T, *Grouping[K, A], *Grouping[K, R]]{
		Supply: newGrouping[K, A],

		Accumulate: func(ctx context.Context, cancel context.CancelCauseFunc, elem T, index uint64, acc *Grouping[K, A]) *Grouping[K, A] {
			key := key(ctx, cancel, elem, index)

			if contextDone(ctx) {
				return acc
			}

			group, ok := acc.Get(key)
			if !ok {
				group = downstream.Supply()
			}

			acc.put(key, downstream.Accumulate(ctx, cancel, elem, index, group))

			return acc
		},

		Finish: func(acc *Grouping[K, A]) *Grouping[K, R] {
			return mapGrouping(acc, downstream.Finish)
		},
	}
}

// PartitioningBy returns a collector that partitions elements into two slices according to pred.
// The resulting grouping always contains both keys, false and true, in that order.
func PartitioningBy[T any](pred PredicateFunc[T]) Collector[T, *Grouping[bool, []T], *Grouping[bool, []T]] {
	return PartitioningByWith(pred, ToSlice[T]())
}

// PartitioningByWith returns a collector that partitions elements according to pred, and reduces the elements of
// each partition using downstream.
// The resulting grouping always contains both keys, false and true, in that order.
func PartitioningByWith[T any, A any, R any](pred PredicateFunc[T], downstream Collector[T, A, R]) Collector[T, *Grouping[bool, A], *Grouping[bool, R]] {
	grouping := GroupingByWith(MapperFunc[T, bool](pred), downstream)

	grouping.Supply = func() *Grouping[bool, A] {
		acc := newGrouping[bool, A]()
		acc.put(false, downstream.Supply())
		acc.put(true, downstream.Supply())

		return acc
	}

	return grouping
}

func best[T any](keepCurrent func(current T, elem T) bool) Collector[T, optional.Optional[T], optional.Optional[T]] {
	return Collector[T, optional.Optional[T], optional.Optional[T]]{
		Supply: optional.Empty[T],

		Accumulate: func(_ context.Context, _ context.CancelCauseFunc, elem T, _ uint64, acc optional.Optional[T]) optional.Optional[T] {
			if current, err := acc.Get(); err == nil && keepCurrent(current, elem) {
				return acc
			}

			return optional.OfOK(elem, true)
		},

		Finish: identity[optional.Optional[T]],
	}
}

func identity[T any](v T) T {
	return v
}
