package gostreams

import (
	"context"
	"errors"

	"github.com/deadlyengineer/functional-streams-with-go/fn"
	"github.com/deadlyengineer/functional-streams-with-go/optional"
)

// ConsumerFunc consumes element elem.
// The index is the 0-based index of elem, in the order produced by the upstream producer.
type ConsumerFunc[T any] func(ctx context.Context, cancel context.CancelCauseFunc, elem T, index uint64)

// AccumulatorFunc folds element elem into the accumulator acc, returning acc, or a new accumulator.
// The index is the 0-based index of elem, in the order produced by the upstream producer.
type AccumulatorFunc[T any, A any] func(ctx context.Context, cancel context.CancelCauseFunc, elem T, index uint64, acc A) A

// FuncConsumer returns a consumer that calls each for each element.
func FuncConsumer[T any](each func(T)) ConsumerFunc[T] {
	return func(_ context.Context, _ context.CancelCauseFunc, elem T, _ uint64) {
		each(elem)
	}
}

// FuncAccumulator returns an accumulator that calls reduce with the accumulator and each element.
func FuncAccumulator[T any, A any](reduce func(A, T) A) AccumulatorFunc[T, A] {
	return func(_ context.Context, _ context.CancelCauseFunc, elem T, _ uint64, acc A) A {
		return reduce(acc, elem)
	}
}

// Reduce calls reduce for each element produced by prod, folding it into accumulator acc, returning the final accumulator.
// The elements are folded from left to right. If prod produces no elements, it returns acc unchanged.
// If prod or reduce cancel the stream's context, it returns the accumulator so far, and the cause of the cancelation.
func Reduce[T any, A any](ctx context.Context, prod ProducerFunc[T], acc A, reduce AccumulatorFunc[T, A]) (A, error) {
	err := Each(ctx, prod, func(ctx context.Context, cancel context.CancelCauseFunc, elem T, index uint64) {
		acc = reduce(ctx, cancel, elem, index, acc)
	})

	return acc, err
}

// ReduceOptional folds the elements produced by prod from left to right using combine, without an initial value.
// If prod produces no elements, it returns an absent Optional; otherwise it returns the result of the fold.
// If prod cancels the stream's context, it returns an undefined result, and the cause of the cancelation.
func ReduceOptional[T any](ctx context.Context, prod ProducerFunc[T], combine func(T, T) T) (optional.Optional[T], error) {
	var (
		result T
		found  bool
	)

	err := Each(ctx, prod, func(_ context.Context, _ context.CancelCauseFunc, elem T, _ uint64) {
		if !found {
			result = elem
			found = true

			return
		}

		result = combine(result, elem)
	})

	if !found {
		return optional.Empty[T](), err
	}

	return optional.OfOK(result, true), err
}

// ReduceSlice collects the elements produced by prod into a slice, in order.
// If prod cancels the stream's context, it returns the elements collected so far, and the cause of the cancelation.
func ReduceSlice[T any](ctx context.Context, prod ProducerFunc[T]) ([]T, error) {
	return Collect(ctx, prod, ToSlice[T]())
}

// Each calls each for each element produced by prod.
// If prod or each cancel the stream's context, it returns cause of the cancelation.
func Each[T any](ctx context.Context, prod ProducerFunc[T], each ConsumerFunc[T]) error {
	ctx, cancel := context.WithCancelCause(ctx)
	defer cancel(nil)

	index := uint64(0)

	for elem := range prod(ctx, cancel) {
		each(ctx, cancel, elem, index)

		if contextDone(ctx) {
			break
		}

		index++
	}

	err := context.Cause(ctx)
	if errors.Is(err, ErrShortCircuit) {
		err = nil
	}

	return err
}

// AnyMatch returns true as soon as pred returns true for an element produced by prod, that is, an element matches.
// If an element matches, it cancels the stream's context using ErrShortCircuit.
// If prod or pred cancel the stream's context, it returns an undefined result, and the cause of the cancelation.
func AnyMatch[T any](ctx context.Context, prod ProducerFunc[T], pred PredicateFunc[T]) (bool, error) {
	anyMatch := false

	err := Each(ctx, prod, func(ctx context.Context, cancel context.CancelCauseFunc, elem T, index uint64) {
		if !pred(ctx, cancel, elem, index) {
			return
		}

		anyMatch = true

		cancel(ErrShortCircuit)
	})

	return anyMatch, err
}

// AllMatch returns true if pred returns true for all elements produced by prod, that is, all elements match.
// If any element does not match, it cancels the stream's context using ErrShortCircuit.
// If prod or pred cancel the stream's context, it returns an undefined result, and the cause of the cancelation.
func AllMatch[T any](ctx context.Context, prod ProducerFunc[T], pred PredicateFunc[T]) (bool, error) {
	allMatch := true

	err := Each(ctx, prod, func(ctx context.Context, cancel context.CancelCauseFunc, elem T, index uint64) {
		if pred(ctx, cancel, elem, index) {
			return
		}

		allMatch = false

		cancel(ErrShortCircuit)
	})

	return allMatch, err
}

// NoneMatch returns true if pred returns false for all elements produced by prod.
// It stops as soon as an element matches.
func NoneMatch[T any](ctx context.Context, prod ProducerFunc[T], pred PredicateFunc[T]) (bool, error) {
	anyMatch, err := AnyMatch(ctx, prod, pred)
	return !anyMatch, err
}

// FindFirst returns the first element produced by prod, or an absent Optional if prod produces no elements.
// It cancels the stream's context using ErrShortCircuit after the first element, so no further elements are produced.
func FindFirst[T any](ctx context.Context, prod ProducerFunc[T]) (optional.Optional[T], error) {
	first := optional.Empty[T]()

	err := Each(ctx, prod, func(_ context.Context, cancel context.CancelCauseFunc, elem T, _ uint64) {
		first = optional.OfOK(elem, true)

		cancel(ErrShortCircuit)
	})

	return first, err
}

// Count returns the number of elements produced by prod.
// If prod cancels the stream's context, it returns an undefined result, and the cause of the cancelation.
func Count[T any](ctx context.Context, prod ProducerFunc[T]) (uint64, error) {
	count := uint64(0)

	err := Each(ctx, prod, func(_ context.Context, _ context.CancelCauseFunc, _ T, _ uint64) {
		count++
	})

	return count, err
}

// Max returns the greatest element produced by prod according to comp, or an absent Optional if prod produces no
// elements. If several elements are greatest, the first one is returned.
func Max[T any](ctx context.Context, prod ProducerFunc[T], comp func(T, T) int) (optional.Optional[T], error) {
	return ReduceOptional(ctx, prod, fn.MaxBy(comp))
}

// Min returns the least element produced by prod according to comp, or an absent Optional if prod produces no
// elements. If several elements are least, the first one is returned.
func Min[T any](ctx context.Context, prod ProducerFunc[T], comp func(T, T) int) (optional.Optional[T], error) {
	return ReduceOptional(ctx, prod, fn.MinBy(comp))
}
