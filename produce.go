package gostreams

import (
	"context"
	"iter"

	"golang.org/x/exp/constraints"
)

// ProducerFunc returns an iterator over the elements of a stream.
// The iterator must stop producing elements once ctx is canceled.
type ProducerFunc[T any] func(ctx context.Context, cancel context.CancelCauseFunc) iter.Seq[T]

// Produce returns a producer that produces the elements of the given slices, in order.
func Produce[T any](slices ...[]T) ProducerFunc[T] {
	return func(ctx context.Context, _ context.CancelCauseFunc) iter.Seq[T] {
		return func(yield func(T) bool) {
			for _, slice := range slices {
				for _, elem := range slice {
					if contextDone(ctx) {
						return
					}

					if !yield(elem) {
						return
					}
				}
			}
		}
	}
}

// Of returns a producer that produces elems, in order.
func Of[T any](elems ...T) ProducerFunc[T] {
	return Produce(elems)
}

// ProduceSeq returns a producer that produces the elements of seq, in order.
func ProduceSeq[T any](seq iter.Seq[T]) ProducerFunc[T] {
	return func(ctx context.Context, _ context.CancelCauseFunc) iter.Seq[T] {
		return func(yield func(T) bool) {
			for elem := range seq {
				if contextDone(ctx) {
					return
				}

				if !yield(elem) {
					return
				}
			}
		}
	}
}

// ProduceChannel returns a producer that produces the elements received through the given channels, in order.
// Each channel is consumed until it is closed.
func ProduceChannel[T any](channels ...<-chan T) ProducerFunc[T] {
	return func(ctx context.Context, _ context.CancelCauseFunc) iter.Seq[T] {
		return func(yield func(T) bool) {
			for _, ch := range channels {
			receive:
				for {
					select {
					case elem, ok := <-ch:
						if !ok {
							break receive
						}

						if !yield(elem) {
							return
						}

					case <-ctx.Done():
						return
					}
				}
			}
		}
	}
}

// Generate returns a producer that produces an infinite stream of elements, each returned by a new call to supplier.
// It is usually followed by Limit.
func Generate[T any](supplier func() T) ProducerFunc[T] {
	return func(ctx context.Context, _ context.CancelCauseFunc) iter.Seq[T] {
		return func(yield func(T) bool) {
			for !contextDone(ctx) {
				if !yield(supplier()) {
					return
				}
			}
		}
	}
}

// Iterate returns a producer that produces an infinite stream of elements, starting with seed,
// where each further element is the result of calling next with the previous one.
func Iterate[T any](seed T, next func(T) T) ProducerFunc[T] {
	return func(ctx context.Context, _ context.CancelCauseFunc) iter.Seq[T] {
		return func(yield func(T) bool) {
			for elem := seed; !contextDone(ctx); elem = next(elem) {
				if !yield(elem) {
					return
				}
			}
		}
	}
}

// Range returns a producer that produces the numbers from start (inclusive) to end (exclusive), in order.
func Range[N constraints.Integer](start N, end N) ProducerFunc[N] {
	return func(ctx context.Context, _ context.CancelCauseFunc) iter.Seq[N] {
		return func(yield func(N) bool) {
			for n := start; n < end; n++ {
				if contextDone(ctx) {
					return
				}

				if !yield(n) {
					return
				}
			}
		}
	}
}

// Concat returns a producer that produces the elements produced by the given producers, in order.
func Concat[T any](producers ...ProducerFunc[T]) ProducerFunc[T] {
	return func(ctx context.Context, cancel context.CancelCauseFunc) iter.Seq[T] {
		return func(yield func(T) bool) {
			for _, prod := range producers {
				for elem := range prod(ctx, cancel) {
					if !yield(elem) {
						return
					}
				}

				if contextDone(ctx) {
					return
				}
			}
		}
	}
}
