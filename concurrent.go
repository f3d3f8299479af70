package gostreams

import (
	"context"
	"iter"
	"runtime"
	"sync"
)

// indexedElem is an element together with its index in the upstream producer's order.
type indexedElem[T any] struct {
	elem  T
	index uint64
}

// workerPanic holds the first value recovered from a panicking worker goroutine.
type workerPanic struct {
	once  sync.Once
	value any
	set   bool
}

// MapConcurrent returns a producer that calls mapp for each element produced by prod, mapping it to type U,
// using a pool of workers goroutines. If workers is less than 1, runtime.GOMAXPROCS(0) workers are used.
// The order of elements produced by the new producer is undefined, but it produces the same elements as Map would.
// If mapp panics, the panic is re-raised on the goroutine consuming the new producer.
func MapConcurrent[T any, U any](prod ProducerFunc[T], workers int, mapp MapperFunc[T, U]) ProducerFunc[U] {
	return concurrently(prod, workers, func(ctx context.Context, cancel context.CancelCauseFunc, elem T, index uint64) (U, bool) {
		return mapp(ctx, cancel, elem, index), true
	})
}

// FilterConcurrent returns a producer that calls filter for each element produced by prod using a pool of workers
// goroutines, and only produces elements for which filter returns true.
// The order of elements produced by the new producer is undefined.
func FilterConcurrent[T any](prod ProducerFunc[T], workers int, filter PredicateFunc[T]) ProducerFunc[T] {
	return concurrently(prod, workers, func(ctx context.Context, cancel context.CancelCauseFunc, elem T, index uint64) (T, bool) {
		return elem, filter(ctx, cancel, elem, index)
	})
}

// EachConcurrent calls each for each element produced by prod, using a pool of workers goroutines.
// The order in which elements are passed to each is undefined, and each may be called concurrently.
// If prod or each cancel the stream's context, it returns cause of the cancelation.
func EachConcurrent[T any](ctx context.Context, prod ProducerFunc[T], workers int, each ConsumerFunc[T]) error {
	done := concurrently(prod, workers, func(ctx context.Context, cancel context.CancelCauseFunc, elem T, index uint64) (struct{}, bool) {
		each(ctx, cancel, elem, index)
		return struct{}{}, false
	})

	return Each(ctx, done, func(context.Context, context.CancelCauseFunc, struct{}, uint64) {})
}

// concurrently returns a producer that calls work for each element produced by prod using a pool of workers
// goroutines, and produces the results for which work returns true, in undefined order.
// prod is consumed on a separate goroutine. All goroutines have finished when the iterator returns.
func concurrently[T any, U any](prod ProducerFunc[T], workers int,
	work func(ctx context.Context, cancel context.CancelCauseFunc, elem T, index uint64) (U, bool),
) ProducerFunc[U] {
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}

	return func(ctx context.Context, cancel context.CancelCauseFunc) iter.Seq[U] {
		return func(yield func(U) bool) {
			workCtx, stop := context.WithCancel(ctx)

			inCh := make(chan indexedElem[T])
			outCh := make(chan U)
			feederDone := make(chan struct{})

			wp := workerPanic{}

			recoverTo := func() {
				if r := recover(); r != nil {
					wp.once.Do(func() {
						wp.value = r
						wp.set = true
					})

					stop()
				}
			}

			go func() {
				defer close(feederDone)
				defer close(inCh)
				defer recoverTo()

				index := uint64(0)

				for elem := range prod(workCtx, cancel) {
					select {
					case inCh <- indexedElem[T]{elem: elem, index: index}:
						index++

					case <-workCtx.Done():
						return
					}
				}
			}()

			grp := sync.WaitGroup{}
			grp.Add(workers)

			for range workers {
				go func() {
					defer grp.Done()
					defer recoverTo()

					for in := range inCh {
						outElem, ok := work(workCtx, cancel, in.elem, in.index)

						if !ok || contextDone(workCtx) {
							continue
						}

						select {
						case outCh <- outElem:

						case <-workCtx.Done():
						}
					}
				}()
			}

			go func() {
				defer close(outCh)

				grp.Wait()
			}()

			defer func() {
				stop()

				for range outCh { //nolint:revive // draining
				}

				<-feederDone

				if wp.set {
					panic(wp.value)
				}
			}()

			for outElem := range outCh {
				if !yield(outElem) {
					return
				}
			}
		}
	}
}
