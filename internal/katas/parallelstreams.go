package katas

import (
	"context"
	"slices"
	"sync"

	gostreams "github.com/deadlyengineer/functional-streams-with-go"
	"github.com/deadlyengineer/functional-streams-with-go/internal/logging"
)

// ParallelStreams runs the same pipeline sequentially and on a pool of worker goroutines.
// The parallel narration order varies from run to run.
func ParallelStreams(ctx context.Context, env *Env) error {
	p := newPrinter(env.Out)

	numbers := gostreams.Range(1, 11)

	p.section("Sequential Stream")

	double := func(label string, say func(...any)) gostreams.MapperFunc[int, int] {
		return func(_ context.Context, _ context.CancelCauseFunc, n int, index uint64) int {
			env.Log.Debug().Int(logging.FieldElement, n).Uint64(logging.FieldIndex, index).Msg("processing")
			say("Processing ("+label+"):", n)

			return n * 2
		}
	}

	err := gostreams.Each(ctx, gostreams.Map(numbers, double("sequential", p.println)), gostreams.FuncConsumer(func(result int) {
		p.println("Result (sequential):", result)
	}))
	if err != nil {
		return err
	}

	p.section("Parallel Stream")

	workers := 0
	if env.Config != nil {
		workers = env.Config.Parallel.Workers
	}

	env.Log.Debug().Int("workers", workers).Msg("starting worker pool")

	var mu sync.Mutex

	lockedPrintln := func(args ...any) {
		mu.Lock()
		defer mu.Unlock()

		p.println(args...)
	}

	var results []int

	err = gostreams.Each(ctx, gostreams.MapConcurrent(numbers, workers, double("parallel", lockedPrintln)), gostreams.FuncConsumer(func(result int) {
		lockedPrintln("Result (parallel):", result)
		results = append(results, result)
	}))
	if err != nil {
		return err
	}

	slices.Sort(results)

	p.section("Parallel results, sorted")

	p.println(listString(results))

	return p.err
}
