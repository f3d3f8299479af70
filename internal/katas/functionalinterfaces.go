package katas

import (
	"context"
	"math/rand/v2"
	"strings"

	gostreams "github.com/deadlyengineer/functional-streams-with-go"
	"github.com/deadlyengineer/functional-streams-with-go/fn"
)

// copyList copies the elements of source into a container created by factory.
func copyList[T any, C any](ctx context.Context, source []T, factory fn.Supplier[C], add func(C, T) C) (C, error) {
	return gostreams.Collect(ctx, gostreams.Produce(source), gostreams.ToCollection(factory, add))
}

// FunctionalInterfaces combines function wrappers of different shapes.
func FunctionalInterfaces(ctx context.Context, env *Env) error {
	p := newPrinter(env.Out)

	names := []string{"Alice", "Bob", "Andrew", "Charlie"}

	p.section("Predicate to filter a list of names")

	endsWithE := func(name string) bool { return strings.HasSuffix(name, "e") }

	eNames, err := gostreams.ReduceSlice(ctx, gostreams.Filter(gostreams.Produce(names), gostreams.FuncPredicate(endsWithE)))
	if err != nil {
		return err
	}

	p.println(listString(eNames))

	p.section("Supplier to generate 5 random numbers")

	var randomSupplier fn.Supplier[float64] = rand.Float64

	randomNumbers, err := gostreams.ReduceSlice(ctx, gostreams.Limit(gostreams.Generate(randomSupplier), 5))
	if err != nil {
		return err
	}

	allInRange, err := gostreams.AllMatch(ctx, gostreams.Produce(randomNumbers), gostreams.FuncPredicate(func(f float64) bool {
		return f >= 0 && f < 1
	}))
	if err != nil {
		return err
	}

	p.println(len(randomNumbers), "numbers, all in [0, 1):", allInRange)

	p.section("Filter with Predicate, transform with Function, print with Consumer")

	var (
		startsWithA fn.Predicate[string]       = func(name string) bool { return strings.HasPrefix(name, "A") }
		toUpperCase fn.Function[string, string] = toUpper
		printName   fn.Consumer[string]         = func(name string) { p.println(name) }
	)

	err = gostreams.Each(ctx,
		gostreams.Map(gostreams.Filter(gostreams.Produce(names), gostreams.FuncPredicate(startsWithA)), gostreams.FuncMapper(toUpperCase)),
		gostreams.FuncConsumer(printName))
	if err != nil {
		return err
	}

	p.section("Factory method that takes a Supplier and fills it")

	copied, err := copyList(ctx, names, func() []string { return make([]string, 0, len(names)) }, func(acc []string, s string) []string {
		return append(acc, s)
	})
	if err != nil {
		return err
	}

	p.println("Copied list:", listString(copied))

	var sb strings.Builder

	initials, err := copyList(ctx, names, func() *strings.Builder { return &sb }, func(b *strings.Builder, s string) *strings.Builder {
		b.WriteString(s[:1])
		return b
	})
	if err != nil {
		return err
	}

	p.println("Copied initials:", initials.String())

	p.section("Combine BinaryOperator and Predicate to reduce a list conditionally")

	var (
		sum    fn.BinaryOperator[int] = func(a int, b int) int { return a + b }
		isEven fn.Predicate[int]      = func(n int) bool { return n%2 == 0 }
	)

	numbers := []int{1, 2, 3, 4, 5}

	totalSum, err := gostreams.Reduce(ctx, gostreams.Filter(gostreams.Produce(numbers), gostreams.FuncPredicate(isEven)), 0, gostreams.FuncAccumulator(sum))
	if err != nil {
		return err
	}

	p.println("Original list:", listString(numbers))
	p.println("Sum of evens:", totalSum)

	return p.err
}
