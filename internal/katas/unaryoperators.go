package katas

import (
	"context"

	gostreams "github.com/deadlyengineer/functional-streams-with-go"
	"github.com/deadlyengineer/functional-streams-with-go/fn"
)

// UnaryOperators demonstrates same-type single-argument functions.
func UnaryOperators(ctx context.Context, env *Env) error {
	p := newPrinter(env.Out)

	numbers := gostreams.Range(1, 6)
	names := gostreams.Of("alice", "bob", "charlie")

	p.section("Exercise 1: Increment integers")

	var increment fn.UnaryOperator[int] = func(n int) int { return n + 1 }

	incremented, err := gostreams.ReduceSlice(ctx, gostreams.Map(numbers, gostreams.FuncMapper(increment)))
	if err != nil {
		return err
	}

	p.println(listString(incremented))

	p.section("Exercise 2: Uppercase strings")

	var toUpperCase fn.UnaryOperator[string] = toUpper

	upperNames, err := gostreams.ReduceSlice(ctx, gostreams.Map(names, gostreams.FuncMapper(toUpperCase)))
	if err != nil {
		return err
	}

	p.println(listString(upperNames))

	p.section("Exercise 3: Add prefix to strings")

	addPrefix := func(s string) string { return "Mr/Ms. " + s }

	prefixed, err := gostreams.ReduceSlice(ctx, gostreams.Map(names, gostreams.FuncMapper(addPrefix)))
	if err != nil {
		return err
	}

	p.println(listString(prefixed))

	p.section("Exercise 4: Square numbers")

	square := func(n int) int { return n * n }

	squared, err := gostreams.ReduceSlice(ctx, gostreams.Map(numbers, gostreams.FuncMapper(square)))
	if err != nil {
		return err
	}

	p.println(listString(squared))

	p.section("Exercise 5: UnaryOperator chaining")

	multiplyByTwo := func(n int) int { return n * 2 }

	incrementThenDouble := increment.AndThen(multiplyByTwo)

	result, err := gostreams.ReduceSlice(ctx, gostreams.Map(numbers, gostreams.FuncMapper(incrementThenDouble)))
	if err != nil {
		return err
	}

	p.println(listString(result))

	p.section("Exercise 6: Chaining many operators")

	titled := fn.Chain(toTitle, addPrefix, func(s string) string { return s + "!" })

	greetings, err := gostreams.ReduceSlice(ctx, gostreams.Map(names, gostreams.FuncMapper(titled)))
	if err != nil {
		return err
	}

	p.println(listString(greetings))

	identity, err := gostreams.ReduceSlice(ctx, gostreams.Map(names, gostreams.FuncMapper(fn.Identity[string]())))
	if err != nil {
		return err
	}

	p.println(listString(identity))

	return p.err
}
