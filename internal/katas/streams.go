package katas

import (
	"context"
	"strings"

	gostreams "github.com/deadlyengineer/functional-streams-with-go"
)

// Streams demonstrates the intermediate and terminal operations of a pipeline.
func Streams(ctx context.Context, env *Env) error {
	p := newPrinter(env.Out)

	names := gostreams.Of("alice", "bob", "ALICE", "charlie", "bob")

	people := gostreams.Of(
		resident{name: "Alice", age: 30, city: "London"},
		resident{name: "Bob", age: 20, city: "Paris"},
		resident{name: "Charlie", age: 25, city: "Berlin"},
		resident{name: "Bob", age: 20, city: "Paris"},
	)

	p.section("filter, map, distinct, sorted")

	longerThan3 := gostreams.FuncPredicate(func(name string) bool { return len(name) > 3 })

	processed, err := gostreams.ReduceSlice(ctx,
		gostreams.Sorted(gostreams.Distinct(gostreams.Map(gostreams.Filter(names, longerThan3), gostreams.FuncMapper(strings.ToLower)))))
	if err != nil {
		return err
	}

	p.println(listString(processed))

	p.section("peek")

	_, err = gostreams.ReduceSlice(ctx, gostreams.Peek(gostreams.Map(names, gostreams.FuncMapper(toUpper)), gostreams.FuncConsumer(func(s string) {
		p.println("Debug:", s)
	})))
	if err != nil {
		return err
	}

	p.section("flatMap")

	nested := gostreams.Of([]int{1, 2}, []int{3, 4, 5})

	flat, err := gostreams.ReduceSlice(ctx, gostreams.Flatten(nested))
	if err != nil {
		return err
	}

	p.println(listString(flat))

	p.section("map to field")

	personNames, err := gostreams.ReduceSlice(ctx, gostreams.Map(people, residentName))
	if err != nil {
		return err
	}

	p.println(listString(personNames))

	p.section("filter by business rule")

	adults, err := gostreams.ReduceSlice(ctx, gostreams.Filter(people, gostreams.FuncPredicate(func(r resident) bool { return r.age >= 25 })))
	if err != nil {
		return err
	}

	p.println(listString(adults))

	p.section("reduce")

	sum, err := gostreams.Reduce(ctx, gostreams.Of(2, 4, 6, 8), 0, gostreams.FuncAccumulator(func(acc int, n int) int { return acc + n }))
	if err != nil {
		return err
	}

	p.println(sum)

	p.section("forEach")

	err = gostreams.Each(ctx, people, gostreams.FuncConsumer(func(r resident) {
		p.println(r)
	}))
	if err != nil {
		return err
	}

	p.section("count, findFirst, anyMatch")

	inCity := func(city string) gostreams.PredicateFunc[resident] {
		return gostreams.FuncPredicate(func(r resident) bool { return r.city == city })
	}

	countLondon, err := gostreams.Count(ctx, gostreams.Filter(people, inCity("London")))
	if err != nil {
		return err
	}

	p.println(countLondon)

	firstParisResident, err := gostreams.FindFirst(ctx, gostreams.Filter(people, inCity("Paris")))
	if err != nil {
		return err
	}

	firstParisResident.IfPresent(func(r resident) {
		p.println(r)
	})

	hasTeenager, err := gostreams.AnyMatch(ctx, people, gostreams.FuncPredicate(func(r resident) bool { return r.age < 20 }))
	if err != nil {
		return err
	}

	p.println(hasTeenager)

	p.section("limit, skip")

	evens := gostreams.Filter(gostreams.Iterate(1, func(n int) int { return n + 1 }), gostreams.FuncPredicate(func(n int) bool { return n%2 == 0 }))

	page, err := gostreams.ReduceSlice(ctx, gostreams.Limit(gostreams.Skip(evens, 3), 4))
	if err != nil {
		return err
	}

	p.println("Fourth to seventh even numbers:", listString(page))

	_, err = gostreams.ReduceSlice(ctx, gostreams.Limit(evens, -1))
	p.println("Negative limit fails:", err)

	p.section("min, max")

	byAge := func(a resident, b resident) int { return a.age - b.age }

	youngest, err := gostreams.Min(ctx, people, byAge)
	if err != nil {
		return err
	}

	oldest, err := gostreams.Max(ctx, people, byAge)
	if err != nil {
		return err
	}

	p.println("Youngest:", youngest)
	p.println("Oldest:", oldest)

	return p.err
}
