package katas

import (
	"context"
	"slices"

	"github.com/samber/lo"

	gostreams "github.com/deadlyengineer/functional-streams-with-go"
	"github.com/deadlyengineer/functional-streams-with-go/fn"
)

// forEachSorted calls action for each entry of m, in key order.
func forEachSorted[V any](m map[string]V, action fn.BiConsumer[string, V]) {
	keys := lo.Keys(m)
	slices.Sort(keys)

	for _, k := range keys {
		action.Accept(k, m[k])
	}
}

// BiConsumers demonstrates two-argument actions.
func BiConsumers(ctx context.Context, env *Env) error {
	p := newPrinter(env.Out)

	scores := map[string]int{
		"Alice":   90,
		"Bob":     85,
		"Charlie": 95,
	}

	p.section("Exercise 1: Print key-value pairs")

	printEntry := func(name string, score int) {
		p.println(name, "->", score)
	}

	forEachSorted(scores, printEntry)

	p.section("Exercise 2: Increase score")

	bonus := 5

	forEachSorted(scores, func(name string, score int) {
		p.println(name, "new score:", score+bonus)
	})

	p.section("Exercise 3: Chain BiConsumers")

	var printName fn.BiConsumer[string, int] = func(name string, _ int) {
		p.println("Name:", name)
	}

	printScore := func(_ string, score int) {
		p.println("Score:", score)
	}

	forEachSorted(scores, printName.AndThen(printScore))

	p.section("Exercise 4: Update Person objects")

	people := []*member{
		{name: "Alice", age: 20},
		{name: "Bob", age: 25},
	}

	var increaseAge fn.BiConsumer[*member, int] = func(m *member, increment int) {
		m.age += increment
	}

	err := gostreams.Each(ctx, gostreams.Produce(people), gostreams.FuncConsumer(func(m *member) {
		increaseAge.Accept(m, 2)
	}))
	if err != nil {
		return err
	}

	err = gostreams.Each(ctx, gostreams.Produce(people), gostreams.FuncConsumer(func(m *member) {
		p.println(m)
	}))
	if err != nil {
		return err
	}

	p.section("Exercise 5: Map of objects")

	byKey := map[string]*member{
		"A": {name: "Alice", age: 20},
		"B": {name: "Bob", age: 25},
	}

	forEachSorted(byKey, func(key string, m *member) {
		m.age++
		p.printf("%s: %s\n", key, m)
	})

	return p.err
}
