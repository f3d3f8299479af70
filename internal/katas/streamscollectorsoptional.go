package katas

import (
	"context"

	gostreams "github.com/deadlyengineer/functional-streams-with-go"
	"github.com/deadlyengineer/functional-streams-with-go/optional"
)

// StreamsCollectorsOptional chains pipelines, collectors and optional values.
func StreamsCollectorsOptional(ctx context.Context, env *Env) error {
	p := newPrinter(env.Out)

	people := gostreams.Of(
		resident{name: "Alice", age: 23, city: "New York"},
		resident{name: "Bob", age: 30, city: "Chicago"},
		resident{name: "Charlie", age: 25, city: "New York"},
		resident{name: "David", age: 30, city: "Chicago"},
		resident{name: "Eve", age: 35, city: "Boston"},
		resident{name: "Frank", age: 28, city: "New York"},
		resident{name: "Grace", age: 23, city: "Boston"},
	)

	p.section("1. Filtering, mapping, grouping")

	olderThan25 := gostreams.FuncPredicate(func(r resident) bool { return r.age > 25 })

	namesByCity, err := gostreams.Collect(ctx, gostreams.Filter(people, olderThan25),
		gostreams.GroupingByWith(residentCity, gostreams.Mapping(residentName, gostreams.ToSlice[string]())))
	if err != nil {
		return err
	}

	for city, names := range namesByCity.All() {
		p.println(city, "->", listString(names))
	}

	p.section("2. Safe extraction with Optional")

	inNewYorkOver40 := gostreams.FuncPredicate(func(r resident) bool { return r.city == "New York" && r.age > 40 })

	maybePerson, err := gostreams.FindFirst(ctx, gostreams.Filter(people, inNewYorkOver40))
	if err != nil {
		return err
	}

	nameOrDefault := optional.Map(maybePerson, func(r resident) string { return r.name }).OrElse("No person found")
	p.println("Person found:", nameOrDefault)

	p.section("3. Reducing collections into summaries")

	totalAge, err := gostreams.Reduce(ctx, gostreams.Map(people, residentAge), 0, gostreams.FuncAccumulator(func(acc int, age int) int {
		return acc + age
	}))
	if err != nil {
		return err
	}

	p.println("Total age:", totalAge)

	oldest, err := gostreams.ReduceOptional(ctx, people, func(a resident, b resident) resident {
		if a.age >= b.age {
			return a
		}

		return b
	})
	if err != nil {
		return err
	}

	oldest.IfPresent(func(r resident) {
		p.println("Oldest person:", r)
	})

	countByCity, err := gostreams.Collect(ctx, people, gostreams.GroupingByWith(residentCity, gostreams.Counting[resident]()))
	if err != nil {
		return err
	}

	p.println("Count by city:", countByCity)

	averageByCity, err := gostreams.Collect(ctx, people, gostreams.GroupingByWith(residentCity, gostreams.Averaging(residentAge)))
	if err != nil {
		return err
	}

	p.println("Average age by city:", averageByCity)

	return p.err
}
