package katas

import (
	"context"
	"fmt"
	"slices"

	"github.com/samber/lo"

	gostreams "github.com/deadlyengineer/functional-streams-with-go"
	"github.com/deadlyengineer/functional-streams-with-go/fn"
)

type resident struct {
	name string
	age  int
	city string
}

func (r resident) String() string {
	return fmt.Sprintf("%s (%d, %s)", r.name, r.age, r.city)
}

func residents() gostreams.ProducerFunc[resident] {
	return gostreams.Of(
		resident{name: "Alice", age: 30, city: "London"},
		resident{name: "Bob", age: 20, city: "London"},
		resident{name: "Charlie", age: 25, city: "Berlin"},
		resident{name: "Daniel", age: 30, city: "Berlin"},
		resident{name: "Eve", age: 35, city: "Paris"},
	)
}

var (
	residentName = gostreams.FuncMapper(func(r resident) string { return r.name })
	residentCity = gostreams.FuncMapper(func(r resident) string { return r.city })
	residentAge  = gostreams.FuncMapper(func(r resident) int { return r.age })
)

// Collectors demonstrates the collectors.
func Collectors(ctx context.Context, env *Env) error {
	p := newPrinter(env.Out)

	p.section("Collect to slice")

	names, err := gostreams.Collect(ctx, gostreams.Map(residents(), residentName), gostreams.ToSlice[string]())
	if err != nil {
		return err
	}

	p.println(listString(names))

	p.section("Collect to set")

	cities, err := gostreams.Collect(ctx, gostreams.Map(residents(), residentCity), gostreams.ToSet[string]())
	if err != nil {
		return err
	}

	cityNames := lo.Keys(cities)
	slices.Sort(cityNames)

	p.println(listString(cityNames))

	p.section("Join strings")

	joined, err := gostreams.Collect(ctx, gostreams.Map(residents(), residentName), gostreams.Joining[string](", "))
	if err != nil {
		return err
	}

	p.println(joined)

	p.section("Count")

	inLondon := gostreams.FuncPredicate(fn.Predicate[resident](func(r resident) bool { return r.city == "London" }))

	countLondon, err := gostreams.Collect(ctx, gostreams.Filter(residents(), inLondon), gostreams.Counting[resident]())
	if err != nil {
		return err
	}

	p.println(countLondon)

	p.section("Group by city")

	byCity, err := gostreams.Collect(ctx, residents(), gostreams.GroupingBy(residentCity))
	if err != nil {
		return err
	}

	p.println(byCity)

	p.section("Count by city")

	countByCity, err := gostreams.Collect(ctx, residents(), gostreams.GroupingByWith(residentCity, gostreams.Counting[resident]()))
	if err != nil {
		return err
	}

	p.println(countByCity)

	p.section("Names by city")

	namesByCity, err := gostreams.Collect(ctx, residents(),
		gostreams.GroupingByWith(residentCity, gostreams.Mapping(residentName, gostreams.ToSlice[string]())))
	if err != nil {
		return err
	}

	p.println(namesByCity)

	p.section("Average age")

	averageAge, err := gostreams.Collect(ctx, residents(), gostreams.Averaging(residentAge))
	if err != nil {
		return err
	}

	p.println(averageAge)

	p.section("Sum of ages")

	sumAges, err := gostreams.Collect(ctx, residents(), gostreams.Summing(residentAge))
	if err != nil {
		return err
	}

	p.println(sumAges)

	p.section("Oldest")

	byAge := fn.Comparing(func(r resident) int { return r.age })

	oldest, err := gostreams.Collect(ctx, residents(), gostreams.MaxBy(byAge))
	if err != nil {
		return err
	}

	oldest.IfPresent(func(r resident) {
		p.println(r)
	})

	p.section("Name to city")

	nameToCity, err := gostreams.Collect(ctx, residents(), gostreams.ToMap(residentName, residentCity))
	if err != nil {
		return err
	}

	p.println(nameToCity)

	p.section("Partition by age >= 30")

	atLeast30 := gostreams.FuncPredicate(func(r resident) bool { return r.age >= 30 })

	partitioned, err := gostreams.Collect(ctx, residents(), gostreams.PartitioningBy(atLeast30))
	if err != nil {
		return err
	}

	p.println(partitioned)

	p.section("Duplicate keys")

	_, err = gostreams.Collect(ctx, residents(), gostreams.ToMap(residentCity, residentName))
	p.println("Mapping city to name fails:", err)

	cityToNames, err := gostreams.Collect(ctx, residents(), gostreams.ToMapMerge(residentCity, residentName, func(a string, b string) string {
		return a + " & " + b
	}))
	if err != nil {
		return err
	}

	p.println("Merging names instead:", cityToNames)

	return p.err
}
