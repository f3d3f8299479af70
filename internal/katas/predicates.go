package katas

import (
	"context"
	"strings"

	gostreams "github.com/deadlyengineer/functional-streams-with-go"
	"github.com/deadlyengineer/functional-streams-with-go/fn"
)

// Predicates demonstrates single-argument predicates.
func Predicates(ctx context.Context, env *Env) error {
	p := newPrinter(env.Out)

	numbers := gostreams.Range(1, 7)

	p.section("Exercise 1: Filter even numbers")

	var isEven fn.Predicate[int] = func(n int) bool { return n%2 == 0 }

	evens, err := gostreams.ReduceSlice(ctx, gostreams.Filter(numbers, gostreams.FuncPredicate(isEven)))
	if err != nil {
		return err
	}

	p.println(listString(evens))

	p.section("Exercise 2: Names starting with A")

	startsWithA := func(name string) bool { return strings.HasPrefix(name, "A") }

	aNames, err := gostreams.ReduceSlice(ctx, gostreams.Filter(gostreams.Of("Alice", "Bob", "Andrew", "Charlie"), gostreams.FuncPredicate(startsWithA)))
	if err != nil {
		return err
	}

	p.println(listString(aNames))

	p.section("Exercise 3: Combined predicates")

	var greaterThanThree fn.Predicate[int] = func(n int) bool { return n > 3 }

	lessThanSix := func(n int) bool { return n < 6 }

	between, err := gostreams.ReduceSlice(ctx, gostreams.Filter(numbers, gostreams.FuncPredicate(greaterThanThree.And(lessThanSix))))
	if err != nil {
		return err
	}

	p.println(listString(between))

	outside, err := gostreams.ReduceSlice(ctx, gostreams.Filter(numbers, gostreams.FuncPredicate(fn.Not(lessThanSix).Or(fn.Not[int](greaterThanThree)))))
	if err != nil {
		return err
	}

	p.println(listString(outside))

	p.section("Exercise 4: Negate predicate")

	odds, err := gostreams.ReduceSlice(ctx, gostreams.Filter(numbers, gostreams.FuncPredicate(isEven.Negate())))
	if err != nil {
		return err
	}

	p.println(listString(odds))

	p.section("Exercise 5: Predicate with objects")

	people := gostreams.Of(
		person{name: "Alice", age: 20},
		person{name: "Bob", age: 25},
		person{name: "Charlie", age: 30},
	)

	adult := func(p person) bool { return p.age >= 21 }

	err = gostreams.Each(ctx, gostreams.Filter(people, gostreams.FuncPredicate(adult)), gostreams.FuncConsumer(func(a person) {
		p.println(a)
	}))
	if err != nil {
		return err
	}

	p.section("Exercise 6: All, any and none")

	allAdults, err := gostreams.AllMatch(ctx, people, gostreams.FuncPredicate(adult))
	if err != nil {
		return err
	}

	anyAdult, err := gostreams.AnyMatch(ctx, people, gostreams.FuncPredicate(adult))
	if err != nil {
		return err
	}

	noneOver40, err := gostreams.NoneMatch(ctx, people, gostreams.FuncPredicate(func(p person) bool { return p.age > 40 }))
	if err != nil {
		return err
	}

	p.println("All adults?", allAdults)
	p.println("Any adult?", anyAdult)
	p.println("None over 40?", noneOver40)

	inRange := fn.AllOf(isEven, greaterThanThree, lessThanSix)
	p.println("4 is even, > 3 and < 6?", inRange.Test(4))

	return p.err
}
