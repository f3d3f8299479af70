package katas

import (
	"context"
	"strings"

	gostreams "github.com/deadlyengineer/functional-streams-with-go"
	"github.com/deadlyengineer/functional-streams-with-go/fn"
)

// BiPredicates demonstrates two-argument predicates.
func BiPredicates(ctx context.Context, env *Env) error {
	p := newPrinter(env.Out)

	p.section("Exercise 1: Compare two integers")

	var isGreater fn.BiPredicate[int, int] = func(a int, b int) bool { return a > b }

	p.println("5 > 3?", isGreater.Test(5, 3))
	p.println("2 > 4?", isGreater.Test(2, 4))

	p.section("Exercise 2: String equality ignoring case")

	var equalsIgnoreCase fn.BiPredicate[string, string] = strings.EqualFold

	p.println("hello vs HELLO?", equalsIgnoreCase.Test("hello", "HELLO"))
	p.println("hello vs world?", equalsIgnoreCase.Test("hello", "world"))

	p.section("Exercise 3: Combine BiPredicates")

	var bothPositive fn.BiPredicate[int, int] = func(a int, b int) bool { return a > 0 && b > 0 }

	sumGreaterThanTen := func(a int, b int) bool { return a+b > 10 }

	combined := bothPositive.And(sumGreaterThanTen)

	p.println("5, 7:", combined.Test(5, 7))
	p.println("3, 4:", combined.Test(3, 4))
	p.println("-5, 20 (either):", bothPositive.Or(sumGreaterThanTen).Test(-5, 20))
	p.println("3, 4 (negated):", combined.Negate().Test(3, 4))

	p.section("Exercise 4: BiPredicate with objects")

	alice := person{name: "Alice", age: 20}
	bob := person{name: "Bob", age: 25}
	anotherAlice := person{name: "Alice2", age: 20}

	var sameAge fn.BiPredicate[person, person] = func(a person, b person) bool { return a.age == b.age }

	p.println("Alice and Bob same age?", sameAge.Test(alice, bob))
	p.println("Alice and AnotherAlice same age?", sameAge.Test(alice, anotherAlice))

	p.section("Exercise 5: Filter pairs with BiPredicate")

	pairs := gostreams.Of([2]int{1, 2}, [2]int{5, 10}, [2]int{6, 7}, [2]int{3, 8})

	filtered := gostreams.Filter(pairs, gostreams.FuncPredicate(func(pair [2]int) bool {
		return sumGreaterThanTen(pair[0], pair[1])
	}))

	err := gostreams.Each(ctx, filtered, gostreams.FuncConsumer(func(pair [2]int) {
		p.println(listString(pair[:]))
	}))
	if err != nil {
		return err
	}

	return p.err
}
