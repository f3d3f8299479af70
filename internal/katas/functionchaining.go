package katas

import (
	"context"

	gostreams "github.com/deadlyengineer/functional-streams-with-go"
	"github.com/deadlyengineer/functional-streams-with-go/fn"
)

// FunctionChaining demonstrates combinators.
func FunctionChaining(ctx context.Context, env *Env) error {
	p := newPrinter(env.Out)

	p.section("Function: andThen and compose")

	increment := func(x int) int { return x + 1 }
	doubleValue := func(x int) int { return x * 2 }

	p.println("Function andThen: (5+1)*2 =", fn.AndThen(increment, doubleValue).Apply(5))
	p.println("Function compose: (5*2)+1 =", fn.Compose(increment, doubleValue).Apply(5))
	p.println("Function pipe: (5+1)*2 =", fn.Pipe(increment, doubleValue).Apply(5))

	p.section("Predicate: and, or, negate")

	var isEven fn.Predicate[int] = func(x int) bool { return x%2 == 0 }

	isGreaterThanTen := func(x int) bool { return x > 10 }

	p.println("Predicate and (12 is even & > 10):", isEven.And(isGreaterThanTen).Test(12))
	p.println("Predicate or (9 is even or > 10):", isEven.Or(isGreaterThanTen).Test(9))
	p.println("Predicate negate (!even):", isEven.Negate().Test(7))

	p.section("Consumer: andThen")

	var printOut fn.Consumer[string] = func(s string) {
		p.println("Output:", s)
	}

	printLength := func(s string) {
		p.println("Length:", len(s))
	}

	printOut.AndThen(printLength).Accept("Hello")

	p.section("Comparator: thenComparing")

	people := gostreams.Of(
		person{name: "Alice", age: 30},
		person{name: "Bob", age: 25},
		person{name: "Bob", age: 20},
		person{name: "Charlie", age: 25},
	)

	comparator := fn.Comparing(func(p person) string { return p.name }).
		ThenComparing(fn.Comparing(func(p person) int { return p.age }))

	err := gostreams.Each(ctx, gostreams.Sort(people, gostreams.FuncComparator(comparator)), gostreams.FuncConsumer(func(sorted person) {
		p.println(sorted)
	}))
	if err != nil {
		return err
	}

	p.println("Reversed:")

	err = gostreams.Each(ctx, gostreams.Sort(people, gostreams.FuncComparator(comparator.Reversed())), gostreams.FuncConsumer(func(sorted person) {
		p.println(sorted)
	}))
	if err != nil {
		return err
	}

	p.section("BinaryOperator: maxBy and minBy")

	naturalOrder := fn.NaturalOrder[int]()

	p.println("Max(8, 3):", fn.MaxBy(naturalOrder).Apply(8, 3))
	p.println("Min(8, 3):", fn.MinBy(naturalOrder).Apply(8, 3))

	p.section("Currying and binding")

	add := func(a int, b int) int { return a + b }

	p.println("curry(add)(2)(3) =", fn.Curry(add).Apply(2).Apply(3))
	p.println("bind(add, 10)(5) =", fn.Bind(add, 10).Apply(5))
	p.println("constant(42)(7) =", fn.Constant[int](42).Apply(7))

	return p.err
}
