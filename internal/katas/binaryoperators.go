package katas

import (
	"context"
	"fmt"

	gostreams "github.com/deadlyengineer/functional-streams-with-go"
	"github.com/deadlyengineer/functional-streams-with-go/fn"
)

type point struct {
	x int
	y int
}

func (p point) String() string {
	return fmt.Sprintf("(%d, %d)", p.x, p.y)
}

// BinaryOperators demonstrates same-type two-argument functions.
func BinaryOperators(ctx context.Context, env *Env) error {
	p := newPrinter(env.Out)

	p.section("Exercise 1: Sum two integers")

	var sum fn.BinaryOperator[int] = func(a int, b int) int { return a + b }

	p.println("5 + 10 =", sum.Apply(5, 10))

	p.section("Exercise 2: Multiply two integers")

	var multiply fn.BinaryOperator[int] = func(a int, b int) int { return a * b }

	p.println("3 * 4 =", multiply.Apply(3, 4))

	p.section("Exercise 3: Concatenate two strings")

	var concat fn.BinaryOperator[string] = func(a string, b string) string { return a + " " + b }

	p.println(concat.Apply("Hello", "World"))

	p.section("Exercise 4: Find max of two numbers")

	maxInt := fn.MaxBy(fn.NaturalOrder[int]())

	p.println("Max of 7 and 10:", maxInt.Apply(7, 10))

	p.section("Exercise 5: Reduce a list")

	numbers := gostreams.Range(1, 6)

	totalSum, err := gostreams.Reduce(ctx, numbers, 0, gostreams.FuncAccumulator(sum))
	if err != nil {
		return err
	}

	p.println("Total sum:", totalSum)

	totalProduct, err := gostreams.Reduce(ctx, numbers, 1, gostreams.FuncAccumulator(multiply))
	if err != nil {
		return err
	}

	p.println("Total product:", totalProduct)

	p.section("Exercise 6: Custom object combining")

	var combinePoints fn.BinaryOperator[point] = func(a point, b point) point {
		return point{x: a.x + b.x, y: a.y + b.y}
	}

	p.println("Combined point:", combinePoints.Apply(point{x: 1, y: 2}, point{x: 3, y: 4}))

	p.section("Exercise 7: Max string by length")

	maxByLength := fn.MaxBy(fn.Comparing(func(s string) int { return len(s) }))

	longest, err := gostreams.ReduceOptional(ctx, gostreams.Of("apple", "banana", "kiwi", "strawberry"), maxByLength)
	if err != nil {
		return err
	}

	p.println("Longest word:", longest.OrElse(""))

	shortest, err := gostreams.ReduceOptional(ctx, gostreams.Of("apple", "banana", "kiwi", "strawberry"),
		fn.MinBy(fn.Comparing(func(s string) int { return len(s) })))
	if err != nil {
		return err
	}

	p.println("Shortest word:", shortest.OrElse(""))

	none, err := gostreams.ReduceOptional(ctx, gostreams.Of[string](), maxByLength)
	if err != nil {
		return err
	}

	p.printf("Longest of no words: %q\n", none.OrElse(""))

	return p.err
}
