package katas

import (
	"context"
	"strings"

	gostreams "github.com/deadlyengineer/functional-streams-with-go"
	"github.com/deadlyengineer/functional-streams-with-go/fn"
)

// adder is a custom single-method function type.
type adder func(a int, b int) int

func (add adder) addition(a int, b int) int {
	return add(a, b)
}

// Overview is a quick tour of the other katas.
func Overview(ctx context.Context, env *Env) error {
	p := newPrinter(env.Out)

	p.section("Custom function type")

	var add adder = func(a int, b int) int { return a + b }

	p.println("Sum:", add.addition(10, 20))

	p.section("Method values")

	names := []string{"Alice", "Bob", "Charlie", "David", "Eve", "Zeki"}

	err := gostreams.Each(ctx, gostreams.Produce(names), gostreams.FuncConsumer(p.printLine))
	if err != nil {
		return err
	}

	p.section("Streams")

	shortNames, err := gostreams.ReduceSlice(ctx, gostreams.Filter(gostreams.Produce(names), gostreams.FuncPredicate(func(name string) bool {
		return len(name) <= 4
	})))
	if err != nil {
		return err
	}

	p.println("Short names:", listString(shortNames))

	p.section("Optional")

	maybeName, err := gostreams.FindFirst(ctx, gostreams.Filter(gostreams.Produce(names), gostreams.FuncPredicate(func(name string) bool {
		return strings.HasPrefix(name, "Z")
	})))
	if err != nil {
		return err
	}

	p.println("Name starting with Z:", maybeName.OrElse("Not found"))

	p.section("Function wrappers")

	var (
		startsWithA fn.Predicate[string]        = func(name string) bool { return strings.HasPrefix(name, "A") }
		toUpperCase fn.Function[string, string] = strings.ToUpper
		printName   fn.Consumer[string]         = p.printLine
	)

	p.println("Names starting with A in uppercase:")

	err = gostreams.Each(ctx,
		gostreams.Map(gostreams.Filter(gostreams.Produce(names), gostreams.FuncPredicate(startsWithA)), gostreams.FuncMapper(toUpperCase)),
		gostreams.FuncConsumer(printName))
	if err != nil {
		return err
	}

	p.section("Supplier")

	var listSupplier fn.Supplier[[]string] = newList

	copied := append(listSupplier.Get(), names...)
	p.println("Copied names:", listString(copied))

	p.section("BinaryOperator")

	var multiply fn.BinaryOperator[int] = func(x int, y int) int { return x * y }

	p.println("Multiply 5 * 6 =", multiply.Apply(5, 6))

	return p.err
}
