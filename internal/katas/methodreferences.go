package katas

import (
	"cmp"
	"context"
	"strings"

	"github.com/spf13/cast"

	gostreams "github.com/deadlyengineer/functional-streams-with-go"
	"github.com/deadlyengineer/functional-streams-with-go/fn"
)

type greeting string

func (g greeting) concat(s string) string {
	return string(g) + s
}

type formatter struct {
	p *printer
}

func (f formatter) printFormatted(value string) {
	f.p.println("->", value)
}

// atoi parses s leniently, yielding 0 when s is not a number.
func atoi(s string) int {
	return cast.ToInt(s)
}

func newList() []string {
	return []string{}
}

// MethodReferences demonstrates passing functions and methods by name instead of wrapping them in literals.
func MethodReferences(ctx context.Context, env *Env) error {
	p := newPrinter(env.Out)

	p.section("Package-level function")

	var parseInt fn.Function[string, int] = atoi

	p.println(parseInt.Apply("42"))

	p.section("Method expression (receiver passed as argument)")

	var concat fn.BiFunction[greeting, string, string] = greeting.concat

	p.println(concat.Apply("Hi, ", "Ali"))

	var toUpperCase fn.Function[string, string] = strings.ToUpper

	p.println(toUpperCase.Apply("hello"))

	p.section("Method value (bound to a receiver)")

	prefix := greeting("Hello, ")

	var greet fn.UnaryOperator[string] = prefix.concat

	p.println(greet.Apply("Emy"))

	p.println(fn.Bind(concat, prefix).Apply("Jane"))

	p.section("Constructor function")

	var listSupplier fn.Supplier[[]string] = newList

	list := listSupplier.Get()
	list = append(list, "A", "B")

	p.println(listString(list))

	p.section("Functions in streams")

	names := gostreams.Of("john", "JANE", "Emy", "ali")

	upper, err := gostreams.ReduceSlice(ctx, gostreams.Map(names, gostreams.FuncMapper(strings.ToUpper)))
	if err != nil {
		return err
	}

	p.println(listString(upper))

	p.section("Comparison function in sorting")

	sorted, err := gostreams.ReduceSlice(ctx, gostreams.Sort(gostreams.Of(5, 1, 10, 3), gostreams.FuncComparator(cmp.Compare[int])))
	if err != nil {
		return err
	}

	p.println(listString(sorted))

	p.section("Printing each element")

	err = gostreams.Each(ctx, names, gostreams.FuncConsumer(p.printLine))
	if err != nil {
		return err
	}

	p.section("Custom method value")

	f := formatter{p: p}

	err = gostreams.Each(ctx, names, gostreams.FuncConsumer(f.printFormatted))
	if err != nil {
		return err
	}

	return p.err
}
