package katas

import (
	"context"
	"fmt"

	"github.com/spf13/cast"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	gostreams "github.com/deadlyengineer/functional-streams-with-go"
	"github.com/deadlyengineer/functional-streams-with-go/fn"
)

type person struct {
	name string
	age  int
}

func (p person) String() string {
	return fmt.Sprintf("%s (%d)", p.name, p.age)
}

type personDTO struct {
	name string
}

func (d personDTO) String() string {
	return "DTO(" + d.name + ")"
}

// toInt converts strings to integers, failing the stream if a string is not a number.
func toInt(_ context.Context, cancel context.CancelCauseFunc, s string, _ uint64) int {
	i, err := cast.ToIntE(s)
	if err != nil {
		cancel(fmt.Errorf("convert %q: %w", s, err))
	}

	return i
}

// A cases.Caser must not be shared between goroutines.
func toUpper(s string) string {
	return cases.Upper(language.Und).String(s)
}

func toTitle(s string) string {
	return cases.Title(language.English).String(s)
}

// Functions demonstrates single-argument functions.
func Functions(ctx context.Context, env *Env) error {
	p := newPrinter(env.Out)

	p.section("Exercise 1: String to Integer")

	numbers, err := gostreams.ReduceSlice(ctx, gostreams.Map(gostreams.Of("1", "2", "3", "10"), toInt))
	if err != nil {
		return err
	}

	p.println(listString(numbers))

	p.section("Exercise 2: Names to uppercase")

	names := gostreams.Of("Alice", "Bob", "Charlie")

	var toUpperCase fn.Function[string, string] = toUpper

	upperNames, err := gostreams.ReduceSlice(ctx, gostreams.Map(names, gostreams.FuncMapper(toUpperCase)))
	if err != nil {
		return err
	}

	p.println(listString(upperNames))

	p.section("Exercise 3: Extract property from object")

	people := gostreams.Of(
		person{name: "Alice", age: 20},
		person{name: "Bob", age: 25},
		person{name: "Charlie", age: 30},
	)

	getName := func(p person) string { return p.name }

	personNames, err := gostreams.ReduceSlice(ctx, gostreams.Map(people, gostreams.FuncMapper(getName)))
	if err != nil {
		return err
	}

	p.println(listString(personNames))

	p.section("Exercise 4: Function chaining")

	addHello := func(s string) string { return "Hello, " + s }
	addExclamation := func(s string) string { return s + "!" }

	greetings, err := gostreams.ReduceSlice(ctx, gostreams.Map(names, gostreams.FuncMapper(fn.AndThen(addHello, addExclamation))))
	if err != nil {
		return err
	}

	p.println(listString(greetings))

	p.section("Exercise 5: Map objects to DTO")

	toDTO := func(p person) personDTO { return personDTO{name: p.name} }

	err = gostreams.Each(ctx, gostreams.Map(people, gostreams.FuncMapper(toDTO)), gostreams.FuncConsumer(func(dto personDTO) {
		p.println(dto)
	}))
	if err != nil {
		return err
	}

	p.section("Exercise 6: Conversion failure")

	_, err = gostreams.ReduceSlice(ctx, gostreams.Map(gostreams.Of("4", "five", "6"), toInt))
	p.println("Converting [4, five, 6] fails:", err)

	return p.err
}
