package katas

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/samber/lo"

	gostreams "github.com/deadlyengineer/functional-streams-with-go"
	"github.com/deadlyengineer/functional-streams-with-go/fn"
	"github.com/deadlyengineer/functional-streams-with-go/internal/logging"
)

type member struct {
	name string
	age  int
}

func (m *member) String() string {
	return fmt.Sprintf("%s: %d", m.name, m.age)
}

// Consumers demonstrates single-argument actions.
func Consumers(ctx context.Context, env *Env) error {
	p := newPrinter(env.Out)

	p.section("Exercise 1: Print all elements")

	var printName fn.Consumer[string] = func(name string) {
		p.println(name)
	}

	if err := gostreams.Each(ctx, gostreams.Of("Alice", "Bob", "Charlie"), gostreams.FuncConsumer(printName)); err != nil {
		return err
	}

	p.section("Exercise 2: Uppercase names")

	err := gostreams.Each(ctx, gostreams.Of("alice", "bob", "charlie"), gostreams.FuncConsumer(func(name string) {
		p.println(toUpper(name))
	}))
	if err != nil {
		return err
	}

	p.section("Exercise 3: Name with length")

	printNameWithLength := func(name string) {
		p.printf("%s (%d)\n", name, len(name))
	}

	err = gostreams.Each(ctx, gostreams.Of("Alice", "Bob", "Charlie"), gostreams.FuncConsumer(printNameWithLength))
	if err != nil {
		return err
	}

	p.section("Exercise 4: Chain Consumers")

	var printUpper fn.Consumer[string] = func(name string) {
		p.println(toUpper(name))
	}

	printLength := func(name string) {
		p.println("Length:", len(name))
	}

	err = gostreams.Each(ctx, gostreams.Of("Alice", "Bob", "Charlie"), gostreams.FuncConsumer(printUpper.AndThen(printLength)))
	if err != nil {
		return err
	}

	p.section("Exercise 5: Modify Person objects")

	people := []*member{
		{name: "Alice", age: 20},
		{name: "Bob", age: 25},
	}

	incrementAge := func(m *member) {
		m.age++
	}

	err = gostreams.Each(ctx, gostreams.Produce(people), gostreams.FuncConsumer(incrementAge))
	if err != nil {
		return err
	}

	lo.ForEach(people, func(m *member, _ int) {
		p.println(m)
	})

	p.section("Exercise 6: Optional step")

	audit := fn.Noop[string]()
	if env.Log.GetLevel() <= zerolog.DebugLevel {
		audit = func(name string) {
			env.Log.Debug().Str(logging.FieldElement, name).Msg("audited")
		}
	}

	err = gostreams.Each(ctx, gostreams.Of("Alice", "Bob"), gostreams.FuncConsumer(printName.AndThen(audit)))
	if err != nil {
		return err
	}

	return p.err
}
