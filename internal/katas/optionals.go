package katas

import (
	"context"
	"errors"
	"strings"

	"github.com/deadlyengineer/functional-streams-with-go/optional"
)

var errValueNotPresent = errors.New("Value not present") //nolint:revive,stylecheck

type contact struct {
	name  string
	email optional.Optional[string]
}

func newContact(name string, email *string) contact {
	return contact{
		name:  name,
		email: optional.OfPointer(email),
	}
}

// Optionals demonstrates the optional value container.
func Optionals(_ context.Context, env *Env) error {
	p := newPrinter(env.Out)

	p.section("Exercise 1: Create Optional")

	optionalName, err := optional.Of("Alice")
	if err != nil {
		return err
	}

	optionalName.IfPresent(func(name string) {
		p.println("Name:", name)
	})

	_, err = optional.Of[*string](nil)
	p.println("Of(nil) fails:", err)

	p.section("Exercise 2: Empty Optional with default")

	emptyOptional := optional.Empty[string]()

	p.println(emptyOptional.OrElse("Default Name"))

	p.section("Exercise 3: Optional with orElseGet")

	optionalNull := optional.OfNullable[*string](nil)

	generated := "Generated Name"

	nameFromSupplier := optionalNull.OrElseGet(func() *string { return &generated })
	p.println(*nameFromSupplier)

	p.section("Exercise 4: Optional with orElseThrow")

	optionalMissing := optional.OfPointer[string](nil)

	if _, err := optionalMissing.OrElseThrow(func() error { return errValueNotPresent }); err != nil {
		p.println(err)
	}

	p.section("Exercise 5: Transform Optional with map")

	optionalUpper := optional.Map(optional.MustOf("alice"), toUpper)
	optionalUpper.IfPresent(p.printLine)

	p.section("Exercise 6: Transform Optional with flatMap")

	aliceEmail := "Alice@Example.com"

	alice := newContact("Alice", &aliceEmail)
	bob := newContact("Bob", nil)

	lowerEmail := func(email string) optional.Optional[string] {
		return optional.MustOf(strings.ToLower(email))
	}

	email1 := optional.FlatMap(alice.email, lowerEmail)
	email2 := optional.FlatMap(bob.email, lowerEmail)

	email1.IfPresent(func(e string) {
		p.println("Email1:", e)
	})

	p.println("Email2 is present?", email2.IsPresent())
	p.println("Email2:", email2)

	p.section("Exercise 7: Filter Optional")

	optionalFiltered := optional.MustOf("Alice")

	p.println("Filtered present?", optionalFiltered.Filter(func(name string) bool { return strings.HasPrefix(name, "A") }).IsPresent())
	p.println("Filtered present?", optionalFiltered.Filter(func(name string) bool { return strings.HasPrefix(name, "B") }).IsPresent())

	p.section("Exercise 8: Absence misuse")

	if _, err := emptyOptional.Get(); err != nil {
		p.println("Get on empty fails:", err)
	}

	fallback := emptyOptional.Or(func() optional.Optional[string] { return optional.MustOf("Fallback") })
	p.println("Or:", fallback)

	emptyOptional.IfPresentOrElse(p.printLine, func() {
		p.println("Nothing to print")
	})

	return p.err
}
