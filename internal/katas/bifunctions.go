package katas

import (
	"context"
	"math"

	"github.com/samber/lo"

	gostreams "github.com/deadlyengineer/functional-streams-with-go"
	"github.com/deadlyengineer/functional-streams-with-go/fn"
)

type fullName struct {
	first string
	last  string
}

func (n fullName) String() string {
	return n.first + " " + n.last
}

// BiFunctions demonstrates two-argument functions.
func BiFunctions(ctx context.Context, env *Env) error {
	p := newPrinter(env.Out)

	p.section("Exercise 1: Sum two integers")

	var sum fn.BiFunction[int, int, int] = func(a int, b int) int { return a + b }

	p.println("5 + 10 =", sum.Apply(5, 10))

	p.section("Exercise 2: Concatenate two strings")

	var concat fn.BiFunction[string, string, string] = func(a string, b string) string { return a + " " + b }

	p.println(concat.Apply("Hello", "World"))

	p.section("Exercise 3: Map entry from two values")

	var toEntry fn.BiFunction[string, int, lo.Entry[string, int]] = func(name string, score int) lo.Entry[string, int] {
		return lo.Entry[string, int]{Key: name, Value: score}
	}

	entry := toEntry.Apply("Alice", 95)

	p.println(entry.Key, "->", entry.Value)

	p.section("Exercise 4: Combine objects into a new object")

	var createPerson fn.BiFunction[string, string, fullName] = func(first string, last string) fullName {
		return fullName{first: first, last: last}
	}

	p.println(createPerson.Apply("John", "Doe"))

	p.section("Exercise 5: BiFunction with Stream")

	firstNames := []string{"Alice", "Bob", "Charlie", "Dave"}
	lastNames := []string{"Smith", "Johnson", "Brown"}

	// pairs beyond the shorter list are dropped
	pairs := lo.Zip2(firstNames[:min(len(firstNames), len(lastNames))], lastNames)

	combined, err := gostreams.ReduceSlice(ctx, gostreams.Map(gostreams.Produce(pairs), gostreams.FuncMapper(func(t lo.Tuple2[string, string]) string {
		return createPerson.Apply(t.Unpack()).String()
	})))
	if err != nil {
		return err
	}

	p.println(listString(combined))

	p.section("Exercise 6: BiFunction for calculations")

	var hypotenuse fn.BiFunction[float64, float64, float64] = func(a float64, b float64) float64 {
		return math.Sqrt(a*a + b*b)
	}

	p.println("Hypotenuse of 3 and 4:", hypotenuse.Apply(3, 4))

	p.section("Exercise 7: Then transform the result")

	sumThenDouble := fn.BiAndThen(sum, func(s int) int { return s * 2 })

	p.println("(5 + 10) * 2 =", sumThenDouble.Apply(5, 10))

	return p.err
}
