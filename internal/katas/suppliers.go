package katas

import (
	"container/list"
	"context"
	"math/rand/v2"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/samber/lo"

	gostreams "github.com/deadlyengineer/functional-streams-with-go"
	"github.com/deadlyengineer/functional-streams-with-go/fn"
)

type account struct {
	id   string
	name string
}

func (a account) String() string {
	return a.name + " (" + a.id + ")"
}

func appendString(acc []string, s string) []string {
	return append(acc, s)
}

func pushBack(l *list.List, s string) *list.List {
	l.PushBack(s)
	return l
}

func linkedListString(l *list.List) string {
	elems := make([]string, 0, l.Len())
	for e := l.Front(); e != nil; e = e.Next() {
		elems = append(elems, e.Value.(string))
	}

	return "[" + strings.Join(elems, ", ") + "]"
}

// copyListDirect copies source into a new slice, without letting the caller choose the container.
func copyListDirect[T any](source []T) []T {
	return append([]T{}, source...)
}

// Suppliers demonstrates value generators.
func Suppliers(ctx context.Context, env *Env) error {
	p := newPrinter(env.Out)

	p.section("Simple Supplier")

	var helloSupplier fn.Supplier[string] = func() string { return "Hello, Supplier!" }

	p.println(helloSupplier.Get())

	p.section("Supplier for object creation")

	var sliceSupplier fn.Supplier[[]string] = newList

	names := append(sliceSupplier.Get(), "Alice", "Bob", "Charlie")
	p.println("Names list:", listString(names))

	p.section("Supplier with collect")

	shortNames, err := gostreams.Collect(ctx, gostreams.Filter(gostreams.Produce(names), gostreams.FuncPredicate(func(name string) bool {
		return len(name) <= 4
	})), gostreams.ToCollection(sliceSupplier, appendString))
	if err != nil {
		return err
	}

	p.println("Short names:", listString(shortNames))

	p.section("Generic method using Supplier")

	copied, err := copyList(ctx, names, sliceSupplier, appendString)
	if err != nil {
		return err
	}

	p.println("Copied list:", listString(copied))

	linked, err := copyList(ctx, names, list.New, pushBack)
	if err != nil {
		return err
	}

	p.println("Linked list copy:", linkedListString(linked))

	p.section("Lazy evaluation with Supplier")

	var randomSupplier fn.Supplier[float64] = rand.Float64

	p.println("Random values differ:", randomSupplier.Get() != randomSupplier.Get())

	calls := 0

	memoized := fn.Memoize(func() float64 {
		calls++
		return rand.Float64()
	})

	first, second := memoized.Get(), memoized.Get()

	p.println("Memoized values are equal:", first == second)
	p.println("Underlying supplier calls:", calls)

	return p.err
}

// SuppliersAdvanced demonstrates generators in generic code, lazy object creation and streams.
func SuppliersAdvanced(ctx context.Context, env *Env) error {
	p := newPrinter(env.Out)

	p.section("Supplier for object creation")

	var sliceSupplier fn.Supplier[[]string] = newList

	names := append(sliceSupplier.Get(), "Alice", "Bob", "Charlie", "David", "Eve")
	p.println("Names list:", listString(names))

	p.section("Using Supplier in collect")

	shortNames, err := gostreams.Collect(ctx, gostreams.Filter(gostreams.Produce(names), gostreams.FuncPredicate(func(name string) bool {
		return len(name) <= 4
	})), gostreams.ToCollection(sliceSupplier, appendString))
	if err != nil {
		return err
	}

	p.println("Short names (<=4 letters):", listString(shortNames))

	p.section("Generic factory method with Supplier")

	copied, err := copyList(ctx, names, sliceSupplier, appendString)
	if err != nil {
		return err
	}

	p.println("Copied list via Supplier:", listString(copied))

	linked, err := copyList(ctx, names, list.New, pushBack)
	if err != nil {
		return err
	}

	p.println("Copied list via Supplier (linked list):", linkedListString(linked))

	p.println("Copied list without Supplier:", listString(copyListDirect(names)))

	p.section("Generating objects lazily")

	var accountSupplier fn.Supplier[account] = func() account {
		return account{id: uuid.NewString(), name: "John Doe"}
	}

	accounts, err := gostreams.ReduceSlice(ctx, gostreams.Limit(gostreams.Generate(accountSupplier), 2))
	if err != nil {
		return err
	}

	distinctIDs, err := gostreams.Count(ctx, gostreams.DistinctBy(gostreams.Produce(accounts), gostreams.FuncMapper(func(a account) string { return a.id })))
	if err != nil {
		return err
	}

	p.println("Generated", len(accounts), "persons with", distinctIDs, "distinct IDs")

	for _, a := range accounts {
		env.Log.Debug().Stringer("account", a).Msg("generated")
	}

	p.section("Using Supplier with Generate")

	indexes := lo.Times(5, func(i int) int { return i + 1 })

	counter := 0

	squares, err := gostreams.ReduceSlice(ctx, gostreams.Limit(gostreams.Generate(func() int {
		counter++
		return counter * counter
	}), len(indexes)))
	if err != nil {
		return err
	}

	p.println("Squares of", listString(indexes), "=", listString(squares))

	p.section("Collect into a set using Supplier")

	startsWithAOrB := gostreams.FuncPredicate(fn.AnyOf(
		func(n string) bool { return strings.HasPrefix(n, "A") },
		func(n string) bool { return strings.HasPrefix(n, "B") },
	))

	nameSet, err := gostreams.Collect(ctx, gostreams.Filter(gostreams.Produce(names), startsWithAOrB), gostreams.ToSet[string]())
	if err != nil {
		return err
	}

	setNames := lo.Keys(nameSet)
	slices.Sort(setNames)

	p.println("Names in set:", listString(setNames))

	return p.err
}

// SupplierVsDirect contrasts creating values through a generator with creating them directly.
func SupplierVsDirect(ctx context.Context, env *Env) error {
	p := newPrinter(env.Out)

	p.section("Using Supplier")

	var sliceSupplier fn.Supplier[[]string] = newList

	supplierList := append(sliceSupplier.Get(), "Alice", "Bob", "Charlie")
	p.println("Supplier list:", listString(supplierList))

	p.section("Without Supplier")

	directList := []string{"Alice", "Bob", "Charlie"}
	p.println("Direct list:", listString(directList))

	p.section("Generic copy method using Supplier")

	copied, err := copyList(ctx, directList, sliceSupplier, appendString)
	if err != nil {
		return err
	}

	p.println("Copied list:", listString(copied))

	p.section("Generic copy method without Supplier")

	p.println("Copied direct list:", listString(copyListDirect(directList)))

	return p.err
}
