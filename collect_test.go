package gostreams

import (
	"context"
	"errors"
	"slices"
	"strconv"
	"strings"
	"testing"

	"github.com/matryer/is"

	"github.com/deadlyengineer/functional-streams-with-go/fn"
)

type person struct {
	name string
	age  int
	city string
}

func (p person) String() string {
	return p.name + " (" + strconv.Itoa(p.age) + ")"
}

func TestToSlice(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	result, err := Collect(ctx, Filter(Produce([]int{1, 2, 3, 4, 5, 6}), even), ToSlice[int]())

	is.NoErr(err)
	is.Equal(result, []int{2, 4, 6})

	empty, _ := Collect(ctx, Of[int](), ToSlice[int]())

	is.True(empty != nil)
	is.Equal(len(empty), 0)
}

func TestToCollection(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	supplies := 0

	result, _ := Collect(ctx, Produce([]string{"b", "a"}), ToCollection(func() []string {
		supplies++
		return make([]string, 0, 10)
	}, func(acc []string, elem string) []string {
		return append(acc, elem)
	}))

	is.Equal(result, []string{"b", "a"})
	is.Equal(cap(result), 10)
	is.Equal(supplies, 1)
}

func TestToSet(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	result, _ := Collect(ctx, Produce([]string{"a", "b", "a", "c", "b"}), ToSet[string]())

	is.Equal(result, map[string]struct{}{
		"a": {},
		"b": {},
		"c": {},
	})
}

func TestToMap(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	result, err := Collect(ctx, Produce([]int{1, 2, 3}), ToMap(Identity[int](), itoa))

	is.NoErr(err)
	is.Equal(result, map[int]string{
		1: "1",
		2: "2",
		3: "3",
	})
}

func TestToMap_DuplicateKey(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	result, err := Collect(ctx, Produce([]int{1, 2, 3, 3, 4}), ToMap(itoa, Identity[int]()))

	is.Equal(result, map[string]int{
		"1": 1,
		"2": 2,
		"3": 3,
	})

	var cause *DuplicateKeyError[int, string]

	is.True(errors.As(err, &cause))
	is.Equal(cause.Element, 3)
	is.Equal(cause.Key, "3")
	is.Equal(err.Error(), "duplicate key: 3")
}

func TestToMapMerge(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	words := Produce([]string{"apple", "avocado", "banana", "blueberry", "cherry"})

	firstLetter := FuncMapper(func(s string) string { return s[:1] })

	result, err := Collect(ctx, words, ToMapMerge(firstLetter, FuncMapper(func(string) int { return 1 }), func(a int, b int) int {
		return a + b
	}))

	is.NoErr(err)
	is.Equal(result, map[string]int{
		"a": 2,
		"b": 2,
		"c": 1,
	})
}

func TestJoining(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	names := Produce([]string{"alice", "bob", "charlie"})

	result, _ := Collect(ctx, Map(names, FuncMapper(strings.ToUpper)), Joining[string](", "))
	is.Equal(result, "ALICE, BOB, CHARLIE")

	ints, _ := Collect(ctx, Produce([]int{1, 2, 3}), Joining[int]("-"))
	is.Equal(ints, "1-2-3")

	empty, _ := Collect(ctx, Of[string](), Joining[string](", "))
	is.Equal(empty, "")
}

func TestCounting(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	result, _ := Collect(ctx, Produce([]string{"a", "b", "c"}), Counting[string]())

	is.Equal(result, 3)
}

func TestSumming(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	ints, _ := Collect(ctx, Range(1, 6), Summing(Identity[int]()))
	is.Equal(ints, 15)

	prices, _ := Collect(ctx, Produce([]float64{1.5, 2.25}), Summing(Identity[float64]()))
	is.Equal(prices, 3.75)
}

func TestAveraging(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	result, _ := Collect(ctx, Produce([]int{1, 2, 3, 4}), Averaging(Identity[int]()))
	is.Equal(result, 2.5)

	empty, _ := Collect(ctx, Of[int](), Averaging(Identity[int]()))
	is.Equal(empty, 0.0)
}

func TestMaxByMinBy(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	words := Produce([]string{"kiwi", "banana", "fig", "cherry", "pea"})

	byLen := fn.Comparing(func(s string) int { return len(s) })

	longest, _ := Collect(ctx, words, MaxBy(byLen))
	is.Equal(longest.MustGet(), "banana")

	shortest, _ := Collect(ctx, words, MinBy(byLen))
	is.Equal(shortest.MustGet(), "fig")

	none, _ := Collect(ctx, Of[string](), MaxBy(byLen))
	is.True(none.IsEmpty())
}

func TestReducing(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	sum, _ := Collect(ctx, Range(1, 6), Reducing(0, func(acc int, elem int) int { return acc + elem }))
	is.Equal(sum, 15)

	product, _ := Collect(ctx, Range(1, 6), Reducing(1, func(acc int, elem int) int { return acc * elem }))
	is.Equal(product, 120)
}

func TestMapping(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	result, _ := Collect(ctx, Produce([]int{1, 2, 3}), Mapping(itoa, Joining[string]("+")))

	is.Equal(result, "1+2+3")
}

func TestFiltering(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	result, _ := Collect(ctx, Range(1, 11), Filtering(even, Counting[int]()))

	is.Equal(result, 5)
}

func TestCollectingAndThen(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	result, _ := Collect(ctx, Produce([]int{3, 1, 2}), CollectingAndThen(ToSlice[int](), func(s []int) []int {
		slices.Sort(s)
		return s
	}))

	is.Equal(result, []int{1, 2, 3})
}

func TestGroupingBy(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	people := Produce([]person{
		{name: "Alice", age: 30, city: "London"},
		{name: "Bob", age: 25, city: "Berlin"},
		{name: "Charlie", age: 35, city: "London"},
	})

	byCity := FuncMapper(func(p person) string { return p.city })

	result, err := Collect(ctx, people, GroupingBy(byCity))

	is.NoErr(err)
	is.Equal(result.Keys(), []string{"London", "Berlin"})

	london, _ := result.Get("London")
	is.Equal(london, []person{
		{name: "Alice", age: 30, city: "London"},
		{name: "Charlie", age: 35, city: "London"},
	})

	berlin, _ := result.Get("Berlin")
	is.Equal(len(berlin), 1)
	is.Equal(berlin[0].name, "Bob")
}

func TestGroupingBy_EvenOdd(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	result, _ := Collect(ctx, Produce([]int{1, 2, 3, 4, 5}), GroupingBy(evenOddStr))

	is.Equal(result.Map(), map[string][]int{
		"odd":  {1, 3, 5},
		"even": {2, 4},
	})
	is.Equal(result.Keys(), []string{"odd", "even"})
}

func TestGroupingByWith(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	words := Produce([]string{"apple", "avocado", "banana", "blueberry", "cherry"})

	firstLetter := FuncMapper(func(s string) string { return s[:1] })

	result, _ := Collect(ctx, words, GroupingByWith(firstLetter, Counting[string]()))

	is.Equal(result.String(), "map[a:2 b:2 c:1]")
}

func TestGroupingBy_Cancel(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	errBad := errors.New("bad key")

	key := func(_ context.Context, cancel context.CancelCauseFunc, elem int, _ uint64) string {
		if elem == 3 {
			cancel(errBad)
		}

		return strconv.Itoa(elem % 2)
	}

	result, err := Collect(ctx, Produce([]int{1, 2, 3, 4}), GroupingBy(key))

	is.Equal(err, errBad)
	is.Equal(result.Map(), map[string][]int{
		"1": {1},
		"0": {2},
	})
}

func TestPartitioningBy(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	result, _ := Collect(ctx, Produce([]int{1, 2, 3, 4, 5}), PartitioningBy(even))

	is.Equal(result.Keys(), []bool{false, true})
	is.Equal(result.Map(), map[bool][]int{
		false: {1, 3, 5},
		true:  {2, 4},
	})
}

func TestPartitioningBy_BothKeys(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	result, _ := Collect(ctx, Produce([]int{1, 3}), PartitioningBy(even))

	evens, ok := result.Get(true)
	is.True(ok)
	is.Equal(evens, []int{})

	empty, _ := Collect(ctx, Of[int](), PartitioningByWith(even, Counting[int]()))
	is.Equal(empty.String(), "map[false:0 true:0]")
}

func itoa(_ context.Context, _ context.CancelCauseFunc, elem int, _ uint64) string {
	return strconv.Itoa(elem)
}

func even(_ context.Context, _ context.CancelCauseFunc, elem int, _ uint64) bool {
	return elem%2 == 0
}

func evenOddStr(_ context.Context, _ context.CancelCauseFunc, elem int, _ uint64) string {
	if elem%2 != 0 {
		return "odd"
	}

	return "even"
}
