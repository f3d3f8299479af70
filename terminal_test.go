package gostreams

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/matryer/is"

	"github.com/deadlyengineer/functional-streams-with-go/fn"
)

func TestReduce(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	ints := Produce([]int{1, 2, 3, 4, 5})

	summer := func(_ context.Context, _ context.CancelCauseFunc, elem int, index uint64, acc int) int {
		is.Equal(index, uint64(elem-1))

		return acc + elem
	}

	result, _ := Reduce(ctx, ints, 0, summer)

	is.Equal(result, 15)
}

func TestReduce_Product(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	result, err := Reduce(ctx, Range(1, 6), 1, FuncAccumulator(func(acc int, elem int) int {
		return acc * elem
	}))

	is.NoErr(err)
	is.Equal(result, 120)
}

func TestReduce_Empty(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	result, err := Reduce(ctx, Of[int](), 42, FuncAccumulator(func(acc int, elem int) int {
		return acc + elem
	}))

	is.NoErr(err)
	is.Equal(result, 42)
}

func TestReduce_Cancel(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	ints := Produce([]int{1, 2, 3, 4, 5})

	summer := func(_ context.Context, cancel context.CancelCauseFunc, elem int, index uint64, acc int) int {
		is.True(elem <= 3)
		is.Equal(index, uint64(elem-1))

		if elem == 3 {
			cancel(nil)
			return acc
		}

		return acc + elem
	}

	result, err := Reduce(ctx, ints, 0, summer)

	is.Equal(result, 3)
	is.True(errors.Is(err, context.Canceled))
}

func TestReduce_ContextCanceled(t *testing.T) {
	is := is.New(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := Reduce(ctx, Produce([]int{1, 2, 3}), 0, FuncAccumulator(func(acc int, elem int) int {
		return acc + elem
	}))

	is.Equal(result, 0)
	is.True(errors.Is(err, context.Canceled))
}

func TestReduce_ToMapDuplicateKey(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	ints := Produce([]int{1, 2, 3, 3, 4, 5})

	collector := ToMap(itoa, Identity[int]())

	result, err := Reduce(ctx, ints, map[string]int{}, collector.Accumulate)

	is.Equal(result, map[string]int{
		"1": 1,
		"2": 2,
		"3": 3,
	})

	var cause *DuplicateKeyError[int, string]

	is.True(errors.As(err, &cause))
	is.Equal(cause.Element, 3)
	is.Equal(cause.Key, "3")
}

func TestReduceOptional(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	sum := func(a int, b int) int { return a + b }

	result, err := ReduceOptional(ctx, Produce([]int{1, 2, 3, 4, 5}), sum)
	is.NoErr(err)
	is.Equal(result.MustGet(), 15)

	single, _ := ReduceOptional(ctx, Of(7), func(int, int) int {
		panic("not called for a single element")
	})
	is.Equal(single.MustGet(), 7)

	empty, _ := ReduceOptional(ctx, Of[int](), sum)
	is.True(empty.IsEmpty())
}

func TestEach(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	ints := Produce([]int{1, 2, 3, 4, 5})

	sum := 0

	summer := func(_ context.Context, _ context.CancelCauseFunc, elem int, index uint64) {
		is.Equal(index, uint64(elem-1))

		sum += elem
	}

	_ = Each(ctx, ints, summer)

	is.Equal(sum, 15)
}

func TestEach_Cancel(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	ints := Produce([]int{1, 2, 3, 4, 5})

	sum := 0

	summer := func(_ context.Context, cancel context.CancelCauseFunc, elem int, index uint64) {
		is.True(elem <= 3)
		is.Equal(index, uint64(elem-1))

		if elem == 3 {
			cancel(nil)
			return
		}

		sum += elem
	}

	err := Each(ctx, ints, summer)

	is.Equal(sum, 3)
	is.True(errors.Is(err, context.Canceled))
}

func TestEach_ShortCircuit(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	seen := []int{}

	err := Each(ctx, Produce([]int{1, 2, 3}), func(_ context.Context, cancel context.CancelCauseFunc, elem int, _ uint64) {
		seen = append(seen, elem)

		if elem == 2 {
			cancel(ErrShortCircuit)
		}
	})

	is.NoErr(err)
	is.Equal(seen, []int{1, 2})
}

func TestAnyMatch(t *testing.T) {
	tests := []struct {
		given        []int
		want         bool
		wantProduced int
	}{
		{
			given:        []int{1, 2, 3, 4, 5, 1, 2, 3, 4, 5, 1, 2, 3, 4, 5},
			want:         false,
			wantProduced: 15,
		},
		{
			given:        []int{1, 2, 100, 4, 5, 1, 2, 3, 4, 5, 1, 2, 3, 4, 5},
			want:         true,
			wantProduced: 3,
		},
	}

	for i, test := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			is := is.New(t)

			ctx := context.Background()

			produced := 0

			ints := Peek(Produce(test.given), func(context.Context, context.CancelCauseFunc, int, uint64) {
				produced++
			})

			expectedIndex := uint64(0)

			greaterThan10 := func(_ context.Context, _ context.CancelCauseFunc, elem int, index uint64) bool {
				is.Equal(index, expectedIndex)
				expectedIndex++

				return elem > 10
			}

			result, err := AnyMatch(ctx, ints, greaterThan10)

			is.NoErr(err)
			is.Equal(result, test.want)
			is.Equal(produced, test.wantProduced)
		})
	}
}

func TestAllMatch(t *testing.T) {
	tests := []struct {
		given        []int
		want         bool
		wantProduced int
	}{
		{
			given:        []int{1, 2, 3, 4, 5, 1, 2, 3, 4, 5, 1, 2, 3, 4, 5},
			want:         true,
			wantProduced: 15,
		},
		{
			given:        []int{1, 2, 100, 4, 5, 1, 2, 3, 4, 5, 1, 2, 3, 4, 5},
			want:         false,
			wantProduced: 3,
		},
		{
			given:        []int{},
			want:         true,
			wantProduced: 0,
		},
	}

	for i, test := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			is := is.New(t)

			ctx := context.Background()

			produced := 0

			ints := Peek(Produce(test.given), func(context.Context, context.CancelCauseFunc, int, uint64) {
				produced++
			})

			expectedIndex := uint64(0)

			lessThan10 := func(_ context.Context, _ context.CancelCauseFunc, elem int, index uint64) bool {
				is.Equal(index, expectedIndex)
				expectedIndex++

				return elem < 10
			}

			result, err := AllMatch(ctx, ints, lessThan10)

			is.NoErr(err)
			is.Equal(result, test.want)
			is.Equal(produced, test.wantProduced)
		})
	}
}

func TestNoneMatch(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	result, _ := NoneMatch(ctx, Produce([]int{1, 3, 5}), even)
	is.True(result)

	result, _ = NoneMatch(ctx, Produce([]int{1, 2, 5}), even)
	is.True(!result)

	result, _ = NoneMatch(ctx, Of[int](), even)
	is.True(result)
}

func TestFindFirst(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	first, err := FindFirst(ctx, Filter(Produce([]string{"bob", "alice", "anna"}), FuncPredicate(func(s string) bool {
		return s[0] == 'a'
	})))

	is.NoErr(err)
	is.Equal(first.MustGet(), "alice")

	none, err := FindFirst(ctx, Of[string]())

	is.NoErr(err)
	is.True(none.IsEmpty())
}

func TestFindFirst_Infinite(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	first, err := FindFirst(ctx, Filter(Iterate(1, func(i int) int { return i + 1 }), FuncPredicate(func(i int) bool {
		return i*i > 50
	})))

	is.NoErr(err)
	is.Equal(first.MustGet(), 8)
}

func TestCount(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	strs := Produce([]string{"foo", "bar", "baz"})

	result, _ := Count(ctx, strs)

	is.Equal(result, uint64(3))
}

func TestMaxMin(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	people := Produce([]person{
		{name: "Alice", age: 30},
		{name: "Bob", age: 25},
		{name: "Charlie", age: 30},
		{name: "Dave", age: 25},
	})

	byAge := fn.Comparing(func(p person) int { return p.age })

	oldest, _ := Max(ctx, people, byAge)
	is.Equal(oldest.MustGet().name, "Alice")

	youngest, _ := Min(ctx, people, byAge)
	is.Equal(youngest.MustGet().name, "Bob")

	none, _ := Max(ctx, Of[person](), byAge)
	is.True(none.IsEmpty())
}
