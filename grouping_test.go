package gostreams

import (
	"testing"

	"github.com/matryer/is"
)

func TestGrouping(t *testing.T) {
	is := is.New(t)

	g := newGrouping[string, int]()
	g.put("b", 1)
	g.put("a", 2)
	g.put("b", 3)

	is.Equal(g.Len(), 2)
	is.Equal(g.Keys(), []string{"b", "a"})

	v, ok := g.Get("b")
	is.True(ok)
	is.Equal(v, 3)

	_, ok = g.Get("c")
	is.True(!ok)

	is.Equal(g.Map(), map[string]int{"a": 2, "b": 3})
	is.Equal(g.String(), "map[b:3 a:2]")
}

func TestGrouping_KeysCopy(t *testing.T) {
	is := is.New(t)

	g := newGrouping[int, string]()
	g.put(1, "one")

	keys := g.Keys()
	keys[0] = 42

	is.Equal(g.Keys(), []int{1})
}

func TestGrouping_All(t *testing.T) {
	is := is.New(t)

	g := newGrouping[string, int]()
	g.put("x", 1)
	g.put("y", 2)
	g.put("z", 3)

	keys := []string{}
	sum := 0

	for k, v := range g.All() {
		keys = append(keys, k)
		sum += v

		if k == "y" {
			break
		}
	}

	is.Equal(keys, []string{"x", "y"})
	is.Equal(sum, 3)
}

func TestMapGrouping(t *testing.T) {
	is := is.New(t)

	g := newGrouping[string, []int]()
	g.put("odd", []int{1, 3})
	g.put("even", []int{2})

	lengths := mapGrouping(g, func(ints []int) int { return len(ints) })

	is.Equal(lengths.Keys(), []string{"odd", "even"})
	is.Equal(lengths.String(), "map[odd:2 even:1]")
}

func TestGrouping_Empty(t *testing.T) {
	is := is.New(t)

	g := newGrouping[string, int]()

	is.Equal(g.Len(), 0)
	is.Equal(g.Keys(), []string{})
	is.Equal(g.String(), "map[]")
}
