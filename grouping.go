package gostreams

import (
	"fmt"
	"iter"
	"strings"
)

// Grouping maps keys to values, remembering the order in which keys were first added.
// Groupings are produced by the GroupingBy and PartitioningBy collectors and are not modified afterwards.
type Grouping[K comparable, V any] struct {
	keys   []K
	values map[K]V
}

func newGrouping[K comparable, V any]() *Grouping[K, V] {
	return &Grouping[K, V]{
		values: map[K]V{},
	}
}

// Get returns the value for key, and whether key is present.
func (g *Grouping[K, V]) Get(key K) (V, bool) {
	v, ok := g.values[key]
	return v, ok
}

// Keys returns the keys, in the order in which they were first added.
func (g *Grouping[K, V]) Keys() []K {
	keys := make([]K, len(g.keys))
	copy(keys, g.keys)

	return keys
}

// Len returns the number of keys.
func (g *Grouping[K, V]) Len() int {
	return len(g.keys)
}

// All returns an iterator over key-value pairs, in key order.
func (g *Grouping[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, k := range g.keys {
			if !yield(k, g.values[k]) {
				return
			}
		}
	}
}

// Map returns a map with the same key-value pairs.
func (g *Grouping[K, V]) Map() map[K]V {
	m := make(map[K]V, len(g.values))
	for k, v := range g.values {
		m[k] = v
	}

	return m
}

// String implements fmt.Stringer. It formats the grouping like a map, in key order.
func (g *Grouping[K, V]) String() string {
	b := strings.Builder{}
	b.WriteString("map[")

	for i, k := range g.keys {
		if i > 0 {
			b.WriteByte(' ')
		}

		fmt.Fprintf(&b, "%v:%v", k, g.values[k])
	}

	b.WriteByte(']')

	return b.String()
}

func (g *Grouping[K, V]) put(key K, value V) {
	if _, ok := g.values[key]; !ok {
		g.keys = append(g.keys, key)
	}

	g.values[key] = value
}

func mapGrouping[K comparable, A any, R any](g *Grouping[K, A], mapp func(A) R) *Grouping[K, R] {
	result := &Grouping[K, R]{
		keys:   g.keys,
		values: make(map[K]R, len(g.values)),
	}

	for k, a := range g.values {
		result.values[k] = mapp(a)
	}

	return result
}
