// Package fn provides typed function wrappers and the combinators used to build new functions from existing ones.
//
// Each wrapper is a named func type with a fixed arity and result kind: Function and BiFunction transform one or two
// values, Predicate and BiPredicate test them, Consumer and BiConsumer perform side effects, Supplier generates values,
// and UnaryOperator, BinaryOperator and Comparator are the same-type special cases.
//
// Combinators never mutate their operands; they always return a new function. No wrapper validates its inputs, and a
// panic raised by a wrapped function propagates through every combinator unchanged.
package fn
