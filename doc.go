// Package gostreams provides a set of operations on streams of elements.
// Streams form a pipeline of operations that elements are being passed through.
//
// Streams are constructed by creating an initial ProducerFunc, which can produce elements from slices,
// iterators, channels, suppliers, or any arbitrary source.
//
// Elements may then be operated upon using mapping, filtering, sorting, and slicing operations
// (which are intermediate ProducerFuncs). Some of these operations can work on elements concurrently
// on a pool of workers to increase throughput, at the cost of a defined element order.
//
// Finally, the elements are consumed by terminal operations, such as reducing or collecting them into slices, sets,
// maps, strings, or ordered groupings, checking for matching elements, finding the first element, or simply iterating
// over them.
//
// Stream operations will receive a context.CancelCauseFunc. Calling the cancel function will
// cancel the entire stream, thus short-circuiting processing elements, and the terminal operation
// will return the cause unchanged. This is how user-provided functions report failures.
// Producer implementations must be prepared to be canceled at any time by checking the provided context.Context.
//
// Streams are always lazy and pull-based: producers will produce a new element only after a downstream producer or
// consumer has asked for it, and all non-concurrent operations run on the goroutine of the terminal operation.
// A downstream operation that stops early, such as Limit or FindFirst, stops all upstream operations as well.
package gostreams
