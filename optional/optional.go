// Package optional provides a container that holds either a value or nothing, as a replacement for nil-based absence.
//
// An Optional is always in exactly one of two states, present or absent, and its state never changes after
// construction. The zero value is absent.
package optional

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/samber/mo"
)

// ErrNilValue is returned by Of when it is given a nil value.
var ErrNilValue = errors.New("value is nil")

// ErrNoValue is returned when a value is extracted from an absent Optional without a fallback.
var ErrNoValue = errors.New("no value present")

// Optional holds zero or one value of type T.
type Optional[T any] struct {
	opt mo.Option[T]
}

// Of returns a present Optional holding value.
// If value is nil, it returns an absent Optional and an error wrapping ErrNilValue.
func Of[T any](value T) (Optional[T], error) {
	if isNil(value) {
		return Empty[T](), fmt.Errorf("optional.Of: %w", ErrNilValue)
	}

	return Optional[T]{opt: mo.Some(value)}, nil
}

// MustOf is like Of but panics if value is nil.
func MustOf[T any](value T) Optional[T] {
	opt, err := Of(value)
	if err != nil {
		panic(err)
	}

	return opt
}

// OfNullable returns a present Optional holding value, or an absent Optional if value is nil.
func OfNullable[T any](value T) Optional[T] {
	if isNil(value) {
		return Empty[T]()
	}

	return Optional[T]{opt: mo.Some(value)}
}

// OfPointer returns a present Optional holding *ptr, or an absent Optional if ptr is nil.
func OfPointer[T any](ptr *T) Optional[T] {
	if ptr == nil {
		return Empty[T]()
	}

	return Optional[T]{opt: mo.Some(*ptr)}
}

// OfOK returns a present Optional holding value if ok is true, and an absent Optional otherwise.
// It adapts the "value, ok" idiom, for example map lookups.
func OfOK[T any](value T, ok bool) Optional[T] {
	if !ok {
		return Empty[T]()
	}

	return Optional[T]{opt: mo.Some(value)}
}

// Empty returns an absent Optional.
func Empty[T any]() Optional[T] {
	return Optional[T]{opt: mo.None[T]()}
}

// IsPresent returns true if o holds a value.
func (o Optional[T]) IsPresent() bool {
	return o.opt.IsPresent()
}

// IsEmpty returns true if o holds no value.
func (o Optional[T]) IsEmpty() bool {
	return !o.opt.IsPresent()
}

// Get returns the value held by o.
// If o is absent, it returns an error wrapping ErrNoValue.
func (o Optional[T]) Get() (T, error) {
	value, ok := o.opt.Get()
	if !ok {
		return value, fmt.Errorf("optional.Get: %w", ErrNoValue)
	}

	return value, nil
}

// MustGet is like Get but panics if o is absent.
func (o Optional[T]) MustGet() T {
	value, err := o.Get()
	if err != nil {
		panic(err)
	}

	return value
}

// OrElse returns the value held by o, or other if o is absent.
// other is evaluated by the caller regardless of o's state.
func (o Optional[T]) OrElse(other T) T {
	return o.opt.OrElse(other)
}

// OrElseGet returns the value held by o, or the result of calling supplier if o is absent.
// supplier is only called if o is absent.
func (o Optional[T]) OrElseGet(supplier func() T) T {
	if value, ok := o.opt.Get(); ok {
		return value
	}

	return supplier()
}

// OrElseThrow returns the value held by o.
// If o is absent, it returns the error produced by errFactory, unchanged.
// errFactory is only called if o is absent.
func (o Optional[T]) OrElseThrow(errFactory func() error) (T, error) {
	value, ok := o.opt.Get()
	if !ok {
		return value, errFactory()
	}

	return value, nil
}

// Or returns o if it is present, or the Optional produced by supplier otherwise.
func (o Optional[T]) Or(supplier func() Optional[T]) Optional[T] {
	if o.IsPresent() {
		return o
	}

	return supplier()
}

// Filter returns o if it is present and its value matches pred, or an absent Optional otherwise.
// pred is not called if o is absent.
func (o Optional[T]) Filter(pred func(T) bool) Optional[T] {
	value, ok := o.opt.Get()
	if !ok || !pred(value) {
		return Empty[T]()
	}

	return o
}

// IfPresent calls action with the value held by o, if present.
func (o Optional[T]) IfPresent(action func(T)) {
	if value, ok := o.opt.Get(); ok {
		action(value)
	}
}

// IfPresentOrElse calls action with the value held by o if present, or emptyAction otherwise.
func (o Optional[T]) IfPresentOrElse(action func(T), emptyAction func()) {
	if value, ok := o.opt.Get(); ok {
		action(value)
		return
	}

	emptyAction()
}

// String implements fmt.Stringer.
func (o Optional[T]) String() string {
	if value, ok := o.opt.Get(); ok {
		return fmt.Sprintf("Optional[%v]", value)
	}

	return "Optional.empty"
}

// Map returns a present Optional holding the result of calling mapp with the value held by o, or an absent Optional
// if o is absent. mapp is not called if o is absent.
func Map[T any, U any](o Optional[T], mapp func(T) U) Optional[U] {
	value, ok := o.opt.Get()
	if !ok {
		return Empty[U]()
	}

	return OfNullable(mapp(value))
}

// FlatMap returns the Optional produced by calling mapp with the value held by o, or an absent Optional if o is
// absent.
func FlatMap[T any, U any](o Optional[T], mapp func(T) Optional[U]) Optional[U] {
	value, ok := o.opt.Get()
	if !ok {
		return Empty[U]()
	}

	return mapp(value)
}

// isNil returns true if value is nil, or a nil pointer, map, slice, func, channel or interface.
func isNil(value any) bool {
	if value == nil {
		return true
	}

	rv := reflect.ValueOf(value)

	switch rv.Kind() { //nolint:exhaustive // other kinds cannot be nil
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice:
		return rv.IsNil()

	default:
		return false
	}
}
