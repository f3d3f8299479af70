package gostreams

import (
	"errors"
	"fmt"
)

// ErrNegativeCount is wrapped by the PreconditionError used to cancel a stream when Limit or Skip are given a
// negative count.
var ErrNegativeCount = errors.New("negative count")

// ErrShortCircuit is a generic error used to short-circuit a stream by canceling its context.
// Terminal operations do not report it as an error.
var ErrShortCircuit = errors.New("short circuit")

// A PreconditionError is used to cancel a stream when an operation was given an invalid argument.
type PreconditionError struct {
	// Op is the name of the operation.
	Op string

	// Err describes the violated precondition.
	Err error
}

// A DuplicateKeyError is used to short-circuit a stream by canceling its context to indicate that
// a key could not be added to a map because it already exists.
type DuplicateKeyError[T any, K comparable] struct {
	// Element is the upstream producer's element that caused the error.
	Element T

	// Key is the key that was already in the map.
	Key K
}

// Error implements error.
func (e *PreconditionError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

// Unwrap returns e.Err.
func (e *PreconditionError) Unwrap() error {
	return e.Err
}

// Error implements error.
func (e *DuplicateKeyError[T, K]) Error() string {
	return fmt.Sprintf("duplicate key: %v", e.Key)
}

func negativeCount(op string, count int) *PreconditionError {
	return &PreconditionError{
		Op:  op,
		Err: fmt.Errorf("%w: %d", ErrNegativeCount, count),
	}
}
