package helper

import (
	"errors"
	"fmt"
)

// ErrUnexpectedType is wrapped by every failed typed assertion.
var ErrUnexpectedType = errors.New("unexpected type")

// TypedValueOf asserts raw to the expected type T.
// Returns an error naming both types if the assertion fails.
func TypedValueOf[T any](raw any) (T, error) {
	val, ok := raw.(T)
	if !ok {
		var zero T
		return zero, fmt.Errorf("%w: want %s, got %T", ErrUnexpectedType, TypeName[T](), raw)
	}
	return val, nil
}

// TypeName renders the static type T, including interface types that %T
// cannot print from a nil value.
func TypeName[T any]() string {
	return fmt.Sprintf("%T", (*T)(nil))[1:]
}
