package hkt

import (
	"fmt"
	"strings"
)

// ErrorKind categorizes boundary failures. Both kinds are programmer errors.
type ErrorKind string

const (
	// KindShapeMismatch: a handle does not hold a container or box of the
	// shape its witness claims.
	KindShapeMismatch ErrorKind = "shape_mismatch"

	// KindStructuralViolation: an operation would produce a container that
	// breaks its shape's invariant, e.g. an empty non-empty list.
	KindStructuralViolation ErrorKind = "structural_violation"
)

var (
	ErrShapeMismatch       = &Error{Kind: KindShapeMismatch}
	ErrStructuralViolation = &Error{Kind: KindStructuralViolation}
)

// Error describes a failure at the widen/narrow boundary.
type Error struct {
	Cause  error
	Kind   ErrorKind
	Op     string // e.g. "list.Narrow"
	Shape  string // witness name
	Actual string // dynamic type of the offending value
	Detail string
}

func (e *Error) Error() string {
	var b strings.Builder

	b.WriteString(string(e.Kind))
	if e.Op != "" {
		b.WriteString(" in ")
		b.WriteString(e.Op)
	}
	if e.Shape != "" {
		b.WriteString(": expected shape ")
		b.WriteString(e.Shape)
		if e.Actual != "" {
			b.WriteString(", got ")
			b.WriteString(e.Actual)
		}
	}
	if e.Detail != "" {
		b.WriteString(" - ")
		b.WriteString(e.Detail)
	}
	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}
	return b.String()
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches any *Error of the same kind, so errors.Is(err, ErrShapeMismatch)
// works regardless of the other fields.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Kind == t.Kind
	}
	return false
}

// ErrorBuilder provides structured error construction.
type ErrorBuilder struct {
	err Error
}

func NewError(kind ErrorKind) *ErrorBuilder {
	return &ErrorBuilder{err: Error{Kind: kind}}
}

func (b *ErrorBuilder) Op(op string) *ErrorBuilder {
	b.err.Op = op
	return b
}

func (b *ErrorBuilder) Shape(shape string) *ErrorBuilder {
	b.err.Shape = shape
	return b
}

// Actual records the dynamic type of v.
func (b *ErrorBuilder) Actual(v any) *ErrorBuilder {
	b.err.Actual = fmt.Sprintf("%T", v)
	return b
}

func (b *ErrorBuilder) Cause(err error) *ErrorBuilder {
	b.err.Cause = err
	return b
}

func (b *ErrorBuilder) Detail(msg string, args ...any) *ErrorBuilder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

func (b *ErrorBuilder) Build() *Error {
	return &b.err
}
