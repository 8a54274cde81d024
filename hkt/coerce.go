package hkt

import (
	"go.uber.org/zap"

	"github.com/on-the-ground/higher_ive_go/shared/helper"
)

// Coerce asserts that the handle h is a T.
//
// This is the trusted boundary of the encoding: the type checker cannot prove
// that a Higher[W, A] holds a T, so shape packages call Coerce instead of
// writing raw assertions. A failed assertion raises a shape mismatch.
//
// Usage:
//
//	func NarrowK[A any](h hkt.Higher[Shape, A]) Type[A] {
//	    return hkt.Coerce[Type[A]](h, "list.NarrowK")
//	}
func Coerce[T, W, A any](h Higher[W, A], op string) T {
	v, err := helper.TypedValueOf[T](h)
	if err != nil {
		Raise(ShapeMismatch[W](op, h, err))
	}
	return v
}

// ShapeMismatch builds the error for a handle that does not hold shape W.
func ShapeMismatch[W any](op string, actual any, cause error) *Error {
	return NewError(KindShapeMismatch).
		Op(op).
		Shape(ShapeName[W]()).
		Actual(actual).
		Cause(cause).
		Build()
}

// StructuralViolation builds the error for a result that would break the
// invariant of shape W.
func StructuralViolation[W any](op string, detail string, args ...any) *Error {
	return NewError(KindStructuralViolation).
		Op(op).
		Shape(ShapeName[W]()).
		Detail(detail, args...).
		Build()
}

// Raise reports err through Logger and panics with it.
// Boundary failures are never returned: they mean a broken invariant elsewhere.
func Raise(err *Error) {
	Logger().Error("hkt boundary violation",
		zap.String("kind", string(err.Kind)),
		zap.String("op", err.Op),
		zap.String("shape", err.Shape),
		zap.String("actual", err.Actual),
		zap.String("detail", err.Detail),
		zap.Error(err.Cause),
	)
	panic(err)
}
