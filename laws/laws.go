// Package laws checks typeclass instances against their algebraic laws.
//
// Every checker runs over caller-supplied samples and returns nil or every
// violation found, combined with multierr. Each violation wraps
// ErrLawViolated.
package laws

import (
	"errors"
	"fmt"
	"reflect"
	"slices"

	"go.uber.org/multierr"

	"github.com/on-the-ground/higher_ive_go/hkt"
	"github.com/on-the-ground/higher_ive_go/typeclass"
)

var ErrLawViolated = errors.New("law violated")

// Eq compares two handles of the same shape, e.g. list.Equal[int].
type Eq[W, A any] func(x, y hkt.Higher[W, A]) bool

func violation(law, format string, args ...any) error {
	return fmt.Errorf("%w: %s: %s", ErrLawViolated, law, fmt.Sprintf(format, args...))
}

// FunctorIdentity checks Map(id, x) == x.
func FunctorIdentity[W, A any](F typeclass.Functor[W, A, A], eq Eq[W, A], xs ...hkt.Higher[W, A]) error {
	var errs error
	for _, x := range xs {
		got := F.Map(func(a A) A { return a }, x)
		if !eq(got, x) {
			errs = multierr.Append(errs, violation("functor identity", "Map(id, %v) = %v", x, got))
		}
	}
	return errs
}

// FunctorComposition checks Map(g∘f, x) == Map(g, Map(f, x)).
func FunctorComposition[W, A, B, C any](
	FAB typeclass.Functor[W, A, B],
	FBC typeclass.Functor[W, B, C],
	FAC typeclass.Functor[W, A, C],
	f func(A) B,
	g func(B) C,
	eq Eq[W, C],
	xs ...hkt.Higher[W, A],
) error {
	var errs error
	for _, x := range xs {
		fused := FAC.Map(func(a A) C { return g(f(a)) }, x)
		chained := FBC.Map(g, FAB.Map(f, x))
		if !eq(fused, chained) {
			errs = multierr.Append(errs, violation("functor composition", "x = %v: %v != %v", x, fused, chained))
		}
	}
	return errs
}

// MonadLeftIdentity checks FlatMap(f, Unit(a)) == f(a).
func MonadLeftIdentity[W, A, B any](M typeclass.Monad[W, A, B], f func(A) hkt.Higher[W, B], eq Eq[W, B], as ...A) error {
	var errs error
	for _, a := range as {
		got, want := M.FlatMap(f, M.Unit(a)), f(a)
		if !eq(got, want) {
			errs = multierr.Append(errs, violation("monad left identity", "a = %v: %v != %v", a, got, want))
		}
	}
	return errs
}

// MonadRightIdentity checks FlatMap(Unit, m) == m.
func MonadRightIdentity[W, A any](M typeclass.Monad[W, A, A], eq Eq[W, A], ms ...hkt.Higher[W, A]) error {
	var errs error
	for _, m := range ms {
		got := M.FlatMap(M.Unit, m)
		if !eq(got, m) {
			errs = multierr.Append(errs, violation("monad right identity", "FlatMap(Unit, %v) = %v", m, got))
		}
	}
	return errs
}

// MonadAssociativity checks
// FlatMap(g, FlatMap(f, m)) == FlatMap(a => FlatMap(g, f(a)), m).
func MonadAssociativity[W, A, B, C any](
	MAB typeclass.Monad[W, A, B],
	MBC typeclass.Monad[W, B, C],
	MAC typeclass.Monad[W, A, C],
	f func(A) hkt.Higher[W, B],
	g func(B) hkt.Higher[W, C],
	eq Eq[W, C],
	ms ...hkt.Higher[W, A],
) error {
	var errs error
	for _, m := range ms {
		left := MBC.FlatMap(g, MAB.FlatMap(f, m))
		right := MAC.FlatMap(func(a A) hkt.Higher[W, C] { return MBC.FlatMap(g, f(a)) }, m)
		if !eq(left, right) {
			errs = multierr.Append(errs, violation("monad associativity", "m = %v: %v != %v", m, left, right))
		}
	}
	return errs
}

// FoldConsistency checks that FoldRight visits the elements FoldLeft visits,
// in reverse.
func FoldConsistency[W, A any](Fd typeclass.Foldable[W, A, []A], xs ...hkt.Higher[W, A]) error {
	var errs error
	for _, x := range xs {
		left := Fd.FoldLeft(nil, func(acc []A, a A) []A { return append(acc, a) }, x)
		right := Fd.FoldRight(nil, func(a A, acc []A) []A { return append(acc, a) }, x)
		slices.Reverse(right)
		if len(left) != len(right) || (len(left) > 0 && !reflect.DeepEqual(left, right)) {
			errs = multierr.Append(errs, violation("fold consistency", "x = %v: left %v, reversed right %v", x, left, right))
		}
	}
	return errs
}

// RoundTrip checks narrow(widen(n)) is n according to same.
// Pass an identity comparison to require the very same container back.
func RoundTrip[N, W, A any, K hkt.Higher[W, A]](
	widen func(N) K,
	narrow func(hkt.Higher[W, A]) N,
	same func(x, y N) bool,
	ns ...N,
) error {
	var errs error
	for _, n := range ns {
		if got := narrow(widen(n)); !same(n, got) {
			errs = multierr.Append(errs, violation("round trip", "%v came back as %v", n, got))
		}
	}
	return errs
}

// NonEmpty checks that every handle holds at least one element.
func NonEmpty[W, A any](Fd typeclass.Foldable[W, A, int], hs ...hkt.Higher[W, A]) error {
	var errs error
	for i, h := range hs {
		if typeclass.Length(Fd, h) == 0 {
			errs = multierr.Append(errs, violation("non-empty", "handle %d is empty", i))
		}
	}
	return errs
}
