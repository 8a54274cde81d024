package collection

import (
	"fmt"
	"iter"
	"reflect"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// elemEqual compares elements structurally. Elements are unconstrained
// (containers may hold functions), so == is not available.
func elemEqual[A any](a, b A) bool {
	return reflect.DeepEqual(a, b)
}

func seqEqual[A any](xs, ys iter.Seq[A]) bool {
	next, stop := iter.Pull(ys)
	defer stop()
	for x := range xs {
		y, ok := next()
		if !ok || !elemEqual(x, y) {
			return false
		}
	}
	_, more := next()
	return !more
}

// elemKey renders an element for hashing. fmt already prefers String() for
// Stringers and survives nil receivers.
func elemKey(buf []byte, e any) []byte {
	return fmt.Appendf(buf, "%v", e)
}

// hashSeq is order-sensitive: each element is followed by a separator so
// that ["ab"] and ["a", "b"] differ.
func hashSeq[A any](xs iter.Seq[A]) uint64 {
	d := xxhash.New()
	var buf []byte
	for x := range xs {
		buf = elemKey(buf[:0], x)
		buf = append(buf, 0)
		_, _ = d.Write(buf)
	}
	return d.Sum64()
}

func formatSeq[A any](xs iter.Seq[A]) string {
	var b strings.Builder
	b.WriteByte('[')
	first := true
	for x := range xs {
		if !first {
			b.WriteByte(' ')
		}
		first = false
		fmt.Fprint(&b, x)
	}
	b.WriteByte(']')
	return b.String()
}
