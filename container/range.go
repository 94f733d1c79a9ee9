// Package container provides the interval descriptor used by sub-map views.
package container

import (
	"fmt"
	"strings"

	"github.com/qntx/bidimap/cmp"
)

// Range describes an interval over one ordering dimension.
//
// Either bound is optional; a bound may be inclusive or exclusive. The zero
// value is the full range. Ranges compose: intersecting two ranges yields a
// range, and reversing a range swaps its bounds for use under a reversed
// comparator.
//
// A Range carries no comparator of its own; membership checks take the
// comparator of the ordering the range restricts.
type Range[T any] struct {
	lo, hi         T
	hasLo, hasHi   bool
	loIncl, hiIncl bool
}

// --------------------------------------------------------------------------------
// Constructors

// FullRange returns the unrestricted range.
func FullRange[T any]() Range[T] {
	return Range[T]{}
}

// NewRange returns the interval between lo and hi with the given inclusivity.
func NewRange[T any](lo T, loIncl bool, hi T, hiIncl bool) Range[T] {
	return Range[T]{lo: lo, hi: hi, hasLo: true, hasHi: true, loIncl: loIncl, hiIncl: hiIncl}
}

// TailRange returns the interval of everything above lo.
func TailRange[T any](lo T, inclusive bool) Range[T] {
	return Range[T]{lo: lo, hasLo: true, loIncl: inclusive}
}

// HeadRange returns the interval of everything below hi.
func HeadRange[T any](hi T, inclusive bool) Range[T] {
	return Range[T]{hi: hi, hasHi: true, hiIncl: inclusive}
}

// --------------------------------------------------------------------------------
// Accessors

// IsFull reports whether the range has no bounds.
func (r Range[T]) IsFull() bool {
	return !r.hasLo && !r.hasHi
}

// Lower returns the lower bound, its inclusivity, and whether it exists.
func (r Range[T]) Lower() (bound T, inclusive bool, ok bool) {
	return r.lo, r.loIncl, r.hasLo
}

// Upper returns the upper bound, its inclusivity, and whether it exists.
func (r Range[T]) Upper() (bound T, inclusive bool, ok bool) {
	return r.hi, r.hiIncl, r.hasHi
}

// --------------------------------------------------------------------------------
// Membership

// TooLow reports whether v falls below the lower bound under the comparator.
func (r Range[T]) TooLow(c cmp.Comparator[T], v T) bool {
	if !r.hasLo {
		return false
	}

	res := c(v, r.lo)

	return res < 0 || (res == 0 && !r.loIncl)
}

// TooHigh reports whether v falls above the upper bound under the comparator.
func (r Range[T]) TooHigh(c cmp.Comparator[T], v T) bool {
	if !r.hasHi {
		return false
	}

	res := c(v, r.hi)

	return res > 0 || (res == 0 && !r.hiIncl)
}

// Contains reports whether v lies inside the range under the comparator.
func (r Range[T]) Contains(c cmp.Comparator[T], v T) bool {
	return !r.TooLow(c, v) && !r.TooHigh(c, v)
}

// --------------------------------------------------------------------------------
// Composition

// Intersect returns the intersection of r and other under the comparator.
//
// The result keeps the tighter bound on each side; when bounds compare equal,
// exclusivity wins. The intersection of disjoint ranges is an empty interval,
// which Contains correctly reports as containing nothing.
func (r Range[T]) Intersect(c cmp.Comparator[T], other Range[T]) Range[T] {
	res := r

	if other.hasLo {
		switch {
		case !res.hasLo:
			res.lo, res.hasLo, res.loIncl = other.lo, true, other.loIncl
		case c(other.lo, res.lo) > 0:
			res.lo, res.loIncl = other.lo, other.loIncl
		case c(other.lo, res.lo) == 0 && !other.loIncl:
			res.loIncl = false
		}
	}

	if other.hasHi {
		switch {
		case !res.hasHi:
			res.hi, res.hasHi, res.hiIncl = other.hi, true, other.hiIncl
		case c(other.hi, res.hi) < 0:
			res.hi, res.hiIncl = other.hi, other.hiIncl
		case c(other.hi, res.hi) == 0 && !other.hiIncl:
			res.hiIncl = false
		}
	}

	return res
}

// Reversed returns the range with its bounds swapped, for use under the
// reversed comparator. Reversing twice yields the original range.
func (r Range[T]) Reversed() Range[T] {
	return Range[T]{
		lo: r.hi, hi: r.lo,
		hasLo: r.hasHi, hasHi: r.hasLo,
		loIncl: r.hiIncl, hiIncl: r.loIncl,
	}
}

// String returns an interval notation representation of the range.
func (r Range[T]) String() string {
	var sb strings.Builder

	if r.hasLo {
		if r.loIncl {
			sb.WriteString("[")
		} else {
			sb.WriteString("(")
		}

		fmt.Fprintf(&sb, "%v", r.lo)
	} else {
		sb.WriteString("(-∞")
	}

	sb.WriteString(", ")

	if r.hasHi {
		fmt.Fprintf(&sb, "%v", r.hi)

		if r.hiIncl {
			sb.WriteString("]")
		} else {
			sb.WriteString(")")
		}
	} else {
		sb.WriteString("+∞)")
	}

	return sb.String()
}
