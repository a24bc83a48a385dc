package rankedbelief

import (
	"fmt"
	"math"
)

// MaxFiniteValue is the largest representable finite rank value: the
// largest uint64 minus one, reserving headroom so the implementation never
// confuses a finite rank with the infinity sentinel.
const MaxFiniteValue uint64 = math.MaxUint64 - 1

// Rank is an ordinal plausibility grade: 0 is most normal, higher finite
// integers are more exceptional, and Infinity denotes impossibility. The
// zero value of Rank is the finite rank 0, so Rank{} is always safe to use.
//
// Rank is a small, comparable value type; pass and store it by value.
type Rank struct {
	value    uint64
	infinite bool
}

// Zero returns the most-normal rank, 0. Equivalent to the zero value Rank{}.
func Zero() Rank { return Rank{} }

// Infinity returns the rank denoting impossibility.
func Infinity() Rank { return Rank{infinite: true} }

// FromValue constructs a finite rank, failing with ErrOverflow if n exceeds
// MaxFiniteValue.
func FromValue(n uint64) (Rank, error) {
	if n > MaxFiniteValue {
		return Rank{}, fmt.Errorf("%w: value %d exceeds MaxFiniteValue %d", ErrOverflow, n, MaxFiniteValue)
	}
	return Rank{value: n}, nil
}

// MustFromValue is like FromValue but panics on error. Intended for
// constant, known-in-range ranks (e.g. the conventional normal_exceptional
// default offset of 1), matching the Go convention of Must-prefixed
// constructors for values that cannot plausibly fail (e.g. regexp.MustCompile).
func MustFromValue(n uint64) Rank {
	r, err := FromValue(n)
	if err != nil {
		panic(err)
	}
	return r
}

// IsInfinity reports whether r is the impossibility sentinel.
func (r Rank) IsInfinity() bool { return r.infinite }

// IsFinite reports whether r is a finite rank.
func (r Rank) IsFinite() bool { return !r.infinite }

// Value returns the finite value of r. It panics if r.IsInfinity(); use
// ValueOr for a non-panicking accessor.
func (r Rank) Value() uint64 {
	if r.infinite {
		panic("rankedbelief: Rank.Value called on an infinite rank")
	}
	return r.value
}

// ValueOr returns r's finite value, or d if r is infinite.
func (r Rank) ValueOr(d uint64) uint64 {
	if r.infinite {
		return d
	}
	return r.value
}

// Add computes r + other. Infinity absorbs: ∞ + x = ∞ for any x. Adding two
// finite ranks fails with ErrOverflow if the sum would exceed MaxFiniteValue.
func (r Rank) Add(other Rank) (Rank, error) {
	if r.infinite || other.infinite {
		return Infinity(), nil
	}
	sum := r.value + other.value
	if sum < r.value || sum > MaxFiniteValue {
		return Rank{}, fmt.Errorf("%w: %s + %s", ErrOverflow, r, other)
	}
	return Rank{value: sum}, nil
}

// Sub computes r - other. other being infinite always fails with
// ErrInfiniteSubtraction (there is no representable negative infinity).
// Otherwise, ∞ - finite = ∞; finite - finite fails with ErrUnderflow if
// other exceeds r.
func (r Rank) Sub(other Rank) (Rank, error) {
	if other.infinite {
		return Rank{}, fmt.Errorf("%w: %s - %s", ErrInfiniteSubtraction, r, other)
	}
	if r.infinite {
		return Infinity(), nil
	}
	if other.value > r.value {
		return Rank{}, fmt.Errorf("%w: %s - %s", ErrUnderflow, r, other)
	}
	return Rank{value: r.value - other.value}, nil
}

// Compare returns -1, 0, or 1 as r is less than, equal to, or greater than
// other, under the total order where Infinity exceeds every finite rank.
func (r Rank) Compare(other Rank) int {
	switch {
	case r.infinite && other.infinite:
		return 0
	case r.infinite:
		return 1
	case other.infinite:
		return -1
	case r.value < other.value:
		return -1
	case r.value > other.value:
		return 1
	default:
		return 0
	}
}

// Less reports whether r < other.
func (r Rank) Less(other Rank) bool { return r.Compare(other) < 0 }

// LessOrEqual reports whether r <= other.
func (r Rank) LessOrEqual(other Rank) bool { return r.Compare(other) <= 0 }

// Equal reports whether r == other.
func (r Rank) Equal(other Rank) bool { return r.Compare(other) == 0 }

// Min returns the lesser of r and other.
func (r Rank) Min(other Rank) Rank {
	if other.Less(r) {
		return other
	}
	return r
}

// Max returns the greater of r and other.
func (r Rank) Max(other Rank) Rank {
	if r.Less(other) {
		return other
	}
	return r
}

// String formats r as "0", "42", or "∞".
func (r Rank) String() string {
	if r.infinite {
		return "∞"
	}
	return fmt.Sprintf("%d", r.value)
}
