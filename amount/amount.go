// Package amount provides the U256 capacity type the flow engine uses for
// every balance, trust limit, and flow value. It wraps
// github.com/holiman/uint256 — the 256-bit unsigned integer type used
// across the corpus's chain-client stacks for exactly this kind of
// balance/allowance arithmetic — behind a small immutable value type so the
// rest of the engine can read like the spec's U256 contract (Add, saturating
// Sub, Min, comparison, Zero, Max256) without touching the library's
// mutable-receiver API directly.
package amount

import (
	"github.com/holiman/uint256"
)

// U256 is an immutable 256-bit unsigned integer.
type U256 struct {
	i uint256.Int
}

// Zero is the additive identity.
func Zero() U256 { return U256{} }

// Max256 is the largest representable U256, used as the sentinel meaning
// "give me the true max flow" for compute_flow's requested_flow parameter.
func Max256() U256 {
	var i uint256.Int
	i.SetAllOne()
	return U256{i}
}

// FromUint64 constructs a U256 from a native uint64.
func FromUint64(v uint64) U256 {
	return U256{*uint256.NewInt(v)}
}

// Add returns a+b, wrapping modulo 2^256. Callers needing overflow detection
// (the Trust node's send-to-owner sum) must use AddChecked instead.
func (a U256) Add(b U256) U256 {
	var r uint256.Int
	r.Add(&a.i, &b.i)
	return U256{r}
}

// AddChecked returns a+b and reports whether the addition overflowed 256
// bits. Used only where overflow signals a caller-supplied-data invariant
// violation (spec §7), never in the normal saturating-arithmetic paths.
func (a U256) AddChecked(b U256) (U256, bool) {
	var r uint256.Int
	_, overflow := r.AddOverflow(&a.i, &b.i)
	return U256{r}, overflow
}

// Sub returns a-b, saturating at zero instead of wrapping or panicking.
// Capacities in this engine never go negative; every subtraction in the
// spec (reduce_capacity, prune_edge, balance deduction) operates on an
// amount already known not to exceed the minuend, but saturation keeps the
// type safe even if that invariant is ever violated by a caller bug.
func (a U256) Sub(b U256) U256 {
	if a.Less(b) {
		return Zero()
	}
	var r uint256.Int
	r.Sub(&a.i, &b.i)
	return U256{r}
}

// Min returns the smaller of a and b.
func (a U256) Min(b U256) U256 {
	if a.Less(b) {
		return a
	}
	return b
}

// Cmp returns -1, 0, or 1 as a is less than, equal to, or greater than b.
func (a U256) Cmp(b U256) int {
	return a.i.Cmp(&b.i)
}

// Less reports whether a < b.
func (a U256) Less(b U256) bool { return a.i.Lt(&b.i) }

// Greater reports whether a > b.
func (a U256) Greater(b U256) bool { return a.i.Gt(&b.i) }

// Equal reports whether a == b.
func (a U256) Equal(b U256) bool { return a.i.Eq(&b.i) }

// IsZero reports whether a is the zero value.
func (a U256) IsZero() bool { return a.i.IsZero() }

// String returns the base-10 decimal representation.
func (a U256) String() string { return a.i.String() }
