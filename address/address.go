// Package address defines the opaque, fixed-width identifier used
// throughout the flow engine as a token key: an account address, a token
// address, or both at once (a token is an address too — every Circles-style
// participant issues a token at its own address).
//
// Address is a [20]byte array, so it is directly usable as a Go map key
// (structural equality and hashing come for free) and is comparable with
// ==, which the rest of this module relies on.
package address

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

// Len is the byte width of an Address, matching the 20-byte account/token
// identifiers used throughout the corpus's chain-client stacks.
const Len = 20

// Address is an opaque fixed-width identifier with total order, equality,
// and hashing.
type Address [Len]byte

// ErrInvalidLength indicates the input string, after an optional "0x"
// prefix is removed, is not exactly 2*Len (40) hex digits.
var ErrInvalidLength = errors.New("address: invalid length, want 0x + 40 hex digits")

// Zero is the all-zero address, used as a sentinel in tests and examples.
var Zero = Address{}

// Parse decodes a 40-hex-digit string into an Address. A leading "0x" or
// "0X" prefix is accepted but not required.
func Parse(s string) (Address, error) {
	s = strings.TrimPrefix(s, "0x")
	s = strings.TrimPrefix(s, "0X")
	if len(s) != 2*Len {
		return Address{}, ErrInvalidLength
	}
	var a Address
	if _, err := hex.Decode(a[:], []byte(s)); err != nil {
		return Address{}, fmt.Errorf("address: %w", err)
	}
	return a, nil
}

// MustParse is like Parse but panics on error; intended for tests and
// package-level fixtures, never for caller-supplied data.
func MustParse(s string) Address {
	a, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return a
}

// String returns the canonical "0x"-prefixed lowercase hex form.
func (a Address) String() string {
	return "0x" + hex.EncodeToString(a[:])
}

// Short returns an abbreviated form (first 4 / last 4 hex digits) used only
// by the debug Graphviz serializer, never on the computation critical path.
func (a Address) Short() string {
	full := hex.EncodeToString(a[:])
	if len(full) <= 10 {
		return "0x" + full
	}
	return "0x" + full[:4] + "…" + full[len(full)-4:]
}

// Compare returns -1, 0, or 1 as a is less than, equal to, or greater than
// b, by byte-wise lexicographic order. This is the total order the lifted
// graph's tie-breaking rules (spec §4.3) and map-key ordering depend on.
func (a Address) Compare(b Address) int {
	for i := range a {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Less reports whether a sorts strictly before b.
func (a Address) Less(b Address) bool {
	return a.Compare(b) < 0
}
