// Package magnitude implements unsigned arbitrary precision arithmetic on
// explicit bit vectors.
//
// A Magnitude is stored most significant bit first: index 0 is the highest
// bit and index len-1 is the ones bit. Results of intermediate operations may
// carry leading zero bits. Every comparison treats a vector as its trimmed
// form, so 0b0101 and 0b101 denote the same number.
package magnitude

import (
	"strings"

	"github.com/zeebo/errs"
)

// Error is the class of all errors returned by this package.
var Error = errs.Class("magnitude")

// Failure kinds.
var (
	// ErrDivisionByZero indicates a zero divisor.
	ErrDivisionByZero = errs.Class("division by zero")

	// ErrOffsetOutOfRange indicates a subtraction whose aligned subtrahend
	// does not fit beneath the minuend.
	ErrOffsetOutOfRange = errs.Class("offset out of range")
)

// Magnitude is a non-negative integer as a most significant bit first
// sequence of bits.
type Magnitude []bool

// Zero returns the single bit representation of zero.
func Zero() Magnitude {
	return Magnitude{false}
}

// FromUint64 returns the significant bits of v.
func FromUint64(v uint64) Magnitude {
	if v == 0 {
		return Zero()
	}

	n := 0
	for t := v; t != 0; t >>= 1 {
		n++
	}

	m := make(Magnitude, n)
	for i := range m {
		m[i] = v&(1<<uint(n-1-i)) != 0
	}

	return m
}

// Len returns the number of significant bits. Zero has no significant bits.
func (m Magnitude) Len() int {
	for i, b := range m {
		if b {
			return len(m) - i
		}
	}

	return 0
}

// IsZero returns true if no bit is set.
func (m Magnitude) IsZero() bool {
	return m.Len() == 0
}

// Trim returns a copy of m without leading zero bits. Zero trims to a single
// zero bit.
func (m Magnitude) Trim() Magnitude {
	n := m.Len()
	if n == 0 {
		return Zero()
	}

	t := make(Magnitude, n)
	copy(t, m[len(m)-n:])

	return t
}

// Clone returns an independent copy of m, leading zeros included.
func (m Magnitude) Clone() Magnitude {
	c := make(Magnitude, len(m))
	copy(c, m)

	return c
}

// Equal returns true if m and o denote the same number.
func (m Magnitude) Equal(o Magnitude) bool {
	return Cmp(m, o) == 0
}

// bit returns the bit of significance s (0 is the ones bit). Positions past
// either end read as zero.
func (m Magnitude) bit(s int) bool {
	i := len(m) - 1 - s
	if i < 0 || i >= len(m) {
		return false
	}

	return m[i]
}

// String returns the significant bits as 0 and 1 characters, or "0" for
// zero.
func (m Magnitude) String() string {
	n := m.Len()
	if n == 0 {
		return "0"
	}

	sb := &strings.Builder{}
	sb.Grow(n)

	for _, b := range m[len(m)-n:] {
		if b {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}

	return sb.String()
}
