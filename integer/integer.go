// Package integer provides an arbitrary precision signed integer.
//
// An Int is a sign and a magnitude. Zero always carries the positive sign, so
// "+0" and "-0" are the same value. Operations never modify their operands;
// each result owns fresh storage.
package integer

import (
	"strings"

	"github.com/zeebo/errs"

	"github.com/calebcase/bigint/digit"
	"github.com/calebcase/bigint/magnitude"
)

// Error is the class of all errors returned by this package.
var Error = errs.Class("integer")

// Failure kinds surfaced by Int operations.
var (
	ErrInvalidDigit   = &digit.ErrInvalid
	ErrDivisionByZero = &magnitude.ErrDivisionByZero
)

// Int is a signed integer number.
type Int struct {
	negative bool
	mag      magnitude.Magnitude
}

// New returns the integer with the given sign and magnitude. The magnitude is
// copied. A zero magnitude yields zero regardless of negative.
func New(negative bool, mag magnitude.Magnitude) Int {
	mag = mag.Trim()

	return Int{
		negative: negative && !mag.IsZero(),
		mag:      mag,
	}
}

// FromInt64 returns the integer with value v.
func FromInt64(v int64) Int {
	if v < 0 {
		// Negating through uint64 keeps math.MinInt64 exact.
		return New(true, magnitude.FromUint64(-uint64(v)))
	}

	return New(false, magnitude.FromUint64(uint64(v)))
}

// Parse returns the integer written in s as an optional '-' followed by one
// or more decimal digits. Leading zeros are permitted.
func Parse(s string) (x Int, err error) {
	defer Error.WrapP(&err)

	body := strings.TrimPrefix(s, "-")
	if body == "" {
		return Int{}, ErrInvalidDigit.New("no digits: %q", s)
	}

	mag, err := magnitude.Parse(body)
	if err != nil {
		return Int{}, err
	}

	return New(len(body) != len(s), mag), nil
}

// MustParse is like Parse but panics on error.
func MustParse(s string) Int {
	x, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return x
}

// Copy returns an independent copy of x.
func (x Int) Copy() Int {
	return New(x.negative, x.mag)
}

// Magnitude returns a copy of the absolute value's bits.
func (x Int) Magnitude() magnitude.Magnitude {
	return x.mag.Trim()
}

// Negative returns true if x < 0.
func (x Int) Negative() bool {
	return x.negative
}

// IsZero returns true if x == 0.
func (x Int) IsZero() bool {
	return x.mag.IsZero()
}

// Sign returns -1, 0 or +1 depending on the sign of x.
func (x Int) Sign() int {
	switch {
	case x.IsZero():
		return 0
	case x.negative:
		return -1
	}

	return 1
}

// String returns x in canonical decimal form.
func (x Int) String() string {
	if x.IsZero() {
		return "0"
	}

	if x.negative {
		return "-" + x.mag.Decimal()
	}

	return x.mag.Decimal()
}

// BinaryString returns the significant bits of x, prefixed with '-' when x is
// negative. Zero is "0".
func (x Int) BinaryString() string {
	if x.IsZero() {
		return "0"
	}

	if x.negative {
		return "-" + x.mag.String()
	}

	return x.mag.String()
}
