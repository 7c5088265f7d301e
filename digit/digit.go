// Package digit converts between decimal characters and digit values and
// performs column arithmetic on strings of decimal digits.
package digit

import "github.com/zeebo/errs"

// Error is the class of all errors returned by this package.
var Error = errs.Class("digit")

// Failure kinds.
var (
	// ErrInvalid indicates a character outside '0'..'9'.
	ErrInvalid = errs.Class("invalid digit")

	// ErrOutOfRange indicates a digit value greater than 9.
	ErrOutOfRange = errs.Class("digit out of range")
)

// Of returns the value of the decimal character c.
func Of(c byte) (d uint8, err error) {
	if c < '0' || c > '9' {
		return 0, ErrInvalid.New("cannot convert %q", c)
	}

	return c - '0', nil
}

// Char returns the decimal character for the digit d.
func Char(d uint8) (c byte, err error) {
	if d > 9 {
		return 0, ErrOutOfRange.New("cannot convert %d", d)
	}

	return '0' + d, nil
}
