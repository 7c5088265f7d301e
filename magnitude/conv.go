package magnitude

import (
	"strconv"

	"github.com/calebcase/bigint/digit"
)

// nativeBits is the number of low order bits whose combined weight fits in a
// signed 64 bit accumulator: 2^0 + ... + 2^62 = 2^63 - 1.
const nativeBits = 63

// Parse converts a string of decimal digits into its bits.
//
// The digit string is halved in place once per pass, left to right, with the
// remainder of each digit carried into the next one as ten. The remainder
// left after the last digit is the next bit, least significant first. An
// empty or all zero string yields a single zero bit.
func Parse(s string) (m Magnitude, err error) {
	defer Error.WrapP(&err)

	ds := make([]uint8, 0, len(s))
	for i := 0; i < len(s); i++ {
		d, err := digit.Of(s[i])
		if err != nil {
			return nil, err
		}

		if len(ds) == 0 && d == 0 {
			continue
		}

		ds = append(ds, d)
	}

	if len(ds) == 0 {
		return Zero(), nil
	}

	var lsb []bool
	for len(ds) > 0 {
		var rem uint8
		for i, d := range ds {
			d += rem * 10
			ds[i], rem = d/2, d%2
		}

		lsb = append(lsb, rem == 1)

		if ds[0] == 0 {
			ds = ds[1:]
		}
	}

	m = make(Magnitude, len(lsb))
	for i, b := range lsb {
		m[len(m)-1-i] = b
	}

	return m, nil
}

// MustParse is like Parse but panics on error.
func MustParse(s string) Magnitude {
	m, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return m
}

// Decimal returns m as a string of decimal digits without leading zeros.
//
// The low nativeBits bits are summed in an int64. Above that the running
// value is kept as a decimal string and each set bit contributes its power
// of two, itself kept as a decimal string and doubled once per position, so
// no intermediate value is ever held in a fixed width integer.
func (m Magnitude) Decimal() string {
	s, err := m.decimal()
	if err != nil {
		// Only digits produced here ever reach digit.Sum.
		panic(err)
	}

	return s
}

func (m Magnitude) decimal() (s string, err error) {
	n := m.Len()

	var acc int64
	for p := 0; p < n && p < nativeBits; p++ {
		if m.bit(p) {
			acc |= 1 << uint(p)
		}
	}

	s = strconv.FormatInt(acc, 10)
	if n <= nativeBits {
		return s, nil
	}

	weight := strconv.FormatInt(1<<(nativeBits-1), 10)
	for p := nativeBits; p < n; p++ {
		weight, err = digit.Double(weight)
		if err != nil {
			return "", err
		}

		if !m.bit(p) {
			continue
		}

		s, err = digit.Sum(s, weight)
		if err != nil {
			return "", err
		}
	}

	return s, nil
}
