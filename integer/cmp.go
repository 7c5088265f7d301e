package integer

import "github.com/calebcase/bigint/magnitude"

// Cmp compares x and y and returns -1, 0 or +1.
func (x Int) Cmp(y Int) (r int) {
	switch {
	case x.IsZero() && y.IsZero():
		return 0
	case !x.negative && y.negative:
		return 1
	case x.negative && !y.negative:
		return -1
	}

	r = magnitude.Cmp(x.mag, y.mag)
	if x.negative {
		return -r
	}

	return r
}

// Equal returns true if x == y. Zeros are equal whatever their sign.
func (x Int) Equal(y Int) bool {
	return x.Cmp(y) == 0
}

// Greater returns true if x > y.
func (x Int) Greater(y Int) bool {
	return x.Cmp(y) > 0
}

// Less returns true if x < y.
func (x Int) Less(y Int) bool {
	return x.Cmp(y) < 0
}

// GreaterEqual returns true if x >= y.
func (x Int) GreaterEqual(y Int) bool {
	return x.Cmp(y) >= 0
}

// LessEqual returns true if x <= y.
func (x Int) LessEqual(y Int) bool {
	return x.Cmp(y) <= 0
}
