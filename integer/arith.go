package integer

import "github.com/calebcase/bigint/magnitude"

// Neg returns -x.
func (x Int) Neg() Int {
	return New(!x.negative, x.mag)
}

// Abs returns |x|.
func (x Int) Abs() Int {
	return New(false, x.mag)
}

// Add returns x + y.
func (x Int) Add(y Int) Int {
	if x.negative == y.negative {
		return New(x.negative, magnitude.Add(x.mag, y.mag))
	}

	// Operands are trimmed and their difference is unshifted, so this
	// cannot fail.
	d, err := magnitude.Sub(x.mag, y.mag, 0)
	if err != nil {
		panic(Error.Wrap(err))
	}

	if magnitude.Greater(x.mag, y.mag) {
		return New(x.negative, d)
	}

	return New(y.negative, d)
}

// Sub returns x - y.
func (x Int) Sub(y Int) Int {
	return x.Add(y.Neg())
}

// Mul returns x * y.
func (x Int) Mul(y Int) Int {
	return New(x.negative != y.negative, magnitude.Mul(x.mag, y.mag))
}

// Quo returns x / y truncated toward zero. The remainder is discarded.
func (x Int) Quo(y Int) (q Int, err error) {
	defer Error.WrapP(&err)

	mag, err := magnitude.Div(x.mag, y.mag)
	if err != nil {
		return Int{}, err
	}

	return New(x.negative != y.negative, mag), nil
}

// AddAssign sets x to x + y.
func (x *Int) AddAssign(y Int) {
	*x = x.Add(y)
}

// SubAssign sets x to x - y.
func (x *Int) SubAssign(y Int) {
	*x = x.Sub(y)
}

// MulAssign sets x to x * y.
func (x *Int) MulAssign(y Int) {
	*x = x.Mul(y)
}

// QuoAssign sets x to x / y. On error x is unchanged.
func (x *Int) QuoAssign(y Int) (err error) {
	q, err := x.Quo(y)
	if err != nil {
		return err
	}

	*x = q

	return nil
}
