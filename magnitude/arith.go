package magnitude

// Cmp compares the numbers denoted by a and b and returns -1, 0 or +1.
//
// The longer significant bit run is greater. Runs of equal length are ordered
// by the first differing bit, scanning from the most significant end.
func Cmp(a, b Magnitude) int {
	an, bn := a.Len(), b.Len()

	switch {
	case an > bn:
		return 1
	case an < bn:
		return -1
	}

	a, b = a[len(a)-an:], b[len(b)-bn:]
	for i := range a {
		switch {
		case a[i] && !b[i]:
			return 1
		case !a[i] && b[i]:
			return -1
		}
	}

	return 0
}

// Greater returns true if a is strictly greater than b.
func Greater(a, b Magnitude) bool {
	return Cmp(a, b) > 0
}

// Add returns a + b. The result is as long as the longer operand plus one
// bit when the most significant column carries out.
func Add(a, b Magnitude) Magnitude {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}

	// Slot 0 is reserved for the carry out.
	out := make(Magnitude, n+1)
	carry := false

	for s := 0; s < n; s++ {
		x, y := a.bit(s), b.bit(s)

		out[n-s] = (x != y) != carry
		carry = (x && y) || (carry && (x != y))
	}

	if carry {
		out[0] = true

		return out
	}

	return out[1:]
}

// Sub returns larger - (smaller << offset), where larger is a unless b is
// strictly greater. The result is as long as the larger operand.
//
// Sub fails with ErrOffsetOutOfRange if offset is negative, if it exceeds the
// difference between the operands' significant lengths, or if the shifted
// subtrahend is greater than the minuend.
func Sub(a, b Magnitude, offset int) (d Magnitude, err error) {
	l, s := a, b
	if Greater(b, a) {
		l, s = b, a
	}

	if offset < 0 || offset > l.Len()-s.Len() {
		return nil, ErrOffsetOutOfRange.New(
			"offset=%d minuend=%d subtrahend=%d",
			offset,
			l.Len(),
			s.Len(),
		)
	}

	out := l.Clone()
	borrow := false

	for p := 0; p < len(l); p++ {
		x, y := l.bit(p), s.bit(p-offset)

		// Truth table for x - y - borrow:
		//
		//  x y b | d b'
		//  1 1 0 | 0 0
		//  1 1 1 | 1 1
		//  1 0 0 | 1 0
		//  1 0 1 | 0 0
		//  0 1 0 | 1 1
		//  0 1 1 | 0 1
		//  0 0 0 | 0 0
		//  0 0 1 | 1 1
		out[len(out)-1-p] = (x != y) != borrow
		borrow = (!x && (y || borrow)) || (x && y && borrow)
	}

	if borrow {
		return nil, ErrOffsetOutOfRange.New(
			"subtrahend exceeds minuend: offset=%d",
			offset,
		)
	}

	return out, nil
}

// shift returns m << n by appending n low zero bits.
func shift(m Magnitude, n int) Magnitude {
	return append(m.Clone(), make(Magnitude, n)...)
}

// Mul returns a * b by shift-and-add: for each set bit of the multiplier,
// scanned from the ones bit upward, the multiplicand shifted to that bit's
// position is added to the product.
func Mul(a, b Magnitude) Magnitude {
	product := Zero()
	addend := a.Clone()

	for s := 0; s < len(b); s++ {
		if b.bit(s) {
			product = Add(product, addend)
		}

		addend = shift(addend, 1)
	}

	return product
}

// divisible reports whether d, with its most significant bit aligned at index
// i of r, fits beneath the window of r it covers. A set bit above the window
// means the window plus that bit always exceeds d.
func divisible(r, d Magnitude, i int) bool {
	if i >= 1 && r[i-1] {
		return true
	}

	for j := range d {
		switch {
		case r[i+j] && !d[j]:
			return true
		case !r[i+j] && d[j]:
			return false
		}
	}

	return true
}

// DivMod returns the truncated quotient and the remainder of a / b using
// binary long division.
func DivMod(a, b Magnitude) (q, r Magnitude, err error) {
	if b.IsZero() {
		return nil, nil, ErrDivisionByZero.New("dividend=%s", a)
	}

	if Greater(b, a) {
		return Zero(), a.Trim(), nil
	}

	r, b = a.Trim(), b.Trim()
	q = make(Magnitude, 0, len(r)-len(b)+1)

	for i := 0; i <= len(r)-len(b); i++ {
		if !divisible(r, b, i) {
			q = append(q, false)

			continue
		}

		r, err = Sub(r, b, len(r)-(i+len(b)))
		if err != nil {
			return nil, nil, Error.Wrap(err)
		}

		q = append(q, true)
	}

	return q.Trim(), r.Trim(), nil
}

// Div returns the truncated quotient of a / b.
func Div(a, b Magnitude) (q Magnitude, err error) {
	q, _, err = DivMod(a, b)

	return q, err
}
