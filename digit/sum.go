package digit

// Sum adds two strings of decimal digits the way one adds by hand: the
// operands are right aligned and the carry moves from the least significant
// column toward the most significant one. The result has the longer
// operand's length, plus one leading digit when the final column carries.
func Sum(a, b string) (s string, err error) {
	defer Error.WrapP(&err)

	long, short := a, b
	if len(short) > len(long) {
		long, short = short, long
	}

	// One spare column at the front for the final carry.
	out := make([]byte, len(long)+1)
	dif := len(long) - len(short)
	carry := uint8(0)

	for i := len(long) - 1; i >= 0; i-- {
		x, err := Of(long[i])
		if err != nil {
			return "", err
		}

		y := uint8(0)
		if i >= dif {
			y, err = Of(short[i-dif])
			if err != nil {
				return "", err
			}
		}

		v := x + y + carry
		carry = 0
		if v >= 10 {
			v -= 10
			carry = 1
		}

		out[i+1], err = Char(v)
		if err != nil {
			return "", err
		}
	}

	if carry == 1 {
		out[0] = '1'

		return string(out), nil
	}

	return string(out[1:]), nil
}

// Double returns the digit string a added to itself.
func Double(a string) (string, error) {
	return Sum(a, a)
}
