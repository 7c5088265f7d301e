package integer

import "github.com/calebcase/bigint/magnitude"

// MarshalText implements encoding.TextMarshaler.
func (x Int) MarshalText() (text []byte, err error) {
	return []byte(x.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (x *Int) UnmarshalText(text []byte) (err error) {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}

	*x = v

	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
//
// The magnitude is shifted left one bit and the freed ones bit holds the sign
// (1 for negative). The bits are packed big-endian into the fewest bytes
// that hold them. Zero encodes as a single zero byte.
func (x Int) MarshalBinary() (data []byte, err error) {
	bits := append(x.mag.Trim(), x.negative)
	if x.IsZero() {
		bits = magnitude.Magnitude{false}
	}

	data = make([]byte, (len(bits)+7)/8)
	for s := 0; s < len(bits); s++ {
		if bits[len(bits)-1-s] {
			data[len(data)-1-s/8] |= 1 << uint(s%8)
		}
	}

	return data, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (x *Int) UnmarshalBinary(data []byte) (err error) {
	if len(data) == 0 {
		return Error.New("empty data")
	}

	bits := make(magnitude.Magnitude, 8*len(data))
	for i, b := range data {
		for j := 0; j < 8; j++ {
			bits[8*i+j] = b&(0b1000_0000>>uint(j)) != 0
		}
	}

	*x = New(bits[len(bits)-1], bits[:len(bits)-1])

	return nil
}
