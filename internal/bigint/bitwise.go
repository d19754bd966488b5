package bigint

// Word-family boolean operations. Each element is treated as a full 32-bit
// word, not a hexadecimal digit: the operator is applied to all 32 bits.
// For operands that satisfy the digit invariant the results of Xor, And and
// Or happen to stay within [0, 15]; Inv never does.

// Xor pads both operands to equal length and returns their element-wise
// exclusive OR. The result keeps the padded length; no trimming.
func (x BigInt) Xor(y BigInt) BigInt {
	pa, pb := pad(x.digits, y.digits)
	for i := range pa {
		pa[i] ^= pb[i]
	}
	return fromWords(pa)
}

// And pads both operands to equal length and returns their element-wise AND.
func (x BigInt) And(y BigInt) BigInt {
	pa, pb := pad(x.digits, y.digits)
	for i := range pa {
		pa[i] &= pb[i]
	}
	return fromWords(pa)
}

// Or pads both operands to equal length and returns their element-wise OR.
func (x BigInt) Or(y BigInt) BigInt {
	pa, pb := pad(x.digits, y.digits)
	for i := range pa {
		pa[i] |= pb[i]
	}
	return fromWords(pa)
}

// Inv returns the element-wise 32-bit complement of x. No padding step is
// involved (unary operation) and the complement is not restricted to the low
// 4 bits, so every element of the result exceeds 15 for any input that
// satisfied the digit invariant. The result is a valid word-family value;
// Hex renders each element as its full hexadecimal word.
func (x BigInt) Inv() BigInt {
	w := make([]uint32, len(x.digits))
	for i, d := range x.digits {
		w[i] = ^d
	}
	return fromWords(w)
}
