package bigint

// wordBits is the width of one element under the word-family view.
const wordBits = 32

// ShiftR shifts the sequence right by bits, treating it as a chain of 32-bit
// words. The effective shift distance is bits mod 32; each word combines its
// own shifted value with bits carried in from its more-significant neighbor,
// and the most-significant word is shifted in place with no carry-in. The
// sequence length never changes; bits shifted past the least-significant
// word are lost.
//
// A shift amount that is an exact multiple of 32 would make the carry
// distance 32, an invalid shift for a uint32, so it is handled explicitly as
// a per-word no-op.
func (x BigInt) ShiftR(bits uint) BigInt {
	w := make([]uint32, len(x.digits))
	copy(w, x.digits)

	amount := bits % wordBits
	if amount == 0 || len(w) == 0 {
		return fromWords(w)
	}
	carryBits := wordBits - amount

	for i := len(w) - 1; i >= 1; i-- {
		w[i] = (w[i] >> amount) | (w[i-1] << carryBits)
	}
	w[0] >>= amount

	return fromWords(w)
}

// ShiftL shifts the sequence left by bits, treating it as a chain of 32-bit
// words. The effective shift distance is bits mod 32. Words are processed
// from least to most significant; each output word is the input word shifted
// left ORed with the carry from its less-significant neighbor. A carry
// remaining after the most-significant input word is appended as a new
// most-significant element, growing the sequence by one.
//
// As with ShiftR, an exact multiple of 32 is special-cased: the carry
// distance 32 - 0 is an invalid uint32 shift, and the per-word result is the
// identity.
func (x BigInt) ShiftL(bits uint) BigInt {
	amount := bits % wordBits
	if amount == 0 {
		w := make([]uint32, len(x.digits))
		copy(w, x.digits)
		return fromWords(w)
	}
	carryBits := wordBits - amount

	shifted := make([]uint32, 0, len(x.digits)+1)
	var carry uint32
	for i := len(x.digits) - 1; i >= 0; i-- {
		d := x.digits[i]
		shifted = append(shifted, (d<<amount)|carry)
		carry = d >> carryBits
	}
	if carry > 0 {
		shifted = append(shifted, carry)
	}

	reverse(shifted)
	return fromWords(shifted)
}

// reverse flips a digit slice in place. Operations that produce digits from
// least to most significant use it to restore big-endian storage order.
func reverse(w []uint32) {
	for i, j := 0, len(w)-1; i < j; i, j = i+1, j-1 {
		w[i], w[j] = w[j], w[i]
	}
}
