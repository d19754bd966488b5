package bigint

import (
	"strconv"
	"strings"
)

// BigInt is an immutable arbitrary-precision unsigned integer stored as a
// big-endian sequence of uint32 digit values. Values produced by New and by
// the digit-family operations keep every element in [0, 15]; values produced
// by the word-family operations (see package documentation) may not.
//
// The zero value is Empty: a sequence with no elements, numerically zero but
// not element-wise equal to a zero-valued sequence of nonzero length.
type BigInt struct {
	digits []uint32
}

// New constructs a BigInt from a hexadecimal string. Characters that are not
// valid hexadecimal digits are silently dropped, not rejected: New("zff")
// equals New("ff"). This matches the reference parser and is preserved as
// documented behavior; callers that need validation must perform it before
// construction.
func New(hex string) BigInt {
	digits := make([]uint32, 0, len(hex))
	for _, r := range hex {
		if d, ok := hexDigitValue(r); ok {
			digits = append(digits, d)
		}
	}
	return BigInt{digits: digits}
}

// Empty returns a BigInt with no elements. It is numerically equivalent to
// zero but compares unequal to any nonzero-length sequence, including an
// all-zero one, unless both operands are padded first.
func Empty() BigInt {
	return BigInt{}
}

// hexDigitValue maps a rune to its hexadecimal digit value.
func hexDigitValue(r rune) (uint32, bool) {
	switch {
	case r >= '0' && r <= '9':
		return uint32(r - '0'), true
	case r >= 'a' && r <= 'f':
		return uint32(r-'a') + 10, true
	case r >= 'A' && r <= 'F':
		return uint32(r-'A') + 10, true
	}
	return 0, false
}

// Hex renders the sequence as a lowercase hexadecimal string, one %x run per
// element in order. Elements in [0, 15] render as a single character;
// elements outside that range (possible after word-family operations) render
// as their full hexadecimal word, so the output length can exceed the
// element count. Hex(New(s)) == s for any s of valid lowercase hex digits.
func (x BigInt) Hex() string {
	var sb strings.Builder
	sb.Grow(len(x.digits))
	for _, d := range x.digits {
		sb.WriteString(strconv.FormatUint(uint64(d), 16))
	}
	return sb.String()
}

// Len returns the number of elements in the sequence, including leading
// zeros. No operation trims leading zeros.
func (x BigInt) Len() int {
	return len(x.digits)
}

// Words returns a copy of the underlying word sequence, most significant
// first. It is the element-level view needed to observe word-family results
// (an Inv output, for example) without going through Hex.
func (x BigInt) Words() []uint32 {
	w := make([]uint32, len(x.digits))
	copy(w, x.digits)
	return w
}

// fromWords wraps a digit slice without copying. The caller must not retain
// the slice.
func fromWords(w []uint32) BigInt {
	return BigInt{digits: w}
}

// pad zero-extends the shorter of a and b on the most-significant side until
// both have equal length, returning fresh slices. It is the alignment step
// used by the element-wise binary operations (Xor, And, Or, Add, Sub, Mul).
// The comparisons inside ModBy intentionally do NOT pad; see Cmp.
func pad(a, b []uint32) ([]uint32, []uint32) {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	pa := make([]uint32, n)
	pb := make([]uint32, n)
	copy(pa[n-len(a):], a)
	copy(pb[n-len(b):], b)
	return pa, pb
}

// Cmp compares x and y lexicographically element-by-element from the most
// significant position, with length as the tiebreak for a common prefix
// (shorter sorts first). This ordering is numerically meaningful only when
// both operands have equal length; comparing unequal-length operands without
// prior padding gives undefined numeric ordering. ModBy relies on exactly
// this comparison, quirk included.
//
// Returns -1 if x < y, 0 if x == y, and +1 if x > y under that ordering.
func (x BigInt) Cmp(y BigInt) int {
	n := len(x.digits)
	if len(y.digits) < n {
		n = len(y.digits)
	}
	for i := 0; i < n; i++ {
		if x.digits[i] != y.digits[i] {
			if x.digits[i] < y.digits[i] {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(x.digits) < len(y.digits):
		return -1
	case len(x.digits) > len(y.digits):
		return 1
	}
	return 0
}

// Equal reports whether x and y are element-wise identical. A zero-valued
// sequence of nonzero length is not Equal to Empty.
func (x BigInt) Equal(y BigInt) bool {
	return x.Cmp(y) == 0
}
