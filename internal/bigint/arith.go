package bigint

import "fmt"

// Digit-family arithmetic. Every element is a hexadecimal digit in [0, 15]
// and carries and borrows propagate in base 16. Feeding word-family results
// (elements > 15) into these operations is undefined; arithmetic is
// performed in uint32 and wraps silently.

// UnderflowError reports a subtraction whose minuend is numerically smaller
// than its subtrahend. The digit representation cannot express a negative
// result, so no partial value is returned alongside it.
type UnderflowError struct {
	// Minuend is the hex rendering of the smaller left operand.
	Minuend string
	// Subtrahend is the hex rendering of the larger right operand.
	Subtrahend string
}

// Error returns a formatted message describing the underflow.
func (e *UnderflowError) Error() string {
	return fmt.Sprintf("bigint: subtraction underflow: %s < %s", e.Minuend, e.Subtrahend)
}

// Add returns x + y. Both operands are padded to equal length and digit
// pairs are processed from least to most significant with carry propagation
// in base 16; a residual carry after the most significant pair is appended
// as a new leading element.
func (x BigInt) Add(y BigInt) BigInt {
	pa, pb := pad(x.digits, y.digits)

	result := make([]uint32, 0, len(pa)+1)
	var carry uint32
	for i := len(pa) - 1; i >= 0; i-- {
		sum := pa[i] + pb[i] + carry
		result = append(result, sum%0x10)
		carry = sum / 0x10
	}
	if carry > 0 {
		result = append(result, carry)
	}

	reverse(result)
	return fromWords(result)
}

// Sub returns x - y. Both operands are padded to equal length and digit
// pairs are processed from least to most significant with borrow propagation
// in base 16. If a borrow is still pending after the most significant pair,
// the minuend is numerically smaller than the subtrahend and Sub returns an
// *UnderflowError with no result value.
//
// SubStrict provides the abort-on-underflow variant.
func (x BigInt) Sub(y BigInt) (BigInt, error) {
	pa, pb := pad(x.digits, y.digits)

	result := make([]uint32, 0, len(pa))
	borrow := false
	for i := len(pa) - 1; i >= 0; i-- {
		a := pa[i]
		if borrow {
			if a == 0 {
				a = 0xF
			} else {
				borrow = false
				a--
			}
		}
		if a < pb[i] {
			borrow = true
			result = append(result, 0x10+a-pb[i])
		} else {
			result = append(result, a-pb[i])
		}
	}

	if borrow {
		return Empty(), &UnderflowError{Minuend: x.Hex(), Subtrahend: y.Hex()}
	}

	reverse(result)
	return fromWords(result), nil
}

// SubStrict returns x - y and panics on underflow. It exists for the CLI's
// strict mode; library callers should prefer Sub and handle
// *UnderflowError.
func (x BigInt) SubStrict(y BigInt) BigInt {
	diff, err := x.Sub(y)
	if err != nil {
		panic("attempted to subtract a larger number from a smaller number")
	}
	return diff
}

// Mul returns x * y using schoolbook long multiplication in base 16. Both
// operands are padded to equal length n. For each multiplicand digit, taken
// from least to most significant, every multiplier digit is multiplied with
// carry propagation in base 16 to form a partial product, which is
// left-padded with zero elements to place it at the correct magnitude and
// accumulated into the running total by Add. O(n²) digit multiplications;
// single-digit products never exceed 15×15 = 225, well inside a uint32.
func (x BigInt) Mul(y BigInt) BigInt {
	result := Empty()
	pa, pb := pad(x.digits, y.digits)

	for i := len(pa) - 1; i >= 0; i-- {
		a := pa[i]

		// n - i - 1 zero elements shift the partial product into place.
		partial := make([]uint32, 0, 2*len(pa))
		partial = append(partial, make([]uint32, len(pa)-i-1)...)

		var carry uint32
		for j := len(pb) - 1; j >= 0; j-- {
			product := a*pb[j] + carry
			partial = append(partial, product%0x10)
			carry = product / 0x10
		}
		if carry > 0 {
			partial = append(partial, carry)
		}

		reverse(partial)
		result = result.Add(fromWords(partial))
	}
	return result
}
