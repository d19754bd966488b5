package bigint

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// genHex generates non-empty lowercase hexadecimal strings.
func genHex() gopter.Gen {
	digits := []rune("0123456789abcdef")
	return gen.SliceOfN(16, gen.RuneRange('0', 'f')).Map(func(rs []rune) string {
		out := make([]rune, len(rs))
		for i, r := range rs {
			out[i] = digits[int(r)%len(digits)]
		}
		return string(out)
	})
}

// TestRoundTrip_PropertyBased verifies Hex(New(s)) == s for strings of valid
// lowercase hex digits: no silent character loss, no case change.
func TestRoundTrip_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("hex round trip is lossless", prop.ForAll(
		func(s string) bool {
			return New(s).Hex() == s
		},
		genHex(),
	))

	properties.TestingRun(t)
}

// TestCommutativity_PropertyBased verifies the commutative laws for the
// padded element-wise binary operations.
func TestCommutativity_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	ops := map[string]func(a, b BigInt) BigInt{
		"add": func(a, b BigInt) BigInt { return a.Add(b) },
		"xor": func(a, b BigInt) BigInt { return a.Xor(b) },
		"and": func(a, b BigInt) BigInt { return a.And(b) },
		"or":  func(a, b BigInt) BigInt { return a.Or(b) },
	}

	for name, op := range ops {
		properties.Property(name+" is commutative", prop.ForAll(
			func(sa, sb string) bool {
				a, b := New(sa), New(sb)
				return op(a, b).Equal(op(b, a))
			},
			genHex(), genHex(),
		))
	}

	properties.TestingRun(t)
}

// TestAddSubInverse_PropertyBased verifies sub(add(a, b), b) == a, modulo
// the leading zeros the padded operations introduce.
func TestAddSubInverse_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("subtraction inverts addition", prop.ForAll(
		func(sa, sb string) bool {
			a, b := New(sa), New(sb)
			diff, err := a.Add(b).Sub(b)
			if err != nil {
				// a + b >= b always holds, so underflow is a failure.
				return false
			}
			// The round trip can carry one extra leading zero from the
			// addition's padded length; compare after re-padding.
			pa, pd := pad(a.digits, diff.digits)
			return fromWords(pa).Equal(fromWords(pd))
		},
		genHex(), genHex(),
	))

	properties.TestingRun(t)
}

// TestDoubleComplement_PropertyBased verifies inv(inv(a)) == a at the word
// level. The intermediate value violates the digit invariant, so the
// comparison must use Words, not Hex.
func TestDoubleComplement_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("double complement is identity on words", prop.ForAll(
		func(s string) bool {
			a := New(s)
			return a.Inv().Inv().Equal(a)
		},
		genHex(),
	))

	properties.TestingRun(t)
}

// TestShiftRoundTrip_PropertyBased verifies shift_r(shift_l(a, k), k) == a
// for shift amounts small enough that no bits are lost off the top of the
// most significant word (shift_l then does not grow the sequence for the
// digit-invariant inputs generated here, which occupy only 4 bits per word).
func TestShiftRoundTrip_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("right shift inverts left shift", prop.ForAll(
		func(s string, k uint8) bool {
			a := New(s)
			bits := uint(k % 28) // keep all 4 payload bits inside the word
			shifted := a.ShiftL(bits)
			if shifted.Len() != a.Len() {
				return true // grew: precondition not met, property vacuous
			}
			return shifted.ShiftR(bits).Equal(a)
		},
		genHex(), gen.UInt8(),
	))

	properties.TestingRun(t)
}

// TestMulMatchesRepeatedAddition_PropertyBased verifies the schoolbook
// product against iterated addition for single-digit multiplicands.
func TestMulMatchesRepeatedAddition_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50
	properties := gopter.NewProperties(parameters)

	properties.Property("mul agrees with repeated addition", prop.ForAll(
		func(n uint8, sb string) bool {
			count := uint32(n % 16)
			a := fromWords([]uint32{count})
			b := New(sb)

			sum := Empty()
			for i := uint32(0); i < count; i++ {
				sum = sum.Add(b)
			}

			product := a.Mul(b)
			ps, pp := pad(sum.digits, product.digits)
			return fromWords(ps).Equal(fromWords(pp))
		},
		gen.UInt8(), genHex(),
	))

	properties.TestingRun(t)
}
