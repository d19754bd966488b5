package bigint

// Reducer computes a modular reduction. The interface exists so the naive
// reduction below can be swapped for a long-division or
// binary-search reduction without touching call sites; NaiveReducer is the
// default and currently the only implementation.
type Reducer interface {
	// Reduce returns a mod m. It reports an *UnderflowError when the
	// reduction's initial subtraction underflows (a numerically smaller
	// than m).
	Reduce(a, m BigInt) (BigInt, error)
}

// NaiveReducer reduces by repeated subtraction: one initial a - m, then a
// loop that subtracts m while the running value compares >= m and adds m
// back while it compares below zero. The iteration count is proportional to
// the quotient a / m, which makes it impractical for dividends many
// multiples larger than the modulus. The behavior is part of the package
// contract; do not use it where a real Euclidean reduction is needed.
//
// The loop guard uses the unpadded lexicographic Cmp, underflow caveat and
// all: when the comparison misreports "greater or equal" for unequal-length
// operands the inner subtraction can underflow, and the error is propagated
// rather than masked.
type NaiveReducer struct{}

// Reduce returns a mod m by repeated subtraction.
func (NaiveReducer) Reduce(a, m BigInt) (BigInt, error) {
	result, err := a.Sub(m)
	if err != nil {
		return Empty(), err
	}

	zero := Empty()
	for result.Cmp(m) >= 0 || result.Cmp(zero) < 0 {
		if result.Cmp(m) >= 0 {
			result, err = result.Sub(m)
			if err != nil {
				return Empty(), err
			}
		} else {
			result = result.Add(m)
		}
	}
	return result, nil
}

// defaultReducer backs ModBy.
var defaultReducer Reducer = NaiveReducer{}

// ModBy returns x mod m using the default naive repeated-subtraction
// reduction. See NaiveReducer for the complexity and comparison caveats, and
// Reducer for substituting a faster reduction.
func (x BigInt) ModBy(m BigInt) (BigInt, error) {
	return defaultReducer.Reduce(x, m)
}
