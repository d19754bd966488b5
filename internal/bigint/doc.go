// Package bigint implements an arbitrary-precision unsigned integer on a
// big-endian sequence of hexadecimal digit values.
//
// Two operation families share the same underlying sequence and must not be
// confused:
//
//   - The digit family (Add, Sub, Mul, ModBy) treats every element as a
//     single hexadecimal digit in [0, 15] and propagates carries and borrows
//     in base 16.
//   - The word family (Xor, And, Or, Inv, ShiftL, ShiftR) treats every
//     element as a full 32-bit word. Inv in particular complements all 32
//     bits of each element, producing values far outside [0, 15].
//
// The split is deliberate and observable: a value that has passed through
// the word family may no longer satisfy the digit invariant, and Hex still
// renders such elements faithfully (one %x run per element, possibly more
// than one character). Callers that need digit semantics after word
// operations must rebuild the value from its hex rendering.
package bigint
