//go:generate mockgen -source=keygen.go -destination=mocks/mock_keygen.go -package=mocks

// Package keygen supplies the demo driver's big-integer collaborators: a
// source of random bit-strings and the key-space-size computation. Values
// are carried as GMP integers; the hex-digit engine in internal/bigint is
// only handed their hexadecimal renderings.
package keygen

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/ncw/gmp"
)

// Source produces random keys for the brute-force search.
type Source interface {
	// Key returns a uniformly random value in [0, 2^bits).
	Key(bits int) (*gmp.Int, error)
}

// CryptoSource reads keys from crypto/rand.
type CryptoSource struct{}

// Key returns a uniformly random value in [0, 2^bits).
func (CryptoSource) Key(bits int) (*gmp.Int, error) {
	if bits <= 0 {
		return nil, fmt.Errorf("key bit length must be positive, got %d", bits)
	}

	buf := make([]byte, (bits+7)/8)
	if _, err := rand.Read(buf); err != nil {
		return nil, fmt.Errorf("reading entropy: %w", err)
	}
	// Mask excess high bits so the value stays below 2^bits.
	if rem := bits % 8; rem != 0 {
		buf[0] &= 0xFF >> (8 - rem)
	}

	return new(gmp.Int).SetBytes(buf), nil
}

// KeySpace returns the size of the key space for the given exponent: 2^exp.
func KeySpace(exp uint) *gmp.Int {
	return new(gmp.Int).Lsh(gmp.NewInt(1), exp)
}

// HexKey renders a key as lowercase hexadecimal, left-padded with zeros to
// the full digit width of the given bit length. The fixed width matters:
// the engine's element-wise equality is only meaningful for equal-length
// digit sequences, so every key of one bit length must render to the same
// number of digits.
func HexKey(key *gmp.Int, bits int) string {
	width := (bits + 3) / 4
	s := strings.TrimLeft(hex.EncodeToString(key.Bytes()), "0")
	if pad := width - len(s); pad > 0 {
		s = strings.Repeat("0", pad) + s
	}
	return s
}
