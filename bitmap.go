// Copyright 2022 Molecula Corp. (DBA FeatureBase).
// SPDX-License-Identifier: Apache-2.0

// Package bitmap provides two interchangeable fixed-capacity bit set
// representations: Dense packs one bit per position into 64-bit words,
// Sparse stores runs of consecutive set bits. Both support the same boolean
// set algebra (AND, OR, XOR, NOT) and the same textual form, a string of
// '0' and '1' characters whose rightmost character is position 0.
package bitmap

import (
	"github.com/pkg/errors"
)

// wordBits is the number of bit positions packed into one dense word.
const wordBits = 64

// Bitmap is the capability surface shared by the two representations.
// Callers that do not care which encoding backs a bit set should depend on
// this interface rather than on Dense or Sparse directly.
type Bitmap interface {
	// Size returns the declared capacity in bits, fixed at construction.
	Size() int

	// Get reports whether the bit at position is set.
	Get(position int) bool

	// Set sets or clears the bit at position, in place. It returns
	// ErrPositionOutOfBounds when position is not less than the capacity.
	Set(position int, value bool) error

	// String renders the bit set as a string of exactly Size() '0' and '1'
	// characters, position 0 rightmost.
	String() string
}

var (
	// ErrPositionOutOfBounds is returned by Set when the position is not
	// less than the declared capacity.
	ErrPositionOutOfBounds = errors.New("position out of bounds")

	// ErrInvalidCharacter is returned when parsing a bitmap string that
	// contains a character other than '0' or '1'.
	ErrInvalidCharacter = errors.New("invalid character")
)

// wordCount returns the number of words needed to hold size bits.
func wordCount(size int) int {
	return (size + wordBits - 1) / wordBits
}

// wordIndex splits a bit position into a word index and the bit offset
// inside that word.
func wordIndex(position int) (word, bit int) {
	return position / wordBits, position % wordBits
}
