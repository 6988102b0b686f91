// Copyright 2022 Molecula Corp. (DBA FeatureBase).
// SPDX-License-Identifier: Apache-2.0
package bitmap

import (
	"math/bits"

	"github.com/pkg/errors"
)

// Dense is a fixed-capacity bit set packed into 64-bit words. Get and Set
// are constant time and every boolean operator is a single word-wise pass
// over the packed data. It is the representation of choice when the set
// bits show no strong skew toward zero or one.
//
// Dense is not safe for concurrent use; callers sharing an instance must
// synchronize externally.
type Dense struct {
	size  int
	words []uint64
}

var _ Bitmap = (*Dense)(nil)

// NewDense returns an all-zero dense bitmap with the given capacity.
func NewDense(size int) *Dense {
	return &Dense{size: size, words: make([]uint64, wordCount(size))}
}

// ParseDense parses a bit-string into a dense bitmap. The rightmost
// character of s maps to position 0 and the capacity equals len(s). Any
// character other than '0' or '1' yields ErrInvalidCharacter.
func ParseDense(s string) (*Dense, error) {
	b := NewDense(len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '1':
			word, bit := wordIndex(len(s) - 1 - i)
			b.words[word] |= 1 << bit
		case '0':
		default:
			return nil, errors.Wrapf(ErrInvalidCharacter, "parsing %q at offset %d", s[i], i)
		}
	}
	return b, nil
}

// Size returns the declared capacity in bits.
func (b *Dense) Size() int { return b.size }

// Get reports whether the bit at position is set. Get does not range-check
// against the capacity: padding positions inside the last allocated word
// read as zero, and probing past the allocated words panics.
func (b *Dense) Get(position int) bool {
	word, bit := wordIndex(position)
	return b.words[word]&(1<<bit) != 0
}

// Set sets or clears the bit at position, in place.
func (b *Dense) Set(position int, value bool) error {
	if position >= b.size {
		return errors.Wrapf(ErrPositionOutOfBounds, "position %d, size %d", position, b.size)
	}
	word, bit := wordIndex(position)
	if value {
		b.words[word] |= 1 << bit
	} else {
		b.words[word] &^= 1 << bit
	}
	return nil
}

// Count returns the number of set bits within the capacity. Padding bits in
// the last word are excluded, so Count stays correct after Flip.
func (b *Dense) Count() int {
	if len(b.words) == 0 {
		return 0
	}
	n := 0
	last := len(b.words) - 1
	for _, w := range b.words[:last] {
		n += bits.OnesCount64(w)
	}
	tail := b.words[last]
	if pad := len(b.words)*wordBits - b.size; pad > 0 {
		tail &= ^uint64(0) >> pad
	}
	return n + bits.OnesCount64(tail)
}

// WordCount returns the number of 64-bit words backing b.
func (b *Dense) WordCount() int { return len(b.words) }

// Intersect returns the bitwise AND of b and other. The result capacity is
// the smaller of the two operand capacities; both operands must be backed
// by at least enough words to cover it.
func (b *Dense) Intersect(other *Dense) *Dense {
	out := NewDense(min(b.size, other.size))
	for i := range out.words {
		out.words[i] = b.words[i] & other.words[i]
	}
	return out
}

// Union returns the bitwise OR of b and other. The result capacity is the
// smaller of the two operand capacities.
func (b *Dense) Union(other *Dense) *Dense {
	out := NewDense(min(b.size, other.size))
	for i := range out.words {
		out.words[i] = b.words[i] | other.words[i]
	}
	return out
}

// Xor returns the symmetric difference of b and other. The result capacity
// is the smaller of the two operand capacities.
func (b *Dense) Xor(other *Dense) *Dense {
	out := NewDense(min(b.size, other.size))
	for i := range out.words {
		out.words[i] = b.words[i] ^ other.words[i]
	}
	return out
}

// Flip returns the complement of b, preserving the capacity. Every word is
// inverted, including the unused padding bits of the last word; reads
// through Get within the capacity are unaffected by the flipped padding.
func (b *Dense) Flip() *Dense {
	out := &Dense{size: b.size, words: make([]uint64, len(b.words))}
	for i, w := range b.words {
		out.words[i] = ^w
	}
	return out
}

// String renders b as a bit-string of exactly Size() characters, position 0
// rightmost.
func (b *Dense) String() string {
	buf := make([]byte, b.size)
	for position := 0; position < b.size; position++ {
		if b.Get(position) {
			buf[b.size-1-position] = '1'
		} else {
			buf[b.size-1-position] = '0'
		}
	}
	return string(buf)
}
