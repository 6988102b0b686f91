// Copyright 2022 Molecula Corp. (DBA FeatureBase).
// SPDX-License-Identifier: Apache-2.0
package bitmap

import (
	"sort"

	"github.com/pkg/errors"
)

// Sparse is a fixed-capacity bit set encoded as an ordered list of disjoint,
// non-adjacent runs of consecutive set bits. Get and Set cost grows with
// the number of runs, and the boolean operators are merge walks over the
// two run lists that never materialize individual bits. It is the
// representation of choice when the set bits are rare or cluster into few
// contiguous ranges.
//
// The run list invariant: runs are pairwise disjoint, never adjacent (two
// runs that could merge into one are always merged), ordered by ascending
// start, and never extend past the capacity.
//
// Sparse is not safe for concurrent use; callers sharing an instance must
// synchronize externally.
type Sparse struct {
	size int
	runs []run
}

var _ Bitmap = (*Sparse)(nil)

// NewSparse returns an empty sparse bitmap with the given capacity.
func NewSparse(size int) *Sparse {
	return &Sparse{size: size}
}

// ParseSparse parses a bit-string into a sparse bitmap. The rightmost
// character of s maps to position 0 and the capacity equals len(s). Each
// maximal group of consecutive '1' characters becomes one run, so the run
// list invariant holds by construction.
func ParseSparse(s string) (*Sparse, error) {
	b := NewSparse(len(s))
	start := -1 // start of the run being scanned, -1 outside a run
	for position := 0; position < len(s); position++ {
		switch s[len(s)-1-position] {
		case '1':
			if start < 0 {
				start = position
			}
		case '0':
			if start >= 0 {
				b.runs = append(b.runs, run{start: start, length: position - start})
				start = -1
			}
		default:
			offset := len(s) - 1 - position
			return nil, errors.Wrapf(ErrInvalidCharacter, "parsing %q at offset %d", s[offset], offset)
		}
	}
	if start >= 0 {
		b.runs = append(b.runs, run{start: start, length: len(s) - start})
	}
	return b, nil
}

// Size returns the declared capacity in bits.
func (b *Sparse) Size() int { return b.size }

// RunCount returns the number of runs backing b.
func (b *Sparse) RunCount() int { return len(b.runs) }

// Count returns the number of set bits.
func (b *Sparse) Count() int {
	n := 0
	for _, r := range b.runs {
		n += r.length
	}
	return n
}

// Get reports whether the bit at position is set. Positions past the
// capacity read as zero; Get never fails.
func (b *Sparse) Get(position int) bool {
	if position > b.size {
		return false
	}
	for _, r := range b.runs {
		if r.start <= position && position < r.end() {
			return true
		}
	}
	return false
}

// Set sets or clears the bit at position, in place. Setting a bit grows,
// merges or creates runs as needed; clearing a bit shrinks or splits the
// covering run. Writes that do not change the bit leave the run list
// untouched.
func (b *Sparse) Set(position int, value bool) error {
	if position >= b.size {
		return errors.Wrapf(ErrPositionOutOfBounds, "position %d, size %d", position, b.size)
	}
	if value {
		b.setOne(position)
	} else {
		b.setZero(position)
	}
	return nil
}

// setOne inserts position into the run list. A run ending at position grows
// to the right, a run starting at position+1 grows to the left, and when
// the position bridges the one-bit gap between two runs they are joined.
// Otherwise a new length-1 run is inserted in start order.
func (b *Sparse) setOne(position int) {
	// Index of the first run starting past position. Only the two runs
	// around that point can cover or touch position.
	i := sort.Search(len(b.runs), func(i int) bool { return b.runs[i].start > position })
	left, right := i-1, i

	if left >= 0 && position < b.runs[left].end() {
		return // already set
	}
	growsLeft := left >= 0 && b.runs[left].end() == position
	growsRight := right < len(b.runs) && b.runs[right].start == position+1
	switch {
	case growsLeft && growsRight:
		b.runs[left].length += 1 + b.runs[right].length
		b.runs = append(b.runs[:right], b.runs[right+1:]...)
	case growsLeft:
		b.runs[left].length++
	case growsRight:
		b.runs[right].start--
		b.runs[right].length++
	default:
		b.runs = append(b.runs, run{})
		copy(b.runs[i+1:], b.runs[i:])
		b.runs[i] = run{start: position, length: 1}
	}
}

// setZero removes position from the run covering it, shrinking the run from
// either boundary or splitting it in two for an interior clear.
func (b *Sparse) setZero(position int) {
	i := sort.Search(len(b.runs), func(i int) bool { return b.runs[i].start > position }) - 1
	if i < 0 || position >= b.runs[i].end() {
		return // already clear
	}
	r := b.runs[i]
	switch {
	case r.length == 1:
		b.runs = append(b.runs[:i], b.runs[i+1:]...)
	case position == r.start:
		b.runs[i].start++
		b.runs[i].length--
	case position == r.end()-1:
		b.runs[i].length--
	default:
		// The left part keeps the prefix before position, the leftover
		// after position becomes a new run right after it.
		b.runs[i].length = position - r.start
		leftover := run{start: position + 1, length: r.end() - position - 1}
		b.runs = append(b.runs, run{})
		copy(b.runs[i+2:], b.runs[i+1:])
		b.runs[i+1] = leftover
	}
}

// appendRun appends r to runs, merging it into the trailing run when the
// two overlap or touch. Callers must append in non-decreasing start order;
// the merge check only ever looks at the tail.
func appendRun(runs []run, r run) []run {
	if r.length <= 0 {
		return runs
	}
	if n := len(runs); n > 0 {
		if merged, ok := runs[n-1].union(r); ok {
			runs[n-1] = merged
			return runs
		}
	}
	return append(runs, r)
}

// clip truncates the run list at the capacity. Binary operator results take
// the smaller operand's capacity, so runs contributed by the larger operand
// may reach past it.
func (b *Sparse) clip() {
	for i, r := range b.runs {
		if r.end() <= b.size {
			continue
		}
		if r.start >= b.size {
			b.runs = b.runs[:i]
		} else {
			b.runs[i].length = b.size - r.start
			b.runs = b.runs[:i+1]
		}
		return
	}
}

// Intersect returns the bitwise AND of b and other. The result capacity is
// the smaller of the two operand capacities. Both run lists are walked once
// with two cursors: each overlapping pair contributes its intersection, and
// the cursor whose run ends first advances (ties advance the right-hand
// cursor).
func (b *Sparse) Intersect(other *Sparse) *Sparse {
	out := NewSparse(min(b.size, other.size))
	for i, j := 0, 0; i < len(b.runs) && j < len(other.runs); {
		va, vb := b.runs[i], other.runs[j]
		if overlap, ok := va.intersect(vb); ok {
			out.runs = appendRun(out.runs, overlap)
		}
		if va.end() < vb.end() {
			i++
		} else {
			j++
		}
	}
	return out
}

// Union returns the bitwise OR of b and other. The result capacity is the
// smaller of the two operand capacities. The walk always feeds the run with
// the smaller start through appendRun, so appends arrive in non-decreasing
// start order and the tail-only merge in appendRun is sufficient.
func (b *Sparse) Union(other *Sparse) *Sparse {
	na, nb := len(b.runs), len(other.runs)
	out := NewSparse(min(b.size, other.size))
	out.runs = make([]run, 0, na+nb)
	for i, j := 0, 0; i < na || j < nb; {
		if i < na && (j >= nb || b.runs[i].start < other.runs[j].start) {
			out.runs = appendRun(out.runs, b.runs[i])
			i++
		} else {
			out.runs = appendRun(out.runs, other.runs[j])
			j++
		}
	}
	out.clip()
	return out
}

// Xor returns the symmetric difference of b and other. The result capacity
// is the smaller of the two operand capacities. The walk carries at most
// one pending run per side: before every overlap the prefix covered by
// exactly one side is emitted, the stripe shared by both is discarded, and
// the run reaching past the shared end is trimmed and carried into the next
// step.
func (b *Sparse) Xor(other *Sparse) *Sparse {
	out := NewSparse(min(b.size, other.size))
	var (
		va, vb       run
		haveA, haveB bool
	)
	for i, j := 0, 0; ; {
		if !haveA && i < len(b.runs) {
			va, haveA = b.runs[i], true
			i++
		}
		if !haveB && j < len(other.runs) {
			vb, haveB = other.runs[j], true
			j++
		}
		switch {
		case !haveA && !haveB:
			out.clip()
			return out
		case !haveB:
			out.runs = appendRun(out.runs, va)
			haveA = false
		case !haveA:
			out.runs = appendRun(out.runs, vb)
			haveB = false
		case va.end() <= vb.start:
			out.runs = appendRun(out.runs, va)
			haveA = false
		case vb.end() <= va.start:
			out.runs = appendRun(out.runs, vb)
			haveB = false
		default:
			// The runs overlap. Whatever lies before the later start is
			// covered by exactly one side.
			if va.start < vb.start {
				out.runs = appendRun(out.runs, run{start: va.start, length: vb.start - va.start})
			} else if vb.start < va.start {
				out.runs = appendRun(out.runs, run{start: vb.start, length: va.start - vb.start})
			}
			shared := min(va.end(), vb.end())
			if va.end() > shared {
				va = run{start: shared, length: va.end() - shared}
			} else {
				haveA = false
			}
			if vb.end() > shared {
				vb = run{start: shared, length: vb.end() - shared}
			} else {
				haveB = false
			}
		}
	}
}

// Flip returns the complement of b within the gaps between its runs,
// preserving the capacity. No run is emitted for the region between the
// last run's end and the capacity: the complement of a bitmap whose highest
// set bit falls short of the capacity is truncated there. Flipping a bitmap
// whose last run reaches the capacity yields the exact complement.
func (b *Sparse) Flip() *Sparse {
	out := NewSparse(b.size)
	cursor := 0
	for _, r := range b.runs {
		if cursor < r.start {
			out.runs = append(out.runs, run{start: cursor, length: r.start - cursor})
		}
		cursor = r.end()
	}
	return out
}

// String renders b as a bit-string of exactly Size() characters, position 0
// rightmost.
func (b *Sparse) String() string {
	buf := make([]byte, b.size)
	for i := range buf {
		buf[i] = '0'
	}
	for _, r := range b.runs {
		for position := r.start; position < r.end(); position++ {
			buf[b.size-1-position] = '1'
		}
	}
	return string(buf)
}
