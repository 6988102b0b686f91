// Copyright 2022 Molecula Corp. (DBA FeatureBase).
// SPDX-License-Identifier: Apache-2.0
package bitmap

// run is a contiguous range [start, start+length) of set positions inside a
// Sparse bitmap. Runs are plain values and never escape the package.
type run struct {
	start  int
	length int
}

// end returns the position immediately after the last set bit of r.
func (r run) end() int { return r.start + r.length }

// contains reports whether position falls inside r or immediately after it.
// The end boundary is included on purpose: a position touching the end of a
// run counts as a collision, which is what lets adjacent runs merge when
// the gap between them is written.
func (r run) contains(position int) bool {
	return r.start <= position && position <= r.end()
}

// matches reports whether r and other overlap or touch.
func (r run) matches(other run) bool {
	return r.contains(other.start) || other.contains(r.start)
}

// intersect returns the overlap of r and other. ok is false when the two
// runs share no position; touching runs overlap on zero bits and report
// false as well.
func (r run) intersect(other run) (_ run, ok bool) {
	if !r.matches(other) {
		return run{}, false
	}
	start := max(r.start, other.start)
	end := min(r.end(), other.end())
	if end <= start {
		return run{}, false
	}
	return run{start: start, length: end - start}, true
}

// union returns the single run enclosing r and other. ok is false when the
// runs neither overlap nor touch, since no single run covers two separated
// ranges.
func (r run) union(other run) (_ run, ok bool) {
	if !r.matches(other) {
		return run{}, false
	}
	start := min(r.start, other.start)
	end := max(r.end(), other.end())
	return run{start: start, length: end - start}, true
}
