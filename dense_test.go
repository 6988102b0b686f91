// Copyright 2022 Molecula Corp. (DBA FeatureBase).
// SPDX-License-Identifier: Apache-2.0
package bitmap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aleics/bitmap"
)

func TestDenseParseGet(t *testing.T) {
	b, err := bitmap.ParseDense("11001")
	require.NoError(t, err)

	require.Equal(t, 5, b.Size())
	assert.True(t, b.Get(0))
	assert.False(t, b.Get(1))
	assert.False(t, b.Get(2))
	assert.True(t, b.Get(3))
	assert.True(t, b.Get(4))

	// Padding positions inside the allocated word read as zero.
	assert.False(t, b.Get(5))
	assert.False(t, b.Get(63))
}

func TestDenseParseError(t *testing.T) {
	_, err := bitmap.ParseDense("10201")
	require.ErrorIs(t, err, bitmap.ErrInvalidCharacter)
}

func TestDenseSetGet(t *testing.T) {
	b, err := bitmap.ParseDense("00111")
	require.NoError(t, err)

	require.NoError(t, b.Set(4, true))
	require.Equal(t, "10111", b.String())
	require.NoError(t, b.Set(4, false))
	require.Equal(t, "00111", b.String())

	// Untouched positions are unaffected by either write.
	for position, exp := range map[int]bool{0: true, 1: true, 2: true, 3: false} {
		assert.Equal(t, exp, b.Get(position), "position %d", position)
	}
}

func TestDenseSetOutOfBounds(t *testing.T) {
	b := bitmap.NewDense(5)
	require.ErrorIs(t, b.Set(5, true), bitmap.ErrPositionOutOfBounds)
	require.ErrorIs(t, b.Set(100, false), bitmap.ErrPositionOutOfBounds)
	require.NoError(t, b.Set(4, true))
}

func TestDenseOperators(t *testing.T) {
	tests := []struct {
		op   string
		a, b string
		exp  string
	}{
		{op: "and", a: "00011", b: "00010", exp: "00010"},
		{op: "or", a: "00001", b: "00010", exp: "00011"},
		{op: "xor", a: "11111", b: "01101", exp: "10010"},
		{op: "xor", a: "00011", b: "00010", exp: "00001"},
	}
	for _, test := range tests {
		a, err := bitmap.ParseDense(test.a)
		require.NoError(t, err)
		b, err := bitmap.ParseDense(test.b)
		require.NoError(t, err)

		var got *bitmap.Dense
		switch test.op {
		case "and":
			got = a.Intersect(b)
		case "or":
			got = a.Union(b)
		case "xor":
			got = a.Xor(b)
		}
		assert.Equal(t, test.exp, got.String(), "%s(%s, %s)", test.op, test.a, test.b)
	}
}

func TestDenseOperatorSizes(t *testing.T) {
	a := bitmap.NewDense(70)
	b := bitmap.NewDense(5)
	require.NoError(t, a.Set(69, true))
	require.NoError(t, a.Set(3, true))
	require.NoError(t, b.Set(3, true))

	assert.Equal(t, 5, a.Intersect(b).Size())
	assert.Equal(t, 5, b.Union(a).Size())
	assert.Equal(t, 5, a.Xor(b).Size())
	assert.Equal(t, 70, a.Flip().Size())

	assert.True(t, a.Intersect(b).Get(3))
	assert.False(t, a.Xor(b).Get(3))
}

func TestDenseFlip(t *testing.T) {
	b, err := bitmap.ParseDense("10101")
	require.NoError(t, err)

	flipped := b.Flip()
	exp, err := bitmap.ParseDense("01010")
	require.NoError(t, err)
	for position := 0; position < 5; position++ {
		assert.Equal(t, exp.Get(position), flipped.Get(position), "position %d", position)
	}
	require.Equal(t, "01010", flipped.String())

	// Double flip restores the original within the capacity.
	require.Equal(t, "10101", flipped.Flip().String())
}

func TestDenseAlgebraLaws(t *testing.T) {
	a, err := bitmap.ParseDense("110010111")
	require.NoError(t, err)
	b, err := bitmap.ParseDense("010110001")
	require.NoError(t, err)

	// Commutativity.
	assert.Equal(t, a.Intersect(b).String(), b.Intersect(a).String())
	assert.Equal(t, a.Union(b).String(), b.Union(a).String())
	assert.Equal(t, a.Xor(b).String(), b.Xor(a).String())

	// Idempotence and self-inverse.
	assert.Equal(t, a.String(), a.Intersect(a).String())
	assert.Equal(t, a.String(), a.Union(a).String())
	assert.Equal(t, "000000000", a.Xor(a).String())

	// De Morgan.
	assert.Equal(t, a.Intersect(b).Flip().String(), a.Flip().Union(b.Flip()).String())
	assert.Equal(t, a.Union(b).Flip().String(), a.Flip().Intersect(b.Flip()).String())
}

func TestDenseCount(t *testing.T) {
	b, err := bitmap.ParseDense("110010111")
	require.NoError(t, err)
	assert.Equal(t, 6, b.Count())
	assert.Equal(t, 1, b.WordCount())

	// Count ignores the flipped padding in the last word.
	assert.Equal(t, 3, b.Flip().Count())

	assert.Equal(t, 0, bitmap.NewDense(0).Count())
	assert.Equal(t, 0, bitmap.NewDense(130).Count())
	assert.Equal(t, 3, bitmap.NewDense(130).WordCount())
}
