package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOffsetIterOrder(t *testing.T) {
	it := NewOffsetIter(2)

	expected := [][2]int64{
		{0, 0},
		{1, 0}, {1, 1},
		{2, 0}, {2, 1}, {2, 2},
	}

	for _, exp := range expected {
		committer, author, ok := it.Next()
		require.True(t, ok)
		assert.Equal(t, exp[0], committer)
		assert.Equal(t, exp[1], author)
	}

	_, _, ok := it.Next()
	assert.False(t, ok)
}

func TestOffsetIterTriangularInvariant(t *testing.T) {
	const bound = 50

	it := NewOffsetIter(bound)
	var n uint64
	prevCommitter, prevAuthor := int64(-1), int64(-1)

	for {
		committer, author, ok := it.Next()
		if !ok {
			break
		}
		n++

		assert.GreaterOrEqual(t, author, int64(0))
		assert.LessOrEqual(t, author, committer)
		assert.LessOrEqual(t, committer, int64(bound))

		// Deterministic ascending order: committer never decreases, and
		// within one committer value the author offset increases by one.
		assert.GreaterOrEqual(t, committer, prevCommitter)
		if committer == prevCommitter {
			assert.Equal(t, prevAuthor+1, author)
		} else {
			assert.Equal(t, int64(0), author)
		}
		prevCommitter, prevAuthor = committer, author
	}

	assert.Equal(t, Count(bound), n)
}

func TestCount(t *testing.T) {
	tests := []struct {
		maxMinutes int
		expected   uint64
	}{
		{0, 1},
		{1, 1891},
		{10, 180901},
		{60, 6485401},
	}

	for _, tt := range tests {
		bound := int64(tt.maxMinutes) * 60
		assert.Equal(t, tt.expected, Count(bound), "max_minutes=%d", tt.maxMinutes)
		assert.Equal(t, tt.expected, Possibilities(tt.maxMinutes))
	}
}

func TestCountMatchesFormula(t *testing.T) {
	for bound := int64(0); bound <= 20; bound++ {
		assert.Equal(t, uint64((bound+1)*(bound+2)/2), Count(bound))
	}
}

func TestNegativeBoundClampsToZero(t *testing.T) {
	it := NewOffsetIter(-5)

	committer, author, ok := it.Next()
	require.True(t, ok)
	assert.Zero(t, committer)
	assert.Zero(t, author)

	_, _, ok = it.Next()
	assert.False(t, ok)

	assert.Equal(t, uint64(1), Count(-5))
}
