package zexpr

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvery_InvalidPeriod(t *testing.T) {
	for _, p := range []Duration{0, -1, -60} {
		_, err := EveryFrom(p, FromTime(time.Now()))
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrParameter)
	}
}

func TestEvery_Spacing(t *testing.T) {
	anchor := NewInstant(2024, 1, 1, 0, 0, 0, time.UTC)
	node, err := EveryFrom(Minutes(7), anchor)
	require.NoError(t, err)
	e := node.(*everyLeaf)

	cur := anchor
	var prev Instant
	for i := 0; i < 20; i++ {
		next, err := e.next(cur)
		require.NoError(t, err)

		if i > 0 {
			assert.Equal(t, 7*time.Minute, next.Sub(prev), "consecutive firings must be exactly 7 minutes apart")
		}
		prev = next
		cur = next.Add(time.Second) // force strictly-greater search next iteration
	}
}

func TestEvery_BeforeAnchorReturnsAnchor(t *testing.T) {
	anchor := NewInstant(2024, 6, 15, 12, 0, 0, time.UTC)
	node, _ := EveryFrom(Minutes(5), anchor)
	e := node.(*everyLeaf)

	before := anchor.Add(-time.Hour)
	next, err := e.next(before)
	require.NoError(t, err)
	assert.Equal(t, anchor, next)
}

func TestEvery_ExactGridPoint(t *testing.T) {
	anchor := NewInstant(2024, 1, 1, 0, 0, 0, time.UTC)
	node, _ := EveryFrom(Seconds(30), anchor)
	e := node.(*everyLeaf)

	grid := anchor.Add(5 * 30 * time.Second)
	next, err := e.next(grid)
	require.NoError(t, err)
	assert.Equal(t, grid, next, "a grid point must return itself, not skip ahead")
}
