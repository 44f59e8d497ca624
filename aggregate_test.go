package rrdb

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func pts(vals ...float64) []point {
	out := make([]point, len(vals))
	for i, v := range vals {
		if v == 0 {
			continue // interval 0, value 0: an empty slot
		}
		out[i] = point{interval: uint64(i + 1), value: v}
	}
	return out
}

func TestAggregateAverageTreatsEmptySlotsAsZero(t *testing.T) {
	// 100 spread over 6 slots, only one occupied: average is 100/6, not 100/1.
	points := []point{
		{interval: 1, value: 100},
		{}, {}, {}, {}, {},
	}
	got := aggregate(aggAverage, points)
	assert.InDelta(t, 100.0/6.0, got, 1e-9)
}

func TestAggregateSum(t *testing.T) {
	points := pts(1, 2, 3)
	assert.Equal(t, 6.0, aggregate(aggSum, points))
}

func TestAggregateLastPicksGreatestInterval(t *testing.T) {
	points := []point{
		{interval: 30, value: 3},
		{interval: 10, value: 1},
		{interval: 20, value: 2},
	}
	assert.Equal(t, 3.0, aggregate(aggLast, points))
}

func TestAggregateLastTiesGoToFirstIndex(t *testing.T) {
	points := []point{
		{interval: 10, value: 111},
		{interval: 10, value: 222},
	}
	assert.Equal(t, 111.0, aggregate(aggLast, points))
}

func TestAggregateMaxMin(t *testing.T) {
	points := pts(3, 1, 4, 1, 5)
	assert.Equal(t, 5.0, aggregate(aggMax, points))
	assert.Equal(t, 1.0, aggregate(aggMin, points))
}

func TestAggregateEmptySliceIsZero(t *testing.T) {
	assert.Equal(t, 0.0, aggregate(aggAverage, nil))
	assert.Equal(t, 0.0, aggregate(aggSum, nil))
	assert.Equal(t, 0.0, aggregate(aggLast, nil))
	assert.Equal(t, 0.0, aggregate(aggMax, nil))
	assert.Equal(t, 0.0, aggregate(aggMin, nil))
}

func TestNonEmptyCount(t *testing.T) {
	points := []point{{interval: 1, value: 1}, {}, {interval: 3, value: 1}}
	assert.Equal(t, 2, nonEmptyCount(points))
}

func TestMeetsXFilesFactor(t *testing.T) {
	full := []point{{interval: 1, value: 1}, {interval: 2, value: 1}, {interval: 3, value: 1}, {interval: 4, value: 1}}
	half := []point{{interval: 1, value: 1}, {interval: 2, value: 1}, {}, {}}
	sparse := []point{{interval: 1, value: 1}, {}, {}, {}}

	assert.True(t, meetsXFilesFactor(sparse, 0))
	assert.True(t, meetsXFilesFactor(full, 100))
	assert.False(t, meetsXFilesFactor(sparse, 100))
	assert.True(t, meetsXFilesFactor(half, 50))
	assert.False(t, meetsXFilesFactor(sparse, 50))
}
