package rrdb

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocateAlignsToBucketStart(t *testing.T) {
	a := Archive{Offset: 100, SecondsPerPoint: 10, Points: 6, Retention: 60}
	interval, offset := locate(a, 1007)
	assert.Equal(t, uint64(1000), interval)
	assert.Equal(t, int64(100+4*pointSize), offset)
}

func TestLocateWrapsAroundRing(t *testing.T) {
	a := Archive{Offset: 100, SecondsPerPoint: 10, Points: 6, Retention: 60}
	// interval 1060 -> slot (1060 % 60) / 10 = 4, same slot as interval 1000
	// one retention earlier.
	interval, offset := locate(a, 1065)
	assert.Equal(t, uint64(1060), interval)
	assert.Equal(t, int64(100+4*pointSize), offset)
}

func TestLocateAdvancesSlotWithinRing(t *testing.T) {
	a := Archive{Offset: 100, SecondsPerPoint: 10, Points: 6, Retention: 60}
	// interval 1040 -> slot (1040 % 60) / 10 = 2.
	interval, offset := locate(a, 1045)
	assert.Equal(t, uint64(1040), interval)
	assert.Equal(t, int64(100+2*pointSize), offset)
}
