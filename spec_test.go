package rrdb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseArchiveSpec(t *testing.T) {
	cases := []struct {
		token string
		want  ArchiveSpec
	}{
		{"10s:60", ArchiveSpec{SecondsPerPoint: 10, Points: 60}},
		{"10s:60s", ArchiveSpec{SecondsPerPoint: 10, Points: 6}},
		{"1m:1h", ArchiveSpec{SecondsPerPoint: 60, Points: 60}},
		{"60:1000", ArchiveSpec{SecondsPerPoint: 60, Points: 1000}},
		{"1h:1d", ArchiveSpec{SecondsPerPoint: 3600, Points: 24}},
		{"1d:1y", ArchiveSpec{SecondsPerPoint: 86400, Points: 7 * 365}},
	}
	for _, c := range cases {
		t.Run(c.token, func(t *testing.T) {
			got, err := ParseArchiveSpec(c.token)
			require.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestParseArchiveSpecErrors(t *testing.T) {
	bad := []string{
		"", "10s", "10s:", ":60", "0s:60", "10s:0", "10x:60", "10s:60x", "abc:60",
	}
	for _, tok := range bad {
		t.Run(tok, func(t *testing.T) {
			_, err := ParseArchiveSpec(tok)
			assert.Error(t, err)
		})
	}
}

func TestParseArchiveSpecsAllOrNothing(t *testing.T) {
	specs, err := ParseArchiveSpecs([]string{"10s:1h", "bogus"})
	assert.Error(t, err)
	assert.Nil(t, specs)
}

func TestParseArchiveSpecsEmpty(t *testing.T) {
	_, err := ParseArchiveSpecs(nil)
	assert.Error(t, err)
}

func TestUnitMultiplierPrefixMatching(t *testing.T) {
	cases := map[string]uint64{
		"s":  unitSecond,
		"se": unitSecond,
		"m":  unitMinute,
		"mi": unitMinute,
		"h":  unitHour,
		"d":  unitDay,
		"w":  unitWeek,
		"y":  unitYear,
	}
	for suffix, want := range cases {
		got, ok := unitMultiplier(suffix)
		assert.True(t, ok, suffix)
		assert.Equal(t, want, got, suffix)
	}

	_, ok := unitMultiplier("z")
	assert.False(t, ok)
	_, ok = unitMultiplier("")
	assert.False(t, ok)
}

func TestSortSpecsDoesNotMutateInput(t *testing.T) {
	in := []ArchiveSpec{{SecondsPerPoint: 60, Points: 10}, {SecondsPerPoint: 10, Points: 10}}
	out := sortSpecs(in)
	assert.Equal(t, uint32(60), in[0].SecondsPerPoint)
	assert.Equal(t, uint32(10), out[0].SecondsPerPoint)
	assert.Equal(t, uint32(60), out[1].SecondsPerPoint)
}
