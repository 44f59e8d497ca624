package catalog

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordAndList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.db")
	c, err := Open(path)
	require.NoError(t, err)
	defer c.Close()

	e := Entry{
		Path:         "/data/sensors.rrdb",
		SpecTokens:   []string{"10s:1h", "60s:1d"},
		Aggregation:  "average",
		XFilesFactor: 50,
		CreatedAt:    time.Unix(1700000000, 0).UTC(),
	}
	require.NoError(t, c.Record(e))

	entries, err := c.List()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, e.Path, entries[0].Path)
	assert.Equal(t, e.SpecTokens, entries[0].SpecTokens)
	assert.Equal(t, e.Aggregation, entries[0].Aggregation)
	assert.Equal(t, e.XFilesFactor, entries[0].XFilesFactor)
	assert.True(t, e.CreatedAt.Equal(entries[0].CreatedAt))
}

func TestRecordUpsertsOnPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.db")
	c, err := Open(path)
	require.NoError(t, err)
	defer c.Close()

	base := Entry{Path: "/data/a.rrdb", SpecTokens: []string{"10s:1h"}, Aggregation: "average", CreatedAt: time.Unix(1, 0)}
	require.NoError(t, c.Record(base))

	updated := base
	updated.Aggregation = "sum"
	updated.XFilesFactor = 80
	require.NoError(t, c.Record(updated))

	entries, err := c.List()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "sum", entries[0].Aggregation)
	assert.Equal(t, uint8(80), entries[0].XFilesFactor)
}

func TestDefaultPath(t *testing.T) {
	assert.Equal(t, "/home/user/.rrdb/catalog.db", DefaultPath("/home/user"))
}
