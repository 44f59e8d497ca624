package rrdb

import (
	"os"
	"sync"
)

// DB is an open round-robin database file handle. It owns exactly one file
// descriptor and one archive chain, both released on Close.
type DB struct {
	path string
	file *os.File

	aggregation  aggregationMethod
	maxRetention uint64
	xFilesFactor uint8
	archives     []Archive // canonical order, finest first

	clock Clock

	// mu serializes access to the shared file descriptor's seek/offset state
	// across Set/Get calls on one handle. The core makes no promises about
	// concurrent writers across handles; this only protects a
	// single handle used from multiple goroutines within one process.
	mu sync.Mutex
}

// Path returns the filesystem path the handle was opened from.
func (db *DB) Path() string { return db.path }

// AggregationMethod returns the file's configured aggregation method as its
// canonical name ("average", "sum", "last", "max", "min").
func (db *DB) AggregationMethod() string { return db.aggregation.String() }

// MaxRetention returns the file's overall retention window, in seconds.
func (db *DB) MaxRetention() uint64 { return db.maxRetention }

// XFilesFactor returns the configured minimum-density percentage (0-100).
func (db *DB) XFilesFactor() uint8 { return db.xFilesFactor }

// Archives returns the archive chain in canonical (finest-first) order.
func (db *DB) Archives() []Archive {
	out := make([]Archive, len(db.archives))
	copy(out, db.archives)
	return out
}

// Close releases the file descriptor. It is safe to call once; a second
// call returns the error from the underlying close.
func (db *DB) Close() error {
	return db.file.Close()
}

// lower returns the next-coarser archive after archives[i], or false if i is
// the coarsest archive.
func (db *DB) lower(i int) (Archive, bool) {
	li := db.archives[i].lowerIndex
	if li < 0 {
		return Archive{}, false
	}
	return db.archives[li], true
}
