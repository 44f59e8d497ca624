// Package rrdb implements a fixed-size, round-robin time-series database
// file format in the Whisper/RRD lineage.
//
// A file holds a fixed number of bytes for its entire life: a header,
// followed by one or more archives of increasing retention and decreasing
// precision. New samples land in the highest-precision archive; writes
// automatically propagate summarized values into coarser archives. The file
// never grows or shrinks after creation.
//
// # Basic usage
//
// Create a database with two archives, 10-second precision retained for a
// minute and 1-minute precision retained for 5 minutes:
//
//	err := rrdb.Create("sensors.rrdb", []string{"10s:1m", "1m:5m"}, "average", 0)
//
// Open it and write a sample:
//
//	db, err := rrdb.Open("sensors.rrdb")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer db.Close()
//
//	err = db.Set(time.Now(), 21.7)
//
// Read the most recent value from a given archive-selecting timestamp:
//
//	value, err := db.Get(time.Now())
//
// # Concurrency
//
// A DB is single-writer: the core performs no file locking, and concurrent
// writers to the same file (or a concurrent reader-plus-writer sharing one
// handle from multiple goroutines without external synchronization) have
// undefined behavior beyond the coarse mutex documented on DB. Callers
// needing durability across crashes must arrange their own atomicity, for
// example by writing to a scratch path and renaming into place.
package rrdb
