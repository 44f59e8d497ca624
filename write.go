package rrdb

import (
	"log"
	"time"
)

// Set writes value at timestamp t. It fails with a DomainError
// wrapping ErrNoSuitableArchive if t is in the future or older than the
// file's max retention relative to the handle's clock.
//
// A failure during propagation into coarser archives is logged and returned
// as a *PropagationError; the primary write that already happened is never
// rolled back.
func (db *DB) Set(t time.Time, value float64) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	ts := uint64(t.Unix())
	now := uint64(db.clock.Now().Unix())

	primaryIdx, ok := db.selectPrimaryArchive(now, ts)
	if !ok {
		return domainErrorf("timestamp %s is not covered by any archive (now=%s, max_retention=%ds)",
			t.UTC(), db.clock.Now().UTC(), db.maxRetention)
	}

	primary := db.archives[primaryIdx]
	interval, offset := locate(primary, ts)
	if _, err := db.file.WriteAt(point{interval: interval, value: value}.encode(), offset); err != nil {
		return ioErrorf("write point", db.path, err)
	}

	if err := db.propagate(primaryIdx, ts); err != nil {
		log.Printf("rrdb: %s: archive will probably be inconsistent: %v", db.path, err)
		return err
	}
	return nil
}

// selectPrimaryArchive picks the first archive,
// finest to coarsest, whose retention exceeds now-t. Also validates the
// future/too-old bounds.
func (db *DB) selectPrimaryArchive(now, t uint64) (index int, ok bool) {
	if t > now {
		return 0, false
	}
	diff := now - t
	if diff > db.maxRetention {
		return 0, false
	}
	for i, a := range db.archives {
		if a.Retention > diff {
			return i, true
		}
	}
	return 0, false
}

// propagate recursively re-aggregates the write at t into each coarser
// archive starting from archives[fromIdx], stopping at
// the coarsest archive or the first window that fails x_files_factor.
func (db *DB) propagate(fromIdx int, t uint64) error {
	higherIdx := fromIdx
	for {
		higher := db.archives[higherIdx]
		lower, ok := db.lower(higherIdx)
		if !ok {
			return nil
		}

		propagated, err := db.propagateOnce(higher, lower, t)
		if err != nil {
			return &PropagationError{FromSecondsPerPoint: higher.SecondsPerPoint, ToSecondsPerPoint: lower.SecondsPerPoint, Cause: err}
		}
		if !propagated {
			return nil
		}

		higherIdx++
	}
}

// propagateOnce reads the k-slot window in
// the finer archive covering t's bucket in the coarser archive, aggregate
// it, and (subject to x_files_factor) write it into the coarser archive.
// Returns whether it wrote (i.e. whether the caller should keep propagating
// further down the chain).
func (db *DB) propagateOnce(higher, lower Archive, t uint64) (bool, error) {
	k := int(lower.SecondsPerPoint / higher.SecondsPerPoint)

	lowerInterval, _ := locate(lower, t)
	_, windowStart := locate(higher, lowerInterval)

	raw, err := db.readWindow(higher, windowStart, k)
	if err != nil {
		return false, err
	}
	points := decodePoints(raw)

	if !meetsXFilesFactor(points, db.xFilesFactor) {
		return false, nil
	}

	value := aggregate(db.aggregation, points)
	if _, err := db.file.WriteAt(point{interval: lowerInterval, value: value}.encode(), mustOffset(lower, lowerInterval)); err != nil {
		return false, err
	}
	return true, nil
}

// mustOffset re-derives the file offset for an interval already known to be
// a canonical bucket start of archive a.
func mustOffset(a Archive, interval uint64) int64 {
	_, offset := locate(a, interval)
	return offset
}

// readWindow reads k contiguous point slots from archive a starting at
// windowStart, splitting the read across the ring boundary when the window
// wraps past the archive's last slot back to its first.
func (db *DB) readWindow(a Archive, windowStart int64, k int) ([]byte, error) {
	want := int64(k) * pointSize
	end := windowStart + want

	if end <= a.end() {
		buf := make([]byte, want)
		if _, err := db.file.ReadAt(buf, windowStart); err != nil {
			return nil, err
		}
		return buf, nil
	}

	tailLen := a.end() - windowStart
	headLen := want - tailLen

	buf := make([]byte, want)
	if _, err := db.file.ReadAt(buf[:tailLen], windowStart); err != nil {
		return nil, err
	}
	if _, err := db.file.ReadAt(buf[tailLen:tailLen+headLen], int64(a.Offset)); err != nil {
		return nil, err
	}
	return buf, nil
}
