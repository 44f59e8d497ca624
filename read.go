package rrdb

import "time"

// Get returns the value stored at timestamp t's bucket in the same primary
// archive Set would choose. The slot's interval is not checked
// against t: a bucket that was last written on a previous ring cycle is
// returned as-is. Use GetInterval to detect staleness.
func (db *DB) Get(t time.Time) (float64, error) {
	_, value, err := db.GetInterval(t)
	return value, err
}

// GetInterval is Get but also returns the slot's stored interval, letting
// the caller detect a stale (previous-cycle) slot by comparing it to t's
// canonical bucket start.
func (db *DB) GetInterval(t time.Time) (interval time.Time, value float64, err error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	ts := uint64(t.Unix())
	now := uint64(db.clock.Now().Unix())

	primaryIdx, ok := db.selectPrimaryArchive(now, ts)
	if !ok {
		return time.Time{}, 0, domainErrorf("timestamp %s is not covered by any archive (now=%s, max_retention=%ds)",
			t.UTC(), db.clock.Now().UTC(), db.maxRetention)
	}

	primary := db.archives[primaryIdx]
	_, offset := locate(primary, ts)

	buf := make([]byte, pointSize)
	if _, err := db.file.ReadAt(buf, offset); err != nil {
		return time.Time{}, 0, ioErrorf("read point", db.path, err)
	}
	p := decodePoint(buf)
	return time.Unix(int64(p.interval), 0).UTC(), p.value, nil
}
