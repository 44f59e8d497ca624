package rrdb

// locate maps (archive, timestamp) to the canonical bucket start and its
// file offset, using the format's ring-address formula. Both the
// modulus and the division are performed on unsigned 64-bit integers, so
// this is safe for any timestamp representable as a non-negative Unix
// second count.
func locate(a Archive, t uint64) (interval uint64, offset int64) {
	interval = t - t%uint64(a.SecondsPerPoint)
	slotIndex := (interval % a.Retention) / uint64(a.SecondsPerPoint)
	offset = int64(a.Offset) + int64(slotIndex)*pointSize
	return interval, offset
}
