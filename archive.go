package rrdb

// Archive is the runtime representation of one resolution level, built from
// an on-disk archiveDescriptor plus derived fields.
type Archive struct {
	Offset          uint32
	SecondsPerPoint uint32
	Points          uint32

	Retention uint64 // seconds: SecondsPerPoint * Points
	Size      uint32 // bytes: Points * pointSize

	// lowerIndex is the index of the next-coarser archive in DB.archives, or
	// -1 if this is the coarsest archive. Modeled as an index rather than a
	// pointer so the chain has one owner (DB.archives) and no cycles.
	lowerIndex int
}

func newArchive(d archiveDescriptor, lowerIndex int) Archive {
	return Archive{
		Offset:          d.offset,
		SecondsPerPoint: d.secondsPerPoint,
		Points:          d.points,
		Retention:       uint64(d.secondsPerPoint) * uint64(d.points),
		Size:            d.points * pointSize,
		lowerIndex:      lowerIndex,
	}
}

func (a Archive) descriptor() archiveDescriptor {
	return archiveDescriptor{offset: a.Offset, secondsPerPoint: a.SecondsPerPoint, points: a.Points}
}

// end returns the file offset one past this archive's last byte.
func (a Archive) end() int64 {
	return int64(a.Offset) + int64(a.Size)
}
