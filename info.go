package rrdb

// FileInfo summarizes an open file's header and archive directory, for the
// CLI's "info" subcommand (format not normative).
type FileInfo struct {
	Path         string
	Aggregation  string
	MaxRetention uint64
	XFilesFactor uint8
	Archives     []ArchiveInfo
}

// ArchiveInfo describes one archive in a FileInfo.
type ArchiveInfo struct {
	SecondsPerPoint uint32
	Points          uint32
	Retention       uint64
	Offset          uint32
	Size            uint32
}

// Info summarizes the open handle's header and archive directory.
func (db *DB) Info() FileInfo {
	archives := make([]ArchiveInfo, len(db.archives))
	for i, a := range db.archives {
		archives[i] = ArchiveInfo{
			SecondsPerPoint: a.SecondsPerPoint,
			Points:          a.Points,
			Retention:       a.Retention,
			Offset:          a.Offset,
			Size:            a.Size,
		}
	}
	return FileInfo{
		Path:         db.path,
		Aggregation:  db.aggregation.String(),
		MaxRetention: db.maxRetention,
		XFilesFactor: db.xFilesFactor,
		Archives:     archives,
	}
}

// DumpedPoint is one decoded slot from an archive's ring, in on-disk order
// (format not normative).
type DumpedPoint struct {
	SlotIndex int
	Interval  uint64
	Value     float64
	Empty     bool
}

// Dump reads every slot of the archive at archiveIndex (0 = finest, in
// canonical order) and returns it decoded, in on-disk slot order.
func (db *DB) Dump(archiveIndex int) ([]DumpedPoint, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	if archiveIndex < 0 || archiveIndex >= len(db.archives) {
		return nil, domainErrorf("archive index %d out of range (have %d archives)", archiveIndex, len(db.archives))
	}
	a := db.archives[archiveIndex]

	buf := make([]byte, a.Size)
	if _, err := db.file.ReadAt(buf, int64(a.Offset)); err != nil {
		return nil, ioErrorf("read archive", db.path, err)
	}

	points := decodePoints(buf)
	out := make([]DumpedPoint, len(points))
	for i, p := range points {
		out[i] = DumpedPoint{SlotIndex: i, Interval: p.interval, Value: p.value, Empty: p.empty()}
	}
	return out, nil
}
