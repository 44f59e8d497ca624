package rrdb

import "os"

// Open opens an existing round-robin database file, using the wall clock for
// "now".
func Open(path string) (*DB, error) {
	return OpenWithClock(path, realClock{})
}

// OpenWithClock opens an existing file with an injected Clock, letting
// callers control "now" deterministically.
func OpenWithClock(path string, clock Clock) (db *DB, err error) {
	file, err := os.OpenFile(path, os.O_RDWR, 0o644)
	if err != nil {
		return nil, ioErrorf("open", path, err)
	}
	// Every exit path below releases the descriptor on failure, including a
	// header read that succeeds but whose descriptor read fails.
	defer func() {
		if err != nil {
			file.Close()
		}
	}()

	hb := make([]byte, headerSize)
	n, rerr := readFull(file, hb)
	if rerr != nil {
		return nil, corruptionErrorf(path, rerr, "short read of header (got %d of %d bytes)", n, headerSize)
	}
	header := decodeFileHeader(hb)

	if header.archiveCount == 0 {
		return nil, corruptionErrorf(path, nil, "archive_count is zero")
	}

	descriptors := make([]archiveDescriptor, header.archiveCount)
	descBuf := make([]byte, archiveInfoSize)
	for i := uint32(0); i < header.archiveCount; i++ {
		n, rerr := readFull(file, descBuf)
		if rerr != nil {
			return nil, corruptionErrorf(path, rerr, "short read of archive descriptor %d (got %d of %d bytes)", i, n, archiveInfoSize)
		}
		descriptors[i] = decodeArchiveDescriptor(descBuf)
	}

	archives := make([]Archive, len(descriptors))
	for i, d := range descriptors {
		lowerIndex := i + 1
		if lowerIndex >= len(descriptors) {
			lowerIndex = -1
		}
		archives[i] = newArchive(d, lowerIndex)
	}

	return &DB{
		path:         path,
		file:         file,
		aggregation:  header.aggregation,
		maxRetention: header.maxRetention,
		xFilesFactor: header.xFilesFactor,
		archives:     archives,
		clock:        clock,
	}, nil
}

// readFull reads exactly len(buf) bytes, or returns the short-read error.
// os.File.Read is not guaranteed to fill buf in one call even though in
// practice local-filesystem reads of this size always do; this keeps the
// opener correct regardless.
func readFull(file *os.File, buf []byte) (int, error) {
	total := 0
	for total < len(buf) {
		n, err := file.Read(buf[total:])
		total += n
		if err != nil {
			return total, err
		}
		if n == 0 {
			return total, os.ErrClosed
		}
	}
	return total, nil
}
