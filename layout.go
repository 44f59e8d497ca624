package rrdb

import "os"

// zeroFillChunkSize is the buffer size used to pre-allocate archive regions
// with zero bytes. No fallocate-style syscall binding is reachable from this
// module's dependency corpus, so creation always writes zeros explicitly
// (see DESIGN.md).
const zeroFillChunkSize = 64 * 1024

// Create builds a new round-robin database file at path from a sequence of
// "PRECISION:RETENTION" archive spec tokens. aggregation
// selects how propagation windows are folded; a zero value defaults to
// average. xFilesFactor is the 0-100 minimum-density percentage required to
// propagate.
//
// Create refuses to overwrite an existing path (DESIGN.md O5) rather than
// truncating in place and risking stale tail bytes from a shorter file.
func Create(path string, specTokens []string, aggregation string, xFilesFactor uint8) error {
	specs, err := ParseArchiveSpecs(specTokens)
	if err != nil {
		return err
	}
	return CreateSpecs(path, specs, aggregation, xFilesFactor)
}

// CreateSpecs is Create taking already-parsed ArchiveSpecs.
func CreateSpecs(path string, specs []ArchiveSpec, aggregation string, xFilesFactor uint8) error {
	if len(specs) == 0 {
		return configErrorf(ErrNoArchives, "no archive specs given")
	}
	if xFilesFactor > 100 {
		return configErrorf(nil, "x_files_factor must be in 0..=100, got %d", xFilesFactor)
	}

	aggMethod := aggAverage
	if aggregation != "" {
		m, ok := parseAggregationMethod(aggregation)
		if !ok {
			return configErrorf(nil, "unknown aggregation method %q", aggregation)
		}
		aggMethod = m
	}

	sorted := sortSpecs(specs)
	if err := validateArchives(sorted); err != nil {
		return err
	}

	var maxRetention uint64
	descriptors := make([]archiveDescriptor, len(sorted))
	offset := uint32(headerSize) + uint32(len(sorted))*archiveInfoSize
	for i, s := range sorted {
		descriptors[i] = archiveDescriptor{offset: offset, secondsPerPoint: s.SecondsPerPoint, points: s.Points}
		retention := uint64(s.SecondsPerPoint) * uint64(s.Points)
		if retention > maxRetention {
			maxRetention = retention
		}
		offset += s.Points * pointSize
	}
	totalSize := offset

	file, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_EXCL, 0o640)
	if err != nil {
		if os.IsExist(err) {
			return configErrorf(ErrExists, "cannot create %s", path)
		}
		return ioErrorf("create", path, err)
	}
	defer file.Close()

	header := fileHeader{
		aggregation:  aggMethod,
		maxRetention: maxRetention,
		xFilesFactor: xFilesFactor,
		archiveCount: uint32(len(descriptors)),
	}
	if _, err := file.Write(header.encode()); err != nil {
		return ioErrorf("write header", path, err)
	}
	for _, d := range descriptors {
		if _, err := file.Write(d.encode()); err != nil {
			return ioErrorf("write archive descriptor", path, err)
		}
	}

	if err := zeroFill(file, int64(totalSize)-int64(offset0(descriptors))); err != nil {
		return ioErrorf("preallocate", path, err)
	}

	return nil
}

// offset0 is the byte offset where the first archive's point ring begins,
// i.e. the end of the header+directory region already written.
func offset0(descriptors []archiveDescriptor) uint32 {
	if len(descriptors) == 0 {
		return headerSize
	}
	return descriptors[0].offset
}

// zeroFill writes n zero bytes to file starting at the current seek
// position. All point slots must read back as all-zero bytes; this loop is
// the fallback used when a fallocate-style reservation primitive isn't
// available.
func zeroFill(file *os.File, n int64) error {
	if n <= 0 {
		return nil
	}
	buf := make([]byte, zeroFillChunkSize)
	for n > 0 {
		chunk := int64(len(buf))
		if n < chunk {
			chunk = n
		}
		if _, err := file.Write(buf[:chunk]); err != nil {
			return err
		}
		n -= chunk
	}
	return nil
}
