package rrdb

import (
	"encoding/binary"
	"math"
)

// On-disk record sizes, in bytes. Fixed-width, big-endian, tightly packed.
const (
	headerSize      = 14
	archiveInfoSize = 12
	pointSize       = 16
)

func init() {
	// Compile-time-ish guard: catch a struct-layout mistake immediately at
	// process start rather than in a bad file on disk.
	var h fileHeader
	var a archiveDescriptor
	var p point
	if len(h.encode()) != headerSize {
		panic("rrdb: fileHeader encoding does not match headerSize")
	}
	if len(a.encode()) != archiveInfoSize {
		panic("rrdb: archiveDescriptor encoding does not match archiveInfoSize")
	}
	if len(p.encode()) != pointSize {
		panic("rrdb: point encoding does not match pointSize")
	}
}

// aggregationMethod identifies how a propagation window folds into one value.
type aggregationMethod uint8

const (
	// aggUnset is never valid on disk; Create defaults it to aggAverage.
	aggUnset   aggregationMethod = 0
	aggAverage aggregationMethod = 1
	aggSum     aggregationMethod = 2
	aggLast    aggregationMethod = 3
	aggMax     aggregationMethod = 4
	aggMin     aggregationMethod = 5
)

func (m aggregationMethod) String() string {
	switch m {
	case aggAverage:
		return "average"
	case aggSum:
		return "sum"
	case aggLast:
		return "last"
	case aggMax:
		return "max"
	case aggMin:
		return "min"
	default:
		return "unknown"
	}
}

func parseAggregationMethod(s string) (aggregationMethod, bool) {
	switch s {
	case "average", "avg", "mean":
		return aggAverage, true
	case "sum":
		return aggSum, true
	case "last":
		return aggLast, true
	case "max":
		return aggMax, true
	case "min":
		return aggMin, true
	default:
		return aggUnset, false
	}
}

// fileHeader is the 14-byte record at offset 0.
type fileHeader struct {
	aggregation  aggregationMethod
	maxRetention uint64
	xFilesFactor uint8
	archiveCount uint32
}

func (h fileHeader) encode() []byte {
	b := make([]byte, headerSize)
	b[0] = byte(h.aggregation)
	binary.BigEndian.PutUint64(b[1:9], h.maxRetention)
	b[9] = h.xFilesFactor
	binary.BigEndian.PutUint32(b[10:14], h.archiveCount)
	return b
}

func decodeFileHeader(b []byte) fileHeader {
	_ = b[headerSize-1] // bounds check hint
	return fileHeader{
		aggregation:  aggregationMethod(b[0]),
		maxRetention: binary.BigEndian.Uint64(b[1:9]),
		xFilesFactor: b[9],
		archiveCount: binary.BigEndian.Uint32(b[10:14]),
	}
}

// archiveDescriptor is the 12-byte on-disk record describing one archive.
type archiveDescriptor struct {
	offset          uint32
	secondsPerPoint uint32
	points          uint32
}

func (a archiveDescriptor) encode() []byte {
	b := make([]byte, archiveInfoSize)
	binary.BigEndian.PutUint32(b[0:4], a.offset)
	binary.BigEndian.PutUint32(b[4:8], a.secondsPerPoint)
	binary.BigEndian.PutUint32(b[8:12], a.points)
	return b
}

func decodeArchiveDescriptor(b []byte) archiveDescriptor {
	_ = b[archiveInfoSize-1]
	return archiveDescriptor{
		offset:          binary.BigEndian.Uint32(b[0:4]),
		secondsPerPoint: binary.BigEndian.Uint32(b[4:8]),
		points:          binary.BigEndian.Uint32(b[8:12]),
	}
}

// point is the 16-byte on-disk slot record. interval == 0 means empty.
//
// The value field stores the big-endian bit pattern of a float64 (DESIGN.md
// O1): the wire bytes are exactly math.Float64bits(v) written
// big-endian, so a raw byte round-trip through write->read is also an exact
// float64 round-trip.
type point struct {
	interval uint64
	value    float64
}

func (p point) encode() []byte {
	b := make([]byte, pointSize)
	binary.BigEndian.PutUint64(b[0:8], p.interval)
	binary.BigEndian.PutUint64(b[8:16], math.Float64bits(p.value))
	return b
}

func decodePoint(b []byte) point {
	_ = b[pointSize-1]
	return point{
		interval: binary.BigEndian.Uint64(b[0:8]),
		value:    math.Float64frombits(binary.BigEndian.Uint64(b[8:16])),
	}
}

func (p point) empty() bool { return p.interval == 0 }

// decodePoints splits a contiguous byte run into k point records.
func decodePoints(b []byte) []point {
	n := len(b) / pointSize
	out := make([]point, n)
	for i := 0; i < n; i++ {
		out[i] = decodePoint(b[i*pointSize : (i+1)*pointSize])
	}
	return out
}
