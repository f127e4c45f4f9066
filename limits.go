package lparse

import "fmt"

// VersionSpec holds the container layout of one format version.
type VersionSpec struct {
	Version         uint32
	MaxEntries      int
	EntryNameSize   int
	EntryHeaderSize int
}

var versionSpecs = map[uint32]VersionSpec{
	VersionV1: {
		Version:         VersionV1,
		MaxEntries:      128,
		EntryNameSize:   16,
		EntryHeaderSize: 16 + 3*4,
	},
}

// SpecFor returns the layout for version, or ErrUnsupportedVersion.
func SpecFor(version uint32) (VersionSpec, error) {
	s, ok := versionSpecs[version]
	if !ok {
		return VersionSpec{}, fmt.Errorf("%w: %d", ErrUnsupportedVersion, version)
	}
	return s, nil
}

// DataOffset is the byte offset of the first payload byte.
func (s VersionSpec) DataOffset() int {
	return fileHeaderSize + s.MaxEntries*s.EntryHeaderSize
}

// Limits bounds allocations made while decoding untrusted input.
type Limits struct {
	MaxFileSize      int64
	MaxEntryElements uint32
}

func defaultLimits() Limits {
	return Limits{
		MaxFileSize:      256 << 20, // 256 MiB
		MaxEntryElements: 1 << 26,
	}
}

func (l Limits) withDefaults() Limits {
	d := defaultLimits()
	if l.MaxFileSize == 0 {
		l.MaxFileSize = d.MaxFileSize
	}
	if l.MaxEntryElements == 0 {
		l.MaxEntryElements = d.MaxEntryElements
	}
	return l
}
