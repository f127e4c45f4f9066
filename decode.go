package lparse

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
)

// Decode reads an LParse container from r.
//
// The decoding process:
//  1. Reads the whole input into memory (bounded by [Limits.MaxFileSize])
//  2. Validates the 4-byte magic and selects the [VersionSpec] for the version id
//  3. Reads every fixed-size entry header in slot order
//  4. For each non-null entry, seeks to its payload, decodes it and seeks back
//
// Slots with an empty name are unused and skipped. Null and dummy entries are
// kept, without data.
//
// Decode returns ErrInvalidMagic if the input is not an LParse file,
// ErrUnsupportedVersion for an unknown version id, ErrUnknownEntryType for an
// unrecognized type tag and ErrEntryCorrupted when a payload lies outside the
// file.
func Decode(r io.Reader, opts ...ReadOption) (*Container, error) {
	cfg := readConfig{limits: defaultLimits()}
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.limits = cfg.limits.withDefaults()

	data, err := io.ReadAll(io.LimitReader(r, cfg.limits.MaxFileSize+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > cfg.limits.MaxFileSize {
		return nil, fmt.Errorf("%w: file larger than %d bytes", ErrLimitExceeded, cfg.limits.MaxFileSize)
	}
	return decodeFrom(bytes.NewReader(data), cfg)
}

func decodeFrom(r *bytes.Reader, cfg readConfig) (*Container, error) {
	var fh [fileHeaderSize]byte
	if _, err := io.ReadFull(r, fh[:]); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidMagic, err)
	}
	if [4]byte(fh[0:4]) != Magic {
		return nil, ErrInvalidMagic
	}
	spec, err := SpecFor(binary.LittleEndian.Uint32(fh[4:8]))
	if err != nil {
		return nil, err
	}

	c := &Container{spec: spec, index: make(map[string]int)}
	for slot := 0; slot < spec.MaxEntries; slot++ {
		h, err := readEntryHeader(r, spec)
		if err != nil {
			return nil, fmt.Errorf("%w: slot %d: %v", ErrInvalidHeader, slot, err)
		}
		name := h.name()
		if name == "" {
			continue
		}
		if c.Has(name) {
			return nil, fmt.Errorf("%w: duplicate entry %q", ErrInvalidHeader, name)
		}
		t := EntryType(h.Type)
		if !t.valid() {
			return nil, fmt.Errorf("%w: %q has tag %d", ErrUnknownEntryType, name, h.Type)
		}
		if t == EntryNull || t == EntryDummy {
			c.set(name, t, nil)
			continue
		}
		if h.Count > cfg.limits.MaxEntryElements {
			return nil, fmt.Errorf("%w: %q has %d elements", ErrLimitExceeded, name, h.Count)
		}
		d, err := readPayload(r, name, h, t)
		if err != nil {
			return nil, err
		}
		c.set(name, t, d)
	}
	return c, nil
}

// readPayload decodes the data of h and restores the read position afterwards.
func readPayload(r *bytes.Reader, name string, h entryHeaderV1, t EntryType) (any, error) {
	n := int64(h.Count) * int64(t.elemSize())
	if int64(h.Offset)+n > r.Size() {
		return nil, fmt.Errorf("%w: %q payload [%d,+%d) beyond end of file", ErrEntryCorrupted, name, h.Offset, n)
	}
	pos, err := r.Seek(0, io.SeekCurrent)
	if err != nil {
		return nil, err
	}
	if _, err := r.Seek(int64(h.Offset), io.SeekStart); err != nil {
		return nil, err
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrEntryCorrupted, name, err)
	}
	if _, err := r.Seek(pos, io.SeekStart); err != nil {
		return nil, err
	}
	return decodeElems(t, int(h.Count), buf)
}
