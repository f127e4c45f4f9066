package lparse

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// Encode writes c to w in the LParse format of c's version.
//
// The container is validated before writing. Validation checks that:
//   - The entry count does not exceed the version's capacity
//   - Every name is non-empty, free of NUL bytes and fits the name field
//   - Every entry's data matches its type tag
//
// Entries are written in slot order, payloads packed after the header region
// in the same order. Unused slots are written as null headers so the file
// always carries exactly MaxEntries headers. Nothing is written to w when
// validation fails.
func Encode(w io.Writer, c *Container) error {
	if c == nil {
		return fmt.Errorf("%w: container is nil", ErrInvalidEntry)
	}
	if err := validateContainer(c); err != nil {
		return err
	}
	spec := c.spec

	payloads := make([][]byte, len(c.entries))
	offsets := make([]uint32, spec.MaxEntries)
	off := uint64(spec.DataOffset())
	for i := 0; i < spec.MaxEntries; i++ {
		offsets[i] = uint32(off)
		if i < len(c.entries) {
			payloads[i] = encodeElems(c.entries[i])
			off += uint64(len(payloads[i]))
		}
		if off > math.MaxUint32 {
			return fmt.Errorf("%w: payload exceeds 4 GiB", ErrLimitExceeded)
		}
	}

	bw := bufio.NewWriter(w)
	var fh [fileHeaderSize]byte
	copy(fh[0:4], Magic[:])
	binary.LittleEndian.PutUint32(fh[4:8], spec.Version)
	if _, err := bw.Write(fh[:]); err != nil {
		return err
	}
	for i := 0; i < spec.MaxEntries; i++ {
		h := entryHeaderV1{Offset: offsets[i]}
		if i < len(c.entries) {
			e := c.entries[i]
			h.Name = []byte(e.Name)
			h.Type = uint32(e.Type)
			h.Count = uint32(e.Len())
		}
		if err := writeEntryHeader(bw, spec, h); err != nil {
			return err
		}
	}
	for _, p := range payloads {
		if _, err := bw.Write(p); err != nil {
			return err
		}
	}
	return bw.Flush()
}
