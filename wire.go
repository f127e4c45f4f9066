package lparse

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

type entryHeaderV1 struct {
	Name   []byte
	Type   uint32
	Count  uint32
	Offset uint32
}

func readEntryHeader(r io.Reader, s VersionSpec) (entryHeaderV1, error) {
	buf := make([]byte, s.EntryHeaderSize)
	if _, err := io.ReadFull(r, buf); err != nil {
		return entryHeaderV1{}, err
	}
	n := s.EntryNameSize
	var h entryHeaderV1
	h.Name = buf[:n]
	h.Type = binary.LittleEndian.Uint32(buf[n : n+4])
	h.Count = binary.LittleEndian.Uint32(buf[n+4 : n+8])
	h.Offset = binary.LittleEndian.Uint32(buf[n+8 : n+12])
	return h, nil
}

func writeEntryHeader(w io.Writer, s VersionSpec, h entryHeaderV1) error {
	buf := make([]byte, s.EntryHeaderSize)
	n := s.EntryNameSize
	copy(buf[:n], h.Name)
	binary.LittleEndian.PutUint32(buf[n:n+4], h.Type)
	binary.LittleEndian.PutUint32(buf[n+4:n+8], h.Count)
	binary.LittleEndian.PutUint32(buf[n+8:n+12], h.Offset)
	_, err := w.Write(buf)
	return err
}

// name returns the header name up to its first NUL.
func (h entryHeaderV1) name() string {
	if i := bytes.IndexByte(h.Name, 0); i >= 0 {
		return string(h.Name[:i])
	}
	return string(h.Name)
}

func decodeElems(t EntryType, count int, b []byte) (any, error) {
	if len(b) != count*t.elemSize() {
		return nil, fmt.Errorf("%w: payload is %d bytes, want %d", ErrEntryCorrupted, len(b), count*t.elemSize())
	}
	le := binary.LittleEndian
	switch t {
	case EntryI32:
		out := make([]int32, count)
		for i := range out {
			out[i] = int32(le.Uint32(b[i*4:]))
		}
		return out, nil
	case EntryU32:
		out := make([]uint32, count)
		for i := range out {
			out[i] = le.Uint32(b[i*4:])
		}
		return out, nil
	case EntryU8:
		out := make([]uint8, count)
		copy(out, b)
		return out, nil
	case EntryU16:
		out := make([]uint16, count)
		for i := range out {
			out[i] = le.Uint16(b[i*2:])
		}
		return out, nil
	case EntryF32:
		out := make([]float32, count)
		for i := range out {
			out[i] = math.Float32frombits(le.Uint32(b[i*4:]))
		}
		return out, nil
	case EntryRect:
		out := make([]Rect, count)
		for i := range out {
			p := b[i*16:]
			out[i] = Rect{
				X: int32(le.Uint32(p[0:4])),
				Y: int32(le.Uint32(p[4:8])),
				W: int32(le.Uint32(p[8:12])),
				H: int32(le.Uint32(p[12:16])),
			}
		}
		return out, nil
	default:
		return nil, nil
	}
}

func encodeElems(e Entry) []byte {
	le := binary.LittleEndian
	switch d := e.Data.(type) {
	case []int32:
		b := make([]byte, 4*len(d))
		for i, v := range d {
			le.PutUint32(b[i*4:], uint32(v))
		}
		return b
	case []uint32:
		b := make([]byte, 4*len(d))
		for i, v := range d {
			le.PutUint32(b[i*4:], v)
		}
		return b
	case []uint8:
		return bytes.Clone(d)
	case []uint16:
		b := make([]byte, 2*len(d))
		for i, v := range d {
			le.PutUint16(b[i*2:], v)
		}
		return b
	case []float32:
		b := make([]byte, 4*len(d))
		for i, v := range d {
			le.PutUint32(b[i*4:], math.Float32bits(v))
		}
		return b
	case []Rect:
		b := make([]byte, 16*len(d))
		for i, r := range d {
			p := b[i*16:]
			le.PutUint32(p[0:4], uint32(r.X))
			le.PutUint32(p[4:8], uint32(r.Y))
			le.PutUint32(p[8:12], uint32(r.W))
			le.PutUint32(p[12:16], uint32(r.H))
		}
		return b
	default:
		return nil
	}
}
