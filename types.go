package lparse

import "fmt"

const (
	VersionV1 uint32 = 1

	fileHeaderSize = 8
)

// Magic is the 4-byte CNML file signature.
var Magic = [4]byte{'C', 'N', 'M', 'L'}

// EntryType is the on-disk type tag of an entry.
type EntryType uint32

const (
	EntryNull  EntryType = 0
	EntryDummy EntryType = 1
	EntryI32   EntryType = 2
	EntryU32   EntryType = 3
	EntryU8    EntryType = 4
	EntryU16   EntryType = 5
	EntryF32   EntryType = 6
	EntryRect  EntryType = 7
)

// elemSize is the byte width of one element of t, or 0 for types without data.
func (t EntryType) elemSize() int {
	switch t {
	case EntryI32, EntryU32, EntryF32:
		return 4
	case EntryU8:
		return 1
	case EntryU16:
		return 2
	case EntryRect:
		return 16
	default:
		return 0
	}
}

func (t EntryType) valid() bool {
	return t <= EntryRect
}

func (t EntryType) String() string {
	switch t {
	case EntryNull:
		return "null"
	case EntryDummy:
		return "dummy"
	case EntryI32:
		return "i32"
	case EntryU32:
		return "u32"
	case EntryU8:
		return "u8"
	case EntryU16:
		return "u16"
	case EntryF32:
		return "f32"
	case EntryRect:
		return "rect"
	default:
		return fmt.Sprintf("unknown(%d)", uint32(t))
	}
}

// Rect is the four-int32 record stored by EntryRect entries.
type Rect struct {
	X, Y, W, H int32
}

// Entry is one named, typed array in a container.
//
// Data holds []int32, []uint32, []uint8, []uint16, []float32 or []Rect
// matching Type, and is nil for EntryNull and EntryDummy.
type Entry struct {
	Name string
	Type EntryType
	Data any
}

// Len reports the element count of the entry.
func (e *Entry) Len() int {
	switch d := e.Data.(type) {
	case []int32:
		return len(d)
	case []uint32:
		return len(d)
	case []uint8:
		return len(d)
	case []uint16:
		return len(d)
	case []float32:
		return len(d)
	case []Rect:
		return len(d)
	default:
		return 0
	}
}
