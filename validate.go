package lparse

import (
	"fmt"
	"strings"
)

func validateContainer(c *Container) error {
	if len(c.entries) > c.spec.MaxEntries {
		return fmt.Errorf("%w: %d entries, version %d holds %d", ErrCapacity, len(c.entries), c.spec.Version, c.spec.MaxEntries)
	}
	for i := range c.entries {
		e := c.entries[i]
		if err := validateEntryName(e.Name, c.spec); err != nil {
			return fmt.Errorf("%w: entry %d: %v", ErrInvalidEntry, i, err)
		}
		if !e.Type.valid() {
			return fmt.Errorf("%w: %q has tag %d", ErrUnknownEntryType, e.Name, uint32(e.Type))
		}
		if !dataMatches(e) {
			return fmt.Errorf("%w: %q data %T does not match type %s", ErrInvalidEntry, e.Name, e.Data, e.Type)
		}
	}
	return nil
}

func validateEntryName(name string, s VersionSpec) error {
	if name == "" {
		return fmt.Errorf("name is empty")
	}
	if len(name) > s.EntryNameSize {
		return fmt.Errorf("name %q longer than %d bytes", name, s.EntryNameSize)
	}
	if strings.IndexByte(name, 0) >= 0 {
		return fmt.Errorf("name %q contains NUL", name)
	}
	return nil
}

func dataMatches(e Entry) bool {
	switch e.Type {
	case EntryNull, EntryDummy:
		return e.Data == nil
	case EntryI32:
		_, ok := e.Data.([]int32)
		return ok
	case EntryU32:
		_, ok := e.Data.([]uint32)
		return ok
	case EntryU8:
		_, ok := e.Data.([]uint8)
		return ok
	case EntryU16:
		_, ok := e.Data.([]uint16)
		return ok
	case EntryF32:
		_, ok := e.Data.([]float32)
		return ok
	case EntryRect:
		_, ok := e.Data.([]Rect)
		return ok
	}
	return false
}
