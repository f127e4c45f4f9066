package lparse

import "fmt"

// Container is a decoded LParse file: an ordered set of uniquely named entries.
//
// Entries keep the slot they were first stored in; replacing an entry's data
// does not move it. Lookups are by name and independent of slot order.
type Container struct {
	spec    VersionSpec
	entries []Entry
	index   map[string]int
}

// New returns an empty container for version.
func New(version uint32) (*Container, error) {
	spec, err := SpecFor(version)
	if err != nil {
		return nil, err
	}
	return &Container{spec: spec, index: make(map[string]int)}, nil
}

func (c *Container) Version() uint32   { return c.spec.Version }
func (c *Container) Spec() VersionSpec { return c.spec }
func (c *Container) Len() int          { return len(c.entries) }

// Entries returns a copy of the entry list in slot order. Data slices are shared.
func (c *Container) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Lookup returns the entry stored under name.
func (c *Container) Lookup(name string) (Entry, bool) {
	i, ok := c.index[name]
	if !ok {
		return Entry{}, false
	}
	return c.entries[i], true
}

func (c *Container) Has(name string) bool {
	_, ok := c.index[name]
	return ok
}

// Delete removes name if present.
func (c *Container) Delete(name string) {
	i, ok := c.index[name]
	if !ok {
		return
	}
	c.entries = append(c.entries[:i], c.entries[i+1:]...)
	delete(c.index, name)
	for j := i; j < len(c.entries); j++ {
		c.index[c.entries[j].Name] = j
	}
}

func (c *Container) set(name string, t EntryType, data any) {
	if i, ok := c.index[name]; ok {
		c.entries[i] = Entry{Name: name, Type: t, Data: data}
		return
	}
	c.index[name] = len(c.entries)
	c.entries = append(c.entries, Entry{Name: name, Type: t, Data: data})
}

// SetNull stores a data-less entry of type EntryNull or EntryDummy.
func (c *Container) SetNull(name string, t EntryType) {
	if t != EntryDummy {
		t = EntryNull
	}
	c.set(name, t, nil)
}

func (c *Container) SetI32(name string, v []int32)   { c.set(name, EntryI32, v) }
func (c *Container) SetU32(name string, v []uint32)  { c.set(name, EntryU32, v) }
func (c *Container) SetU8(name string, v []uint8)    { c.set(name, EntryU8, v) }
func (c *Container) SetU16(name string, v []uint16)  { c.set(name, EntryU16, v) }
func (c *Container) SetF32(name string, v []float32) { c.set(name, EntryF32, v) }
func (c *Container) SetRects(name string, v []Rect)  { c.set(name, EntryRect, v) }

func (c *Container) I32(name string) ([]int32, error)   { return get[int32](c, name, EntryI32) }
func (c *Container) U32(name string) ([]uint32, error)  { return get[uint32](c, name, EntryU32) }
func (c *Container) U8(name string) ([]uint8, error)    { return get[uint8](c, name, EntryU8) }
func (c *Container) U16(name string) ([]uint16, error)  { return get[uint16](c, name, EntryU16) }
func (c *Container) F32(name string) ([]float32, error) { return get[float32](c, name, EntryF32) }
func (c *Container) Rects(name string) ([]Rect, error)  { return get[Rect](c, name, EntryRect) }

func get[T any](c *Container, name string, want EntryType) ([]T, error) {
	e, ok := c.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrEntryNotFound, name)
	}
	if e.Type != want {
		return nil, fmt.Errorf("%w: %q is %s, requested %s", ErrWrongType, name, e.Type, want)
	}
	d, _ := e.Data.([]T)
	return d, nil
}
