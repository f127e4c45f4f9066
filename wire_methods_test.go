package lparse

import "testing"

func TestEntryTypeMethods(t *testing.T) {
	sizes := map[EntryType]int{
		EntryNull: 0, EntryDummy: 0, EntryI32: 4, EntryU32: 4,
		EntryU8: 1, EntryU16: 2, EntryF32: 4, EntryRect: 16,
	}
	for typ, want := range sizes {
		if typ.elemSize() != want {
			t.Fatalf("%s: elemSize %d, want %d", typ, typ.elemSize(), want)
		}
	}
	if EntryType(12).String() != "unknown(12)" {
		t.Fatal("expected unknown")
	}
	if (&Entry{Type: EntryRect, Data: []Rect{{}, {}}}).Len() != 2 {
		t.Fatal("expected 2 rects")
	}
	if (&Entry{Type: EntryNull}).Len() != 0 {
		t.Fatal("expected empty null entry")
	}
}
