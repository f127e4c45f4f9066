package lparse

import (
	"errors"
	"testing"
)

func TestLimitsWithDefaults(t *testing.T) {
	l := (Limits{}).withDefaults()
	if l.MaxFileSize == 0 || l.MaxEntryElements == 0 {
		t.Fatal("expected defaults")
	}

	custom := Limits{MaxEntryElements: 7}
	custom = custom.withDefaults()
	if custom.MaxEntryElements != 7 {
		t.Fatalf("expected custom MaxEntryElements, got %d", custom.MaxEntryElements)
	}
}

func TestSpecFor(t *testing.T) {
	s, err := SpecFor(VersionV1)
	if err != nil {
		t.Fatal(err)
	}
	if s.MaxEntries != 128 || s.EntryNameSize != 16 || s.EntryHeaderSize != 28 {
		t.Fatalf("unexpected v1 spec %#v", s)
	}
	if _, err := SpecFor(0); !errors.Is(err, ErrUnsupportedVersion) {
		t.Fatalf("expected ErrUnsupportedVersion, got %v", err)
	}
	if _, err := New(7); !errors.Is(err, ErrUnsupportedVersion) {
		t.Fatalf("expected ErrUnsupportedVersion, got %v", err)
	}
}

func TestValidateEntryName(t *testing.T) {
	s, _ := SpecFor(VersionV1)
	cases := []struct {
		in   string
		want bool
	}{
		{"BLOCKS_HEADER", true},
		{"SIXTEEN_BYTES_XX", true},
		{"SEVENTEEN_BYTES_X", false},
		{"", false},
		{"A\x00B", false},
	}
	for _, tc := range cases {
		err := validateEntryName(tc.in, s)
		if tc.want && err != nil {
			t.Fatalf("%q: expected ok, got %v", tc.in, err)
		}
		if !tc.want && err == nil {
			t.Fatalf("%q: expected error", tc.in)
		}
	}
}
