package lparse

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
)

type errWriter struct{}

func (errWriter) Write(p []byte) (int, error) { return 0, io.ErrClosedPipe }

type errReader struct{}

func (errReader) Read(p []byte) (int, error) { return 0, io.ErrUnexpectedEOF }

func TestEncode_ErrWriter(t *testing.T) {
	if err := Encode(errWriter{}, sampleContainer(t)); !errors.Is(err, io.ErrClosedPipe) {
		t.Fatalf("expected ErrClosedPipe, got %v", err)
	}
}

func TestDecode_ReaderError(t *testing.T) {
	if _, err := Decode(errReader{}); !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Fatalf("expected reader error, got %v", err)
	}
}

func TestFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "level.cnmb")
	in := sampleContainer(t)
	if err := in.WriteFile(path); err != nil {
		t.Fatal(err)
	}
	out, err := ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if out.Len() != in.Len() {
		t.Fatalf("got %d entries, want %d", out.Len(), in.Len())
	}
}

func TestWriteFile_InvalidLeavesNoFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.cnms")
	c, _ := New(VersionV1)
	c.SetU8("THIS_NAME_IS_TOO_LONG", []uint8{1})
	if err := c.WriteFile(path); !errors.Is(err, ErrInvalidEntry) {
		t.Fatalf("expected ErrInvalidEntry, got %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("file should not exist: %v", err)
	}
}

func TestReadFile_Missing(t *testing.T) {
	if _, err := ReadFile(filepath.Join(t.TempDir(), "nope.cnmb")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected ErrNotExist, got %v", err)
	}
}
