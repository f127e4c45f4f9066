package lparse

import (
	"io"
	"os"

	"github.com/logicossoftware/go-lparse/internal/atomicfile"
)

// ReadFile decodes the container stored at path.
func ReadFile(path string, opts ...ReadOption) (*Container, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Decode(f, opts...)
}

// WriteFile encodes c to path. The previous file is replaced atomically, so a
// failed save leaves it intact.
func (c *Container) WriteFile(path string) error {
	if err := validateContainer(c); err != nil {
		return err
	}
	return atomicfile.Write(path, func(w io.Writer) error {
		return Encode(w, c)
	})
}
