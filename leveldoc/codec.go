package leveldoc

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fxamacker/cbor/v2"
	"gopkg.in/yaml.v3"

	"github.com/logicossoftware/go-lparse/internal/atomicfile"
)

// Format names a document serialization.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatCBOR Format = "cbor"
)

// ParseFormat accepts "yaml", "yml" and "cbor" in any case.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "cbor":
		return FormatCBOR, nil
	}
	return "", fmt.Errorf("%w %q", ErrUnknownFormat, s)
}

// FormatFromPath guesses the format from the file extension.
func FormatFromPath(path string) (Format, bool) {
	f, err := ParseFormat(strings.TrimPrefix(filepath.Ext(path), "."))
	return f, err == nil
}

var (
	encMode cbor.EncMode
	decMode cbor.DecMode
)

func init() {
	var err error

	// Core deterministic encoding keeps snapshots of the same level byte
	// identical. Cells go through MarshalText as a text string.
	encOptions := cbor.CoreDetEncOptions()
	encOptions.TextMarshaler = cbor.TextMarshalerTextString
	encMode, err = encOptions.EncMode()
	if err != nil {
		panic("leveldoc: CBOR encoder initialization failed: " + err.Error())
	}

	decMode, err = cbor.DecOptions{
		TextUnmarshaler: cbor.TextUnmarshalerTextString,
	}.DecMode()
	if err != nil {
		panic("leveldoc: CBOR decoder initialization failed: " + err.Error())
	}
}

// Encode writes d to w in format f.
func Encode(w io.Writer, d *Document, f Format) error {
	switch f {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(d); err != nil {
			return fmt.Errorf("encoding yaml document: %w", err)
		}
		return enc.Close()
	case FormatCBOR:
		if err := encMode.NewEncoder(w).Encode(d); err != nil {
			return fmt.Errorf("encoding cbor document: %w", err)
		}
		return nil
	}
	return fmt.Errorf("%w %q", ErrUnknownFormat, f)
}

// Decode reads one document in format f from r. YAML documents may not carry
// keys the Document type does not know.
func Decode(r io.Reader, f Format) (*Document, error) {
	d := &Document{}
	switch f {
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(d); err != nil {
			return nil, fmt.Errorf("decoding yaml document: %w", err)
		}
	case FormatCBOR:
		if err := decMode.NewDecoder(r).Decode(d); err != nil {
			return nil, fmt.Errorf("decoding cbor document: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownFormat, f)
	}
	return d, nil
}

// ReadFile decodes the document at path.
func ReadFile(path string, f Format) (*Document, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return Decode(file, f)
}

// WriteFile atomically replaces path with d.
func WriteFile(path string, d *Document, f Format) error {
	return atomicfile.Write(path, func(w io.Writer) error {
		return Encode(w, d, f)
	})
}
