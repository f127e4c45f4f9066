package leveldoc

import (
	"fmt"
	"reflect"

	"github.com/fxamacker/cbor/v2"
	"gopkg.in/yaml.v3"

	"github.com/logicossoftware/go-lparse/leveldata"
)

// Wobj wraps a world object so it serializes as {kind, params}, where kind is
// the variant's type name and params its fields.
type Wobj struct {
	Type leveldata.WobjType
}

var wobjKinds = func() map[string]reflect.Type {
	m := make(map[string]reflect.Type)
	for _, k := range leveldata.WobjKinds() {
		t := reflect.TypeOf(k)
		m[t.Name()] = t
	}
	return m
}()

// Kind returns the kind name w serializes under.
func (w Wobj) Kind() (string, error) {
	if w.Type == nil {
		return "", fmt.Errorf("%w: nil world object", ErrInvalidDocument)
	}
	t := reflect.TypeOf(w.Type)
	if wobjKinds[t.Name()] != t {
		return "", fmt.Errorf("%w: %s", ErrUnknownKind, t)
	}
	return t.Name(), nil
}

func newWobj(kind string) (reflect.Value, error) {
	t, ok := wobjKinds[kind]
	if !ok {
		return reflect.Value{}, fmt.Errorf("%w %q", ErrUnknownKind, kind)
	}
	return reflect.New(t), nil
}

type wobjYAML struct {
	Kind   string `yaml:"kind"`
	Params any    `yaml:"params,omitempty"`
}

func (w Wobj) MarshalYAML() (any, error) {
	kind, err := w.Kind()
	if err != nil {
		return nil, err
	}
	return wobjYAML{Kind: kind, Params: w.Type}, nil
}

func (w *Wobj) UnmarshalYAML(node *yaml.Node) error {
	var raw struct {
		Kind   string    `yaml:"kind"`
		Params yaml.Node `yaml:"params"`
	}
	if err := node.Decode(&raw); err != nil {
		return err
	}
	p, err := newWobj(raw.Kind)
	if err != nil {
		return err
	}
	if raw.Params.Kind != 0 {
		if err := raw.Params.Decode(p.Interface()); err != nil {
			return fmt.Errorf("%s params: %w", raw.Kind, err)
		}
	}
	w.Type = p.Elem().Interface().(leveldata.WobjType)
	return nil
}

type wobjCBOR struct {
	Kind   string `cbor:"kind"`
	Params any    `cbor:"params"`
}

func (w Wobj) MarshalCBOR() ([]byte, error) {
	kind, err := w.Kind()
	if err != nil {
		return nil, err
	}
	return encMode.Marshal(wobjCBOR{Kind: kind, Params: w.Type})
}

func (w *Wobj) UnmarshalCBOR(data []byte) error {
	var raw struct {
		Kind   string          `cbor:"kind"`
		Params cbor.RawMessage `cbor:"params"`
	}
	if err := decMode.Unmarshal(data, &raw); err != nil {
		return err
	}
	p, err := newWobj(raw.Kind)
	if err != nil {
		return err
	}
	if len(raw.Params) > 0 {
		if err := decMode.Unmarshal(raw.Params, p.Interface()); err != nil {
			return fmt.Errorf("%s params: %w", raw.Kind, err)
		}
	}
	w.Type = p.Elem().Interface().(leveldata.WobjType)
	return nil
}
