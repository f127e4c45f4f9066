package leveldoc

import (
	"errors"
	"fmt"

	"github.com/logicossoftware/go-lparse/leveldata"
)

var (
	ErrUnknownKind     = errors.New("leveldoc: unknown world object kind")
	ErrInvalidDocument = errors.New("leveldoc: invalid document")
	ErrUnknownFormat   = errors.New("leveldoc: unknown document format")
)

// Document is a self-describing snapshot of a level, suitable for diffing,
// hand editing and version control. Cells are stored in their text form.
type Document struct {
	Version          uint32                      `yaml:"version" cbor:"version"`
	Metadata         leveldata.LevelMetadata     `yaml:"metadata" cbor:"metadata"`
	Cells            *leveldata.Cells            `yaml:"cells" cbor:"cells"`
	TileProperties   []leveldata.TileProperties  `yaml:"tile_properties" cbor:"tile_properties"`
	BackgroundLayers []leveldata.BackgroundLayer `yaml:"background_layers" cbor:"background_layers"`
	Spawners         []Spawner                   `yaml:"spawners" cbor:"spawners"`
}

// Spawner mirrors leveldata.Spawner with its world object tagged by kind.
type Spawner struct {
	Pos         leveldata.Point            `yaml:"pos" cbor:"pos"`
	Object      Wobj                       `yaml:"object" cbor:"object"`
	Criteria    leveldata.SpawningCriteria `yaml:"criteria" cbor:"criteria"`
	DroppedItem *leveldata.ItemType        `yaml:"dropped_item,omitempty" cbor:"dropped_item,omitempty"`
	Group       *uint8                     `yaml:"group,omitempty" cbor:"group,omitempty"`
}

// FromLevel snapshots l. The document shares cells and slices with l.
func FromLevel(l *leveldata.LevelData) *Document {
	d := &Document{
		Version:          l.Version.Version,
		Metadata:         l.Metadata,
		Cells:            l.Cells,
		TileProperties:   l.TileProperties,
		BackgroundLayers: l.BackgroundLayers,
		Spawners:         make([]Spawner, len(l.Spawners)),
	}
	for i, s := range l.Spawners {
		d.Spawners[i] = Spawner{
			Pos:         s.Pos,
			Object:      Wobj{Type: s.Type},
			Criteria:    s.Criteria,
			DroppedItem: s.DroppedItem,
			Group:       s.Group,
		}
	}
	return d
}

// Level rebuilds the level the document describes. It does not check that the
// level fits the binary format; LevelData.Save does that.
func (d *Document) Level() (*leveldata.LevelData, error) {
	v, err := leveldata.SpecFor(d.Version)
	if err != nil {
		return nil, err
	}
	if d.Cells == nil {
		return nil, fmt.Errorf("%w: no cells", ErrInvalidDocument)
	}
	l := &leveldata.LevelData{
		Version:          v,
		Cells:            d.Cells,
		TileProperties:   d.TileProperties,
		Metadata:         d.Metadata,
		BackgroundLayers: d.BackgroundLayers,
		Spawners:         make([]leveldata.Spawner, len(d.Spawners)),
	}
	for i, s := range d.Spawners {
		if s.Object.Type == nil {
			return nil, fmt.Errorf("%w: spawner %d has no object", ErrInvalidDocument, i)
		}
		l.Spawners[i] = leveldata.Spawner{
			Pos:         s.Pos,
			Type:        s.Object.Type,
			Criteria:    s.Criteria,
			DroppedItem: s.DroppedItem,
			Group:       s.Group,
		}
	}
	return l, nil
}
