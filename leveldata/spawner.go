package leveldata

import (
	"fmt"
	"math"

	"github.com/logicossoftware/go-lparse"
)

// SpawnerMode is the game context a spawner is active in.
type SpawnerMode uint8

const (
	SpawnMultiAndSingleplayer SpawnerMode = iota
	SpawnSingleplayerOnly
	SpawnMultiplayerOnly
	SpawnPlayerCountBased
	SpawnNever
)

// The mode lives in the top byte of SP_DITEM, above the dropped item id.
const (
	ditemItemMask  = 0x00ff_ffff
	ditemModeShift = 24
)

var spawnerModeBytes = [...]uint32{
	SpawnMultiAndSingleplayer: 0x00,
	SpawnSingleplayerOnly:     0x10,
	SpawnMultiplayerOnly:      0x20,
	SpawnPlayerCountBased:     0x30,
	SpawnNever:                0x04,
}

func spawnerModeFromDitem(ditem uint32) (SpawnerMode, bool) {
	b := ditem >> ditemModeShift
	for m, mb := range spawnerModeBytes {
		if mb == b {
			return SpawnerMode(m), true
		}
	}
	return 0, false
}

// SpawningCriteria controls when a spawner creates its object.
type SpawningCriteria struct {
	SpawnDelaySecs      float32
	Mode                SpawnerMode
	MaxConcurrentSpawns uint32
}

// Spawner places one kind of world object in the level.
type Spawner struct {
	Pos      Point
	Type     WobjType
	Criteria SpawningCriteria
	// DroppedItem is what the object drops when destroyed; nil for nothing.
	DroppedItem *ItemType
	// Group links spawners that respawn together; nil for none.
	Group *uint8
}

const noSpawnerGroup = 0xff

type spawnerArrays struct {
	pos      []float32
	typ      []int32
	duration []int32
	max      []int32
	ci       []int32
	cf       []float32
	ditem    []uint32
	group    []uint8
}

func loadSpawners(cnms *lparse.Container, t *tables, cfg *decodeConfig) ([]Spawner, error) {
	var a spawnerArrays
	var err error
	if a.pos, err = cnms.F32("SP_POS"); err != nil {
		return nil, err
	}
	if a.typ, err = cnms.I32("SP_TYPE"); err != nil {
		return nil, err
	}
	if a.duration, err = cnms.I32("SP_DURATION"); err != nil {
		return nil, err
	}
	if a.max, err = cnms.I32("SP_MAX"); err != nil {
		return nil, err
	}
	if a.ci, err = cnms.I32("SP_CI"); err != nil {
		return nil, err
	}
	if a.cf, err = cnms.F32("SP_CF"); err != nil {
		return nil, err
	}
	if a.ditem, err = cnms.U32("SP_DITEM"); err != nil {
		return nil, err
	}
	if cnms.Has("SP_GROUP") {
		if a.group, err = cnms.U8("SP_GROUP"); err != nil {
			return nil, err
		}
	}
	header, err := cnms.I32("NUM_SPAWNERS")
	if err != nil {
		return nil, err
	}
	if len(header) < 1 {
		return nil, corrupted("NUM_SPAWNERS is empty")
	}

	n := int(header[0])
	if n < 0 || len(a.pos) < 2*n || len(a.typ) < n || len(a.duration) < n || len(a.max) < n ||
		len(a.ci) < n || len(a.cf) < n || len(a.ditem) < n {
		return nil, corrupted("NUM_SPAWNERS is %d but spawner arrays are shorter", n)
	}

	spawners := make([]Spawner, n)
	for i := range spawners {
		s, err := a.spawner(i, t, cfg)
		if err != nil {
			return nil, fmt.Errorf("spawner %d: %w", i, err)
		}
		spawners[i] = s
	}
	return spawners, nil
}

func (a *spawnerArrays) spawner(i int, t *tables, cfg *decodeConfig) (Spawner, error) {
	w, err := decodeWobj(a.typ[i], a.ci[i], a.cf[i], t, cfg)
	if err != nil {
		return Spawner{}, err
	}
	s := Spawner{
		Pos:  Point{a.pos[2*i], a.pos[2*i+1]},
		Type: w,
		Criteria: SpawningCriteria{
			SpawnDelaySecs:      float32(a.duration[i]) / FrameRate,
			MaxConcurrentSpawns: uint32(a.max[i]),
		},
	}

	ditem := a.ditem[i]
	mode, ok := spawnerModeFromDitem(ditem)
	if !ok {
		if err := cfg.recover(corrupted("spawn mode byte %#x", ditem>>ditemModeShift)); err != nil {
			return Spawner{}, err
		}
	}
	s.Criteria.Mode = mode

	if id := ditem & ditemItemMask; id != 0 {
		item, ok := ItemTypeFromID(id)
		if ok {
			s.DroppedItem = &item
		} else if err := cfg.recover(corrupted("dropped item id %d", id)); err != nil {
			return Spawner{}, err
		}
	}

	if i < len(a.group) && a.group[i] != noSpawnerGroup {
		g := a.group[i]
		s.Group = &g
	}
	return s, nil
}

func (a *spawnerArrays) append(s Spawner, b *tableBuilder) error {
	id, ci, cf, err := encodeWobj(s.Type, b, s.Pos)
	if err != nil {
		return err
	}
	if int(s.Criteria.Mode) >= len(spawnerModeBytes) {
		return invalidValue("spawner mode %d", s.Criteria.Mode)
	}
	ditem := spawnerModeBytes[s.Criteria.Mode] << ditemModeShift
	if s.DroppedItem != nil {
		if *s.DroppedItem >= numItemTypes {
			return invalidValue("dropped item %d", *s.DroppedItem)
		}
		ditem |= s.DroppedItem.ID()
	}
	group := uint8(noSpawnerGroup)
	if s.Group != nil {
		group = *s.Group
	}

	a.pos = append(a.pos, s.Pos.X, s.Pos.Y)
	a.typ = append(a.typ, id)
	a.duration = append(a.duration, int32(math.Round(float64(s.Criteria.SpawnDelaySecs*FrameRate))))
	a.max = append(a.max, int32(s.Criteria.MaxConcurrentSpawns))
	a.ci = append(a.ci, ci)
	a.cf = append(a.cf, cf)
	a.ditem = append(a.ditem, ditem)
	a.group = append(a.group, group)
	return nil
}

// encodedSpawners is a spawner table ready to be stored.
type encodedSpawners struct {
	arrays spawnerArrays
	tables *tableBuilder
	title  string
	count  int
}

// encodeSpawners encodes spawners and the tables they reference without
// touching any container.
func encodeSpawners(v VersionSpec, title string, spawners []Spawner) (*encodedSpawners, error) {
	if len(title) > v.EndingTextLineLen {
		return nil, invalidValue("title %q longer than %d bytes", title, v.EndingTextLineLen)
	}
	e := &encodedSpawners{tables: newTableBuilder(v), title: title, count: len(spawners)}
	for i, s := range spawners {
		if err := e.arrays.append(s, e.tables); err != nil {
			return nil, fmt.Errorf("spawner %d: %w", i, err)
		}
	}
	return e, nil
}

func (e *encodedSpawners) store(cnms *lparse.Container) {
	e.tables.store(cnms, e.title)
	a := &e.arrays
	cnms.SetF32("SP_POS", a.pos)
	cnms.SetI32("SP_TYPE", a.typ)
	cnms.SetI32("SP_DURATION", a.duration)
	cnms.SetI32("SP_MAX", a.max)
	cnms.SetI32("SP_CI", a.ci)
	cnms.SetF32("SP_CF", a.cf)
	cnms.SetU32("SP_DITEM", a.ditem)
	cnms.SetU8("SP_GROUP", a.group)
	cnms.SetI32("NUM_SPAWNERS", []int32{int32(e.count)})
}

// saveSpawners writes the spawner arrays and the tables they reference.
// Nothing is written when a spawner fails to encode.
func saveSpawners(cnms *lparse.Container, v VersionSpec, title string, spawners []Spawner) error {
	e, err := encodeSpawners(v, title, spawners)
	if err != nil {
		return err
	}
	e.store(cnms)
	return nil
}
