package leveldata

import (
	"fmt"
	"math"
	"slices"

	"github.com/logicossoftware/go-lparse"
)

// Frame is a tile position in the shared bitmap, in tile units.
type Frame struct {
	X, Y int32
}

type DamageKind uint8

const (
	DamageNone DamageKind = iota
	DamageLava
	DamageSpikes
	DamageQuicksand
	DamageIce
)

// Damage is what touching a tile does. Amount applies to lava, spikes and
// quicksand; Friction to ice.
type Damage struct {
	Kind     DamageKind
	Amount   int32
	Friction float32
}

type CollisionKind uint8

const (
	CollisionBox         CollisionKind = 0
	CollisionHeightmap   CollisionKind = 1
	CollisionJumpthrough CollisionKind = 2
)

// Collision is the shape of a tile. Hitbox is used by box and jump-through
// shapes; Heightmap by heightmap shapes.
type Collision struct {
	Kind      CollisionKind
	Hitbox    lparse.Rect
	Heightmap [heightmapSize]uint8
}

// TileProperties describes one entry of the level's tile table.
type TileProperties struct {
	Solid        bool
	Transparency uint8
	Damage       Damage
	// AnimSpeed is the number of game frames each animation frame shows for.
	AnimSpeed int32
	Angle     uint16
	Frames    []Frame
	Collision Collision
}

// DefaultTileProperties is a non-solid full-box tile showing bitmap tile (1, 0).
func DefaultTileProperties() TileProperties {
	return TileProperties{
		AnimSpeed: 1,
		Frames:    []Frame{{X: 1, Y: 0}},
		Collision: Collision{Kind: CollisionBox, Hitbox: lparse.Rect{W: TileSize, H: TileSize}},
	}
}

// airTile fills raw slot 0 and the unused slots below the preview slot.
func airTile() TileProperties {
	t := DefaultTileProperties()
	t.Frames = []Frame{{}}
	return t
}

// equal reports whether t and o match in every field.
func (t TileProperties) equal(o TileProperties) bool {
	return t.Solid == o.Solid &&
		t.Transparency == o.Transparency &&
		t.Damage == o.Damage &&
		t.AnimSpeed == o.AnimSpeed &&
		t.Angle == o.Angle &&
		slices.Equal(t.Frames, o.Frames) &&
		t.Collision == o.Collision
}

// tileArrays holds the eleven parallel BP_* arrays.
type tileArrays struct {
	flags     []uint32
	trans     []int32
	dmgType   []int32
	dmg       []int32
	animSpeed []int32
	numFrames []int32
	framesX   []int32
	framesY   []int32
	heightmap []uint8
	hitbox    []lparse.Rect
	collType  []int32
}

func readTileArrays(cnmb *lparse.Container) (*tileArrays, error) {
	var a tileArrays
	var err error
	if a.flags, err = cnmb.U32("BP_FLAGS"); err != nil {
		return nil, err
	}
	if a.trans, err = cnmb.I32("BP_TRANS"); err != nil {
		return nil, err
	}
	if a.dmgType, err = cnmb.I32("BP_DMG_TYPE"); err != nil {
		return nil, err
	}
	if a.dmg, err = cnmb.I32("BP_DMG"); err != nil {
		return nil, err
	}
	if a.animSpeed, err = cnmb.I32("BP_ANIM_SPEED"); err != nil {
		return nil, err
	}
	if a.numFrames, err = cnmb.I32("BP_NUM_FRAMES"); err != nil {
		return nil, err
	}
	if a.framesX, err = cnmb.I32("BP_FRAMESX"); err != nil {
		return nil, err
	}
	if a.framesY, err = cnmb.I32("BP_FRAMESY"); err != nil {
		return nil, err
	}
	if a.heightmap, err = cnmb.U8("BP_HEIGHTMAP"); err != nil {
		return nil, err
	}
	if a.hitbox, err = cnmb.Rects("BP_HITBOX"); err != nil {
		return nil, err
	}
	if a.collType, err = cnmb.I32("BP_COLLTYPE"); err != nil {
		return nil, err
	}
	return &a, nil
}

// slots is the number of complete tile records in a.
func (a *tileArrays) slots(v VersionSpec) int {
	n := min(len(a.flags), len(a.trans), len(a.dmgType), len(a.dmg), len(a.animSpeed),
		len(a.numFrames), len(a.hitbox), len(a.collType))
	n = min(n, len(a.framesX)/v.MaxTileFrames, len(a.framesY)/v.MaxTileFrames)
	return min(n, len(a.heightmap)/heightmapSize)
}

func (a *tileArrays) tile(i int, v VersionSpec, cfg *decodeConfig) (TileProperties, error) {
	t := TileProperties{
		Solid:     a.flags[i]&1 != 0,
		AnimSpeed: a.animSpeed[i],
	}

	switch tr := a.trans[i]; {
	case tr >= int32(LightWhite) && tr <= int32(LightBlack):
		t.Transparency = uint8(tr)
	default:
		if err := cfg.recover(fmt.Errorf("%w: tile %d transparency %d", ErrCorrupted, i, tr)); err != nil {
			return t, err
		}
		t.Transparency = uint8(min(max(tr, 0), int32(LightBlack)))
	}

	switch kind, amount := a.dmgType[i], a.dmg[i]; kind {
	case int32(DamageNone):
	case int32(DamageLava), int32(DamageSpikes), int32(DamageQuicksand):
		t.Damage = Damage{Kind: DamageKind(kind), Amount: amount}
	case int32(DamageIce):
		t.Damage = Damage{Kind: DamageIce, Friction: float32(amount) / 100}
	default:
		if err := cfg.recover(fmt.Errorf("%w: tile %d damage type %d", ErrCorrupted, i, kind)); err != nil {
			return t, err
		}
	}

	packed := uint32(a.numFrames[i])
	count := int(packed & 0xff)
	if count > v.MaxTileFrames {
		if err := cfg.recover(fmt.Errorf("%w: tile %d has %d frames", ErrCorrupted, i, count)); err != nil {
			return t, err
		}
		count = v.MaxTileFrames
	}
	t.Angle = uint16(packed >> 8)
	t.Frames = make([]Frame, count)
	for f := range t.Frames {
		t.Frames[f] = Frame{X: a.framesX[i*v.MaxTileFrames+f], Y: a.framesY[i*v.MaxTileFrames+f]}
	}

	switch a.collType[i] {
	case int32(CollisionBox), int32(CollisionJumpthrough):
		t.Collision = Collision{Kind: CollisionKind(a.collType[i]), Hitbox: a.hitbox[i]}
	case int32(CollisionHeightmap):
		t.Collision.Kind = CollisionHeightmap
		copy(t.Collision.Heightmap[:], a.heightmap[i*heightmapSize:])
	default:
		if err := cfg.recover(fmt.Errorf("%w: tile %d collision type %d", ErrCorrupted, i, a.collType[i])); err != nil {
			return t, err
		}
		t.Collision = Collision{Kind: CollisionBox, Hitbox: lparse.Rect{W: TileSize, H: TileSize}}
	}
	return t, nil
}

func (a *tileArrays) append(t TileProperties, v VersionSpec) error {
	if len(t.Frames) > v.MaxTileFrames {
		return fmt.Errorf("%w: tile has %d frames, at most %d", ErrCapacity, len(t.Frames), v.MaxTileFrames)
	}
	var solid uint32
	if t.Solid {
		solid = 1
	}
	a.flags = append(a.flags, solid)
	a.trans = append(a.trans, int32(t.Transparency))

	var amount int32
	switch t.Damage.Kind {
	case DamageIce:
		amount = int32(math.Round(float64(t.Damage.Friction) * 100))
	case DamageNone:
	default:
		amount = t.Damage.Amount
	}
	a.dmgType = append(a.dmgType, int32(t.Damage.Kind))
	a.dmg = append(a.dmg, amount)
	a.animSpeed = append(a.animSpeed, t.AnimSpeed)
	a.numFrames = append(a.numFrames, int32(uint32(len(t.Frames))&0xff|uint32(t.Angle)<<8))

	for f := 0; f < v.MaxTileFrames; f++ {
		var fr Frame
		if f < len(t.Frames) {
			fr = t.Frames[f]
		}
		a.framesX = append(a.framesX, fr.X)
		a.framesY = append(a.framesY, fr.Y)
	}

	a.collType = append(a.collType, int32(t.Collision.Kind))
	switch t.Collision.Kind {
	case CollisionHeightmap:
		a.hitbox = append(a.hitbox, lparse.Rect{})
		a.heightmap = append(a.heightmap, t.Collision.Heightmap[:]...)
	default:
		a.hitbox = append(a.hitbox, t.Collision.Hitbox)
		a.heightmap = append(a.heightmap, make([]uint8, heightmapSize)...)
	}
	return nil
}

func (a *tileArrays) store(cnmb *lparse.Container) {
	cnmb.SetU32("BP_FLAGS", a.flags)
	cnmb.SetI32("BP_TRANS", a.trans)
	cnmb.SetI32("BP_DMG_TYPE", a.dmgType)
	cnmb.SetI32("BP_DMG", a.dmg)
	cnmb.SetI32("BP_ANIM_SPEED", a.animSpeed)
	cnmb.SetI32("BP_NUM_FRAMES", a.numFrames)
	cnmb.SetI32("BP_FRAMESX", a.framesX)
	cnmb.SetI32("BP_FRAMESY", a.framesY)
	cnmb.SetU8("BP_HEIGHTMAP", a.heightmap)
	cnmb.SetRects("BP_HITBOX", a.hitbox)
	cnmb.SetI32("BP_COLLTYPE", a.collType)
}

// tileSlots is the number of raw tile slots needed for numTiles editable
// tiles: slot 0, the preview slot and one slot per tile.
func tileSlots(numTiles int, v VersionSpec) int {
	last := 0
	if numTiles > 0 {
		last = int(Tile(uint16(numTiles - 1)).Raw(v))
	}
	return max(last, v.PreviewTileIndex) + 1
}

// loadTiles reads the tile table and the preview slot's tile. Slot 0 and
// the preview slot are not part of the table. padded reports whether the
// table ends at the preview slot, in which case trailing slots may be the
// air filler encodeTiles writes; trimPadding removes them once the cells are
// known.
func loadTiles(cnmb *lparse.Container, v VersionSpec, cfg *decodeConfig) (tiles []TileProperties, preview *TileProperties, padded bool, err error) {
	header, err := blocksHeader(cnmb)
	if err != nil {
		return nil, nil, false, err
	}
	a, err := readTileArrays(cnmb)
	if err != nil {
		return nil, nil, false, err
	}
	n := int(header[2])
	if n < 0 || n > a.slots(v) {
		return nil, nil, false, fmt.Errorf("%w: BLOCKS_HEADER lists %d tiles, arrays hold %d", ErrCorrupted, n, a.slots(v))
	}

	for raw := 1; raw < n; raw++ {
		t, err := a.tile(raw, v, cfg)
		if err != nil {
			return nil, nil, false, err
		}
		if raw == v.PreviewTileIndex {
			preview = &t
			continue
		}
		tiles = append(tiles, t)
	}
	return tiles, preview, n <= v.PreviewTileIndex+1, nil
}

// trimPadding drops trailing air filler below the preview slot. Tiles up to
// the highest id referenced by cells are always kept.
func trimPadding(tiles []TileProperties, padded bool, cells *Cells) []TileProperties {
	if !padded {
		return tiles
	}
	keep := cells.maxTileID() + 1
	air := airTile()
	for len(tiles) > keep && tiles[len(tiles)-1].equal(air) {
		tiles = tiles[:len(tiles)-1]
	}
	return tiles
}

// encodeTiles builds the BP_* arrays for the table with the preview tile in
// its reserved slot and returns them with the slot count.
func encodeTiles(v VersionSpec, tiles []TileProperties, preview TileProperties) (*tileArrays, int, error) {
	if len(tiles) > 0xFFFF-2 {
		return nil, 0, fmt.Errorf("%w: %d tiles", ErrCapacity, len(tiles))
	}
	slots := tileSlots(len(tiles), v)
	a := &tileArrays{}
	air := airTile()
	for raw := 0; raw < slots; raw++ {
		t := air
		switch {
		case raw == v.PreviewTileIndex:
			t = preview
		case raw > 0:
			if id, _ := TileIDFromRaw(uint16(raw), v).Get(); int(id) < len(tiles) {
				t = tiles[id]
			}
		}
		if err := a.append(t, v); err != nil {
			return nil, 0, fmt.Errorf("tile slot %d: %w", raw, err)
		}
	}
	return a, slots, nil
}
