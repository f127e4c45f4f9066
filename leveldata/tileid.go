package leveldata

import "strconv"

// TileID is an optional index into LevelData.TileProperties.
//
// The zero value is "no tile". Compare with ==.
type TileID struct {
	id uint16
	ok bool
}

// NoTile returns the empty TileID.
func NoTile() TileID { return TileID{} }

// Tile returns a TileID referring to tile properties index id.
func Tile(id uint16) TileID { return TileID{id: id, ok: true} }

// Get returns the index and whether the id refers to a tile.
func (t TileID) Get() (uint16, bool) { return t.id, t.ok }

func (t TileID) IsSome() bool { return t.ok }

func (t TileID) String() string {
	if !t.ok {
		return "none"
	}
	return strconv.Itoa(int(t.id))
}

// TileIDFromRaw maps an on-disk block id to a TileID. Raw 0 is air. Raw ids
// above the reserved preview slot skip it.
func TileIDFromRaw(raw uint16, v VersionSpec) TileID {
	if raw == 0 {
		return NoTile()
	}
	if int(raw) > v.PreviewTileIndex {
		return Tile(raw - 2)
	}
	return Tile(raw - 1)
}

// Raw maps t back to its on-disk block id. Raw ids never land on the preview
// slot. Ids too large for the raw range saturate at 0xFFFF; saving a level
// rejects them instead.
func (t TileID) Raw(v VersionSpec) uint16 {
	raw, _ := t.raw(v)
	return raw
}

// raw is Raw that reports whether the id fits the raw range.
func (t TileID) raw(v VersionSpec) (uint16, bool) {
	if !t.ok {
		return 0, true
	}
	raw := int(t.id) + 1
	if raw >= v.PreviewTileIndex {
		raw++
	}
	if raw > 0xFFFF {
		return 0xFFFF, false
	}
	return uint16(raw), true
}
