package leveldata

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/logicossoftware/go-lparse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTiles(n int) []TileProperties {
	tiles := make([]TileProperties, n)
	for i := range tiles {
		t := DefaultTileProperties()
		t.AnimSpeed = int32(i + 2)
		tiles[i] = t
	}
	return tiles
}

func sampleLevel(t *testing.T) *LevelData {
	t.Helper()
	l, err := New(lparse.VersionV1)
	require.NoError(t, err)

	var hm [heightmapSize]uint8
	for i := range hm {
		hm[i] = uint8(i)
	}
	l.TileProperties = []TileProperties{
		{
			Solid:        true,
			Transparency: 2,
			Damage:       Damage{Kind: DamageLava, Amount: 5},
			AnimSpeed:    4,
			Angle:        90,
			Frames:       []Frame{{X: 1, Y: 2}, {X: 3, Y: 4}},
			Collision:    Collision{Kind: CollisionBox, Hitbox: lparse.Rect{X: 0, Y: 16, W: 32, H: 16}},
		},
		{
			Damage:    Damage{Kind: DamageIce, Friction: 0.5},
			AnimSpeed: 1,
			Frames:    []Frame{{X: 5, Y: 5}},
			Collision: Collision{Kind: CollisionHeightmap, Heightmap: hm},
		},
		{
			AnimSpeed: 1,
			Frames:    []Frame{{X: 6, Y: 0}},
			Collision: Collision{Kind: CollisionJumpthrough, Hitbox: lparse.Rect{W: 32, H: 4}},
		},
	}

	l.Cells = NewCells(8, 4)
	l.Cells.Set(0, 0, Cell{Foreground: Tile(0), Light: LightNormal})
	l.Cells.Set(7, 3, Cell{Foreground: Tile(2), Background: Tile(1), Light: LightBlack})

	l.BackgroundLayers[0] = BackgroundLayer{
		Origin:             Point{X: 10, Y: 20},
		Scroll:             Point{X: 2, Y: 2},
		Speed:              Point{X: 0.5},
		Spacing:            [2]int32{64, 0},
		Image:              BackgroundImage{Kind: ImageBitmap, Rect: lparse.Rect{X: 0, Y: 512, W: 320, H: 240}},
		Transparency:       3,
		RepeatUp:           true,
		RepeatHorizontally: true,
		Top3D:              10,
		Bottom3D:           20,
		Height3D:           30,
		Flags:              ShowOn16By9,
	}
	l.BackgroundLayers[1] = BackgroundLayer{
		Image:        BackgroundImage{Kind: ImageColor, Color: 12},
		RepeatDown:   true,
		InForeground: true,
		Flags:        ShowOn4By3 | ShowOn16By9,
	}

	l.Metadata = LevelMetadata{
		Title:      "Lava Caves",
		Subtitle:   "Part 2",
		PreviewLoc: Frame{X: 3, Y: 4},
		Difficulty: DifficultyHard,
	}
	l.Spawners = []Spawner{
		{Pos: Point{X: 64, Y: 64}, Type: PlayerSpawn{}},
		{Pos: Point{X: 128, Y: 64}, Type: TextSpawner{DialogueBox: true, Text: "Welcome!\nPress jump."}},
		{Pos: Point{X: 256, Y: 32}, Type: Teleport{Name: "Hub", Cost: 0, Loc: Point{X: 10, Y: 10}}},
	}
	return l
}

func encodePair(t *testing.T, l *LevelData) (cnmb, cnms []byte) {
	t.Helper()
	b, err := lparse.New(l.Version.Version)
	require.NoError(t, err)
	s, err := lparse.New(l.Version.Version)
	require.NoError(t, err)
	require.NoError(t, l.Save(b, s))

	var bb, sb bytes.Buffer
	require.NoError(t, lparse.Encode(&bb, b))
	require.NoError(t, lparse.Encode(&sb, s))
	return bb.Bytes(), sb.Bytes()
}

func decodePair(t *testing.T, cnmb, cnms []byte, opts ...DecodeOption) (*LevelData, error) {
	t.Helper()
	b, err := lparse.Decode(bytes.NewReader(cnmb))
	require.NoError(t, err)
	s, err := lparse.Decode(bytes.NewReader(cnms))
	require.NoError(t, err)
	return FromLParse(b, s, opts...)
}

func TestLevelRoundTrip(t *testing.T) {
	l := sampleLevel(t)
	cnmb, cnms := encodePair(t, l)

	got, err := decodePair(t, cnmb, cnms)
	require.NoError(t, err)
	assert.Equal(t, l, got)
}

func TestNewLevelRoundTrip(t *testing.T) {
	l, err := New(lparse.VersionV1)
	require.NoError(t, err)
	assert.Equal(t, 512, l.Cells.Width())
	assert.Equal(t, 256, l.Cells.Height())
	assert.Equal(t, "Untitled", l.Metadata.Title)
	assert.Len(t, l.BackgroundLayers, 32)

	cnmb, cnms := encodePair(t, l)
	got, err := decodePair(t, cnmb, cnms)
	require.NoError(t, err)
	assert.Empty(t, got.TileProperties)
	assert.Empty(t, got.Spawners)
	assert.Equal(t, l.Metadata, got.Metadata)
	assert.Equal(t, l.BackgroundLayers, got.BackgroundLayers)
}

func TestTilesAcrossPreviewSlot(t *testing.T) {
	l, err := New(lparse.VersionV1)
	require.NoError(t, err)
	l.TileProperties = sampleTiles(300)
	l.Cells = NewCells(2, 1)
	l.Cells.Set(0, 0, Cell{Foreground: Tile(255), Background: Tile(299), Light: LightNormal})
	l.Cells.Set(1, 0, Cell{Foreground: Tile(254), Light: LightNormal})

	b, err := lparse.New(lparse.VersionV1)
	require.NoError(t, err)
	s, err := lparse.New(lparse.VersionV1)
	require.NoError(t, err)
	require.NoError(t, l.Save(b, s))

	header, err := b.I32("BLOCKS_HEADER")
	require.NoError(t, err)
	assert.Equal(t, []int32{2, 1, 302}, header)
	fg, err := b.U16("BLK_LAYER0")
	require.NoError(t, err)
	assert.Equal(t, []uint16{257, 255}, fg)

	got, err := FromLParse(b, s)
	require.NoError(t, err)
	require.Len(t, got.TileProperties, 300)
	assert.Equal(t, l.TileProperties, got.TileProperties)
	assert.Equal(t, l.Cells, got.Cells)
}

func TestTrailingAirTilesDropped(t *testing.T) {
	l, err := New(lparse.VersionV1)
	require.NoError(t, err)
	l.TileProperties = append(sampleTiles(2), airTile(), airTile())

	b, err := lparse.New(lparse.VersionV1)
	require.NoError(t, err)
	s, err := lparse.New(lparse.VersionV1)
	require.NoError(t, err)
	require.NoError(t, l.Save(b, s))

	got, err := FromLParse(b, s)
	require.NoError(t, err)
	assert.Equal(t, sampleTiles(2), got.TileProperties)
}

func TestAirLikeTilesSurviveReload(t *testing.T) {
	solidBlank := airTile()
	solidBlank.Solid = true
	referencedAir := airTile()

	cases := []struct {
		name  string
		tiles []TileProperties
		cell  TileID
	}{
		{"solid tile with blank frame", append(sampleTiles(2), solidBlank), Tile(2)},
		{"air tile used by a cell", append(sampleTiles(2), referencedAir), Tile(2)},
		{"air tile past the preview slot", append(sampleTiles(299), airTile()), NoTile()},
		{"used air tile past the preview slot", append(sampleTiles(299), airTile()), Tile(299)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			l, err := New(lparse.VersionV1)
			require.NoError(t, err)
			l.TileProperties = tc.tiles
			l.Cells = NewCells(8, 8)
			l.Cells.Set(5, 5, Cell{Foreground: tc.cell, Light: LightNormal})

			cnmb, cnms := encodePair(t, l)
			got, err := decodePair(t, cnmb, cnms)
			require.NoError(t, err)
			assert.Equal(t, tc.tiles, got.TileProperties)
			assert.Equal(t, tc.cell, got.Cells.Get(5, 5).Foreground)
		})
	}
}

func TestSaveRejectsBadCells(t *testing.T) {
	cases := []struct {
		name  string
		cells *Cells
	}{
		{"empty grid", &Cells{}},
		{"unknown foreground tile", NewCells(2, 2)},
		{"unknown background tile", NewCells(2, 2)},
	}
	cases[1].cells.Set(1, 1, Cell{Foreground: Tile(3)})
	cases[2].cells.Set(0, 1, Cell{Background: Tile(0xFFFE)})

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			l := sampleLevel(t)
			l.Cells = tc.cells
			b, err := lparse.New(lparse.VersionV1)
			require.NoError(t, err)
			s, err := lparse.New(lparse.VersionV1)
			require.NoError(t, err)
			assert.ErrorIs(t, l.Save(b, s), ErrInvalidValue)
			assert.Equal(t, 0, b.Len())
			assert.Equal(t, 0, s.Len())
		})
	}
}

func TestSaveWritesNothingOnTileError(t *testing.T) {
	l := sampleLevel(t)
	l.TileProperties[2].Frames = make([]Frame, specV1.MaxTileFrames+1)
	b, err := lparse.New(lparse.VersionV1)
	require.NoError(t, err)
	s, err := lparse.New(lparse.VersionV1)
	require.NoError(t, err)

	assert.ErrorIs(t, l.Save(b, s), ErrCapacity)
	assert.Equal(t, 0, b.Len())
	assert.Equal(t, 0, s.Len(), "spawner entries written before the tile error")
}

func TestBackgroundsPaddedAndTruncated(t *testing.T) {
	l, err := New(lparse.VersionV1)
	require.NoError(t, err)
	l.BackgroundLayers = l.BackgroundLayers[:1]
	cnmb, cnms := encodePair(t, l)
	got, err := decodePair(t, cnmb, cnms)
	require.NoError(t, err)
	assert.Len(t, got.BackgroundLayers, 32)

	l.BackgroundLayers = make([]BackgroundLayer, 40)
	cnmb, cnms = encodePair(t, l)
	got, err = decodePair(t, cnmb, cnms)
	require.NoError(t, err)
	assert.Len(t, got.BackgroundLayers, 32)
}

func TestBackgroundOptionalEntries(t *testing.T) {
	l := sampleLevel(t)
	b, err := lparse.New(lparse.VersionV1)
	require.NoError(t, err)
	s, err := lparse.New(lparse.VersionV1)
	require.NoError(t, err)
	require.NoError(t, l.Save(b, s))
	b.Delete("BG_RATIO3D")
	b.Delete("BG_FLAGS")

	got, err := FromLParse(b, s)
	require.NoError(t, err)
	layer := got.BackgroundLayers[0]
	assert.Equal(t, uint32(0), layer.Top3D)
	assert.Equal(t, ShowOn4By3|ShowOn16By9, layer.Flags)
	assert.True(t, layer.RepeatHorizontally)
}

func TestFromLParseStrictAndLenient(t *testing.T) {
	l := sampleLevel(t)
	b, err := lparse.New(lparse.VersionV1)
	require.NoError(t, err)
	s, err := lparse.New(lparse.VersionV1)
	require.NoError(t, err)
	require.NoError(t, l.Save(b, s))

	types, err := s.I32("SP_TYPE")
	require.NoError(t, err)
	corrupt := append([]int32(nil), types...)
	corrupt[0] = 9999
	s.SetI32("SP_TYPE", corrupt)

	_, err = FromLParse(b, s)
	assert.ErrorIs(t, err, ErrCorrupted)

	var warnings []error
	got, err := FromLParse(b, s, WithLenient(true), WithWarningHandler(func(err error) {
		warnings = append(warnings, err)
	}))
	require.NoError(t, err)
	assert.Equal(t, Slime{}, got.Spawners[0].Type)
	require.Len(t, warnings, 1)
	assert.ErrorIs(t, warnings[0], ErrCorrupted)
}

func TestFromLParseMissingEntry(t *testing.T) {
	l := sampleLevel(t)
	b, err := lparse.New(lparse.VersionV1)
	require.NoError(t, err)
	s, err := lparse.New(lparse.VersionV1)
	require.NoError(t, err)
	require.NoError(t, l.Save(b, s))
	b.Delete("BP_FLAGS")

	_, err = FromLParse(b, s, WithLenient(true))
	assert.ErrorIs(t, err, lparse.ErrEntryNotFound)
}

func TestSaveVersionMismatch(t *testing.T) {
	l := sampleLevel(t)
	l.Version.Version = 2
	b, err := lparse.New(lparse.VersionV1)
	require.NoError(t, err)
	s, err := lparse.New(lparse.VersionV1)
	require.NoError(t, err)
	assert.ErrorIs(t, l.Save(b, s), ErrMismatchedVersions)
}

func TestSaveTooManyFrames(t *testing.T) {
	l := sampleLevel(t)
	l.TileProperties[0].Frames = make([]Frame, specV1.MaxTileFrames+1)
	b, err := lparse.New(lparse.VersionV1)
	require.NoError(t, err)
	s, err := lparse.New(lparse.VersionV1)
	require.NoError(t, err)
	assert.ErrorIs(t, l.Save(b, s), ErrCapacity)
}

func TestSaveKeepsForeignEntries(t *testing.T) {
	l := sampleLevel(t)
	b, err := lparse.New(lparse.VersionV1)
	require.NoError(t, err)
	s, err := lparse.New(lparse.VersionV1)
	require.NoError(t, err)
	b.SetI32("EDITOR_STATE", []int32{7})
	require.NoError(t, l.Save(b, s))

	v, err := b.I32("EDITOR_STATE")
	require.NoError(t, err)
	assert.Equal(t, []int32{7}, v)
}

func TestLevelFiles(t *testing.T) {
	dir := t.TempDir()
	cnmb := filepath.Join(dir, "level.cnmb")
	cnms := filepath.Join(dir, "level.cnms")

	l := sampleLevel(t)
	require.NoError(t, l.SaveFiles(cnmb, cnms))

	got, err := LoadFiles(cnmb, cnms)
	require.NoError(t, err)
	assert.Equal(t, l, got)

	_, err = LoadFiles(filepath.Join(dir, "missing.cnmb"), cnms)
	assert.Error(t, err)
}

func TestMetadataTitleSplit(t *testing.T) {
	tb := &tables{text: make([]string, specV1.EndingTextLines)}
	tb.text[specV1.TitleEndingTextLine] = `Main\Sub`
	m := loadMetadata(tb, specV1, nil)
	assert.Equal(t, "Main", m.Title)
	assert.Equal(t, "Sub", m.Subtitle)
	assert.Equal(t, DifficultyNormal, m.Difficulty)

	preview := LevelMetadata{Difficulty: Difficulty(42)}.previewTile()
	m = loadMetadata(tb, specV1, &preview)
	assert.Equal(t, DifficultyNormal, m.Difficulty)

	assert.Equal(t, "ULTRA DEATH!", DifficultyUltraDeath.String())
}
