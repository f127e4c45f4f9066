package leveldoc

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/logicossoftware/go-lparse"
	"github.com/logicossoftware/go-lparse/leveldata"
)

func ptr[T any](v T) *T { return &v }

func sampleLevel(t *testing.T) *leveldata.LevelData {
	t.Helper()
	l, err := leveldata.New(lparse.VersionV1)
	require.NoError(t, err)

	l.Cells = leveldata.NewCells(4, 3)
	l.Cells.Set(1, 1, leveldata.Cell{Foreground: leveldata.Tile(0), Background: leveldata.Tile(1), Light: leveldata.LightBlack})
	l.Cells.Set(3, 2, leveldata.Cell{Foreground: leveldata.Tile(1), Background: leveldata.NoTile(), Light: leveldata.LightWhite})

	slope := leveldata.TileProperties{
		Solid:        true,
		Transparency: 2,
		Damage:       leveldata.Damage{Kind: leveldata.DamageIce, Friction: 0.5},
		AnimSpeed:    4,
		Angle:        45,
		Frames:       []leveldata.Frame{{X: 2, Y: 3}, {X: 3, Y: 3}},
		Collision:    leveldata.Collision{Kind: leveldata.CollisionHeightmap},
	}
	for i := range slope.Collision.Heightmap {
		slope.Collision.Heightmap[i] = uint8(i)
	}
	l.TileProperties = []leveldata.TileProperties{leveldata.DefaultTileProperties(), slope}

	l.Metadata = leveldata.LevelMetadata{
		Title:      "Caves",
		Subtitle:   "Part 2",
		PreviewLoc: leveldata.Frame{X: 5, Y: 6},
		Difficulty: leveldata.DifficultyHard,
	}

	l.BackgroundLayers[0].Image = leveldata.BackgroundImage{Kind: leveldata.ImageColor, Color: 9}
	l.BackgroundLayers[1].Image = leveldata.BackgroundImage{Kind: leveldata.ImageBitmap, Rect: lparse.Rect{X: 0, Y: 256, W: 512, H: 256}}
	l.BackgroundLayers[1].Scroll = leveldata.Point{X: 2, Y: 4}
	l.BackgroundLayers[1].RepeatHorizontally = true

	l.Spawners = []leveldata.Spawner{
		{Pos: leveldata.Point{X: 64, Y: 128}, Type: leveldata.PlayerSpawn{}},
		{Pos: leveldata.Point{X: 10, Y: 20}, Type: leveldata.TextSpawner{Text: "Welcome!\nPress Z to jump"}},
		{
			Pos:  leveldata.Point{X: 300, Y: 40},
			Type: leveldata.BreakableWall{SkinID: ptr[uint8](2), Health: 30},
			Criteria: leveldata.SpawningCriteria{
				SpawnDelaySecs:      1.5,
				Mode:                leveldata.SpawnPlayerCountBased,
				MaxConcurrentSpawns: 2,
			},
			DroppedItem: ptr(leveldata.ItemKnife),
			Group:       ptr[uint8](3),
		},
		{Pos: leveldata.Point{X: 1, Y: 2}, Type: leveldata.CustomizableMovingPlatform{
			BitmapX: 3, BitmapY: 40, TargetRelative: leveldata.Point{X: 64}, Speed: 2, Type: leveldata.PlatformOneWay,
		}},
	}
	return l
}

func TestDocumentRoundTrip(t *testing.T) {
	for _, f := range []Format{FormatYAML, FormatCBOR} {
		t.Run(string(f), func(t *testing.T) {
			want := sampleLevel(t)

			var buf bytes.Buffer
			require.NoError(t, Encode(&buf, FromLevel(want), f))
			doc, err := Decode(&buf, f)
			require.NoError(t, err)

			got, err := doc.Level()
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestEveryKindRoundTrips(t *testing.T) {
	kinds := leveldata.WobjKinds()
	kinds = append(kinds,
		leveldata.Teleport{Name: "Castle", Cost: 100, Loc: leveldata.Point{X: 5, Y: 6}},
		leveldata.MovingFire{Vertical: true, Dist: 100, Speed: 3, Despawn: true},
		leveldata.UpgradeTrigger{Kind: leveldata.UpgradeMaxPowerRune, SkinOverride: ptr[uint8](0)},
	)
	doc := &Document{Version: lparse.VersionV1, Cells: leveldata.NewCells(1, 1)}
	for _, k := range kinds {
		doc.Spawners = append(doc.Spawners, Spawner{Object: Wobj{Type: k}})
	}

	for _, f := range []Format{FormatYAML, FormatCBOR} {
		t.Run(string(f), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Encode(&buf, doc, f))
			got, err := Decode(&buf, f)
			require.NoError(t, err)
			require.Len(t, got.Spawners, len(kinds))
			for i, k := range kinds {
				assert.Equal(t, k, got.Spawners[i].Object.Type, "%T", k)
			}
		})
	}
}

func TestYAMLShape(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, FromLevel(sampleLevel(t)), FormatYAML))
	text := buf.String()
	assert.Contains(t, text, "kind: TextSpawner")
	assert.Contains(t, text, "kind: PlayerSpawn")
	assert.Contains(t, text, "tile_properties:")
	assert.Contains(t, text, "title: Caves")
}

func TestCBORDeterministic(t *testing.T) {
	doc := FromLevel(sampleLevel(t))
	var a, b bytes.Buffer
	require.NoError(t, Encode(&a, doc, FormatCBOR))
	require.NoError(t, Encode(&b, doc, FormatCBOR))
	assert.Equal(t, a.Bytes(), b.Bytes())
}

func TestDecodeUnknownKind(t *testing.T) {
	text := `version: 1
cells: AAAAAQAAAAEAAAAAAw==
spawners:
  - object:
      kind: Unicorn
      params: {}
`
	_, err := Decode(strings.NewReader(text), FormatYAML)
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestDecodeRejectsUnknownFields(t *testing.T) {
	_, err := Decode(strings.NewReader("version: 1\ncolour: red\n"), FormatYAML)
	assert.Error(t, err)
}

func TestDecodeYAMLWithoutParams(t *testing.T) {
	text := `version: 1
cells: AAAAAQAAAAEAAAAAAw==
spawners:
  - pos: {x: 3, y: 4}
    object:
      kind: Checkpoint
`
	doc, err := Decode(strings.NewReader(text), FormatYAML)
	require.NoError(t, err)
	l, err := doc.Level()
	require.NoError(t, err)
	require.Len(t, l.Spawners, 1)
	assert.Equal(t, leveldata.Checkpoint{}, l.Spawners[0].Type)
	assert.Equal(t, leveldata.Point{X: 3, Y: 4}, l.Spawners[0].Pos)
	assert.Equal(t, 1, l.Cells.Width())
}

func TestEncodeNilObject(t *testing.T) {
	doc := &Document{Version: lparse.VersionV1, Cells: leveldata.NewCells(1, 1), Spawners: []Spawner{{}}}
	for _, f := range []Format{FormatYAML, FormatCBOR} {
		err := Encode(&bytes.Buffer{}, doc, f)
		assert.ErrorIs(t, err, ErrInvalidDocument, string(f))
	}
}

func TestLevelValidation(t *testing.T) {
	_, err := (&Document{Version: lparse.VersionV1}).Level()
	assert.ErrorIs(t, err, ErrInvalidDocument)

	_, err = (&Document{Version: 7, Cells: leveldata.NewCells(1, 1)}).Level()
	assert.ErrorIs(t, err, lparse.ErrUnsupportedVersion)

	doc := &Document{Version: lparse.VersionV1, Cells: leveldata.NewCells(1, 1), Spawners: []Spawner{{}}}
	_, err = doc.Level()
	assert.ErrorIs(t, err, ErrInvalidDocument)
}

func TestFormats(t *testing.T) {
	f, err := ParseFormat("YML")
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, f)

	_, err = ParseFormat("json")
	assert.ErrorIs(t, err, ErrUnknownFormat)

	f, ok := FormatFromPath("levels/caves.cbor")
	assert.True(t, ok)
	assert.Equal(t, FormatCBOR, f)

	_, ok = FormatFromPath("levels/caves.cnmb")
	assert.False(t, ok)

	assert.ErrorIs(t, Encode(&bytes.Buffer{}, &Document{}, "toml"), ErrUnknownFormat)
}

func TestFileRoundTripThroughBinary(t *testing.T) {
	dir := t.TempDir()
	want := sampleLevel(t)

	docPath := filepath.Join(dir, "level.yaml")
	require.NoError(t, WriteFile(docPath, FromLevel(want), FormatYAML))
	doc, err := ReadFile(docPath, FormatYAML)
	require.NoError(t, err)
	l, err := doc.Level()
	require.NoError(t, err)

	cnmb, cnms := filepath.Join(dir, "level.cnmb"), filepath.Join(dir, "level.cnms")
	require.NoError(t, l.SaveFiles(cnmb, cnms))
	got, err := leveldata.LoadFiles(cnmb, cnms)
	require.NoError(t, err)
	assert.Equal(t, want.Spawners, got.Spawners)
	assert.Equal(t, want.Metadata, got.Metadata)
	assert.Equal(t, want.Cells, got.Cells)
}
