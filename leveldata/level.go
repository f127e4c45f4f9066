package leveldata

import (
	"fmt"

	"github.com/logicossoftware/go-lparse"
)

const (
	defaultWidth  = 512
	defaultHeight = 256
	defaultTitle  = "Untitled"
)

// LevelData is a decoded level: the block file (.cnmb) and the spawner file
// (.cnms) together.
type LevelData struct {
	Version  VersionSpec
	Spawners []Spawner
	Cells    *Cells
	// TileProperties is indexed by TileID.
	TileProperties []TileProperties
	Metadata       LevelMetadata
	// BackgroundLayers later in the slice draw over earlier ones.
	BackgroundLayers []BackgroundLayer
}

// New returns a blank level for version.
func New(version uint32) (*LevelData, error) {
	v, err := SpecFor(version)
	if err != nil {
		return nil, err
	}
	layers := make([]BackgroundLayer, v.BackgroundLayers)
	for i := range layers {
		layers[i] = DefaultBackgroundLayer()
	}
	return &LevelData{
		Version:          v,
		Cells:            NewCells(defaultWidth, defaultHeight),
		Metadata:         LevelMetadata{Title: defaultTitle, Difficulty: DifficultyNormal},
		BackgroundLayers: layers,
	}, nil
}

// FromLParse decodes a level from its block and spawner containers.
//
// By default any corrupted value fails the decode with an error wrapping
// ErrCorrupted. WithLenient substitutes defaults instead, which old levels
// with garbage data sometimes need.
func FromLParse(cnmb, cnms *lparse.Container, opts ...DecodeOption) (*LevelData, error) {
	if cnmb == nil || cnms == nil {
		return nil, fmt.Errorf("leveldata: nil container")
	}
	if cnmb.Version() != cnms.Version() {
		return nil, fmt.Errorf("%w: %d and %d", ErrMismatchedVersions, cnmb.Version(), cnms.Version())
	}
	v, err := SpecFor(cnmb.Version())
	if err != nil {
		return nil, err
	}
	cfg := &decodeConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	tiles, preview, padded, err := loadTiles(cnmb, v, cfg)
	if err != nil {
		return nil, fmt.Errorf("tiles: %w", err)
	}
	cells, err := loadCells(cnmb, v, len(tiles), cfg)
	if err != nil {
		return nil, fmt.Errorf("cells: %w", err)
	}
	tiles = trimPadding(tiles, padded, cells)
	layers, err := loadBackgrounds(cnmb, v)
	if err != nil {
		return nil, fmt.Errorf("backgrounds: %w", err)
	}
	t, err := loadTables(cnms, v, cfg)
	if err != nil {
		return nil, fmt.Errorf("tables: %w", err)
	}
	spawners, err := loadSpawners(cnms, t, cfg)
	if err != nil {
		return nil, fmt.Errorf("spawners: %w", err)
	}

	return &LevelData{
		Version:          v,
		Spawners:         spawners,
		Cells:            cells,
		TileProperties:   tiles,
		Metadata:         loadMetadata(t, v, preview),
		BackgroundLayers: layers,
	}, nil
}

// Save writes the level into cnmb and cnms, replacing the level entries and
// keeping any others. Both containers must have the level's version.
//
// The whole level is encoded before either container changes, so on error
// both are left as they were. Cells must refer only to existing tiles.
func (l *LevelData) Save(cnmb, cnms *lparse.Container) error {
	if cnmb == nil || cnms == nil {
		return fmt.Errorf("leveldata: nil container")
	}
	if cnmb.Version() != l.Version.Version || cnms.Version() != l.Version.Version {
		return fmt.Errorf("%w: level is version %d, containers %d and %d",
			ErrMismatchedVersions, l.Version.Version, cnmb.Version(), cnms.Version())
	}
	cells := l.Cells
	if cells == nil {
		cells = NewCells(1, 1)
	}
	if cells.empty() {
		return fmt.Errorf("cells: %w", invalidValue("grid is %dx%d", cells.width, cells.height))
	}
	if err := cells.checkTiles(len(l.TileProperties)); err != nil {
		return fmt.Errorf("cells: %w", err)
	}

	spawners, err := encodeSpawners(l.Version, l.Metadata.fullTitle(), l.Spawners)
	if err != nil {
		return fmt.Errorf("spawners: %w", err)
	}
	tiles, slots, err := encodeTiles(l.Version, l.TileProperties, l.Metadata.previewTile())
	if err != nil {
		return fmt.Errorf("tiles: %w", err)
	}

	spawners.store(cnms)
	tiles.store(cnmb)
	saveBackgrounds(cnmb, l.Version, l.BackgroundLayers)
	cells.save(cnmb, l.Version, slots)
	return nil
}

// LoadFiles reads and decodes a level from its .cnmb and .cnms files.
func LoadFiles(cnmbPath, cnmsPath string, opts ...DecodeOption) (*LevelData, error) {
	cnmb, err := lparse.ReadFile(cnmbPath)
	if err != nil {
		return nil, err
	}
	cnms, err := lparse.ReadFile(cnmsPath)
	if err != nil {
		return nil, err
	}
	return FromLParse(cnmb, cnms, opts...)
}

// SaveFiles encodes the level into fresh containers and writes them to
// cnmbPath and cnmsPath. Each file is replaced atomically.
func (l *LevelData) SaveFiles(cnmbPath, cnmsPath string) error {
	cnmb, err := lparse.New(l.Version.Version)
	if err != nil {
		return err
	}
	cnms, err := lparse.New(l.Version.Version)
	if err != nil {
		return err
	}
	if err := l.Save(cnmb, cnms); err != nil {
		return err
	}
	if err := cnmb.WriteFile(cnmbPath); err != nil {
		return err
	}
	return cnms.WriteFile(cnmsPath)
}
