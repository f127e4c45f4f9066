package leveldata

import "github.com/logicossoftware/go-lparse"

const (
	TileSize  = 32
	FrameRate = 30

	LightBlack  uint8 = 7
	LightNormal uint8 = 3
	LightWhite  uint8 = 0

	TransOpaque uint8 = 0
	TransClear  uint8 = 7

	heightmapSize = 32
)

// VersionSpec extends the container layout with the level-level array sizes
// of one format version.
type VersionSpec struct {
	lparse.VersionSpec

	NumTeleports        int
	NumSpawns           int
	NumSpawnModes       int
	TeleportNameSize    int
	MaxTileFrames       int
	EndingTextLines     int
	EndingTextLineLen   int
	BackgroundLayers    int
	TitleEndingTextLine int
	PreviewTileIndex    int
}

// SpecFor returns the limits for version, or lparse.ErrUnsupportedVersion.
func SpecFor(version uint32) (VersionSpec, error) {
	base, err := lparse.SpecFor(version)
	if err != nil {
		return VersionSpec{}, err
	}
	// Only version 1 exists; lparse.SpecFor has already rejected the rest.
	return VersionSpec{
		VersionSpec:         base,
		NumTeleports:        512,
		NumSpawns:           128,
		NumSpawnModes:       3,
		TeleportNameSize:    41,
		MaxTileFrames:       32,
		EndingTextLines:     48,
		EndingTextLineLen:   32,
		BackgroundLayers:    32,
		TitleEndingTextLine: 47,
		PreviewTileIndex:    256,
	}, nil
}

// specV1 sizes encodings that carry no version of their own, such as the
// text form of Cells.
var specV1 = func() VersionSpec {
	s, err := SpecFor(lparse.VersionV1)
	if err != nil {
		panic(err)
	}
	return s
}()
