package leveldata

import (
	"fmt"
	"strings"

	"github.com/logicossoftware/go-lparse"
)

// Difficulty is the rating shown on the level select menu.
type Difficulty uint8

const (
	DifficultyTutorial Difficulty = iota
	DifficultyReallyEasy
	DifficultyEasy
	DifficultyNormal
	DifficultyKindaHard
	DifficultyHard
	DifficultyUltra
	DifficultyExtreme
	DifficultyDeath
	DifficultyUltraDeath

	numDifficulties
)

var difficultyNames = [numDifficulties]string{
	"Tutorial", "Really Easy", "Easy", "Normal", "Kinda Hard", "Hard",
	"Ultra!", "Extreme!", "Death!!!", "ULTRA DEATH!",
}

// String returns the name the game displays.
func (d Difficulty) String() string {
	if d < numDifficulties {
		return difficultyNames[d]
	}
	return fmt.Sprintf("Difficulty(%d)", uint8(d))
}

// titleSeparator splits the title row into title and subtitle.
const titleSeparator = `\`

// LevelMetadata controls how the level is listed on the level select menu.
// It is stored in the reserved title text row and the preview tile slot.
type LevelMetadata struct {
	Title    string
	Subtitle string
	// PreviewLoc is the preview image in the shared bitmap, in tile units.
	PreviewLoc Frame
	Difficulty Difficulty
}

func (m LevelMetadata) fullTitle() string {
	if m.Subtitle == "" {
		return m.Title
	}
	return m.Title + titleSeparator + m.Subtitle
}

func (m LevelMetadata) previewTile() TileProperties {
	return TileProperties{
		Transparency: TransClear,
		Damage:       Damage{Kind: DamageLava, Amount: int32(m.Difficulty)},
		AnimSpeed:    1,
		Frames:       []Frame{m.PreviewLoc},
		Collision:    Collision{Kind: CollisionBox, Hitbox: lparse.Rect{}},
	}
}

func loadMetadata(t *tables, v VersionSpec, preview *TileProperties) LevelMetadata {
	m := LevelMetadata{Difficulty: DifficultyNormal}
	if v.TitleEndingTextLine < len(t.text) {
		full := t.text[v.TitleEndingTextLine]
		m.Title, m.Subtitle, _ = strings.Cut(full, titleSeparator)
	}
	if preview == nil {
		return m
	}
	if len(preview.Frames) > 0 {
		m.PreviewLoc = preview.Frames[0]
	}
	if d := preview.Damage.Amount; d >= 0 && d < int32(numDifficulties) {
		m.Difficulty = Difficulty(d)
	}
	return m
}
