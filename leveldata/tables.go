package leveldata

import (
	"bytes"
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/logicossoftware/go-lparse"
)

// Teleport area rows share the teleport table with ordinary teleports and
// are told apart by these names.
const (
	teleArea1Name = "_TELEAREA"
	teleArea2Name = "_TELEAREA2"
)

// tables is the decoded form of the auxiliary tables of a .cnms file.
type tables struct {
	teleports []Teleport
	text      []string
	spawnRows int
}

func (t *tables) teleport(i int32) (Teleport, bool) {
	if i < 0 || int(i) >= len(t.teleports) {
		return Teleport{}, false
	}
	return t.teleports[i], true
}

// lines returns text rows [start, end) joined by newlines.
func (t *tables) lines(start, end int32) (string, bool) {
	if start < 0 || end < start || int(end) > len(t.text) {
		return "", false
	}
	return strings.Join(t.text[start:end], "\n"), true
}

func (t *tables) line(i int32) (string, bool) {
	return t.lines(i, i+1)
}

// cString returns b up to its first NUL.
func cString(b []byte) []byte {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		return b[:i]
	}
	return b
}

func decodeString(b []byte, what string, cfg *decodeConfig) (string, error) {
	b = cString(b)
	if !utf8.Valid(b) {
		if err := cfg.recover(corrupted("%s is not valid UTF-8", what)); err != nil {
			return "", err
		}
		return strings.ToValidUTF8(string(b), "?"), nil
	}
	return string(b), nil
}

// loadTables reads the teleport, text and spawn tables. Missing tables read
// as empty; references into them then fail as corrupted.
func loadTables(cnms *lparse.Container, v VersionSpec, cfg *decodeConfig) (*tables, error) {
	t := &tables{}

	if cnms.Has("TI_NAME") {
		names, err := cnms.U8("TI_NAME")
		if err != nil {
			return nil, err
		}
		costs, err := cnms.I32("TI_COST")
		if err != nil {
			return nil, err
		}
		pos, err := cnms.F32("TI_POS")
		if err != nil {
			return nil, err
		}
		n := min(len(names)/v.TeleportNameSize, len(costs), len(pos)/2, v.NumTeleports)
		t.teleports = make([]Teleport, n)
		for i := range t.teleports {
			name, err := decodeString(names[i*v.TeleportNameSize:(i+1)*v.TeleportNameSize], fmt.Sprintf("teleport %d name", i), cfg)
			if err != nil {
				return nil, err
			}
			t.teleports[i] = Teleport{Name: name, Cost: costs[i], Loc: Point{pos[2*i], pos[2*i+1]}}
		}
	}

	if cnms.Has("ENDINGTEXT") {
		raw, err := cnms.U8("ENDINGTEXT")
		if err != nil {
			return nil, err
		}
		n := min(len(raw)/v.EndingTextLineLen, v.EndingTextLines)
		t.text = make([]string, n)
		for i := range t.text {
			s, err := decodeString(raw[i*v.EndingTextLineLen:(i+1)*v.EndingTextLineLen], fmt.Sprintf("text line %d", i), cfg)
			if err != nil {
				return nil, err
			}
			t.text[i] = s
		}
	}

	if cnms.Has("PLAYERSPAWNX") {
		xs, err := cnms.F32("PLAYERSPAWNX")
		if err != nil {
			return nil, err
		}
		t.spawnRows = len(xs)
	}
	return t, nil
}

// tableBuilder collects the auxiliary tables while spawners are encoded.
// Equal rows are stored once.
type tableBuilder struct {
	v VersionSpec

	teleports   []Teleport
	teleportIdx map[Teleport]int

	spawns        []Point
	spawnIdx      map[Point]int
	checkpoints   []Point
	checkpointIdx map[Point]int

	// text holds rows by absolute index; the title row stays empty until
	// store.
	text    []string
	textIdx map[string]int
}

func newTableBuilder(v VersionSpec) *tableBuilder {
	return &tableBuilder{
		v:             v,
		teleportIdx:   make(map[Teleport]int),
		spawnIdx:      make(map[Point]int),
		checkpointIdx: make(map[Point]int),
		textIdx:       make(map[string]int),
	}
}

func (b *tableBuilder) addTeleport(t Teleport) (int32, error) {
	if i, ok := b.teleportIdx[t]; ok {
		return int32(i), nil
	}
	if len(t.Name) > b.v.TeleportNameSize {
		return 0, invalidValue("teleport name %q longer than %d bytes", t.Name, b.v.TeleportNameSize)
	}
	if len(b.teleports) >= b.v.NumTeleports {
		return 0, fmt.Errorf("%w: more than %d teleports", ErrCapacity, b.v.NumTeleports)
	}
	i := len(b.teleports)
	b.teleports = append(b.teleports, t)
	b.teleportIdx[t] = i
	return int32(i), nil
}

func (b *tableBuilder) addSpawn(p Point) (int32, error) {
	if i, ok := b.spawnIdx[p]; ok {
		return int32(i), nil
	}
	if len(b.spawns) >= b.v.NumSpawns {
		return 0, fmt.Errorf("%w: more than %d player spawns", ErrCapacity, b.v.NumSpawns)
	}
	i := len(b.spawns)
	b.spawns = append(b.spawns, p)
	b.spawnIdx[p] = i
	return int32(i), nil
}

// addCheckpoint returns the checkpoint's row in the combined spawn table,
// which places checkpoints after two spawn blocks.
func (b *tableBuilder) addCheckpoint(p Point) (int32, error) {
	base := int32(b.v.NumSpawns * 2)
	if i, ok := b.checkpointIdx[p]; ok {
		return base + int32(i), nil
	}
	if len(b.checkpoints) >= b.v.NumSpawns {
		return 0, fmt.Errorf("%w: more than %d checkpoints", ErrCapacity, b.v.NumSpawns)
	}
	i := len(b.checkpoints)
	b.checkpoints = append(b.checkpoints, p)
	b.checkpointIdx[p] = i
	return base + int32(i), nil
}

// addText stores text one row per line and returns the row range [start,
// end). A run never covers the title row.
func (b *tableBuilder) addText(text string) (start, end int32, err error) {
	lines := strings.Split(text, "\n")
	if i, ok := b.textIdx[text]; ok {
		return int32(i), int32(i + len(lines)), nil
	}
	for _, l := range lines {
		if len(l) > b.v.EndingTextLineLen {
			return 0, 0, invalidValue("text line %q longer than %d bytes", l, b.v.EndingTextLineLen)
		}
	}
	s := len(b.text)
	if title := b.v.TitleEndingTextLine; s <= title && s+len(lines) > title {
		s = title + 1
	}
	if s+len(lines) > b.v.EndingTextLines {
		return 0, 0, fmt.Errorf("%w: text needs rows %d..%d of %d", ErrCapacity, s, s+len(lines), b.v.EndingTextLines)
	}
	for len(b.text) < s {
		b.text = append(b.text, "")
	}
	b.text = append(b.text, lines...)
	b.textIdx[text] = s
	return int32(s), int32(s + len(lines)), nil
}

// addLine stores a single-row string.
func (b *tableBuilder) addLine(s string) (int32, error) {
	if strings.Contains(s, "\n") {
		return 0, invalidValue("line %q contains a newline", s)
	}
	i, _, err := b.addText(s)
	return i, err
}

// store writes the tables with title in the reserved text row. The title
// must fit one text row.
func (b *tableBuilder) store(cnms *lparse.Container, title string) {
	v := b.v

	names := make([]uint8, v.NumTeleports*v.TeleportNameSize)
	costs := make([]int32, v.NumTeleports)
	pos := make([]float32, v.NumTeleports*2)
	alloced := make([]uint8, v.NumTeleports)
	for i := range alloced {
		if i >= len(b.teleports) {
			alloced[i] = 1
			continue
		}
		t := b.teleports[i]
		copy(names[i*v.TeleportNameSize:], t.Name)
		costs[i] = t.Cost
		pos[2*i], pos[2*i+1] = t.Loc.X, t.Loc.Y
	}

	text := make([]uint8, v.EndingTextLines*v.EndingTextLineLen)
	for i, l := range b.text {
		copy(text[i*v.EndingTextLineLen:], l)
	}
	copy(text[v.TitleEndingTextLine*v.EndingTextLineLen:(v.TitleEndingTextLine+1)*v.EndingTextLineLen], title)

	block := func(ps []Point) (xs, ys []float32) {
		xs = make([]float32, v.NumSpawns)
		ys = make([]float32, v.NumSpawns)
		for i := range xs {
			xs[i], ys[i] = float32(math.Inf(1)), float32(math.Inf(1))
			if i < len(ps) {
				xs[i], ys[i] = ps[i].X, ps[i].Y
			}
		}
		return xs, ys
	}
	sx, sy := block(b.spawns)
	cx, cy := block(b.checkpoints)
	var spawnX, spawnY []float32
	spawnX = append(append(append(spawnX, sx...), sx...), cx...)
	spawnY = append(append(append(spawnY, sy...), sy...), cy...)

	cnms.SetU8("TI_NAME", names)
	cnms.SetI32("TI_COST", costs)
	cnms.SetF32("TI_POS", pos)
	cnms.SetU8("TI_ALLOCED", alloced)
	cnms.SetU8("ENDINGTEXT", text)
	cnms.SetF32("PLAYERSPAWNX", spawnX)
	cnms.SetF32("PLAYERSPAWNY", spawnY)
}
