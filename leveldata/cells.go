package leveldata

import (
	"encoding/base64"
	"encoding/binary"
	"fmt"

	"github.com/logicossoftware/go-lparse"
)

// Cell is one grid position of the world.
type Cell struct {
	// Foreground draws in front of objects, Background behind them.
	Foreground TileID
	Background TileID
	// Light is the light level of the cell; LightNormal applies no effect.
	Light uint8
}

// DefaultCell is an empty cell with normal lighting.
func DefaultCell() Cell { return Cell{Light: LightNormal} }

// Cells is the dense row-major block grid of a level.
//
// Coordinates passed to Get, At and Set are clamped to the grid, so
// out-of-range access reads or writes the nearest edge cell. The zero value
// is an empty grid: Get reads DefaultCell, and At or Set first turn it into
// a 1×1 grid.
type Cells struct {
	width, height int
	cells         []Cell
}

// NewCells returns a width×height grid of default cells. Dimensions below 1
// are raised to 1.
func NewCells(width, height int) *Cells {
	width, height = max(width, 1), max(height, 1)
	cells := make([]Cell, width*height)
	for i := range cells {
		cells[i] = DefaultCell()
	}
	return &Cells{width: width, height: height, cells: cells}
}

func (c *Cells) Width() int  { return c.width }
func (c *Cells) Height() int { return c.height }

// Cells returns the backing slice in row-major order.
func (c *Cells) Cells() []Cell { return c.cells }

func (c *Cells) index(x, y int) int {
	x = min(max(x, 0), c.width-1)
	y = min(max(y, 0), c.height-1)
	return y*c.width + x
}

func (c *Cells) empty() bool { return c.width < 1 || c.height < 1 || len(c.cells) == 0 }

func (c *Cells) grow() {
	if c.empty() {
		*c = *NewCells(1, 1)
	}
}

func (c *Cells) Get(x, y int) Cell {
	if c.empty() {
		return DefaultCell()
	}
	return c.cells[c.index(x, y)]
}

func (c *Cells) At(x, y int) *Cell {
	c.grow()
	return &c.cells[c.index(x, y)]
}

func (c *Cells) Set(x, y int, cell Cell) {
	c.grow()
	c.cells[c.index(x, y)] = cell
}

// maxTileID returns the largest tile id any cell refers to, or -1.
func (c *Cells) maxTileID() int {
	m := -1
	for _, cell := range c.cells {
		for _, t := range [...]TileID{cell.Foreground, cell.Background} {
			if id, ok := t.Get(); ok {
				m = max(m, int(id))
			}
		}
	}
	return m
}

// checkTiles fails if a cell refers to a tile id at or past numTiles.
func (c *Cells) checkTiles(numTiles int) error {
	for i, cell := range c.cells {
		for _, t := range [...]TileID{cell.Foreground, cell.Background} {
			if id, ok := t.Get(); ok && int(id) >= numTiles {
				return invalidValue("cell (%d, %d) refers to tile %d, level has %d tiles", i%c.width, i/c.width, id, numTiles)
			}
		}
	}
	return nil
}

// Resize changes the grid size, keeping the overlapping top-left region.
func (c *Cells) Resize(width, height int) {
	if width == c.width && height == c.height {
		return
	}
	n := NewCells(width, height)
	for y := 0; y < min(c.height, n.height); y++ {
		copy(n.cells[y*n.width:y*n.width+min(c.width, n.width)], c.cells[y*c.width:])
	}
	*c = *n
}

// Paste copies the inclusive source rectangle [srcMin, srcMax] of c into dst
// with its top-left corner at (dx, dy). Both grids clamp coordinates.
func (c *Cells) Paste(dst *Cells, srcMinX, srcMinY, srcMaxX, srcMaxY, dx, dy int) {
	for y := srcMinY; y <= srcMaxY; y++ {
		for x := srcMinX; x <= srcMaxX; x++ {
			dst.Set(x-srcMinX+dx, y-srcMinY+dy, c.Get(x, y))
		}
	}
}

// loadCells reads the block layers. Ids at or past numTiles decode as no tile.
func loadCells(cnmb *lparse.Container, v VersionSpec, numTiles int, cfg *decodeConfig) (*Cells, error) {
	header, err := blocksHeader(cnmb)
	if err != nil {
		return nil, err
	}
	fg, err := cnmb.U16("BLK_LAYER0")
	if err != nil {
		return nil, err
	}
	bg, err := cnmb.U16("BLK_LAYER1")
	if err != nil {
		return nil, err
	}
	light, err := cnmb.U16("BLK_LIGHT")
	if err != nil {
		return nil, err
	}

	width, height := int(header[0]), int(header[1])
	if width <= 0 || height <= 0 {
		if err := cfg.recover(fmt.Errorf("%w: grid size %dx%d", ErrCorrupted, width, height)); err != nil {
			return nil, err
		}
		return NewCells(1, 1), nil
	}
	n := width * height
	if len(fg) < n || len(bg) < n || len(light) < n {
		return nil, fmt.Errorf("%w: %dx%d grid but layers hold %d/%d/%d cells", ErrCorrupted, width, height, len(fg), len(bg), len(light))
	}

	tile := func(raw uint16) TileID {
		t := TileIDFromRaw(raw, v)
		if id, ok := t.Get(); ok && int(id) >= numTiles {
			return NoTile()
		}
		return t
	}
	cells := make([]Cell, n)
	for i := range cells {
		l := LightNormal
		if light[i] <= 0xff {
			l = uint8(light[i])
		}
		cells[i] = Cell{Foreground: tile(fg[i]), Background: tile(bg[i]), Light: l}
	}
	return &Cells{width: width, height: height, cells: cells}, nil
}

func blocksHeader(cnmb *lparse.Container) ([]int32, error) {
	header, err := cnmb.I32("BLOCKS_HEADER")
	if err != nil {
		return nil, err
	}
	if len(header) < 3 {
		return nil, fmt.Errorf("%w: BLOCKS_HEADER has %d fields", ErrCorrupted, len(header))
	}
	return header, nil
}

func (c *Cells) save(cnmb *lparse.Container, v VersionSpec, tileSlots int) {
	fg := make([]uint16, len(c.cells))
	bg := make([]uint16, len(c.cells))
	light := make([]uint16, len(c.cells))
	for i, cell := range c.cells {
		fg[i] = cell.Foreground.Raw(v)
		bg[i] = cell.Background.Raw(v)
		light[i] = uint16(cell.Light)
	}
	cnmb.SetI32("BLOCKS_HEADER", []int32{int32(c.width), int32(c.height), int32(tileSlots)})
	cnmb.SetU16("BLK_LAYER0", fg)
	cnmb.SetU16("BLK_LAYER1", bg)
	cnmb.SetU16("BLK_LIGHT", light)
}

// MarshalText encodes the grid as base64 of big-endian width and height
// followed by background id, foreground id and light of every cell.
func (c *Cells) MarshalText() ([]byte, error) {
	if c.empty() {
		return nil, invalidValue("cell grid is empty")
	}
	b := make([]byte, 8, 8+5*len(c.cells))
	binary.BigEndian.PutUint32(b[0:4], uint32(c.width))
	binary.BigEndian.PutUint32(b[4:8], uint32(c.height))
	for i, cell := range c.cells {
		bg, bgOK := cell.Background.raw(specV1)
		fg, fgOK := cell.Foreground.raw(specV1)
		if !bgOK || !fgOK {
			return nil, invalidValue("cell %d refers to a tile id past the raw range", i)
		}
		b = binary.BigEndian.AppendUint16(b, bg)
		b = binary.BigEndian.AppendUint16(b, fg)
		b = append(b, cell.Light)
	}
	out := make([]byte, base64.StdEncoding.EncodedLen(len(b)))
	base64.StdEncoding.Encode(out, b)
	return out, nil
}

func (c *Cells) UnmarshalText(text []byte) error {
	b := make([]byte, base64.StdEncoding.DecodedLen(len(text)))
	n, err := base64.StdEncoding.Decode(b, text)
	if err != nil {
		return fmt.Errorf("%w: cells: %v", ErrCorrupted, err)
	}
	b = b[:n]
	if len(b) < 8 {
		return fmt.Errorf("%w: cells: missing size", ErrCorrupted)
	}
	width := int(binary.BigEndian.Uint32(b[0:4]))
	height := int(binary.BigEndian.Uint32(b[4:8]))
	b = b[8:]
	if width <= 0 || height <= 0 || len(b)/5/width < height || len(b) != 5*width*height {
		return fmt.Errorf("%w: cells: %dx%d does not match %d bytes", ErrCorrupted, width, height, len(b))
	}
	cells := make([]Cell, width*height)
	for i := range cells {
		p := b[i*5:]
		cells[i] = Cell{
			Background: TileIDFromRaw(binary.BigEndian.Uint16(p[0:2]), specV1),
			Foreground: TileIDFromRaw(binary.BigEndian.Uint16(p[2:4]), specV1),
			Light:      p[4],
		}
	}
	*c = Cells{width: width, height: height, cells: cells}
	return nil
}
