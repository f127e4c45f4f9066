package leveldata

import (
	"fmt"

	"github.com/logicossoftware/go-lparse"
)

// Point is a world position or 2D vector in pixels.
type Point struct {
	X, Y float32
}

// BackgroundFlags selects the display aspect ratios a layer shows on.
type BackgroundFlags uint32

const (
	ShowOn4By3  BackgroundFlags = 1 << 0
	ShowOn16By9 BackgroundFlags = 1 << 1

	backgroundFlagsAll = ShowOn4By3 | ShowOn16By9
)

type ImageKind uint8

const (
	ImageBitmap ImageKind = iota
	ImageColor
)

// BackgroundImage is either a source rect in the shared bitmap or a palette
// color that clears the screen.
type BackgroundImage struct {
	Kind  ImageKind
	Rect  lparse.Rect
	Color uint8
}

// BackgroundLayer is one parallax layer. Layers later in the list draw over
// earlier ones.
type BackgroundLayer struct {
	Origin Point
	// Scroll is the parallax divisor; 0 disables scrolling.
	Scroll  Point
	Speed   Point
	Spacing [2]int32
	Image   BackgroundImage

	Transparency       uint8
	RepeatUp           bool
	RepeatDown         bool
	RepeatHorizontally bool
	// InForeground draws the layer over everything but the HUD.
	InForeground bool

	Top3D, Bottom3D, Height3D uint32
	Flags                     BackgroundFlags
}

func DefaultBackgroundLayer() BackgroundLayer {
	return BackgroundLayer{Flags: backgroundFlagsAll}
}

type backgroundArrays struct {
	pos        []float32
	origin     []float32
	scroll     []float32
	spacing    []int32
	speed      []float32
	repeat     []uint8
	rect       []lparse.Rect
	clearColor []int32
	highLayer  []uint8
	trans      []uint8
	ratio3D    []int32
	flags      []int32
}

func loadBackgrounds(cnmb *lparse.Container, v VersionSpec) ([]BackgroundLayer, error) {
	var a backgroundArrays
	var err error
	if a.origin, err = cnmb.F32("BG_ORIGIN"); err != nil {
		return nil, err
	}
	if a.scroll, err = cnmb.F32("BG_SCROLL"); err != nil {
		return nil, err
	}
	if a.spacing, err = cnmb.I32("BG_SPACING"); err != nil {
		return nil, err
	}
	if a.speed, err = cnmb.F32("BG_SPEED"); err != nil {
		return nil, err
	}
	if a.repeat, err = cnmb.U8("BG_REPEAT"); err != nil {
		return nil, err
	}
	if a.rect, err = cnmb.Rects("BG_RECT"); err != nil {
		return nil, err
	}
	if a.clearColor, err = cnmb.I32("BG_CLEAR_COLOR"); err != nil {
		return nil, err
	}
	if a.highLayer, err = cnmb.U8("BG_HIGHLAYER"); err != nil {
		return nil, err
	}
	if a.trans, err = cnmb.U8("BG_TRANS"); err != nil {
		return nil, err
	}
	// Older levels predate the 3D ratios and display flags.
	if cnmb.Has("BG_RATIO3D") {
		if a.ratio3D, err = cnmb.I32("BG_RATIO3D"); err != nil {
			return nil, err
		}
	}
	if cnmb.Has("BG_FLAGS") {
		if a.flags, err = cnmb.I32("BG_FLAGS"); err != nil {
			return nil, err
		}
	}

	n := v.BackgroundLayers
	if len(a.origin) < 2*n || len(a.scroll) < 2*n || len(a.spacing) < 2*n || len(a.speed) < 2*n ||
		len(a.repeat) < 2*n || len(a.rect) < n || len(a.clearColor) < n || len(a.highLayer) < n || len(a.trans) < n {
		return nil, fmt.Errorf("%w: background arrays shorter than %d layers", ErrCorrupted, n)
	}

	layers := make([]BackgroundLayer, n)
	for i := range layers {
		l := BackgroundLayer{
			Origin:             Point{a.origin[2*i], a.origin[2*i+1]},
			Scroll:             Point{a.scroll[2*i], a.scroll[2*i+1]},
			Speed:              Point{a.speed[2*i], a.speed[2*i+1]},
			Spacing:            [2]int32{a.spacing[2*i], a.spacing[2*i+1]},
			Transparency:       a.trans[i],
			RepeatUp:           a.repeat[2*i+1]&2 != 0,
			RepeatDown:         a.repeat[2*i+1]&1 != 0,
			RepeatHorizontally: a.repeat[2*i] != 0,
			InForeground:       a.highLayer[i] != 0,
			Flags:              backgroundFlagsAll,
		}
		if c := a.clearColor[i]; c == 0 {
			l.Image = BackgroundImage{Kind: ImageBitmap, Rect: a.rect[i]}
		} else {
			l.Image = BackgroundImage{Kind: ImageColor, Color: uint8(c)}
		}
		if len(a.ratio3D) >= 3*(i+1) {
			l.Top3D = uint32(a.ratio3D[3*i])
			l.Bottom3D = uint32(a.ratio3D[3*i+1])
			l.Height3D = uint32(a.ratio3D[3*i+2])
		}
		if i < len(a.flags) {
			if f := BackgroundFlags(uint32(a.flags[i])); f&^backgroundFlagsAll == 0 {
				l.Flags = f
			}
		}
		layers[i] = l
	}
	return layers, nil
}

func (a *backgroundArrays) append(l BackgroundLayer) {
	a.pos = append(a.pos, 0, 0)
	a.origin = append(a.origin, l.Origin.X, l.Origin.Y)
	a.scroll = append(a.scroll, l.Scroll.X, l.Scroll.Y)
	a.spacing = append(a.spacing, l.Spacing[0], l.Spacing[1])
	a.speed = append(a.speed, l.Speed.X, l.Speed.Y)

	var horizontal, vertical uint8
	if l.RepeatHorizontally {
		horizontal = 3
	}
	if l.RepeatUp {
		vertical |= 2
	}
	if l.RepeatDown {
		vertical |= 1
	}
	a.repeat = append(a.repeat, horizontal, vertical)

	switch l.Image.Kind {
	case ImageColor:
		a.rect = append(a.rect, lparse.Rect{})
		a.clearColor = append(a.clearColor, int32(l.Image.Color))
	default:
		a.rect = append(a.rect, l.Image.Rect)
		a.clearColor = append(a.clearColor, 0)
	}

	var high uint8
	if l.InForeground {
		high = 1
	}
	a.highLayer = append(a.highLayer, high)
	a.trans = append(a.trans, l.Transparency)
	a.ratio3D = append(a.ratio3D, int32(l.Top3D), int32(l.Bottom3D), int32(l.Height3D))
	a.flags = append(a.flags, int32(l.Flags))
}

// saveBackgrounds writes exactly v.BackgroundLayers layers, truncating extra
// layers and padding with defaults.
func saveBackgrounds(cnmb *lparse.Container, v VersionSpec, layers []BackgroundLayer) {
	var a backgroundArrays
	for i := 0; i < v.BackgroundLayers; i++ {
		l := DefaultBackgroundLayer()
		if i < len(layers) {
			l = layers[i]
		}
		a.append(l)
	}
	cnmb.SetF32("BG_POS", a.pos)
	cnmb.SetF32("BG_ORIGIN", a.origin)
	cnmb.SetF32("BG_SCROLL", a.scroll)
	cnmb.SetI32("BG_SPACING", a.spacing)
	cnmb.SetF32("BG_SPEED", a.speed)
	cnmb.SetU8("BG_REPEAT", a.repeat)
	cnmb.SetRects("BG_RECT", a.rect)
	cnmb.SetI32("BG_CLEAR_COLOR", a.clearColor)
	cnmb.SetU8("BG_HIGHLAYER", a.highLayer)
	cnmb.SetU8("BG_TRANS", a.trans)
	cnmb.SetI32("BG_RATIO3D", a.ratio3D)
	cnmb.SetI32("BG_FLAGS", a.flags)
}
