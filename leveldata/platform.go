package leveldata

import "math"

// Customizable moving platform bit layout of the custom int.
const (
	platBitmapXShift = 0
	platBitmapXMask  = 0xf
	platBitmapYShift = 4
	platBitmapYMask  = 0xfff
	platVelXIntShift = 16
	platVelXFrcShift = 20
	platVelYIntShift = 24
	platVelYFrcShift = 28

	platVelBias = 8
)

// The fraction of the custom float above the frame count selects the type.
const (
	platDespawnFrac = 0.25
	platOneWayFrac  = 0.5
)

// quantizeVel splits v into a biased 4-bit integer part and a fraction in
// sixteenths such that v ≈ (i - 8) + f/16. Values outside [-8, 7.9375]
// saturate.
func quantizeVel(v float32) (i, f uint32) {
	fl := math.Floor(float64(v))
	frac := math.Round((float64(v) - fl) * 16)
	if frac == 16 {
		fl++
		frac = 0
	}
	switch {
	case fl > 7:
		fl, frac = 7, 15
	case fl < -platVelBias:
		fl, frac = -platVelBias, 0
	}
	return uint32(fl + platVelBias), uint32(frac)
}

func dequantizeVel(i, f uint32) float32 {
	return float32(int32(i&0xf)-platVelBias) + float32(f&0xf)/16
}

func encodePlatform(p CustomizableMovingPlatform) (int32, float32, error) {
	if p.BitmapX > platBitmapXMask || p.BitmapY > platBitmapYMask {
		return 0, 0, invalidValue("platform bitmap (%d, %d) out of range", p.BitmapX, p.BitmapY)
	}
	dist := math.Hypot(float64(p.TargetRelative.X), float64(p.TargetRelative.Y))
	var frames float64
	var vx, vy float32
	if dist > 0 {
		if !(p.Speed > 0) {
			return 0, 0, invalidValue("platform speed %v", p.Speed)
		}
		frames = max(math.Round(dist/float64(p.Speed)), 1)
		vx = float32(float64(p.TargetRelative.X) / frames)
		vy = float32(float64(p.TargetRelative.Y) / frames)
	}

	xi, xf := quantizeVel(vx)
	yi, yf := quantizeVel(vy)
	if dist > 0 && dequantizeVel(xi, xf) == 0 && dequantizeVel(yi, yf) == 0 {
		return 0, 0, invalidValue("platform speed %v rounds to zero", p.Speed)
	}
	bits := p.BitmapX<<platBitmapXShift |
		p.BitmapY<<platBitmapYShift |
		xi<<platVelXIntShift | xf<<platVelXFrcShift |
		yi<<platVelYIntShift | yf<<platVelYFrcShift

	cf := frames
	switch p.Type {
	case PlatformDespawn:
		cf += platDespawnFrac
	case PlatformOneWay:
		cf += platOneWayFrac
	}
	if p.StartPaused {
		cf = math.Copysign(cf, -1)
	}
	return int32(bits), float32(cf), nil
}

func decodePlatform(ci int32, cf float32) CustomizableMovingPlatform {
	bits := uint32(ci)
	vx := dequantizeVel(bits>>platVelXIntShift, bits>>platVelXFrcShift)
	vy := dequantizeVel(bits>>platVelYIntShift, bits>>platVelYFrcShift)

	a := math.Abs(float64(cf))
	frames := math.Floor(a)
	p := CustomizableMovingPlatform{
		BitmapX:        bits >> platBitmapXShift & platBitmapXMask,
		BitmapY:        bits >> platBitmapYShift & platBitmapYMask,
		TargetRelative: Point{X: vx * float32(frames), Y: vy * float32(frames)},
		Speed:          float32(math.Hypot(float64(vx), float64(vy))),
		StartPaused:    math.Signbit(float64(cf)),
	}
	switch frac := a - frames; {
	case frac >= platOneWayFrac:
		p.Type = PlatformOneWay
	case frac >= platDespawnFrac:
		p.Type = PlatformDespawn
	}
	return p
}
