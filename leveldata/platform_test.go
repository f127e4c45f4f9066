package leveldata

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlatformBitLayout(t *testing.T) {
	ci, cf, err := encodePlatform(CustomizableMovingPlatform{
		BitmapX:        3,
		BitmapY:        100,
		TargetRelative: Point{X: 64, Y: 0},
		Speed:          2,
	})
	require.NoError(t, err)

	bits := uint32(ci)
	assert.Equal(t, uint32(3), bits&0xf)
	assert.Equal(t, uint32(100), bits>>4&0xfff)
	assert.Equal(t, uint32(2+8), bits>>16&0xf, "x velocity integer")
	assert.Equal(t, uint32(0), bits>>20&0xf, "x velocity fraction")
	assert.Equal(t, uint32(8), bits>>24&0xf, "y velocity integer")
	assert.Equal(t, uint32(0), bits>>28&0xf, "y velocity fraction")
	assert.Equal(t, float32(32), cf)
}

func TestPlatformRoundTrip(t *testing.T) {
	cases := []struct {
		name string
		p    CustomizableMovingPlatform
	}{
		{
			name: "horizontal",
			p:    CustomizableMovingPlatform{BitmapX: 3, BitmapY: 100, TargetRelative: Point{X: 64}, Speed: 2},
		},
		{
			name: "diagonal paused one way",
			p: CustomizableMovingPlatform{
				TargetRelative: Point{X: 96, Y: -32},
				Speed:          float32(math.Hypot(3, 1)),
				StartPaused:    true,
				Type:           PlatformOneWay,
			},
		},
		{
			name: "fractional despawn",
			p: CustomizableMovingPlatform{
				BitmapX:        15,
				BitmapY:        0xfff,
				TargetRelative: Point{X: 40, Y: 20},
				Speed:          float32(math.Hypot(2.5, 1.25)),
				Type:           PlatformDespawn,
			},
		},
		{
			name: "negative fraction",
			p: CustomizableMovingPlatform{
				TargetRelative: Point{X: -24, Y: 0},
				Speed:          1.5,
			},
		},
		{
			name: "stationary paused",
			p:    CustomizableMovingPlatform{StartPaused: true},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ci, cf, err := encodePlatform(tc.p)
			require.NoError(t, err)
			assert.Equal(t, tc.p, decodePlatform(ci, cf))
		})
	}
}

func TestPlatformTypeThresholds(t *testing.T) {
	assert.Equal(t, PlatformNormal, decodePlatform(0, 10).Type)
	assert.Equal(t, PlatformDespawn, decodePlatform(0, 10.25).Type)
	assert.Equal(t, PlatformDespawn, decodePlatform(0, -10.3).Type)
	assert.Equal(t, PlatformOneWay, decodePlatform(0, 10.5).Type)
	assert.Equal(t, PlatformOneWay, decodePlatform(0, -10.75).Type)

	assert.False(t, decodePlatform(0, 10).StartPaused)
	assert.True(t, decodePlatform(0, -10).StartPaused)
}

func TestPlatformVelocitySaturates(t *testing.T) {
	ci, cf, err := encodePlatform(CustomizableMovingPlatform{
		TargetRelative: Point{X: 100, Y: -100},
		Speed:          float32(math.Hypot(10, 10)),
	})
	require.NoError(t, err)
	p := decodePlatform(ci, cf)
	assert.Equal(t, Point{X: 7.9375 * 10, Y: -8 * 10}, p.TargetRelative)
}

func TestPlatformRejectsBadInput(t *testing.T) {
	_, _, err := encodePlatform(CustomizableMovingPlatform{BitmapX: 16})
	assert.ErrorIs(t, err, ErrInvalidValue)

	_, _, err = encodePlatform(CustomizableMovingPlatform{BitmapY: 0x1000})
	assert.ErrorIs(t, err, ErrInvalidValue)

	_, _, err = encodePlatform(CustomizableMovingPlatform{TargetRelative: Point{X: 10}})
	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestQuantizeVel(t *testing.T) {
	cases := []struct {
		v    float32
		i, f uint32
	}{
		{0, 8, 0},
		{1.5, 9, 8},
		{-1.5, 6, 8},
		{-0.0625, 7, 15},
		{7.99, 7 + 8, 15},
		{-9, 0, 0},
		{0.999, 9, 0},
	}
	for _, tc := range cases {
		i, f := quantizeVel(tc.v)
		assert.Equal(t, tc.i, i, "integer part of %v", tc.v)
		assert.Equal(t, tc.f, f, "fraction of %v", tc.v)
	}
}

func TestPlatformSlowestSpeed(t *testing.T) {
	slow := CustomizableMovingPlatform{TargetRelative: Point{X: 64}, Speed: 0.0625}
	ci, cf, err := encodePlatform(slow)
	require.NoError(t, err)
	assert.Equal(t, slow, decodePlatform(ci, cf))

	_, _, err = encodePlatform(CustomizableMovingPlatform{TargetRelative: Point{X: 64}, Speed: 0.01})
	assert.ErrorIs(t, err, ErrInvalidValue)
	_, _, err = encodePlatform(CustomizableMovingPlatform{TargetRelative: Point{X: -3, Y: 2}, Speed: 0.02})
	assert.ErrorIs(t, err, ErrInvalidValue)
}
