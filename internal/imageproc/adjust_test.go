package imageproc

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLinear(t *testing.T) {
	img := solid(1, 1, color.NRGBA{R: 100, G: 50, B: 200, A: 77})
	out := Linear(img, 1.5, 0)
	assert.Equal(t, color.NRGBA{R: 150, G: 75, B: 255, A: 77}, out.NRGBAAt(0, 0))
}

func TestTint_KeepsAlpha(t *testing.T) {
	img := solid(1, 1, color.NRGBA{R: 128, G: 128, B: 128, A: 33})
	out := Tint(img, DarkTint)
	assert.Equal(t, uint8(33), out.NRGBAAt(0, 0).A)
}

func TestTint_ShiftsGrayTowardsTintHue(t *testing.T) {
	img := solid(1, 1, color.NRGBA{R: 128, G: 128, B: 128, A: 255})
	px := Tint(img, DarkTint).NRGBAAt(0, 0)
	assert.Greater(t, px.B, px.R)
}

func TestTint_TintColorIsFixedPoint(t *testing.T) {
	img := solid(1, 1, DarkTint)
	px := Tint(img, DarkTint).NRGBAAt(0, 0)
	assert.InDelta(t, DarkTint.R, px.R, 1)
	assert.InDelta(t, DarkTint.G, px.G, 1)
	assert.InDelta(t, DarkTint.B, px.B, 1)
}

func TestMedian_RemovesSpeck(t *testing.T) {
	black := color.NRGBA{A: 255}
	img := solid(5, 5, black)
	img.SetNRGBA(2, 2, color.NRGBA{R: 255, G: 255, B: 255, A: 255})

	out := Median(img, 3)
	assert.Equal(t, image.Rect(0, 0, 5, 5), out.Bounds())
	assert.Equal(t, black, out.NRGBAAt(2, 2))
}

func TestMedian_KeepsSolidArea(t *testing.T) {
	c := color.NRGBA{R: 12, G: 34, B: 56, A: 78}
	out := Median(solid(4, 3, c), 3)
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			assert.Equal(t, c, out.NRGBAAt(x, y))
		}
	}
}

func TestMedian_InvalidSizeCopies(t *testing.T) {
	img := solid(2, 2, color.NRGBA{R: 1, G: 2, B: 3, A: 4})
	out := Median(img, 2)
	assert.Equal(t, img.Pix, out.Pix)
	out.Pix[0] = 99
	assert.Equal(t, uint8(1), img.Pix[0])
}
