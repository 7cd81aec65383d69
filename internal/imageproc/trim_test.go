package imageproc

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrim_CropsPadding(t *testing.T) {
	white := color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	red := color.NRGBA{R: 200, A: 255}
	img := solid(10, 10, white)
	for y := 5; y < 8; y++ {
		for x := 4; x < 6; x++ {
			img.SetNRGBA(x, y, red)
		}
	}

	out := Trim(img, TrimTolerance)
	assert.Equal(t, image.Rect(0, 0, 2, 3), out.Bounds())
	assert.Equal(t, red, out.NRGBAAt(0, 0))
	assert.Equal(t, red, out.NRGBAAt(1, 2))
}

func TestTrim_ToleratesNoise(t *testing.T) {
	img := solid(6, 6, color.NRGBA{R: 250, G: 250, B: 250, A: 255})
	img.SetNRGBA(0, 5, color.NRGBA{R: 245, G: 252, B: 250, A: 255})
	img.SetNRGBA(3, 3, color.NRGBA{A: 255})

	out := Trim(img, TrimTolerance)
	assert.Equal(t, image.Rect(0, 0, 1, 1), out.Bounds())
}

func TestTrim_UniformImageUnchanged(t *testing.T) {
	img := solid(4, 4, color.NRGBA{R: 9, G: 9, B: 9, A: 255})
	out := Trim(img, TrimTolerance)
	assert.Same(t, img, out)
}

func TestTrim_NoPadding(t *testing.T) {
	img := solid(3, 3, color.NRGBA{A: 255})
	img.SetNRGBA(2, 2, color.NRGBA{R: 255, A: 255})
	img.SetNRGBA(0, 0, color.NRGBA{G: 255, A: 255})
	out := Trim(img, TrimTolerance)
	assert.Same(t, img, out)
}
