package imageproc

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func solid(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func TestWhiteToTransparent(t *testing.T) {
	img := solid(1, 1, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
	WhiteToTransparent(img)
	assert.Equal(t, color.NRGBA{R: 255, G: 255, B: 255, A: 0}, img.NRGBAAt(0, 0))
}

func TestWhiteToTransparent_ThresholdIsExclusive(t *testing.T) {
	img := solid(2, 1, color.NRGBA{R: 200, G: 200, B: 200, A: 255})
	img.SetNRGBA(1, 0, color.NRGBA{R: 201, G: 200, B: 200, A: 255})
	WhiteToTransparent(img)
	assert.Equal(t, uint8(255), img.NRGBAAt(0, 0).A)
	assert.Equal(t, uint8(0), img.NRGBAAt(1, 0).A)
}

func TestBlackToWhite_KeepsAlpha(t *testing.T) {
	img := solid(1, 1, color.NRGBA{R: 0, G: 0, B: 0, A: 180})
	BlackToWhite(img)
	assert.Equal(t, color.NRGBA{R: 255, G: 255, B: 255, A: 180}, img.NRGBAAt(0, 0))
}

func TestThresholdPasses_LeaveMidGray(t *testing.T) {
	gray := color.NRGBA{R: 128, G: 128, B: 128, A: 255}
	img := solid(3, 3, gray)
	WhiteToTransparent(img)
	BlackToWhite(img)
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			assert.Equal(t, gray, img.NRGBAAt(x, y))
		}
	}
}

func TestReplaceColor_ClampsOutput(t *testing.T) {
	img := solid(2, 1, color.NRGBA{R: 10, G: 20, B: 30, A: 40})
	ReplaceColor(img,
		func(_, _, _, _ uint8) bool { return true },
		func(_, _, _, _ uint8) (int, int, int, int) { return 300, -5, 128, 256 },
	)
	assert.Equal(t, color.NRGBA{R: 255, G: 0, B: 128, A: 255}, img.NRGBAAt(0, 0))
	assert.Equal(t, color.NRGBA{R: 255, G: 0, B: 128, A: 255}, img.NRGBAAt(1, 0))
}

func TestReplaceColor_OnlyMatchedPixels(t *testing.T) {
	img := solid(2, 1, color.NRGBA{R: 1, G: 1, B: 1, A: 1})
	img.SetNRGBA(1, 0, color.NRGBA{R: 9, G: 9, B: 9, A: 9})
	ReplaceColor(img,
		func(r, _, _, _ uint8) bool { return r == 9 },
		func(r, g, b, a uint8) (int, int, int, int) { return int(r) + 1, int(g), int(b), int(a) },
	)
	assert.Equal(t, color.NRGBA{R: 1, G: 1, B: 1, A: 1}, img.NRGBAAt(0, 0))
	assert.Equal(t, color.NRGBA{R: 10, G: 9, B: 9, A: 9}, img.NRGBAAt(1, 0))
}
