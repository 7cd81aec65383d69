package imageproc

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// paddedLogo is a 6x6 white canvas with a black 4x4 mark in the middle.
func paddedLogo(t *testing.T) []byte {
	t.Helper()
	img := solid(6, 6, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
	for y := 1; y < 5; y++ {
		for x := 1; x < 5; x++ {
			img.SetNRGBA(x, y, color.NRGBA{A: 255})
		}
	}
	data, err := EncodePNG(img)
	require.NoError(t, err)
	return data
}

func TestRecolor_LightMode(t *testing.T) {
	out, err := Recolor(paddedLogo(t), false, 0)
	require.NoError(t, err)

	img, err := Decode(out, 0)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 4, 4), img.Bounds())
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			assert.Equal(t, color.NRGBA{A: 255}, img.NRGBAAt(x, y))
		}
	}
}

func TestRecolor_DarkModeTurnsInkLight(t *testing.T) {
	out, err := Recolor(paddedLogo(t), true, 0)
	require.NoError(t, err)

	img, err := Decode(out, 0)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 4, 4), img.Bounds())
	px := img.NRGBAAt(2, 2)
	assert.Equal(t, uint8(255), px.A)
	assert.Greater(t, px.R, uint8(200))
	assert.Greater(t, px.G, uint8(200))
	assert.Greater(t, px.B, uint8(200))
}

func TestRecolor_WhiteBecomesTransparent(t *testing.T) {
	img := solid(3, 3, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
	data, err := EncodePNG(img)
	require.NoError(t, err)

	for _, dark := range []bool{false, true} {
		out, err := Recolor(data, dark, 0)
		require.NoError(t, err)
		decoded, err := Decode(out, 0)
		require.NoError(t, err)
		assert.Equal(t, uint8(0), decoded.NRGBAAt(1, 1).A)
	}
}

func TestRecolor_InvalidImage(t *testing.T) {
	_, err := Recolor([]byte("definitely not an image"), false, 0)
	assert.Error(t, err)
}

func TestRecolor_RejectsOversizedDimensions(t *testing.T) {
	data, err := EncodePNG(solid(100, 50, color.NRGBA{R: 255, G: 255, B: 255, A: 255}))
	require.NoError(t, err)

	_, err = Recolor(data, false, 100*50-1)
	assert.ErrorIs(t, err, ErrImageTooLarge)

	_, err = Recolor(data, false, 100*50)
	assert.NoError(t, err)
}

func TestDecode_IgnoresLimitWhenDisabled(t *testing.T) {
	data, err := EncodePNG(solid(64, 64, color.NRGBA{A: 255}))
	require.NoError(t, err)

	img, err := Decode(data, 0)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 64, 64), img.Bounds())
}

func TestDecode_InvalidHeaderWithLimit(t *testing.T) {
	_, err := Decode([]byte("GIF89a"), 1000)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrImageTooLarge)
}

// exifRotated encodes a w x h JPEG tagged with EXIF orientation 6 (rotate 90 CW).
func exifRotated(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, solid(w, h, color.NRGBA{A: 255}), nil))
	raw := buf.Bytes()

	app1 := []byte{
		0xFF, 0xE1, 0x00, 0x22,
		'E', 'x', 'i', 'f', 0x00, 0x00,
		'M', 'M', 0x00, 0x2A, 0x00, 0x00, 0x00, 0x08,
		0x00, 0x01,
		0x01, 0x12, 0x00, 0x03, 0x00, 0x00, 0x00, 0x01, 0x00, 0x06, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00,
	}
	out := append([]byte{}, raw[:2]...)
	out = append(out, app1...)
	return append(out, raw[2:]...)
}

func TestDecode_KeepsStoredOrientation(t *testing.T) {
	img, err := Decode(exifRotated(t, 8, 4), 0)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 8, 4), img.Bounds())
}
