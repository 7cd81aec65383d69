package imageproc

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp"
)

const (
	// MedianSize is the smoothing window applied after recoloring.
	MedianSize = 3
	// DarkBrightness lightens the tinted dark-mode logo.
	DarkBrightness = 1.5
)

// DarkTint is a muted blue-gray matching the dark color scheme.
var DarkTint = color.NRGBA{R: 75, G: 85, B: 99, A: 255}

var ErrImageTooLarge = errors.New("image dimensions exceed limit")

// Decode reads any registered image format into a non-premultiplied RGBA
// buffer with its origin at (0,0). EXIF orientation is not applied. Images
// with more than maxPixels pixels are rejected from their header alone;
// maxPixels <= 0 disables the check.
func Decode(data []byte, maxPixels int) (*image.NRGBA, error) {
	if maxPixels > 0 {
		cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("decode image: %w", err)
		}
		if pixels := int64(cfg.Width) * int64(cfg.Height); pixels > int64(maxPixels) {
			return nil, fmt.Errorf("%w: %dx%d over %d pixels", ErrImageTooLarge, cfg.Width, cfg.Height, maxPixels)
		}
	}

	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	return imaging.Clone(img), nil
}

func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// Recolor prepares a brand logo for display on the site: padding is trimmed,
// white becomes transparent and, in dark mode, black turns white before the
// whole logo is tinted and brightened. The result is PNG encoded.
func Recolor(data []byte, dark bool, maxPixels int) ([]byte, error) {
	img, err := Decode(data, maxPixels)
	if err != nil {
		return nil, err
	}
	img = Trim(img, TrimTolerance)

	WhiteToTransparent(img)
	if dark {
		BlackToWhite(img)
		img = Tint(img, DarkTint)
		img = Linear(img, DarkBrightness, 0)
	}

	return EncodePNG(Median(img, MedianSize))
}
