package imageproc

import (
	"image"

	"github.com/disintegration/imaging"
)

// TrimTolerance is the per-channel difference from the top-left pixel that
// still counts as padding.
const TrimTolerance = 10

// Trim crops the uniform border that shares the colour of the top-left pixel.
// An image with no foreground is returned unchanged.
func Trim(img *image.NRGBA, tolerance uint8) *image.NRGBA {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w == 0 || h == 0 {
		return img
	}

	bg := img.Pix[0:4]
	minX, minY, maxX, maxY := w, h, -1, -1
	for y := 0; y < h; y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+w*4]
		for x := 0; x < w; x++ {
			if !differs(row[x*4:x*4+4], bg, tolerance) {
				continue
			}
			minX, maxX = min(minX, x), max(maxX, x)
			minY, maxY = min(minY, y), max(maxY, y)
		}
	}
	if maxX < 0 {
		return img
	}
	if minX == 0 && minY == 0 && maxX == w-1 && maxY == h-1 {
		return img
	}
	return imaging.Crop(img, image.Rect(minX, minY, maxX+1, maxY+1).Add(bounds.Min))
}

func differs(px, bg []uint8, tolerance uint8) bool {
	for i := 0; i < 4; i++ {
		d := int(px[i]) - int(bg[i])
		if d < 0 {
			d = -d
		}
		if d > int(tolerance) {
			return true
		}
	}
	return false
}
