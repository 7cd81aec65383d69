package imageproc

import (
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
	"github.com/lucasb-eyer/go-colorful"
)

// Tint keeps the lightness of every pixel and replaces its chroma with the
// chroma of c, in CIE Lab. Alpha is left as is.
func Tint(img *image.NRGBA, c color.NRGBA) *image.NRGBA {
	_, ta, tb := toColorful(c).Lab()
	return imaging.AdjustFunc(img, func(px color.NRGBA) color.NRGBA {
		l, _, _ := toColorful(px).Lab()
		r, g, b := colorful.Lab(l, ta, tb).Clamped().RGB255()
		return color.NRGBA{R: r, G: g, B: b, A: px.A}
	})
}

// Linear applies out = a*in + b to the color channels.
func Linear(img *image.NRGBA, a, b float64) *image.NRGBA {
	level := func(v uint8) uint8 {
		return clamp(int(math.Round(a*float64(v) + b)))
	}
	return imaging.AdjustFunc(img, func(px color.NRGBA) color.NRGBA {
		return color.NRGBA{R: level(px.R), G: level(px.G), B: level(px.B), A: px.A}
	})
}

func toColorful(c color.NRGBA) colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}
