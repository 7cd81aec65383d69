package imageproc

import "image"

const (
	// WhiteThreshold is the channel average above which a pixel counts as background white.
	WhiteThreshold = 200
	// BlackThreshold is the channel average below which a pixel counts as ink black.
	BlackThreshold = 80
)

// Matcher selects pixels for ReplaceColor.
type Matcher func(r, g, b, a uint8) bool

// Mapper returns the replacement for a selected pixel. Values outside [0,255]
// are clamped.
type Mapper func(r, g, b, a uint8) (nr, ng, nb, na int)

// ReplaceColor scans the pixel buffer once and rewrites every 4-byte group
// that match selects.
func ReplaceColor(img *image.NRGBA, match Matcher, replace Mapper) {
	pix := img.Pix
	for i := 0; i+3 < len(pix); i += 4 {
		r, g, b, a := pix[i], pix[i+1], pix[i+2], pix[i+3]
		if !match(r, g, b, a) {
			continue
		}
		nr, ng, nb, na := replace(r, g, b, a)
		pix[i] = clamp(nr)
		pix[i+1] = clamp(ng)
		pix[i+2] = clamp(nb)
		pix[i+3] = clamp(na)
	}
}

// WhiteToTransparent makes near-white pixels fully transparent, keeping their RGB.
func WhiteToTransparent(img *image.NRGBA) {
	ReplaceColor(img,
		func(r, g, b, _ uint8) bool { return channelSum(r, g, b) > 3*WhiteThreshold },
		func(r, g, b, _ uint8) (int, int, int, int) { return int(r), int(g), int(b), 0 },
	)
}

// BlackToWhite turns near-black pixels white, keeping their alpha.
func BlackToWhite(img *image.NRGBA) {
	ReplaceColor(img,
		func(r, g, b, _ uint8) bool { return channelSum(r, g, b) < 3*BlackThreshold },
		func(_, _, _, a uint8) (int, int, int, int) { return 255, 255, 255, int(a) },
	)
}

func channelSum(r, g, b uint8) int {
	return int(r) + int(g) + int(b)
}

func clamp(v int) uint8 {
	switch {
	case v < 0:
		return 0
	case v > 255:
		return 255
	default:
		return uint8(v)
	}
}
