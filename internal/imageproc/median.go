package imageproc

import "image"

// Median replaces each channel of each pixel with the median of its size×size
// neighbourhood. Edge pixels reuse the nearest row or column. size must be odd;
// sizes below 3 return an unchanged copy.
func Median(img *image.NRGBA, size int) *image.NRGBA {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	out := image.NewNRGBA(image.Rect(0, 0, w, h))
	if size < 3 || size%2 == 0 {
		for y := 0; y < h; y++ {
			copy(out.Pix[y*out.Stride:y*out.Stride+w*4], img.Pix[y*img.Stride:y*img.Stride+w*4])
		}
		return out
	}

	radius := size / 2
	window := make([]uint8, size*size)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dst := y*out.Stride + x*4
			for ch := 0; ch < 4; ch++ {
				n := 0
				for dy := -radius; dy <= radius; dy++ {
					sy := clampIndex(y+dy, h)
					for dx := -radius; dx <= radius; dx++ {
						sx := clampIndex(x+dx, w)
						window[n] = img.Pix[sy*img.Stride+sx*4+ch]
						n++
					}
				}
				out.Pix[dst+ch] = middle(window)
			}
		}
	}
	return out
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

// middle sorts v in place and returns its median element.
func middle(v []uint8) uint8 {
	for i := 1; i < len(v); i++ {
		for j := i; j > 0 && v[j-1] > v[j]; j-- {
			v[j-1], v[j] = v[j], v[j-1]
		}
	}
	return v[len(v)/2]
}
