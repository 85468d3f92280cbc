package decode

import (
	"errors"

	"github.com/soocke/tmplmatch/match"
)

// ExtractROI crops a square region of interest of side size, centered at
// (cx, cy), out of img. The rectangle is clamped to img's bounds and
// guaranteed to be at least 1x1 — the way a caller would narrow a large
// screen capture down to a plausible search area before calling
// match.FindSingle/FindAll on it.
//
// Grounded on the teacher's ExtractROI (ui/images/roi_extractor.go),
// adapted from *image.RGBA sub-imaging to the engine's flat uint8
// luminance buffer.
func ExtractROI(img match.Image, cx, cy, size int) (match.Image, error) {
	if img.Width <= 0 || img.Height <= 0 {
		return match.Image{}, errors.New("decode: nil image")
	}
	if size < 1 {
		size = 1
	}

	half := size / 2
	x0 := cx - half
	y0 := cy - half
	if x0 < 0 {
		x0 = 0
	}
	if y0 < 0 {
		y0 = 0
	}
	if x0 > img.Width-1 {
		x0 = img.Width - 1
	}
	if y0 > img.Height-1 {
		y0 = img.Height - 1
	}

	w, h := size, size
	if x0+w > img.Width {
		w = img.Width - x0
	}
	if y0+h > img.Height {
		h = img.Height - y0
	}
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	pixels := make([]uint8, w*h)
	for y := 0; y < h; y++ {
		srcOff := (y0+y)*img.Width + x0
		copy(pixels[y*w:(y+1)*w], img.Pixels[srcOff:srcOff+w])
	}
	return match.Image{Pixels: pixels, Width: w, Height: h}, nil
}
