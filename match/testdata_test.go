package match

// uniformImage returns a w*h Image filled with a single value.
func uniformImage(w, h int, value uint8) Image {
	pixels := make([]uint8, w*h)
	for i := range pixels {
		pixels[i] = value
	}
	return Image{Pixels: pixels, Width: w, Height: h}
}

// gradientImage returns a w*h Image whose pixel (x, y) is (x+y) mod 256.
func gradientImage(w, h int) Image {
	pixels := make([]uint8, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			pixels[y*w+x] = uint8((x + y) % 256)
		}
	}
	return Image{Pixels: pixels, Width: w, Height: h}
}

// pasteGradient writes a deterministic gradient patch of size pw*ph at
// (px, py) into a copy of base, returning the copy.
func pasteGradient(base Image, px, py, pw, ph int) Image {
	pixels := make([]uint8, len(base.Pixels))
	copy(pixels, base.Pixels)
	for y := 0; y < ph; y++ {
		for x := 0; x < pw; x++ {
			v := (5*x + 7*y) % 256
			pixels[(py+y)*base.Width+(px+x)] = uint8(v)
		}
	}
	return Image{Pixels: pixels, Width: base.Width, Height: base.Height}
}

// extractPatch copies the w*h rectangle at (x, y) out of src into a new
// Image, the way a caller would crop a template from a reference source.
func extractPatch(src Image, x, y, w, h int) Image {
	pixels := make([]uint8, w*h)
	for ty := 0; ty < h; ty++ {
		copy(pixels[ty*w:ty*w+w], src.Pixels[(y+ty)*src.Width+x:(y+ty)*src.Width+x+w])
	}
	return Image{Pixels: pixels, Width: w, Height: h}
}
