package match

// downsample performs block-mean decimation of g by an integer factor,
// producing a buffer of dimensions (W/scale, H/scale) (floor division)
// whose pixel (x, y) is the arithmetic mean of the scale*scale block
// starting at (x*scale, y*scale) in g. Trailing pixels outside the last
// full block, on the right and bottom edges, are discarded — a coarse
// match near those edges can therefore be unreachable; refinement will not
// recover it if the true match lies within the dropped strip.
func downsample(g *grayBuffer, scale int) *grayBuffer {
	if scale <= 1 {
		out := make([]float64, len(g.data))
		copy(out, g.data)
		return &grayBuffer{data: out, width: g.width, height: g.height}
	}

	dw := g.width / scale
	dh := g.height / scale
	out := make([]float64, dw*dh)
	area := float64(scale * scale)
	for y := 0; y < dh; y++ {
		for x := 0; x < dw; x++ {
			var sum float64
			baseX, baseY := x*scale, y*scale
			for by := 0; by < scale; by++ {
				row := (baseY + by) * g.width
				for bx := 0; bx < scale; bx++ {
					sum += g.data[row+baseX+bx]
				}
			}
			out[y*dw+x] = sum / area
		}
	}
	return &grayBuffer{data: out, width: dw, height: dh}
}
