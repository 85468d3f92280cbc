package match

// grayBuffer is a dense, row-major array of floating-point luminances.
// Immutable once constructed; its lifetime spans one matching call.
type grayBuffer struct {
	data   []float64
	width  int
	height int
}

// newGrayBuffer copies an 8-bit Image into a float64 working buffer. The
// caller has already validated img's shape.
func newGrayBuffer(img Image) *grayBuffer {
	data := make([]float64, len(img.Pixels))
	for i, p := range img.Pixels {
		data[i] = float64(p)
	}
	return &grayBuffer{data: data, width: img.Width, height: img.Height}
}

func (g *grayBuffer) at(x, y int) float64 {
	return g.data[y*g.width+x]
}
