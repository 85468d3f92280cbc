package match

// integralImage holds two zero-padded summed-area tables over a grayBuffer:
// sum of luminance and sum of squared luminance. getStats answers any
// rectangle query in O(1).
type integralImage struct {
	sum   []float64
	sqSum []float64
	w, h  int // dimensions of the padded table, i.e. source width/height + 1
}

// buildIntegral constructs the padded summed-area tables for g using the
// inclusion-exclusion recurrence:
//
//	T[y+1, x+1] = data[y, x] + T[y, x+1] + T[y+1, x] - T[y, x]
func buildIntegral(g *grayBuffer) *integralImage {
	W, H := g.width, g.height
	tw, th := W+1, H+1
	sum := make([]float64, tw*th)
	sqSum := make([]float64, tw*th)
	for y := 0; y < H; y++ {
		for x := 0; x < W; x++ {
			v := g.at(x, y)
			above := sum[y*tw+(x+1)]
			left := sum[(y+1)*tw+x]
			diag := sum[y*tw+x]
			sum[(y+1)*tw+(x+1)] = v + above + left - diag

			v2 := v * v
			above2 := sqSum[y*tw+(x+1)]
			left2 := sqSum[(y+1)*tw+x]
			diag2 := sqSum[y*tw+x]
			sqSum[(y+1)*tw+(x+1)] = v2 + above2 + left2 - diag2
		}
	}
	return &integralImage{sum: sum, sqSum: sqSum, w: tw, h: th}
}

// getStats returns the sum (S) and sum-of-squares (Q) of luminances inside
// the w*h rectangle whose top-left corner is (x, y). Callers must ensure
// x+w <= W and y+h <= H.
func (t *integralImage) getStats(x, y, w, h int) (S, Q float64) {
	tw := t.w
	x1, y1 := x+w, y+h
	S = t.sum[y1*tw+x1] - t.sum[y*tw+x1] - t.sum[y1*tw+x] + t.sum[y*tw+x]
	Q = t.sqSum[y1*tw+x1] - t.sqSum[y*tw+x1] - t.sqSum[y1*tw+x] + t.sqSum[y*tw+x]
	return S, Q
}
