package match

import "math"

// nccAt returns the Pearson correlation between tp and the source window of
// tp's dimensions at alignment (x, y). Callers must ensure the window lies
// within source bounds.
//
// Window statistics come from the integral image in O(1); only the
// cross-correlation term costs O(w*h). If the window's variance is below 1.0
// it is treated as flat and the primitive returns 0 rather than a noisy
// score.
func nccAt(src *grayBuffer, integral *integralImage, tp *templateProfile, x, y int) float64 {
	w, h := tp.width, tp.height
	n := float64(w * h)

	S, Q := integral.getStats(x, y, w, h)
	meanS := S / n
	varS := Q/n - meanS*meanS
	if varS < 1.0 {
		return 0.0
	}

	var cross float64
	srcW := src.width
	for ty := 0; ty < h; ty++ {
		srcRow := (y + ty) * srcW
		tplRow := ty * w
		for tx := 0; tx < w; tx++ {
			s := src.data[srcRow+x+tx]
			cross += (s - meanS) * tp.normalized[tplRow+tx]
		}
	}

	return cross * tp.invStdN / math.Sqrt(varS)
}
