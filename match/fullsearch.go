package match

import "github.com/soocke/tmplmatch/workerpool"

// rowBest is the best alignment found within a single row of the alignment
// grid, produced independently of every other row.
type rowBest struct {
	x, y    int
	score   float64
	found   bool // false if the row contributed no alignment (w > 0 guaranteed, so always true when scanned)
}

// fullSearch evaluates the NCC primitive at every alignment in
// [0, W-w] x [0, H-h], parallelized over rows, and returns the best
// alignment if its score meets threshold. Returns found=false immediately
// if the template exceeds the source in either dimension.
//
// Tie-break: within a row the first alignment (ascending x) with the row's
// maximum score wins. Across rows, each row-best is stored at its row index
// and the reducer walks them in ascending row order after all rows finish,
// so among equal scores the row-best with the smallest y wins regardless of
// which goroutine completed first.
func fullSearch(src *grayBuffer, integral *integralImage, tp *templateProfile, threshold float64) (Result, bool) {
	w, h := tp.width, tp.height
	W, H := src.width, src.height
	if w > W || h > H {
		return Result{}, false
	}

	rows := H - h + 1
	bests := make([]rowBest, rows)
	workerpool.ParallelRows(rows, func(row int) {
		y := row
		best := rowBest{score: -2}
		for x := 0; x <= W-w; x++ {
			score := nccAt(src, integral, tp, x, y)
			if score > best.score {
				best = rowBest{x: x, y: y, score: score, found: true}
			}
		}
		bests[row] = best
	})

	best := rowBest{score: -2}
	for _, rb := range bests {
		if rb.found && rb.score > best.score {
			best = rb
		}
	}
	if !best.found || best.score < threshold {
		return Result{}, false
	}
	return Result{X: best.x, Y: best.y, Confidence: best.score}, true
}

// regionSearch is fullSearch bounded to the inclusive alignment rectangle
// [x1, x2] x [y1, y2]. Single-threaded: used as the pyramid strategy's
// refinement step, whose window is already small.
func regionSearch(src *grayBuffer, integral *integralImage, tp *templateProfile, threshold float64, x1, y1, x2, y2 int) (Result, bool) {
	best := rowBest{score: -2}
	for y := y1; y <= y2; y++ {
		for x := x1; x <= x2; x++ {
			score := nccAt(src, integral, tp, x, y)
			if score > best.score {
				best = rowBest{x: x, y: y, score: score, found: true}
			}
		}
	}
	if !best.found || best.score < threshold {
		return Result{}, false
	}
	return Result{X: best.x, Y: best.y, Confidence: best.score}, true
}
