package match

import (
	"sort"

	"github.com/soocke/tmplmatch/workerpool"
)

// multiMatchStride is the spacing, in pixels, between sampled alignments in
// the coarse sweep. A stride of 2 gives a 4x speedup over evaluating every
// alignment; local refinement recovers exactness within each stride cell.
const multiMatchStride = 2

// candidateFloorFactor admits near-misses from the coarse sweep that local
// refinement may promote past threshold. Not analytically justified for
// thresholds near 0: the floor then approaches 0 and every alignment with a
// non-negative score becomes a candidate.
const candidateFloorFactor = 0.9

// FindAll locates up to maxCount non-overlapping occurrences of template
// inside source scoring at or above threshold, sorted by confidence
// descending. err is non-nil only for a shape mismatch; an empty result
// with a nil error means no alignment met threshold.
func FindAll(source, template Image, threshold float64, maxCount int) ([]Result, error) {
	if err := source.validate("source"); err != nil {
		return nil, err
	}
	if err := template.validate("template"); err != nil {
		return nil, err
	}
	return findAll(source, template, threshold, maxCount), nil
}

func findAll(source, template Image, threshold float64, maxCount int) []Result {
	w, h := template.Width, template.Height
	W, H := source.Width, source.Height
	if w > W || h > H || maxCount <= 0 {
		return nil
	}

	srcBuf := acquireSourceBuffer(source)
	defer releaseSourceBuffer(srcBuf)
	integral := buildIntegral(srcBuf)
	tp := cachedTemplateProfile(template)

	candidates := strideSweep(srcBuf, integral, tp, threshold*candidateFloorFactor, multiMatchStride)
	refined := refineCandidates(srcBuf, integral, tp, candidates, threshold, multiMatchStride, W, H)

	sort.Slice(refined, func(i, j int) bool { return refined[i].Confidence > refined[j].Confidence })

	return suppress(refined, w, h, maxCount)
}

// strideSweep evaluates the NCC primitive at every alignment on the stride
// grid, parallelized over sampled rows, collecting every alignment scoring
// at or above floor.
func strideSweep(src *grayBuffer, integral *integralImage, tp *templateProfile, floor float64, stride int) []Result {
	w, h := tp.width, tp.height
	W, H := src.width, src.height

	rows := (H-h)/stride + 1
	perRow := make([][]Result, rows)
	workerpool.ParallelRows(rows, func(row int) {
		y := row * stride
		var hits []Result
		for x := 0; x <= W-w; x += stride {
			score := nccAt(src, integral, tp, x, y)
			if score >= floor {
				hits = append(hits, Result{X: x, Y: y, Confidence: score})
			}
		}
		perRow[row] = hits
	})

	var out []Result
	for _, hits := range perRow {
		out = append(out, hits...)
	}
	return out
}

// refineCandidates re-evaluates NCC over the stride*stride block anchored at
// each candidate (clamped to the admissible alignment range) to find the
// true local max, discarding candidates whose refined score falls below
// threshold.
func refineCandidates(src *grayBuffer, integral *integralImage, tp *templateProfile, candidates []Result, threshold float64, stride, W, H int) []Result {
	w, h := tp.width, tp.height
	maxX, maxY := W-w, H-h

	refined := make([]Result, 0, len(candidates))
	for _, c := range candidates {
		x2 := min(c.X+stride-1, maxX)
		y2 := min(c.Y+stride-1, maxY)

		best := Result{Confidence: -2}
		for y := c.Y; y <= y2; y++ {
			for x := c.X; x <= x2; x++ {
				score := nccAt(src, integral, tp, x, y)
				if score > best.Confidence {
					best = Result{X: x, Y: y, Confidence: score}
				}
			}
		}
		if best.Confidence >= threshold {
			refined = append(refined, best)
		}
	}
	return refined
}

// suppress walks matches in descending-confidence order and accepts a
// candidate only if it is separated from every already-accepted match by
// at least half the template's width or height, stopping once maxCount
// have been accepted.
func suppress(sorted []Result, w, h, maxCount int) []Result {
	halfW, halfH := w/2, h/2
	var accepted []Result
	for _, cand := range sorted {
		ok := true
		for _, f := range accepted {
			dx := abs(cand.X - f.X)
			dy := abs(cand.Y - f.Y)
			if dx < halfW && dy < halfH {
				ok = false
				break
			}
		}
		if ok {
			accepted = append(accepted, cand)
			if len(accepted) >= maxCount {
				break
			}
		}
	}
	return accepted
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
