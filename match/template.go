package match

import "math"

// minStd floors the template standard deviation so a uniform template never
// divides by zero. Such a template is degenerate but permitted: it will
// score near zero against any non-matching region.
const minStd = 1e-10

// templateProfile is the mean-centered template plus a precomputed
// inverse-scale factor used by the NCC primitive.
type templateProfile struct {
	width, height int
	normalized    []float64 // data[i] - mean, sums to zero within float tolerance
	invStdN       float64   // 1 / (sigma * N)
}

// buildTemplateProfile computes mean, variance, sigma (floored at minStd),
// the mean-centered pixels, and invStdN = 1/(sigma*N) from a raw template
// buffer.
func buildTemplateProfile(g *grayBuffer) *templateProfile {
	n := float64(g.width * g.height)
	var sum, sumSq float64
	for _, v := range g.data {
		sum += v
		sumSq += v * v
	}
	mean := sum / n
	variance := sumSq/n - mean*mean
	sigma := math.Sqrt(math.Max(variance, 0))
	if sigma < minStd {
		sigma = minStd
	}
	normalized := make([]float64, len(g.data))
	for i, v := range g.data {
		normalized[i] = v - mean
	}
	return &templateProfile{
		width:      g.width,
		height:     g.height,
		normalized: normalized,
		invStdN:    1 / (sigma * n),
	}
}
