package match

// FindSingle locates the best occurrence of template inside source using
// the coarse-to-fine pyramid strategy. ok is false if no alignment meets
// threshold or if template exceeds source in either dimension; err is
// non-nil only for a shape mismatch, refused before any search runs.
func FindSingle(source, template Image, threshold float64) (result Result, ok bool, err error) {
	if err := source.validate("source"); err != nil {
		return Result{}, false, err
	}
	if err := template.validate("template"); err != nil {
		return Result{}, false, err
	}
	result, ok = findSingle(source, template, threshold)
	return result, ok, nil
}

func findSingle(source, template Image, threshold float64) (Result, bool) {
	w, h := template.Width, template.Height
	W, H := source.Width, source.Height
	if w > W || h > H {
		return Result{}, false
	}

	srcBuf := acquireSourceBuffer(source)
	defer releaseSourceBuffer(srcBuf)
	scale := pyramidScale(w, h)

	if scale >= 4 {
		return pyramidSearch(source, template, srcBuf, threshold, scale)
	}

	integral := buildIntegral(srcBuf)
	tp := cachedTemplateProfile(template)
	return fullSearch(srcBuf, integral, tp, threshold)
}

// pyramidScale derives the decimation factor: maxScale = floor(min(w,h)/16),
// rounded up to the next power of two, then capped at 8 and floored at 1.
func pyramidScale(w, h int) int {
	smaller := w
	if h < smaller {
		smaller = h
	}
	maxScale := smaller / 16
	scale := nextPowerOfTwo(maxScale)
	if scale > 8 {
		scale = 8
	}
	if scale < 1 {
		scale = 1
	}
	return scale
}

func nextPowerOfTwo(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

// pyramidSearch runs the coarse search followed by full-resolution
// refinement within a local window.
func pyramidSearch(source, template Image, srcBuf *grayBuffer, threshold float64, scale int) (Result, bool) {
	w, h := template.Width, template.Height
	W, H := source.Width, source.Height

	tmplBuf := newGrayBuffer(template)
	coarseSrc := downsample(srcBuf, scale)
	coarseTmpl := downsample(tmplBuf, scale)
	if coarseTmpl.width == 0 || coarseTmpl.height == 0 || coarseSrc.width < coarseTmpl.width || coarseSrc.height < coarseTmpl.height {
		// The decimated template vanished or no longer fits; fall back to
		// a direct full-resolution search rather than reporting no match
		// purely due to the coarse level's own degeneracy.
		integral := buildIntegral(srcBuf)
		tp := cachedTemplateProfile(template)
		return fullSearch(srcBuf, integral, tp, threshold)
	}

	coarseProfile := buildTemplateProfile(coarseTmpl)
	coarseIntegral := buildIntegral(coarseSrc)
	coarseResult, ok := fullSearch(coarseSrc, coarseIntegral, coarseProfile, threshold*0.5)
	if !ok {
		return Result{}, false
	}

	cx := coarseResult.X * scale
	cy := coarseResult.Y * scale
	margin := scale * 4

	x1 := max(0, cx-margin)
	y1 := max(0, cy-margin)
	x2 := min(cx+margin, W-w)
	y2 := min(cy+margin, H-h)

	fullIntegral := buildIntegral(srcBuf)
	fullProfile := cachedTemplateProfile(template)
	if x1 > x2 || y1 > y2 {
		return Result{}, false
	}
	return regionSearch(srcBuf, fullIntegral, fullProfile, threshold, x1, y1, x2, y2)
}
