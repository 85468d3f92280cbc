package match

import "sync"

// sourcePool reuses the float64 backing array for a call's source
// grayscale buffer, the way the teacher's frame pool
// (domain/capture/frame_pool.go) reuses *image.RGBA backing slices to cut
// heap churn for large, frequently-captured images. Only the source buffer
// is pooled: per §5's resource model it is the dominant O(W*H) allocation
// of a call. Template buffers are tiny and already held long-term by the
// template-profile cache (cache.go), so pooling them would buy nothing.
var sourcePool sync.Pool

// acquireSourceBuffer returns a grayBuffer for img, reusing a pooled
// backing array when one of sufficient capacity is available.
func acquireSourceBuffer(img Image) *grayBuffer {
	n := len(img.Pixels)
	var data []float64
	if v := sourcePool.Get(); v != nil {
		pooled := v.([]float64)
		if cap(pooled) >= n {
			data = pooled[:n]
		}
	}
	if data == nil {
		data = make([]float64, n)
	}
	for i, p := range img.Pixels {
		data[i] = float64(p)
	}
	return &grayBuffer{data: data, width: img.Width, height: img.Height}
}

// releaseSourceBuffer returns g's backing array to the pool. g must not be
// used again by the caller afterward.
func releaseSourceBuffer(g *grayBuffer) {
	if g == nil || g.data == nil {
		return
	}
	sourcePool.Put(g.data)
}
