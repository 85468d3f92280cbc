package match

import "testing"

func TestAcquireReleaseSourceBuffer_RoundTrip(t *testing.T) {
	img := gradientImage(8, 8)
	g := acquireSourceBuffer(img)
	if g.width != 8 || g.height != 8 {
		t.Fatalf("unexpected dims %dx%d", g.width, g.height)
	}
	for i, p := range img.Pixels {
		if g.data[i] != float64(p) {
			t.Fatalf("pixel %d = %v, want %v", i, g.data[i], p)
		}
	}
	releaseSourceBuffer(g)

	// A subsequent acquisition of equal or smaller size should still
	// produce correct contents even if it reused the pooled backing array.
	g2 := acquireSourceBuffer(img)
	for i, p := range img.Pixels {
		if g2.data[i] != float64(p) {
			t.Fatalf("pixel %d = %v, want %v after pool reuse", i, g2.data[i], p)
		}
	}
}

func TestReleaseSourceBuffer_NilSafe(t *testing.T) {
	releaseSourceBuffer(nil)
	releaseSourceBuffer(&grayBuffer{})
}
