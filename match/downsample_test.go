package match

import "testing"

func TestDownsample_ScaleOneIsBitIdenticalCopy(t *testing.T) {
	img := gradientImage(10, 8)
	g := newGrayBuffer(img)
	out := downsample(g, 1)
	if out.width != g.width || out.height != g.height {
		t.Fatalf("dims changed: got %dx%d, want %dx%d", out.width, out.height, g.width, g.height)
	}
	for i := range g.data {
		if out.data[i] != g.data[i] {
			t.Fatalf("pixel %d changed: got %v, want %v", i, out.data[i], g.data[i])
		}
	}
}

func TestDownsample_BlockMean(t *testing.T) {
	// 4x4 buffer of a known pattern, scale 2.
	img := Image{
		Pixels: []uint8{
			1, 2, 3, 4,
			5, 6, 7, 8,
			9, 10, 11, 12,
			13, 14, 15, 16,
		},
		Width: 4, Height: 4,
	}
	g := newGrayBuffer(img)
	out := downsample(g, 2)
	if out.width != 2 || out.height != 2 {
		t.Fatalf("unexpected dims %dx%d", out.width, out.height)
	}
	want := []float64{
		(1 + 2 + 5 + 6) / 4.0, (3 + 4 + 7 + 8) / 4.0,
		(9 + 10 + 13 + 14) / 4.0, (11 + 12 + 15 + 16) / 4.0,
	}
	for i, w := range want {
		if out.data[i] != w {
			t.Fatalf("block %d = %v, want %v", i, out.data[i], w)
		}
	}
}

func TestDownsample_DropsTrailingPixels(t *testing.T) {
	img := uniformImage(5, 5, 10)
	g := newGrayBuffer(img)
	out := downsample(g, 2)
	if out.width != 2 || out.height != 2 {
		t.Fatalf("expected floor division dims 2x2, got %dx%d", out.width, out.height)
	}
}
