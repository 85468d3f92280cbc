package match

import "testing"

func TestIntegral_FullRectangleEqualsTotalSum(t *testing.T) {
	img := gradientImage(10, 7)
	g := newGrayBuffer(img)
	ii := buildIntegral(g)

	var want float64
	for _, v := range g.data {
		want += v
	}
	got, _ := ii.getStats(0, 0, 10, 7)
	if diff := got - want; diff > 1e-6 || diff < -1e-6 {
		t.Fatalf("full-rectangle sum = %v, want %v", got, want)
	}
}

func TestIntegral_SubRectangleMatchesDirectSum(t *testing.T) {
	img := gradientImage(16, 16)
	g := newGrayBuffer(img)
	ii := buildIntegral(g)

	x, y, w, h := 3, 4, 5, 6
	var wantS, wantQ float64
	for ty := 0; ty < h; ty++ {
		for tx := 0; tx < w; tx++ {
			v := g.at(x+tx, y+ty)
			wantS += v
			wantQ += v * v
		}
	}
	gotS, gotQ := ii.getStats(x, y, w, h)
	if diff := gotS - wantS; diff > 1e-6 || diff < -1e-6 {
		t.Fatalf("sum = %v, want %v", gotS, wantS)
	}
	if diff := gotQ - wantQ; diff > 1e-6 || diff < -1e-6 {
		t.Fatalf("sumSq = %v, want %v", gotQ, wantQ)
	}
}

func TestIntegral_ZeroPadding(t *testing.T) {
	img := uniformImage(4, 4, 10)
	g := newGrayBuffer(img)
	ii := buildIntegral(g)
	if ii.sum[0] != 0 {
		t.Fatalf("padding row/col must read zero, got %v", ii.sum[0])
	}
}
