package decode

import (
	"testing"

	"github.com/soocke/tmplmatch/match"
)

func gradientImg(w, h int) match.Image {
	pixels := make([]uint8, w*h)
	for i := range pixels {
		pixels[i] = uint8(i % 256)
	}
	return match.Image{Pixels: pixels, Width: w, Height: h}
}

func TestExtractROI_CentersAndClamps(t *testing.T) {
	img := gradientImg(100, 100)
	roi, err := ExtractROI(img, 50, 50, 40)
	if err != nil {
		t.Fatalf("ExtractROI: %v", err)
	}
	if roi.Width != 40 || roi.Height != 40 {
		t.Fatalf("expected 40x40, got %dx%d", roi.Width, roi.Height)
	}
}

func TestExtractROI_ClampsNearEdge(t *testing.T) {
	img := gradientImg(20, 20)
	roi, err := ExtractROI(img, 2, 2, 10)
	if err != nil {
		t.Fatalf("ExtractROI: %v", err)
	}
	if roi.Width > 20 || roi.Height > 20 {
		t.Fatalf("roi exceeds frame bounds: %dx%d", roi.Width, roi.Height)
	}
}

func TestExtractROI_SizeAdjustedWhenTooLarge(t *testing.T) {
	img := gradientImg(30, 30)
	roi, err := ExtractROI(img, 5, 5, 50)
	if err != nil {
		t.Fatalf("ExtractROI: %v", err)
	}
	if roi.Width > 30 || roi.Height > 30 {
		t.Fatalf("roi beyond frame: %dx%d", roi.Width, roi.Height)
	}
}

func TestExtractROI_MinSize(t *testing.T) {
	img := gradientImg(10, 10)
	roi, err := ExtractROI(img, 0, 0, 0)
	if err != nil {
		t.Fatalf("ExtractROI: %v", err)
	}
	if roi.Width != 1 || roi.Height != 1 {
		t.Fatalf("expected 1x1 got %dx%d", roi.Width, roi.Height)
	}
}
