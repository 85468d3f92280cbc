// Package match implements translation-only, grayscale template matching
// by Normalized Cross-Correlation (NCC): a single-best pyramid search and
// a multi-match strided search with non-maximum suppression.
package match

import (
	"errors"
	"fmt"
)

// Image is a decoded 8-bit grayscale source or template, row-major.
type Image struct {
	Pixels []uint8
	Width  int
	Height int
}

// ErrShapeMismatch is returned when an Image's pixel slice length disagrees
// with its declared Width*Height.
var ErrShapeMismatch = errors.New("match: pixel count does not match width*height")

// validate refuses malformed images before any work is scheduled.
func (img Image) validate(name string) error {
	if img.Width <= 0 || img.Height <= 0 {
		return fmt.Errorf("match: %s has non-positive dimensions %dx%d", name, img.Width, img.Height)
	}
	if len(img.Pixels) != img.Width*img.Height {
		return fmt.Errorf("%w: %s has %d pixels, want %d (%dx%d)", ErrShapeMismatch, name, len(img.Pixels), img.Width*img.Height, img.Width, img.Height)
	}
	return nil
}

// Result is a single template occurrence: the top-left alignment and its
// NCC confidence in [-1, 1].
type Result struct {
	X, Y       int
	Confidence float64
}

// String renders the result the way the engine's original PyO3 binding
// rendered its match objects: "MatchResult(x=…, y=…, confidence=0.1234)".
func (r Result) String() string {
	return fmt.Sprintf("MatchResult(x=%d, y=%d, confidence=%.4f)", r.X, r.Y, r.Confidence)
}

// Tuple projects the result onto its three scalar fields.
func (r Result) Tuple() (int, int, float64) {
	return r.X, r.Y, r.Confidence
}

// Box projects the result onto a bounding box given the template's
// dimensions, which the Result itself does not carry.
func (r Result) Box(w, h int) (x, y, width, height int) {
	return r.X, r.Y, w, h
}

const (
	// DefaultThreshold is the NCC score below which no result is reported.
	DefaultThreshold = 0.8
	// DefaultMaxCount bounds the number of matches FindAll returns.
	DefaultMaxCount = 10
)
