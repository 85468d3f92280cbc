// Package decode is the matching engine's decoder collaborator: it loads
// an encoded image from a path or a byte buffer, converts it to 8-bit
// ITU-R BT.601 luminance, and yields a match.Image the engine can search.
//
// Grounded on the teacher's own embed/decode pattern
// (assets/embed.go), extended to the broader format set
// golang.org/x/image registers (BMP, TIFF) and to
// disintegration/imaging's grayscale conversion for the luminance step.
package decode

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"

	"github.com/soocke/tmplmatch/match"
)

// Kind classifies a decode failure.
type Kind int

const (
	// KindIO marks a failure to open or read the source.
	KindIO Kind = iota
	// KindFormat marks a failure to recognize or decode the image format.
	KindFormat
)

// Error is returned by DecodeFile and DecodeBytes. Source names the path
// (or "<bytes>" for DecodeBytes) that failed.
type Error struct {
	Kind   Kind
	Source string
	Err    error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindIO:
		return fmt.Sprintf("decode: cannot open/read %s: %v", e.Source, e.Err)
	default:
		return fmt.Sprintf("decode: cannot decode %s: %v", e.Source, e.Err)
	}
}

func (e *Error) Unwrap() error { return e.Err }

// DecodeFile loads an encoded image from path and converts it to grayscale.
func DecodeFile(path string) (match.Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return match.Image{}, &Error{Kind: KindIO, Source: path, Err: err}
	}
	img, err := decode(data)
	if err != nil {
		return match.Image{}, &Error{Kind: KindFormat, Source: path, Err: err}
	}
	return img, nil
}

// DecodeBytes decodes an already-loaded encoded image buffer, the
// zero-dependency path the original PyO3 binding offered as an alternative
// to a file path.
func DecodeBytes(data []byte) (match.Image, error) {
	img, err := decode(data)
	if err != nil {
		return match.Image{}, &Error{Kind: KindFormat, Source: "<bytes>", Err: err}
	}
	return img, nil
}

func decode(data []byte) (match.Image, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return match.Image{}, err
	}
	return toLuminance(src), nil
}

// toLuminance converts any decoded image to 8-bit ITU-R BT.601 luminance
// using disintegration/imaging's grayscale conversion, then flattens the
// result into a row-major pixel slice.
func toLuminance(src image.Image) match.Image {
	gray := imaging.Grayscale(src)
	b := gray.Bounds()
	w, h := b.Dx(), b.Dy()
	pixels := make([]uint8, w*h)
	for y := 0; y < h; y++ {
		row := gray.PixOffset(b.Min.X, b.Min.Y+y)
		for x := 0; x < w; x++ {
			// imaging.Grayscale returns *image.NRGBA with R==G==B==luminance.
			pixels[y*w+x] = gray.Pix[row+x*4]
		}
	}
	return match.Image{Pixels: pixels, Width: w, Height: h}
}
