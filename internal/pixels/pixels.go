// Package pixels decodes image files into the flat pixel buffers the theme
// engine consumes.
package pixels

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	_ "github.com/gen2brain/avif"
	"github.com/tliron/commonlog"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/jsvensson/tonal/internal/color"
)

// Default box an image is scaled into before quantizing.
const (
	DefaultWidth  = 192
	DefaultHeight = 108
)

var log = commonlog.GetLogger("tonal.pixels")

// Load decodes the image at path, scales it into a width x height box and
// returns its opaque pixels.
func Load(path string, width, height int) ([]color.ARGB, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening image: %w", err)
	}
	defer f.Close()

	pixels, err := Decode(f, width, height)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return pixels, nil
}

// Decode is Load for an already open image stream.
func Decode(r io.Reader, width, height int) ([]color.ARGB, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decoding image: %w", err)
	}
	b := img.Bounds()
	log.Debugf("decoded %s image %dx%d", format, b.Dx(), b.Dy())

	scaled := Scale(img, width, height)
	return Flatten(scaled), nil
}

// Fit returns the largest size with the aspect ratio of w x h that fits in
// the box. Images already inside the box keep their size.
func Fit(w, h, boxW, boxH int) (int, int) {
	if w <= 0 || h <= 0 {
		return 0, 0
	}
	if boxW <= 0 || boxH <= 0 || (w <= boxW && h <= boxH) {
		return w, h
	}
	if w*boxH > h*boxW {
		return boxW, max(1, h*boxW/w)
	}
	return max(1, w*boxH/h), boxH
}

// Scale downsizes img to fit the box with Catmull-Rom resampling.
func Scale(img image.Image, boxW, boxH int) image.Image {
	b := img.Bounds()
	w, h := Fit(b.Dx(), b.Dy(), boxW, boxH)
	if w == b.Dx() && h == b.Dy() {
		return img
	}
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

// Flatten returns the opaque pixels of img in row-major order.
func Flatten(img image.Image) []color.ARGB {
	b := img.Bounds()
	out := make([]color.ARGB, 0, b.Dx()*b.Dy())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.FromColor(img.At(x, y))
			if c.Opaque() {
				out = append(out, c)
			}
		}
	}
	return out
}
