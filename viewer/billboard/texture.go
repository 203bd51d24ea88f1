package billboard

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/anthonynsimon/bild/transform"
	"golang.org/x/image/vector"

	// Extra decoders for imgio.Open; png and jpeg come with bild.
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

var ErrEmptyImage = errors.New("image has no pixels")

// Load decodes the image at path. When maxSize > 0 and the image is larger,
// it is downscaled so its longest side is maxSize, keeping the aspect ratio.
func Load(path string, maxSize int) (image.Image, error) {
	img, err := imgio.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, fmt.Errorf("load %s: %w", path, ErrEmptyImage)
	}
	return Fit(img, maxSize), nil
}

// Fit downscales img so that neither side exceeds maxSize.
func Fit(img image.Image, maxSize int) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if maxSize <= 0 || (w <= maxSize && h <= maxSize) {
		return img
	}
	if w >= h {
		h = max(1, int(math.Round(float64(h)*float64(maxSize)/float64(w))))
		w = maxSize
	} else {
		w = max(1, int(math.Round(float64(w)*float64(maxSize)/float64(h))))
		h = maxSize
	}
	return transform.Resize(img, w, h, transform.Linear)
}

// Placeholder is a filled disc used when no image is configured.
func Placeholder(size int, c color.Color) image.Image {
	if size <= 0 {
		size = 64
	}
	dst := image.NewRGBA(image.Rect(0, 0, size, size))

	const segments = 64
	cx := float32(size) / 2
	rad := cx * 0.9
	z := vector.NewRasterizer(size, size)
	z.MoveTo(cx+rad, cx)
	for i := 1; i < segments; i++ {
		a := 2 * math.Pi * float64(i) / segments
		z.LineTo(cx+rad*float32(math.Cos(a)), cx+rad*float32(math.Sin(a)))
	}
	z.ClosePath()
	z.Draw(dst, dst.Bounds(), image.NewUniform(c), image.Point{})
	return dst
}
