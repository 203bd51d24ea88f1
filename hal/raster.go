package hal

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Raster is an in-memory Display used by the headless runner.
type Raster struct {
	img   *image.RGBA
	bg    color.RGBA
	fg    color.RGBA
	draws int
	texts int
}

func NewRaster(w, h int) *Raster {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	r := &Raster{
		img: image.NewRGBA(image.Rect(0, 0, w, h)),
		bg:  color.RGBA{R: 0x1b, G: 0x1b, B: 0x1b, A: 0xff},
		fg:  color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	}
	r.Clear()
	return r
}

func (r *Raster) Size() (int, int) {
	b := r.img.Bounds()
	return b.Dx(), b.Dy()
}

// Clear fills the raster with the background and resets the counters.
func (r *Raster) Clear() {
	draw.Draw(r.img, r.img.Bounds(), image.NewUniform(r.bg), image.Point{}, draw.Src)
	r.draws = 0
	r.texts = 0
}

func (r *Raster) DrawImage(img image.Image, x, y, w, h float64) {
	if img == nil || w <= 0 || h <= 0 {
		return
	}
	dst := image.Rect(
		int(math.Floor(x)), int(math.Floor(y)),
		int(math.Floor(x+w)), int(math.Floor(y+h)),
	)
	r.draws++
	if dst.Empty() || !dst.Overlaps(r.img.Bounds()) {
		return
	}
	draw.ApproxBiLinear.Scale(r.img, dst, img, img.Bounds(), draw.Over, nil)
}

func (r *Raster) DrawText(x, y int, s string) {
	r.texts++
	d := font.Drawer{
		Dst:  r.img,
		Src:  image.NewUniform(r.fg),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y+basicfont.Face7x13.Ascent),
	}
	d.DrawString(s)
}

// Image returns the backing image. It is reused between frames.
func (r *Raster) Image() *image.RGBA { return r.img }

// Draws is the number of DrawImage calls since the last Clear.
func (r *Raster) Draws() int { return r.draws }

// Texts is the number of DrawText calls since the last Clear.
func (r *Raster) Texts() int { return r.texts }
