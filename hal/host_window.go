//go:build cgo

package hal

import (
	"image"
	"image/color"

	"umapview/internal/buildinfo"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// WindowConfig controls the desktop window.
type WindowConfig struct {
	Title     string
	Width     int
	Height    int
	Maximized bool
	TPS       int
}

// RunWindow opens a desktop window and drives the app until it closes.
func RunWindow(cfg WindowConfig, h HAL, newApp func(HAL) (App, error)) error {
	a, err := newApp(h)
	if err != nil {
		return err
	}
	if cfg.Title == "" {
		cfg.Title = "umapview"
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		cfg.Width, cfg.Height = 1280, 800
	}
	if cfg.TPS <= 0 {
		cfg.TPS = 60
	}

	ebiten.SetWindowTitle(cfg.Title + " (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if cfg.Maximized {
		ebiten.MaximizeWindow()
	}
	ebiten.SetTPS(cfg.TPS)

	h.Logger().Info("window starting", "size", [2]int{cfg.Width, cfg.Height}, "tps", cfg.TPS)
	return ebiten.RunGame(&hostGame{app: a, textures: make(map[image.Image]*ebiten.Image)})
}

type hostGame struct {
	app      App
	textures map[image.Image]*ebiten.Image
}

func (g *hostGame) Update() error {
	return g.app.Update()
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 0x1b, G: 0x1b, B: 0x1b, A: 0xff})
	g.app.Draw(&ebitenDisplay{screen: screen, textures: g.textures})
}

// Layout keeps the logical screen equal to the window so the viewport
// follows resizes.
func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

type ebitenDisplay struct {
	screen   *ebiten.Image
	textures map[image.Image]*ebiten.Image
}

func (d *ebitenDisplay) Size() (int, int) {
	b := d.screen.Bounds()
	return b.Dx(), b.Dy()
}

func (d *ebitenDisplay) DrawImage(img image.Image, x, y, w, h float64) {
	if img == nil || w <= 0 || h <= 0 {
		return
	}
	tex, ok := d.textures[img]
	if !ok {
		tex = ebiten.NewImageFromImage(img)
		d.textures[img] = tex
	}
	b := tex.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w/float64(b.Dx()), h/float64(b.Dy()))
	op.GeoM.Translate(x, y)
	op.Filter = ebiten.FilterLinear
	d.screen.DrawImage(tex, op)
}

func (d *ebitenDisplay) DrawText(x, y int, s string) {
	ebitenutil.DebugPrintAt(d.screen, s, x, y)
}
