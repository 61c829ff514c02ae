package flowerclock

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title         string
	Width, Height int
	ShowFPS       bool
	// Stylesheet paints the clock; nil uses DefaultStylesheet.
	Stylesheet *Stylesheet
}

// Run opens a window and drives d from ebiten's update loop until the window
// is closed. The scene is rasterized on the CPU each frame and uploaded as a
// single texture.
func Run(d *Driver, cfg RunConfig) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		cfg.Width, cfg.Height = DefaultViewportWidth, DefaultViewportHeight
	}
	if cfg.Title == "" {
		cfg.Title = "Flower Clock"
	}
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	g := &gameShell{driver: d, cfg: cfg}
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}

// gameShell adapts a Driver to ebiten.Game.
type gameShell struct {
	driver *Driver
	cfg    RunConfig

	frame   *image.RGBA
	texture *ebiten.Image
}

func (g *gameShell) Update() error {
	g.driver.Update()
	return nil
}

func (g *gameShell) Draw(screen *ebiten.Image) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	if g.frame == nil || g.frame.Bounds().Dx() != w || g.frame.Bounds().Dy() != h {
		g.frame = image.NewRGBA(image.Rect(0, 0, w, h))
		if g.texture != nil {
			g.texture.Deallocate()
		}
		g.texture = ebiten.NewImage(w, h)
	}

	Rasterize(g.frame, g.driver.Scene().Root(), g.cfg.Stylesheet)
	g.texture.WritePixels(g.frame.Pix)
	screen.DrawImage(g.texture, nil)

	if g.cfg.ShowFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
}

func (g *gameShell) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}
