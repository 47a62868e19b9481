package knobs

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures the Run convenience loop.
type RunConfig struct {
	Title  string
	Width  int // logical screen width; defaults to 640
	Height int // logical screen height; defaults to 480

	// OnUpdate, if set, is called once per frame before the panel updates.
	// Returning an error stops the loop.
	OnUpdate func() error

	// OnDraw, if set, draws the application's own frame. The overlay (and any
	// content tree returned by the build function) is drawn on top of it.
	OnDraw func(screen *ebiten.Image)
}

// game adapts a Panel to ebiten.Game.
type game struct {
	panel *Panel
	cfg   RunConfig
}

func (g *game) Update() error {
	if g.cfg.OnUpdate != nil {
		if err := g.cfg.OnUpdate(); err != nil {
			return err
		}
	}
	g.panel.Update()
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.cfg.OnDraw != nil {
		g.cfg.OnDraw(screen)
	}
	g.panel.Draw(screen)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}

// Run creates a window and drives the panel's frame loop until the window is
// closed. For full control, implement ebiten.Game yourself and call
// [Panel.Update] and [Panel.Draw] directly.
func Run(panel *Panel, cfg RunConfig) error {
	if panel == nil {
		return errors.New("knobs: nil panel")
	}
	if cfg.Width <= 0 {
		cfg.Width = defaultScreenW
	}
	if cfg.Height <= 0 {
		cfg.Height = defaultScreenH
	}
	panel.screenW = cfg.Width
	panel.screenH = cfg.Height

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(cfg.Title)
	return ebiten.RunGame(&game{panel: panel, cfg: cfg})
}
