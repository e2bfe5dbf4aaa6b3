package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/seqsense/cubeview/viewport"
)

// ebiten reports one notch as 1; DOM reports about 100 pixels.
const wheelNotchPixels = 100

const (
	repeatDelay    = 15
	repeatInterval = 3
	distanceStep   = 0.05
)

type game struct {
	vc    *viewport.Controller
	r     *wireRenderer
	frame *viewport.FrameHook
	wheel *viewport.WheelHook
}

func newGame(cfg viewport.Config, l viewport.Logger) (*game, error) {
	g := &game{
		r:     newWireRenderer(cfg),
		frame: &viewport.FrameHook{},
		wheel: &viewport.WheelHook{},
	}
	vc, err := viewport.New(cfg, g.r, viewport.WithLogger(l))
	if err != nil {
		return nil, err
	}
	if err := vc.Attach(g.wheel, g.frame); err != nil {
		return nil, err
	}
	g.vc = vc
	return g, nil
}

func repeating(key ebiten.Key) bool {
	d := inpututil.KeyPressDuration(key)
	return d == 1 || (d >= repeatDelay && d%repeatInterval == 0)
}

func (g *game) Update() error {
	if g.vc.Disposed() {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		if err := g.vc.Dispose(); err != nil {
			return err
		}
		return ebiten.Termination
	}

	if _, dy := ebiten.Wheel(); dy != 0 {
		// Scrolling up moves the camera closer, as DOM negative deltaY does.
		g.wheel.Emit(viewport.WheelEvent{DeltaY: -dy * wheelNotchPixels})
	}

	s := g.vc.State()
	switch {
	case repeating(ebiten.KeyArrowUp):
		g.vc.SetFocalLength(s.FocalLength + 1)
	case repeating(ebiten.KeyArrowDown):
		g.vc.SetFocalLength(s.FocalLength - 1)
	case repeating(ebiten.KeyArrowRight):
		g.vc.SetDistance(s.Distance + distanceStep)
	case repeating(ebiten.KeyArrowLeft):
		g.vc.SetDistance(s.Distance - distanceStep)
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		cfg := g.vc.Config()
		g.vc.SetDistance(cfg.Distance.Default)
		g.vc.SetFocalLengthFloat(cfg.FocalLength.Default)
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.r.target = screen
	g.frame.Fire()

	s := g.vc.State()
	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"Distance: %.2f\nFocal Length: %d\nMagnification: %.2f\n\n"+
			"wheel/left/right: distance, up/down: focal length, R: reset, Esc: quit",
		s.Distance, s.FocalLength, s.Magnification,
	))
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.r.width, g.r.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

func rgba(c uint32) color.RGBA {
	return color.RGBA{R: uint8(c >> 16), G: uint8(c >> 8), B: uint8(c), A: 0xff}
}
