package main

import (
	"errors"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/seqsense/cubeview/viewport"
)

const strokeWidth = 2

var errNoTarget = errors.New("no render target")

// wireRenderer draws the cube edges with ebiten vector graphics.
type wireRenderer struct {
	target        *ebiten.Image
	width, height int
	fg, bg        color.RGBA
	released      bool
}

func newWireRenderer(cfg viewport.Config) *wireRenderer {
	return &wireRenderer{
		fg: rgba(cfg.CubeColor),
		bg: rgba(cfg.Background),
	}
}

func (r *wireRenderer) Size() (int, int) {
	return r.width, r.height
}

func (r *wireRenderer) Render(cam viewport.CameraParams, cube *viewport.Cube) error {
	if r.target == nil || r.released {
		return errNoTarget
	}
	r.target.Fill(r.bg)

	mvp := cam.MVP(cube.ModelMatrix())
	vs := cube.Vertices()
	type point struct {
		x, y float32
		ok   bool
	}
	pp := make([]point, len(vs))
	for i, v := range vs {
		x, y, ok := viewport.Project(mvp, v, r.width, r.height)
		pp[i] = point{x, y, ok}
	}
	for _, e := range cube.Edges() {
		p0, p1 := pp[e[0]], pp[e[1]]
		if !p0.ok || !p1.ok {
			continue
		}
		vector.StrokeLine(r.target, p0.x, p0.y, p1.x, p1.y, strokeWidth, r.fg, true)
	}
	return nil
}

func (r *wireRenderer) Release() error {
	r.released = true
	r.target = nil
	return nil
}
