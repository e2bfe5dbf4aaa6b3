package main

import (
	"math"
)

type pointer struct {
	x, y int
}

// pinch turns a two finger gesture into scroll deltas.
// Spreading the fingers gives negative delta, moving the camera closer.
type pinch struct {
	pointers map[int]pointer
	span0    float64
	onScroll func(deltaY float64)
}

func newPinch(onScroll func(deltaY float64)) *pinch {
	return &pinch{
		pointers: make(map[int]pointer),
		onScroll: onScroll,
	}
}

func (p *pinch) span() float64 {
	var pp []pointer
	for _, v := range p.pointers {
		pp = append(pp, v)
	}
	return math.Hypot(float64(pp[0].x-pp[1].x), float64(pp[0].y-pp[1].y))
}

func (p *pinch) down(id, x, y int) {
	p.pointers[id] = pointer{x: x, y: y}
	if len(p.pointers) == 2 {
		p.span0 = p.span()
	}
}

func (p *pinch) move(id, x, y int) {
	if _, ok := p.pointers[id]; !ok {
		return
	}
	p.pointers[id] = pointer{x: x, y: y}
	if len(p.pointers) != 2 {
		return
	}
	d := p.span()
	p.onScroll((p.span0 - d) / 10)
	p.span0 = d
}

func (p *pinch) up(id int) {
	delete(p.pointers, id)
	if len(p.pointers) == 2 {
		p.span0 = p.span()
	}
}

func (p *pinch) active() bool {
	return len(p.pointers) >= 2
}
