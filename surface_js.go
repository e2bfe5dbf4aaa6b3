package main

import (
	"syscall/js"

	"github.com/seqsense/cubeview/viewport"
)

// canvasSurface delivers wheel and pinch input of the canvas only.
type canvasSurface struct {
	canvas js.Value
}

func (s canvasSurface) listen(name string, fn func(js.Value)) (remove func()) {
	f := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		fn(args[0])
		return nil
	})
	s.canvas.Call("addEventListener", name, f, map[string]interface{}{
		"passive": false,
	})
	return func() {
		s.canvas.Call("removeEventListener", name, f)
		f.Release()
	}
}

func (s canvasSurface) OnWheel(cb func(viewport.WheelEvent)) func() {
	p := newPinch(func(d float64) {
		cb(viewport.WheelEvent{DeltaY: d, DeltaMode: viewport.DeltaPixel})
	})
	pointerUp := func(e js.Value) {
		p.up(e.Get("pointerId").Int())
	}
	removers := []func(){
		s.listen("wheel", func(e js.Value) {
			e.Call("preventDefault")
			e.Call("stopPropagation")
			cb(viewport.WheelEvent{
				DeltaY:    e.Get("deltaY").Float(),
				DeltaMode: viewport.DeltaMode(e.Get("deltaMode").Int()),
			})
		}),
		s.listen("pointerdown", func(e js.Value) {
			p.down(e.Get("pointerId").Int(), e.Get("offsetX").Int(), e.Get("offsetY").Int())
		}),
		s.listen("pointermove", func(e js.Value) {
			p.move(e.Get("pointerId").Int(), e.Get("offsetX").Int(), e.Get("offsetY").Int())
			if p.active() {
				e.Call("preventDefault")
			}
		}),
		s.listen("pointerup", pointerUp),
		s.listen("pointercancel", pointerUp),
		s.listen("pointerout", pointerUp),
	}
	return func() {
		for _, r := range removers {
			r()
		}
	}
}
