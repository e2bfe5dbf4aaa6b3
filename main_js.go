package main

import (
	"errors"
	"sync"
	"syscall/js"

	"github.com/seqsense/cubeview/viewport"
)

var errContextLostEvent = errors.New("received context lost event")

func errorToJS(err error) js.Value {
	return js.Global().Get("Error").New(err.Error())
}

func main() {
	doc := js.Global().Get("document")
	logger := newLogDiv(doc)

	cfg := fetchConfig(configPath, logger)

	container, err := element(doc, "app")
	if err != nil {
		logger.Printf("%v", err)
		return
	}
	sl, err := newSliders(doc, cfg)
	if err != nil {
		logger.Printf("%v", err)
		return
	}

	canvas := doc.Call("createElement", "canvas")
	canvas.Set("id", "viewport")
	r, err := newGLRenderer(canvas, container, cfg)
	if err != nil {
		logger.Printf("%v", err)
		return
	}
	showDebugInfo(r.gl, logger)

	vc, err := viewport.New(cfg, r,
		viewport.WithOnChange(sl.show),
		viewport.WithLogger(logger),
	)
	if err != nil {
		logger.Printf("%v", err)
		return
	}
	sl.show(vc.State())
	sl.bind(vc)

	surface := canvasSurface{canvas: canvas}
	removeContextLost := surface.listen("webglcontextlost", func(e js.Value) {
		e.Call("preventDefault")
		logger.Printf("%v", errContextLostEvent)
	})

	con := &console{vc: vc}
	consoleFn := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		if len(args) != 1 {
			return errorToJS(errArgumentNumber)
		}
		res, err := con.Run(args[0].String())
		if err != nil {
			return errorToJS(err)
		}
		return res
	})
	js.Global().Set("cubeviewConsole", consoleFn)

	done := make(chan struct{})
	var once sync.Once
	dispose := func() {
		once.Do(func() {
			removeContextLost()
			if err := vc.Dispose(); err != nil {
				logger.Printf("dispose: %v", err)
			}
			sl.release()
			js.Global().Delete("cubeviewConsole")
			close(done)
		})
	}
	disposeFn := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		dispose()
		return nil
	})
	js.Global().Set("disposeCubeview", disposeFn)
	js.Global().Get("window").Call("addEventListener", "pagehide", disposeFn)

	if err := vc.Attach(surface, animationFrame{}); err != nil {
		logger.Printf("%v", err)
		dispose()
	}
	logger.Printf("%v", vc.State())

	<-done
	js.Global().Get("window").Call("removeEventListener", "pagehide", disposeFn)
	js.Global().Delete("disposeCubeview")
	consoleFn.Release()
	disposeFn.Release()
	logger.Printf("viewer disposed")
}
