package main

import (
	webgl "github.com/seqsense/webgl-go"

	"github.com/seqsense/cubeview/viewport"
)

func showDebugInfo(gl *webgl.WebGL, l viewport.Logger) {
	defer func() {
		if r := recover(); r != nil {
			l.Printf("failed to get debug info: %v", r)
		}
	}()

	ri, ok := gl.GetExtension("WEBGL_debug_renderer_info")
	if !ok {
		l.Printf("GPU info: hidden by the browser privacy setting")
		return
	}
	l.Printf("GPU: %s %s",
		gl.GetParameter(ri.Get("UNMASKED_VENDOR_WEBGL").Int()).String(),
		gl.GetParameter(ri.Get("UNMASKED_RENDERER_WEBGL").Int()).String(),
	)
}
