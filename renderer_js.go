package main

import (
	"syscall/js"

	webgl "github.com/seqsense/webgl-go"

	"github.com/seqsense/cubeview/viewport"
)

const (
	aVertexPosition = 0
	aVertexNormal   = 1
	aVertexColor    = 2
)

type glRenderer struct {
	gl     *webgl.WebGL
	canvas js.Value

	program                    webgl.Program
	uModel, uView, uProjection webgl.Location
	posBuf, normBuf, colBuf    webgl.Buffer
	nVertices                  int

	width, height int
}

// newGLRenderer mounts canvas into container and prepares the cube buffers.
// The canvas is sized to the window.
func newGLRenderer(canvas, container js.Value, cfg viewport.Config) (*glRenderer, error) {
	window := js.Global().Get("window")
	canvas.Set("width", window.Get("innerWidth").Int())
	canvas.Set("height", window.Get("innerHeight").Int())
	container.Call("appendChild", canvas)

	gl, err := webgl.New(canvas)
	if err != nil {
		container.Call("removeChild", canvas)
		return nil, err
	}
	program, err := initProgram(gl, vsSource, fsSource)
	if err != nil {
		container.Call("removeChild", canvas)
		return nil, err
	}

	r := &glRenderer{
		gl:      gl,
		canvas:  canvas,
		program: program,

		uModel:      gl.GetUniformLocation(program, "uModelMatrix"),
		uView:       gl.GetUniformLocation(program, "uViewMatrix"),
		uProjection: gl.GetUniformLocation(program, "uProjectionMatrix"),
	}

	cube := viewport.Cube{Color: cfg.CubeColor}
	pos := cube.TriangleBuffer()
	r.nVertices = len(pos) / 3
	cr, cg, cb := viewport.RGB(cfg.CubeColor)
	col := make([]float32, 0, len(pos))
	for i := 0; i < r.nVertices; i++ {
		col = append(col, cr, cg, cb)
	}

	r.posBuf = gl.CreateBuffer()
	gl.BindBuffer(gl.ARRAY_BUFFER, r.posBuf)
	gl.BufferData(gl.ARRAY_BUFFER, webgl.Float32ArrayBuffer(pos), gl.STATIC_DRAW)

	r.normBuf = gl.CreateBuffer()
	gl.BindBuffer(gl.ARRAY_BUFFER, r.normBuf)
	gl.BufferData(gl.ARRAY_BUFFER, webgl.Float32ArrayBuffer(cube.NormalBuffer()), gl.STATIC_DRAW)

	r.colBuf = gl.CreateBuffer()
	gl.BindBuffer(gl.ARRAY_BUFFER, r.colBuf)
	gl.BufferData(gl.ARRAY_BUFFER, webgl.Float32ArrayBuffer(col), gl.STATIC_DRAW)

	br, bg, bb := viewport.RGB(cfg.Background)
	gl.ClearColor(br, bg, bb, 1.0)
	gl.ClearDepth(1.0)
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LEQUAL)

	gl.UseProgram(program)
	gl.EnableVertexAttribArray(aVertexPosition)
	gl.EnableVertexAttribArray(aVertexNormal)
	gl.EnableVertexAttribArray(aVertexColor)

	return r, nil
}

func (r *glRenderer) Size() (int, int) {
	return r.gl.Canvas.ClientWidth(), r.gl.Canvas.ClientHeight()
}

func (r *glRenderer) Render(cam viewport.CameraParams, cube *viewport.Cube) error {
	gl := r.gl
	if gl.IsContextLost() {
		return errContextLost
	}

	if w, h := r.Size(); w != r.width || h != r.height {
		r.width, r.height = w, h
		gl.Canvas.SetWidth(w)
		gl.Canvas.SetHeight(h)
		gl.Viewport(0, 0, w, h)
	}

	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	gl.UseProgram(r.program)
	gl.UniformMatrix4fv(r.uProjection, false, cam.Projection)
	gl.UniformMatrix4fv(r.uView, false, cam.View)
	gl.UniformMatrix4fv(r.uModel, false, cube.ModelMatrix())

	gl.BindBuffer(gl.ARRAY_BUFFER, r.posBuf)
	gl.VertexAttribPointer(aVertexPosition, 3, gl.FLOAT, false, 0, 0)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.normBuf)
	gl.VertexAttribPointer(aVertexNormal, 3, gl.FLOAT, false, 0, 0)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.colBuf)
	gl.VertexAttribPointer(aVertexColor, 3, gl.FLOAT, false, 0, 0)

	gl.DrawArrays(gl.TRIANGLES, 0, r.nVertices)
	return nil
}

// Release drops the GL context and unmounts the canvas.
func (r *glRenderer) Release() error {
	if ext, ok := r.gl.GetExtension("WEBGL_lose_context"); ok {
		ext.Call("loseContext")
	}
	if parent := r.canvas.Get("parentNode"); parent.Truthy() {
		parent.Call("removeChild", r.canvas)
	}
	return nil
}
