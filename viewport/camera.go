package viewport

import (
	"math"

	"github.com/seqsense/pcgol/mat"
)

// CameraParams is the perspective camera state pushed to the renderer each frame.
type CameraParams struct {
	// FOV is the vertical field of view in degrees.
	FOV       float64
	Aspect    float64
	Near, Far float64
	// PositionZ is the camera position on the Z axis, looking at the origin.
	PositionZ float64

	Projection mat.Mat4
	View       mat.Mat4
}

func aspectOf(width, height int) float64 {
	if width <= 0 || height <= 0 {
		return 1
	}
	return float64(width) / float64(height)
}

func (c *CameraParams) updateProjectionMatrix() {
	// mat.Perspective scales Y by aspect, so it takes the horizontal angle.
	vHalf := c.FOV * math.Pi / 360
	hFov := 2 * math.Atan(math.Tan(vHalf)*c.Aspect)
	c.Projection = mat.Perspective(
		float32(hFov),
		float32(c.Aspect),
		float32(c.Near), float32(c.Far),
	)
	c.View = mat.Translate(0, 0, -float32(c.PositionZ))
}

// MVP returns projection * view * model.
func (c CameraParams) MVP(model mat.Mat4) mat.Mat4 {
	return c.Projection.Mul(c.View).Mul(model)
}

// Project maps a model space point to window coordinates (origin at top-left).
// ok is false if the point is behind the camera.
func Project(mvp mat.Mat4, v mat.Vec3, width, height int) (x, y float32, ok bool) {
	var clip [4]float32
	for i := 0; i < 4; i++ {
		clip[i] = mvp[i]*v[0] + mvp[4+i]*v[1] + mvp[8+i]*v[2] + mvp[12+i]
	}
	if clip[3] <= 0 {
		return 0, 0, false
	}
	nx, ny := clip[0]/clip[3], clip[1]/clip[3]
	x = (nx + 1) / 2 * float32(width)
	y = (1 - ny) / 2 * float32(height)
	return x, y, true
}
