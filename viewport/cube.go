package viewport

import (
	"math"

	"github.com/seqsense/pcgol/mat"
)

var cubeCorners = [8]mat.Vec3{
	{-0.5, -0.5, -0.5},
	{0.5, -0.5, -0.5},
	{0.5, 0.5, -0.5},
	{-0.5, 0.5, -0.5},
	{-0.5, -0.5, 0.5},
	{0.5, -0.5, 0.5},
	{0.5, 0.5, 0.5},
	{-0.5, 0.5, 0.5},
}

var cubeEdges = [12][2]int{
	{0, 1}, {1, 2}, {2, 3}, {3, 0},
	{4, 5}, {5, 6}, {6, 7}, {7, 4},
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}

// Counter-clockwise seen from outside.
var cubeTriangles = [12][3]int{
	{4, 5, 6}, {4, 6, 7}, // +z
	{1, 0, 3}, {1, 3, 2}, // -z
	{5, 1, 2}, {5, 2, 6}, // +x
	{0, 4, 7}, {0, 7, 3}, // -x
	{7, 6, 2}, {7, 2, 3}, // +y
	{0, 1, 5}, {0, 5, 4}, // -y
}

// Cube is an axis aligned box centered at the origin, spinning around X and Y.
type Cube struct {
	Size       float64
	Color      uint32
	RotX, RotY float64
}

func newCube(cfg Config) Cube {
	return Cube{
		Size:  cfg.CubeSize,
		Color: cfg.CubeColor,
	}
}

func (c *Cube) step(d float64) {
	c.RotX = math.Remainder(c.RotX+d, 2*math.Pi)
	c.RotY = math.Remainder(c.RotY+d, 2*math.Pi)
}

// ModelMatrix returns Rx * Ry * scale.
func (c *Cube) ModelMatrix() mat.Mat4 {
	s := float32(c.Size)
	return mat.Rotate(1, 0, 0, float32(c.RotX)).
		Mul(mat.Rotate(0, 1, 0, float32(c.RotY))).
		Mul(mat.Scale(s, s, s))
}

// Vertices returns the corners in model space, before scaling.
func (c *Cube) Vertices() []mat.Vec3 {
	return cubeCorners[:]
}

// Edges returns pairs of indices into Vertices.
func (c *Cube) Edges() [][2]int {
	return cubeEdges[:]
}

// TriangleBuffer returns the triangle list as flat xyz coordinates.
func (c *Cube) TriangleBuffer() []float32 {
	buf := make([]float32, 0, len(cubeTriangles)*3*3)
	for _, t := range cubeTriangles {
		for _, i := range t {
			p := cubeCorners[i]
			buf = append(buf, p[0], p[1], p[2])
		}
	}
	return buf
}

// NormalBuffer returns one face normal per vertex of TriangleBuffer.
func (c *Cube) NormalBuffer() []float32 {
	buf := make([]float32, 0, len(cubeTriangles)*3*3)
	for _, t := range cubeTriangles {
		p0, p1, p2 := cubeCorners[t[0]], cubeCorners[t[1]], cubeCorners[t[2]]
		n := p1.Sub(p0).Cross(p2.Sub(p0)).Normalized()
		for range t {
			buf = append(buf, n[0], n[1], n[2])
		}
	}
	return buf
}
