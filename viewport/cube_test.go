package viewport

import (
	"math"
	"testing"

	"github.com/seqsense/pcgol/mat"
)

func TestCube_Step(t *testing.T) {
	c := newCube(DefaultConfig())
	for i := 0; i < 100; i++ {
		c.step(0.01)
	}
	if math.Abs(c.RotX-1) > 1e-9 || math.Abs(c.RotY-1) > 1e-9 {
		t.Errorf("Expected rotation (1, 1), got (%f, %f)", c.RotX, c.RotY)
	}

	c.RotX = math.Pi - 0.005
	c.step(0.01)
	if c.RotX > math.Pi || c.RotX < -math.Pi {
		t.Errorf("Rotation must be wrapped, got %f", c.RotX)
	}
}

func TestCube_ModelMatrix(t *testing.T) {
	c := Cube{Size: 2}
	m := c.ModelMatrix()
	if m != (mat.Mat4{
		2, 0, 0, 0,
		0, 2, 0, 0,
		0, 0, 2, 0,
		0, 0, 0, 1,
	}) {
		t.Errorf("Unexpected model matrix without rotation: %v", m)
	}

	c = Cube{Size: 1, RotY: math.Pi / 2}
	x, _, ok := Project(c.ModelMatrix(), mat.Vec3{0, 0, 1}, 2, 2)
	if !ok {
		t.Fatal("Projection with w=1 must succeed")
	}
	// +Z rotates to +X around Y.
	if math.Abs(float64(x)-2) > 1e-5 {
		t.Errorf("Expected x=2, got %f", x)
	}

	// +Y rotates to +Z around X.
	c = Cube{Size: 1, RotX: math.Pi / 2}
	v := c.ModelMatrix().TransformAffine(mat.Vec3{0, 1, 0})
	if v.Sub(mat.Vec3{0, 0, 1}).Norm() > 1e-5 {
		t.Errorf("Expected (0, 0, 1), got %v", v)
	}
}

func TestCube_Buffers(t *testing.T) {
	c := newCube(DefaultConfig())
	pos := c.TriangleBuffer()
	norm := c.NormalBuffer()
	if len(pos) != 12*3*3 || len(norm) != len(pos) {
		t.Fatalf("Unexpected buffer sizes: %d, %d", len(pos), len(norm))
	}
	for i := 0; i < len(pos); i += 3 {
		p := mat.Vec3{pos[i], pos[i+1], pos[i+2]}
		n := mat.Vec3{norm[i], norm[i+1], norm[i+2]}
		// Outward facing normals point away from the center.
		if p.Dot(n) <= 0 {
			t.Errorf("Normal %v of vertex %v must face outward", n, p)
		}
	}
	if len(c.Edges()) != 12 || len(c.Vertices()) != 8 {
		t.Errorf("Expected 12 edges and 8 vertices, got %d and %d", len(c.Edges()), len(c.Vertices()))
	}
}
