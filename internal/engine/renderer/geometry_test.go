package renderer

import (
	"testing"

	"github.com/Faultbox/labyrinth/internal/maze"
	"github.com/Faultbox/labyrinth/pkg/formats"
	"github.com/Faultbox/labyrinth/pkg/math"
)

func TestMeshVertices(t *testing.T) {
	m := maze.Build([]formats.OBJTriangle{
		{{X: 0, Y: 0, Z: 10}, {X: 10, Y: 0, Z: 0}, {X: 0, Y: 0, Z: 0}},
		{{X: -50, Y: 0, Z: 5}, {X: 50, Y: 0, Z: 5}, {X: 0, Y: 100, Z: 5}},
	}, maze.DefaultOptions())

	vertices, floorCount := MeshVertices(m)

	wantFloor := int32(len(m.Floor) * 3)
	if floorCount != wantFloor {
		t.Errorf("floorCount = %d, want %d", floorCount, wantFloor)
	}
	wantLen := (len(m.Floor) + len(m.Walls)) * 3 * VertexStride
	if len(vertices) != wantLen {
		t.Fatalf("len(vertices) = %d, want %d", len(vertices), wantLen)
	}

	// First floor vertex carries the floor color and an upward normal.
	if vertices[4] < 0.99 {
		t.Errorf("floor normal.y = %v, want 1", vertices[4])
	}
	if vertices[6] != FloorColor[0] {
		t.Errorf("floor color = %v, want %v", vertices[6:9], FloorColor)
	}

	// First wall vertex follows the floor vertices.
	wall := vertices[int(floorCount)*VertexStride:]
	if wall[6] != WallColor[0] || wall[7] != WallColor[1] || wall[8] != WallColor[2] {
		t.Errorf("wall color = %v, want %v", wall[6:9], WallColor)
	}
}

func TestMeshVerticesEmpty(t *testing.T) {
	vertices, floorCount := MeshVertices(maze.Build(nil, maze.DefaultOptions()))
	if len(vertices) != 0 || floorCount != 0 {
		t.Errorf("MeshVertices(empty) = %d floats, %d floor vertices, want 0, 0", len(vertices), floorCount)
	}
}

func TestCubeVertices(t *testing.T) {
	cube := CubeVertices(MarkerColor)

	if len(cube) != 36*VertexStride {
		t.Fatalf("len(cube) = %d, want %d", len(cube), 36*VertexStride)
	}

	for i := 0; i < len(cube); i += VertexStride {
		p := math.Vec3{X: cube[i], Y: cube[i+1], Z: cube[i+2]}
		n := math.Vec3{X: cube[i+3], Y: cube[i+4], Z: cube[i+5]}

		for _, c := range []float32{p.X, p.Y, p.Z} {
			if c != 0.5 && c != -0.5 {
				t.Fatalf("vertex %d = %v, want corners at +-0.5", i/VertexStride, p)
			}
		}
		// Each vertex lies on the face its normal points at.
		if p.Dot(n) != 0.5 {
			t.Errorf("vertex %d %v not on face with normal %v", i/VertexStride, p, n)
		}
	}
}

func TestCubeWinding(t *testing.T) {
	cube := CubeVertices(MarkerColor)

	for tri := 0; tri < 12; tri++ {
		base := tri * 3 * VertexStride
		v := func(k int) math.Vec3 {
			o := base + k*VertexStride
			return math.Vec3{X: cube[o], Y: cube[o+1], Z: cube[o+2]}
		}
		n := math.Vec3{X: cube[base+3], Y: cube[base+4], Z: cube[base+5]}

		face := v(1).Sub(v(0)).Cross(v(2).Sub(v(0)))
		if face.Dot(n) <= 0 {
			t.Errorf("triangle %d is wound inward", tri)
		}
	}
}
