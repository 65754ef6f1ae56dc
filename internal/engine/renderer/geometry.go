package renderer

import (
	"github.com/Faultbox/labyrinth/internal/maze"
	"github.com/Faultbox/labyrinth/pkg/math"
)

// VertexStride is the number of floats per vertex: position, normal, color.
const VertexStride = 9

// Surface colors.
var (
	FloorColor  = [3]float32{0.55, 0.55, 0.5}
	WallColor   = [3]float32{0.6, 0.45, 0.3}
	MarkerColor = [3]float32{0, 1, 0}
)

// AppendTriangles appends interleaved vertices for tris to dst.
func AppendTriangles(dst []float32, tris []maze.Triangle, color [3]float32) []float32 {
	for _, t := range tris {
		for _, v := range [3]math.Vec3{t.V0, t.V1, t.V2} {
			dst = appendVertex(dst, v, t.Normal, color)
		}
	}
	return dst
}

// MeshVertices builds one buffer holding the floor followed by the walls.
// floorCount is the number of floor vertices at the start of the buffer.
func MeshVertices(m *maze.Mesh) (vertices []float32, floorCount int32) {
	vertices = make([]float32, 0, (len(m.Floor)+len(m.Walls))*3*VertexStride)
	vertices = AppendTriangles(vertices, m.Floor, FloorColor)
	floorCount = int32(len(m.Floor) * 3)
	vertices = AppendTriangles(vertices, m.Walls, WallColor)
	return vertices, floorCount
}

// CubeVertices returns a unit cube centred on the origin as 36 vertices.
func CubeVertices(color [3]float32) []float32 {
	faces := []struct {
		normal  math.Vec3
		corners [4]math.Vec3
	}{
		{math.Vec3{Z: 1}, [4]math.Vec3{{X: -.5, Y: -.5, Z: .5}, {X: .5, Y: -.5, Z: .5}, {X: .5, Y: .5, Z: .5}, {X: -.5, Y: .5, Z: .5}}},
		{math.Vec3{Z: -1}, [4]math.Vec3{{X: .5, Y: -.5, Z: -.5}, {X: -.5, Y: -.5, Z: -.5}, {X: -.5, Y: .5, Z: -.5}, {X: .5, Y: .5, Z: -.5}}},
		{math.Vec3{X: 1}, [4]math.Vec3{{X: .5, Y: -.5, Z: .5}, {X: .5, Y: -.5, Z: -.5}, {X: .5, Y: .5, Z: -.5}, {X: .5, Y: .5, Z: .5}}},
		{math.Vec3{X: -1}, [4]math.Vec3{{X: -.5, Y: -.5, Z: -.5}, {X: -.5, Y: -.5, Z: .5}, {X: -.5, Y: .5, Z: .5}, {X: -.5, Y: .5, Z: -.5}}},
		{math.Vec3{Y: 1}, [4]math.Vec3{{X: -.5, Y: .5, Z: .5}, {X: .5, Y: .5, Z: .5}, {X: .5, Y: .5, Z: -.5}, {X: -.5, Y: .5, Z: -.5}}},
		{math.Vec3{Y: -1}, [4]math.Vec3{{X: -.5, Y: -.5, Z: -.5}, {X: .5, Y: -.5, Z: -.5}, {X: .5, Y: -.5, Z: .5}, {X: -.5, Y: -.5, Z: .5}}},
	}

	out := make([]float32, 0, 36*VertexStride)
	for _, f := range faces {
		c := f.corners
		for _, v := range [6]math.Vec3{c[0], c[1], c[2], c[0], c[2], c[3]} {
			out = appendVertex(out, v, f.normal, color)
		}
	}
	return out
}

func appendVertex(dst []float32, p, n math.Vec3, c [3]float32) []float32 {
	return append(dst, p.X, p.Y, p.Z, n.X, n.Y, n.Z, c[0], c[1], c[2])
}
