package maze

import (
	"github.com/Faultbox/labyrinth/pkg/math"
)

// FloorHeight returns the highest floor elevation under p's horizontal
// position. Only X and Z of p are used. When checkSlope is true, floor
// triangles steeper than the walkable threshold are ignored.
// ok is false when no floor triangle covers the point.
func (m *Mesh) FloorHeight(p math.Vec3, checkSlope bool) (height float32, ok bool) {
	xz := p.XZ()
	for _, tri := range m.Floor {
		if checkSlope && tri.Normal.Y < m.walkableNormalY {
			continue
		}
		h, inside := tri.HeightAt(xz)
		if !inside {
			continue
		}
		if !ok || h > height {
			height = h
			ok = true
		}
	}
	return height, ok
}

// CheckWallCollision reports whether a sphere at p touches any wall triangle.
func (m *Mesh) CheckWallCollision(p math.Vec3, radius float32) bool {
	_, hit := m.FirstWallHit(p, radius)
	return hit
}

// FirstWallHit returns the first wall triangle, in mesh order, touched by a
// sphere at p. It is not necessarily the closest one.
func (m *Mesh) FirstWallHit(p math.Vec3, radius float32) (Triangle, bool) {
	for _, tri := range m.Walls {
		if SphereIntersectsTriangle(p, radius, tri) {
			return tri, true
		}
	}
	return Triangle{}, false
}
