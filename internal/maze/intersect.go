package maze

import (
	gomath "math"

	"github.com/Faultbox/labyrinth/pkg/math"
)

// DegenerateEpsilon is the smallest barycentric denominator magnitude treated
// as a real triangle. Below it the triangle is considered collapsed.
const DegenerateEpsilon = 1e-6

// EdgeTolerance widens the sphere containment test so that a probe sitting
// on an edge shared by two wall triangles hits at least one of them.
const EdgeTolerance = 0.01

// Barycentric2D returns the weights (u, v, w) of p relative to triangle abc so
// that p = u*a + v*b + w*c. ok is false for degenerate triangles, in which
// case the weights are meaningless and the point must be treated as outside.
//
// Products are accumulated in float64: maze coordinates reach the thousands
// and the denominator is a difference of products of squared lengths.
func Barycentric2D(p, a, b, c math.Vec2) (u, v, w float32, ok bool) {
	v0x, v0y := float64(b.X-a.X), float64(b.Y-a.Y)
	v1x, v1y := float64(c.X-a.X), float64(c.Y-a.Y)
	v2x, v2y := float64(p.X-a.X), float64(p.Y-a.Y)

	d00 := v0x*v0x + v0y*v0y
	d01 := v0x*v1x + v0y*v1y
	d11 := v1x*v1x + v1y*v1y
	d20 := v2x*v0x + v2y*v0y
	d21 := v2x*v1x + v2y*v1y

	denom := d00*d11 - d01*d01
	if gomath.Abs(denom) < DegenerateEpsilon {
		return 0, 0, 0, false
	}

	bv := (d11*d20 - d01*d21) / denom
	bw := (d00*d21 - d01*d20) / denom
	return float32(1 - bv - bw), float32(bv), float32(bw), true
}

// HeightAt interpolates the triangle's Y at the horizontal position p.
// ok is false when p lies outside the triangle's XZ footprint or the
// footprint is degenerate (vertical triangles).
func (t Triangle) HeightAt(p math.Vec2) (float32, bool) {
	u, v, w, ok := Barycentric2D(p, t.V0.XZ(), t.V1.XZ(), t.V2.XZ())
	if !ok || u < 0 || v < 0 || w < 0 {
		return 0, false
	}
	return u*t.V0.Y + v*t.V1.Y + w*t.V2.Y, true
}

// SphereIntersectsTriangle reports whether a sphere touches triangle t.
//
// The centre is projected onto the triangle's plane; when the plane is within
// radius the projection is tested for containment with EdgeTolerance slack.
// Projections landing just outside the triangle near a corner are not caught,
// which is acceptable for wall probes that are small relative to the walls.
func SphereIntersectsTriangle(center math.Vec3, radius float32, t Triangle) bool {
	n := t.Normal
	if n == (math.Vec3{}) {
		return false
	}

	dist := center.Sub(t.V0).Dot(n)
	if dist > radius || dist < -radius {
		return false
	}
	p := center.Sub(n.Scale(dist))

	e1 := t.V1.Sub(t.V0)
	e2 := t.V2.Sub(t.V0)
	w := p.Sub(t.V0)

	uu := float64(e1.Dot(e1))
	uv := float64(e1.Dot(e2))
	vv := float64(e2.Dot(e2))
	wu := float64(w.Dot(e1))
	wv := float64(w.Dot(e2))

	d := uv*uv - uu*vv
	if gomath.Abs(d) < DegenerateEpsilon {
		return false
	}

	s := (uv*wv - vv*wu) / d
	tt := (uv*wu - uu*wv) / d

	const eps = -EdgeTolerance
	return s >= eps && tt >= eps && s+tt <= 1-eps
}
