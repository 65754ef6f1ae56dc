// Package maze classifies maze geometry into floor and wall sets and answers
// the spatial queries the movement simulation runs every sub-step.
package maze

import (
	gomath "math"

	"github.com/Faultbox/labyrinth/pkg/formats"
	"github.com/Faultbox/labyrinth/pkg/math"
)

// Triangle is a classified mesh triangle. It is immutable once built.
type Triangle struct {
	V0, V1, V2 math.Vec3
	Normal     math.Vec3 // Unit face normal, zero for degenerate triangles
	Centroid   math.Vec3
}

// NewTriangle computes the face normal and centroid of a triangle.
// The winding order v0, v1, v2 determines the normal direction.
func NewTriangle(v0, v1, v2 math.Vec3) Triangle {
	return Triangle{
		V0:       v0,
		V1:       v1,
		V2:       v2,
		Normal:   v1.Sub(v0).Cross(v2.Sub(v0)).Normalize(),
		Centroid: v0.Add(v1).Add(v2).Scale(1.0 / 3.0),
	}
}

// Bounds is an axis-aligned bounding box.
type Bounds struct {
	Min, Max math.Vec3
}

// Size returns the length of the box diagonal.
func (b Bounds) Size() float32 {
	return b.Min.Distance(b.Max)
}

// Center returns the centre of the box.
func (b Bounds) Center() math.Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// Options control classification.
type Options struct {
	// FloorNormalY is the classification threshold: normal.y above it is floor.
	FloorNormalY float32
	// WalkableNormalY is the runtime floor query threshold. Floor triangles
	// with normal.y below it are ignored when slope checking is requested.
	WalkableNormalY float32
	// SafetyFloorMargin expands the safety floor beyond the XZ bounds.
	SafetyFloorMargin float32
}

// DefaultOptions returns the classification defaults.
func DefaultOptions() Options {
	return Options{
		FloorNormalY:      0.7,
		WalkableNormalY:   0.5,
		SafetyFloorMargin: 100,
	}
}

// Stats describes what went into a mesh.
type Stats struct {
	SourceTriangles int
	SkippedFaces    int
	Warnings        int
}

// Mesh is the classified maze geometry. It is read-only after Build and may
// be shared between the simulation and the renderer.
type Mesh struct {
	Floor []Triangle
	Walls []Triangle

	// Bounds covers the source vertices only, not the safety floor.
	Bounds    Bounds
	ModelSize float32
	Stats     Stats

	walkableNormalY float32
	hasSafetyFloor  bool
}

// Build classifies source triangles and appends the safety floor.
// An empty input yields an empty mesh on which every floor query misses.
func Build(source []formats.OBJTriangle, opts Options) *Mesh {
	m := &Mesh{
		walkableNormalY: opts.WalkableNormalY,
		Stats:           Stats{SourceTriangles: len(source)},
	}

	for _, src := range source {
		tri := NewTriangle(src[0], src[1], src[2])
		if tri.Normal.Y > opts.FloorNormalY {
			m.Floor = append(m.Floor, tri)
		} else {
			m.Walls = append(m.Walls, tri)
		}
	}

	if len(source) == 0 {
		return m
	}

	m.Bounds = ComputeBounds(source)
	m.ModelSize = m.Bounds.Size()
	m.Floor = append(m.Floor, SafetyFloor(m.Bounds, opts.SafetyFloorMargin)...)
	m.hasSafetyFloor = true

	return m
}

// ComputeBounds scans every vertex for the axis-aligned extent.
func ComputeBounds(source []formats.OBJTriangle) Bounds {
	if len(source) == 0 {
		return Bounds{}
	}

	b := Bounds{
		Min: math.Vec3{X: gomath.MaxFloat32, Y: gomath.MaxFloat32, Z: gomath.MaxFloat32},
		Max: math.Vec3{X: -gomath.MaxFloat32, Y: -gomath.MaxFloat32, Z: -gomath.MaxFloat32},
	}
	for _, tri := range source {
		for _, v := range tri {
			b.Min = b.Min.Min(v)
			b.Max = b.Max.Max(v)
		}
	}
	return b
}

// SafetyFloor returns two upward-facing triangles covering the XZ bounds,
// expanded by margin, at the lowest Y of the bounds.
func SafetyFloor(b Bounds, margin float32) []Triangle {
	y := b.Min.Y
	minX, maxX := b.Min.X-margin, b.Max.X+margin
	minZ, maxZ := b.Min.Z-margin, b.Max.Z+margin

	// Wound so the cross product points up.
	return []Triangle{
		NewTriangle(
			math.Vec3{X: minX, Y: y, Z: maxZ},
			math.Vec3{X: maxX, Y: y, Z: maxZ},
			math.Vec3{X: maxX, Y: y, Z: minZ},
		),
		NewTriangle(
			math.Vec3{X: minX, Y: y, Z: maxZ},
			math.Vec3{X: maxX, Y: y, Z: minZ},
			math.Vec3{X: minX, Y: y, Z: minZ},
		),
	}
}

// IsSafetyFloor reports whether t lies on the lowest level of the mesh.
// Marker placement skips these so players never start on the safety floor.
// Real floor within one unit of the lowest vertex is skipped as well.
func (m *Mesh) IsSafetyFloor(t Triangle) bool {
	return m.hasSafetyFloor && t.Centroid.Y <= m.Bounds.Min.Y+1.0
}

// Empty reports whether the mesh has no source geometry.
func (m *Mesh) Empty() bool {
	return m.Stats.SourceTriangles == 0
}
