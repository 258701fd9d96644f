// Package geom defines the geometric primitives of the viewer: points,
// lines, polygons and polyhedra sharing mutable vertices, together with the
// 4x4 homogeneous transforms applied to them. Drawing is delegated to a
// Canvas through a Projector so that the primitives never own a surface.
package geom

import (
	"time"

	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Shape is the capability set shared by every primitive.
type Shape interface {
	// Center returns the centroid. Polyhedra average their face centroids.
	Center() v3.Vec
	// Transform applies m in place to every distinct owned point.
	Transform(m Mat4)
	// Render projects the shape and emits draw calls to c.
	Render(c Canvas, pr Projector)
}

// Highlighter is implemented by shapes that can flash their vertices.
type Highlighter interface {
	Highlight(c Canvas, pr Projector, ttl time.Duration)
}

// Projected is a point mapped to screen space. Depth is retained for
// future depth sorting and is not used for occlusion.
type Projected struct {
	X, Y  float64
	Depth float64
}

// Projector maps a 3D point to screen space. ok is false when the point
// cannot be projected (for example it lies on the perspective eye plane).
type Projector interface {
	Project(v v3.Vec) (p Projected, ok bool)
}

// Canvas receives primitive draw calls. Implementations decide how
// highlights expire; the core only states the time to live.
type Canvas interface {
	Clear()
	DrawDot(x, y float64)
	DrawSegment(x1, y1, x2, y2 float64)
	DrawHighlightDot(x, y float64, ttl time.Duration)
}

// Compile-time interface checks.
var (
	_ Shape = (*Point)(nil)
	_ Shape = (*Line)(nil)
	_ Shape = (*Polygon)(nil)
	_ Shape = (*Polyhedron)(nil)

	_ Highlighter = (*Point)(nil)
	_ Highlighter = (*Line)(nil)
	_ Highlighter = (*Polygon)(nil)
	_ Highlighter = (*Polyhedron)(nil)
)

// mean returns the arithmetic mean of vs, or the zero vector for none.
func mean(vs []v3.Vec) v3.Vec {
	if len(vs) == 0 {
		return v3.Vec{}
	}
	var sum v3.Vec
	for _, v := range vs {
		sum = sum.Add(v)
	}
	return sum.DivScalar(float64(len(vs)))
}
