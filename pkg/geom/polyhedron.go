package geom

import (
	"time"

	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Polyhedron is an ordered list of polygon faces. Adjacent faces share
// *Point handles, so the faces together form one vertex graph.
type Polyhedron struct {
	Faces []*Polygon
}

// Edge is an undirected edge between two shared vertices.
type Edge struct {
	A, B *Point
}

// NewPolyhedron returns a polyhedron over the given faces.
func NewPolyhedron(faces ...*Polygon) *Polyhedron {
	return &Polyhedron{Faces: faces}
}

// Center returns the mean of the face centroids. This is neither the
// volume centroid nor the vertex mean.
func (ph *Polyhedron) Center() v3.Vec {
	vs := make([]v3.Vec, len(ph.Faces))
	for i, f := range ph.Faces {
		vs[i] = f.Center()
	}
	return mean(vs)
}

// Vertices returns every distinct point across all faces in first-seen
// order.
func (ph *Polyhedron) Vertices() []*Point {
	seen := make(map[*Point]struct{})
	var out []*Point
	for _, f := range ph.Faces {
		out = append(out, distinct(f.Points, seen)...)
	}
	return out
}

// Edges returns every distinct undirected edge in first-seen order.
func (ph *Polyhedron) Edges() []Edge {
	seen := make(map[Edge]struct{})
	var out []Edge
	for _, f := range ph.Faces {
		for _, l := range f.Edges() {
			e := Edge{A: l.A, B: l.B}
			if _, ok := seen[e]; ok {
				continue
			}
			if _, ok := seen[Edge{A: l.B, B: l.A}]; ok {
				continue
			}
			seen[e] = struct{}{}
			out = append(out, e)
		}
	}
	return out
}

// Transform applies m to each distinct vertex exactly once.
func (ph *Polyhedron) Transform(m Mat4) {
	for _, p := range ph.Vertices() {
		p.Transform(m)
	}
}

// Render draws every face in order.
func (ph *Polyhedron) Render(c Canvas, pr Projector) {
	for _, f := range ph.Faces {
		f.Render(c, pr)
	}
}

// Highlight flashes every distinct vertex once.
func (ph *Polyhedron) Highlight(c Canvas, pr Projector, ttl time.Duration) {
	for _, p := range ph.Vertices() {
		p.Highlight(c, pr, ttl)
	}
}

// Bounds returns the axis-aligned bounding box of the vertices.
func (ph *Polyhedron) Bounds() sdf.Box3 {
	vs := ph.Vertices()
	if len(vs) == 0 {
		return sdf.Box3{}
	}
	bb := sdf.Box3{Min: vs[0].Vec, Max: vs[0].Vec}
	for _, p := range vs[1:] {
		bb.Min = bb.Min.Min(p.Vec)
		bb.Max = bb.Max.Max(p.Vec)
	}
	return bb
}

// Snapshot copies the current coordinates of Vertices.
func (ph *Polyhedron) Snapshot() []v3.Vec {
	vs := ph.Vertices()
	out := make([]v3.Vec, len(vs))
	for i, p := range vs {
		out[i] = p.Vec
	}
	return out
}
