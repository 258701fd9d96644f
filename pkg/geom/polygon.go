package geom

import (
	"time"

	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Polygon is a closed planar loop of at least three points. Edges are the
// consecutive pairs, wrapping from the last point back to the first.
type Polygon struct {
	Points []*Point
}

// NewPolygon returns a polygon over the given point handles.
func NewPolygon(points ...*Point) *Polygon {
	return &Polygon{Points: points}
}

// Center returns the arithmetic mean of the polygon's points.
func (pg *Polygon) Center() v3.Vec {
	vs := make([]v3.Vec, len(pg.Points))
	for i, p := range pg.Points {
		vs[i] = p.Vec
	}
	return mean(vs)
}

// Edges returns the implicit closed edges in drawing order.
func (pg *Polygon) Edges() []*Line {
	n := len(pg.Points)
	lines := make([]*Line, 0, n)
	for i := range pg.Points {
		lines = append(lines, NewLine(pg.Points[i], pg.Points[(i+1)%n]))
	}
	return lines
}

// Transform moves every distinct point of the polygon once.
func (pg *Polygon) Transform(m Mat4) {
	for _, p := range distinct(pg.Points, nil) {
		p.Transform(m)
	}
}

// Render draws the closed outline edge by edge.
func (pg *Polygon) Render(c Canvas, pr Projector) {
	for _, l := range pg.Edges() {
		l.Render(c, pr)
	}
}

// Highlight flashes every distinct vertex.
func (pg *Polygon) Highlight(c Canvas, pr Projector, ttl time.Duration) {
	for _, p := range distinct(pg.Points, nil) {
		p.Highlight(c, pr, ttl)
	}
}

// distinct returns the points of ps missing from seen, in first-seen order,
// and records them in seen. Identity, not coordinates, decides duplicates.
func distinct(ps []*Point, seen map[*Point]struct{}) []*Point {
	if seen == nil {
		seen = make(map[*Point]struct{}, len(ps))
	}
	out := make([]*Point, 0, len(ps))
	for _, p := range ps {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}
