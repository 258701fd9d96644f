package geom

import (
	"time"

	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Point is a mutable vertex. Higher-level shapes hold *Point handles and
// several faces may share one Point, so a Point must be transformed once
// per transform call no matter how many faces reference it.
type Point struct {
	v3.Vec
}

// NewPoint returns a new Point at (x, y, z).
func NewPoint(x, y, z float64) *Point {
	return &Point{v3.Vec{X: x, Y: y, Z: z}}
}

// Center returns the point's own coordinates.
func (p *Point) Center() v3.Vec {
	return p.Vec
}

// Transform moves the point through m.
func (p *Point) Transform(m Mat4) {
	p.Vec = m.Apply(p.Vec)
}

// Render draws the projected point as a dot.
func (p *Point) Render(c Canvas, pr Projector) {
	p.draw(c, pr)
}

// Highlight draws a transient highlight dot at the projected point.
func (p *Point) Highlight(c Canvas, pr Projector, ttl time.Duration) {
	if q, ok := pr.Project(p.Vec); ok {
		c.DrawHighlightDot(q.X, q.Y, ttl)
	}
}

// draw emits the dot and hands back the projection so callers drawing
// segments do not project the same point twice.
func (p *Point) draw(c Canvas, pr Projector) (Projected, bool) {
	q, ok := pr.Project(p.Vec)
	if !ok {
		return Projected{}, false
	}
	c.DrawDot(q.X, q.Y)
	return q, true
}
