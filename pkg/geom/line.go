package geom

import (
	"time"

	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Line is a view over two points owned by an enclosing shape.
type Line struct {
	A, B *Point
}

// NewLine returns the segment from a to b.
func NewLine(a, b *Point) *Line {
	return &Line{A: a, B: b}
}

// Center returns the midpoint.
func (l *Line) Center() v3.Vec {
	return mean([]v3.Vec{l.A.Vec, l.B.Vec})
}

// Transform moves both endpoints. A degenerate line whose endpoints are
// the same Point moves it once.
func (l *Line) Transform(m Mat4) {
	l.A.Transform(m)
	if l.B != l.A {
		l.B.Transform(m)
	}
}

// Render draws both endpoints and the segment between them. The segment is
// skipped when either endpoint cannot be projected.
func (l *Line) Render(c Canvas, pr Projector) {
	a, okA := l.A.draw(c, pr)
	b, okB := l.B.draw(c, pr)
	if !okA || !okB {
		return
	}
	c.DrawSegment(a.X, a.Y, b.X, b.Y)
}

// Highlight flashes both endpoints.
func (l *Line) Highlight(c Canvas, pr Projector, ttl time.Duration) {
	l.A.Highlight(c, pr, ttl)
	if l.B != l.A {
		l.B.Highlight(c, pr, ttl)
	}
}
