// Package render collects the draw calls produced by the geometric core
// into a flat, JSON-serialisable list that any surface can replay.
package render

import (
	"time"

	"github.com/chazu/manualcad/pkg/geom"
)

// OpKind distinguishes draw operations.
type OpKind int

const (
	OpDot       OpKind = iota // filled vertex dot at (X1, Y1)
	OpSegment                 // line from (X1, Y1) to (X2, Y2)
	OpHighlight               // transient dot at (X1, Y1), removed after TTLms
)

func (k OpKind) String() string {
	switch k {
	case OpDot:
		return "dot"
	case OpSegment:
		return "segment"
	case OpHighlight:
		return "highlight"
	default:
		return "unknown"
	}
}

// Op is one recorded draw call.
type Op struct {
	Kind  OpKind  `json:"kind"`
	X1    float64 `json:"x1"`
	Y1    float64 `json:"y1"`
	X2    float64 `json:"x2,omitempty"`
	Y2    float64 `json:"y2,omitempty"`
	TTLms int64   `json:"ttlMs,omitempty"`
}

// DrawList is a geom.Canvas that records draw calls. Clear drops what was
// recorded so far.
type DrawList struct {
	Ops []Op `json:"ops"`
}

// Compile-time interface check.
var _ geom.Canvas = (*DrawList)(nil)

// NewDrawList returns an empty list.
func NewDrawList() *DrawList {
	return &DrawList{Ops: []Op{}}
}

// Clear implements geom.Canvas.
func (d *DrawList) Clear() {
	d.Ops = d.Ops[:0]
}

// DrawDot implements geom.Canvas.
func (d *DrawList) DrawDot(x, y float64) {
	d.Ops = append(d.Ops, Op{Kind: OpDot, X1: x, Y1: y})
}

// DrawSegment implements geom.Canvas.
func (d *DrawList) DrawSegment(x1, y1, x2, y2 float64) {
	d.Ops = append(d.Ops, Op{Kind: OpSegment, X1: x1, Y1: y1, X2: x2, Y2: y2})
}

// DrawHighlightDot implements geom.Canvas.
func (d *DrawList) DrawHighlightDot(x, y float64, ttl time.Duration) {
	d.Ops = append(d.Ops, Op{Kind: OpHighlight, X1: x, Y1: y, TTLms: ttl.Milliseconds()})
}

// Count returns the number of recorded ops of kind k.
func (d *DrawList) Count(k OpKind) int {
	n := 0
	for _, op := range d.Ops {
		if op.Kind == k {
			n++
		}
	}
	return n
}

// IsEmpty returns true if nothing has been drawn since the last Clear.
func (d *DrawList) IsEmpty() bool {
	return len(d.Ops) == 0
}

// Frame clears c and renders s through pr. A nil shape leaves c cleared.
func Frame(c geom.Canvas, s geom.Shape, pr geom.Projector) {
	c.Clear()
	if s == nil {
		return
	}
	s.Render(c, pr)
}
