// Package projection maps 3D points to screen coordinates under a
// perspective or axonometric projection driven by live view settings.
package projection

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/chazu/manualcad/pkg/geom"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

var (
	// ErrUnknownMode is returned by ParseMode.
	ErrUnknownMode = errors.New("unknown projection")
	// ErrUnknownViewParam is returned by View.With for a bad name.
	ErrUnknownViewParam = errors.New("unknown view parameter")
	// ErrInvalidDistance is returned for a perspective distance <= 0.
	ErrInvalidDistance = errors.New("perspective distance must be positive")
)

// eyePlaneEpsilon bounds |1 - z/d| below which a point sits on the eye
// plane and cannot be projected.
const eyePlaneEpsilon = 1e-9

// Mode selects the projection.
type Mode int

const (
	Perspective Mode = iota
	Axonometric
)

func (m Mode) String() string {
	switch m {
	case Perspective:
		return "perspective"
	case Axonometric:
		return "axonometric"
	default:
		return "unknown"
	}
}

// ParseMode accepts "perspective" or "axonometric" in any case.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "perspective":
		return Perspective, nil
	case "axonometric":
		return Axonometric, nil
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownMode, s)
}

// Offset is a screen-space translation that centres the drawing.
type Offset struct {
	X, Y float64
}

// Screen offsets per mode, sized for a 1200x525 canvas.
var (
	PerspectiveOffset = Offset{X: 450, Y: 250}
	AxonometricOffset = Offset{X: 600, Y: 250}
)

// View holds the user-adjustable view settings. Angles are in degrees.
type View struct {
	Phi      float64 `json:"phi"`
	Theta    float64 `json:"theta"`
	Distance float64 `json:"distance"`
}

// DefaultView returns φ=60°, θ=45°, d=1000.
func DefaultView() View {
	return View{Phi: 60, Theta: 45, Distance: 1000}
}

// With returns a copy of v with one parameter replaced. name is one of
// "distance", "phi" or "theta". Angles wrap into [0, 360).
func (v View) With(name string, value float64) (View, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "distance":
		if !(value > 0) {
			return v, fmt.Errorf("%w, got %v", ErrInvalidDistance, value)
		}
		v.Distance = value
	case "phi":
		v.Phi = WrapDegrees(value)
	case "theta":
		v.Theta = WrapDegrees(value)
	default:
		return v, fmt.Errorf("%w %q, expected distance, phi or theta", ErrUnknownViewParam, name)
	}
	return v, nil
}

// WrapDegrees maps a into [0, 360).
func WrapDegrees(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	if a >= 360 {
		a = 0
	}
	return a
}

// Projector is a pure function of its mode and view. The zero value is a
// perspective projector with d = 0, which projects nothing; use New.
type Projector struct {
	Mode   Mode
	View   View
	Offset Offset

	axo geom.Mat4
}

// Compile-time interface check.
var _ geom.Projector = Projector{}

// New returns a projector with the default screen offset for mode.
func New(mode Mode, view View) Projector {
	off := PerspectiveOffset
	if mode == Axonometric {
		off = AxonometricOffset
	}
	return NewWithOffset(mode, view, off)
}

// NewWithOffset returns a projector with an explicit screen offset.
func NewWithOffset(mode Mode, view View, off Offset) Projector {
	return Projector{
		Mode:   mode,
		View:   view,
		Offset: off,
		axo:    axonometric(view.Phi, view.Theta),
	}
}

// Project implements geom.Projector.
func (p Projector) Project(v v3.Vec) (geom.Projected, bool) {
	switch p.Mode {
	case Axonometric:
		r := p.axo.Apply(v)
		return geom.Projected{X: r.X + p.Offset.X, Y: r.Y + p.Offset.Y, Depth: v.Z}, true
	default:
		d := p.View.Distance
		if d == 0 {
			return geom.Projected{}, false
		}
		w := 1 - v.Z/d
		if math.Abs(w) < eyePlaneEpsilon {
			return geom.Projected{}, false
		}
		return geom.Projected{X: v.X/w + p.Offset.X, Y: v.Y/w + p.Offset.Y, Depth: v.Z}, true
	}
}

// axonometric returns the view matrix for angles phi and theta in degrees:
//
//	X = x·cosφ + z·sinφ
//	Y = x·cosθ·sinφ + y·cosθ − z·sinθ·cosφ
//
// The third row is zero; the projection is parallel.
func axonometric(phiDeg, thetaDeg float64) geom.Mat4 {
	phi := sdf.DtoR(WrapDegrees(phiDeg))
	theta := sdf.DtoR(WrapDegrees(thetaDeg))
	sp, cp := math.Sin(phi), math.Cos(phi)
	st, ct := math.Sin(theta), math.Cos(theta)
	return geom.Mat4{
		{cp, 0, sp, 0},
		{ct * sp, ct, -st * cp, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 1},
	}
}
