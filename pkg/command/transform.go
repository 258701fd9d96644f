package command

import (
	"fmt"

	"github.com/chazu/manualcad/pkg/geom"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// apply multiplies every distinct vertex of the active shape by m.
// Caller holds s.mu.
func (s *Session) apply(m geom.Mat4) {
	if s.shape == nil {
		return
	}
	s.shape.Transform(m)
}

// pivot returns the centroid when about is set, otherwise the origin.
// Caller holds s.mu and has checked s.shape.
func (s *Session) pivot(about bool) v3.Vec {
	if !about {
		return v3.Vec{}
	}
	return s.shape.Center()
}

// Translate moves the active shape by d.
func (s *Session) Translate(d v3.Vec) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.apply(geom.Translate(d))
}

// Scale scales the active shape per axis, about its centroid when
// aboutCentroid is set and about the origin otherwise.
func (s *Session) Scale(f v3.Vec, aboutCentroid bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.shape == nil {
		return
	}
	s.apply(geom.ScaleAbout(f, s.pivot(aboutCentroid)))
}

// Rotate rotates the active shape by the X, Y and Z angles of deg (in
// degrees), in that order. The pivot is the centroid at the moment of the
// call and stays fixed across the three rotations.
//
// All three angles are right-handed, matching RotateAxis: a positive angle
// turns counter-clockwise when looking from the positive axis toward the
// origin. Formulations that use the transposed X and Y matrices turn the
// opposite way for positive X and Y angles; negate those to port a script.
func (s *Session) Rotate(deg v3.Vec, aboutCentroid bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.shape == nil {
		return
	}
	p := s.pivot(aboutCentroid)
	m := geom.RotateZAbout(sdf.DtoR(deg.Z), p).
		Mul(geom.RotateYAbout(sdf.DtoR(deg.Y), p)).
		Mul(geom.RotateXAbout(sdf.DtoR(deg.X), p))
	s.apply(m)
}

// RotateAxis rotates the active shape by deg degrees about a line through
// its centroid parallel to the named axis. The rotation is built as three
// explicit steps: move the centroid to the origin, rotate, move back. An
// unknown axis is rejected before anything moves.
func (s *Session) RotateAxis(axis string, deg float64) error {
	a, err := geom.ParseAxis(axis)
	if err != nil {
		return fmt.Errorf("command: rotate-axis: %w", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.shape == nil {
		return nil
	}
	c := s.shape.Center()
	s.apply(geom.Translate(c.Neg()))
	s.apply(geom.Rotate(a, sdf.DtoR(deg)))
	s.apply(geom.Translate(c))
	return nil
}

// Reflect mirrors the active shape through the named coordinate plane
// ("XY", "YZ" or "XZ", any case or letter order). Reflection is about the
// origin plane, not the centroid.
func (s *Session) Reflect(plane string) error {
	p, err := geom.ParsePlane(plane)
	if err != nil {
		return fmt.Errorf("command: reflect: %w", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.apply(geom.Reflect(p))
	return nil
}

// RotateAroundLine is declared for rotation about an arbitrary line
// through a and b but has no implementation.
func (s *Session) RotateAroundLine(a, b v3.Vec, deg float64) error {
	return fmt.Errorf("command: rotate-line: %w", ErrNotSupported)
}
