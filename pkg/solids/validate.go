package solids

import (
	"fmt"
	"math"

	"github.com/chazu/manualcad/pkg/geom"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// planarTolerance is the allowed distance of a face vertex from the face
// plane, relative to the face's longest edge.
const planarTolerance = 1e-6

// ValidationError is a structural defect that makes the solid unusable.
type ValidationError struct {
	Face    int // -1 when the error concerns the whole solid
	Message string
}

func (e ValidationError) Error() string {
	if e.Face >= 0 {
		return fmt.Sprintf("face %d: %s", e.Face, e.Message)
	}
	return e.Message
}

// ValidationWarning is advisory; the solid still renders.
type ValidationWarning struct {
	Face    int
	Message string
}

// Result separates blocking errors from warnings.
type Result struct {
	Errors   []ValidationError
	Warnings []ValidationWarning
}

// OK reports whether the solid has no errors.
func (r Result) OK() bool {
	return len(r.Errors) == 0
}

// Validate checks that ph is a closed polyhedral surface: every face has
// at least three distinct vertices, every edge borders exactly two faces
// and V - E + F = 2. Non-planar faces produce warnings.
func Validate(ph *geom.Polyhedron) Result {
	var r Result
	r.Errors = append(r.Errors, validateFaces(ph)...)
	r.Errors = append(r.Errors, validateClosedSurface(ph)...)
	r.Errors = append(r.Errors, validateEuler(ph)...)
	r.Warnings = append(r.Warnings, validatePlanarity(ph)...)
	return r
}

// validateFaces checks arity and repeated point handles per face.
func validateFaces(ph *geom.Polyhedron) []ValidationError {
	var errs []ValidationError
	for i, f := range ph.Faces {
		if len(f.Points) < 3 {
			errs = append(errs, ValidationError{
				Face:    i,
				Message: fmt.Sprintf("has %d points, need at least 3", len(f.Points)),
			})
			continue
		}
		seen := make(map[*geom.Point]bool, len(f.Points))
		for _, p := range f.Points {
			if seen[p] {
				errs = append(errs, ValidationError{
					Face:    i,
					Message: fmt.Sprintf("references point (%.4f, %.4f, %.4f) twice", p.X, p.Y, p.Z),
				})
				break
			}
			seen[p] = true
		}
	}
	return errs
}

// validateClosedSurface checks that each undirected edge borders exactly
// two faces.
func validateClosedSurface(ph *geom.Polyhedron) []ValidationError {
	counts := make(map[geom.Edge]int)
	for _, f := range ph.Faces {
		for _, l := range f.Edges() {
			key := geom.Edge{A: l.A, B: l.B}
			if _, ok := counts[geom.Edge{A: l.B, B: l.A}]; ok {
				key = geom.Edge{A: l.B, B: l.A}
			}
			counts[key]++
		}
	}

	var errs []ValidationError
	for _, e := range ph.Edges() {
		n := counts[e]
		if n == 0 {
			n = counts[geom.Edge{A: e.B, B: e.A}]
		}
		if n != 2 {
			errs = append(errs, ValidationError{
				Face: -1,
				Message: fmt.Sprintf("edge (%.4f, %.4f, %.4f)-(%.4f, %.4f, %.4f) borders %d faces, want 2",
					e.A.X, e.A.Y, e.A.Z, e.B.X, e.B.Y, e.B.Z, n),
			})
		}
	}
	return errs
}

// validateEuler checks the Euler characteristic of a sphere-like surface.
func validateEuler(ph *geom.Polyhedron) []ValidationError {
	v, e, f := len(ph.Vertices()), len(ph.Edges()), len(ph.Faces)
	if chi := v - e + f; chi != 2 {
		return []ValidationError{{
			Face:    -1,
			Message: fmt.Sprintf("V - E + F = %d - %d + %d = %d, want 2", v, e, f, chi),
		}}
	}
	return nil
}

// validatePlanarity warns about faces whose vertices stray from the
// Newell plane of the face.
func validatePlanarity(ph *geom.Polyhedron) []ValidationWarning {
	var warnings []ValidationWarning
	for i, f := range ph.Faces {
		if len(f.Points) <= 3 {
			continue
		}
		normal := newellNormal(f)
		n := normal.Length()
		if n == 0 {
			warnings = append(warnings, ValidationWarning{Face: i, Message: "degenerate face has no normal"})
			continue
		}
		normal = normal.DivScalar(n)
		center := f.Center()

		scale := 0.0
		for _, l := range f.Edges() {
			scale = math.Max(scale, l.B.Sub(l.A.Vec).Length())
		}
		worst := 0.0
		for _, p := range f.Points {
			worst = math.Max(worst, math.Abs(p.Sub(center).Dot(normal)))
		}
		if worst > planarTolerance*scale {
			warnings = append(warnings, ValidationWarning{
				Face:    i,
				Message: fmt.Sprintf("not planar: vertex %.4g off the face plane", worst),
			})
		}
	}
	return warnings
}

// newellNormal returns the unnormalised polygon normal by Newell's method.
func newellNormal(f *geom.Polygon) v3.Vec {
	var n v3.Vec
	k := len(f.Points)
	for i, p := range f.Points {
		q := f.Points[(i+1)%k]
		n.X += (p.Y - q.Y) * (p.Z + q.Z)
		n.Y += (p.Z - q.Z) * (p.X + q.X)
		n.Z += (p.X - q.X) * (p.Y + q.Y)
	}
	return n
}
