package solids

import (
	"strings"
	"testing"

	"github.com/chazu/manualcad/pkg/geom"
)

// resultHasError returns true if r.Errors contains a message with substr.
func resultHasError(r Result, substr string) bool {
	for _, e := range r.Errors {
		if strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}

func TestValidate_OpenSurface(t *testing.T) {
	cube := NewHexahedron(10)
	cube.Faces = cube.Faces[:5] // drop the lid

	r := Validate(cube)
	if r.OK() {
		t.Fatal("Validate() accepted an open box")
	}
	if !resultHasError(r, "borders 1 faces") {
		t.Errorf("errors = %v, want an edge bordering 1 face", r.Errors)
	}
	if !resultHasError(r, "want 2") {
		t.Errorf("errors = %v, want an Euler error", r.Errors)
	}
}

func TestValidate_ShortFace(t *testing.T) {
	a, b := geom.NewPoint(0, 0, 0), geom.NewPoint(1, 0, 0)
	ph := geom.NewPolyhedron(geom.NewPolygon(a, b))
	r := Validate(ph)
	if !resultHasError(r, "need at least 3") {
		t.Errorf("errors = %v, want arity error", r.Errors)
	}
	if r.Errors[0].Face != 0 {
		t.Errorf("Face = %d, want 0", r.Errors[0].Face)
	}
}

func TestValidate_RepeatedHandle(t *testing.T) {
	a, b := geom.NewPoint(0, 0, 0), geom.NewPoint(1, 0, 0)
	ph := geom.NewPolyhedron(geom.NewPolygon(a, b, a))
	if r := Validate(ph); !resultHasError(r, "twice") {
		t.Errorf("errors = %v, want repeated point error", r.Errors)
	}
}

func TestValidate_NonPlanarWarning(t *testing.T) {
	cube := NewHexahedron(10)
	cube.Faces[5].Points[0].Z += 1 // lift one lid corner

	r := Validate(cube)
	if !r.OK() {
		t.Fatalf("Validate() errors = %v", r.Errors)
	}
	if len(r.Warnings) == 0 {
		t.Fatal("Validate() produced no planarity warning")
	}
	for _, w := range r.Warnings {
		if !strings.Contains(w.Message, "not planar") {
			t.Errorf("warning = %q", w.Message)
		}
	}
}

func TestValidationErrorString(t *testing.T) {
	e := ValidationError{Face: 3, Message: "broken"}
	if got := e.Error(); got != "face 3: broken" {
		t.Errorf("Error() = %q", got)
	}
	e.Face = -1
	if got := e.Error(); got != "broken" {
		t.Errorf("Error() = %q", got)
	}
}
