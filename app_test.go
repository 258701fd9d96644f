package main

import (
	"math"
	"os"
	"reflect"
	"strings"
	"testing"

	"github.com/chazu/manualcad/pkg/command"
	"github.com/chazu/manualcad/pkg/render"
)

func newTestApp() *App {
	return NewApp(command.DefaultConfig())
}

func countOps(res FrameResult, k render.OpKind) int {
	n := 0
	for _, op := range res.Ops {
		if op.Kind == k {
			n++
		}
	}
	return n
}

// TestE2ETourScript exercises the full pipeline: script → engine → session
// → projection → draw list. This is the path the Wails Run binding takes,
// without the Wails runtime.
func TestE2ETourScript(t *testing.T) {
	app := newTestApp()

	source, err := os.ReadFile("examples/tour.poly")
	if err != nil {
		t.Fatalf("failed to read tour.poly: %v", err)
	}

	result := app.Run(string(source))
	if len(result.Errors) > 0 {
		for _, e := range result.Errors {
			t.Errorf("eval error (line %d): %s", e.Line, e.Message)
		}
		t.FailNow()
	}

	if result.Shape != "hexahedron" {
		t.Errorf("shape = %q, want hexahedron", result.Shape)
	}
	if result.View.Projection != "axonometric" {
		t.Errorf("projection = %q, want axonometric", result.View.Projection)
	}
	if result.View.Phi != 30 || result.View.Theta != 20 {
		t.Errorf("view = %+v, want phi 30 theta 20", result.View)
	}
	if got := countOps(result, render.OpSegment); got != 24 {
		t.Errorf("segments = %d, want 24", got)
	}
}

func TestE2ETranslateThenReflect(t *testing.T) {
	app := newTestApp()
	app.Place("hexahedron")
	app.Translate(10, -5, 0)
	res := app.Reflect("XY")
	if len(res.Errors) > 0 {
		t.Fatalf("Reflect errors: %v", res.Errors)
	}

	c, err := app.session.Center()
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(c.X-60) > 1e-9 || math.Abs(c.Y-45) > 1e-9 || math.Abs(c.Z+50) > 1e-9 {
		t.Errorf("center = %v, want (60,45,-50)", c)
	}
}

// TestE2EEmptyFrame ensures an app with no shape draws nothing.
func TestE2EEmptyFrame(t *testing.T) {
	res := newTestApp().Frame()
	if len(res.Errors) > 0 {
		t.Errorf("unexpected errors: %v", res.Errors)
	}
	if len(res.Ops) != 0 {
		t.Errorf("expected 0 ops, got %d", len(res.Ops))
	}
	if res.Shape != "" {
		t.Errorf("shape = %q, want empty", res.Shape)
	}
}

// TestE2ESyntaxError ensures eval errors are reported, not fatal errors.
func TestE2ESyntaxError(t *testing.T) {
	res := newTestApp().Run(`(place :cube`)
	if len(res.Errors) == 0 {
		t.Fatal("expected eval errors for syntax error")
	}
}

func TestE2EPlaceEachShape(t *testing.T) {
	tests := []struct {
		kind     string
		segments int
		dots     int
	}{
		{"tetrahedron", 12, 24},
		{"hexahedron", 24, 48},
		{"octahedron", 24, 48},
		{"icosahedron", 60, 120},
		{"dodecahedron", 60, 120},
	}
	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			res := newTestApp().Place(tt.kind)
			if len(res.Errors) > 0 {
				t.Fatalf("Place errors: %v", res.Errors)
			}
			if got := countOps(res, render.OpSegment); got != tt.segments {
				t.Errorf("segments = %d, want %d", got, tt.segments)
			}
			if got := countOps(res, render.OpDot); got != tt.dots {
				t.Errorf("dots = %d, want %d", got, tt.dots)
			}
		})
	}
}

func TestE2EHighlight(t *testing.T) {
	app := newTestApp()
	app.Place("dodecahedron")
	res := app.Highlight()
	if got := countOps(res, render.OpHighlight); got != 20 {
		t.Errorf("highlights = %d, want 20", got)
	}
	for _, op := range res.Ops {
		if op.Kind == render.OpHighlight && op.TTLms != 200 {
			t.Fatalf("TTLms = %d, want 200", op.TTLms)
		}
	}
}

// TestPageCallsEveryBinding checks that each exported App method has a
// control in the page.
func TestPageCallsEveryBinding(t *testing.T) {
	page, err := os.ReadFile("frontend/dist/index.html")
	if err != nil {
		t.Fatal(err)
	}
	typ := reflect.TypeOf(&App{})
	for i := 0; i < typ.NumMethod(); i++ {
		name := typ.Method(i).Name
		if !strings.Contains(string(page), "api()."+name+"(") {
			t.Errorf("page never calls %s", name)
		}
	}
}

func TestE2ERotateAxisKeepsCentroid(t *testing.T) {
	app := newTestApp()
	app.Place("hexahedron")
	res := app.RotateAxis("Y", 90)
	if len(res.Errors) > 0 {
		t.Fatalf("unexpected errors: %v", res.Errors)
	}
	c, err := app.session.Center()
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(c.X-50) > 1e-9 || math.Abs(c.Y-50) > 1e-9 || math.Abs(c.Z-50) > 1e-9 {
		t.Errorf("center = %v, want (50, 50, 50)", c)
	}
	if got := countOps(res, render.OpSegment); got != 24 {
		t.Errorf("segments = %d, want 24", got)
	}
}
