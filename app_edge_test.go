package main

import (
	"strings"
	"testing"

	"github.com/chazu/manualcad/pkg/render"
)

// ---------------------------------------------------------------------------
// 1. Bad arguments: the frame is returned unchanged with one error.
// ---------------------------------------------------------------------------

func TestE2EBadArguments(t *testing.T) {
	tests := []struct {
		name string
		call func(a *App) FrameResult
		want string
	}{
		{"unknown shape", func(a *App) FrameResult { return a.Place("torus") }, "unknown solid"},
		{"bad plane", func(a *App) FrameResult { return a.Reflect("XW") }, "invalid plane"},
		{"bad axis", func(a *App) FrameResult { return a.RotateAxis("W", 90) }, "invalid axis"},
		{"bad projection", func(a *App) FrameResult { return a.SetProjection("oblique") }, "unknown projection"},
		{"bad view param", func(a *App) FrameResult { return a.SetViewParam("zoom", 2) }, "unknown view parameter"},
		{"zero distance", func(a *App) FrameResult { return a.SetViewParam("distance", 0) }, "distance"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp()
			before := app.Place("hexahedron")

			res := tt.call(app)
			if len(res.Errors) != 1 {
				t.Fatalf("expected 1 error, got %v", res.Errors)
			}
			if !strings.Contains(res.Errors[0].Message, tt.want) {
				t.Errorf("error = %q, want containing %q", res.Errors[0].Message, tt.want)
			}
			if len(res.Ops) != len(before.Ops) {
				t.Fatalf("ops = %d, want %d", len(res.Ops), len(before.Ops))
			}
			for i := range res.Ops {
				if res.Ops[i] != before.Ops[i] {
					t.Fatalf("op %d changed: %+v -> %+v", i, before.Ops[i], res.Ops[i])
				}
			}
		})
	}
}

// ---------------------------------------------------------------------------
// 2. Commands with no shape placed: no errors, nothing drawn.
// ---------------------------------------------------------------------------

func TestE2ECommandsWithoutShape(t *testing.T) {
	app := newTestApp()
	results := []FrameResult{
		app.Translate(1, 2, 3),
		app.Scale(2, 2, 2, true),
		app.Rotate(10, 20, 30, false),
		app.RotateAxis("x", 45),
		app.Reflect("YZ"),
		app.Highlight(),
	}
	for i, res := range results {
		if len(res.Errors) > 0 {
			t.Errorf("call %d: unexpected errors %v", i, res.Errors)
		}
		if len(res.Ops) != 0 {
			t.Errorf("call %d: drew %d ops with no shape", i, len(res.Ops))
		}
	}
}

// ---------------------------------------------------------------------------
// 3. Comments only: nothing happens, no errors.
// ---------------------------------------------------------------------------

func TestE2ECommentsOnly(t *testing.T) {
	res := newTestApp().Run(";; just a comment\n; another one\n")
	if len(res.Errors) > 0 {
		t.Errorf("unexpected errors: %v", res.Errors)
	}
	if len(res.Ops) != 0 {
		t.Errorf("expected 0 ops, got %d", len(res.Ops))
	}
}

// ---------------------------------------------------------------------------
// 4. Rapid script runs alternating valid and invalid sources.
// ---------------------------------------------------------------------------

func TestE2ERapidRunAlternating(t *testing.T) {
	app := newTestApp()

	sources := []string{
		`(place :cube)`,
		`(place :cube`,
		``,
		`(reflect :nope)`,
		`(rotate 10 0 0 :center true)`,
		`(+ 1 2)`,
		`;; just a comment`,
		`(rotate-line (vec3 0 0 0) (vec3 0 0 1) 90)`,
		`(undefined-func 1 2 3)`,
		`(place :icosahedron)`,
	}

	for i, source := range sources {
		func() {
			defer func() {
				if r := recover(); r != nil {
					t.Errorf("iteration %d panicked on source %q: %v", i, source, r)
				}
			}()
			_ = app.Run(source)
		}()
	}

	res := app.Frame()
	if res.Shape != "icosahedron" {
		t.Errorf("final shape = %q, want icosahedron", res.Shape)
	}
}

// ---------------------------------------------------------------------------
// 5. Unsupported rotate-around-line reports an error and moves nothing.
// ---------------------------------------------------------------------------

func TestE2ERotateLineNotSupported(t *testing.T) {
	app := newTestApp()
	before := app.Place("hexahedron")
	res := app.Run(`(rotate-line (vec3 0 0 0) (vec3 1 1 1) 45)`)
	if len(res.Errors) == 0 || !strings.Contains(res.Errors[0].Message, "not supported") {
		t.Fatalf("errors = %v, want not supported", res.Errors)
	}
	for i := range res.Ops {
		if res.Ops[i] != before.Ops[i] {
			t.Fatalf("op %d changed", i)
		}
	}
}

// ---------------------------------------------------------------------------
// 6. Eye plane: a vertex at z == d is skipped along with its segments.
// ---------------------------------------------------------------------------

func TestE2EEyePlaneSkipsVertex(t *testing.T) {
	app := newTestApp()
	app.Place("hexahedron")
	app.SetViewParam("distance", 100)

	// The cube's top face sits at z = 100 = d. Faces draw their own edges:
	// the bottom face keeps 4 segments and 8 dots, each side face keeps its
	// bottom edge (1 segment, 2 dots) and one dot per vertical edge.
	res := app.Frame()
	if got := countOps(res, render.OpSegment); got != 8 {
		t.Errorf("segments = %d, want 8", got)
	}
	if got := countOps(res, render.OpDot); got != 24 {
		t.Errorf("dots = %d, want 24", got)
	}
}

// ---------------------------------------------------------------------------
// 7. Large coordinates render without overflow.
// ---------------------------------------------------------------------------

func TestE2ELargeTranslation(t *testing.T) {
	app := newTestApp()
	app.Place("octahedron")
	res := app.Translate(1e9, -1e9, 0)
	if got := countOps(res, render.OpSegment); got != 24 {
		t.Errorf("segments = %d, want 24", got)
	}
}
