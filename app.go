package main

import (
	"context"
	"log"

	"github.com/chazu/manualcad/pkg/command"
	"github.com/chazu/manualcad/pkg/engine"
	"github.com/chazu/manualcad/pkg/projection"
	"github.com/chazu/manualcad/pkg/render"
	"github.com/chazu/manualcad/pkg/solids"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// App is the Wails backend. It exposes methods to the frontend via bindings.
type App struct {
	ctx     context.Context
	engine  *engine.Engine
	session *command.Session
}

// ErrorData is a JSON-serializable error for the frontend.
type ErrorData struct {
	Line    int    `json:"line"`
	Col     int    `json:"col"`
	Message string `json:"message"`
}

// ViewData mirrors the current projection settings.
type ViewData struct {
	Projection string  `json:"projection"`
	Phi        float64 `json:"phi"`
	Theta      float64 `json:"theta"`
	Distance   float64 `json:"distance"`
}

// FrameResult is returned by every binding: the draw list for the new
// frame plus any errors the command produced.
type FrameResult struct {
	Ops    []render.Op `json:"ops"`
	Errors []ErrorData `json:"errors"`
	Shape  string      `json:"shape"`
	View   ViewData    `json:"view"`
}

// NewApp creates a new App with an engine and a session using cfg.
func NewApp(cfg command.Config) *App {
	return &App{
		engine:  engine.NewEngine(),
		session: command.NewSession(cfg),
	}
}

// startup is called by Wails on app startup. The context is saved
// so we can call Wails runtime methods later if needed.
func (a *App) startup(ctx context.Context) {
	a.ctx = ctx
}

// frame redraws the session into a fresh draw list and attaches errs.
func (a *App) frame(errs ...ErrorData) FrameResult {
	dl := render.NewDrawList()
	a.session.Redraw(dl)
	return a.result(dl, errs)
}

func (a *App) result(dl *render.DrawList, errs []ErrorData) FrameResult {
	res := FrameResult{
		Ops:    dl.Ops,
		Errors: []ErrorData{},
	}
	res.Errors = append(res.Errors, errs...)
	if k, ok := a.session.Kind(); ok {
		res.Shape = k.String()
	}
	mode, view := a.session.View()
	res.View = ViewData{
		Projection: mode.String(),
		Phi:        view.Phi,
		Theta:      view.Theta,
		Distance:   view.Distance,
	}
	return res
}

// fail logs err and returns the unchanged frame with err attached.
func (a *App) fail(op string, err error) FrameResult {
	log.Printf("%s error: %v", op, err)
	return a.frame(ErrorData{Message: err.Error()})
}

// Frame returns the current frame without changing anything.
func (a *App) Frame() FrameResult {
	return a.frame()
}

// Place replaces the active shape with a new solid named kind.
func (a *App) Place(kind string) FrameResult {
	k, err := solids.ParseKind(kind)
	if err != nil {
		return a.fail("Place", err)
	}
	a.session.Place(k)
	return a.frame()
}

// Reset clears the active shape.
func (a *App) Reset() FrameResult {
	a.session.Reset()
	return a.frame()
}

// Translate moves the active shape.
func (a *App) Translate(dx, dy, dz float64) FrameResult {
	a.session.Translate(v3.Vec{X: dx, Y: dy, Z: dz})
	return a.frame()
}

// Scale scales the active shape, about its centroid when center is set.
func (a *App) Scale(sx, sy, sz float64, center bool) FrameResult {
	a.session.Scale(v3.Vec{X: sx, Y: sy, Z: sz}, center)
	return a.frame()
}

// Rotate rotates the active shape by X, then Y, then Z degrees.
func (a *App) Rotate(ax, ay, az float64, center bool) FrameResult {
	a.session.Rotate(v3.Vec{X: ax, Y: ay, Z: az}, center)
	return a.frame()
}

// RotateAxis rotates about a centroid line parallel to axis.
func (a *App) RotateAxis(axis string, deg float64) FrameResult {
	if err := a.session.RotateAxis(axis, deg); err != nil {
		return a.fail("RotateAxis", err)
	}
	return a.frame()
}

// Reflect mirrors the active shape through a coordinate plane.
func (a *App) Reflect(plane string) FrameResult {
	if err := a.session.Reflect(plane); err != nil {
		return a.fail("Reflect", err)
	}
	return a.frame()
}

// SetProjection switches between "perspective" and "axonometric".
func (a *App) SetProjection(mode string) FrameResult {
	m, err := projection.ParseMode(mode)
	if err != nil {
		return a.fail("SetProjection", err)
	}
	a.session.SetProjection(m)
	return a.frame()
}

// SetViewParam updates distance, phi or theta.
func (a *App) SetViewParam(name string, value float64) FrameResult {
	if err := a.session.SetViewParam(name, value); err != nil {
		return a.fail("SetViewParam", err)
	}
	return a.frame()
}

// Highlight returns the current frame followed by a highlight dot on
// every vertex. The frontend removes each dot after its TTL.
func (a *App) Highlight() FrameResult {
	dl := render.NewDrawList()
	a.session.Redraw(dl)
	a.session.Highlight(dl)
	return a.result(dl, nil)
}

// Run evaluates a script against the session and returns the resulting
// frame. Commands before a failing form stay applied.
func (a *App) Run(script string) FrameResult {
	evalErrs, err := a.engine.Evaluate(a.session, script)
	if err != nil {
		// Fatal error (panic, timeout, etc.)
		return a.fail("Run", err)
	}
	errs := make([]ErrorData, 0, len(evalErrs))
	for _, e := range evalErrs {
		errs = append(errs, ErrorData{Line: e.Line, Col: e.Col, Message: e.Message})
	}
	return a.frame(errs...)
}
