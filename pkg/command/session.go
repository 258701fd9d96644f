// Package command turns user intents (translate, scale, rotate, reflect)
// into homogeneous matrices and applies them to the single active shape.
// Linear transforms can act about the shape's centroid instead of the
// origin.
package command

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/chazu/manualcad/pkg/geom"
	"github.com/chazu/manualcad/pkg/projection"
	"github.com/chazu/manualcad/pkg/render"
	"github.com/chazu/manualcad/pkg/solids"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

var (
	// ErrNotSupported is returned by commands that are declared but have no
	// implementation.
	ErrNotSupported = errors.New("command not supported")
	// ErrNoActiveShape is reported by queries when nothing is placed.
	// Transform commands never return it; they are no-ops instead.
	ErrNoActiveShape = errors.New("no active shape")
)

// DefaultHighlightTTL is how long highlight dots stay on screen.
const DefaultHighlightTTL = 200 * time.Millisecond

// Config holds the session defaults.
type Config struct {
	Size         float64         `json:"size"`
	Projection   projection.Mode `json:"projection"`
	View         projection.View `json:"view"`
	HighlightTTL time.Duration   `json:"highlightTtl"`
}

// DefaultConfig returns size 100, perspective, φ=60 θ=45 d=1000, 200ms.
func DefaultConfig() Config {
	return Config{
		Size:         solids.DefaultSize,
		Projection:   projection.Perspective,
		View:         projection.DefaultView(),
		HighlightTTL: DefaultHighlightTTL,
	}
}

// Session holds the active shape and the view state. All methods are safe
// for concurrent use; they are serialised on one mutex so a script running
// on a worker goroutine never interleaves with UI commands.
type Session struct {
	mu sync.Mutex

	cfg   Config
	shape *geom.Polyhedron
	kind  solids.Kind
	mode  projection.Mode
	view  projection.View
}

// NewSession returns an empty session. Zero fields of cfg take defaults.
func NewSession(cfg Config) *Session {
	def := DefaultConfig()
	if cfg.Size <= 0 {
		cfg.Size = def.Size
	}
	if cfg.View == (projection.View{}) {
		cfg.View = def.View
	} else if cfg.View.Distance <= 0 {
		cfg.View.Distance = def.View.Distance
	}
	if cfg.HighlightTTL <= 0 {
		cfg.HighlightTTL = def.HighlightTTL
	}
	return &Session{
		cfg:  cfg,
		mode: cfg.Projection,
		view: cfg.View,
	}
}

// Place discards the current shape and builds a fresh one of kind k.
func (s *Session) Place(k solids.Kind) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.shape = solids.New(k, s.cfg.Size)
	s.kind = k
}

// Reset discards the active shape.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.shape = nil
}

// Snapshot returns a copy of the active shape's distinct vertex
// coordinates, or nil when no shape is placed.
func (s *Session) Snapshot() []v3.Vec {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.shape == nil {
		return nil
	}
	return s.shape.Snapshot()
}

// Validate checks the active shape's topology under the session lock.
func (s *Session) Validate() (solids.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.shape == nil {
		return solids.Result{}, fmt.Errorf("command: validate: %w", ErrNoActiveShape)
	}
	return solids.Validate(s.shape), nil
}

// Kind returns the kind of the active shape.
func (s *Session) Kind() (solids.Kind, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.kind, s.shape != nil
}

// Center returns the centroid of the active shape.
func (s *Session) Center() (v3.Vec, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.shape == nil {
		return v3.Vec{}, ErrNoActiveShape
	}
	return s.shape.Center(), nil
}

// Bounds returns the bounding box of the active shape.
func (s *Session) Bounds() (sdf.Box3, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.shape == nil {
		return sdf.Box3{}, ErrNoActiveShape
	}
	return s.shape.Bounds(), nil
}

// SetProjection switches the projection mode.
func (s *Session) SetProjection(m projection.Mode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mode = m
}

// SetViewParam updates one of distance, phi or theta.
func (s *Session) SetViewParam(name string, value float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, err := s.view.With(name, value)
	if err != nil {
		return fmt.Errorf("command: view: %w", err)
	}
	s.view = v
	return nil
}

// View returns the current view settings and projection mode.
func (s *Session) View() (projection.Mode, projection.View) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode, s.view
}

// Projector returns a projector for the current view settings.
func (s *Session) Projector() projection.Projector {
	s.mu.Lock()
	defer s.mu.Unlock()
	return projection.New(s.mode, s.view)
}

// Redraw clears c and renders the active shape with the current view.
func (s *Session) Redraw(c geom.Canvas) {
	s.mu.Lock()
	defer s.mu.Unlock()
	pr := projection.New(s.mode, s.view)
	if s.shape == nil {
		render.Frame(c, nil, pr)
		return
	}
	render.Frame(c, s.shape, pr)
}

// Highlight flashes every vertex of the active shape on c.
func (s *Session) Highlight(c geom.Canvas) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.shape == nil {
		return
	}
	s.shape.Highlight(c, projection.New(s.mode, s.view), s.cfg.HighlightTTL)
}
