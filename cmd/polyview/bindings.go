package main

import (
	"github.com/chazu/manualcad/pkg/command"
	"github.com/chazu/manualcad/pkg/projection"
	"github.com/chazu/manualcad/pkg/solids"
	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/hajimehoshi/ebiten/v2"
)

const (
	rotateStep = 15  // degrees per arrow press
	moveStep   = 10  // units per WASD/QE press
	scaleStep  = 1.1 // factor per +/- press
)

// binding maps a key to a session command.
type binding struct {
	key  ebiten.Key
	name string
	run  func(s *command.Session) error
}

func place(k solids.Kind) func(s *command.Session) error {
	return func(s *command.Session) error {
		s.Place(k)
		return nil
	}
}

func translate(d v3.Vec) func(s *command.Session) error {
	return func(s *command.Session) error {
		s.Translate(d)
		return nil
	}
}

func rotate(deg v3.Vec) func(s *command.Session) error {
	return func(s *command.Session) error {
		s.Rotate(deg, true)
		return nil
	}
}

func scale(f float64) func(s *command.Session) error {
	return func(s *command.Session) error {
		s.Scale(v3.Vec{X: f, Y: f, Z: f}, true)
		return nil
	}
}

func mirror(plane string) func(s *command.Session) error {
	return func(s *command.Session) error {
		return s.Reflect(plane)
	}
}

func toggleProjection(s *command.Session) error {
	mode, _ := s.View()
	if mode == projection.Perspective {
		s.SetProjection(projection.Axonometric)
	} else {
		s.SetProjection(projection.Perspective)
	}
	return nil
}

func reset(s *command.Session) error {
	s.Reset()
	return nil
}

// defaultBindings returns the viewer hotkeys. Reflect keys name the axis
// that flips: X mirrors through YZ.
func defaultBindings() []binding {
	return []binding{
		{ebiten.KeyDigit1, "place tetrahedron", place(solids.Tetrahedron)},
		{ebiten.KeyDigit2, "place hexahedron", place(solids.Hexahedron)},
		{ebiten.KeyDigit3, "place octahedron", place(solids.Octahedron)},
		{ebiten.KeyDigit4, "place icosahedron", place(solids.Icosahedron)},
		{ebiten.KeyDigit5, "place dodecahedron", place(solids.Dodecahedron)},
		{ebiten.KeyP, "toggle projection", toggleProjection},

		{ebiten.KeyArrowLeft, "rotate y-", rotate(v3.Vec{Y: -rotateStep})},
		{ebiten.KeyArrowRight, "rotate y+", rotate(v3.Vec{Y: rotateStep})},
		{ebiten.KeyArrowUp, "rotate x-", rotate(v3.Vec{X: -rotateStep})},
		{ebiten.KeyArrowDown, "rotate x+", rotate(v3.Vec{X: rotateStep})},

		{ebiten.KeyA, "move x-", translate(v3.Vec{X: -moveStep})},
		{ebiten.KeyD, "move x+", translate(v3.Vec{X: moveStep})},
		{ebiten.KeyW, "move y-", translate(v3.Vec{Y: -moveStep})},
		{ebiten.KeyS, "move y+", translate(v3.Vec{Y: moveStep})},
		{ebiten.KeyQ, "move z-", translate(v3.Vec{Z: -moveStep})},
		{ebiten.KeyE, "move z+", translate(v3.Vec{Z: moveStep})},

		{ebiten.KeyEqual, "grow", scale(scaleStep)},
		{ebiten.KeyNumpadAdd, "grow", scale(scaleStep)},
		{ebiten.KeyMinus, "shrink", scale(1 / scaleStep)},
		{ebiten.KeyNumpadSubtract, "shrink", scale(1 / scaleStep)},

		{ebiten.KeyX, "reflect yz", mirror("YZ")},
		{ebiten.KeyY, "reflect xz", mirror("XZ")},
		{ebiten.KeyZ, "reflect xy", mirror("XY")},

		{ebiten.KeyEscape, "reset", reset},
	}
}
