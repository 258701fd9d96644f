// Command polyview is the native viewer: a window showing one Platonic
// solid, driven by hotkeys and a one-line script console.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/chazu/manualcad/pkg/command"
	"github.com/chazu/manualcad/pkg/engine"
	"github.com/chazu/manualcad/pkg/projection"
	"github.com/chazu/manualcad/pkg/solids"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := command.DefaultConfig()
	var shape, mode, script string
	flag.StringVar(&shape, "shape", "hexahedron", "Solid to place at startup (empty for none).")
	flag.StringVar(&mode, "projection", cfg.Projection.String(), "perspective or axonometric.")
	flag.Float64Var(&cfg.View.Phi, "phi", cfg.View.Phi, "Axonometric phi in degrees.")
	flag.Float64Var(&cfg.View.Theta, "theta", cfg.View.Theta, "Axonometric theta in degrees.")
	flag.Float64Var(&cfg.View.Distance, "distance", cfg.View.Distance, "Perspective eye distance.")
	flag.Float64Var(&cfg.Size, "size", cfg.Size, "Edge scale of placed solids.")
	flag.StringVar(&script, "script", "", "Script file to run after startup.")
	flag.Parse()

	v, err := setup(cfg, shape, mode, script)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	ebiten.SetWindowTitle("polyview")
	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetTPS(60)
	if err := ebiten.RunGame(v); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// setup validates the flags and builds a viewer, running script if set.
func setup(cfg command.Config, shape, mode, script string) (*viewer, error) {
	m, err := projection.ParseMode(mode)
	if err != nil {
		return nil, err
	}
	if !(cfg.View.Distance > 0) {
		return nil, fmt.Errorf("-distance: %w", projection.ErrInvalidDistance)
	}
	cfg.Projection = m
	cfg.View.Phi = projection.WrapDegrees(cfg.View.Phi)
	cfg.View.Theta = projection.WrapDegrees(cfg.View.Theta)

	s := command.NewSession(cfg)
	if shape != "" {
		k, err := solids.ParseKind(shape)
		if err != nil {
			return nil, err
		}
		s.Place(k)
	}

	v := newViewer(s, engine.NewEngine())
	if script != "" {
		src, err := os.ReadFile(script)
		if err != nil {
			return nil, err
		}
		v.runScript(string(src))
		log.Printf("script %s: %s", script, v.status)
	}
	return v, nil
}
