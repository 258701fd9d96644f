package main

import (
	"fmt"
	"image/color"
	"log"
	"strings"
	"time"

	"github.com/chazu/manualcad/pkg/command"
	"github.com/chazu/manualcad/pkg/engine"
	"github.com/chazu/manualcad/pkg/render"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	screenWidth  = 1200
	screenHeight = 525
)

var (
	inkColor   = color.RGBA{0x10, 0x10, 0x10, 0xff}
	flashColor = color.RGBA{0xe0, 0x30, 0x30, 0xff}
)

// flash is a highlight dot that disappears at until.
type flash struct {
	x, y  float64
	until time.Time
}

// flashesFrom collects the highlight ops of dl as timed flashes.
func flashesFrom(dl *render.DrawList, now time.Time) []flash {
	var out []flash
	for _, op := range dl.Ops {
		if op.Kind != render.OpHighlight {
			continue
		}
		ttl := time.Duration(op.TTLms) * time.Millisecond
		out = append(out, flash{x: op.X1, y: op.Y1, until: now.Add(ttl)})
	}
	return out
}

// pruneFlashes drops expired flashes in place.
func pruneFlashes(fs []flash, now time.Time) []flash {
	live := fs[:0]
	for _, f := range fs {
		if now.Before(f.until) {
			live = append(live, f)
		}
	}
	return live
}

// console is the one-line script prompt opened with ':'.
type console struct {
	open bool
	line []rune
}

func (c *console) feed(rs []rune) {
	for _, r := range rs {
		if r >= ' ' {
			c.line = append(c.line, r)
		}
	}
}

func (c *console) backspace() {
	if n := len(c.line); n > 0 {
		c.line = c.line[:n-1]
	}
}

// submit closes the prompt and returns what was typed.
func (c *console) submit() string {
	s := string(c.line)
	c.close()
	return s
}

func (c *console) close() {
	c.open = false
	c.line = c.line[:0]
}

// viewer implements ebiten.Game.
type viewer struct {
	session  *command.Session
	engine   *engine.Engine
	bindings []binding

	frame   *render.DrawList
	flashes []flash
	console console
	chars   []rune
	status  string
	now     func() time.Time
}

func newViewer(s *command.Session, e *engine.Engine) *viewer {
	return &viewer{
		session:  s,
		engine:   e,
		bindings: defaultBindings(),
		frame:    render.NewDrawList(),
		now:      time.Now,
	}
}

// do runs one binding and records the outcome in the status line.
func (v *viewer) do(b binding) {
	if err := b.run(v.session); err != nil {
		log.Printf("%s: %v", b.name, err)
		v.status = err.Error()
		return
	}
	v.status = b.name
}

// highlight flashes every vertex of the active shape.
func (v *viewer) highlight() {
	dl := render.NewDrawList()
	v.session.Highlight(dl)
	v.flashes = append(v.flashes, flashesFrom(dl, v.now())...)
}

// runScript evaluates src against the session.
func (v *viewer) runScript(src string) {
	evalErrs, err := v.engine.Evaluate(v.session, src)
	switch {
	case err != nil:
		log.Printf("script error: %v", err)
		v.status = err.Error()
	case len(evalErrs) > 0:
		msgs := make([]string, len(evalErrs))
		for i, e := range evalErrs {
			msgs[i] = e.Error()
		}
		v.status = strings.Join(msgs, "; ")
		log.Printf("script: %s", v.status)
	default:
		v.status = "ok"
	}
}

func (v *viewer) Update() error {
	v.chars = ebiten.AppendInputChars(v.chars[:0])

	if v.console.open {
		v.console.feed(v.chars)
		switch {
		case inpututil.IsKeyJustPressed(ebiten.KeyEnter):
			v.runScript(v.console.submit())
		case inpututil.IsKeyJustPressed(ebiten.KeyBackspace):
			v.console.backspace()
		case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
			v.console.close()
		}
	} else {
		if containsRune(v.chars, ':') {
			v.console.open = true
		} else {
			for _, b := range v.bindings {
				if inpututil.IsKeyJustPressed(b.key) {
					v.do(b)
				}
			}
		}
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			v.highlight()
		}
	}

	v.session.Redraw(v.frame)
	v.flashes = pruneFlashes(v.flashes, v.now())
	return nil
}

func (v *viewer) Draw(screen *ebiten.Image) {
	screen.Fill(color.White)
	for _, op := range v.frame.Ops {
		switch op.Kind {
		case render.OpSegment:
			vector.StrokeLine(screen, float32(op.X1), float32(op.Y1), float32(op.X2), float32(op.Y2), 1, inkColor, true)
		case render.OpDot:
			vector.DrawFilledCircle(screen, float32(op.X1), float32(op.Y1), 2.5, inkColor, true)
		}
	}
	for _, f := range v.flashes {
		vector.DrawFilledCircle(screen, float32(f.x), float32(f.y), 4, flashColor, true)
	}

	ebitenutil.DebugPrintAt(screen, v.statusLine(), 8, 8)
	if v.console.open {
		ebitenutil.DebugPrintAt(screen, ":"+string(v.console.line)+"_", 8, screenHeight-20)
	}
}

func (v *viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func (v *viewer) statusLine() string {
	shape := "no shape"
	if k, ok := v.session.Kind(); ok {
		shape = k.String()
	}
	mode, view := v.session.View()
	line := fmt.Sprintf("%s | %s phi=%g theta=%g d=%g", shape, mode, view.Phi, view.Theta, view.Distance)
	if v.status != "" {
		line += " | " + v.status
	}
	return line
}

func containsRune(rs []rune, r rune) bool {
	for _, c := range rs {
		if c == r {
			return true
		}
	}
	return false
}
