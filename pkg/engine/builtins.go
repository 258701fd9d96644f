package engine

import (
	"fmt"
	"strings"

	"github.com/chazu/manualcad/pkg/command"
	"github.com/chazu/manualcad/pkg/projection"
	"github.com/chazu/manualcad/pkg/solids"
	v3 "github.com/deadsy/sdfx/vec/v3"
	zygo "github.com/glycerine/zygomys/zygo"
)

// ---------------------------------------------------------------------------
// Custom Sexp types
// ---------------------------------------------------------------------------

// sexpVec3 wraps a v3.Vec so it can be passed between builtins.
type sexpVec3 struct {
	vec v3.Vec
}

func (v *sexpVec3) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(vec3 %g %g %g)", v.vec.X, v.vec.Y, v.vec.Z)
}
func (v *sexpVec3) Type() *zygo.RegisteredType { return nil }

// ---------------------------------------------------------------------------
// Keyword argument parsing
// ---------------------------------------------------------------------------

// isKW checks if a Sexp is a preprocessed keyword string.
// Returns the keyword name (without prefix) and true if it is.
func isKW(s zygo.Sexp) (string, bool) {
	str, ok := s.(*zygo.SexpStr)
	if !ok || !strings.HasPrefix(str.S, kwPrefix) {
		return "", false
	}
	return str.S[len(kwPrefix):], true
}

// kwArgs holds a mixed positional+keyword argument list.
type kwArgs struct {
	kw         map[string]zygo.Sexp
	order      []string
	positional []zygo.Sexp
}

// parseArgs separates args into keyword and positional arguments. A
// keyword at the very end, or followed by another keyword, is a flag and
// maps to SexpNull.
func parseArgs(args []zygo.Sexp) kwArgs {
	pa := kwArgs{kw: make(map[string]zygo.Sexp)}
	for i := 0; i < len(args); i++ {
		name, ok := isKW(args[i])
		if !ok {
			pa.positional = append(pa.positional, args[i])
			continue
		}
		if _, seen := pa.kw[name]; !seen {
			pa.order = append(pa.order, name)
		}
		if i+1 < len(args) {
			if _, next := isKW(args[i+1]); !next {
				pa.kw[name] = args[i+1]
				i++
				continue
			}
		}
		pa.kw[name] = zygo.SexpNull
	}
	return pa
}

// ---------------------------------------------------------------------------
// Value extraction helpers
// ---------------------------------------------------------------------------

// toFloat64 extracts a float64 from a Sexp (SexpInt or SexpFloat).
func toFloat64(s zygo.Sexp) (float64, error) {
	switch v := s.(type) {
	case *zygo.SexpInt:
		return float64(v.Val), nil
	case *zygo.SexpFloat:
		return v.Val, nil
	}
	return 0, fmt.Errorf("expected number, got %T (%s)", s, s.SexpString(nil))
}

// toKeywordString extracts a keyword name or plain string from a Sexp.
// Handles both preprocessed keywords (__kw_z) and plain strings ("z").
func toKeywordString(s zygo.Sexp) (string, error) {
	str, ok := s.(*zygo.SexpStr)
	if !ok {
		return "", fmt.Errorf("expected keyword or string, got %T (%s)", s, s.SexpString(nil))
	}
	return strings.TrimPrefix(str.S, kwPrefix), nil
}

// toBool reads a flag value. A bare keyword flag counts as true; numbers
// are true when non-zero.
func toBool(s zygo.Sexp) (bool, error) {
	if s == zygo.SexpNull {
		return true, nil
	}
	switch v := s.(type) {
	case *zygo.SexpInt:
		return v.Val != 0, nil
	case *zygo.SexpStr:
		s = &zygo.SexpStr{S: strings.TrimPrefix(v.S, kwPrefix)}
	}
	switch strings.ToLower(s.SexpString(nil)) {
	case "true", `"true"`:
		return true, nil
	case "false", `"false"`:
		return false, nil
	}
	return false, fmt.Errorf("expected true or false, got %s", s.SexpString(nil))
}

// toVec3 extracts a v3.Vec from a sexpVec3.
func toVec3(s zygo.Sexp) (v3.Vec, error) {
	if v, ok := s.(*sexpVec3); ok {
		return v.vec, nil
	}
	return v3.Vec{}, fmt.Errorf("expected vec3, got %T (%s)", s, s.SexpString(nil))
}

// vecArgs reads either a single vec3 or three numbers. When uniform is set
// a single number n is also accepted and read as (n, n, n).
func vecArgs(args []zygo.Sexp, uniform bool) (v3.Vec, error) {
	switch len(args) {
	case 1:
		if v, err := toVec3(args[0]); err == nil {
			return v, nil
		}
		if uniform {
			f, err := toFloat64(args[0])
			if err != nil {
				return v3.Vec{}, err
			}
			return v3.Vec{X: f, Y: f, Z: f}, nil
		}
		return toVec3(args[0])
	case 3:
		var xyz [3]float64
		for i, a := range args {
			f, err := toFloat64(a)
			if err != nil {
				return v3.Vec{}, fmt.Errorf("%c: %w", "xyz"[i], err)
			}
			xyz[i] = f
		}
		return v3.Vec{X: xyz[0], Y: xyz[1], Z: xyz[2]}, nil
	}
	return v3.Vec{}, fmt.Errorf("expected 3 numbers or a vec3, got %d arguments", len(args))
}

// centerFlag reads the optional :center keyword.
func centerFlag(pa kwArgs) (bool, error) {
	v, ok := pa.kw["center"]
	if !ok {
		return false, nil
	}
	return toBool(v)
}

// ---------------------------------------------------------------------------
// Builtin registration
// ---------------------------------------------------------------------------

// registerBuiltins installs the viewer builtins into a zygomys environment.
// Every builtin acts on s immediately; scripts are sequences of commands.
// Session calls go through g, so they fail with ErrCanceled once the
// evaluation has timed out or been superseded.
//
// Source code must be preprocessed with preprocessSource() before evaluation so
// that :keyword tokens are converted to recognizable string literals.
func registerBuiltins(env *zygo.Zlisp, s *command.Session, g *gate) {

	// (vec3 1 2 3)
	env.AddFunction("vec3", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 3 {
			return zygo.SexpNull, fmt.Errorf("vec3 requires exactly 3 arguments, got %d", len(args))
		}
		v, err := vecArgs(args, false)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("vec3: %w", err)
		}
		return &sexpVec3{vec: v}, nil
	})

	// (place :hexahedron)
	env.AddFunction("place", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 1 {
			return zygo.SexpNull, fmt.Errorf("place requires a shape keyword")
		}
		kw, err := toKeywordString(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("place: %w", err)
		}
		k, err := solids.ParseKind(kw)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("place: %w", err)
		}
		return zygo.SexpNull, g.do(func() error {
			s.Place(k)
			return nil
		})
	})

	// (reset)
	env.AddFunction("reset", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		return zygo.SexpNull, g.do(func() error {
			s.Reset()
			return nil
		})
	})

	// (projection :axonometric)
	env.AddFunction("projection", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 1 {
			return zygo.SexpNull, fmt.Errorf("projection requires :perspective or :axonometric")
		}
		kw, err := toKeywordString(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("projection: %w", err)
		}
		m, err := projection.ParseMode(kw)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("projection: %w", err)
		}
		return zygo.SexpNull, g.do(func() error {
			s.SetProjection(m)
			return nil
		})
	})

	// (view :phi 30 :theta 20 :distance 800)
	env.AddFunction("view", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		if len(pa.positional) > 0 || len(pa.order) == 0 {
			return zygo.SexpNull, fmt.Errorf("view takes :distance, :phi or :theta keywords")
		}
		for _, param := range pa.order {
			f, err := toFloat64(pa.kw[param])
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("view: %s: %w", param, err)
			}
			if err := g.do(func() error { return s.SetViewParam(param, f) }); err != nil {
				return zygo.SexpNull, fmt.Errorf("view: %w", err)
			}
		}
		return zygo.SexpNull, nil
	})

	// (translate 10 -5 0) or (translate (vec3 10 -5 0))
	env.AddFunction("translate", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		d, err := vecArgs(args, false)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("translate: %w", err)
		}
		return zygo.SexpNull, g.do(func() error {
			s.Translate(d)
			return nil
		})
	})

	// (scale 2) (scale 2 1 1) (scale 2 2 2 :center true)
	env.AddFunction("scale", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		f, err := vecArgs(pa.positional, true)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("scale: %w", err)
		}
		about, err := centerFlag(pa)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("scale: center: %w", err)
		}
		return zygo.SexpNull, g.do(func() error {
			s.Scale(f, about)
			return nil
		})
	})

	// (rotate 30 0 0) (rotate 30 0 0 :center true)
	env.AddFunction("rotate", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		deg, err := vecArgs(pa.positional, false)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("rotate: %w", err)
		}
		about, err := centerFlag(pa)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("rotate: center: %w", err)
		}
		return zygo.SexpNull, g.do(func() error {
			s.Rotate(deg, about)
			return nil
		})
	})

	// (rotate-axis :x 90)
	//
	// Registered as "rotate_axis"; preprocessSource rewrites the hyphen.
	env.AddFunction("rotate_axis", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 2 {
			return zygo.SexpNull, fmt.Errorf("rotate-axis requires an axis and an angle")
		}
		axis, err := toKeywordString(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("rotate-axis: axis: %w", err)
		}
		deg, err := toFloat64(args[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("rotate-axis: angle: %w", err)
		}
		return zygo.SexpNull, g.do(func() error { return s.RotateAxis(axis, deg) })
	})

	// (reflect :xy)
	env.AddFunction("reflect", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 1 {
			return zygo.SexpNull, fmt.Errorf("reflect requires a plane keyword")
		}
		plane, err := toKeywordString(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("reflect: %w", err)
		}
		return zygo.SexpNull, g.do(func() error { return s.Reflect(plane) })
	})

	// (rotate-line (vec3 0 0 0) (vec3 1 0 0) 45)
	env.AddFunction("rotate_line", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 3 {
			return zygo.SexpNull, fmt.Errorf("rotate-line requires two points and an angle")
		}
		a, err := toVec3(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("rotate-line: from: %w", err)
		}
		b, err := toVec3(args[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("rotate-line: to: %w", err)
		}
		deg, err := toFloat64(args[2])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("rotate-line: angle: %w", err)
		}
		return zygo.SexpNull, g.do(func() error { return s.RotateAroundLine(a, b, deg) })
	})

	// (center) returns the active shape's centroid as a vec3.
	env.AddFunction("center", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		var c v3.Vec
		err := g.do(func() (err error) {
			c, err = s.Center()
			return err
		})
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("center: %w", err)
		}
		return &sexpVec3{vec: c}, nil
	})
}
