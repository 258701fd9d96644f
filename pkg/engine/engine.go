// Package engine runs viewer scripts. It wraps zygomys in a sandboxed
// environment whose builtins drive a command.Session, so a script can
// place a solid, change the view and apply transforms in sequence.
package engine

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/chazu/manualcad/pkg/command"
	zygo "github.com/glycerine/zygomys/zygo"
)

// EvalError represents a non-fatal error encountered during evaluation,
// such as a parse error, a bad builtin argument or an unsupported command.
type EvalError struct {
	Line    int
	Col     int
	Message string
}

func (e EvalError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, e.Message)
	}
	return e.Message
}

// Engine wraps the zygomys interpreter.
// It is safe for concurrent use; each call to Evaluate creates a fresh
// sandboxed environment. State lives in the session, not the interpreter.
// Starting an evaluation cancels the previous one.
type Engine struct {
	mu      sync.Mutex
	current *gate
	timeout time.Duration
}

// NewEngine creates a new Engine instance.
func NewEngine() *Engine {
	return &Engine{timeout: EvalTimeout}
}

// begin cancels the running evaluation, if any, and opens a gate for the
// next one.
func (e *Engine) begin() (*gate, time.Duration) {
	g := &gate{}
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.current != nil {
		e.current.cancel()
	}
	e.current = g
	limit := e.timeout
	if limit <= 0 {
		limit = EvalTimeout
	}
	return g, limit
}

// Evaluate runs source against s.
//
// Return semantics:
//   - On success: nil errors + nil error
//   - On parse/eval failure: eval errors + nil error. Commands that ran
//     before the failing form stay applied.
//   - On fatal failure (timeout, panic, superseded): nil + error
//
// A timed out or superseded script may keep running, but none of its
// commands reach s after Evaluate returns.
func (e *Engine) Evaluate(s *command.Session, source string) ([]EvalError, error) {
	g, limit := e.begin()
	ch := make(chan evalResult, 1)

	go func() {
		var res evalResult
		defer func() {
			if r := recover(); r != nil {
				res = evalResult{err: fmt.Errorf("panic during evaluation: %v", r)}
			}
			res.canceled = g.finish() == gateCanceled
			ch <- res
		}()

		res.errors, res.err = e.evaluate(s, source, g)
	}()

	return waitFor(ch, g, limit)
}

// evaluate performs the actual zygomys evaluation in a fresh sandbox.
func (e *Engine) evaluate(s *command.Session, source string, g *gate) ([]EvalError, error) {
	if strings.TrimSpace(source) == "" {
		return nil, nil
	}

	// Sandbox mode keeps scripts away from the filesystem and syscalls.
	env := zygo.NewZlispSandbox()
	defer env.Stop()

	registerBuiltins(env, s, g)

	if err := env.LoadString(preprocessSource(source)); err != nil {
		return parseZygomysError(err), nil
	}
	if _, err := env.Run(); err != nil {
		return parseZygomysError(err), nil
	}
	return nil, nil
}

// linePattern matches zygomys error messages that include "Error on line N: ..."
var linePattern = regexp.MustCompile(`(?i)(?:error )?on line (\d+):\s*(.*)`)

// linePatternShort matches simpler "line N: ..." patterns.
var linePatternShort = regexp.MustCompile(`(?i)^line (\d+):\s*(.*)`)

// parseZygomysError converts a zygomys error into one or more EvalError values,
// extracting a line number when the message carries one.
func parseZygomysError(err error) []EvalError {
	msg := err.Error()

	for _, re := range []*regexp.Regexp{linePattern, linePatternShort} {
		if m := re.FindStringSubmatch(msg); m != nil {
			line, _ := strconv.Atoi(m[1])
			return []EvalError{{Line: line, Message: strings.TrimSpace(m[2])}}
		}
	}

	return []EvalError{{Message: strings.TrimSpace(msg)}}
}
