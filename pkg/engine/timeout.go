package engine

import (
	"errors"
	"fmt"
	"sync"
	"time"
)

// EvalTimeout is the default limit for a single evaluation.
const EvalTimeout = 5 * time.Second

var (
	// ErrTimeout is returned when a script runs longer than its limit.
	ErrTimeout = errors.New("evaluation timed out")
	// ErrSuperseded is returned when a newer evaluation started first.
	ErrSuperseded = errors.New("evaluation superseded by newer request")
	// ErrCanceled is returned by builtins once their evaluation has timed
	// out or been superseded.
	ErrCanceled = errors.New("evaluation canceled")
)

// evalResult carries an evaluation outcome back from the worker goroutine.
type evalResult struct {
	errors   []EvalError
	err      error
	canceled bool
}

type gateState int

const (
	gateOpen gateState = iota
	gateDone
	gateCanceled
)

// gate admits the session commands of one evaluation. Once shut, every
// later command fails with ErrCanceled; a command already admitted
// completes before cancel returns.
type gate struct {
	mu    sync.Mutex
	state gateState
}

// do runs fn unless the gate is shut.
func (g *gate) do(fn func() error) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.state != gateOpen {
		return ErrCanceled
	}
	return fn()
}

// shut moves an open gate to the given state and returns the state it
// was in before.
func (g *gate) shut(to gateState) gateState {
	g.mu.Lock()
	defer g.mu.Unlock()
	prev := g.state
	if prev == gateOpen {
		g.state = to
	}
	return prev
}

func (g *gate) finish() gateState { return g.shut(gateDone) }
func (g *gate) cancel() gateState { return g.shut(gateCanceled) }

// waitFor waits for a result from ch for at most limit. On timeout it
// cancels g, so the script can no longer touch the session. A result from
// a canceled evaluation is reported as ErrSuperseded.
func waitFor(ch <-chan evalResult, g *gate, limit time.Duration) ([]EvalError, error) {
	timer := time.NewTimer(limit)
	defer timer.Stop()

	select {
	case res := <-ch:
		return unpack(res)

	case <-timer.C:
		switch g.cancel() {
		case gateOpen:
			return nil, fmt.Errorf("%w after %s", ErrTimeout, limit)
		case gateCanceled:
			return nil, ErrSuperseded
		}
		// Finished as the timer fired; the worker sends right after.
		return unpack(<-ch)
	}
}

func unpack(res evalResult) ([]EvalError, error) {
	if res.canceled {
		return nil, ErrSuperseded
	}
	return res.errors, res.err
}
