// Package script evaluates the sketch DSL. It wraps zygomys in a
// sandboxed environment and produces a sketch.Sketch from user source.
package script

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	zygo "github.com/glycerine/zygomys/zygo"

	"github.com/chazu/sketchsnap/pkg/sketch"
)

// EvalError represents a non-fatal error encountered during evaluation,
// such as a parse error, a runtime error in user code or an entity that
// failed construction.
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

// EvalWarning is an advisory finding about an evaluated sketch.
type EvalWarning struct {
	Message  string
	EntityID sketch.EntityID
}

// EvalResult bundles the full output of an evaluation.
type EvalResult struct {
	Sketch   *sketch.Sketch
	Errors   []EvalError
	Warnings []EvalWarning
}

// Engine evaluates sketch scripts. It is safe for concurrent use; every
// evaluation runs in a fresh sandbox, so equal source yields equal
// sketches.
type Engine struct {
	timeout    time.Duration
	generation atomic.Uint64
}

// NewEngine returns an Engine that gives up on a script after EvalTimeout.
func NewEngine() *Engine {
	return &Engine{timeout: EvalTimeout}
}

// Evaluate runs source and returns the sketch it builds.
//
// A script that fails to parse or run yields a nil sketch and the
// EvalErrors describing why. Failures outside the script (timeout,
// panic, a newer evaluation superseding this one) come back as error.
func (e *Engine) Evaluate(source string) (*sketch.Sketch, []EvalError, error) {
	return e.EvaluateContext(context.Background(), source)
}

// EvaluateContext is Evaluate bounded by ctx as well as the engine's
// timeout.
func (e *Engine) EvaluateContext(ctx context.Context, source string) (*sketch.Sketch, []EvalError, error) {
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	gen := e.generation.Add(1)
	done := make(chan outcome, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- outcome{err: fmt.Errorf("panic during evaluation: %v", r)}
			}
		}()
		sk, evalErrs, err := e.evaluate(source)
		done <- outcome{sketch: sk, errors: evalErrs, err: err}
	}()

	return e.await(ctx, gen, done)
}

// Result evaluates source and runs every validation tier over the
// sketch. Fatal failures are reported as an EvalError without line
// information.
func (e *Engine) Result(source string) EvalResult {
	sk, evalErrs, err := e.Evaluate(source)
	if err != nil {
		return EvalResult{Errors: []EvalError{{Message: err.Error()}}}
	}
	if len(evalErrs) > 0 {
		return EvalResult{Errors: evalErrs}
	}

	result := EvalResult{Sketch: sk}
	vr := sketch.ValidateAll(sk)
	for _, ve := range vr.Errors {
		result.Errors = append(result.Errors, EvalError{Message: ve.Error()})
	}
	for _, w := range vr.Warnings {
		result.Warnings = append(result.Warnings, EvalWarning{Message: w.Message, EntityID: w.EntityID})
	}
	return result
}

// evaluate performs the actual zygomys evaluation in a fresh sandbox.
func (e *Engine) evaluate(source string) (*sketch.Sketch, []EvalError, error) {
	// Empty source is a valid program that produces an empty sketch.
	if strings.TrimSpace(source) == "" {
		return sketch.New(), nil, nil
	}

	// Sandbox mode prevents user code from accessing the filesystem or syscalls.
	env := zygo.NewZlispSandbox()
	defer env.Stop()

	sk := sketch.New()
	registerBuiltins(env, sk)

	err := env.LoadString(rewriteSource(source))
	if err != nil {
		return nil, parseZygomysError(err), nil
	}

	_, err = env.Run()
	if err != nil {
		return nil, parseZygomysError(err), nil
	}

	return sk, nil, nil
}

// lineRef finds the first "line N:" in a zygomys error message.
var lineRef = regexp.MustCompile(`(?is)\bline (\d+):\s*(.*)`)

// parseZygomysError turns a zygomys error into an EvalError, keeping the
// line number when the message carries one.
func parseZygomysError(err error) []EvalError {
	msg := strings.TrimSpace(err.Error())
	m := lineRef.FindStringSubmatch(msg)
	if m == nil {
		return []EvalError{{Message: msg}}
	}
	line, _ := strconv.Atoi(m[1])
	return []EvalError{{Line: line, Message: strings.TrimSpace(m[2])}}
}
