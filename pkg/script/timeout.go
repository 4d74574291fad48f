package script

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/chazu/sketchsnap/pkg/sketch"
)

// EvalTimeout bounds a single evaluation.
const EvalTimeout = 5 * time.Second

var (
	// ErrTimeout is returned when a script runs longer than the engine
	// allows.
	ErrTimeout = errors.New("evaluation timed out")
	// ErrSuperseded is returned to an evaluation whose result arrived
	// after a newer evaluation started on the same engine.
	ErrSuperseded = errors.New("evaluation superseded by newer request")
)

type outcome struct {
	sketch *sketch.Sketch
	errors []EvalError
	err    error
}

// await collects the outcome of evaluation gen. The evaluating goroutine
// cannot be interrupted, so on timeout it keeps running and its outcome
// is dropped into the buffered channel unread.
func (e *Engine) await(ctx context.Context, gen uint64, done <-chan outcome) (*sketch.Sketch, []EvalError, error) {
	select {
	case res := <-done:
		if gen != e.generation.Load() {
			return nil, nil, ErrSuperseded
		}
		return res.sketch, res.errors, res.err
	case <-ctx.Done():
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, nil, fmt.Errorf("%w after %s", ErrTimeout, e.timeout)
		}
		return nil, nil, ctx.Err()
	}
}
