package main

import (
	"errors"

	"github.com/chazu/sketchsnap/pkg/kernel"
)

// errSketchInvalid is returned when a script fails to evaluate or
// validate; the details have already been printed.
var errSketchInvalid = errors.New("sketch has errors")

func isNotClosed(err error) bool {
	return errors.Is(err, kernel.ErrNotClosed)
}
