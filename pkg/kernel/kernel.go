// Package kernel defines the abstract region kernel interface. A region
// is the filled area bounded by a closed sketch profile. Implementations
// (sdfx) answer containment and signed-distance queries behind this
// interface so hit-testing can ask "is the cursor inside this profile"
// without knowing how the region is represented.
package kernel

import (
	"errors"

	"github.com/chazu/sketchsnap/pkg/geom"
	"github.com/chazu/sketchsnap/pkg/sketch"
)

// ErrNotClosed is returned for entities that bound no area: lines, arcs,
// points and open splines.
var ErrNotClosed = errors.New("kernel: entity is not a closed profile")

// Region is an opaque handle to a filled 2D area.
// Implementations wrap their internal representation.
type Region interface {
	// Contains reports whether p lies inside or on the boundary.
	Contains(p geom.Point2D) bool
	// Distance returns the signed distance from p to the boundary,
	// negative inside. Implementations may return a bound rather than
	// the exact distance away from the boundary.
	Distance(p geom.Point2D) float64
	// Bounds returns the axis-aligned bounding box.
	Bounds() geom.BoundingBox
}

// Kernel is the abstract region kernel interface.
type Kernel interface {
	// Region builds the region enclosed by a closed entity.
	Region(e sketch.Entity) (Region, error)

	// Boolean operations
	Union(a, b Region) Region
	Difference(a, b Region) Region
}
