package sketch

import (
	"fmt"
	"math"

	"github.com/chazu/sketchsnap/pkg/geom"
)

// ---------------------------------------------------------------------------
// Geometric errors
// ---------------------------------------------------------------------------

// geometryProblems lists everything about e that would make its geometry
// degenerate or produce NaN downstream. Constructors reject entities with
// any problem; validateGeometry reports them for snapshots built from
// struct literals.
func geometryProblems(e Entity) []string {
	var problems []string
	finite := func(name string, pts ...geom.Point2D) {
		for _, p := range pts {
			if !p.IsFinite() {
				problems = append(problems, fmt.Sprintf("%s %v is not finite", name, p))
				return
			}
		}
	}
	positive := func(name string, v float64) {
		if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
			problems = append(problems, fmt.Sprintf("%s is %.4f, must be positive", name, v))
		}
	}

	switch v := e.(type) {
	case Line:
		finite("endpoint", v.Start, v.End)
	case Circle:
		finite("center", v.Center)
		positive("radius", v.Radius)
	case Arc:
		finite("center", v.Center)
		positive("radius", v.Radius)
		if math.IsNaN(v.StartAngle) || math.IsNaN(v.EndAngle) ||
			math.IsInf(v.StartAngle, 0) || math.IsInf(v.EndAngle, 0) {
			problems = append(problems, "arc angles must be finite")
		}
	case Rectangle:
		finite("corner", v.Corner1, v.Corner2)
	case Point:
		finite("position", v.Position)
	case Ellipse:
		finite("center", v.Center)
		positive("major axis", v.MajorAxis)
		positive("minor axis", v.MinorAxis)
	case Polygon:
		finite("center", v.Center)
		positive("radius", v.Radius)
		if v.Sides < 3 {
			problems = append(problems, fmt.Sprintf("polygon has %d sides, needs at least 3", v.Sides))
		}
	case Slot:
		finite("endpoint", v.Start, v.End)
		positive("width", v.Width)
		if v.Start.Distance(v.End) < geom.Epsilon {
			problems = append(problems, "slot centerline has zero length")
		}
	case Spline:
		finite("control point", v.ControlPoints...)
		if len(v.ControlPoints) == 0 {
			problems = append(problems, "spline has no control points")
		}
		if v.Degree < 1 {
			problems = append(problems, fmt.Sprintf("spline degree is %d, must be at least 1", v.Degree))
		}
	}
	return problems
}

// validateGeometry reports every geometric problem in the sketch.
func validateGeometry(s *Sketch) []Issue {
	var issues []Issue
	for _, e := range s.Entities() {
		for _, msg := range geometryProblems(e) {
			issues = append(issues, Issue{
				EntityID: e.EntityID(),
				Message:  fmt.Sprintf("%s %s", e.Kind(), msg),
			})
		}
	}
	return issues
}

// ---------------------------------------------------------------------------
// Advisory warnings
// ---------------------------------------------------------------------------

// validateDegenerate warns about legal geometry that queries handle with a
// fallback rather than a meaningful answer.
func validateDegenerate(s *Sketch) []Issue {
	var warnings []Issue
	warn := func(e Entity, format string, args ...any) {
		warnings = append(warnings, Issue{
			EntityID: e.EntityID(),
			Message:  fmt.Sprintf(format, args...),
			Severity: Advisory,
		})
	}

	for _, e := range s.Entities() {
		switch v := e.(type) {
		case Line:
			if LineLength(v) < geom.Epsilon {
				warn(e, "zero-length line; projections return its start point")
			}
		case Arc:
			if math.Abs(geom.NormalizeAngle(v.EndAngle-v.StartAngle)) < geom.Epsilon {
				warn(e, "zero-sweep arc; queries treat it as a full circle")
			}
		case Rectangle:
			b := geom.BoxOf(v.Corner1, v.Corner2)
			if b.Width() < geom.Epsilon || b.Height() < geom.Epsilon {
				warn(e, "rectangle has zero area")
			}
		case Spline:
			n := len(v.ControlPoints)
			if n == 1 {
				warn(e, "spline has a single control point and evaluates to it everywhere")
			}
			if n > 1 && v.Degree > n-1 {
				warn(e, "spline degree %d clamped to %d for %d control points", v.Degree, n-1, n)
			}
		}
	}

	return warnings
}
