// Package flatten turns sketch entities into polylines for export,
// region building and anything else that wants straight segments.
package flatten

import (
	"fmt"
	"math"

	"github.com/chazu/sketchsnap/pkg/geom"
	"github.com/chazu/sketchsnap/pkg/sketch"
)

// Options controls curve sampling.
type Options struct {
	// CurveSegments is the number of segments used for a full circle or
	// ellipse, a spline, and each half of a slot's end caps combined.
	// Arcs get a share proportional to their sweep, at least one.
	CurveSegments int
	// SkipConstruction leaves construction entities out of Sketch.
	SkipConstruction bool
}

// DefaultOptions samples curves with sketch.SplineSamples segments.
func DefaultOptions() Options {
	return Options{CurveSegments: sketch.SplineSamples}
}

// Sketch flattens every entity of s, one polyline per entity, in order.
// Flattening is read-only and never mutates the sketch.
func Sketch(s *sketch.Sketch, opts Options) ([]*Polyline, error) {
	if s == nil {
		return nil, nil
	}

	var out []*Polyline
	for i, e := range s.Entities() {
		if opts.SkipConstruction && e.IsConstruction() {
			continue
		}
		pl, err := Entity(e, opts)
		if err != nil {
			return nil, fmt.Errorf("flatten: entity %d (%s): %w", i, e.EntityID(), err)
		}
		out = append(out, pl)
	}
	return out, nil
}

// Entity flattens one entity.
func Entity(e sketch.Entity, opts Options) (*Polyline, error) {
	n := opts.CurveSegments
	if n < 3 {
		return nil, fmt.Errorf("curve segments is %d, must be at least 3", n)
	}

	pl := &Polyline{EntityID: e.EntityID(), Construction: e.IsConstruction()}

	switch v := e.(type) {
	case sketch.Line:
		pl.Points = []geom.Point2D{v.Start, v.End}
	case sketch.Point:
		pl.Points = []geom.Point2D{v.Position}
	case sketch.Circle:
		pl.Points = ring(n, func(theta float64) geom.Point2D { return sketch.PointOnCircle(v, theta) })
		pl.Closed = true
	case sketch.Ellipse:
		pl.Points = ring(n, func(theta float64) geom.Point2D { return sketch.PointOnEllipse(v, theta) })
		pl.Closed = true
	case sketch.Arc:
		steps := int(math.Ceil(float64(n) * v.Sweep() / geom.TwoPi))
		if steps < 1 {
			steps = 1
		}
		for i := 0; i <= steps; i++ {
			pl.Points = append(pl.Points, sketch.PointOnArc(v, float64(i)/float64(steps)))
		}
	case sketch.Rectangle:
		pl.Points = sketch.RectangleCorners(v)
		pl.Closed = true
	case sketch.Polygon:
		pl.Points = sketch.PolygonVertices(v)
		pl.Closed = true
	case sketch.Slot:
		pl.Points = slotOutline(v, n)
		pl.Closed = true
	case sketch.Spline:
		if len(v.ControlPoints) > 0 {
			pl.Points = sketch.SampleSpline(v, n)
		}
		// A closed outline joins its last sample back to t=0.
		if v.Closed && len(pl.Points) > 1 {
			pl.Points = pl.Points[:len(pl.Points)-1]
		}
		pl.Closed = v.Closed
	default:
		return nil, fmt.Errorf("unsupported entity type %T", e)
	}

	pl.Points = dedupe(pl.Points, pl.Closed)
	return pl, nil
}

func ring(n int, at func(theta float64) geom.Point2D) []geom.Point2D {
	pts := make([]geom.Point2D, n)
	for i := range pts {
		pts[i] = at(geom.TwoPi * float64(i) / float64(n))
	}
	return pts
}

// slotOutline walks the capsule counter-clockwise: the cap around End
// first, then the cap around Start. A zero-length slot has no direction
// and is outlined as a circle.
func slotOutline(s sketch.Slot, n int) []geom.Point2D {
	r := s.Radius()
	dir := s.End.Sub(s.Start)
	if dir.Length() < geom.Epsilon {
		return ring(n, func(theta float64) geom.Point2D { return geom.Polar(s.Start, r, theta) })
	}

	half := n / 2
	a := dir.Angle()
	var pts []geom.Point2D
	for i := 0; i <= half; i++ {
		pts = append(pts, geom.Polar(s.End, r, a-math.Pi/2+math.Pi*float64(i)/float64(half)))
	}
	for i := 0; i <= half; i++ {
		pts = append(pts, geom.Polar(s.Start, r, a+math.Pi/2+math.Pi*float64(i)/float64(half)))
	}
	return pts
}

// dedupe drops consecutive repeated points and, for closed outlines, a
// last point that repeats the first.
func dedupe(pts []geom.Point2D, closed bool) []geom.Point2D {
	if len(pts) < 2 {
		return pts
	}
	out := pts[:1:1]
	for _, p := range pts[1:] {
		if !p.Equal(out[len(out)-1], geom.Epsilon) {
			out = append(out, p)
		}
	}
	if closed && len(out) > 1 && out[len(out)-1].Equal(out[0], geom.Epsilon) {
		out = out[:len(out)-1]
	}
	return out
}
