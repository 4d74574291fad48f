// Package hittest decides whether a point lies on an entity within a
// tolerance. Trim and extend tools use it to find the entity a click
// targets when nothing is selected.
package hittest

import (
	"fmt"
	"math"

	"github.com/chazu/sketchsnap/pkg/geom"
	"github.com/chazu/sketchsnap/pkg/kernel"
	"github.com/chazu/sketchsnap/pkg/sketch"
)

// Distance returns the distance from p to the entity's boundary, as used
// by HitTestEntity. Arcs measure against the circle only when p's angle
// falls inside the sweep and are infinitely far otherwise.
func Distance(e sketch.Entity, p geom.Point2D) float64 {
	switch v := e.(type) {
	case sketch.Line:
		d, _ := geom.SegmentDistance(p, v.Start, v.End)
		return d
	case sketch.Circle:
		return math.Abs(p.Distance(v.Center) - v.Radius)
	case sketch.Arc:
		if !geom.AngleInArc(p.Sub(v.Center).Angle(), v.StartAngle, v.EndAngle) {
			return math.Inf(1)
		}
		return math.Abs(p.Distance(v.Center) - v.Radius)
	case sketch.Rectangle:
		return edgesDistance(sketch.RectangleEdges(v), p)
	case sketch.Polygon:
		return edgesDistance(sketch.PolygonEdges(v), p)
	case sketch.Ellipse:
		return p.Distance(sketch.ClosestPointOnEllipse(v, p))
	case sketch.Slot:
		return slotDistance(v, p)
	case sketch.Spline:
		if len(v.ControlPoints) == 0 {
			return math.Inf(1)
		}
		return polylineDistance(sketch.SampleSpline(v, sketch.SplineSamples), p)
	case sketch.Point:
		return p.Distance(v.Position)
	}
	return math.Inf(1)
}

// HitTestEntity reports whether p is strictly within tol of e.
func HitTestEntity(e sketch.Entity, p geom.Point2D, tol float64) bool {
	return Distance(e, p) < tol
}

// Pick returns the entity whose boundary is closest to p among those hit
// within tol. Earlier entities win ties.
func Pick(entities []sketch.Entity, p geom.Point2D, tol float64) (sketch.Entity, bool) {
	var best sketch.Entity
	bestDist := math.Inf(1)
	for _, e := range entities {
		d := Distance(e, p)
		if d < tol && d < bestDist {
			best, bestDist = e, d
		}
	}
	return best, best != nil
}

// HitTestRegion reports whether p lies inside the region bounded by the
// closed entity e. Open entities return an error wrapping
// kernel.ErrNotClosed.
func HitTestRegion(k kernel.Kernel, e sketch.Entity, p geom.Point2D) (bool, error) {
	r, err := k.Region(e)
	if err != nil {
		return false, fmt.Errorf("hit test region %s: %w", e.EntityID(), err)
	}
	return r.Contains(p), nil
}

// slotDistance measures against the capsule boundary: the offset sides
// when the projection falls within the centerline, otherwise the cap at
// the end the projection clamped to.
func slotDistance(s sketch.Slot, p geom.Point2D) float64 {
	r := s.Radius()
	d, t := geom.SegmentDistance(p, s.Start, s.End)
	if t > 0 && t < 1 {
		return math.Abs(d - r)
	}
	end := s.End
	if t <= 0 {
		end = s.Start
	}
	return math.Abs(p.Distance(end) - r)
}

func edgesDistance(edges []sketch.Line, p geom.Point2D) float64 {
	best := math.Inf(1)
	for _, l := range edges {
		d, _ := geom.SegmentDistance(p, l.Start, l.End)
		best = math.Min(best, d)
	}
	return best
}

func polylineDistance(pts []geom.Point2D, p geom.Point2D) float64 {
	if len(pts) == 1 {
		return p.Distance(pts[0])
	}
	best := math.Inf(1)
	for i := 0; i+1 < len(pts); i++ {
		d, _ := geom.SegmentDistance(p, pts[i], pts[i+1])
		best = math.Min(best, d)
	}
	return best
}
