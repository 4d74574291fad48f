package sketch

import (
	"math"

	"github.com/chazu/sketchsnap/pkg/geom"
)

// SplineSamples is the number of polyline segments used wherever a spline
// is approximated piecewise linearly.
const SplineSamples = 64

// ClosestPointOnLine projects p onto the segment, clamping the projection
// parameter to [0,1]. A zero-length line returns Start.
func ClosestPointOnLine(l Line, p geom.Point2D) geom.Point2D {
	d := l.End.Sub(l.Start)
	lenSq := d.Dot(d)
	if lenSq == 0 {
		return l.Start
	}
	t := p.Sub(l.Start).Dot(d) / lenSq
	t = math.Max(0, math.Min(1, t))
	return PointOnLine(l, t)
}

// ClosestPointOnCircle projects p radially onto the circle. When p is the
// center the direction is undefined and angle 0 is used.
func ClosestPointOnCircle(c Circle, p geom.Point2D) geom.Point2D {
	dir, ok := p.Sub(c.Center).Normalize()
	if !ok {
		return PointOnCircle(c, 0)
	}
	return c.Center.Add(dir.Scale(c.Radius))
}

// ClosestPointOnArc projects p onto the arc's circle and, when the
// projection falls outside the sweep, returns the nearer endpoint.
func ClosestPointOnArc(a Arc, p geom.Point2D) geom.Point2D {
	q := ClosestPointOnCircle(a.Circle(), p)
	if geom.AngleInArc(q.Sub(a.Center).Angle(), a.StartAngle, a.EndAngle) {
		return q
	}
	start, end := PointOnArc(a, 0), PointOnArc(a, 1)
	if p.Distance(start) <= p.Distance(end) {
		return start
	}
	return end
}

// ClosestPointOnEllipse approximates the nearest point on e to p. The
// query is moved into the ellipse's unrotated frame, scaled onto the unit
// circle, normalized, scaled back and rotated back. This single step is
// exact for circles and drifts for eccentric ellipses; callers depend on
// the approximation as is. A query at the center falls back to angle 0.
func ClosestPointOnEllipse(e Ellipse, p geom.Point2D) geom.Point2D {
	if e.MajorAxis == 0 || e.MinorAxis == 0 {
		return e.Center
	}
	local := p.Sub(e.Center).Rotate(geom.Point2D{}, -e.Rotation)
	unit, ok := geom.Point2D{X: local.X / e.MajorAxis, Y: local.Y / e.MinorAxis}.Normalize()
	if !ok {
		unit = geom.Point2D{X: 1}
	}
	back := geom.Point2D{X: unit.X * e.MajorAxis, Y: unit.Y * e.MinorAxis}
	return back.Rotate(geom.Point2D{}, e.Rotation).Add(e.Center)
}

// ClosestPointOnSlot returns the nearest point on the capsule outline.
// A query on the centerline is pushed out along the centerline normal.
func ClosestPointOnSlot(s Slot, p geom.Point2D) geom.Point2D {
	q := ClosestPointOnLine(s.Centerline(), p)
	dir, ok := p.Sub(q).Normalize()
	if !ok {
		axis, ok := s.End.Sub(s.Start).Normalize()
		if !ok {
			axis = geom.Point2D{X: 1}
		}
		dir = geom.Point2D{X: -axis.Y, Y: axis.X}
	}
	return q.Add(dir.Scale(s.Radius()))
}

// ClosestPointOnPolyline returns the nearest point on the open polyline
// through pts.
func ClosestPointOnPolyline(pts []geom.Point2D, p geom.Point2D) geom.Point2D {
	if len(pts) == 0 {
		return p
	}
	best, bestDist := pts[0], p.Distance(pts[0])
	for i := 0; i+1 < len(pts); i++ {
		q := ClosestPointOnLine(Line{Start: pts[i], End: pts[i+1]}, p)
		if d := p.Distance(q); d < bestDist {
			best, bestDist = q, d
		}
	}
	return best
}

// ClosestPointOnSpline returns the nearest point on the spline's sampled
// polyline.
func ClosestPointOnSpline(s Spline, p geom.Point2D) geom.Point2D {
	if len(s.ControlPoints) == 0 {
		return p
	}
	return ClosestPointOnPolyline(SampleSpline(s, SplineSamples), p)
}

func closestOnEdges(edges []Line, p geom.Point2D) geom.Point2D {
	if len(edges) == 0 {
		return p
	}
	best := ClosestPointOnLine(edges[0], p)
	bestDist := p.Distance(best)
	for _, e := range edges[1:] {
		q := ClosestPointOnLine(e, p)
		if d := p.Distance(q); d < bestDist {
			best, bestDist = q, d
		}
	}
	return best
}

// ClosestPoint returns the point on e nearest to p using the per-kind
// projection above.
func ClosestPoint(e Entity, p geom.Point2D) geom.Point2D {
	switch v := e.(type) {
	case Line:
		return ClosestPointOnLine(v, p)
	case Circle:
		return ClosestPointOnCircle(v, p)
	case Arc:
		return ClosestPointOnArc(v, p)
	case Rectangle:
		return closestOnEdges(RectangleEdges(v), p)
	case Point:
		return v.Position
	case Ellipse:
		return ClosestPointOnEllipse(v, p)
	case Polygon:
		return closestOnEdges(PolygonEdges(v), p)
	case Slot:
		return ClosestPointOnSlot(v, p)
	case Spline:
		return ClosestPointOnSpline(v, p)
	}
	return p
}
