package sketch

import "github.com/chazu/sketchsnap/pkg/geom"

// Endpoints returns the entity's endpoints: segment ends, arc ends,
// rectangle corners, polygon vertices, slot centerline ends, the first
// and last control points of an open spline, and a point's position.
// Circles, ellipses and closed splines have none.
func Endpoints(e Entity) []geom.Point2D {
	switch v := e.(type) {
	case Line:
		return []geom.Point2D{v.Start, v.End}
	case Circle:
		return nil
	case Arc:
		return []geom.Point2D{PointOnArc(v, 0), PointOnArc(v, 1)}
	case Rectangle:
		return RectangleCorners(v)
	case Point:
		return []geom.Point2D{v.Position}
	case Ellipse:
		return nil
	case Polygon:
		return PolygonVertices(v)
	case Slot:
		return []geom.Point2D{v.Start, v.End}
	case Spline:
		n := len(v.ControlPoints)
		if n == 0 || v.Closed {
			return nil
		}
		if n == 1 {
			return []geom.Point2D{v.ControlPoints[0]}
		}
		return []geom.Point2D{v.ControlPoints[0], v.ControlPoints[n-1]}
	}
	return nil
}

// Midpoints returns the midpoints of the entity's straight or circular
// spans: the segment midpoint, the arc's mid-sweep point, the slot
// centerline midpoint and every rectangle or polygon edge midpoint.
func Midpoints(e Entity) []geom.Point2D {
	switch v := e.(type) {
	case Line:
		return []geom.Point2D{PointOnLine(v, 0.5)}
	case Circle:
		return nil
	case Arc:
		return []geom.Point2D{PointOnArc(v, 0.5)}
	case Rectangle:
		return edgeMidpoints(RectangleEdges(v))
	case Point:
		return nil
	case Ellipse:
		return nil
	case Polygon:
		return edgeMidpoints(PolygonEdges(v))
	case Slot:
		return []geom.Point2D{v.Start.Lerp(v.End, 0.5)}
	case Spline:
		return nil
	}
	return nil
}

func edgeMidpoints(edges []Line) []geom.Point2D {
	mids := make([]geom.Point2D, len(edges))
	for i, l := range edges {
		mids[i] = PointOnLine(l, 0.5)
	}
	return mids
}

// Center returns the entity's center: the center of circles, arcs,
// ellipses and polygons, the centroid of rectangles and slots, and the
// control point centroid of splines. Lines and points have none.
func Center(e Entity) (geom.Point2D, bool) {
	switch v := e.(type) {
	case Line:
		return geom.Point2D{}, false
	case Circle:
		return v.Center, true
	case Arc:
		return v.Center, true
	case Rectangle:
		return geom.BoxOf(v.Corner1, v.Corner2).Center(), true
	case Point:
		return geom.Point2D{}, false
	case Ellipse:
		return v.Center, true
	case Polygon:
		return v.Center, true
	case Slot:
		return v.Start.Lerp(v.End, 0.5), true
	case Spline:
		if len(v.ControlPoints) == 0 {
			return geom.Point2D{}, false
		}
		return geom.Centroid(v.ControlPoints), true
	}
	return geom.Point2D{}, false
}
