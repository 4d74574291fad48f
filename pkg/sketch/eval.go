package sketch

import (
	"math"

	"github.com/chazu/sketchsnap/pkg/geom"
)

// PointOnLine returns the point at parameter t, where t=0 is Start and
// t=1 is End. Values outside [0,1] extrapolate.
func PointOnLine(l Line, t float64) geom.Point2D {
	return l.Start.Lerp(l.End, t)
}

// PointOnCircle returns the point at angle theta.
func PointOnCircle(c Circle, theta float64) geom.Point2D {
	return geom.Polar(c.Center, c.Radius, theta)
}

// PointOnArc returns the point at fraction t of the arc's sweep, with t=0
// at StartAngle and t=1 at EndAngle.
func PointOnArc(a Arc, t float64) geom.Point2D {
	return geom.Polar(a.Center, a.Radius, a.StartAngle+t*a.Sweep())
}

// PointOnEllipse returns the point at parametric angle theta: the local
// point (Major·cosθ, Minor·sinθ) rotated by Rotation and translated to
// Center.
func PointOnEllipse(e Ellipse, theta float64) geom.Point2D {
	local := geom.Point2D{X: e.MajorAxis * math.Cos(theta), Y: e.MinorAxis * math.Sin(theta)}
	return local.Rotate(geom.Point2D{}, e.Rotation).Add(e.Center)
}

// SplineDegree returns the degree actually used for evaluation: Degree
// clamped to [1, n-1]. A spline with fewer than two control points has
// degree 0.
func SplineDegree(s Spline) int {
	n := len(s.ControlPoints)
	if n < 2 {
		return 0
	}
	deg := s.Degree
	if deg > n-1 {
		deg = n - 1
	}
	if deg < 1 {
		deg = 1
	}
	return deg
}

// splineSegments returns the Bezier windows of s: deg+1 consecutive
// control points starting at every index that leaves a full window, so
// an open spline has n-deg windows. A closed spline starts a window at
// each of its n control points, wrapping indices past the end.
func splineSegments(s Spline) [][]geom.Point2D {
	pts := s.ControlPoints
	deg := SplineDegree(s)
	if deg == 0 {
		return nil
	}
	n := len(pts)
	if !s.Closed {
		segs := make([][]geom.Point2D, n-deg)
		for i := range segs {
			segs[i] = pts[i : i+deg+1]
		}
		return segs
	}
	segs := make([][]geom.Point2D, n)
	for i := range segs {
		w := make([]geom.Point2D, deg+1)
		for j := range w {
			w[j] = pts[(i+j)%n]
		}
		segs[i] = w
	}
	return segs
}

// SplinePointAt evaluates s at t in [0,1]. The control points form
// sliding windows of min(degree, n-1)+1 consecutive points and t selects
// window floor(t*windows) and a local parameter within it, which is then evaluated with de
// Casteljau's algorithm. This is a segment-local Bezier evaluation, not a
// global B-spline basis. A single control point is returned as is; an
// empty spline evaluates to the origin.
func SplinePointAt(s Spline, t float64) geom.Point2D {
	switch len(s.ControlPoints) {
	case 0:
		return geom.Point2D{}
	case 1:
		return s.ControlPoints[0]
	}
	t = math.Max(0, math.Min(1, t))
	segs := splineSegments(s)
	x := t * float64(len(segs))
	i := int(math.Floor(x))
	if i >= len(segs) {
		i = len(segs) - 1
	}
	return deCasteljau(segs[i], x-float64(i))
}

// deCasteljau evaluates the Bezier curve with control points pts at t.
func deCasteljau(pts []geom.Point2D, t float64) geom.Point2D {
	work := make([]geom.Point2D, len(pts))
	copy(work, pts)
	for n := len(work) - 1; n > 0; n-- {
		for i := 0; i < n; i++ {
			work[i] = work[i].Lerp(work[i+1], t)
		}
	}
	return work[0]
}

// SampleSpline returns segments+1 points evenly spaced in parameter.
func SampleSpline(s Spline, segments int) []geom.Point2D {
	if segments < 1 {
		segments = 1
	}
	pts := make([]geom.Point2D, 0, segments+1)
	for i := 0; i <= segments; i++ {
		pts = append(pts, SplinePointAt(s, float64(i)/float64(segments)))
	}
	return pts
}

// PolygonVertices returns the polygon's vertices, the first at angle
// Rotation and the rest at steps of 2π/Sides counter-clockwise.
func PolygonVertices(p Polygon) []geom.Point2D {
	if p.Sides <= 0 {
		return nil
	}
	step := geom.TwoPi / float64(p.Sides)
	verts := make([]geom.Point2D, p.Sides)
	for i := range verts {
		verts[i] = geom.Polar(p.Center, p.Radius, p.Rotation+float64(i)*step)
	}
	return verts
}

// PolygonEdges returns the polygon's edges, wrapping from the last vertex
// back to the first. Edges carry the polygon's attributes.
func PolygonEdges(p Polygon) []Line {
	return closedEdges(p.Base, PolygonVertices(p))
}

// RectangleCorners returns the corners counter-clockwise from the
// minimum corner.
func RectangleCorners(r Rectangle) []geom.Point2D {
	minX, maxX := math.Min(r.Corner1.X, r.Corner2.X), math.Max(r.Corner1.X, r.Corner2.X)
	minY, maxY := math.Min(r.Corner1.Y, r.Corner2.Y), math.Max(r.Corner1.Y, r.Corner2.Y)
	return []geom.Point2D{
		{X: minX, Y: minY},
		{X: maxX, Y: minY},
		{X: maxX, Y: maxY},
		{X: minX, Y: maxY},
	}
}

// RectangleEdges returns the four edges of r.
func RectangleEdges(r Rectangle) []Line {
	return closedEdges(r.Base, RectangleCorners(r))
}

func closedEdges(b Base, verts []geom.Point2D) []Line {
	if len(verts) < 2 {
		return nil
	}
	edges := make([]Line, len(verts))
	for i, v := range verts {
		edges[i] = Line{Base: b, Start: v, End: verts[(i+1)%len(verts)]}
	}
	return edges
}

// LineLength returns the length of l.
func LineLength(l Line) float64 {
	return l.Start.Distance(l.End)
}
