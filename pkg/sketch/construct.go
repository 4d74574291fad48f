package sketch

import (
	"fmt"
	"math"

	"github.com/chazu/sketchsnap/pkg/geom"
)

// ArcFromThreePoints returns the arc that starts at p1, passes through p2
// and ends at p3. The arc always runs counter-clockwise, so when p1→p2→p3
// turns clockwise the start and end angles are taken from p3 and p1.
// Near-collinear points return ErrCollinear.
func ArcFromThreePoints(id EntityID, p1, p2, p3 geom.Point2D) (Arc, error) {
	cross := p2.Sub(p1).Cross(p3.Sub(p1))
	if math.Abs(cross) < geom.Epsilon {
		return Arc{}, ErrCollinear
	}

	d := 2 * (p1.X*(p2.Y-p3.Y) + p2.X*(p3.Y-p1.Y) + p3.X*(p1.Y-p2.Y))
	s1 := p1.X*p1.X + p1.Y*p1.Y
	s2 := p2.X*p2.X + p2.Y*p2.Y
	s3 := p3.X*p3.X + p3.Y*p3.Y
	center := geom.Point2D{
		X: (s1*(p2.Y-p3.Y) + s2*(p3.Y-p1.Y) + s3*(p1.Y-p2.Y)) / d,
		Y: (s1*(p3.X-p2.X) + s2*(p1.X-p3.X) + s3*(p2.X-p1.X)) / d,
	}
	radius := center.Distance(p1)

	start := p1.Sub(center).Angle()
	end := p3.Sub(center).Angle()
	if cross < 0 {
		start, end = end, start
	}
	return NewArc(id, center, radius, start, end)
}

// EllipseFromAxes returns the ellipse centered at center whose major
// semi-axis reaches majorEnd and whose minor semi-axis is the
// perpendicular distance from minorPoint to the major axis line.
func EllipseFromAxes(id EntityID, center, majorEnd, minorPoint geom.Point2D) (Ellipse, error) {
	axis := majorEnd.Sub(center)
	major := axis.Length()
	if major < geom.Epsilon {
		return Ellipse{}, fmt.Errorf("%w: ellipse major axis has zero length", ErrInvalidGeometry)
	}
	minor := math.Abs(axis.Cross(minorPoint.Sub(center))) / major
	return NewEllipse(id, center, major, minor, axis.Angle())
}
