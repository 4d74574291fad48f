package sketch

import (
	"fmt"

	"github.com/chazu/sketchsnap/pkg/geom"
)

// ---------------------------------------------------------------------------
// Linear entities
// ---------------------------------------------------------------------------

// Line is a straight segment. A zero-length line is degenerate but legal.
type Line struct {
	Base
	Start geom.Point2D `json:"start"`
	End   geom.Point2D `json:"end"`
}

func (Line) entity()    {}
func (Line) Kind() Kind { return KindLine }

// Rectangle is an axis-aligned rectangle spanned by two opposite corners.
type Rectangle struct {
	Base
	Corner1 geom.Point2D `json:"corner1"`
	Corner2 geom.Point2D `json:"corner2"`
}

func (Rectangle) entity()    {}
func (Rectangle) Kind() Kind { return KindRectangle }

// Polygon is a regular polygon described by its circumcircle.
type Polygon struct {
	Base
	Center   geom.Point2D `json:"center"`
	Radius   float64      `json:"radius"` // circumradius
	Sides    int          `json:"sides"`
	Rotation float64      `json:"rotation"` // angle of the first vertex, radians
}

func (Polygon) entity()    {}
func (Polygon) Kind() Kind { return KindPolygon }

// Slot is a capsule: a centerline offset by Width/2 on both sides with
// semicircular end caps.
type Slot struct {
	Base
	Start geom.Point2D `json:"start"`
	End   geom.Point2D `json:"end"`
	Width float64      `json:"width"`
}

func (Slot) entity()    {}
func (Slot) Kind() Kind { return KindSlot }

// Radius returns the capsule radius.
func (s Slot) Radius() float64 { return s.Width / 2 }

// Centerline returns the slot's centerline as a line sharing its
// attributes.
func (s Slot) Centerline() Line {
	return Line{Base: s.Base, Start: s.Start, End: s.End}
}

// ---------------------------------------------------------------------------
// Curved entities
// ---------------------------------------------------------------------------

// Circle is a full circle.
type Circle struct {
	Base
	Center geom.Point2D `json:"center"`
	Radius float64      `json:"radius"`
}

func (Circle) entity()    {}
func (Circle) Kind() Kind { return KindCircle }

// Arc is a circular arc running counter-clockwise from StartAngle to
// EndAngle. Angles are radians and need not be normalized.
type Arc struct {
	Base
	Center     geom.Point2D `json:"center"`
	Radius     float64      `json:"radius"`
	StartAngle float64      `json:"start_angle"`
	EndAngle   float64      `json:"end_angle"`
}

func (Arc) entity()    {}
func (Arc) Kind() Kind { return KindArc }

// Sweep returns the counter-clockwise angular span in (0, 2π].
func (a Arc) Sweep() float64 { return geom.ArcSweep(a.StartAngle, a.EndAngle) }

// Circle returns the full circle the arc lies on.
func (a Arc) Circle() Circle {
	return Circle{Base: a.Base, Center: a.Center, Radius: a.Radius}
}

// Ellipse is an ellipse whose major axis is rotated by Rotation radians.
type Ellipse struct {
	Base
	Center    geom.Point2D `json:"center"`
	MajorAxis float64      `json:"major_axis"` // semi-axis along the local x
	MinorAxis float64      `json:"minor_axis"` // semi-axis along the local y
	Rotation  float64      `json:"rotation"`
}

func (Ellipse) entity()    {}
func (Ellipse) Kind() Kind { return KindEllipse }

// Spline is a curve through an ordered list of control points, evaluated
// piecewise as Bezier segments of at most Degree.
type Spline struct {
	Base
	ControlPoints []geom.Point2D `json:"control_points"`
	Degree        int            `json:"degree"`
	Closed        bool           `json:"closed,omitempty"`
}

func (Spline) entity()    {}
func (Spline) Kind() Kind { return KindSpline }

// ---------------------------------------------------------------------------
// Point
// ---------------------------------------------------------------------------

// Point is a standalone sketch point.
type Point struct {
	Base
	Position geom.Point2D `json:"position"`
}

func (Point) entity()    {}
func (Point) Kind() Kind { return KindPoint }

// ---------------------------------------------------------------------------
// Constructors
// ---------------------------------------------------------------------------

// checked returns e, or an ErrInvalidGeometry-wrapped error describing
// the first geometric problem found.
func checked[E Entity](e E) (E, error) {
	if problems := geometryProblems(e); len(problems) > 0 {
		var zero E
		return zero, fmt.Errorf("%w: %s %q: %s", ErrInvalidGeometry, e.Kind(), e.EntityID(), problems[0])
	}
	return e, nil
}

// NewLine returns a line from start to end.
func NewLine(id EntityID, start, end geom.Point2D) (Line, error) {
	return checked(Line{Base: Base{ID: id}, Start: start, End: end})
}

// NewCircle returns a circle. The radius must be positive.
func NewCircle(id EntityID, center geom.Point2D, radius float64) (Circle, error) {
	return checked(Circle{Base: Base{ID: id}, Center: center, Radius: radius})
}

// NewArc returns a counter-clockwise arc. The radius must be positive.
func NewArc(id EntityID, center geom.Point2D, radius, startAngle, endAngle float64) (Arc, error) {
	return checked(Arc{Base: Base{ID: id}, Center: center, Radius: radius, StartAngle: startAngle, EndAngle: endAngle})
}

// NewRectangle returns the axis-aligned rectangle spanned by c1 and c2.
func NewRectangle(id EntityID, c1, c2 geom.Point2D) (Rectangle, error) {
	return checked(Rectangle{Base: Base{ID: id}, Corner1: c1, Corner2: c2})
}

// NewPoint returns a sketch point.
func NewPoint(id EntityID, p geom.Point2D) (Point, error) {
	return checked(Point{Base: Base{ID: id}, Position: p})
}

// NewEllipse returns an ellipse. Both semi-axes must be positive.
func NewEllipse(id EntityID, center geom.Point2D, major, minor, rotation float64) (Ellipse, error) {
	return checked(Ellipse{Base: Base{ID: id}, Center: center, MajorAxis: major, MinorAxis: minor, Rotation: rotation})
}

// NewPolygon returns a regular polygon with at least three sides.
func NewPolygon(id EntityID, center geom.Point2D, radius float64, sides int, rotation float64) (Polygon, error) {
	return checked(Polygon{Base: Base{ID: id}, Center: center, Radius: radius, Sides: sides, Rotation: rotation})
}

// NewSlot returns a slot. The centerline must have length and the width
// must be positive.
func NewSlot(id EntityID, start, end geom.Point2D, width float64) (Slot, error) {
	return checked(Slot{Base: Base{ID: id}, Start: start, End: end, Width: width})
}

// NewSpline returns a spline over a copy of cps.
func NewSpline(id EntityID, cps []geom.Point2D, degree int, closed bool) (Spline, error) {
	owned := make([]geom.Point2D, len(cps))
	copy(owned, cps)
	return checked(Spline{Base: Base{ID: id}, ControlPoints: owned, Degree: degree, Closed: closed})
}

// WithConstruction returns a copy of e with the construction flag set.
func WithConstruction(e Entity, construction bool) Entity {
	switch v := e.(type) {
	case Line:
		v.Construction = construction
		return v
	case Circle:
		v.Construction = construction
		return v
	case Arc:
		v.Construction = construction
		return v
	case Rectangle:
		v.Construction = construction
		return v
	case Point:
		v.Construction = construction
		return v
	case Ellipse:
		v.Construction = construction
		return v
	case Polygon:
		v.Construction = construction
		return v
	case Slot:
		v.Construction = construction
		return v
	case Spline:
		v.Construction = construction
		return v
	}
	return e
}
