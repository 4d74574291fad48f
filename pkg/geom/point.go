package geom

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Epsilon is the linear-algebra degeneracy threshold. Determinants,
// cross products and discriminants whose magnitude falls below it are
// treated as zero.
const Epsilon = 1e-10

// Point2D is a point or displacement in sketch space.
type Point2D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Pt is shorthand for Point2D{X: x, Y: y}.
func Pt(x, y float64) Point2D {
	return Point2D{X: x, Y: y}
}

func fromVec(v r2.Vec) Point2D { return Point2D{X: v.X, Y: v.Y} }

// Vec returns p as a gonum r2 vector.
func (p Point2D) Vec() r2.Vec { return r2.Vec{X: p.X, Y: p.Y} }

func (p Point2D) Add(q Point2D) Point2D      { return fromVec(r2.Add(p.Vec(), q.Vec())) }
func (p Point2D) Sub(q Point2D) Point2D      { return fromVec(r2.Sub(p.Vec(), q.Vec())) }
func (p Point2D) Scale(f float64) Point2D    { return fromVec(r2.Scale(f, p.Vec())) }
func (p Point2D) Dot(q Point2D) float64      { return r2.Dot(p.Vec(), q.Vec()) }
func (p Point2D) Cross(q Point2D) float64    { return r2.Cross(p.Vec(), q.Vec()) }
func (p Point2D) Length() float64            { return r2.Norm(p.Vec()) }
func (p Point2D) Distance(q Point2D) float64 { return r2.Norm(r2.Sub(p.Vec(), q.Vec())) }

// Lerp returns the point at parameter t on the segment p→q.
func (p Point2D) Lerp(q Point2D, t float64) Point2D {
	return Point2D{X: p.X + (q.X-p.X)*t, Y: p.Y + (q.Y-p.Y)*t}
}

// Normalize returns the unit vector in the direction of p and false when
// p has no direction.
func (p Point2D) Normalize() (Point2D, bool) {
	if p.Length() < Epsilon {
		return Point2D{}, false
	}
	return fromVec(r2.Unit(p.Vec())), true
}

// Rotate rotates p by angle radians counter-clockwise about pivot.
func (p Point2D) Rotate(pivot Point2D, angle float64) Point2D {
	if angle == 0 {
		return p
	}
	return fromVec(r2.Rotate(p.Vec(), angle, pivot.Vec()))
}

// Angle returns the direction of p as seen from the origin.
func (p Point2D) Angle() float64 {
	return math.Atan2(p.Y, p.X)
}

// IsFinite reports whether both coordinates are finite numbers.
func (p Point2D) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) &&
		!math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// Equal reports whether p and q coincide within tol.
func (p Point2D) Equal(q Point2D, tol float64) bool {
	return math.Abs(p.X-q.X) <= tol && math.Abs(p.Y-q.Y) <= tol
}

func (p Point2D) String() string {
	return fmt.Sprintf("(%.4g, %.4g)", p.X, p.Y)
}

// Polar returns the point at distance r and angle theta from center.
func Polar(center Point2D, r, theta float64) Point2D {
	return Point2D{X: center.X + r*math.Cos(theta), Y: center.Y + r*math.Sin(theta)}
}

// Centroid returns the arithmetic mean of pts. An empty slice yields the
// origin.
func Centroid(pts []Point2D) Point2D {
	if len(pts) == 0 {
		return Point2D{}
	}
	var sum Point2D
	for _, p := range pts {
		sum = sum.Add(p)
	}
	return sum.Scale(1 / float64(len(pts)))
}

// SegmentDistance returns the distance from p to the segment a→b along
// with the projection parameter clamped to [0,1].
func SegmentDistance(p, a, b Point2D) (float64, float64) {
	d := b.Sub(a)
	lenSq := d.Dot(d)
	if lenSq == 0 {
		return p.Distance(a), 0
	}
	t := p.Sub(a).Dot(d) / lenSq
	t = math.Max(0, math.Min(1, t))
	return p.Distance(a.Lerp(b, t)), t
}
