package intersect

import (
	"math"

	"github.com/chazu/sketchsnap/pkg/geom"
)

// LineLine intersects segments a0-a1 and b0-b1. Parallel and nearly
// parallel segments (|denominator| < geom.Epsilon) never intersect, even
// when they overlap.
func LineLine(a0, a1, b0, b1 geom.Point2D) (geom.Point2D, bool) {
	da := a1.Sub(a0)
	db := b1.Sub(b0)
	denom := da.Cross(db)
	if math.Abs(denom) < geom.Epsilon {
		return geom.Point2D{}, false
	}

	ab := b0.Sub(a0)
	t := ab.Cross(db) / denom
	u := ab.Cross(da) / denom
	if t < 0 || t > 1 || u < 0 || u > 1 {
		return geom.Point2D{}, false
	}
	return a0.Lerp(a1, t), true
}

// CircleLine intersects the circle (center, r) with segment a0-a1 and
// returns the points ordered along the segment. A discriminant within
// geom.Epsilon of zero yields the single tangent point.
func CircleLine(center geom.Point2D, r float64, a0, a1 geom.Point2D) []geom.Point2D {
	d := a1.Sub(a0)
	f := a0.Sub(center)

	// |f + t*d|^2 = r^2  =>  (d.d) t^2 + 2(f.d) t + (f.f - r^2) = 0
	a := d.Dot(d)
	b := 2 * f.Dot(d)
	c := f.Dot(f) - r*r
	if a < geom.Epsilon*geom.Epsilon {
		return nil
	}

	disc := b*b - 4*a*c
	var roots []float64
	switch {
	case disc < -geom.Epsilon:
		return nil
	case math.Abs(disc) <= geom.Epsilon:
		roots = []float64{-b / (2 * a)}
	default:
		q := -0.5 * (b + math.Copysign(math.Sqrt(disc), b))
		t0, t1 := q/a, c/q
		if t0 > t1 {
			t0, t1 = t1, t0
		}
		roots = []float64{t0, t1}
	}

	var pts []geom.Point2D
	for _, t := range roots {
		if t < -geom.Epsilon || t > 1+geom.Epsilon {
			continue
		}
		pts = append(pts, a0.Add(d.Scale(t)))
	}
	return pts
}

// CircleCircle intersects two circles. Concentric circles and circles
// whose center distance lies outside [|r1-r2|, r1+r2] do not intersect;
// touching circles yield one point.
func CircleCircle(c1 geom.Point2D, r1 float64, c2 geom.Point2D, r2 float64) []geom.Point2D {
	delta := c2.Sub(c1)
	d := delta.Length()
	if d < geom.Epsilon || d > r1+r2+geom.Epsilon || d < math.Abs(r1-r2)-geom.Epsilon {
		return nil
	}

	a := (r1*r1 - r2*r2 + d*d) / (2 * d)
	h := math.Sqrt(math.Max(0, r1*r1-a*a))
	mid := c1.Add(delta.Scale(a / d))
	if h <= geom.Epsilon {
		return []geom.Point2D{mid}
	}

	off := geom.Point2D{X: -delta.Y, Y: delta.X}.Scale(h / d)
	return []geom.Point2D{mid.Add(off), mid.Sub(off)}
}
