package sketch

import (
	"math"

	"github.com/chazu/sketchsnap/pkg/geom"
)

// Bounds returns the axis-aligned bounding box of e. Arc bounds are
// exact; rotated ellipse bounds are the conservative extents
// dx = hypot(Major·cosθ, Minor·sinθ), dy = hypot(Major·sinθ, Minor·cosθ);
// spline bounds cover the control points, which contain the curve.
func Bounds(e Entity) geom.BoundingBox {
	switch v := e.(type) {
	case Line:
		return geom.BoxOf(v.Start, v.End)
	case Circle:
		return geom.BoxOf(v.Center).Expand(math.Abs(v.Radius))
	case Arc:
		return arcBounds(v)
	case Rectangle:
		return geom.BoxOf(v.Corner1, v.Corner2)
	case Point:
		return geom.BoxOf(v.Position)
	case Ellipse:
		c, s := math.Cos(v.Rotation), math.Sin(v.Rotation)
		dx := math.Hypot(v.MajorAxis*c, v.MinorAxis*s)
		dy := math.Hypot(v.MajorAxis*s, v.MinorAxis*c)
		return geom.BoundingBox{
			Min: geom.Point2D{X: v.Center.X - dx, Y: v.Center.Y - dy},
			Max: geom.Point2D{X: v.Center.X + dx, Y: v.Center.Y + dy},
		}
	case Polygon:
		return geom.BoxOf(PolygonVertices(v)...)
	case Slot:
		return geom.BoxOf(v.Start, v.End).Expand(math.Abs(v.Radius()))
	case Spline:
		return geom.BoxOf(v.ControlPoints...)
	}
	return geom.EmptyBox()
}

// arcBounds includes both endpoints and every axis extreme the sweep
// passes through.
func arcBounds(a Arc) geom.BoundingBox {
	b := geom.BoxOf(PointOnArc(a, 0), PointOnArc(a, 1))
	for k := 0; k < 4; k++ {
		theta := float64(k) * math.Pi / 2
		if geom.AngleInArc(theta, a.StartAngle, a.EndAngle) {
			b = b.Include(geom.Polar(a.Center, a.Radius, theta))
		}
	}
	return b
}

// BoundsAll returns the union of the bounds of entities.
func BoundsAll(entities []Entity) geom.BoundingBox {
	b := geom.EmptyBox()
	for _, e := range entities {
		b = b.Union(Bounds(e))
	}
	return b
}
