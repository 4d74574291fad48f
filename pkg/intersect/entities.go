package intersect

import (
	"github.com/chazu/sketchsnap/pkg/geom"
	"github.com/chazu/sketchsnap/pkg/sketch"
)

// Hit is an intersection point between two entities of a sketch.
type Hit struct {
	Point geom.Point2D
	A, B  sketch.EntityID
}

type circle struct {
	center geom.Point2D
	radius float64
}

// segments returns the straight spans an entity contributes.
func segments(e sketch.Entity) []sketch.Line {
	switch v := e.(type) {
	case sketch.Line:
		return []sketch.Line{v}
	case sketch.Slot:
		return []sketch.Line{v.Centerline()}
	case sketch.Rectangle:
		return sketch.RectangleEdges(v)
	case sketch.Polygon:
		return sketch.PolygonEdges(v)
	}
	return nil
}

// circles returns the circular spans an entity contributes. Arcs are
// promoted to their full circle.
func circles(e sketch.Entity) []circle {
	switch v := e.(type) {
	case sketch.Circle:
		return []circle{{v.Center, v.Radius}}
	case sketch.Arc:
		return []circle{{v.Center, v.Radius}}
	}
	return nil
}

// Entities returns the intersection points between a and b. Kinds with no
// line or circle span (points, ellipses, splines) contribute nothing.
// Points shared by adjacent spans, such as a rectangle corner, are
// reported once.
func Entities(a, b sketch.Entity) []geom.Point2D {
	var pts []geom.Point2D
	add := func(p geom.Point2D) {
		for _, q := range pts {
			if q.Equal(p, 1e-9) {
				return
			}
		}
		pts = append(pts, p)
	}

	segsA, segsB := segments(a), segments(b)
	circsA, circsB := circles(a), circles(b)

	for _, la := range segsA {
		for _, lb := range segsB {
			if p, ok := LineLine(la.Start, la.End, lb.Start, lb.End); ok {
				add(p)
			}
		}
		for _, cb := range circsB {
			for _, p := range CircleLine(cb.center, cb.radius, la.Start, la.End) {
				add(p)
			}
		}
	}
	for _, ca := range circsA {
		for _, lb := range segsB {
			for _, p := range CircleLine(ca.center, ca.radius, lb.Start, lb.End) {
				add(p)
			}
		}
		for _, cb := range circsB {
			for _, p := range CircleCircle(ca.center, ca.radius, cb.center, cb.radius) {
				add(p)
			}
		}
	}
	return pts
}

// All intersects every unordered pair of entities.
func All(entities []sketch.Entity) []Hit {
	var hits []Hit
	for i := 0; i < len(entities); i++ {
		for j := i + 1; j < len(entities); j++ {
			a, b := entities[i], entities[j]
			for _, p := range Entities(a, b) {
				hits = append(hits, Hit{Point: p, A: a.EntityID(), B: b.EntityID()})
			}
		}
	}
	return hits
}
