// Package sdfx implements the kernel.Kernel interface using the
// github.com/deadsy/sdfx SDF-based CAD library.
package sdfx

import (
	"fmt"

	"github.com/deadsy/sdfx/sdf"
	v2 "github.com/deadsy/sdfx/vec/v2"

	"github.com/chazu/sketchsnap/pkg/flatten"
	"github.com/chazu/sketchsnap/pkg/geom"
	"github.com/chazu/sketchsnap/pkg/kernel"
	"github.com/chazu/sketchsnap/pkg/sketch"
)

// Compile-time interface check.
var _ kernel.Kernel = (*SdfxKernel)(nil)

// sdfxRegion wraps an sdf.SDF2 to implement kernel.Region.
type sdfxRegion struct {
	s sdf.SDF2
}

func (r *sdfxRegion) Contains(p geom.Point2D) bool {
	return r.s.Evaluate(vec(p)) <= geom.Epsilon
}

func (r *sdfxRegion) Distance(p geom.Point2D) float64 {
	return r.s.Evaluate(vec(p))
}

// Bounds returns the axis-aligned bounding box.
func (r *sdfxRegion) Bounds() geom.BoundingBox {
	bb := r.s.BoundingBox()
	return geom.BoundingBox{
		Min: geom.Pt(bb.Min.X, bb.Min.Y),
		Max: geom.Pt(bb.Max.X, bb.Max.Y),
	}
}

// SdfxKernel implements kernel.Kernel using sdfx.
type SdfxKernel struct {
	opts flatten.Options
}

// New returns a new SdfxKernel. Ellipses, slots and closed splines are
// approximated by polygons sampled with flatten.DefaultOptions.
func New() *SdfxKernel {
	return &SdfxKernel{opts: flatten.DefaultOptions()}
}

func vec(p geom.Point2D) v2.Vec {
	return v2.Vec{X: p.X, Y: p.Y}
}

// unwrap extracts the underlying sdf.SDF2 from a kernel.Region.
func unwrap(r kernel.Region) sdf.SDF2 {
	return r.(*sdfxRegion).s
}

// wrap creates a kernel.Region from an sdf.SDF2.
func wrap(s sdf.SDF2) kernel.Region {
	return &sdfxRegion{s: s}
}

// Region builds the SDF of a closed entity. Circles and rectangles use
// exact primitives, polygons their vertices, and curved outlines a
// sampled polygon.
func (k *SdfxKernel) Region(e sketch.Entity) (kernel.Region, error) {
	switch v := e.(type) {
	case sketch.Circle:
		s, err := sdf.Circle2D(v.Radius)
		if err != nil {
			return nil, fmt.Errorf("sdfx.Circle2D: %w", err)
		}
		return wrap(sdf.Transform2D(s, sdf.Translate2d(vec(v.Center)))), nil

	case sketch.Rectangle:
		b := geom.BoxOf(v.Corner1, v.Corner2)
		if b.Width() < geom.Epsilon || b.Height() < geom.Epsilon {
			return nil, fmt.Errorf("rectangle %s: %w", v.ID, sketch.ErrInvalidGeometry)
		}
		s := sdf.Box2D(v2.Vec{X: b.Width(), Y: b.Height()}, 0)
		return wrap(sdf.Transform2D(s, sdf.Translate2d(vec(b.Center())))), nil

	case sketch.Polygon:
		if v.Sides < 3 || v.Radius <= 0 {
			return nil, fmt.Errorf("polygon %s: %w", v.ID, sketch.ErrInvalidGeometry)
		}
		return k.polygon(sketch.PolygonVertices(v))

	case sketch.Slot:
		// A box rounded by half its height is a capsule.
		length := sketch.LineLength(v.Centerline())
		if v.Width <= 0 || length < geom.Epsilon {
			return nil, fmt.Errorf("slot %s: %w", v.ID, sketch.ErrInvalidGeometry)
		}
		s := sdf.Box2D(v2.Vec{X: length + v.Width, Y: v.Width}, v.Radius())
		angle := v.End.Sub(v.Start).Angle()
		m := sdf.Translate2d(vec(v.Start.Lerp(v.End, 0.5))).Mul(sdf.Rotate2d(angle))
		return wrap(sdf.Transform2D(s, m)), nil

	case sketch.Ellipse:
		if v.MajorAxis <= 0 || v.MinorAxis <= 0 {
			return nil, fmt.Errorf("ellipse %s: %w", v.ID, sketch.ErrInvalidGeometry)
		}
		return k.outline(e)

	case sketch.Spline:
		if !v.Closed {
			return nil, fmt.Errorf("spline %s: %w", v.ID, kernel.ErrNotClosed)
		}
		return k.outline(e)

	default:
		return nil, fmt.Errorf("%s %s: %w", e.Kind(), e.EntityID(), kernel.ErrNotClosed)
	}
}

// outline builds a polygon region from the entity's flattened outline.
func (k *SdfxKernel) outline(e sketch.Entity) (kernel.Region, error) {
	pl, err := flatten.Entity(e, k.opts)
	if err != nil {
		return nil, err
	}
	return k.polygon(pl.Points)
}

func (k *SdfxKernel) polygon(pts []geom.Point2D) (kernel.Region, error) {
	if len(pts) < 3 {
		return nil, fmt.Errorf("outline has %d points: %w", len(pts), sketch.ErrInvalidGeometry)
	}
	verts := make([]v2.Vec, len(pts))
	for i, p := range pts {
		verts[i] = vec(p)
	}
	s, err := sdf.Polygon2D(verts)
	if err != nil {
		return nil, fmt.Errorf("sdfx.Polygon2D: %w", err)
	}
	return wrap(s), nil
}

// Union returns the union of two regions.
func (k *SdfxKernel) Union(a, b kernel.Region) kernel.Region {
	return wrap(sdf.Union2D(unwrap(a), unwrap(b)))
}

// Difference returns the difference a - b.
func (k *SdfxKernel) Difference(a, b kernel.Region) kernel.Region {
	return wrap(sdf.Difference2D(unwrap(a), unwrap(b)))
}
