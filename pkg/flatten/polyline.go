package flatten

import (
	"github.com/chazu/sketchsnap/pkg/geom"
	"github.com/chazu/sketchsnap/pkg/sketch"
)

// Polyline is the piecewise-linear outline of one entity. A closed
// polyline does not repeat its first point.
type Polyline struct {
	Points       []geom.Point2D  `json:"points"`
	Closed       bool            `json:"closed"`
	EntityID     sketch.EntityID `json:"entityId"`     // which entity this came from
	Construction bool            `json:"construction"` // reference geometry
}

// PointCount returns the number of points.
func (p *Polyline) PointCount() int {
	return len(p.Points)
}

// SegmentCount returns the number of straight segments, including the
// closing segment of a closed polyline.
func (p *Polyline) SegmentCount() int {
	n := len(p.Points)
	switch {
	case n < 2:
		return 0
	case p.Closed:
		return n
	default:
		return n - 1
	}
}

// IsEmpty returns true if the polyline has no geometry.
func (p *Polyline) IsEmpty() bool {
	return len(p.Points) == 0
}

// Segments returns the straight segments as lines.
func (p *Polyline) Segments() []sketch.Line {
	n := p.SegmentCount()
	segs := make([]sketch.Line, 0, n)
	for i := 0; i < n; i++ {
		segs = append(segs, sketch.Line{
			Start: p.Points[i],
			End:   p.Points[(i+1)%len(p.Points)],
		})
	}
	return segs
}

// Bounds returns the bounding box of the points.
func (p *Polyline) Bounds() geom.BoundingBox {
	return geom.BoxOf(p.Points...)
}
