package geom

import "math"

// BoundingBox is an axis-aligned rectangle given by its min and max
// corners.
type BoundingBox struct {
	Min Point2D `json:"min"`
	Max Point2D `json:"max"`
}

// EmptyBox returns a box that any Include or Union will replace.
func EmptyBox() BoundingBox {
	inf := math.Inf(1)
	return BoundingBox{Min: Point2D{X: inf, Y: inf}, Max: Point2D{X: -inf, Y: -inf}}
}

// BoxOf returns the tightest box containing pts.
func BoxOf(pts ...Point2D) BoundingBox {
	b := EmptyBox()
	for _, p := range pts {
		b = b.Include(p)
	}
	return b
}

// IsEmpty reports whether the box contains no points.
func (b BoundingBox) IsEmpty() bool {
	return b.Min.X > b.Max.X || b.Min.Y > b.Max.Y
}

// Include grows the box to contain p.
func (b BoundingBox) Include(p Point2D) BoundingBox {
	return BoundingBox{
		Min: Point2D{X: math.Min(b.Min.X, p.X), Y: math.Min(b.Min.Y, p.Y)},
		Max: Point2D{X: math.Max(b.Max.X, p.X), Y: math.Max(b.Max.Y, p.Y)},
	}
}

// Union returns the smallest box containing both b and o.
func (b BoundingBox) Union(o BoundingBox) BoundingBox {
	if o.IsEmpty() {
		return b
	}
	return b.Include(o.Min).Include(o.Max)
}

// Expand grows the box by d on every side.
func (b BoundingBox) Expand(d float64) BoundingBox {
	return BoundingBox{
		Min: Point2D{X: b.Min.X - d, Y: b.Min.Y - d},
		Max: Point2D{X: b.Max.X + d, Y: b.Max.Y + d},
	}
}

// Contains reports whether p lies inside or on the box.
func (b BoundingBox) Contains(p Point2D) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X && p.Y >= b.Min.Y && p.Y <= b.Max.Y
}

func (b BoundingBox) Width() float64  { return b.Max.X - b.Min.X }
func (b BoundingBox) Height() float64 { return b.Max.Y - b.Min.Y }

func (b BoundingBox) Center() Point2D {
	return Point2D{X: (b.Min.X + b.Max.X) / 2, Y: (b.Min.Y + b.Max.Y) / 2}
}
