package geom

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

const tol = 1e-9

func TestNormalizeAngle(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"zero", 0, 0},
		{"pi stays pi", math.Pi, math.Pi},
		{"minus pi maps to pi", -math.Pi, math.Pi},
		{"three halves pi", 3 * math.Pi / 2, -math.Pi / 2},
		{"many turns", 5*TwoPi + 0.25, 0.25},
		{"negative turns", -3*TwoPi - 0.25, -0.25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeAngle(tt.in)
			if !scalar.EqualWithinAbs(got, tt.want, tol) {
				t.Errorf("NormalizeAngle(%v) = %v, want %v", tt.in, got, tt.want)
			}
			if got <= -math.Pi || got > math.Pi {
				t.Errorf("NormalizeAngle(%v) = %v, outside (-π, π]", tt.in, got)
			}
		})
	}
}

func TestArcSweep(t *testing.T) {
	if got := ArcSweep(0, math.Pi/2); !scalar.EqualWithinAbs(got, math.Pi/2, tol) {
		t.Errorf("quarter sweep = %v", got)
	}
	if got := ArcSweep(math.Pi/2, 0); !scalar.EqualWithinAbs(got, 3*math.Pi/2, tol) {
		t.Errorf("reversed sweep = %v, want 3π/2", got)
	}
	if got := ArcSweep(1, 1); !scalar.EqualWithinAbs(got, TwoPi, tol) {
		t.Errorf("coincident angles sweep = %v, want 2π", got)
	}
}

func TestAngleInArc(t *testing.T) {
	tests := []struct {
		name              string
		angle, start, end float64
		want              bool
	}{
		{"inside simple", math.Pi / 4, 0, math.Pi / 2, true},
		{"outside simple", math.Pi, 0, math.Pi / 2, false},
		{"wrap inside high", 3.0, 2.5, -2.5, true},
		{"wrap inside low", -3.0, 2.5, -2.5, true},
		{"wrap outside", 0, 2.5, -2.5, false},
		{"unnormalized start", math.Pi / 4, TwoPi, TwoPi + math.Pi/2, true},
		{"full circle", 1.234, 0.5, 0.5, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AngleInArc(tt.angle, tt.start, tt.end); got != tt.want {
				t.Errorf("AngleInArc(%v, %v, %v) = %v, want %v", tt.angle, tt.start, tt.end, got, tt.want)
			}
		})
	}
}

func TestPointOps(t *testing.T) {
	p := Pt(3, 4)
	if p.Length() != 5 {
		t.Errorf("Length = %v, want 5", p.Length())
	}
	if got := p.Add(Pt(1, 1)); got != Pt(4, 5) {
		t.Errorf("Add = %v", got)
	}
	if got := p.Sub(Pt(1, 1)); got != Pt(2, 3) {
		t.Errorf("Sub = %v", got)
	}
	if got := Pt(1, 0).Cross(Pt(0, 1)); got != 1 {
		t.Errorf("Cross = %v, want 1", got)
	}
	r := Pt(1, 0).Rotate(Pt(0, 0), math.Pi/2)
	if !r.Equal(Pt(0, 1), tol) {
		t.Errorf("Rotate = %v, want (0, 1)", r)
	}
	if _, ok := (Point2D{}).Normalize(); ok {
		t.Error("Normalize of zero vector should report false")
	}
	if got := Centroid([]Point2D{Pt(0, 0), Pt(2, 0), Pt(2, 2), Pt(0, 2)}); got != Pt(1, 1) {
		t.Errorf("Centroid = %v", got)
	}
}

func TestSegmentDistance(t *testing.T) {
	d, u := SegmentDistance(Pt(5, 3), Pt(0, 0), Pt(10, 0))
	if d != 3 || u != 0.5 {
		t.Errorf("SegmentDistance = %v, %v; want 3, 0.5", d, u)
	}
	d, u = SegmentDistance(Pt(-3, 4), Pt(0, 0), Pt(10, 0))
	if d != 5 || u != 0 {
		t.Errorf("beyond start: %v, %v; want 5, 0", d, u)
	}
	d, _ = SegmentDistance(Pt(3, 4), Pt(0, 0), Pt(0, 0))
	if d != 5 {
		t.Errorf("zero-length segment distance = %v, want 5", d)
	}
}

func TestBoundingBox(t *testing.T) {
	b := BoxOf(Pt(1, 5), Pt(-2, 3), Pt(4, -1))
	if b.Min != Pt(-2, -1) || b.Max != Pt(4, 5) {
		t.Fatalf("BoxOf = %+v", b)
	}
	if !b.Contains(Pt(0, 0)) || b.Contains(Pt(10, 0)) {
		t.Error("Contains mismatch")
	}
	if !EmptyBox().IsEmpty() {
		t.Error("EmptyBox should be empty")
	}
	u := EmptyBox().Union(b)
	if u != b {
		t.Errorf("Union with empty = %+v, want %+v", u, b)
	}
	e := b.Expand(1)
	if e.Width() != b.Width()+2 || e.Height() != b.Height()+2 {
		t.Errorf("Expand = %+v", e)
	}
}
