package intersect

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/chazu/sketchsnap/pkg/geom"
	"github.com/chazu/sketchsnap/pkg/sketch"
)

const tol = 1e-9

func near(p, q geom.Point2D) bool {
	return scalar.EqualWithinAbs(p.X, q.X, tol) && scalar.EqualWithinAbs(p.Y, q.Y, tol)
}

func TestLineLineCrossing(t *testing.T) {
	p, ok := LineLine(geom.Pt(0, 0), geom.Pt(10, 10), geom.Pt(0, 10), geom.Pt(10, 0))
	if !ok {
		t.Fatal("expected an intersection")
	}
	if !near(p, geom.Pt(5, 5)) {
		t.Errorf("got %v, want (5, 5)", p)
	}
}

func TestLineLineCases(t *testing.T) {
	tests := []struct {
		name           string
		a0, a1, b0, b1 geom.Point2D
		want           geom.Point2D
		ok             bool
	}{
		{"cross", geom.Pt(0, 0), geom.Pt(10, 10), geom.Pt(0, 10), geom.Pt(10, 0), geom.Pt(5, 5), true},
		{"touching at endpoint", geom.Pt(0, 0), geom.Pt(10, 0), geom.Pt(10, -5), geom.Pt(10, 5), geom.Pt(10, 0), true},
		{"parallel", geom.Pt(0, 0), geom.Pt(10, 0), geom.Pt(0, 1), geom.Pt(10, 1), geom.Point2D{}, false},
		{"collinear overlap", geom.Pt(0, 0), geom.Pt(10, 0), geom.Pt(5, 0), geom.Pt(15, 0), geom.Point2D{}, false},
		{"beyond segment", geom.Pt(0, 0), geom.Pt(1, 1), geom.Pt(0, 10), geom.Pt(10, 0), geom.Point2D{}, false},
		{"zero length", geom.Pt(3, 3), geom.Pt(3, 3), geom.Pt(0, 10), geom.Pt(10, 0), geom.Point2D{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, ok := LineLine(tt.a0, tt.a1, tt.b0, tt.b1)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if ok && !near(p, tt.want) {
				t.Errorf("got %v, want %v", p, tt.want)
			}
		})
	}
}

func TestLineLineSymmetric(t *testing.T) {
	segs := [][2]geom.Point2D{
		{geom.Pt(0, 0), geom.Pt(10, 10)},
		{geom.Pt(0, 10), geom.Pt(10, 0)},
		{geom.Pt(-3, 2), geom.Pt(7, 4.5)},
		{geom.Pt(2, -8), geom.Pt(3, 9)},
		{geom.Pt(0, 5), geom.Pt(10, 5)},
	}
	for i, a := range segs {
		for j, b := range segs {
			if i == j {
				continue
			}
			p, ok := LineLine(a[0], a[1], b[0], b[1])
			q, ok2 := LineLine(b[0], b[1], a[0], a[1])
			if ok != ok2 {
				t.Errorf("segments %d,%d: ok %v vs %v", i, j, ok, ok2)
				continue
			}
			if ok && !near(p, q) {
				t.Errorf("segments %d,%d: %v vs %v", i, j, p, q)
			}
		}
	}
}

func TestCircleLine(t *testing.T) {
	origin := geom.Pt(0, 0)
	tests := []struct {
		name   string
		a0, a1 geom.Point2D
		want   []geom.Point2D
	}{
		{"secant", geom.Pt(-10, 0), geom.Pt(10, 0), []geom.Point2D{geom.Pt(-5, 0), geom.Pt(5, 0)}},
		{"reversed secant", geom.Pt(10, 0), geom.Pt(-10, 0), []geom.Point2D{geom.Pt(5, 0), geom.Pt(-5, 0)}},
		{"tangent", geom.Pt(-10, 5), geom.Pt(10, 5), []geom.Point2D{geom.Pt(0, 5)}},
		{"miss", geom.Pt(-10, 6), geom.Pt(10, 6), nil},
		{"starts inside", geom.Pt(0, 0), geom.Pt(10, 0), []geom.Point2D{geom.Pt(5, 0)}},
		{"short of circle", geom.Pt(-3, 0), geom.Pt(3, 0), nil},
		{"zero length", geom.Pt(5, 0), geom.Pt(5, 0), nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CircleLine(origin, 5, tt.a0, tt.a1)
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range got {
				if !near(got[i], tt.want[i]) {
					t.Errorf("point %d = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestCircleLineFarFromOrigin(t *testing.T) {
	// Large offsets exercise the cancellation-free root formula.
	c := geom.Pt(1e6, 1e6)
	got := CircleLine(c, 1, geom.Pt(1e6-2, 1e6), geom.Pt(1e6+2, 1e6))
	if len(got) != 2 {
		t.Fatalf("got %v", got)
	}
	for _, p := range got {
		if !scalar.EqualWithinAbs(p.Distance(c), 1, 1e-6) {
			t.Errorf("%v is %g from center", p, p.Distance(c))
		}
	}
}

func TestCircleCircle(t *testing.T) {
	got := CircleCircle(geom.Pt(0, 0), 5, geom.Pt(8, 0), 5)
	if len(got) != 2 {
		t.Fatalf("got %v, want two points", got)
	}
	if !near(got[0], geom.Pt(4, 3)) || !near(got[1], geom.Pt(4, -3)) {
		t.Errorf("got %v, want (4, ±3)", got)
	}
}

func TestCircleCircleDegenerate(t *testing.T) {
	tests := []struct {
		name   string
		c2     geom.Point2D
		r2     float64
		points int
	}{
		{"concentric", geom.Pt(0, 0), 3, 0},
		{"too far", geom.Pt(20, 0), 5, 0},
		{"contained", geom.Pt(1, 0), 1, 0},
		{"external tangent", geom.Pt(10, 0), 5, 1},
		{"internal tangent", geom.Pt(2, 0), 3, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CircleCircle(geom.Pt(0, 0), 5, tt.c2, tt.r2)
			if len(got) != tt.points {
				t.Fatalf("got %v, want %d points", got, tt.points)
			}
			if tt.points == 1 && !near(got[0], geom.Pt(5, 0)) {
				t.Errorf("tangent point %v, want (5, 0)", got[0])
			}
		})
	}
}

func TestEntities(t *testing.T) {
	line := sketch.Line{Base: sketch.Base{ID: "l"}, Start: geom.Pt(-10, 0), End: geom.Pt(10, 0)}
	quarter := sketch.Arc{Base: sketch.Base{ID: "a"}, Radius: 5, StartAngle: 0, EndAngle: math.Pi / 2}
	rect := sketch.Rectangle{Base: sketch.Base{ID: "r"}, Corner1: geom.Pt(0, 0), Corner2: geom.Pt(10, 10)}
	diag := sketch.Line{Base: sketch.Base{ID: "d"}, Start: geom.Pt(-5, -5), End: geom.Pt(15, 15)}
	slot := sketch.Slot{Base: sketch.Base{ID: "s"}, Start: geom.Pt(0, -5), End: geom.Pt(0, 5), Width: 2}
	pt := sketch.Point{Base: sketch.Base{ID: "p"}, Position: geom.Pt(0, 0)}

	tests := []struct {
		name string
		a, b sketch.Entity
		want int
	}{
		// The arc only spans the first quadrant; (-5,0) is still reported.
		{"arc promoted to circle", line, quarter, 2},
		{"rectangle corners once", rect, diag, 2},
		{"slot centerline", line, slot, 1},
		{"point contributes nothing", line, pt, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Entities(tt.a, tt.b); len(got) != tt.want {
				t.Errorf("got %v, want %d points", got, tt.want)
			}
			if got := Entities(tt.b, tt.a); len(got) != tt.want {
				t.Errorf("reversed: got %v, want %d points", got, tt.want)
			}
		})
	}
}

func TestAllReportsIDs(t *testing.T) {
	entities := []sketch.Entity{
		sketch.Line{Base: sketch.Base{ID: "a"}, Start: geom.Pt(0, 0), End: geom.Pt(10, 10)},
		sketch.Line{Base: sketch.Base{ID: "b"}, Start: geom.Pt(0, 10), End: geom.Pt(10, 0)},
		sketch.Circle{Base: sketch.Base{ID: "c"}, Center: geom.Pt(100, 100), Radius: 1},
	}
	hits := All(entities)
	if len(hits) != 1 {
		t.Fatalf("got %d hits, want 1", len(hits))
	}
	if hits[0].A != "a" || hits[0].B != "b" || !near(hits[0].Point, geom.Pt(5, 5)) {
		t.Errorf("unexpected hit %+v", hits[0])
	}
}
