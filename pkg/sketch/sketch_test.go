package sketch_test

import (
	"testing"

	"github.com/chazu/sketchsnap/pkg/geom"
	"github.com/chazu/sketchsnap/pkg/sketch"
)

func TestSketchIndexAndFilters(t *testing.T) {
	s := sketch.New()
	s.Add(sketch.Line{Base: sketch.Base{ID: "l1"}, End: geom.Pt(1, 0)})
	s.Add(sketch.Circle{Base: sketch.Base{ID: "c1", Construction: true}, Radius: 1})
	s.Add(sketch.Line{Base: sketch.Base{ID: "l2"}, End: geom.Pt(0, 1)})

	if s.Len() != 3 {
		t.Fatalf("Len = %d", s.Len())
	}
	if got := s.Get("c1"); got == nil || got.Kind() != sketch.KindCircle {
		t.Errorf("Get(c1) = %v", got)
	}
	if s.Get("missing") != nil {
		t.Error("Get of unknown ID should be nil")
	}
	if solid := s.Solid(); len(solid) != 2 {
		t.Errorf("Solid returned %d entities, want 2", len(solid))
	}
	if lines := s.OfKind(sketch.KindLine); len(lines) != 2 {
		t.Errorf("OfKind(line) returned %d", len(lines))
	}
	if s.Units != sketch.DefaultUnits {
		t.Errorf("Units = %q", s.Units)
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind sketch.Kind
		want string
	}{
		{sketch.KindLine, "line"},
		{sketch.KindArc, "arc"},
		{sketch.KindSlot, "slot"},
		{sketch.KindSpline, "spline"},
		{sketch.Kind(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", int(tt.kind), got, tt.want)
		}
	}
}

func TestWithConstruction(t *testing.T) {
	var e sketch.Entity = sketch.Circle{Base: sketch.Base{ID: "c"}, Radius: 2}
	ce := sketch.WithConstruction(e, true)
	if !ce.IsConstruction() {
		t.Error("expected construction flag to be set")
	}
	if e.IsConstruction() {
		t.Error("original entity must be unchanged")
	}
	if ce.EntityID() != "c" {
		t.Errorf("ID lost: %q", ce.EntityID())
	}
}
