package main

import (
	"math"
	"sync"
	"testing"

	"github.com/chazu/sketchsnap/pkg/flatten"
	"github.com/chazu/sketchsnap/pkg/geom"
	"github.com/chazu/sketchsnap/pkg/sketch"
	"github.com/chazu/sketchsnap/pkg/snap"
)

const bracketPath = "../../examples/bracket.sketch"

func near(a, b geom.Point2D) bool {
	return math.Abs(a.X-b.X) < 1e-6 && math.Abs(a.Y-b.Y) < 1e-6
}

// loadBracket evaluates the bracket example and fails on any error.
func loadBracket(t *testing.T, settings snap.Settings) (*App, *sketch.Sketch) {
	t.Helper()
	app := NewApp(settings)
	result, err := app.Load(bracketPath)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !result.OK() {
		for _, e := range result.Errors {
			t.Errorf("eval error (line %d): %s", e.Line, e.Message)
		}
		t.FailNow()
	}
	return app, result.Sketch
}

// TestE2EBracketExample exercises the full pipeline: script source to
// engine to sketch to outlines.
func TestE2EBracketExample(t *testing.T) {
	app, sk := loadBracket(t, snap.DefaultSettings())

	if sk.Len() != 6 {
		t.Fatalf("expected 6 entities, got %d", sk.Len())
	}
	for _, id := range []sketch.EntityID{"plate", "hole-left", "hole-right", "adjust", "handle", "diag"} {
		if sk.Get(id) == nil {
			t.Errorf("missing entity %q", id)
		}
	}
	if !sk.Get("diag").IsConstruction() {
		t.Error("diag should be construction geometry")
	}

	outlines, err := app.Outlines(sk, flatten.DefaultOptions())
	if err != nil {
		t.Fatalf("outlines: %v", err)
	}
	if len(outlines) != 6 {
		t.Fatalf("expected 6 outlines, got %d", len(outlines))
	}
	for _, o := range outlines {
		if len(o.Points) == 0 {
			t.Errorf("%s: no points", o.EntityID)
		}
		if o.Color == "" {
			t.Errorf("%s: no color assigned", o.EntityID)
		}
	}
	if outlines[0].Color != colorPalette[0] || outlines[4].Color != colorPalette[4] {
		t.Errorf("palette not assigned in order: %q, %q", outlines[0].Color, outlines[4].Color)
	}
	if outlines[5].Color != constructionColor {
		t.Errorf("construction outline color = %q", outlines[5].Color)
	}
}

func TestE2EEmptySource(t *testing.T) {
	app := NewApp(snap.DefaultSettings())
	result := app.Evaluate("")

	if !result.OK() {
		t.Fatalf("unexpected errors for empty source: %v", result.Errors)
	}
	if result.Entities != 0 {
		t.Errorf("expected 0 entities, got %d", result.Entities)
	}
	// JSON should serialize as [] not null.
	if result.Errors == nil || result.Warnings == nil {
		t.Error("Errors and Warnings should be non-nil empty slices")
	}
	if res := app.Snap(geom.Point2D{X: 3, Y: 3}, 0); res.Snapped {
		t.Errorf("empty sketch without grid should not snap, got %+v", res.Target)
	}
}

func TestE2ESyntaxError(t *testing.T) {
	app := NewApp(snap.DefaultSettings())
	result := app.Evaluate("(+ 1 2)\n(circle (pt 0 0)")

	if len(result.Errors) == 0 {
		t.Fatal("expected eval errors for syntax error")
	}
	if result.Sketch != nil {
		t.Error("sketch should be nil on error")
	}
	if result.Errors[0].Message == "" {
		t.Error("syntax error should have a non-empty message")
	}
}

func TestE2EWarnings(t *testing.T) {
	app := NewApp(snap.DefaultSettings())
	result := app.Evaluate(`(line (pt 1 1) (pt 1 1) :id "dot")`)

	if !result.OK() {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if len(result.Warnings) == 0 {
		t.Fatal("expected a warning for a zero-length line")
	}
	if result.Warnings[0].EntityID != "dot" {
		t.Errorf("warning entity = %q, want dot", result.Warnings[0].EntityID)
	}
}

func TestE2ESnap(t *testing.T) {
	app, _ := loadBracket(t, snap.DefaultSettings())

	tests := []struct {
		name   string
		query  geom.Point2D
		grid   float64
		typ    snap.Type
		entity sketch.EntityID
		pos    geom.Point2D
	}{
		{"plate corner", geom.Point2D{X: 1, Y: 1}, 10, snap.TypeEndpoint, "plate", geom.Point2D{}},
		{"hole center beats grid", geom.Point2D{X: 20.5, Y: 30.5}, 10, snap.TypeCenter, "hole-left", geom.Point2D{X: 20, Y: 30}},
		{"handle endpoint", geom.Point2D{X: 29, Y: 61}, 10, snap.TypeEndpoint, "handle", geom.Point2D{X: 30, Y: 60}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res := app.Snap(tc.query, tc.grid)
			if !res.Snapped {
				t.Fatal("expected a snap target")
			}
			if res.Target.Type != tc.typ {
				t.Errorf("type = %s, want %s", res.Target.Type, tc.typ)
			}
			if res.Target.EntityID != tc.entity {
				t.Errorf("entity = %q, want %q", res.Target.EntityID, tc.entity)
			}
			if !near(res.Target.Position, tc.pos) {
				t.Errorf("position = %v, want %v", res.Target.Position, tc.pos)
			}
		})
	}
}

func TestE2EHitAndPick(t *testing.T) {
	app, sk := loadBracket(t, snap.DefaultSettings())

	// (50, 30) lies on the construction diagonal and inside the slot.
	p := geom.Point2D{X: 50, Y: 30}
	hits := app.Hits(sk, p, 1)
	if len(hits) != 1 || hits[0].EntityID != "diag" {
		t.Errorf("hits = %+v, want only diag", hits)
	}

	inside, err := app.Inside(sk, p)
	if err != nil {
		t.Fatalf("inside: %v", err)
	}
	want := map[sketch.EntityID]bool{"plate": true, "adjust": true}
	if len(inside) != len(want) {
		t.Fatalf("inside = %v, want plate and adjust", inside)
	}
	for _, id := range inside {
		if !want[id] {
			t.Errorf("unexpected region %q", id)
		}
	}

	// Near the left hole's rim the hole is the closest boundary.
	hit, ok := app.Pick(sk, geom.Point2D{X: 28.5, Y: 30}, 2)
	if !ok || hit.EntityID != "hole-left" {
		t.Errorf("pick = %+v, %v; want hole-left", hit, ok)
	}
	if _, ok := app.Pick(sk, geom.Point2D{X: 90, Y: 10}, 2); ok {
		t.Error("pick in empty space should miss")
	}
}

func TestE2EIntersectionsAndBounds(t *testing.T) {
	app, sk := loadBracket(t, snap.DefaultSettings())

	hits := app.Intersections(sk)
	find := func(p geom.Point2D, a, b sketch.EntityID) bool {
		for _, h := range hits {
			if !near(h.Point, p) {
				continue
			}
			if (h.Entities[0] == a && h.Entities[1] == b) || (h.Entities[0] == b && h.Entities[1] == a) {
				return true
			}
		}
		return false
	}
	if !find(geom.Point2D{X: 50, Y: 30}, "adjust", "diag") {
		t.Errorf("missing adjust/diag crossing in %+v", hits)
	}
	if !find(geom.Point2D{X: 30, Y: 60}, "plate", "handle") {
		t.Errorf("missing plate/handle crossing in %+v", hits)
	}

	b := app.Bounds(sk)
	if !near(b.Sketch.Min, geom.Point2D{}) || !near(b.Sketch.Max, geom.Point2D{X: 100, Y: 80}) {
		t.Errorf("sketch bounds = %+v", b.Sketch)
	}
	if len(b.Entities) != 6 {
		t.Errorf("expected 6 entity boxes, got %d", len(b.Entities))
	}
}

// TestE2ERapidEvaluation simulates an editor re-evaluating on every
// keystroke while snap queries run. Run with -race.
func TestE2ERapidEvaluation(t *testing.T) {
	app := NewApp(snap.DefaultSettings())
	sources := []string{
		`(line (pt 0 0) (pt 10 0))`,
		`(circle (pt 5 5) 3)`,
		`(rect (pt 0 0) (pt 4 4))`,
		`(circle (pt 0 0)`,
	}

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			app.Evaluate(sources[i%len(sources)])
		}(i)
		go func() {
			defer wg.Done()
			app.Snap(geom.Point2D{X: 1, Y: 1}, 5)
		}()
	}
	wg.Wait()
}
