package main

import (
	"fmt"
	"os"

	"github.com/chazu/sketchsnap/pkg/flatten"
	"github.com/chazu/sketchsnap/pkg/geom"
	"github.com/chazu/sketchsnap/pkg/hittest"
	"github.com/chazu/sketchsnap/pkg/intersect"
	"github.com/chazu/sketchsnap/pkg/kernel"
	"github.com/chazu/sketchsnap/pkg/kernel/sdfx"
	"github.com/chazu/sketchsnap/pkg/script"
	"github.com/chazu/sketchsnap/pkg/sketch"
	"github.com/chazu/sketchsnap/pkg/snap"
)

// colorPalette is a default palette used to assign distinct colors to
// flattened outlines.
var colorPalette = []string{
	"#4A90D9", "#E67E22", "#2ECC71", "#9B59B6",
	"#E74C3C", "#1ABC9C", "#F39C12", "#3498DB",
}

// constructionColor is used for every construction outline.
const constructionColor = "#9E9E9E"

// App ties the script engine, the snap engine and the region kernel
// together for the CLI subcommands.
type App struct {
	engine *script.Engine
	snap   *snap.Engine
	kernel kernel.Kernel
}

// NewApp creates an App with the given snap settings and the sdfx kernel.
func NewApp(settings snap.Settings) *App {
	return &App{
		engine: script.NewEngine(),
		snap:   snap.NewEngine(settings),
		kernel: sdfx.New(),
	}
}

// EvalErrorData is a JSON-serializable eval error.
type EvalErrorData struct {
	Line    int    `json:"line"`
	Col     int    `json:"col"`
	Message string `json:"message"`
}

// WarningData is a JSON-serializable advisory finding.
type WarningData struct {
	EntityID sketch.EntityID `json:"entityId,omitempty"`
	Message  string          `json:"message"`
}

// EvalResult is the outcome of loading a sketch script.
type EvalResult struct {
	Sketch   *sketch.Sketch  `json:"-"`
	Entities int             `json:"entities"`
	Errors   []EvalErrorData `json:"errors"`
	Warnings []WarningData   `json:"warnings"`
}

// OK reports whether the sketch evaluated without blocking errors.
func (r EvalResult) OK() bool { return len(r.Errors) == 0 && r.Sketch != nil }

// Evaluate takes DSL source and returns the sketch plus any errors and
// warnings. On success the snap engine holds the new entity snapshot.
func (a *App) Evaluate(source string) EvalResult {
	result := EvalResult{
		Errors:   []EvalErrorData{},
		Warnings: []WarningData{},
	}

	res := a.engine.Result(source)
	for _, e := range res.Errors {
		result.Errors = append(result.Errors, EvalErrorData{Line: e.Line, Col: e.Col, Message: e.Message})
	}
	for _, w := range res.Warnings {
		result.Warnings = append(result.Warnings, WarningData{EntityID: w.EntityID, Message: w.Message})
	}
	if len(result.Errors) > 0 {
		snap.Logger().Debug("sketch evaluation failed", "errors", len(result.Errors))
		return result
	}

	result.Sketch = res.Sketch
	result.Entities = res.Sketch.Len()
	a.snap.UpdateEntities(res.Sketch.Entities())
	return result
}

// Load reads and evaluates a sketch script.
func (a *App) Load(path string) (EvalResult, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return EvalResult{}, fmt.Errorf("read sketch: %w", err)
	}
	return a.Evaluate(string(source)), nil
}

// SnapResult is the JSON answer of the snap subcommand.
type SnapResult struct {
	Query   geom.Point2D `json:"query"`
	Snapped bool         `json:"snapped"`
	Target  *snap.Target `json:"target,omitempty"`
}

// Snap resolves p against the last evaluated sketch.
func (a *App) Snap(p geom.Point2D, gridSize float64) SnapResult {
	t, ok := a.snap.FindSnapTarget(p, gridSize)
	if !ok {
		return SnapResult{Query: p}
	}
	return SnapResult{Query: p, Snapped: true, Target: &t}
}

// HitData reports one entity under the cursor.
type HitData struct {
	EntityID sketch.EntityID `json:"entityId"`
	Kind     string          `json:"kind"`
	Distance float64         `json:"distance"`
}

// Hits returns every entity within tol of p, in sketch order.
func (a *App) Hits(sk *sketch.Sketch, p geom.Point2D, tol float64) []HitData {
	hits := []HitData{}
	for _, e := range sk.Entities() {
		if hittest.HitTestEntity(e, p, tol) {
			hits = append(hits, HitData{EntityID: e.EntityID(), Kind: e.Kind().String(), Distance: hittest.Distance(e, p)})
		}
	}
	return hits
}

// Inside returns the closed entities whose region contains p. Open
// entities are skipped.
func (a *App) Inside(sk *sketch.Sketch, p geom.Point2D) ([]sketch.EntityID, error) {
	ids := []sketch.EntityID{}
	for _, e := range sk.Entities() {
		in, err := hittest.HitTestRegion(a.kernel, e, p)
		if err != nil {
			if isNotClosed(err) {
				continue
			}
			return nil, err
		}
		if in {
			ids = append(ids, e.EntityID())
		}
	}
	return ids, nil
}

// Pick returns the entity a click at p targets, if any.
func (a *App) Pick(sk *sketch.Sketch, p geom.Point2D, tol float64) (HitData, bool) {
	e, ok := hittest.Pick(sk.Entities(), p, tol)
	if !ok {
		return HitData{}, false
	}
	return HitData{EntityID: e.EntityID(), Kind: e.Kind().String(), Distance: hittest.Distance(e, p)}, true
}

// IntersectionData is one intersection between two entities.
type IntersectionData struct {
	Point    geom.Point2D      `json:"point"`
	Entities []sketch.EntityID `json:"entities"`
}

// Intersections lists every pairwise intersection in the sketch.
func (a *App) Intersections(sk *sketch.Sketch) []IntersectionData {
	out := []IntersectionData{}
	for _, h := range intersect.All(sk.Entities()) {
		out = append(out, IntersectionData{Point: h.Point, Entities: []sketch.EntityID{h.A, h.B}})
	}
	return out
}

// BoundsData is the JSON answer of the bounds subcommand.
type BoundsData struct {
	Sketch   geom.BoundingBox                     `json:"sketch"`
	Entities map[sketch.EntityID]geom.BoundingBox `json:"entities"`
}

// Bounds returns the bounding box of the sketch and of each entity.
func (a *App) Bounds(sk *sketch.Sketch) BoundsData {
	data := BoundsData{
		Sketch:   sketch.BoundsAll(sk.Entities()),
		Entities: make(map[sketch.EntityID]geom.BoundingBox, sk.Len()),
	}
	for _, e := range sk.Entities() {
		data.Entities[e.EntityID()] = sketch.Bounds(e)
	}
	return data
}

// OutlineData is a JSON-serializable flattened entity.
type OutlineData struct {
	Points   []geom.Point2D  `json:"points"`
	Closed   bool            `json:"closed"`
	EntityID sketch.EntityID `json:"entityId"`
	Color    string          `json:"color"`
}

// Outlines flattens every entity and assigns display colors.
func (a *App) Outlines(sk *sketch.Sketch, opts flatten.Options) ([]OutlineData, error) {
	polylines, err := flatten.Sketch(sk, opts)
	if err != nil {
		return nil, err
	}

	out := make([]OutlineData, 0, len(polylines))
	solid := 0
	for _, pl := range polylines {
		color := constructionColor
		if !pl.Construction {
			color = colorPalette[solid%len(colorPalette)]
			solid++
		}
		out = append(out, OutlineData{
			Points:   pl.Points,
			Closed:   pl.Closed,
			EntityID: pl.EntityID,
			Color:    color,
		})
	}
	return out, nil
}
