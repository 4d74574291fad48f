package snap

import (
	"math"

	"github.com/chazu/sketchsnap/pkg/geom"
	"github.com/chazu/sketchsnap/pkg/intersect"
	"github.com/chazu/sketchsnap/pkg/sketch"
)

// Target is a snap point. Before resolution it is a candidate; Resolve
// returns the winning one.
type Target struct {
	Type     Type            `json:"type"`
	Position geom.Point2D    `json:"position"`
	EntityID sketch.EntityID `json:"entityId,omitempty"`
	// EntityIDs names both entities of an intersection.
	EntityIDs []sketch.EntityID `json:"entityIds,omitempty"`
	Distance  float64           `json:"distance"`
}

// nearestType tags the nearest-on-entity candidate by the entity's shape.
func nearestType(k sketch.Kind) Type {
	switch k {
	case sketch.KindLine, sketch.KindRectangle, sketch.KindPolygon:
		return TypePerpendicular
	case sketch.KindCircle, sketch.KindArc, sketch.KindEllipse:
		return TypeTangent
	default:
		return TypeNearest
	}
}

// GridPoint returns the grid intersection nearest to p.
func GridPoint(p geom.Point2D, gridSize float64) geom.Point2D {
	return geom.Point2D{
		X: math.Round(p.X/gridSize) * gridSize,
		Y: math.Round(p.Y/gridSize) * gridSize,
	}
}

// Candidates generates every snap candidate for point that lies strictly
// within settings.SnapDistance, in generation order: grid, then per-entity
// endpoints, midpoints, center and nearest point, then intersections.
//
// Construction entities take part in intersections only. A gridSize of
// zero or less disables the grid candidate. Disabled settings yield no
// candidates.
func Candidates(entities []sketch.Entity, settings Settings, point geom.Point2D, gridSize float64) []Target {
	if !settings.Enabled {
		return nil
	}

	var out []Target
	add := func(t Target) {
		t.Distance = point.Distance(t.Position)
		if t.Distance < settings.SnapDistance {
			out = append(out, t)
		}
	}

	if settings.Grid && gridSize > 0 {
		add(Target{Type: TypeGrid, Position: GridPoint(point, gridSize)})
	}

	for _, e := range entities {
		if e.IsConstruction() {
			continue
		}
		id := e.EntityID()
		if settings.Endpoint {
			for _, p := range sketch.Endpoints(e) {
				add(Target{Type: TypeEndpoint, Position: p, EntityID: id})
			}
		}
		if settings.Midpoint {
			for _, p := range sketch.Midpoints(e) {
				add(Target{Type: TypeMidpoint, Position: p, EntityID: id})
			}
		}
		if settings.Center {
			if c, ok := sketch.Center(e); ok {
				add(Target{Type: TypeCenter, Position: c, EntityID: id})
			}
		}
		add(Target{Type: nearestType(e.Kind()), Position: sketch.ClosestPoint(e, point), EntityID: id})
	}

	if settings.Intersection {
		for _, h := range intersect.All(entities) {
			add(Target{
				Type:      TypeIntersection,
				Position:  h.Point,
				EntityID:  h.A,
				EntityIDs: []sketch.EntityID{h.A, h.B},
			})
		}
	}

	return out
}
