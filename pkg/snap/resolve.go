package snap

import (
	"sort"

	"github.com/chazu/sketchsnap/pkg/geom"
	"github.com/chazu/sketchsnap/pkg/sketch"
)

// Resolve picks the winning candidate: only candidates with
// Distance < snapDistance are considered, and they are ordered by type
// priority, then distance. Ties keep generation order.
func Resolve(candidates []Target, snapDistance float64) (Target, bool) {
	kept := make([]Target, 0, len(candidates))
	for _, c := range candidates {
		if c.Distance < snapDistance {
			kept = append(kept, c)
		}
	}
	if len(kept) == 0 {
		return Target{}, false
	}

	sort.SliceStable(kept, func(i, j int) bool {
		pi, pj := kept[i].Type.Priority(), kept[j].Type.Priority()
		if pi != pj {
			return pi < pj
		}
		return kept[i].Distance < kept[j].Distance
	})
	return kept[0], true
}

// Find resolves the snap target for point against entities. It holds no
// state; every call sees exactly the snapshot it is given.
func Find(entities []sketch.Entity, settings Settings, point geom.Point2D, gridSize float64) (Target, bool) {
	if !settings.Enabled {
		return Target{}, false
	}
	candidates := Candidates(entities, settings, point, gridSize)
	t, ok := Resolve(candidates, settings.SnapDistance)

	log := Logger()
	if ok {
		log.Debug("snap resolved",
			"point", point,
			"candidates", len(candidates),
			"type", t.Type,
			"entity", t.EntityID,
			"distance", t.Distance)
	} else {
		log.Debug("no snap", "point", point, "candidates", len(candidates))
	}
	return t, ok
}
