package snap

import (
	"sync"

	"github.com/chazu/sketchsnap/pkg/geom"
	"github.com/chazu/sketchsnap/pkg/sketch"
)

// Engine caches the last entity and settings snapshot pushed by the host
// so pointer handlers can query with just a position. Hosts must push a
// fresh snapshot whenever the entity store changes; nothing invalidates
// it automatically.
//
// Engine is safe for concurrent use. Updates replace the snapshot under a
// lock; queries copy the current snapshot and resolve outside it.
type Engine struct {
	mu       sync.RWMutex
	entities []sketch.Entity
	settings Settings
}

// NewEngine creates an Engine with no entities.
func NewEngine(settings Settings) *Engine {
	return &Engine{settings: settings}
}

// UpdateEntities replaces the entity snapshot. The slice is copied, so
// the caller may reuse it.
func (e *Engine) UpdateEntities(entities []sketch.Entity) {
	snapshot := make([]sketch.Entity, len(entities))
	copy(snapshot, entities)

	e.mu.Lock()
	e.entities = snapshot
	e.mu.Unlock()

	Logger().Debug("snap entities updated", "count", len(snapshot))
}

// UpdateSettings replaces the settings snapshot.
func (e *Engine) UpdateSettings(settings Settings) {
	e.mu.Lock()
	e.settings = settings
	e.mu.Unlock()

	Logger().Debug("snap settings updated",
		"enabled", settings.Enabled,
		"snapDistance", settings.SnapDistance)
}

// Settings returns the current settings snapshot.
func (e *Engine) Settings() Settings {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.settings
}

// FindSnapTarget resolves point against the current snapshot.
func (e *Engine) FindSnapTarget(point geom.Point2D, gridSize float64) (Target, bool) {
	e.mu.RLock()
	entities, settings := e.entities, e.settings
	e.mu.RUnlock()

	return Find(entities, settings, point, gridSize)
}
