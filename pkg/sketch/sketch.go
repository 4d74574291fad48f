package sketch

// DefaultUnits is the only unit system sketches carry today.
const DefaultUnits = "mm"

// Sketch is an ordered snapshot of entities with an ID index. It is built
// once (by a script evaluation or an entity store export) and then only
// read; queries never mutate it.
type Sketch struct {
	entities []Entity
	byID     map[EntityID]Entity
	Units    string
}

// New creates an empty Sketch.
func New() *Sketch {
	return &Sketch{
		byID:  make(map[EntityID]Entity),
		Units: DefaultUnits,
	}
}

// FromEntities builds a Sketch over entities in order.
func FromEntities(entities []Entity) *Sketch {
	s := New()
	for _, e := range entities {
		s.Add(e)
	}
	return s
}

// Add appends an entity. It does not check for duplicate IDs; Validate
// reports them.
func (s *Sketch) Add(e Entity) {
	s.entities = append(s.entities, e)
	if id := e.EntityID(); id != "" {
		s.byID[id] = e
	}
}

// Get returns the entity with the given ID, or nil.
func (s *Sketch) Get(id EntityID) Entity {
	return s.byID[id]
}

// Entities returns the entities in insertion order. The slice is shared;
// callers must not modify it.
func (s *Sketch) Entities() []Entity {
	return s.entities
}

// Solid returns the entities that are not construction geometry.
func (s *Sketch) Solid() []Entity {
	var out []Entity
	for _, e := range s.entities {
		if !e.IsConstruction() {
			out = append(out, e)
		}
	}
	return out
}

// OfKind returns the entities of kind k.
func (s *Sketch) OfKind(k Kind) []Entity {
	var out []Entity
	for _, e := range s.entities {
		if e.Kind() == k {
			out = append(out, e)
		}
	}
	return out
}

// Len returns the number of entities.
func (s *Sketch) Len() int {
	return len(s.entities)
}
