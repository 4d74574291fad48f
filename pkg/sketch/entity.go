package sketch

// EntityID identifies an entity within a sketch.
type EntityID string

// Kind enumerates the sketch entity variants.
type Kind int

const (
	KindLine Kind = iota
	KindCircle
	KindArc
	KindRectangle
	KindPoint
	KindEllipse
	KindPolygon
	KindSlot
	KindSpline
)

func (k Kind) String() string {
	switch k {
	case KindLine:
		return "line"
	case KindCircle:
		return "circle"
	case KindArc:
		return "arc"
	case KindRectangle:
		return "rectangle"
	case KindPoint:
		return "point"
	case KindEllipse:
		return "ellipse"
	case KindPolygon:
		return "polygon"
	case KindSlot:
		return "slot"
	case KindSpline:
		return "spline"
	default:
		return "unknown"
	}
}

// Base carries the attributes every entity variant shares.
type Base struct {
	ID           EntityID `json:"id"`
	Construction bool     `json:"construction,omitempty"` // reference-only geometry
	Selected     bool     `json:"selected,omitempty"`
	Highlighted  bool     `json:"highlighted,omitempty"`
}

// Attrs returns the shared attributes.
func (b Base) Attrs() Base { return b }

// EntityID returns the entity's identifier.
func (b Base) EntityID() EntityID { return b.ID }

// IsConstruction reports whether the entity is reference-only geometry.
func (b Base) IsConstruction() bool { return b.Construction }

// Entity is a sketch entity. The set of implementations is closed: only
// the variant types in this package satisfy it, and every consumer
// switches over them exhaustively.
type Entity interface {
	Kind() Kind
	Attrs() Base
	EntityID() EntityID
	IsConstruction() bool

	entity() // marker method restricting implementations to this package
}
