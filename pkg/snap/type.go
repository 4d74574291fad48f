package snap

import "fmt"

// Type identifies what a snap target is. The numeric order of the
// constants is the resolution priority: lower values win.
type Type int

const (
	TypeEndpoint Type = iota + 1
	TypeCenter
	TypeMidpoint
	TypeIntersection
	TypePerpendicular
	TypeTangent
	TypeNearest
	TypeGrid
)

var typeNames = map[Type]string{
	TypeEndpoint:      "endpoint",
	TypeCenter:        "center",
	TypeMidpoint:      "midpoint",
	TypeIntersection:  "intersection",
	TypePerpendicular: "perpendicular",
	TypeTangent:       "tangent",
	TypeNearest:       "nearest",
	TypeGrid:          "grid",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// Priority returns the resolution rank of t, 1 being the strongest.
func (t Type) Priority() int { return int(t) }

// MarshalText encodes the type by name.
func (t Type) MarshalText() ([]byte, error) {
	if _, ok := typeNames[t]; !ok {
		return nil, fmt.Errorf("snap: unknown type %d", int(t))
	}
	return []byte(t.String()), nil
}

// UnmarshalText decodes a type name.
func (t *Type) UnmarshalText(b []byte) error {
	for k, name := range typeNames {
		if name == string(b) {
			*t = k
			return nil
		}
	}
	return fmt.Errorf("snap: unknown type %q", b)
}
