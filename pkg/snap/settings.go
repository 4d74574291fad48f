package snap

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/BurntSushi/toml"
)

// DefaultSnapDistance is the tolerance used when no settings file says
// otherwise.
const DefaultSnapDistance = 10

// ErrInvalidSettings is wrapped by every settings validation failure.
var ErrInvalidSettings = errors.New("snap: invalid settings")

// Settings toggles snap categories. Perpendicular, tangent and nearest
// candidates have no toggle and are always generated.
type Settings struct {
	Enabled      bool    `toml:"enabled" json:"enabled"`
	Grid         bool    `toml:"grid" json:"grid"`
	Endpoint     bool    `toml:"endpoint" json:"endpoint"`
	Midpoint     bool    `toml:"midpoint" json:"midpoint"`
	Center       bool    `toml:"center" json:"center"`
	Intersection bool    `toml:"intersection" json:"intersection"`
	SnapDistance float64 `toml:"snap_distance" json:"snapDistance"`
}

// DefaultSettings enables every category with DefaultSnapDistance.
func DefaultSettings() Settings {
	return Settings{
		Enabled:      true,
		Grid:         true,
		Endpoint:     true,
		Midpoint:     true,
		Center:       true,
		Intersection: true,
		SnapDistance: DefaultSnapDistance,
	}
}

// Validate reports a non-positive or non-finite snap distance.
func (s Settings) Validate() error {
	if math.IsNaN(s.SnapDistance) || math.IsInf(s.SnapDistance, 0) || s.SnapDistance <= 0 {
		return fmt.Errorf("%w: snap_distance is %v, must be a positive number", ErrInvalidSettings, s.SnapDistance)
	}
	return nil
}

// LoadSettings reads a TOML settings file. Keys missing from the file keep
// their DefaultSettings value; unknown keys are an error.
//
//	enabled = true
//	grid = false
//	snap_distance = 6.5
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()
	md, err := toml.DecodeFile(path, &s)
	if err != nil {
		return Settings{}, fmt.Errorf("load snap settings %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Settings{}, fmt.Errorf("%w: unknown keys in %s: %s", ErrInvalidSettings, path, strings.Join(keys, ", "))
	}
	if err := s.Validate(); err != nil {
		return Settings{}, fmt.Errorf("load snap settings %s: %w", path, err)
	}
	return s, nil
}
