package snap

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
)

func writeSettings(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "snap.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadSettings(t *testing.T) {
	path := writeSettings(t, "grid = false\nsnap_distance = 6.5\n")
	s, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	want := DefaultSettings()
	want.Grid = false
	want.SnapDistance = 6.5
	if s != want {
		t.Errorf("got %+v, want %+v", s, want)
	}
}

func TestLoadSettingsErrors(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		invalid bool
	}{
		{"unknown key", "snap_radius = 3\n", true},
		{"zero distance", "snap_distance = 0\n", true},
		{"bad syntax", "enabled = \n", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadSettings(writeSettings(t, tt.body))
			if err == nil {
				t.Fatal("expected error")
			}
			if errors.Is(err, ErrInvalidSettings) != tt.invalid {
				t.Errorf("errors.Is(ErrInvalidSettings) = %v for %v", !tt.invalid, err)
			}
		})
	}
}

func TestLoadSettingsMissingFile(t *testing.T) {
	if _, err := LoadSettings(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestSettingsValidate(t *testing.T) {
	for _, d := range []float64{-1, 0, math.NaN(), math.Inf(1)} {
		s := DefaultSettings()
		s.SnapDistance = d
		if err := s.Validate(); !errors.Is(err, ErrInvalidSettings) {
			t.Errorf("SnapDistance %v: err = %v", d, err)
		}
	}
	if err := DefaultSettings().Validate(); err != nil {
		t.Errorf("defaults invalid: %v", err)
	}
}
