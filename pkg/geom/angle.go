package geom

import "math"

// TwoPi is a full turn in radians.
const TwoPi = 2 * math.Pi

// NormalizeAngle maps a to the half-open interval (-π, π].
func NormalizeAngle(a float64) float64 {
	a = math.Mod(a, TwoPi)
	if a <= -math.Pi {
		a += TwoPi
	} else if a > math.Pi {
		a -= TwoPi
	}
	return a
}

// ArcSweep returns the counter-clockwise angular span from start to end
// in (0, 2π]. Equal angles describe a full turn.
func ArcSweep(start, end float64) float64 {
	sweep := math.Mod(end-start, TwoPi)
	if sweep <= 0 {
		sweep += TwoPi
	}
	return sweep
}

// AngleInArc reports whether angle lies on the counter-clockwise arc from
// start to end. The arc may wrap through ±π, in which case the normalized
// start is greater than the normalized end. Coincident start and end
// angles describe a full circle, matching ArcSweep.
func AngleInArc(angle, start, end float64) bool {
	if ArcSweep(start, end) >= TwoPi-Epsilon {
		return true
	}
	a := NormalizeAngle(angle)
	s := NormalizeAngle(start)
	e := NormalizeAngle(end)
	if s <= e {
		return a >= s && a <= e
	}
	return a >= s || a <= e
}
