package survey

import (
	"math"
	"strings"
)

const Epsilon = 1e-9

// Displacement returns the vector from p0 to p1 along with its length.
func Displacement(p0, p1 Point) (Point, float64) {
	d := p1.Sub(p0)
	return d, d.Norm()
}

func Separation(p0, p1 Point) float64 {
	return p1.Sub(p0).Norm()
}

// NormalizeBearing reduces any finite angle in degrees into [0, 360).
func NormalizeBearing(deg float64) float64 {
	b := math.Mod(deg, 360)
	if b < 0 {
		b += 360
	}
	// Adding 360 to a tiny negative value can round up to exactly 360
	if b >= 360 {
		b -= 360
	}
	return b
}

// Bearing of the displacement d relative to the basis, in degrees clockwise
// from north, before any north offset is applied.
func (b Basis) Bearing(d Point) float64 {
	return math.Atan2(b.East.Dot(d), b.North.Dot(d)) * 180 / math.Pi
}

// SurveyName makes an identifier safe to use as a survex survey name. Survex
// treats '.' as the level separator, and whitespace ends the name, so
// anything other than letters, digits, '_' and '-' becomes '_'.
func SurveyName(id string) string {
	var b strings.Builder
	for _, r := range id {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}
