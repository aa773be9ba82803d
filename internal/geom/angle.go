package geom

import "math"

// Angle is a direction in radians, normalized to (-π, π].
type Angle float64

// Rad returns the normalized angle of r radians.
func Rad(r float64) Angle {
	return Angle(r).Normalized()
}

// Deg returns the normalized angle of d degrees.
func Deg(d float64) Angle {
	return Rad(d * math.Pi / 180)
}

// Normalized wraps a into (-π, π].
func (a Angle) Normalized() Angle {
	r := math.Mod(float64(a), 2*math.Pi)
	if r <= -math.Pi {
		r += 2 * math.Pi
	} else if r > math.Pi {
		r -= 2 * math.Pi
	}
	return Angle(r)
}

// Turn returns a turned by b, wrapped.
func (a Angle) Turn(b Angle) Angle {
	return Rad(float64(a) + float64(b))
}

func (a Angle) Rad() float64 { return float64(a) }

func (a Angle) Deg() float64 { return float64(a) * 180 / math.Pi }
