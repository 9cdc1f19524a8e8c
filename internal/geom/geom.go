// Package geom provides 2D vector math and world-wrap utilities.
package geom

import "math"

// Vec2 is a 2D vector. Copied by value everywhere; no entity owns one.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Scale returns v scaled by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Len returns the magnitude of v.
func (v Vec2) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// LenSquared returns the squared magnitude of v.
// Use this when comparing distances to avoid the sqrt cost.
func (v Vec2) LenSquared() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Normalize returns the unit vector of v. A degenerate (near-zero) vector
// normalizes to the zero vector rather than producing NaNs.
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l < 1e-9 {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Y / l}
}

// Rotate returns v rotated by angle radians (counter-clockwise in screen space).
func (v Vec2) Rotate(angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return Vec2{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// Angle returns the heading of v in radians.
func (v Vec2) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// FromAngle returns the unit vector pointing at angle radians.
func FromAngle(angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return Vec2{X: cos, Y: sin}
}

// Distance returns the Euclidean distance between two points.
func Distance(a, b Vec2) float64 {
	return a.Sub(b).Len()
}

// Wrap maps pos into [0,width)x[0,height), independently per axis.
// Coordinates any number of world-widths away come back in bounds.
func Wrap(pos Vec2, width, height float64) Vec2 {
	if width > 0 {
		pos.X = wrapAxis(pos.X, width)
	}
	if height > 0 {
		pos.Y = wrapAxis(pos.Y, height)
	}
	return pos
}

func wrapAxis(v, limit float64) float64 {
	v = math.Mod(v, limit)
	if v < 0 {
		v += limit
	}
	// Adding limit to a tiny negative remainder can round up to exactly
	// limit; the interval is half-open, so fold that back to zero.
	if v >= limit {
		v = 0
	}
	return v
}

// NormalizeAngle maps an angle into [-pi, pi].
func NormalizeAngle(a float64) float64 {
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	for a < -math.Pi {
		a += 2 * math.Pi
	}
	return a
}
