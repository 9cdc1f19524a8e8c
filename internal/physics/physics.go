// Package physics provides circle overlap tests and a broad-phase grid.
package physics

import "github.com/astratt/vectoroids/internal/geom"

// CirclesOverlap reports whether two circles touch or overlap.
// The boundary is closed: centers exactly r1+r2 apart count as a hit.
func CirclesOverlap(c1 geom.Vec2, r1 float64, c2 geom.Vec2, r2 float64) bool {
	minDist := r1 + r2
	return c1.Sub(c2).LenSquared() <= minDist*minDist
}

// PointInCircle reports whether a point lies on or inside a circle.
func PointInCircle(p, center geom.Vec2, radius float64) bool {
	return p.Sub(center).LenSquared() <= radius*radius
}
