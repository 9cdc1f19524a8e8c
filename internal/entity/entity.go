// Package entity defines the closed set of simulation entities.
//
// Entities move themselves and count down their own timers; they never
// spawn, destroy, or inspect other entities. Lifecycle decisions (splits,
// kills, respawns) belong to the game state machine, which is the only
// writer of alive flags during a tick.
package entity

import "github.com/astratt/vectoroids/internal/geom"

// Kind identifies the concrete entity type in snapshots.
type Kind int

const (
	KindShip Kind = iota
	KindAsteroid
	KindProjectile
	KindExplosion
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindShip:
		return "ship"
	case KindAsteroid:
		return "asteroid"
	case KindProjectile:
		return "projectile"
	case KindExplosion:
		return "explosion"
	default:
		return "unknown"
	}
}

// Bounds is the wrapping playfield size.
type Bounds struct {
	W, H float64
}

// Entity is the capability shared by all simulation entities.
type Entity interface {
	// Update advances the entity by dt seconds and wraps its position.
	Update(dt float64, bounds Bounds)
	// Pos returns the center position.
	Pos() geom.Vec2
	// Radius returns the collision (or visual) radius.
	Radius() float64
	// Alive reports whether the entity is still part of the simulation.
	Alive() bool
	// Kill marks the entity dead. Dead entities are skipped by collision
	// checks and pruned at the end of the tick.
	Kill()
}

// Body holds the movable-circle state common to all entities.
type Body struct {
	Position geom.Vec2
	Velocity geom.Vec2
	R        float64
	dead     bool
}

// Pos returns the center position.
func (b *Body) Pos() geom.Vec2 { return b.Position }

// Radius returns the collision radius.
func (b *Body) Radius() float64 { return b.R }

// Alive reports whether the body has not been killed.
func (b *Body) Alive() bool { return !b.dead }

// Kill marks the body dead.
func (b *Body) Kill() { b.dead = true }

// advance integrates velocity and wraps the position into bounds.
func (b *Body) advance(dt float64, bounds Bounds) {
	b.Position = geom.Wrap(b.Position.Add(b.Velocity.Scale(dt)), bounds.W, bounds.H)
}
