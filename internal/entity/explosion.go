package entity

import "github.com/astratt/vectoroids/internal/geom"

// explosionGrowth is how far past the source radius the blast ring expands.
const explosionGrowth = 1.5

// Explosion is a purely cosmetic blast ring that grows over its lifetime.
// It carries no gameplay collision radius.
type Explosion struct {
	Body
	age       float64
	lifetime  float64
	maxRadius float64
}

// NewExplosion creates an explosion at pos sized after the destroyed
// entity's radius, lasting the given number of seconds.
func NewExplosion(pos geom.Vec2, sourceRadius, lifetime float64) *Explosion {
	return &Explosion{
		Body:      Body{Position: pos},
		lifetime:  lifetime,
		maxRadius: sourceRadius * explosionGrowth,
	}
}

// Radius returns the current ring radius, growing linearly with age.
func (e *Explosion) Radius() float64 {
	if e.lifetime <= 0 {
		return e.maxRadius
	}
	progress := e.age / e.lifetime
	if progress > 1 {
		progress = 1
	}
	return e.maxRadius * progress
}

// Progress returns how far through its lifetime the explosion is, in [0,1].
func (e *Explosion) Progress() float64 {
	if e.lifetime <= 0 {
		return 1
	}
	p := e.age / e.lifetime
	if p > 1 {
		p = 1
	}
	return p
}

// Update ages the explosion and kills it once its lifetime elapses.
func (e *Explosion) Update(dt float64, _ Bounds) {
	e.age += dt
	if e.age >= e.lifetime {
		e.Kill()
	}
}
