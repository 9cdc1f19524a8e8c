package entity

import (
	"math"

	"github.com/astratt/vectoroids/internal/config"
	"github.com/astratt/vectoroids/internal/geom"
)

// Ship is the player-controlled vessel.
type Ship struct {
	Body
	Heading float64 // radians, 0 = pointing right

	turnRate      float64
	thrust        float64
	reverseFactor float64
	maxSpeed      float64
	damping       float64

	shotSpeed    float64
	shotRadius   float64
	shotLifetime float64
	shotCooldown float64

	cooldown float64 // seconds until the next shot is allowed
	invuln   float64 // seconds of invulnerability remaining
	thrusted bool    // thrust applied since last Update
}

// NewShip creates a ship at pos, pointing up, with a fresh invulnerability
// window.
func NewShip(cfg config.Config, pos geom.Vec2) *Ship {
	return &Ship{
		Body: Body{
			Position: pos,
			R:        cfg.ShipRadius,
		},
		Heading:       -math.Pi / 2,
		turnRate:      cfg.ShipTurnRate,
		thrust:        cfg.ShipThrust,
		reverseFactor: cfg.ShipReverseFactor,
		maxSpeed:      cfg.ShipMaxSpeed,
		damping:       cfg.ShipDamping,
		shotSpeed:     cfg.ShotSpeed,
		shotRadius:    cfg.ShotRadius,
		shotLifetime:  cfg.ShotLifetime,
		shotCooldown:  cfg.ShotCooldown,
		invuln:        cfg.InvulnSeconds,
	}
}

// Rotate turns the ship. dir is +1 for clockwise (screen space), -1 for
// counter-clockwise.
func (s *Ship) Rotate(dir float64, dt float64) {
	s.Heading = geom.NormalizeAngle(s.Heading + dir*s.turnRate*dt)
}

// Thrust accelerates along the heading. dir is +1 forward, -1 reverse;
// reverse thrust is weaker by the configured factor.
func (s *Ship) Thrust(dir float64, dt float64) {
	accel := s.thrust
	if dir < 0 {
		accel *= s.reverseFactor
	}
	s.Velocity = s.Velocity.Add(geom.FromAngle(s.Heading).Scale(dir * accel * dt))
	s.thrusted = true
}

// Fire returns a new projectile leaving the ship's nose, or nil while the
// cooldown has not elapsed. A successful shot resets the cooldown.
func (s *Ship) Fire() *Projectile {
	if s.cooldown > 0 {
		return nil
	}
	s.cooldown = s.shotCooldown

	nose := s.Position.Add(geom.FromAngle(s.Heading).Scale(s.R))
	return &Projectile{
		Body: Body{
			Position: nose,
			Velocity: s.Velocity.Add(geom.FromAngle(s.Heading).Scale(s.shotSpeed)),
			R:        s.shotRadius,
		},
		ttl: s.shotLifetime,
	}
}

// Invulnerable reports whether the ship currently ignores fatal collisions.
// The window is half-open: the ship is vulnerable once the timer hits zero.
func (s *Ship) Invulnerable() bool {
	return s.invuln > 0
}

// InvulnRemaining returns the seconds of invulnerability left (for the
// renderer's blink effect).
func (s *Ship) InvulnRemaining() float64 {
	return s.invuln
}

// Respawn places the ship at pos with zero velocity and a fresh
// invulnerability window.
func (s *Ship) Respawn(pos geom.Vec2, invulnSeconds float64) {
	s.Position = pos
	s.Velocity = geom.Vec2{}
	s.Heading = -math.Pi / 2
	s.invuln = invulnSeconds
	s.dead = false
}

// Update applies damping when coasting, clamps speed, advances position,
// and counts down the fire and invulnerability timers.
func (s *Ship) Update(dt float64, bounds Bounds) {
	if s.cooldown > 0 {
		s.cooldown -= dt
		if s.cooldown < 0 {
			s.cooldown = 0
		}
	}
	if s.invuln > 0 {
		s.invuln -= dt
		if s.invuln < 0 {
			s.invuln = 0
		}
	}

	if !s.thrusted {
		factor := math.Pow(s.damping, dt)
		s.Velocity = s.Velocity.Scale(factor)
	}
	s.thrusted = false

	if speed := s.Velocity.Len(); speed > s.maxSpeed {
		s.Velocity = s.Velocity.Scale(s.maxSpeed / speed)
	}

	s.advance(dt, bounds)
}
