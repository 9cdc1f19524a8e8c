package entity

import (
	"math"
	"math/rand"

	"github.com/astratt/vectoroids/internal/config"
	"github.com/astratt/vectoroids/internal/geom"
)

// Tier is the asteroid size class. Splitting reduces the tier by one;
// asteroids at the smallest tier shatter without children.
type Tier int

const (
	TierSmall Tier = iota
	TierMedium
	TierLarge
)

// String returns the lowercase tier name.
func (t Tier) String() string {
	switch t {
	case TierSmall:
		return "small"
	case TierMedium:
		return "medium"
	case TierLarge:
		return "large"
	default:
		return "unknown"
	}
}

// Asteroid is a drifting space rock.
type Asteroid struct {
	Body
	Tier Tier
}

// NewAsteroid creates an asteroid of the given tier, taking its radius from
// the configured tier table.
func NewAsteroid(cfg config.Config, pos, vel geom.Vec2, tier Tier) *Asteroid {
	return &Asteroid{
		Body: Body{
			Position: pos,
			Velocity: vel,
			R:        cfg.TierRadii[tier],
		},
		Tier: tier,
	}
}

// splitAngleMin/Max bound the divergence of split fragments, in radians.
const (
	splitAngleMin = 20 * math.Pi / 180
	splitAngleMax = 50 * math.Pi / 180
)

// splitSpeedup is the velocity gain fragments get over their parent.
const splitSpeedup = 1.2

// Split returns the asteroid's fragments: two children one tier smaller,
// with velocities diverging from the parent's by a random angle, or nil at
// the smallest tier. The parent is left untouched; the caller decides its
// fate.
func (a *Asteroid) Split(cfg config.Config, rng *rand.Rand) []*Asteroid {
	if a.Tier <= TierSmall {
		return nil
	}

	angle := splitAngleMin + rng.Float64()*(splitAngleMax-splitAngleMin)
	child := a.Tier - 1

	return []*Asteroid{
		NewAsteroid(cfg, a.Position, a.Velocity.Rotate(angle).Scale(splitSpeedup), child),
		NewAsteroid(cfg, a.Position, a.Velocity.Rotate(-angle).Scale(splitSpeedup), child),
	}
}

// Update advances the asteroid along its drift.
func (a *Asteroid) Update(dt float64, bounds Bounds) {
	a.advance(dt, bounds)
}
