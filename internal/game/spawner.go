package game

import (
	"math"
	"math/rand"

	"github.com/astratt/vectoroids/internal/config"
	"github.com/astratt/vectoroids/internal/entity"
	"github.com/astratt/vectoroids/internal/geom"
)

// spawnCone is the half-angle of the inward velocity cone for edge spawns.
const spawnCone = math.Pi / 4

// tier selection weights for edge spawns: mostly large rocks, which split
// into the smaller tiers during play.
const (
	spawnWeightLarge  = 0.5
	spawnWeightMedium = 0.3
)

// spawner injects asteroids at the playfield edges on a timed interval.
// The interval shrinks as the run goes on, down to a configured floor.
type spawner struct {
	acc float64
}

func (s *spawner) reset() {
	s.acc = 0
}

// interval returns the current seconds-between-spawns for the given
// elapsed play time.
func (s *spawner) interval(cfg *config.Config, elapsed float64) float64 {
	iv := cfg.SpawnInterval - cfg.SpawnIntervalDecay*elapsed
	if iv < cfg.SpawnIntervalMin {
		iv = cfg.SpawnIntervalMin
	}
	return iv
}

// update accumulates dt and emits one asteroid per elapsed interval.
// The accumulator keeps its remainder instead of resetting to zero, so
// the long-run spawn rate does not drift with tick size.
func (s *spawner) update(cfg *config.Config, dt, elapsed float64, rng *rand.Rand, emit func(*entity.Asteroid)) {
	s.acc += dt
	for iv := s.interval(cfg, elapsed); s.acc >= iv; iv = s.interval(cfg, elapsed) {
		s.acc -= iv
		emit(s.spawnAtEdge(cfg, rng))
	}
}

// spawnAtEdge creates an asteroid just inside a random screen edge with a
// velocity aimed roughly at the interior.
func (s *spawner) spawnAtEdge(cfg *config.Config, rng *rand.Rand) *entity.Asteroid {
	w, h := cfg.ScreenWidth, cfg.ScreenHeight

	var pos geom.Vec2
	switch rng.Intn(4) {
	case 0: // top
		pos = geom.Vec2{X: rng.Float64() * w, Y: 0}
	case 1: // bottom
		pos = geom.Vec2{X: rng.Float64() * w, Y: h - 1}
	case 2: // left
		pos = geom.Vec2{X: 0, Y: rng.Float64() * h}
	case 3: // right
		pos = geom.Vec2{X: w - 1, Y: rng.Float64() * h}
	}

	// Aim at the center, then fan out within the spawn cone.
	center := geom.Vec2{X: w / 2, Y: h / 2}
	angle := center.Sub(pos).Angle() + (rng.Float64()-0.5)*2*spawnCone

	speed := cfg.AsteroidMinSpeed + rng.Float64()*(cfg.AsteroidMaxSpeed-cfg.AsteroidMinSpeed)

	return entity.NewAsteroid(*cfg, pos, geom.FromAngle(angle).Scale(speed), s.pickTier(rng))
}

func (s *spawner) pickTier(rng *rand.Rand) entity.Tier {
	switch roll := rng.Float64(); {
	case roll < spawnWeightLarge:
		return entity.TierLarge
	case roll < spawnWeightLarge+spawnWeightMedium:
		return entity.TierMedium
	default:
		return entity.TierSmall
	}
}
