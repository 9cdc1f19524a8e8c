// Package game owns the authoritative simulation: the entity collections,
// the collision pass, the asteroid spawner, and the Running/Paused/GameOver
// state machine. One call to Tick advances everything by one step; the
// caller drives it at whatever cadence it likes and renders the returned
// snapshot.
package game

import (
	"math"
	"math/rand"
	"time"

	"github.com/astratt/vectoroids/internal/config"
	"github.com/astratt/vectoroids/internal/entity"
	"github.com/astratt/vectoroids/internal/geom"
	"github.com/astratt/vectoroids/internal/input"
	"github.com/astratt/vectoroids/internal/physics"
)

// Phase is the state machine phase.
type Phase int

const (
	PhaseRunning Phase = iota
	PhasePaused
	PhaseGameOver
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// explosionSeconds is how long blast rings live.
const explosionSeconds = 0.5

// Game is one simulation instance. It is not safe for concurrent use; the
// driving loop calls Tick from a single goroutine.
type Game struct {
	cfg    config.Config
	rng    *rand.Rand
	bounds entity.Bounds

	phase   Phase
	score   int
	lives   int
	elapsed float64

	ship       *entity.Ship
	asteroids  []*entity.Asteroid
	shots      []*entity.Projectile
	explosions []*entity.Explosion

	// Asteroids created mid-tick (splits, spawner) are queued and joined
	// after collision resolution, so they cannot collide in the tick that
	// created them.
	pending []*entity.Asteroid

	spawner      spawner
	grid         *physics.SpatialGrid
	bombCooldown float64

	events []Event
}

// New creates a game from cfg. The configuration is validated; a game is
// never constructed with undefined physics.
func New(cfg config.Config) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// Cell size must cover the largest possible interaction distance.
	largest := cfg.TierRadii[config.NumTiers-1]
	cellSize := largest + math.Max(cfg.ShipRadius, cfg.ShotRadius)

	g := &Game{
		cfg:    cfg,
		bounds: entity.Bounds{W: cfg.ScreenWidth, H: cfg.ScreenHeight},
		grid:   physics.NewSpatialGrid(cfg.ScreenWidth, cfg.ScreenHeight, cellSize),
	}
	g.start()
	return g, nil
}

// start (re)initializes a fresh run. The RNG is reseeded from the
// configured seed so consecutive resets are identical.
func (g *Game) start() {
	g.rng = rand.New(rand.NewSource(g.cfg.Seed))
	g.phase = PhaseRunning
	g.score = 0
	g.lives = g.cfg.StartingLives
	g.elapsed = 0
	g.bombCooldown = 0

	g.ship = entity.NewShip(g.cfg, g.center())
	g.asteroids = g.asteroids[:0]
	g.shots = g.shots[:0]
	g.explosions = g.explosions[:0]
	g.pending = g.pending[:0]
	g.spawner.reset()
}

// Reset re-initializes to a fresh game, same as the restart action.
func (g *Game) Reset() {
	g.start()
}

// Config returns the configuration the game was built with.
func (g *Game) Config() config.Config {
	return g.cfg
}

func (g *Game) center() geom.Vec2 {
	return geom.Vec2{X: g.cfg.ScreenWidth / 2, Y: g.cfg.ScreenHeight / 2}
}

// Tick advances the simulation by dt under the given input intent and
// returns the resulting snapshot. Outside PhaseRunning nothing moves:
// entities and timers freeze until unpause or restart.
func (g *Game) Tick(dt time.Duration, in input.Intent) Result {
	g.events = g.events[:0]

	seconds := dt.Seconds()
	if seconds < 0 {
		seconds = 0
	}

	switch g.phase {
	case PhasePaused:
		if in.Pressed(input.TogglePause) {
			g.phase = PhaseRunning
		}
	case PhaseGameOver:
		if in.Pressed(input.Restart) {
			g.start()
		}
	case PhaseRunning:
		if in.Pressed(input.TogglePause) {
			g.phase = PhasePaused
			break
		}
		g.advance(seconds, in)
	}

	return g.snapshot()
}

// advance runs one Running-phase simulation step.
func (g *Game) advance(dt float64, in input.Intent) {
	g.elapsed += dt

	g.applyIntent(dt, in)

	g.ship.Update(dt, g.bounds)
	for _, a := range g.asteroids {
		a.Update(dt, g.bounds)
	}
	for _, p := range g.shots {
		p.Update(dt, g.bounds)
	}
	for _, e := range g.explosions {
		e.Update(dt, g.bounds)
	}

	g.resolveCollisions()

	g.spawner.update(&g.cfg, dt, g.elapsed, g.rng, func(a *entity.Asteroid) {
		g.pending = append(g.pending, a)
	})

	g.flushPending()
	g.prune()
}

// applyIntent feeds the tick's input to the ship and the bomb.
func (g *Game) applyIntent(dt float64, in input.Intent) {
	if g.bombCooldown > 0 {
		g.bombCooldown -= dt
		if g.bombCooldown < 0 {
			g.bombCooldown = 0
		}
	}

	if in.Held(input.TurnLeft) {
		g.ship.Rotate(-1, dt)
	}
	if in.Held(input.TurnRight) {
		g.ship.Rotate(1, dt)
	}
	if in.Held(input.ThrustForward) {
		g.ship.Thrust(1, dt)
	}
	if in.Held(input.ThrustBackward) {
		g.ship.Thrust(-1, dt)
	}

	if in.Held(input.Fire) {
		if p := g.ship.Fire(); p != nil {
			g.shots = append(g.shots, p)
			g.emit(Event{Kind: EventShotFired, Pos: p.Pos()})
		}
	}

	if in.Pressed(input.DropBomb) && g.bombCooldown <= 0 {
		g.detonateBomb()
	}
}

// detonateBomb destroys or splits every asteroid inside the blast radius
// around the ship and starts the bomb cooldown.
func (g *Game) detonateBomb() {
	g.bombCooldown = g.cfg.BombCooldown
	g.emit(Event{Kind: EventBombDetonated, Pos: g.ship.Pos()})

	for _, a := range g.asteroids {
		if !a.Alive() {
			continue
		}
		if physics.CirclesOverlap(g.ship.Pos(), g.cfg.BombRadius, a.Pos(), a.Radius()) {
			g.destroyAsteroid(a, true)
		}
	}
}

// destroyAsteroid kills a, scores it, spawns its explosion, and (when
// split is true and the tier allows) queues two child fragments.
func (g *Game) destroyAsteroid(a *entity.Asteroid, split bool) {
	a.Kill()

	points := g.cfg.TierScores[a.Tier]
	g.score += points
	g.emit(Event{Kind: EventAsteroidDestroyed, Pos: a.Pos(), Tier: a.Tier, Points: points})

	g.explosions = append(g.explosions, entity.NewExplosion(a.Pos(), a.Radius(), explosionSeconds))
	g.emit(Event{Kind: EventExplosionSpawned, Pos: a.Pos()})

	if split {
		if children := a.Split(g.cfg, g.rng); children != nil {
			g.pending = append(g.pending, children...)
			g.emit(Event{Kind: EventAsteroidSplit, Pos: a.Pos(), Tier: a.Tier})
		}
	}
}

// shipHit handles a fatal ship-asteroid collision: the asteroid shatters
// without children, a life is lost, and the ship either respawns at the
// center or the game ends.
func (g *Game) shipHit(a *entity.Asteroid) {
	a.Kill()
	g.explosions = append(g.explosions, entity.NewExplosion(a.Pos(), a.Radius(), explosionSeconds))
	g.emit(Event{Kind: EventExplosionSpawned, Pos: a.Pos()})
	g.explosions = append(g.explosions, entity.NewExplosion(g.ship.Pos(), g.ship.Radius(), explosionSeconds))
	g.emit(Event{Kind: EventExplosionSpawned, Pos: g.ship.Pos()})

	g.lives--
	g.emit(Event{Kind: EventLifeLost, Pos: g.ship.Pos()})

	if g.lives <= 0 {
		g.ship.Kill()
		g.phase = PhaseGameOver
		g.emit(Event{Kind: EventGameOver})
		return
	}

	g.ship.Respawn(g.center(), g.cfg.InvulnSeconds)
}

// flushPending joins queued asteroids into the live set.
func (g *Game) flushPending() {
	g.asteroids = append(g.asteroids, g.pending...)
	g.pending = g.pending[:0]
}

// prune drops dead entities. Order within each collection is preserved so
// collision iteration stays deterministic.
func (g *Game) prune() {
	asteroids := g.asteroids[:0]
	for _, a := range g.asteroids {
		if a.Alive() {
			asteroids = append(asteroids, a)
		}
	}
	g.asteroids = asteroids

	shots := g.shots[:0]
	for _, p := range g.shots {
		if p.Alive() {
			shots = append(shots, p)
		}
	}
	g.shots = shots

	explosions := g.explosions[:0]
	for _, e := range g.explosions {
		if e.Alive() {
			explosions = append(explosions, e)
		}
	}
	g.explosions = explosions
}

func (g *Game) emit(ev Event) {
	g.events = append(g.events, ev)
}

// snapshot builds the read-only tick result.
func (g *Game) snapshot() Result {
	entities := make([]Snapshot, 0, 1+len(g.asteroids)+len(g.shots)+len(g.explosions))

	if g.ship != nil && g.ship.Alive() {
		entities = append(entities, Snapshot{
			Kind:            entity.KindShip,
			Pos:             g.ship.Pos(),
			Heading:         g.ship.Heading,
			Radius:          g.ship.Radius(),
			InvulnRemaining: g.ship.InvulnRemaining(),
		})
	}
	for _, a := range g.asteroids {
		if !a.Alive() {
			continue
		}
		entities = append(entities, Snapshot{
			Kind:   entity.KindAsteroid,
			Pos:    a.Pos(),
			Radius: a.Radius(),
			Tier:   a.Tier,
		})
	}
	for _, p := range g.shots {
		if !p.Alive() {
			continue
		}
		entities = append(entities, Snapshot{
			Kind:    entity.KindProjectile,
			Pos:     p.Pos(),
			Heading: p.Velocity.Angle(),
			Radius:  p.Radius(),
		})
	}
	for _, e := range g.explosions {
		if !e.Alive() {
			continue
		}
		entities = append(entities, Snapshot{
			Kind:     entity.KindExplosion,
			Pos:      e.Pos(),
			Radius:   e.Radius(),
			Progress: e.Progress(),
		})
	}

	return Result{
		Phase:    g.phase,
		Score:    g.score,
		Lives:    g.lives,
		Elapsed:  g.elapsed,
		Entities: entities,
		Events:   append([]Event(nil), g.events...),
	}
}
