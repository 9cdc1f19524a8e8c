package entity

import (
	"math"
	"math/rand"
	"testing"

	"github.com/astratt/vectoroids/internal/config"
	"github.com/astratt/vectoroids/internal/geom"
)

var testBounds = Bounds{W: 1280, H: 720}

func TestBodyAdvanceWraps(t *testing.T) {
	b := Body{Position: geom.Vec2{X: 1275, Y: 10}, Velocity: geom.Vec2{X: 100, Y: 0}}
	b.advance(0.1, testBounds)
	if b.Position.X < 0 || b.Position.X >= testBounds.W {
		t.Errorf("x = %g, not wrapped into [0,%g)", b.Position.X, testBounds.W)
	}
	if math.Abs(b.Position.X-5) > 1e-9 {
		t.Errorf("x = %g, want 5", b.Position.X)
	}
}

func TestShipThrustAndClamp(t *testing.T) {
	cfg := config.Default()
	s := NewShip(cfg, geom.Vec2{X: 100, Y: 100})

	// Thrust hard for a long while; speed must never exceed the cap.
	for i := 0; i < 600; i++ {
		s.Thrust(1, 1.0/60)
		s.Update(1.0/60, testBounds)
	}
	if speed := s.Velocity.Len(); speed > cfg.ShipMaxSpeed+1e-6 {
		t.Errorf("speed %g exceeds max %g", speed, cfg.ShipMaxSpeed)
	}
}

func TestShipDampingWhenCoasting(t *testing.T) {
	cfg := config.Default()
	s := NewShip(cfg, geom.Vec2{X: 100, Y: 100})
	s.Velocity = geom.Vec2{X: 100, Y: 0}

	s.Update(1.0, testBounds)
	if got := s.Velocity.Len(); math.Abs(got-100*cfg.ShipDamping) > 1e-6 {
		t.Errorf("speed after 1s coast = %g, want %g", got, 100*cfg.ShipDamping)
	}
}

func TestShipReverseWeaker(t *testing.T) {
	cfg := config.Default()
	fwd := NewShip(cfg, geom.Vec2{})
	rev := NewShip(cfg, geom.Vec2{})

	fwd.Thrust(1, 0.1)
	rev.Thrust(-1, 0.1)

	if f, r := fwd.Velocity.Len(), rev.Velocity.Len(); math.Abs(r-f*cfg.ShipReverseFactor) > 1e-9 {
		t.Errorf("reverse speed %g, want %g", r, f*cfg.ShipReverseFactor)
	}
}

func TestShipFireCooldown(t *testing.T) {
	cfg := config.Default()
	s := NewShip(cfg, geom.Vec2{X: 100, Y: 100})

	p := s.Fire()
	if p == nil {
		t.Fatal("first shot must succeed")
	}
	if s.Fire() != nil {
		t.Error("second immediate shot must be blocked by cooldown")
	}

	// After the cooldown has fully elapsed, firing works again.
	s.Update(cfg.ShotCooldown+0.01, testBounds)
	if s.Fire() == nil {
		t.Error("shot after cooldown elapsed must succeed")
	}
}

func TestShipFireInheritsVelocity(t *testing.T) {
	cfg := config.Default()
	s := NewShip(cfg, geom.Vec2{X: 100, Y: 100})
	s.Velocity = geom.Vec2{X: 50, Y: 0}
	s.Heading = 0 // pointing right

	p := s.Fire()
	if p == nil {
		t.Fatal("Fire returned nil")
	}
	want := cfg.ShotSpeed + 50
	if math.Abs(p.Velocity.X-want) > 1e-9 || math.Abs(p.Velocity.Y) > 1e-9 {
		t.Errorf("projectile velocity = %v, want {%g 0}", p.Velocity, want)
	}
	if p.Radius() != cfg.ShotRadius {
		t.Errorf("projectile radius = %g, want %g", p.Radius(), cfg.ShotRadius)
	}
}

func TestShipInvulnerabilityWindow(t *testing.T) {
	cfg := config.Default()
	s := NewShip(cfg, geom.Vec2{})
	if !s.Invulnerable() {
		t.Fatal("fresh ship must start invulnerable")
	}

	s.Update(cfg.InvulnSeconds+0.01, testBounds)
	if s.Invulnerable() {
		t.Error("ship still invulnerable after window elapsed")
	}
}

func TestShipRespawn(t *testing.T) {
	cfg := config.Default()
	s := NewShip(cfg, geom.Vec2{X: 10, Y: 10})
	s.Velocity = geom.Vec2{X: 99, Y: 99}
	s.Kill()

	center := geom.Vec2{X: 640, Y: 360}
	s.Respawn(center, cfg.InvulnSeconds)

	if !s.Alive() {
		t.Error("respawned ship must be alive")
	}
	if s.Pos() != center {
		t.Errorf("respawn position = %v, want %v", s.Pos(), center)
	}
	if s.Velocity != (geom.Vec2{}) {
		t.Errorf("respawn velocity = %v, want zero", s.Velocity)
	}
	if !s.Invulnerable() {
		t.Error("respawned ship must be invulnerable")
	}
}

func TestAsteroidSplitTiers(t *testing.T) {
	cfg := config.Default()
	rng := rand.New(rand.NewSource(1))

	large := NewAsteroid(cfg, geom.Vec2{X: 100, Y: 100}, geom.Vec2{X: 30, Y: 0}, TierLarge)
	children := large.Split(cfg, rng)
	if len(children) != 2 {
		t.Fatalf("large split yielded %d children, want 2", len(children))
	}
	for _, c := range children {
		if c.Tier != TierMedium {
			t.Errorf("child tier = %v, want medium", c.Tier)
		}
		if c.Radius() != cfg.TierRadii[TierMedium] {
			t.Errorf("child radius = %g, want %g", c.Radius(), cfg.TierRadii[TierMedium])
		}
		if c.Pos() != large.Pos() {
			t.Errorf("child position = %v, want parent position %v", c.Pos(), large.Pos())
		}
	}

	// Fragment velocities diverge from each other.
	if children[0].Velocity == children[1].Velocity {
		t.Error("split children share the same velocity")
	}

	small := NewAsteroid(cfg, geom.Vec2{X: 1, Y: 1}, geom.Vec2{}, TierSmall)
	if got := small.Split(cfg, rng); got != nil {
		t.Errorf("smallest tier split yielded %d children, want none", len(got))
	}
}

func TestProjectileLifetime(t *testing.T) {
	cfg := config.Default()
	s := NewShip(cfg, geom.Vec2{X: 100, Y: 100})
	p := s.Fire()
	if p == nil {
		t.Fatal("Fire returned nil")
	}

	p.Update(cfg.ShotLifetime/2, testBounds)
	if !p.Alive() {
		t.Fatal("projectile died before its lifetime elapsed")
	}

	p.Update(cfg.ShotLifetime, testBounds)
	if p.Alive() {
		t.Error("projectile still alive after lifetime elapsed")
	}
}

func TestExplosionGrowsAndExpires(t *testing.T) {
	e := NewExplosion(geom.Vec2{X: 5, Y: 5}, 20, 0.5)

	if e.Radius() != 0 {
		t.Errorf("initial radius = %g, want 0", e.Radius())
	}

	e.Update(0.25, testBounds)
	mid := e.Radius()
	if mid <= 0 {
		t.Error("explosion radius did not grow")
	}
	if !e.Alive() {
		t.Fatal("explosion died at half lifetime")
	}

	e.Update(0.25, testBounds)
	if e.Alive() {
		t.Error("explosion still alive after lifetime elapsed")
	}
	if e.Radius() < mid {
		t.Error("explosion radius shrank over time")
	}
}

func TestKindString(t *testing.T) {
	if KindAsteroid.String() != "asteroid" || KindShip.String() != "ship" {
		t.Error("Kind.String returned unexpected names")
	}
}
