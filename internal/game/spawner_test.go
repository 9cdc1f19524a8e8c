package game

import (
	"math/rand"
	"testing"

	"github.com/astratt/vectoroids/internal/config"
	"github.com/astratt/vectoroids/internal/entity"
)

func TestSpawnIntervalDecaysToFloor(t *testing.T) {
	cfg := config.Default()
	cfg.SpawnInterval = 2
	cfg.SpawnIntervalDecay = 0.01
	cfg.SpawnIntervalMin = 0.5

	var s spawner
	if got := s.interval(&cfg, 0); got != 2 {
		t.Errorf("interval at t=0 = %g, want 2", got)
	}
	if got := s.interval(&cfg, 100); got != 1 {
		t.Errorf("interval at t=100 = %g, want 1", got)
	}
	if got := s.interval(&cfg, 1e6); got != 0.5 {
		t.Errorf("interval at large t = %g, want floor 0.5", got)
	}
}

func TestSpawnAccumulatorKeepsRemainder(t *testing.T) {
	cfg := config.Default()
	cfg.SpawnInterval = 1
	cfg.SpawnIntervalDecay = 0
	cfg.SpawnIntervalMin = 1

	var s spawner
	rng := rand.New(rand.NewSource(1))
	spawned := 0
	emit := func(*entity.Asteroid) { spawned++ }

	// 2.5 intervals in one update: two spawns, half an interval banked.
	s.update(&cfg, 2.5, 0, rng, emit)
	if spawned != 2 {
		t.Fatalf("spawns after 2.5s = %d, want 2", spawned)
	}

	// The banked half carries over.
	s.update(&cfg, 0.5, 0, rng, emit)
	if spawned != 3 {
		t.Errorf("spawns after another 0.5s = %d, want 3", spawned)
	}
}

func TestSpawnedAsteroidsStartAtEdges(t *testing.T) {
	cfg := config.Default()
	var s spawner
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 50; i++ {
		a := s.spawnAtEdge(&cfg, rng)

		pos := a.Pos()
		onEdge := pos.X == 0 || pos.X == cfg.ScreenWidth-1 ||
			pos.Y == 0 || pos.Y == cfg.ScreenHeight-1
		if !onEdge {
			t.Errorf("spawn %d at %v, not on a screen edge", i, pos)
		}

		speed := a.Velocity.Len()
		if speed < cfg.AsteroidMinSpeed || speed > cfg.AsteroidMaxSpeed {
			t.Errorf("spawn %d speed = %g, want within [%g, %g]",
				i, speed, cfg.AsteroidMinSpeed, cfg.AsteroidMaxSpeed)
		}
	}
}
