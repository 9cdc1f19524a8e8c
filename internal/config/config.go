// Package config provides the game configuration.
//
// A Config is built once at startup (defaults, then an optional YAML file,
// then environment overrides), validated, and passed by value into the
// simulation. Nothing mutates it afterwards.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by all validation failures.
var ErrInvalid = errors.New("invalid configuration")

// NumTiers is the number of asteroid size tiers.
const NumTiers = 3

// Config holds every tunable game parameter. Tier-indexed arrays run from
// the smallest tier at index 0 to the largest at index NumTiers-1.
type Config struct {
	// World
	ScreenWidth  float64 `yaml:"screen_width"`
	ScreenHeight float64 `yaml:"screen_height"`
	TickRate     int     `yaml:"tick_rate"`
	Seed         int64   `yaml:"seed"`

	// Ship
	ShipRadius        float64 `yaml:"ship_radius"`
	ShipTurnRate      float64 `yaml:"ship_turn_rate"`      // radians/sec
	ShipThrust        float64 `yaml:"ship_thrust"`         // units/sec^2
	ShipReverseFactor float64 `yaml:"ship_reverse_factor"` // fraction of thrust
	ShipMaxSpeed      float64 `yaml:"ship_max_speed"`
	ShipDamping       float64 `yaml:"ship_damping"` // velocity kept per second when coasting

	// Shots
	ShotRadius   float64 `yaml:"shot_radius"`
	ShotSpeed    float64 `yaml:"shot_speed"`
	ShotLifetime float64 `yaml:"shot_lifetime"` // seconds
	ShotCooldown float64 `yaml:"shot_cooldown"` // seconds between shots

	// Asteroids
	TierRadii        [NumTiers]float64 `yaml:"tier_radii"`
	TierScores       [NumTiers]int     `yaml:"tier_scores"`
	AsteroidMinSpeed float64           `yaml:"asteroid_min_speed"`
	AsteroidMaxSpeed float64           `yaml:"asteroid_max_speed"`

	// Spawner
	SpawnInterval      float64 `yaml:"spawn_interval"`       // seconds between edge spawns
	SpawnIntervalDecay float64 `yaml:"spawn_interval_decay"` // seconds shaved off per second of play
	SpawnIntervalMin   float64 `yaml:"spawn_interval_min"`   // floor for the interval

	// Rules
	StartingLives int     `yaml:"starting_lives"`
	InvulnSeconds float64 `yaml:"invuln_seconds"`

	// Bomb
	BombRadius   float64 `yaml:"bomb_radius"`
	BombCooldown float64 `yaml:"bomb_cooldown"`
}

// Default returns the standard game configuration.
func Default() Config {
	return Config{
		ScreenWidth:  1280,
		ScreenHeight: 720,
		TickRate:     60,
		Seed:         1,

		ShipRadius:        15,
		ShipTurnRate:      5.0,
		ShipThrust:        800,
		ShipReverseFactor: 0.5,
		ShipMaxSpeed:      600,
		ShipDamping:       0.5,

		ShotRadius:   3,
		ShotSpeed:    600,
		ShotLifetime: 2.0,
		ShotCooldown: 0.15,

		TierRadii:        [NumTiers]float64{20, 40, 60},
		TierScores:       [NumTiers]int{100, 50, 20},
		AsteroidMinSpeed: 30,
		AsteroidMaxSpeed: 120,

		SpawnInterval:      2.0,
		SpawnIntervalDecay: 0.01,
		SpawnIntervalMin:   0.5,

		StartingLives: 3,
		InvulnSeconds: 3.0,

		BombRadius:   150,
		BombCooldown: 3.0,
	}
}

// Load builds the effective configuration: defaults, then the YAML file at
// path (skipped when path is empty), then environment overrides. The result
// is validated before being returned.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			return Config{}, err
		}
	}
	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

// applyEnv overrides the fields commonly tuned per deployment.
func (c *Config) applyEnv() {
	envFloat("VECTOROIDS_SCREEN_WIDTH", &c.ScreenWidth)
	envFloat("VECTOROIDS_SCREEN_HEIGHT", &c.ScreenHeight)
	envInt("VECTOROIDS_TICK_RATE", &c.TickRate)
	envInt64("VECTOROIDS_SEED", &c.Seed)
	envInt("VECTOROIDS_LIVES", &c.StartingLives)
	envFloat("VECTOROIDS_SPAWN_INTERVAL", &c.SpawnInterval)
	envFloat("VECTOROIDS_INVULN_SECONDS", &c.InvulnSeconds)
}

// GetEnv returns the value of the environment variable named by the key,
// or fallback if the variable is not set.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func envFloat(key string, dst *float64) {
	if v, ok := os.LookupEnv(key); ok {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			*dst = f
		}
	}
}

func envInt(key string, dst *int) {
	if v, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

func envInt64(key string, dst *int64) {
	if v, ok := os.LookupEnv(key); ok {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			*dst = n
		}
	}
}

// Validate rejects configurations that would produce undefined physics.
// The game refuses to initialize on any error returned here.
func (c Config) Validate() error {
	if c.ScreenWidth <= 0 || c.ScreenHeight <= 0 {
		return fmt.Errorf("%w: screen dimensions %gx%g must be positive", ErrInvalid, c.ScreenWidth, c.ScreenHeight)
	}
	if c.TickRate <= 0 {
		return fmt.Errorf("%w: tick rate %d must be positive", ErrInvalid, c.TickRate)
	}
	if c.ShipRadius <= 0 {
		return fmt.Errorf("%w: ship radius %g must be positive", ErrInvalid, c.ShipRadius)
	}
	if c.ShipMaxSpeed <= 0 || c.ShipThrust <= 0 || c.ShipTurnRate <= 0 {
		return fmt.Errorf("%w: ship motion parameters must be positive", ErrInvalid)
	}
	if c.ShipDamping <= 0 || c.ShipDamping > 1 {
		return fmt.Errorf("%w: ship damping %g must be in (0,1]", ErrInvalid, c.ShipDamping)
	}
	if c.ShotRadius <= 0 || c.ShotSpeed <= 0 || c.ShotLifetime <= 0 {
		return fmt.Errorf("%w: shot parameters must be positive", ErrInvalid)
	}
	if c.ShotCooldown < 0 {
		return fmt.Errorf("%w: shot cooldown %g must not be negative", ErrInvalid, c.ShotCooldown)
	}
	prev := 0.0
	for i, r := range c.TierRadii {
		if r <= prev {
			return fmt.Errorf("%w: tier radii must be positive and strictly increasing, got %v", ErrInvalid, c.TierRadii)
		}
		prev = r
		if c.TierScores[i] <= 0 {
			return fmt.Errorf("%w: tier scores must be positive, got %v", ErrInvalid, c.TierScores)
		}
	}
	if c.AsteroidMinSpeed <= 0 || c.AsteroidMaxSpeed < c.AsteroidMinSpeed {
		return fmt.Errorf("%w: asteroid speed range [%g,%g]", ErrInvalid, c.AsteroidMinSpeed, c.AsteroidMaxSpeed)
	}
	if c.SpawnInterval <= 0 || c.SpawnIntervalMin <= 0 || c.SpawnIntervalMin > c.SpawnInterval {
		return fmt.Errorf("%w: spawn interval %g with floor %g", ErrInvalid, c.SpawnInterval, c.SpawnIntervalMin)
	}
	if c.SpawnIntervalDecay < 0 {
		return fmt.Errorf("%w: spawn interval decay %g must not be negative", ErrInvalid, c.SpawnIntervalDecay)
	}
	if c.StartingLives <= 0 {
		return fmt.Errorf("%w: starting lives %d must be positive", ErrInvalid, c.StartingLives)
	}
	if c.InvulnSeconds < 0 {
		return fmt.Errorf("%w: invulnerability %g must not be negative", ErrInvalid, c.InvulnSeconds)
	}
	if c.BombRadius <= 0 || c.BombCooldown < 0 {
		return fmt.Errorf("%w: bomb radius %g / cooldown %g", ErrInvalid, c.BombRadius, c.BombCooldown)
	}
	return nil
}
