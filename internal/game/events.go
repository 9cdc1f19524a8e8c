package game

import (
	"github.com/astratt/vectoroids/internal/entity"
	"github.com/astratt/vectoroids/internal/geom"
)

// EventKind identifies something that happened during a tick.
type EventKind int

const (
	EventAsteroidDestroyed EventKind = iota
	EventAsteroidSplit
	EventExplosionSpawned
	EventShotFired
	EventBombDetonated
	EventLifeLost
	EventGameOver
)

// String returns the event name.
func (k EventKind) String() string {
	switch k {
	case EventAsteroidDestroyed:
		return "asteroid-destroyed"
	case EventAsteroidSplit:
		return "asteroid-split"
	case EventExplosionSpawned:
		return "explosion-spawned"
	case EventShotFired:
		return "shot-fired"
	case EventBombDetonated:
		return "bomb-detonated"
	case EventLifeLost:
		return "life-lost"
	case EventGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// Event is a notification for the presentation shell (sound cues, score
// popups). Events never carry entity references; the snapshot is the only
// view into live state.
type Event struct {
	Kind   EventKind
	Pos    geom.Vec2
	Tier   entity.Tier // tier of the destroyed asteroid, when relevant
	Points int         // score awarded by this event, when relevant
}

// Snapshot is a read-only view of one alive entity.
type Snapshot struct {
	Kind    entity.Kind
	Pos     geom.Vec2
	Heading float64
	Radius  float64
	Tier    entity.Tier

	// Ship only: seconds of invulnerability left, for the blink effect.
	InvulnRemaining float64
	// Explosion only: lifetime progress in [0,1], for fade effects.
	Progress float64
}

// Result is what one call to Tick hands the presentation shell.
type Result struct {
	Phase    Phase
	Score    int
	Lives    int
	Elapsed  float64 // seconds of play time in the current run
	Entities []Snapshot
	Events   []Event
}
