package game

import "github.com/astratt/vectoroids/internal/physics"

// resolveCollisions runs the per-tick collision pass. Allowed pairs are
// projectile-asteroid and ship-asteroid; shots never hit the ship.
//
// First hit wins: an entity killed earlier in the pass is skipped by every
// later check, so one asteroid can never pay out against two shots and a
// shot never destroys two asteroids. The spatial grid is only a broad
// phase; it changes which pairs are examined, not which collide.
func (g *Game) resolveCollisions() {
	g.grid.Clear()
	for i, a := range g.asteroids {
		if a.Alive() {
			g.grid.Insert(a.Pos(), i)
		}
	}

	for _, p := range g.shots {
		if !p.Alive() {
			continue
		}
		g.grid.QueryAround(p.Pos(), func(idx int) bool {
			a := g.asteroids[idx]
			if !a.Alive() {
				return false
			}
			if !physics.CirclesOverlap(p.Pos(), p.Radius(), a.Pos(), a.Radius()) {
				return false
			}
			p.Kill()
			g.destroyAsteroid(a, true)
			return true // shot is spent
		})
	}

	if g.ship.Alive() && !g.ship.Invulnerable() {
		g.grid.QueryAround(g.ship.Pos(), func(idx int) bool {
			a := g.asteroids[idx]
			if !a.Alive() {
				return false
			}
			if !physics.CirclesOverlap(g.ship.Pos(), g.ship.Radius(), a.Pos(), a.Radius()) {
				return false
			}
			g.shipHit(a)
			return true // one fatal hit per tick
		})
	}
}
