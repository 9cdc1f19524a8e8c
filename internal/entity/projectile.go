package entity

// Projectile is a shot fired by the ship. It dies on impact or when its
// lifetime runs out.
type Projectile struct {
	Body
	ttl float64
}

// TTL returns the seconds of flight time remaining.
func (p *Projectile) TTL() float64 { return p.ttl }

// Update advances the projectile and expires it when its lifetime elapses.
func (p *Projectile) Update(dt float64, bounds Bounds) {
	p.ttl -= dt
	if p.ttl <= 0 {
		p.Kill()
		return
	}
	p.advance(dt, bounds)
}
