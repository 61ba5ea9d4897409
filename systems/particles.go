package systems

import (
	"math"
	"math/rand"

	"github.com/yohamta/donburi/ecs"

	"github.com/pixeldrift/cartdash/components"
	cfg "github.com/pixeldrift/cartdash/config"
)

// SpawnBurst emits a radial burst of particles at (x, y). The pool is
// hard-capped; spawning past the cap evicts the oldest live particles.
func SpawnBurst(e *ecs.ECS, kind cfg.ParticleKind, x, y float64) {
	entry, ok := components.Particles.First(e.World)
	if !ok {
		return
	}
	particles := components.Particles.Get(entry)

	burst := burstFor(kind)
	for i := 0; i < burst.Count; i++ {
		angle := rand.Float64() * 2 * math.Pi
		speed := burst.Speed * (0.4 + rand.Float64()*0.6)
		p := components.Particle{
			X: x, Y: y,
			VX:      math.Cos(angle) * speed,
			VY:      math.Sin(angle) * speed,
			Life:    burst.Life + rand.Intn(burst.Life/2+1),
			Size:    burst.Size * (0.6 + rand.Float64()*0.8),
			Kind:    kind,
			Color:   burst.BaseTint,
			Gravity: burst.Gravity,
		}
		p.MaxLife = p.Life
		particles.Pool = append(particles.Pool, p)
	}

	if over := len(particles.Pool) - cfg.Particle.MaxLive; over > 0 {
		particles.Pool = particles.Pool[over:]
	}
}

// SpawnPickupBurst emits the collection sparkle. Pickup bursts reuse the
// spark visual but with their own tuning.
func SpawnPickupBurst(e *ecs.ECS, x, y float64) {
	entry, ok := components.Particles.First(e.World)
	if !ok {
		return
	}
	particles := components.Particles.Get(entry)

	burst := cfg.Particle.Pickup
	for i := 0; i < burst.Count; i++ {
		angle := rand.Float64() * 2 * math.Pi
		speed := burst.Speed * (0.4 + rand.Float64()*0.6)
		p := components.Particle{
			X: x, Y: y,
			VX:      math.Cos(angle) * speed,
			VY:      math.Sin(angle)*speed - 1.0,
			Life:    burst.Life + rand.Intn(burst.Life/2+1),
			Size:    burst.Size * (0.6 + rand.Float64()*0.8),
			Kind:    cfg.ParticleSpark,
			Color:   burst.BaseTint,
			Gravity: burst.Gravity,
		}
		p.MaxLife = p.Life
		particles.Pool = append(particles.Pool, p)
	}

	if over := len(particles.Pool) - cfg.Particle.MaxLive; over > 0 {
		particles.Pool = particles.Pool[over:]
	}
}

// UpdateParticles integrates every live particle and drops the expired
// ones, preserving spawn order.
func UpdateParticles(e *ecs.ECS) {
	entry, ok := components.Particles.First(e.World)
	if !ok {
		return
	}
	particles := components.Particles.Get(entry)

	alive := particles.Pool[:0]
	for i := range particles.Pool {
		p := &particles.Pool[i]
		p.VY += p.Gravity
		p.X += p.VX
		p.Y += p.VY
		p.Life--
		if p.Life > 0 {
			alive = append(alive, *p)
		}
	}
	particles.Pool = alive
}

func burstFor(kind cfg.ParticleKind) cfg.ParticleBurst {
	switch kind {
	case cfg.ParticleDust:
		return cfg.Particle.Dust
	case cfg.ParticleExplosion:
		return cfg.Particle.Explosion
	default:
		return cfg.Particle.Spark
	}
}
