package banner

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/spatial/r2"
)

// Particle is one simulated point of the banner graph
type Particle struct {
	Pos     r2.Vec  // position in viewport pixels
	Vel     r2.Vec  // velocity in pixels per tick
	Radius  float64 // fixed at creation
	Opacity float64 // fixed at creation
}

// Seed creates cfg.ParticleCount particles spread over the viewport
func Seed(rng *rand.Rand, cfg Config, vp Viewport) []Particle {
	particles := make([]Particle, cfg.ParticleCount)
	for i := range particles {
		particles[i] = Particle{
			Pos: r2.Vec{
				X: rng.Float64() * vp.Width,
				Y: rng.Float64() * vp.Height,
			},
			Vel: r2.Vec{
				X: (rng.Float64() - 0.5) * 2 * cfg.MaxSpeed,
				Y: (rng.Float64() - 0.5) * 2 * cfg.MaxSpeed,
			},
			Radius:  cfg.RadiusMin + rng.Float64()*(cfg.RadiusMax-cfg.RadiusMin),
			Opacity: cfg.OpacityMin + rng.Float64()*(cfg.OpacityMax-cfg.OpacityMin),
		}
	}
	return particles
}

// Step advances every particle by one tick and reflects velocity at the
// viewport edges. A particle may overshoot a bound by at most one tick; it
// is never moved back inside.
func Step(particles []Particle, vp Viewport) {
	for i := range particles {
		p := &particles[i]
		p.Pos = r2.Add(p.Pos, p.Vel)
		p.Vel.X = reflect(p.Pos.X, p.Vel.X, vp.Width)
		p.Vel.Y = reflect(p.Pos.Y, p.Vel.Y, vp.Height)
	}
}

// reflect inverts v when pos lies outside [0, bound] and v still points
// away from the range. A particle left outside by a shrinking viewport
// keeps heading back in instead of flipping every tick.
func reflect(pos, v, bound float64) float64 {
	switch {
	case pos < 0 && v < 0:
		return -v
	case pos > bound && v > 0:
		return -v
	}
	return v
}
