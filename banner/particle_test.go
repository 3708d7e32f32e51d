package banner

import (
	"testing"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/spatial/r2"
)

func TestSeedRanges(t *testing.T) {
	cfg := DefaultConfig()
	vp := Viewport{Width: 800, Height: 600}
	particles := Seed(rand.New(rand.NewSource(7)), cfg, vp)

	if len(particles) != cfg.ParticleCount {
		t.Fatalf("Seed produced %d particles, want %d", len(particles), cfg.ParticleCount)
	}
	for i, p := range particles {
		if p.Pos.X < 0 || p.Pos.X >= vp.Width || p.Pos.Y < 0 || p.Pos.Y >= vp.Height {
			t.Errorf("particle %d position %v outside viewport", i, p.Pos)
		}
		if p.Vel.X < -cfg.MaxSpeed || p.Vel.X >= cfg.MaxSpeed || p.Vel.Y < -cfg.MaxSpeed || p.Vel.Y >= cfg.MaxSpeed {
			t.Errorf("particle %d velocity %v outside ±%v", i, p.Vel, cfg.MaxSpeed)
		}
		if p.Radius < cfg.RadiusMin || p.Radius >= cfg.RadiusMax {
			t.Errorf("particle %d radius %v outside [%v, %v)", i, p.Radius, cfg.RadiusMin, cfg.RadiusMax)
		}
		if p.Opacity < cfg.OpacityMin || p.Opacity >= cfg.OpacityMax {
			t.Errorf("particle %d opacity %v outside [%v, %v)", i, p.Opacity, cfg.OpacityMin, cfg.OpacityMax)
		}
	}
}

func TestSeedReproducible(t *testing.T) {
	cfg := DefaultConfig()
	vp := Viewport{Width: 1024, Height: 768}
	a := Seed(rand.New(rand.NewSource(42)), cfg, vp)
	b := Seed(rand.New(rand.NewSource(42)), cfg, vp)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("particle %d differs between identical seeds: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestStepStaysInBounds(t *testing.T) {
	cfg := DefaultConfig()
	vp := Viewport{Width: 320, Height: 200}
	particles := Seed(rand.New(rand.NewSource(3)), cfg, vp)
	tolerance := cfg.MaxSpeed

	for tick := 0; tick < 20000; tick++ {
		Step(particles, vp)
		for i, p := range particles {
			if p.Pos.X < -tolerance || p.Pos.X > vp.Width+tolerance ||
				p.Pos.Y < -tolerance || p.Pos.Y > vp.Height+tolerance {
				t.Fatalf("tick %d: particle %d at %v escaped %vx%v", tick, i, p.Pos, vp.Width, vp.Height)
			}
		}
	}
	if len(particles) != cfg.ParticleCount {
		t.Fatalf("particle count changed to %d", len(particles))
	}
}

func TestStepReflectsCrossedAxisOnly(t *testing.T) {
	vp := Viewport{Width: 100, Height: 100}

	tests := []struct {
		name    string
		pos     r2.Vec
		vel     r2.Vec
		wantVel r2.Vec
	}{
		{"right edge", r2.Vec{X: 99.9, Y: 50}, r2.Vec{X: 0.2, Y: 0.1}, r2.Vec{X: -0.2, Y: 0.1}},
		{"left edge", r2.Vec{X: 0.1, Y: 50}, r2.Vec{X: -0.2, Y: -0.1}, r2.Vec{X: 0.2, Y: -0.1}},
		{"bottom edge", r2.Vec{X: 50, Y: 99.95}, r2.Vec{X: -0.1, Y: 0.25}, r2.Vec{X: -0.1, Y: -0.25}},
		{"top edge", r2.Vec{X: 50, Y: 0.05}, r2.Vec{X: 0.1, Y: -0.25}, r2.Vec{X: 0.1, Y: 0.25}},
		{"corner", r2.Vec{X: 99.9, Y: 0.1}, r2.Vec{X: 0.2, Y: -0.2}, r2.Vec{X: -0.2, Y: 0.2}},
		{"interior", r2.Vec{X: 50, Y: 50}, r2.Vec{X: 0.2, Y: -0.2}, r2.Vec{X: 0.2, Y: -0.2}},
		{"exactly on bound", r2.Vec{X: 99.5, Y: 50}, r2.Vec{X: 0.5, Y: 0}, r2.Vec{X: 0.5, Y: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			particles := []Particle{{Pos: tt.pos, Vel: tt.vel, Radius: 1, Opacity: 0.5}}
			Step(particles, vp)

			got := particles[0]
			want := r2.Add(tt.pos, tt.vel)
			if got.Pos != want {
				t.Errorf("position = %v, want %v (no repositioning)", got.Pos, want)
			}
			if got.Vel != tt.wantVel {
				t.Errorf("velocity = %v, want %v", got.Vel, tt.wantVel)
			}
		})
	}
}

func TestStepShrunkViewportHeadsBackInside(t *testing.T) {
	vp := Viewport{Width: 800, Height: 600}
	particles := []Particle{{Pos: r2.Vec{X: 1500, Y: 300}, Vel: r2.Vec{X: 0.25, Y: 0}}}

	Step(particles, vp)
	if particles[0].Vel.X != -0.25 {
		t.Fatalf("velocity = %v, want reflection toward the viewport", particles[0].Vel)
	}

	// Still outside, but moving inward: no further flips
	for i := 0; i < 10; i++ {
		Step(particles, vp)
		if particles[0].Vel.X != -0.25 {
			t.Fatalf("step %d: velocity flipped back to %v while returning", i, particles[0].Vel)
		}
	}
}
