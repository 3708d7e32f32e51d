package banner

import "iter"

// Renderer draws particles and edges onto a surface
type Renderer struct {
	config Config
}

// NewRenderer creates a new renderer
func NewRenderer(config Config) *Renderer {
	return &Renderer{
		config: config,
	}
}

// Render clears the surface and draws the particle set followed by its
// edges. It returns the number of edges drawn.
func (r *Renderer) Render(s Surface, particles []Particle, edges iter.Seq[Edge]) int {
	s.Clear()

	// Particles are solid fills
	for _, p := range particles {
		s.FillCircle(p.Pos.X, p.Pos.Y, p.Radius, WithAlpha(r.config.Color, p.Opacity))
	}

	// Edges are thin translucent strokes
	drawn := 0
	if edges != nil {
		for e := range edges {
			s.StrokeLine(e.A.X, e.A.Y, e.B.X, e.B.Y, r.config.LineWidth, WithAlpha(r.config.Color, e.Opacity))
			drawn++
		}
	}

	if p, ok := s.(Presenter); ok {
		p.Present()
	}
	return drawn
}
