package banner

import "image/color"

// Config holds the animation constants
type Config struct {
	// ParticleCount is the number of particles seeded at mount
	ParticleCount int

	// ConnectionDistance is the distance below which two particles are linked
	ConnectionDistance float64

	// MaxConnections caps the edges a single source particle contributes per frame
	MaxConnections int

	// SourceStride selects every Nth particle (by index) as an edge source
	SourceStride int

	// FrameSkip runs the pipeline on one out of every FrameSkip host frames
	FrameSkip int

	// MaxSpeed bounds the initial velocity on each axis (units per tick)
	MaxSpeed float64

	// RadiusMin and RadiusMax bound the particle radius, max exclusive
	RadiusMin float64
	RadiusMax float64

	// OpacityMin and OpacityMax bound the particle opacity, max exclusive
	OpacityMin float64
	OpacityMax float64

	// Color is the base RGB for particles and edges; alpha is set per element
	Color color.NRGBA

	// EdgeAlpha is the edge opacity at distance zero
	EdgeAlpha float64

	// LineWidth is the edge stroke width in pixels
	LineWidth float64

	// CanvasOpacity is applied by hosts when compositing the canvas
	CanvasOpacity float64
}

// DefaultConfig returns the banner configuration
func DefaultConfig() Config {
	return Config{
		ParticleCount:      60,
		ConnectionDistance: 150.0,
		MaxConnections:     4,
		SourceStride:       5,
		FrameSkip:          2,
		MaxSpeed:           0.25,
		RadiusMin:          1.0,
		RadiusMax:          3.0,
		OpacityMin:         0.2,
		OpacityMax:         0.7,
		Color:              color.NRGBA{R: 192, G: 247, B: 72, A: 255},
		EdgeAlpha:          0.2,
		LineWidth:          0.5,
		CanvasOpacity:      0.6,
	}
}

// Background is the page color behind the banner canvas
var Background = color.NRGBA{R: 10, G: 10, B: 10, A: 255}

// WithAlpha returns c with its alpha replaced by opacity in [0, 1]
func WithAlpha(c color.NRGBA, opacity float64) color.NRGBA {
	if opacity < 0 {
		opacity = 0
	}
	if opacity > 1 {
		opacity = 1
	}
	c.A = uint8(opacity*255 + 0.5)
	return c
}
