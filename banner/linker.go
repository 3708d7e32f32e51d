package banner

import (
	"iter"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Edge is a per-frame proximity link between two particles
type Edge struct {
	From, To int    // particle indices, From < To
	A, B     r2.Vec // endpoint positions at evaluation time
	Distance float64
	Opacity  float64
}

// Linker finds nearby particle pairs. Only every Stride-th particle acts as
// a source and each source stops after MaxPerSource edges, taking the first
// ones found in index order.
type Linker struct {
	Threshold    float64
	MaxPerSource int
	Stride       int
	Alpha        float64
}

// NewLinker creates a linker from the configuration
func NewLinker(cfg Config) Linker {
	return Linker{
		Threshold:    cfg.ConnectionDistance,
		MaxPerSource: cfg.MaxConnections,
		Stride:       cfg.SourceStride,
		Alpha:        cfg.EdgeAlpha,
	}
}

// Links returns the edges of the current particle set, lazily and in a
// deterministic order: by source index, then by target index.
func (l Linker) Links(particles []Particle) iter.Seq[Edge] {
	stride := max(l.Stride, 1)
	thresholdSq := l.Threshold * l.Threshold

	return func(yield func(Edge) bool) {
		for i := 0; i < len(particles); i += stride {
			src := particles[i].Pos
			connections := 0
			for j := i + 1; j < len(particles) && connections < l.MaxPerSource; j++ {
				dst := particles[j].Pos
				distSq := r2.Norm2(r2.Sub(dst, src))
				if distSq >= thresholdSq {
					continue
				}

				distance := math.Sqrt(distSq)
				edge := Edge{
					From:     i,
					To:       j,
					A:        src,
					B:        dst,
					Distance: distance,
					Opacity:  EdgeOpacity(distance, l.Threshold, l.Alpha),
				}
				if !yield(edge) {
					return
				}
				connections++
			}
		}
	}
}

// EdgeOpacity fades linearly from alpha at distance zero to 0 at threshold
func EdgeOpacity(distance, threshold, alpha float64) float64 {
	if threshold <= 0 || distance >= threshold {
		return 0
	}
	if distance < 0 {
		distance = 0
	}
	return (1 - distance/threshold) * alpha
}
