package ebitenhost

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Surface is an offscreen ebiten image the animation draws onto
type Surface struct {
	canvas        *ebiten.Image
	width, height int
}

// NewSurface creates an empty surface; SetSize allocates the canvas
func NewSurface() *Surface {
	return &Surface{}
}

// Canvas returns the offscreen image, nil while the surface is empty
func (s *Surface) Canvas() *ebiten.Image {
	return s.canvas
}

// Valid reports whether the surface can be drawn on
func (s *Surface) Valid() bool {
	return s != nil
}

// Size returns the canvas dimensions
func (s *Surface) Size() (int, int) {
	return s.width, s.height
}

// SetSize reallocates the canvas
func (s *Surface) SetSize(width, height int) {
	if s.canvas != nil {
		s.canvas.Deallocate()
		s.canvas = nil
	}
	s.width, s.height = width, height
	if width > 0 && height > 0 {
		s.canvas = ebiten.NewImage(width, height)
	}
}

// Clear erases the canvas
func (s *Surface) Clear() {
	if s.canvas != nil {
		s.canvas.Clear()
	}
}

// FillCircle draws a filled circle
func (s *Surface) FillCircle(cx, cy, radius float64, clr color.NRGBA) {
	if s.canvas == nil {
		return
	}
	vector.DrawFilledCircle(s.canvas, float32(cx), float32(cy), float32(radius), clr, true)
}

// StrokeLine draws a line segment
func (s *Surface) StrokeLine(x0, y0, x1, y1, width float64, clr color.NRGBA) {
	if s.canvas == nil {
		return
	}
	vector.StrokeLine(s.canvas, float32(x0), float32(y0), float32(x1), float32(y1), float32(width), clr, true)
}
