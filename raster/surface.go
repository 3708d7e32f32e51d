package raster

import (
	"image"
	"image/color"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/draw"
	"golang.org/x/image/math/fixed"
)

// Surface is an in-memory RGBA canvas drawn with rasterx. The background
// is transparent; Compose puts the page color behind it.
type Surface struct {
	img     *image.RGBA
	scanner *rasterx.ScannerGV
	filler  *rasterx.Filler
	stroker *rasterx.Stroker
}

// NewSurface creates a transparent surface of the given size
func NewSurface(width, height int) *Surface {
	s := &Surface{}
	s.SetSize(width, height)
	return s
}

// Image returns the backing image
func (s *Surface) Image() *image.RGBA {
	return s.img
}

// Valid reports whether the surface can be drawn on
func (s *Surface) Valid() bool {
	return s != nil && s.img != nil
}

// Size returns the surface dimensions
func (s *Surface) Size() (int, int) {
	b := s.img.Bounds()
	return b.Dx(), b.Dy()
}

// SetSize reallocates the backing image, discarding its content
func (s *Surface) SetSize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	s.img = image.NewRGBA(image.Rect(0, 0, width, height))
	s.scanner = rasterx.NewScannerGV(width, height, s.img, s.img.Bounds())
	s.filler = rasterx.NewFiller(width, height, s.scanner)
	s.stroker = rasterx.NewStroker(width, height, s.scanner)
}

// Clear makes every pixel transparent
func (s *Surface) Clear() {
	draw.Draw(s.img, s.img.Bounds(), image.Transparent, image.Point{}, draw.Src)
}

// FillCircle draws an antialiased filled circle
func (s *Surface) FillCircle(cx, cy, radius float64, clr color.NRGBA) {
	if s.empty() || radius <= 0 {
		return
	}
	s.filler.Clear()
	rasterx.AddCircle(cx, cy, radius, s.filler)
	s.filler.SetColor(clr)
	s.filler.Draw()
}

// StrokeLine draws an antialiased line segment with butt caps
func (s *Surface) StrokeLine(x0, y0, x1, y1, width float64, clr color.NRGBA) {
	if s.empty() || width <= 0 {
		return
	}
	s.stroker.Clear()
	s.stroker.SetStroke(fixed.Int26_6(width*64), 4<<6, rasterx.ButtCap, nil, rasterx.FlatGap, rasterx.Round)
	s.stroker.Start(rasterx.ToFixedP(x0, y0))
	s.stroker.Line(rasterx.ToFixedP(x1, y1))
	s.stroker.Stop(false)
	s.stroker.SetColor(clr)
	s.stroker.Draw()
}

func (s *Surface) empty() bool {
	b := s.img.Bounds()
	return b.Dx() == 0 || b.Dy() == 0
}
