package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/color/palette"
	"image/gif"
	"image/png"
	"io"

	"golang.org/x/image/draw"
)

// Film collects composed banner frames for export
type Film struct {
	Frames []*image.RGBA
	Delay  int // per frame, in 100ths of a second
}

// Capture composes the surface into a new frame and appends it
func (f *Film) Capture(s *Surface, overlay image.Image, opacity float64, background color.Color) *image.RGBA {
	frame := image.NewRGBA(s.Image().Bounds())
	Compose(frame, s.Image(), overlay, opacity, background)
	f.Frames = append(f.Frames, frame)
	return frame
}

// WriteGIF encodes the frames as a looping animated GIF
func (f *Film) WriteGIF(w io.Writer) error {
	if len(f.Frames) == 0 {
		return fmt.Errorf("no frames captured")
	}

	anim := &gif.GIF{
		Image:     make([]*image.Paletted, 0, len(f.Frames)),
		Delay:     make([]int, 0, len(f.Frames)),
		LoopCount: 0,
	}
	for _, frame := range f.Frames {
		anim.Image = append(anim.Image, toPaletted(frame))
		anim.Delay = append(anim.Delay, f.Delay)
	}

	if err := gif.EncodeAll(w, anim); err != nil {
		return fmt.Errorf("error encoding GIF: %w", err)
	}
	return nil
}

// WritePNG encodes the last frame
func (f *Film) WritePNG(w io.Writer) error {
	if len(f.Frames) == 0 {
		return fmt.Errorf("no frames captured")
	}
	if err := png.Encode(w, f.Frames[len(f.Frames)-1]); err != nil {
		return fmt.Errorf("error encoding PNG: %w", err)
	}
	return nil
}

// toPaletted quantizes a frame to the Plan9 palette with error diffusion
func toPaletted(img *image.RGBA) *image.Paletted {
	bounds := img.Bounds()
	pal := image.NewPaletted(bounds, palette.Plan9)
	draw.FloydSteinberg.Draw(pal, bounds, img, bounds.Min)
	return pal
}
