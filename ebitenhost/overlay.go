package ebitenhost

import (
	"image"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"neuralbanner/raster"
)

// overlay keeps the banner gradient rasterized at the window size. The
// SVG is rasterized on the CPU when the size changes; the GPU image is
// created lazily from Draw.
type overlay struct {
	width, height int
	src           *image.RGBA
	img           *ebiten.Image
	failed        bool

	rasterize func(width, height int) (*image.RGBA, error)
}

func newOverlay() *overlay {
	return &overlay{rasterize: raster.Overlay}
}

// update re-rasterizes for a new size and reports whether it did
func (o *overlay) update(width, height int) bool {
	if o.failed || width <= 0 || height <= 0 || (width == o.width && height == o.height) {
		return false
	}
	src, err := o.rasterize(width, height)
	if err != nil {
		log.Printf("overlay disabled: %v", err)
		o.failed = true
		return false
	}

	o.width, o.height = width, height
	o.src = src
	if o.img != nil {
		o.img.Deallocate()
		o.img = nil
	}
	return true
}

// image returns the GPU copy of the overlay, nil before the first update
func (o *overlay) image() *ebiten.Image {
	if o.img == nil && o.src != nil {
		o.img = ebiten.NewImageFromImage(o.src)
	}
	return o.img
}
