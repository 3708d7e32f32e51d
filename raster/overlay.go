package raster

import (
	"bytes"
	_ "embed"
	"fmt"
	"image"
	"image/color"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/draw"
)

// overlaySVG is the left-to-right fade laid over the banner canvas
//
//go:embed assets/overlay.svg
var overlaySVG []byte

// Overlay rasterizes the banner gradient overlay at the given size
func Overlay(width, height int) (*image.RGBA, error) {
	return svgToImage(overlaySVG, width, height)
}

// svgToImage converts SVG data to an RGBA image stretched to width x height
func svgToImage(svgData []byte, width, height int) (*image.RGBA, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(svgData))
	if err != nil {
		return nil, fmt.Errorf("failed to parse overlay svg: %w", err)
	}
	icon.SetTarget(0, 0, float64(width), float64(height))

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	scanner := rasterx.NewScannerGV(width, height, img, img.Bounds())
	raster := rasterx.NewDasher(width, height, scanner)
	icon.Draw(raster, 1.0)

	return img, nil
}

// Compose builds a banner frame: the page background, the canvas at the
// given opacity and the optional overlay on top
func Compose(dst *image.RGBA, canvas image.Image, overlay image.Image, opacity float64, background color.Color) {
	bounds := dst.Bounds()
	draw.Draw(dst, bounds, image.NewUniform(background), image.Point{}, draw.Src)

	mask := image.NewUniform(color.Alpha{A: uint8(clamp01(opacity)*255 + 0.5)})
	draw.DrawMask(dst, bounds, canvas, image.Point{}, mask, image.Point{}, draw.Over)

	if overlay != nil {
		draw.Draw(dst, bounds, overlay, image.Point{}, draw.Over)
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
