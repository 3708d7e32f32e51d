package ebitenhost

import (
	"errors"
	"image"
	"testing"
)

func countingOverlay(calls *int, err error) *overlay {
	o := newOverlay()
	o.rasterize = func(w, h int) (*image.RGBA, error) {
		*calls++
		if err != nil {
			return nil, err
		}
		return image.NewRGBA(image.Rect(0, 0, w, h)), nil
	}
	return o
}

func TestOverlayRasterizesOncePerSize(t *testing.T) {
	calls := 0
	o := countingOverlay(&calls, nil)

	tests := []struct {
		name          string
		width, height int
		rebuilt       bool
	}{
		{"first size", 800, 600, true},
		{"same size", 800, 600, false},
		{"resized", 1024, 768, true},
		{"minimized", 0, 0, false},
		{"restored", 1024, 768, false},
	}
	for _, tt := range tests {
		if got := o.update(tt.width, tt.height); got != tt.rebuilt {
			t.Errorf("%s: update = %v, want %v", tt.name, got, tt.rebuilt)
		}
	}
	if calls != 2 {
		t.Errorf("rasterized %d times, want 2", calls)
	}
	if b := o.src.Bounds(); b.Dx() != 1024 || b.Dy() != 768 {
		t.Errorf("overlay size = %v, want 1024x768", b)
	}
}

func TestOverlayStopsAfterFailure(t *testing.T) {
	calls := 0
	o := countingOverlay(&calls, errors.New("bad svg"))

	o.update(800, 600)
	o.update(1024, 768)
	if calls != 1 {
		t.Errorf("rasterized %d times after failure, want 1", calls)
	}
	if o.src != nil {
		t.Error("failed overlay kept an image")
	}
}

func TestOverlayUsesEmbeddedGradient(t *testing.T) {
	o := newOverlay()
	if !o.update(40, 10) {
		t.Fatal("embedded overlay failed to rasterize")
	}
	if left, right := o.src.RGBAAt(1, 5).A, o.src.RGBAAt(38, 5).A; left <= right {
		t.Errorf("overlay alpha left=%d right=%d, want left darker", left, right)
	}
}
