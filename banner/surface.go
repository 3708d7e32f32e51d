package banner

import "image/color"

// Surface is a 2D raster target the renderer draws onto
type Surface interface {
	// Size returns the logical pixel dimensions
	Size() (width, height int)

	// SetSize changes the logical pixel dimensions, discarding content
	SetSize(width, height int)

	// Clear erases the whole surface
	Clear()

	// FillCircle draws a solid filled circle
	FillCircle(cx, cy, radius float64, clr color.NRGBA)

	// StrokeLine draws a line segment
	StrokeLine(x0, y0, x1, y1, width float64, clr color.NRGBA)
}

// Presenter is implemented by surfaces that must be flushed after a frame
type Presenter interface {
	Present()
}

// Validator is implemented by surfaces that can be unusable while still
// being a non-nil interface value, such as a nil pointer receiver
type Validator interface {
	Valid() bool
}

// usable reports whether s can be drawn on
func usable(s Surface) bool {
	if s == nil {
		return false
	}
	if v, ok := s.(Validator); ok {
		return v.Valid()
	}
	return true
}
