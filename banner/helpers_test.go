package banner

import (
	"image/color"

	"gonum.org/v1/gonum/spatial/r2"
)

type circleCall struct {
	x, y, r float64
	clr     color.NRGBA
}

type lineCall struct {
	x0, y0, x1, y1, width float64
	clr                   color.NRGBA
}

// recordingSurface is a Surface that records draw calls
type recordingSurface struct {
	width, height int
	sizeCalls     int
	clears        int
	presents      int
	circles       []circleCall
	lines         []lineCall
}

func (s *recordingSurface) Size() (int, int) { return s.width, s.height }

func (s *recordingSurface) Valid() bool { return s != nil }

func (s *recordingSurface) SetSize(width, height int) {
	s.width, s.height = width, height
	s.sizeCalls++
}

func (s *recordingSurface) Clear() {
	s.clears++
	s.circles = s.circles[:0]
	s.lines = s.lines[:0]
}

func (s *recordingSurface) FillCircle(cx, cy, r float64, clr color.NRGBA) {
	s.circles = append(s.circles, circleCall{cx, cy, r, clr})
}

func (s *recordingSurface) StrokeLine(x0, y0, x1, y1, width float64, clr color.NRGBA) {
	s.lines = append(s.lines, lineCall{x0, y0, x1, y1, width, clr})
}

func (s *recordingSurface) Present() { s.presents++ }

// fakeWindow is a Window whose size is set by the test
type fakeWindow struct {
	width, height int
	handlers      map[int]func()
	nextID        int
}

func newFakeWindow(width, height int) *fakeWindow {
	return &fakeWindow{width: width, height: height, handlers: map[int]func(){}}
}

func (w *fakeWindow) InnerSize() (int, int) { return w.width, w.height }

func (w *fakeWindow) OnResize(fn func()) func() {
	id := w.nextID
	w.nextID++
	w.handlers[id] = fn
	return func() { delete(w.handlers, id) }
}

// resize changes the size and notifies subscribers
func (w *fakeWindow) resize(width, height int) {
	w.width, w.height = width, height
	for _, fn := range w.handlers {
		fn()
	}
}

func particleAt(x, y float64) Particle {
	return Particle{Pos: r2.Vec{X: x, Y: y}, Radius: 1, Opacity: 0.5}
}
