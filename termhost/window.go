package termhost

import "github.com/gdamore/tcell/v2"

// Window reports the terminal size in logical pixels. The host calls
// Notify when tcell delivers an *tcell.EventResize.
type Window struct {
	screen   tcell.Screen
	handlers map[int]func()
	nextID   int
}

// NewWindow wraps screen
func NewWindow(screen tcell.Screen) *Window {
	return &Window{screen: screen, handlers: make(map[int]func())}
}

// InnerSize returns the terminal grid scaled to logical pixels
func (w *Window) InnerSize() (int, int) {
	cols, rows := w.screen.Size()
	return cols * CellWidth, rows * CellHeight
}

// OnResize subscribes fn to terminal resizes
func (w *Window) OnResize(fn func()) func() {
	id := w.nextID
	w.nextID++
	w.handlers[id] = fn
	return func() { delete(w.handlers, id) }
}

// Notify runs every subscriber
func (w *Window) Notify() {
	for _, fn := range w.handlers {
		fn()
	}
}
