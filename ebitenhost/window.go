package ebitenhost

// window tracks the outside size ebiten reports through Layout. The size
// is applied, and subscribers notified, from Update.
type window struct {
	width, height  int
	offerW, offerH int
	handlers       map[int]func()
	nextID         int
}

func newWindow(width, height int) *window {
	return &window{
		width:    width,
		height:   height,
		offerW:   width,
		offerH:   height,
		handlers: make(map[int]func()),
	}
}

func (w *window) InnerSize() (int, int) {
	return w.width, w.height
}

func (w *window) OnResize(fn func()) func() {
	id := w.nextID
	w.nextID++
	w.handlers[id] = fn
	return func() { delete(w.handlers, id) }
}

// layout records the size ebiten offers
func (w *window) layout(width, height int) {
	if width <= 0 || height <= 0 {
		return // minimized
	}
	w.offerW, w.offerH = width, height
}

// apply adopts the last offered size; subscribers run only on change
func (w *window) apply() {
	if w.offerW == w.width && w.offerH == w.height {
		return
	}
	w.width, w.height = w.offerW, w.offerH
	for _, fn := range w.handlers {
		fn()
	}
}
