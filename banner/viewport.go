package banner

// Viewport holds the drawing surface bounds in pixels
type Viewport struct {
	Width  float64
	Height float64
}

// Window is the host that owns the viewport dimensions
type Window interface {
	// InnerSize returns the current inner dimensions in pixels
	InnerSize() (width, height int)

	// OnResize subscribes fn to resize notifications. The returned function
	// releases the subscription.
	OnResize(fn func()) (cancel func())
}

// ViewportManager keeps the surface sized to the window. It is the only
// writer of the viewport.
type ViewportManager struct {
	window   Window
	surface  Surface
	viewport Viewport
	cancel   func()
	attached bool
}

// NewViewportManager creates a manager for the given window and surface
func NewViewportManager(window Window, surface Surface) *ViewportManager {
	return &ViewportManager{
		window:  window,
		surface: surface,
	}
}

// Attach sizes the surface to the window and subscribes to resize events
func (m *ViewportManager) Attach() {
	if m.attached {
		return
	}
	m.attached = true
	m.Resize()
	if m.window != nil {
		m.cancel = m.window.OnResize(m.Resize)
	}
}

// Detach releases the resize subscription; later notifications are ignored
func (m *ViewportManager) Detach() {
	m.attached = false
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
}

// Resize copies the window inner size onto the surface and viewport.
// Applying the current size again changes nothing.
func (m *ViewportManager) Resize() {
	if !m.attached {
		return
	}
	if m.window == nil {
		width, height := m.surface.Size()
		m.viewport = Viewport{Width: float64(width), Height: float64(height)}
		return
	}

	width, height := m.window.InnerSize()
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}

	if sw, sh := m.surface.Size(); sw != width || sh != height {
		m.surface.SetSize(width, height)
	}
	m.viewport = Viewport{Width: float64(width), Height: float64(height)}
}

// Viewport returns the current bounds
func (m *ViewportManager) Viewport() Viewport {
	return m.viewport
}
