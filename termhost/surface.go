package termhost

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"

	"neuralbanner/banner"
)

// Logical pixels per terminal cell
const (
	CellWidth  = 8
	CellHeight = 16
)

const (
	particleRune = '●'
	edgeRune     = '·'
)

// Surface draws onto a tcell screen, one glyph per cell. Coordinates are
// logical pixels so the banner constants keep their meaning.
type Surface struct {
	screen     tcell.Screen
	cols, rows int
	particle   []bool // cells holding a particle this frame
	background tcell.Color
}

// NewSurface creates a surface over screen; SetSize fixes its grid
func NewSurface(screen tcell.Screen) *Surface {
	bg := banner.Background
	return &Surface{
		screen:     screen,
		background: tcell.NewRGBColor(int32(bg.R), int32(bg.G), int32(bg.B)),
	}
}

// Valid reports whether the surface can be drawn on
func (s *Surface) Valid() bool {
	return s != nil && s.screen != nil
}

// Size returns the logical pixel dimensions
func (s *Surface) Size() (int, int) {
	return s.cols * CellWidth, s.rows * CellHeight
}

// SetSize maps logical pixels onto whole cells
func (s *Surface) SetSize(width, height int) {
	s.cols = max(width/CellWidth, 0)
	s.rows = max(height/CellHeight, 0)
	s.particle = make([]bool, s.cols*s.rows)
}

// Clear blanks the screen
func (s *Surface) Clear() {
	s.screen.Fill(' ', tcell.StyleDefault.Background(s.background))
	clear(s.particle)
}

// FillCircle marks the cell under the circle centre
func (s *Surface) FillCircle(cx, cy, radius float64, clr color.NRGBA) {
	col, row, ok := s.cell(cx, cy)
	if !ok {
		return
	}
	s.particle[row*s.cols+col] = true
	s.screen.SetContent(col, row, particleRune, nil, s.style(clr))
}

// StrokeLine dots the cells along the segment, leaving particle cells alone
func (s *Surface) StrokeLine(x0, y0, x1, y1, width float64, clr color.NRGBA) {
	steps := int(math.Max(math.Abs(x1-x0)/CellWidth, math.Abs(y1-y0)/CellHeight)*2) + 1
	style := s.style(clr)
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		col, row, ok := s.cell(x0+(x1-x0)*t, y0+(y1-y0)*t)
		if !ok || s.particle[row*s.cols+col] {
			continue
		}
		s.screen.SetContent(col, row, edgeRune, nil, style)
	}
}

// Present flushes the frame to the terminal
func (s *Surface) Present() {
	s.screen.Show()
}

func (s *Surface) cell(x, y float64) (int, int, bool) {
	if x < 0 || y < 0 {
		return 0, 0, false
	}
	col, row := int(x/CellWidth), int(y/CellHeight)
	if col >= s.cols || row >= s.rows {
		return 0, 0, false
	}
	return col, row, true
}

// style blends clr over the page background, terminals having no alpha
func (s *Surface) style(clr color.NRGBA) tcell.Style {
	a := float64(clr.A) / 255
	bg := banner.Background
	mix := func(c, b uint8) int32 {
		return int32(float64(c)*a + float64(b)*(1-a) + 0.5)
	}
	fg := tcell.NewRGBColor(mix(clr.R, bg.R), mix(clr.G, bg.G), mix(clr.B, bg.B))
	return tcell.StyleDefault.Foreground(fg).Background(s.background)
}
