// Package termsurface renders simulation frames as colored terminal cells.
//
// Each cell covers CellWidth x CellHeight canvas units. Drawing blends into
// an in-memory color buffer; Show pushes the buffer to a tcell screen.
package termsurface

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Default cell size in canvas units, roughly a terminal glyph in pixels
const (
	CellWidth  = 8.0
	CellHeight = 16.0
)

// Glyph ramp from dim to bright
var ramp = []rune{' ', '.', ':', '*', 'o', 'O', '@'}

var black = colorful.Color{}

// Surface is a simulation.Surface over a tcell screen.
type Surface struct {
	screen     tcell.Screen
	cols, rows int
	cellW      float64
	cellH      float64
	cells      []colorful.Color
}

// New creates a surface sized to the screen.
func New(screen tcell.Screen) *Surface {
	s := &Surface{screen: screen, cellW: CellWidth, cellH: CellHeight}
	cols, rows := screen.Size()
	s.Resize(cols, rows)
	return s
}

// Resize changes the grid size and blanks the buffer.
func (s *Surface) Resize(cols, rows int) {
	s.cols = max(cols, 1)
	s.rows = max(rows, 1)
	s.cells = make([]colorful.Color, s.cols*s.rows)
}

// CanvasSize returns the canvas extent in canvas units.
func (s *Surface) CanvasSize() (w, h float64) {
	return float64(s.cols) * s.cellW, float64(s.rows) * s.cellH
}

// ToCanvas converts a cell coordinate to the canvas point at its center.
func (s *Surface) ToCanvas(col, row int) (x, y float64) {
	return (float64(col) + 0.5) * s.cellW, (float64(row) + 0.5) * s.cellH
}

// At returns the buffered color of a cell.
func (s *Surface) At(col, row int) colorful.Color {
	if col < 0 || row < 0 || col >= s.cols || row >= s.rows {
		return black
	}
	return s.cells[row*s.cols+col]
}

// blend mixes clr into one cell using clr's alpha.
func (s *Surface) blend(col, row int, clr color.Color) {
	if col < 0 || row < 0 || col >= s.cols || row >= s.rows {
		return
	}
	c, a := split(clr)
	if a == 0 {
		return
	}
	i := row*s.cols + col
	s.cells[i] = s.cells[i].BlendRgb(c, a).Clamped()
}

// split returns the straight color and alpha of clr.
func split(clr color.Color) (colorful.Color, float64) {
	n := color.NRGBAModel.Convert(clr).(color.NRGBA)
	c := colorful.Color{R: float64(n.R) / 255, G: float64(n.G) / 255, B: float64(n.B) / 255}
	return c, float64(n.A) / 255
}

func (s *Surface) cellOf(x, y float64) (col, row int) {
	return int(math.Floor(x / s.cellW)), int(math.Floor(y / s.cellH))
}

func (s *Surface) cellRange(x0, y0, x1, y1 float64) (c0, r0, c1, r1 int) {
	c0 = max(int(math.Floor(x0/s.cellW)), 0)
	r0 = max(int(math.Floor(y0/s.cellH)), 0)
	c1 = min(int(math.Floor(x1/s.cellW)), s.cols-1)
	r1 = min(int(math.Floor(y1/s.cellH)), s.rows-1)
	return
}

func (s *Surface) FillRect(x, y, w, h float64, clr color.Color) {
	c0, r0, c1, r1 := s.cellRange(x, y, x+w, y+h)
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			s.blend(col, row, clr)
		}
	}
}

// FillCircle colors every cell whose center lies in the disc, and always the
// cell holding the center so small particles stay visible.
func (s *Surface) FillCircle(cx, cy, r float64, clr color.Color) {
	cc, cr := s.cellOf(cx, cy)
	s.blend(cc, cr, clr)

	c0, r0, c1, r1 := s.cellRange(cx-r, cy-r, cx+r, cy+r)
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			if col == cc && row == cr {
				continue
			}
			x, y := s.ToCanvas(col, row)
			if math.Hypot(x-cx, y-cy) <= r {
				s.blend(col, row, clr)
			}
		}
	}
}

func (s *Surface) FillRadialGradient(cx, cy, r float64, inner, outer color.Color) {
	if r <= 0 {
		return
	}
	in, inA := split(inner)
	out, outA := split(outer)

	c0, r0, c1, r1 := s.cellRange(cx-r, cy-r, cx+r, cy+r)
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			x, y := s.ToCanvas(col, row)
			t := math.Hypot(x-cx, y-cy) / r
			if t > 1 {
				continue
			}
			c := in.BlendRgb(out, t)
			a := inA + (outA-inA)*t
			s.blend(col, row, color.NRGBA{
				R: uint8(math.Round(c.R * 255)),
				G: uint8(math.Round(c.G * 255)),
				B: uint8(math.Round(c.B * 255)),
				A: uint8(math.Round(a * 255)),
			})
		}
	}
}

// StrokeLine walks the segment at half-cell resolution. Width is ignored:
// a cell is the thinnest line a terminal can show.
func (s *Surface) StrokeLine(x0, y0, x1, y1, _ float64, clr color.Color) {
	dx, dy := x1-x0, y1-y0
	steps := int(math.Ceil(math.Max(math.Abs(dx)/s.cellW, math.Abs(dy)/s.cellH) * 2))
	if steps == 0 {
		col, row := s.cellOf(x0, y0)
		s.blend(col, row, clr)
		return
	}
	last := -1
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		col, row := s.cellOf(x0+dx*t, y0+dy*t)
		if idx := row*s.cols + col; idx != last {
			s.blend(col, row, clr)
			last = idx
		}
	}
}

// glyph picks a rune by perceived brightness.
func glyph(c colorful.Color) rune {
	_, _, l := c.Hsl()
	i := int(math.Round(l * 2 * float64(len(ramp)-1)))
	return ramp[min(max(i, 0), len(ramp)-1)]
}

// Show copies the buffer to the screen and flushes it.
func (s *Surface) Show() {
	for row := 0; row < s.rows; row++ {
		for col := 0; col < s.cols; col++ {
			c := s.cells[row*s.cols+col]
			r, g, b := c.RGB255()
			style := tcell.StyleDefault.
				Background(tcell.ColorBlack).
				Foreground(tcell.NewRGBColor(int32(r), int32(g), int32(b)))
			s.screen.SetContent(col, row, glyph(c), nil, style)
		}
	}
	s.screen.Show()
}
