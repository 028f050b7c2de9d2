package termsurface

import (
	"image/color"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSurface(t *testing.T, cols, rows int) (*Surface, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)
	screen.SetSize(cols, rows)
	return New(screen), screen
}

func TestCanvasSize(t *testing.T) {
	s, _ := newTestSurface(t, 20, 10)
	w, h := s.CanvasSize()
	assert.Equal(t, 20*CellWidth, w)
	assert.Equal(t, 10*CellHeight, h)

	s.Resize(0, -3)
	w, h = s.CanvasSize()
	assert.Equal(t, CellWidth, w)
	assert.Equal(t, CellHeight, h)
}

func TestFillRectOpaqueAndBlended(t *testing.T) {
	s, _ := newTestSurface(t, 4, 4)
	w, h := s.CanvasSize()

	s.FillRect(0, 0, w, h, color.NRGBA{255, 0, 0, 255})
	r, g, b := s.At(3, 3).RGB255()
	assert.Equal(t, [3]uint8{255, 0, 0}, [3]uint8{r, g, b})

	// Half transparent black halves the red channel
	s.FillRect(0, 0, w, h, color.NRGBA{0, 0, 0, 128})
	r, _, _ = s.At(0, 0).RGB255()
	assert.InDelta(t, 127, int(r), 2)
}

func TestFillCircleAlwaysMarksCenterCell(t *testing.T) {
	s, _ := newTestSurface(t, 10, 10)
	x, y := s.ToCanvas(4, 6)

	s.FillCircle(x+1, y+1, 0.5, color.White)
	r, _, _ := s.At(4, 6).RGB255()
	assert.Equal(t, uint8(255), r)

	r, _, _ = s.At(5, 6).RGB255()
	assert.Equal(t, uint8(0), r)
}

func TestFillCircleCoversDisc(t *testing.T) {
	s, _ := newTestSurface(t, 20, 10)
	x, y := s.ToCanvas(10, 5)

	s.FillCircle(x, y, 3*CellWidth, color.White)
	for _, col := range []int{7, 8, 9, 10, 11, 12, 13} {
		r, _, _ := s.At(col, 5).RGB255()
		assert.Equal(t, uint8(255), r, "col %d", col)
	}
	r, _, _ := s.At(2, 5).RGB255()
	assert.Equal(t, uint8(0), r)
}

func TestStrokeLineIsContinuous(t *testing.T) {
	s, _ := newTestSurface(t, 20, 3)
	_, y := s.ToCanvas(0, 1)
	x1, _ := s.ToCanvas(19, 1)

	s.StrokeLine(0, y, x1, y, 1, color.White)
	for col := 0; col < 20; col++ {
		r, _, _ := s.At(col, 1).RGB255()
		assert.Equal(t, uint8(255), r, "col %d", col)
	}
	r, _, _ := s.At(5, 0).RGB255()
	assert.Equal(t, uint8(0), r)
}

func TestRadialGradientDarkensCenterMost(t *testing.T) {
	s, _ := newTestSurface(t, 21, 21)
	w, h := s.CanvasSize()
	s.FillRect(0, 0, w, h, color.White)

	x, y := s.ToCanvas(10, 10)
	s.FillRadialGradient(x, y, 10*CellWidth, color.NRGBA{0, 0, 0, 255}, color.NRGBA{0, 0, 0, 0})

	center, _, _ := s.At(10, 10).RGB255()
	mid, _, _ := s.At(13, 10).RGB255()
	outside, _, _ := s.At(10, 0).RGB255()
	assert.Less(t, center, mid)
	assert.Equal(t, uint8(255), outside)
}

func TestOutOfBoundsDrawingIsIgnored(t *testing.T) {
	s, _ := newTestSurface(t, 4, 4)
	assert.NotPanics(t, func() {
		s.FillCircle(-100, -100, 5, color.White)
		s.FillRect(1000, 1000, 50, 50, color.White)
		s.StrokeLine(-50, -50, 2000, 2000, 1, color.White)
	})
	assert.Equal(t, s.At(-1, 0), s.At(100, 100))
}

func TestShowWritesGlyphs(t *testing.T) {
	s, screen := newTestSurface(t, 6, 2)
	x, y := s.ToCanvas(2, 1)
	s.FillCircle(x, y, 1, color.White)
	s.Show()

	cells, cols, _ := screen.GetContents()
	lit := cells[1*cols+2]
	require.NotEmpty(t, lit.Runes)
	assert.Equal(t, '@', lit.Runes[0])

	dark := cells[0]
	require.NotEmpty(t, dark.Runes)
	assert.Equal(t, ' ', dark.Runes[0])
}

func TestGlyphRamp(t *testing.T) {
	s, _ := newTestSurface(t, 1, 1)
	assert.Equal(t, ' ', glyph(s.At(0, 0)))
}
