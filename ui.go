package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/lionel509/TwirlTasticWebMonster/pkg/simulation"
)

// Panel layout
const (
	uiBtnW   = 64
	uiBtnH   = 22
	uiBtnPad = 6
	sliderW  = 200
	sliderH  = 10
	charW    = 7
)

var (
	panelBg     = color.RGBA{12, 12, 18, 255}
	sliderTrack = color.RGBA{60, 60, 70, 255}
	sliderKnob  = color.RGBA{220, 220, 240, 255}
	labelColor  = color.RGBA{200, 200, 200, 255}
)

type rect struct {
	x, y, w, h int
}

func (r rect) contains(px, py int) bool {
	return pointInRect(px, py, r.x, r.y, r.w, r.h)
}

func pointInRect(px, py, rx, ry, rw, rh int) bool {
	return px >= rx && px <= rx+rw && py >= ry && py <= ry+rh
}

type button struct {
	rect
	cmd simulation.Command
}

// panel is the control strip along the top of the window.
type panel struct {
	bounds  rect
	twirl   rect
	buttons []button
	slider  rect
}

// panelCommands are the buttons in display order.
var panelCommands = []simulation.Command{
	simulation.CmdToggleCollision,
	simulation.CmdToggleGravity,
	simulation.CmdToggleAttraction,
	simulation.CmdToggleRepulsion,
	simulation.CmdToggleWind,
	simulation.CmdToggleGrouping,
	simulation.CmdToggleRGB,
	simulation.CmdToggleGust,
	simulation.CmdAdd1,
	simulation.CmdAdd10,
	simulation.CmdAdd100,
	simulation.CmdAdd1000,
	simulation.CmdRemove,
	simulation.CmdClear,
	simulation.CmdCollect,
	simulation.CmdLaunch,
	simulation.CmdLaunchAll,
	simulation.CmdRocket,
	simulation.CmdSideBursts,
	simulation.CmdFirework,
}

// newPanel flows the buttons left to right, wrapping at width, and puts the
// wind slider on its own row below them.
func newPanel(width int) *panel {
	p := &panel{}
	x, y := uiBtnPad, uiBtnPad
	place := func() rect {
		if x+uiBtnW+uiBtnPad > width && x > uiBtnPad {
			x = uiBtnPad
			y += uiBtnH + uiBtnPad
		}
		r := rect{x, y, uiBtnW, uiBtnH}
		x += uiBtnW + uiBtnPad
		return r
	}

	p.twirl = place()
	for _, c := range panelCommands {
		p.buttons = append(p.buttons, button{rect: place(), cmd: c})
	}
	y += uiBtnH + uiBtnPad
	p.slider = rect{uiBtnPad + 6*charW, y + (uiBtnH-sliderH)/2, sliderW, sliderH}
	p.bounds = rect{0, 0, width, y + uiBtnH + uiBtnPad}
	return p
}

// hit returns the command of the button under (x, y).
func (p *panel) hit(x, y int) (simulation.Command, bool) {
	for _, b := range p.buttons {
		if b.contains(x, y) {
			return b.cmd, true
		}
	}
	return simulation.CmdNone, false
}

// windAt maps a horizontal pointer position on the slider to [-1, 1].
func (p *panel) windAt(x int) float64 {
	t := float64(x-p.slider.x) / float64(p.slider.w)
	return max(-1, min(1, t*2-1))
}

// knobX is the slider position of wind direction d.
func (p *panel) knobX(d float64) int {
	return p.slider.x + int((d+1)/2*float64(p.slider.w))
}

func (p *panel) draw(screen *ebiten.Image, s *simulation.State, mx, my int) {
	b := p.bounds
	vector.DrawFilledRect(screen, float32(b.x), float32(b.y), float32(b.w), float32(b.h), panelBg, false)

	drawButton(screen, p.twirl, "Twirl", s.Flags.Twirl, p.twirl.contains(mx, my))
	for _, btn := range p.buttons {
		active := false
		if f, ok := btn.cmd.Flag(); ok {
			active = s.Enabled(f)
		}
		drawButton(screen, btn.rect, btn.cmd.String(), active, btn.contains(mx, my))
	}

	sl := p.slider
	text.Draw(screen, "Wind", basicfont.Face7x13, uiBtnPad, sl.y+sliderH, labelColor)
	vector.DrawFilledRect(screen, float32(sl.x), float32(sl.y), float32(sl.w), float32(sl.h), sliderTrack, false)
	kx := p.knobX(s.WindDirection)
	vector.DrawFilledRect(screen, float32(kx-3), float32(sl.y-3), 6, float32(sl.h+6), sliderKnob, false)
}

func drawButton(screen *ebiten.Image, r rect, label string, active, hover bool) {
	bg := color.RGBA{20, 20, 20, 255}
	if active {
		bg = color.RGBA{60, 120, 60, 255}
	}
	if hover {
		if active {
			bg = color.RGBA{100, 190, 100, 255}
		} else {
			bg = color.RGBA{90, 90, 90, 255}
		}
	}
	vector.DrawFilledRect(screen, float32(r.x), float32(r.y), float32(r.w), float32(r.h), bg, false)
	vector.StrokeRect(screen, float32(r.x)+0.5, float32(r.y)+0.5, float32(r.w-1), float32(r.h-1), 1, color.RGBA{70, 70, 80, 255}, false)

	xText := r.x + (r.w-len(label)*charW)/2
	yText := r.y + (r.h+8)/2
	text.Draw(screen, label, basicfont.Face7x13, xText, yText, color.RGBA{240, 240, 240, 255})
}
