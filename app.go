package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"go.uber.org/zap"

	"github.com/lionel509/TwirlTasticWebMonster/pkg/render/ebitensurface"
	"github.com/lionel509/TwirlTasticWebMonster/pkg/simulation"
)

const hudH = 16

var hudBg = color.RGBA{0, 0, 0, 255}

// Simulation is the windowed host. It owns the state and feeds it input
// between ticks.
type Simulation struct {
	state   *simulation.State
	driver  *simulation.Driver
	surface *ebitensurface.Surface
	panel   *panel
	log     *zap.SugaredLogger

	width, height int
	runes         []rune
	pointer       pointerTracker
	twirlByKey    bool
	twirlByButton bool
	dragSlider    bool
}

// NewSimulation creates the host for s sized width x height.
func NewSimulation(s *simulation.State, width, height int, log *zap.SugaredLogger) *Simulation {
	return &Simulation{
		state:   s,
		driver:  simulation.NewDriver(s),
		surface: ebitensurface.New(nil),
		panel:   newPanel(width),
		log:     log,
		width:   width,
		height:  height,
	}
}

// Update is called each tick by Ebitengine
func (g *Simulation) Update() error {
	g.handleInput()
	g.driver.Step()
	return nil
}

// Draw is called each frame by Ebitengine. The screen is not cleared between
// frames; the driver's translucent overlay leaves fading trails.
func (g *Simulation) Draw(screen *ebiten.Image) {
	g.surface.Reset(screen)
	g.driver.Render(g.surface)

	mx, my := ebiten.CursorPosition()
	g.panel.draw(screen, g.state, mx, my)

	y := g.height - hudH
	vector.DrawFilledRect(screen, 0, float32(y), float32(g.width), hudH, hudBg, false)
	ebitenutil.DebugPrintAt(screen, statusLine(g.state, g.driver.Paused), 4, y)
}

// Layout follows the window size and rebuilds the population when it changes.
func (g *Simulation) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.panel = newPanel(outsideWidth)
		g.state.Resize(float64(outsideWidth), float64(outsideHeight))
	}
	return g.width, g.height
}

// handleInput processes keyboard and mouse input
func (g *Simulation) handleInput() {
	s := g.state

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.driver.Paused = !g.driver.Paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyT) && !g.twirlByButton {
		g.twirlByKey = true
		s.PressTwirl()
	}
	if inpututil.IsKeyJustReleased(ebiten.KeyT) && g.twirlByKey {
		g.twirlByKey = false
		s.ReleaseTwirl()
	}

	g.runes = ebiten.AppendInputChars(g.runes[:0])
	for _, r := range g.runes {
		if r == keyTwirl || r == keyPause {
			continue
		}
		handleRune(s, r)
	}

	mx, my := ebiten.CursorPosition()
	overPanel := g.panel.bounds.contains(mx, my)
	moved := g.pointer.moved(mx, my)
	if moved && !overPanel && mx >= 0 && my >= 0 && mx < g.width && my < g.height {
		s.SetPointer(float64(mx), float64(my))
	} else {
		s.ClearPointer()
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		switch {
		case g.panel.twirl.contains(mx, my):
			if !g.twirlByKey {
				g.twirlByButton = true
				s.PressTwirl()
			}
		case g.panel.slider.contains(mx, my):
			g.dragSlider = true
		default:
			if c, ok := g.panel.hit(mx, my); ok {
				g.log.Debugw("button", "command", c)
				s.Exec(c)
			}
		}
	}
	if g.dragSlider && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		s.SetWindDirection(g.panel.windAt(mx))
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.dragSlider = false
		if g.twirlByButton {
			g.twirlByButton = false
			s.ReleaseTwirl()
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) && !overPanel {
		s.SetGroupCenter(float64(mx), float64(my))
	}
}

// runEbiten opens the window and blocks until it closes.
func runEbiten(cfg simulation.Config, s *simulation.State, log *zap.SugaredLogger) error {
	g := NewSimulation(s, cfg.Width, cfg.Height, log)

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle("TwirlTastic")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetScreenClearedEveryFrame(false)

	return ebiten.RunGame(g)
}
