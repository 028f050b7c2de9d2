package main

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lionel509/TwirlTasticWebMonster/pkg/render/termsurface"
	"github.com/lionel509/TwirlTasticWebMonster/pkg/simulation"
)

var statusStyle = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.NewRGBColor(180, 180, 180))

// terminal is the tcell host. The bottom row holds the status line, the
// rest of the screen is canvas.
type terminal struct {
	screen  tcell.Screen
	surface *termsurface.Surface
	state   *simulation.State
	driver  *simulation.Driver
	log     *zap.SugaredLogger

	// Terminals report no key release, so the twirl key toggles the hold.
	twirlByKey   bool
	twirlByMouse bool
}

func newTerminal(screen tcell.Screen, s *simulation.State, log *zap.SugaredLogger) *terminal {
	t := &terminal{
		screen:  screen,
		surface: termsurface.New(screen),
		state:   s,
		driver:  simulation.NewDriver(s),
		log:     log,
	}
	t.resize(screen.Size())
	return t
}

func (t *terminal) resize(cols, rows int) {
	t.surface.Resize(cols, rows-1)
	w, h := t.surface.CanvasSize()
	t.state.Resize(w, h)
}

// handleEvent applies one terminal event. It returns false when the user quits.
func (t *terminal) handleEvent(ev tcell.Event) bool {
	s := t.state
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() != tcell.KeyRune {
			return true
		}
		switch r := ev.Rune(); r {
		case 'q':
			return false
		case keyPause:
			t.driver.Paused = !t.driver.Paused
		case keyTwirl:
			if t.twirlByMouse {
				break
			}
			t.twirlByKey = !t.twirlByKey
			if t.twirlByKey {
				s.PressTwirl()
			} else {
				s.ReleaseTwirl()
			}
		default:
			handleRune(s, r)
		}

	case *tcell.EventMouse:
		col, row := ev.Position()
		x, y := t.surface.ToCanvas(col, row)
		if _, rows := t.screen.Size(); row < rows-1 {
			s.SetPointer(x, y)
		} else {
			s.ClearPointer()
		}

		buttons := ev.Buttons()
		if buttons&tcell.Button1 != 0 && !t.twirlByMouse && !t.twirlByKey {
			t.twirlByMouse = true
			s.PressTwirl()
		}
		if buttons&tcell.Button1 == 0 && t.twirlByMouse {
			t.twirlByMouse = false
			s.ReleaseTwirl()
		}
		if buttons&tcell.Button2 != 0 {
			s.SetGroupCenter(x, y)
		}

	case *tcell.EventResize:
		t.screen.Sync()
		t.resize(ev.Size())
		t.log.Debugw("terminal resize", "width", t.state.Width, "height", t.state.Height)
	}
	return true
}

// frame steps the simulation and repaints the screen. The cursor impulse
// lasts one frame per mouse event, like a motion event in a window.
func (t *terminal) frame() {
	t.driver.Tick(t.surface)
	t.state.ClearPointer()

	cols, rows := t.screen.Size()
	line := []rune(statusLine(t.state, t.driver.Paused))
	for col := 0; col < cols; col++ {
		r := ' '
		if col < len(line) {
			r = line[col]
		}
		t.screen.SetContent(col, rows-1, r, nil, statusStyle)
	}
	t.surface.Show()
}

// run ticks at tps until the user quits. Events are read on their own
// goroutine and handled between ticks.
func (t *terminal) run(tps int) {
	ticker := time.NewTicker(time.Second / time.Duration(tps))
	defer ticker.Stop()

	done := make(chan struct{})
	defer close(done)
	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	for {
		select {
		case ev := <-events:
			if !t.handleEvent(ev) {
				return
			}
		case <-ticker.C:
			t.frame()
		}
	}
}

// runTerminal takes over the terminal and blocks until the user quits.
func runTerminal(cfg simulation.Config, s *simulation.State, log *zap.SugaredLogger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	newTerminal(screen, s, log).run(cfg.TPS)
	return nil
}
