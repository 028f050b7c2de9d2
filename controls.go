package main

import (
	"fmt"
	"strings"

	"github.com/lionel509/TwirlTasticWebMonster/pkg/simulation"
)

// Shared keyboard bindings. Twirl, pause and quit are handled by each host
// since they depend on key state the hosts report differently.
var keyCommands = map[rune]simulation.Command{
	'c': simulation.CmdToggleCollision,
	'g': simulation.CmdToggleGravity,
	'a': simulation.CmdToggleAttraction,
	'r': simulation.CmdToggleRepulsion,
	'w': simulation.CmdToggleWind,
	'o': simulation.CmdToggleGrouping,
	'h': simulation.CmdToggleRGB,
	'u': simulation.CmdToggleGust,
	'1': simulation.CmdAdd1,
	'2': simulation.CmdAdd10,
	'3': simulation.CmdAdd100,
	'4': simulation.CmdAdd1000,
	'-': simulation.CmdRemove,
	'x': simulation.CmdClear,
	'b': simulation.CmdCollect,
	'l': simulation.CmdLaunch,
	'L': simulation.CmdLaunchAll,
	'k': simulation.CmdRocket,
	's': simulation.CmdSideBursts,
	'f': simulation.CmdFirework,
}

const (
	keyTwirl     = 't'
	keyPause     = ' '
	keyWindLeft  = '['
	keyWindRight = ']'
	windStep     = 0.1
)

// hudFlags lists the flags shown in the status line, in display order.
var hudFlags = []simulation.Flag{
	simulation.FlagTwirl,
	simulation.FlagBlackHole,
	simulation.FlagCollision,
	simulation.FlagGravity,
	simulation.FlagAttraction,
	simulation.FlagRepulsion,
	simulation.FlagWind,
	simulation.FlagGrouping,
	simulation.FlagRGB,
	simulation.FlagGust,
}

// handleRune runs the binding for r. It reports whether r was bound.
func handleRune(s *simulation.State, r rune) bool {
	switch r {
	case keyWindLeft:
		s.SetWindDirection(s.WindDirection - windStep)
		return true
	case keyWindRight:
		s.SetWindDirection(s.WindDirection + windStep)
		return true
	}
	c, ok := keyCommands[r]
	if !ok {
		return false
	}
	s.Exec(c)
	return true
}

// statusLine summarizes the state for the HUD.
func statusLine(s *simulation.State, paused bool) string {
	var on []string
	for _, f := range hudFlags {
		if s.Enabled(f) {
			on = append(on, f.String())
		}
	}
	flags := "-"
	if len(on) > 0 {
		flags = strings.Join(on, ",")
	}
	line := fmt.Sprintf("particles %d  wind %+.1f  [%s]", s.Len(), s.WindDirection, flags)
	if paused {
		line += "  PAUSED"
	}
	return line
}

// pointerTracker reports cursor motion. The cursor impulse only applies on
// ticks where the pointer moved, so an idle cursor does not trap particles.
type pointerTracker struct {
	x, y int
	seen bool
}

// moved records (x, y) and reports whether it differs from the last call.
func (t *pointerTracker) moved(x, y int) bool {
	changed := !t.seen || x != t.x || y != t.y
	t.x, t.y, t.seen = x, y, true
	return changed
}

// forget makes the next position count as motion.
func (t *pointerTracker) forget() {
	t.seen = false
}
