package simulation

// Command is one UI control. Each command toggles exactly one flag or runs
// exactly one population operation.
type Command int

const (
	CmdNone Command = iota
	CmdToggleCollision
	CmdToggleGravity
	CmdToggleAttraction
	CmdToggleRepulsion
	CmdToggleWind
	CmdToggleGrouping
	CmdToggleRGB
	CmdToggleGust
	CmdAdd1
	CmdAdd10
	CmdAdd100
	CmdAdd1000
	CmdRemove
	CmdClear
	CmdCollect
	CmdLaunch
	CmdLaunchAll
	CmdRocket
	CmdSideBursts
	CmdFirework
)

var commandLabels = [...]string{
	CmdNone:             "",
	CmdToggleCollision:  "Collide",
	CmdToggleGravity:    "Gravity",
	CmdToggleAttraction: "Attract",
	CmdToggleRepulsion:  "Repel",
	CmdToggleWind:       "Wind",
	CmdToggleGrouping:   "Group",
	CmdToggleRGB:        "RGB",
	CmdToggleGust:       "Gust",
	CmdAdd1:             "+1",
	CmdAdd10:            "+10",
	CmdAdd100:           "+100",
	CmdAdd1000:          "+1000",
	CmdRemove:           "-1",
	CmdClear:            "Clear",
	CmdCollect:          "Collect",
	CmdLaunch:           "Launch",
	CmdLaunchAll:        "Launch!",
	CmdRocket:           "Rocket",
	CmdSideBursts:       "Sides",
	CmdFirework:         "Firework",
}

func (c Command) String() string {
	if c < 0 || int(c) >= len(commandLabels) {
		return "unknown"
	}
	return commandLabels[c]
}

// Flag returns the flag a toggle command controls.
func (c Command) Flag() (Flag, bool) {
	switch c {
	case CmdToggleCollision:
		return FlagCollision, true
	case CmdToggleGravity:
		return FlagGravity, true
	case CmdToggleAttraction:
		return FlagAttraction, true
	case CmdToggleRepulsion:
		return FlagRepulsion, true
	case CmdToggleWind:
		return FlagWind, true
	case CmdToggleGrouping:
		return FlagGrouping, true
	case CmdToggleRGB:
		return FlagRGB, true
	case CmdToggleGust:
		return FlagGust, true
	}
	return 0, false
}

// Exec runs c against the state.
func (s *State) Exec(c Command) {
	if f, ok := c.Flag(); ok {
		s.Toggle(f)
		return
	}

	switch c {
	case CmdAdd1:
		s.Spawn(1, OriginPipe)
	case CmdAdd10:
		s.Spawn(10, OriginPipe)
	case CmdAdd100:
		s.Spawn(100, OriginPipe)
	case CmdAdd1000:
		s.Spawn(1000, OriginPipe)
	case CmdRemove:
		s.RemoveOne()
	case CmdClear:
		s.Clear()
	case CmdCollect:
		s.CollectAtBottom()
	case CmdLaunch:
		s.LaunchUpward(false)
	case CmdLaunchAll:
		s.LaunchUpward(true)
	case CmdRocket:
		s.SpawnRisingBigParticle()
	case CmdSideBursts:
		s.LaunchSideBursts()
	case CmdFirework:
		s.Firework()
	}
}
