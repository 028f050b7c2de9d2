package main

import (
	"flag"
	"log"

	"github.com/lionel509/TwirlTasticWebMonster/pkg/audio"
	"github.com/lionel509/TwirlTasticWebMonster/pkg/simulation"
)

func main() {
	pPtr := flag.String("p", "config.yaml", "which profile to use")
	backendPtr := flag.String("backend", "", "renderer: ebiten, term")
	debugPtr := flag.String("d", "", "output level: debug, info, warn, error")
	f := flag.String("o", "", "log file, stderr when empty")
	showCaller := flag.Bool("c", false, "show caller in logs")
	nPtr := flag.Int("n", -1, "initial particle count")
	seedPtr := flag.Int64("seed", 0, "random seed, 0 for time based")
	mute := flag.Bool("mute", false, "disable sound")
	flag.Parse()

	cfg, err := simulation.LoadConfig(*pPtr)
	if err != nil {
		log.Fatal(err)
	}

	// Flags given on the command line win over the profile
	flag.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "backend":
			cfg.Backend = *backendPtr
		case "d":
			cfg.Log.LogLevel = *debugPtr
		case "o":
			cfg.Log.LogFile = *f
		case "c":
			cfg.Log.LogShowCaller = *showCaller
		case "n":
			cfg.Particles = *nPtr
		case "seed":
			cfg.Seed = *seedPtr
		case "mute":
			cfg.Audio = !*mute
		}
	})
	if err := cfg.Normalize(); err != nil {
		log.Fatal(err)
	}
	if err := run(cfg); err != nil {
		log.Fatal(err)
	}
}

// run owns everything that needs cleanup, so deferred calls finish before
// main exits on an error.
func run(cfg simulation.Config) error {
	logger, err := simulation.NewLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer logger.Sync()

	opts := []simulation.Option{
		simulation.WithLogger(logger),
		simulation.WithSeed(cfg.Seed),
		simulation.WithPopulation(cfg.Particles),
	}
	if cfg.Audio {
		player := audio.New(logger)
		defer player.Close()
		opts = append(opts, simulation.WithObserver(player))
	}

	state := simulation.NewState(float64(cfg.Width), float64(cfg.Height), opts...)
	state.SetFlag(simulation.FlagGust, cfg.Gust)
	state.Reset()
	logger.Infow("starting", "backend", cfg.Backend, "particles", state.Len(), "tps", cfg.TPS)

	switch cfg.Backend {
	case simulation.BackendTerm:
		err = runTerminal(cfg, state, logger)
	default:
		err = runEbiten(cfg, state, logger)
	}
	if err != nil {
		logger.Errorw("exit", "err", err)
	}
	return err
}
