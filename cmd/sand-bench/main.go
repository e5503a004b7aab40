package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/cheggaaa/pb/v3"

	"sand-ca/internal/bench"
	"sand-ca/internal/core"
	"sand-ca/internal/logging"
	"sand-ca/internal/scenario"
	_ "sand-ca/internal/sims/sand"
)

type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

func main() {
	simName := flag.String("sim", "sand", "simulation to run")
	ticks := flag.Int("ticks", 600, "number of ticks to simulate")
	seed := flag.Int64("seed", 42, "seed passed to Reset")
	scenarioPath := flag.String("scenario", "", "YAML scenario to apply and replay")
	logMode := flag.String("log", "dev", "log mode: dev, prod or silence")
	quiet := flag.Bool("quiet", false, "hide the progress bar")
	var overrides kvList
	flag.Var(&overrides, "set", "sim parameter override in key=value form (repeatable)")
	flag.Parse()

	mode, err := logging.ParseMode(*logMode)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	log := logging.New(mode, nil)

	params := map[string]string{}
	for _, kv := range overrides {
		k, v, ok := strings.Cut(kv, "=")
		if !ok {
			log.Warn("ignoring malformed override", "value", kv)
			continue
		}
		params[k] = v
	}

	sim, err := core.Lookup(*simName, params)
	if err != nil {
		log.Error("lookup sim", "sim", *simName, "available", core.Names(), "err", err)
		os.Exit(2)
	}
	gs, ok := sim.(core.GridSim)
	if !ok {
		log.Error("sim does not expose a grid", "sim", *simName, "err", errors.ErrUnsupported)
		os.Exit(2)
	}

	var script *scenario.Scenario
	if *scenarioPath != "" {
		script, err = scenario.Load(*scenarioPath)
		if err != nil {
			log.Error("load scenario", "err", err)
			os.Exit(1)
		}
		log.Info("scenario loaded", "name", script.Name, "strokes", len(script.Strokes))
	}

	var progress func()
	var bar *pb.ProgressBar
	if !*quiet {
		bar = pb.StartNew(*ticks)
		progress = func() { bar.Increment() }
	}
	res := bench.Run(gs, script, *seed, *ticks, progress)
	if bar != nil {
		bar.Finish()
	}

	log.Info("run complete", "sim", res.Sim, "ticks", res.Ticks, "settled", res.SettleTick, "elapsed", res.Elapsed)
	fmt.Print(res.Table())
}
