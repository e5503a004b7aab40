package app

import (
	"fmt"
	"log/slog"

	"sand-ca/internal/core"
	"sand-ca/internal/logging"
	"sand-ca/internal/render"
	"sand-ca/internal/scenario"
)

// Session is everything a host needs to drive one chunk: the sim, the
// optional scripted scenario, the framebuffer it presents into and a logger.
type Session struct {
	Config   *Config
	Sim      core.Sim
	Script   *scenario.Scenario
	Screen   *render.Framebuffer
	Palette  render.Palette
	Log      *slog.Logger
	Tick     uint64
	Paused   bool
	tickOnce bool
}

// Boot parses args, builds the configured sim and performs the one-time
// reset before the first tick.
func Boot(name string, args []string) (*Session, error) {
	cfg, err := Load(name, args)
	if err != nil {
		return nil, err
	}
	mode, err := logging.ParseMode(cfg.Log)
	if err != nil {
		return nil, err
	}
	return NewSession(cfg, logging.New(mode, nil))
}

// NewSession builds a session from an already loaded config.
func NewSession(cfg *Config, log *slog.Logger) (*Session, error) {
	sim, err := core.Lookup(cfg.Sim, cfg.Params)
	if err != nil {
		return nil, fmt.Errorf("%w %q (available: %v)", err, cfg.Sim, core.Names())
	}
	s := &Session{
		Config:  cfg,
		Sim:     sim,
		Screen:  render.NewScreen(),
		Palette: render.ParsePalette(cfg.Palette),
		Log:     log,
	}
	if cfg.Scenario != "" {
		sc, err := scenario.Load(cfg.Scenario)
		if err != nil {
			return nil, err
		}
		s.Script = sc
		log.Info("scenario loaded", "name", sc.Name, "strokes", len(sc.Strokes))
	}
	s.Reset(cfg.Seed)
	log.Info("session ready", "sim", sim.Name(), "size", sim.Size().W, "tps", cfg.TPS)
	return s, nil
}

// Reset reinitializes the sim and re-applies the scenario layout.
func (s *Session) Reset(seed int64) {
	s.Sim.Reset(seed)
	s.Tick = 0
	if s.Script == nil {
		return
	}
	if gs, ok := s.Sim.(core.GridSim); ok {
		s.Script.Apply(gs.Grid())
	}
}

// TogglePause flips the paused state.
func (s *Session) TogglePause() { s.Paused = !s.Paused }

// StepOnce advances a paused session by a single tick on the next Advance.
func (s *Session) StepOnce() { s.tickOnce = true }

// Advance runs one host frame: the brush applies the input, then the sim
// steps unless paused. Scripted strokes replace live input while they are
// active.
func (s *Session) Advance(in core.Input) {
	if s.Script != nil {
		if scripted := s.Script.InputAt(s.Tick); scripted.Buttons != 0 {
			in = scripted
		}
	}
	if h, ok := s.Sim.(core.InputHandler); ok {
		h.HandleInput(in)
	}
	if s.Paused && !s.tickOnce {
		return
	}
	s.tickOnce = false
	s.Sim.Step()
	s.Tick++
}

// Present blits the sim's packed grid into the session framebuffer.
func (s *Session) Present() *render.Framebuffer {
	size := s.Sim.Size()
	render.Blit(s.Screen, s.Sim.Cells(), 0, 0, size.W, size.H)
	return s.Screen
}
