package core

import (
	"errors"
	"sort"
)

// ErrUnknownSim is returned when a simulation name has no registered factory.
var ErrUnknownSim = errors.New("unknown sim")

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sim defines the minimal contract a cellular automaton must implement.
// Cells returns the packed 2bpp grid, four cells per byte.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Cells() []uint8
}

// Pointer buttons reported by a host, one bit each.
const (
	ButtonPrimary   uint8 = 1 << 0
	ButtonSecondary uint8 = 1 << 1
	ButtonMiddle    uint8 = 1 << 2
)

// Input is the per-tick sample delivered by a host: a button bitmask and a
// pointer position in grid coordinates.
type Input struct {
	Buttons uint8
	X, Y    int16
}

// Pressed reports whether any of the given buttons are held.
func (in Input) Pressed(mask uint8) bool { return in.Buttons&mask != 0 }

// InputHandler is implemented by sims that react to pointer input.
type InputHandler interface {
	HandleInput(in Input)
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) Sim

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}

// Names returns the registered simulation names in sorted order.
func Names() []string {
	names := make([]string, 0, len(sims))
	for name := range sims {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup builds the named sim, returning ErrUnknownSim when it is missing.
func Lookup(name string, cfg map[string]string) (Sim, error) {
	f, ok := sims[name]
	if !ok {
		return nil, ErrUnknownSim
	}
	return f(cfg), nil
}

// GridSim is a Sim backed by a PackedGrid that callers may edit directly.
type GridSim interface {
	Sim
	Grid() *PackedGrid
}
