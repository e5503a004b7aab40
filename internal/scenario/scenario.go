// Package scenario loads YAML descriptions of a starting chunk and a scripted
// sequence of brush strokes.
package scenario

import (
	"fmt"
	"math"
	"os"

	"github.com/aquilax/go-perlin"
	"gopkg.in/yaml.v3"

	"sand-ca/internal/core"
)

// Terrain describes a wall floor generated from 1D perlin noise.
type Terrain struct {
	Seed      int64   `yaml:"seed"`
	Base      int     `yaml:"base"`
	Amplitude float64 `yaml:"amplitude"`
	Frequency float64 `yaml:"frequency"`
}

// Scatter drops Count sand grains at random cells above row MaxY.
type Scatter struct {
	Seed  int64 `yaml:"seed"`
	Count int   `yaml:"count"`
	MaxY  int   `yaml:"max_y"`
}

// Stroke holds Buttons at (X, Y) for Ticks ticks starting at Tick.
type Stroke struct {
	Tick    uint64 `yaml:"tick"`
	Ticks   uint64 `yaml:"ticks"`
	X       int16  `yaml:"x"`
	Y       int16  `yaml:"y"`
	Buttons uint8  `yaml:"buttons"`
}

// Scenario is a starting layout plus scripted input.
type Scenario struct {
	Name    string   `yaml:"name"`
	Terrain *Terrain `yaml:"terrain"`
	Scatter *Scatter `yaml:"scatter"`
	Strokes []Stroke `yaml:"strokes"`
}

// Load reads and validates the scenario file at path.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	sc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", path, err)
	}
	return sc, nil
}

// Parse decodes a scenario from YAML.
func Parse(data []byte) (*Scenario, error) {
	sc := &Scenario{}
	if err := yaml.Unmarshal(data, sc); err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	for i := range sc.Strokes {
		if sc.Strokes[i].Ticks == 0 {
			sc.Strokes[i].Ticks = 1
		}
	}
	if t := sc.Terrain; t != nil {
		if t.Base < 0 || t.Amplitude < 0 {
			return nil, fmt.Errorf("terrain base and amplitude must be non-negative")
		}
		if t.Frequency <= 0 {
			t.Frequency = 0.05
		}
	}
	return sc, nil
}

// Apply stamps the terrain and scattered grains into g.
func (sc *Scenario) Apply(g *core.PackedGrid) {
	if sc.Terrain != nil {
		sc.Terrain.Apply(g)
	}
	if sc.Scatter != nil {
		sc.Scatter.Apply(g)
	}
}

// Heights returns the wall column height for every x in [0, n).
func (t *Terrain) Heights(n int) []int {
	noise := perlin.NewPerlin(2, 2, 3, t.Seed)
	heights := make([]int, n)
	for x := range heights {
		v := noise.Noise1D(float64(x) * t.Frequency)
		h := t.Base + int(math.Round(v*t.Amplitude))
		heights[x] = min(max(h, 0), n)
	}
	return heights
}

// Apply fills each column from the floor up to its height with wall.
func (t *Terrain) Apply(g *core.PackedGrid) {
	n := g.Size()
	for x, h := range t.Heights(n) {
		for y := n - h; y < n; y++ {
			g.Set(x, y, core.CodeWall)
		}
	}
}

// Apply places grains on air cells only.
func (s *Scatter) Apply(g *core.PackedGrid) {
	n := g.Size()
	maxY := s.MaxY
	if maxY <= 0 || maxY > n {
		maxY = n
	}
	rng := core.NewRNG(s.Seed)
	for i := 0; i < s.Count; i++ {
		x, y := rng.IntN(n), rng.IntN(maxY)
		if g.Get(x, y) == core.CodeAir {
			g.Set(x, y, core.CodeSand)
		}
	}
}

// InputAt returns the scripted input for tick. When strokes overlap the
// later one in the file wins.
func (sc *Scenario) InputAt(tick uint64) core.Input {
	var in core.Input
	for _, s := range sc.Strokes {
		if tick >= s.Tick && tick < s.Tick+s.Ticks {
			in = core.Input{Buttons: s.Buttons, X: s.X, Y: s.Y}
		}
	}
	return in
}

// LastTick returns the first tick after every stroke has ended.
func (sc *Scenario) LastTick() uint64 {
	var last uint64
	for _, s := range sc.Strokes {
		last = max(last, s.Tick+s.Ticks)
	}
	return last
}
