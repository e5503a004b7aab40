package sand

import "sand-ca/internal/core"

// Boot stroke seeded by Reset: sand at y=0 for x in [bootX0, bootX1).
const (
	bootX0 = 80
	bootX1 = 85
	bootY  = 0
)

// Sand is a single chunk of falling sand. The grid is updated in place.
type Sand struct {
	name  string
	cfg   Config
	grid  *core.PackedGrid
	tick  uint64
	moved int
}

// New creates a sand chunk with the provided configuration. The grid starts
// empty; call Reset to seed the boot stroke.
func New(cfg Config) *Sand {
	if cfg.BrushRadius <= 0 {
		cfg.BrushRadius = DefaultConfig().BrushRadius
	}
	grid := core.NewPackedGrid(cfg.Size)
	cfg.Size = grid.Size()
	return &Sand{name: "sand", cfg: cfg, grid: grid}
}

// Name returns the simulation identifier.
func (s *Sand) Name() string { return s.name }

// Size returns the chunk dimensions.
func (s *Sand) Size() core.Size { return core.Size{W: s.cfg.Size, H: s.cfg.Size} }

// Cells exposes the packed 2bpp grid.
func (s *Sand) Cells() []uint8 { return s.grid.Bytes() }

// Grid exposes the underlying packed grid.
func (s *Sand) Grid() *core.PackedGrid { return s.grid }

// Config returns the active configuration.
func (s *Sand) Config() Config { return s.cfg }

// Tick returns the number of steps taken since the last Reset.
func (s *Sand) Tick() uint64 { return s.tick }

// Moved returns how many particles moved during the last Step.
func (s *Sand) Moved() int { return s.moved }

// LeftToRight reports the sweep direction of the next Step. Even ticks scan
// left to right and prefer the right diagonal.
func (s *Sand) LeftToRight() bool { return s.tick%2 == 0 }

// Reset clears the chunk and seeds the boot stroke. The seed is unused; the
// start state is fixed.
func (s *Sand) Reset(seed int64) {
	s.grid.Clear()
	s.tick = 0
	s.moved = 0
	for x := bootX0; x < bootX1; x++ {
		s.grid.Set(x, bootY, core.CodeSand)
	}
}

// Update runs one full tick: input first, then the gravity step.
func (s *Sand) Update(in core.Input) {
	s.HandleInput(in)
	s.Step()
}

// Step advances the chunk by one tick. Rows are visited bottom-up so a
// particle moves at most once per tick.
func (s *Sand) Step() {
	n := s.cfg.Size
	ltr := s.LeftToRight()
	dir := 1
	if !ltr {
		dir = -1
	}
	s.moved = 0
	for y := n - 1; y >= 0; y-- {
		for i := 0; i < n; i++ {
			x := i
			if !ltr {
				x = n - 1 - i
			}
			if s.updateCell(x, y, dir) {
				s.moved++
			}
		}
	}
	s.tick++
}

func (s *Sand) updateCell(x, y, dir int) bool {
	p := Lookup(s.grid.Get(x, y))
	if !p.HasGravity {
		return false
	}
	if s.move(x, y, x, y+1, p) {
		return true
	}
	if !s.cfg.Diagonal {
		return false
	}
	return s.move(x, y, x+dir, y+1, p) || s.move(x, y, x-dir, y+1, p)
}

// move relocates p from (x, y) to (tx, ty) when the target holds air.
// Targets outside the grid read as wall and never accept a particle.
func (s *Sand) move(x, y, tx, ty int, p ParticleType) bool {
	if s.grid.Get(tx, ty) != core.CodeAir {
		return false
	}
	s.grid.Set(x, y, core.CodeAir)
	s.grid.Set(tx, ty, p.Color)
	return true
}

func init() {
	core.Register("sand", func(cfg map[string]string) core.Sim {
		return New(FromMap(DefaultConfig(), cfg))
	})
	core.Register("sand-classic", func(cfg map[string]string) core.Sim {
		s := New(FromMap(ClassicConfig(), cfg))
		s.name = "sand-classic"
		return s
	})
}
