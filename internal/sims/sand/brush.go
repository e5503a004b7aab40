package sand

import "sand-ca/internal/core"

// PaintCircle stamps code into every cell (cx+dx, cy+dy) with dx, dy in
// [-r, r) and dx*dx+dy*dy < r*r. Cells outside the grid are dropped by Set.
func PaintCircle(g *core.PackedGrid, cx, cy, r int, code uint8) {
	r2 := r * r
	for dy := -r; dy < r; dy++ {
		for dx := -r; dx < r; dx++ {
			if dx*dx+dy*dy >= r2 {
				continue
			}
			g.Set(cx+dx, cy+dy, code)
		}
	}
}

// brushCode maps the held buttons to the code to paint. Primary wins over
// secondary, which wins over middle.
func brushCode(in core.Input) (uint8, bool) {
	switch {
	case in.Pressed(core.ButtonPrimary):
		return core.CodeSand, true
	case in.Pressed(core.ButtonSecondary):
		return core.CodeAir, true
	case in.Pressed(core.ButtonMiddle):
		return core.CodeWall, true
	}
	return 0, false
}

// HandleInput paints with the brush at the pointer while a button is held.
// A pointer outside the chunk skips the stroke entirely.
func (s *Sand) HandleInput(in core.Input) {
	x, y := int(in.X), int(in.Y)
	if !s.grid.InBounds(x, y) {
		return
	}
	code, ok := brushCode(in)
	if !ok {
		return
	}
	PaintCircle(s.grid, x, y, s.cfg.BrushRadius, code)
}
