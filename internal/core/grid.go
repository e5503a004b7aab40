package core

// Particle codes stored in a PackedGrid. Code 3 is never written.
const (
	CodeAir  uint8 = 0
	CodeSand uint8 = 1
	CodeWall uint8 = 2
)

const (
	cellsPerByte = 4
	bitsPerCell  = 2
	cellMask     = 0b11
)

// PackedGrid stores a square grid of 2-bit cell codes, four cells per byte,
// in the same layout as a 2bpp framebuffer.
type PackedGrid struct {
	n    int
	data []uint8
}

// NewPackedGrid allocates an n*n grid filled with air. The side length is
// rounded up to a multiple of four so every row starts on a byte boundary.
func NewPackedGrid(n int) *PackedGrid {
	if n <= 0 {
		n = cellsPerByte
	}
	if r := n % cellsPerByte; r != 0 {
		n += cellsPerByte - r
	}
	return &PackedGrid{n: n, data: make([]uint8, n*n/cellsPerByte)}
}

// Size returns the side length of the grid.
func (g *PackedGrid) Size() int { return g.n }

// Bytes exposes the packed backing slice.
func (g *PackedGrid) Bytes() []uint8 { return g.data }

// InBounds reports whether (x, y) addresses a stored cell.
func (g *PackedGrid) InBounds(x, y int) bool {
	return x >= 0 && x < g.n && y >= 0 && y < g.n
}

// Get returns the code at (x, y). Coordinates outside the grid read as wall.
func (g *PackedGrid) Get(x, y int) uint8 {
	if !g.InBounds(x, y) {
		return CodeWall
	}
	i := (y*g.n + x) / cellsPerByte
	shift := uint(x%cellsPerByte) * bitsPerCell
	return (g.data[i] >> shift) & cellMask
}

// Set writes the low two bits of code at (x, y). Writes outside the grid are
// dropped.
func (g *PackedGrid) Set(x, y int, code uint8) {
	if !g.InBounds(x, y) {
		return
	}
	i := (y*g.n + x) / cellsPerByte
	shift := uint(x%cellsPerByte) * bitsPerCell
	mask := uint8(cellMask << shift)
	g.data[i] = (code&cellMask)<<shift | g.data[i]&^mask
}

// Count returns how many cells currently hold code.
func (g *PackedGrid) Count(code uint8) int {
	code &= cellMask
	total := 0
	for _, b := range g.data {
		for k := 0; k < cellsPerByte; k++ {
			if (b>>(uint(k)*bitsPerCell))&cellMask == code {
				total++
			}
		}
	}
	return total
}

// Clear fills the grid with air.
func (g *PackedGrid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}
