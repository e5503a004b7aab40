package core

import "testing"

func TestPackedGridOutOfRangeReadsWall(t *testing.T) {
	g := NewPackedGrid(160)
	coords := [][2]int{
		{-1, 0}, {0, -1}, {160, 0}, {0, 160}, {-5, -5}, {160, 160}, {1000, 3}, {3, -1000},
	}
	for _, c := range coords {
		if got := g.Get(c[0], c[1]); got != CodeWall {
			t.Fatalf("Get(%d,%d) = %d, expected wall", c[0], c[1], got)
		}
	}
}

func TestPackedGridOutOfRangeWriteIsNoop(t *testing.T) {
	g := NewPackedGrid(8)
	g.Set(3, 3, CodeSand)
	before := append([]uint8(nil), g.Bytes()...)

	for _, c := range [][2]int{{-1, 0}, {0, -1}, {8, 0}, {0, 8}, {8, 8}, {-1, 7}} {
		g.Set(c[0], c[1], CodeSand)
		g.Set(c[0], c[1], CodeWall)
	}
	for i, b := range g.Bytes() {
		if b != before[i] {
			t.Fatalf("byte %d changed from %#02x to %#02x", i, before[i], b)
		}
	}
}

func TestPackedGridRoundTrip(t *testing.T) {
	g := NewPackedGrid(16)
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			code := uint8((x + y*3) % 7)
			g.Set(x, y, code)
			if got := g.Get(x, y); got != code&0b11 {
				t.Fatalf("Get(%d,%d) = %d after Set %d", x, y, got, code)
			}
		}
	}
}

func TestPackedGridPreservesNeighbours(t *testing.T) {
	g := NewPackedGrid(8)
	g.Set(0, 0, CodeSand)
	g.Set(1, 0, CodeWall)
	g.Set(2, 0, CodeSand)
	g.Set(3, 0, CodeWall)
	g.Set(1, 0, CodeAir)

	want := []uint8{CodeSand, CodeAir, CodeSand, CodeWall}
	for x, code := range want {
		if got := g.Get(x, 0); got != code {
			t.Fatalf("cell (%d,0) = %d, expected %d", x, got, code)
		}
	}
	// x%4 selects bits low to high within the byte.
	if b := g.Bytes()[0]; b != 0b10_01_00_01 {
		t.Fatalf("packed byte = %08b", b)
	}
}

func TestPackedGridLayout(t *testing.T) {
	g := NewPackedGrid(160)
	if len(g.Bytes()) != 160*160/4 {
		t.Fatalf("storage = %d bytes", len(g.Bytes()))
	}
	g.Set(5, 2, CodeSand)
	idx := (2*160 + 5) / 4
	if g.Bytes()[idx] != 0b0100 {
		t.Fatalf("byte %d = %08b", idx, g.Bytes()[idx])
	}
	if g.Count(CodeSand) != 1 {
		t.Fatalf("sand count = %d", g.Count(CodeSand))
	}
	if g.Count(CodeAir) != 160*160-1 {
		t.Fatalf("air count = %d", g.Count(CodeAir))
	}
	g.Clear()
	if g.Count(CodeSand) != 0 {
		t.Fatal("Clear left sand behind")
	}
}

func TestNewPackedGridRoundsSize(t *testing.T) {
	if n := NewPackedGrid(10).Size(); n != 12 {
		t.Fatalf("size = %d, expected 12", n)
	}
	if n := NewPackedGrid(0).Size(); n != 4 {
		t.Fatalf("size = %d, expected 4", n)
	}
}
