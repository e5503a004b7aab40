package render

import (
	"slices"
	"testing"
)

func patternSprite(w, h int) []byte {
	src := make([]byte, w*h/4)
	for i := range src {
		src[i] = byte(i*37) & 0b10_01_10_01
	}
	return src
}

func TestBlitFullCopyReproducesPattern(t *testing.T) {
	src := patternSprite(160, 160)
	fb := NewScreen()
	Blit(fb, src, 0, 0, 160, 160)
	if !slices.Equal(fb.Pix, src) {
		t.Fatal("full blit did not reproduce the source bytes")
	}
}

func TestBlitClipsNegativeOffset(t *testing.T) {
	src := patternSprite(16, 8)
	fb := NewFramebuffer(16, 8)
	Blit(fb, src, -4, -2, 16, 8)

	// Destination row 0 holds source row 2 starting one byte in.
	for row := 0; row < 6; row++ {
		for b := 0; b < 3; b++ {
			want := src[(row+2)*4+1+b]
			if got := fb.Pix[row*4+b]; got != want {
				t.Fatalf("row %d byte %d = %#02x, expected %#02x", row, b, got, want)
			}
		}
		if fb.Pix[row*4+3] != 0 {
			t.Fatalf("row %d wrote past the visible width", row)
		}
	}
	for i := 6 * 4; i < len(fb.Pix); i++ {
		if fb.Pix[i] != 0 {
			t.Fatalf("byte %d written below the visible height", i)
		}
	}
}

func TestBlitClipsToSurface(t *testing.T) {
	src := patternSprite(16, 16)
	for i := range src {
		src[i] = 0xff
	}
	fb := NewFramebuffer(16, 16)
	Blit(fb, src, 8, 12, 16, 16)

	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			want := uint8(0)
			if x >= 8 && y >= 12 {
				want = 3
			}
			if got := fb.Pixel(x, y); got != want {
				t.Fatalf("pixel (%d,%d) = %d, expected %d", x, y, got, want)
			}
		}
	}
}

func TestBlitOutsideSurfaceIsNoop(t *testing.T) {
	src := patternSprite(16, 16)
	fb := NewFramebuffer(16, 16)
	Blit(fb, src, 16, 0, 16, 16)
	Blit(fb, src, 0, 20, 16, 16)
	Blit(fb, src, -16, 0, 16, 16)
	for i, b := range fb.Pix {
		if b != 0 {
			t.Fatalf("byte %d written by an off-surface blit", i)
		}
	}
}

func TestFillPaletteRGBA(t *testing.T) {
	fb := NewFramebuffer(4, 1)
	fb.Pix[0] = 0b11_10_01_00
	buf := make([]byte, 4*4)
	FillPaletteRGBA(buf, fb, DefaultPalette)
	for x := 0; x < 4; x++ {
		col := DefaultPalette[x]
		got := buf[x*4 : x*4+4]
		if !slices.Equal(got, []byte{col.R, col.G, col.B, col.A}) {
			t.Fatalf("pixel %d = %v, expected %v", x, got, col)
		}
	}
}

func TestParsePaletteKeepsDefaults(t *testing.T) {
	p := ParsePalette([]uint32{0x112233})
	if p[0].R != 0x11 || p[0].G != 0x22 || p[0].B != 0x33 {
		t.Fatalf("entry 0 = %v", p[0])
	}
	if p[1] != DefaultPalette[1] {
		t.Fatalf("entry 1 = %v", p[1])
	}
}
