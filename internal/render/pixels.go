package render

import "image/color"

// Palette maps the four 2bpp pixel values to colors.
type Palette [4]color.RGBA

// DefaultPalette is the classic four-shade green handheld palette.
var DefaultPalette = Palette{
	{R: 0xe0, G: 0xf8, B: 0xcf, A: 0xff},
	{R: 0x86, G: 0xc0, B: 0x6c, A: 0xff},
	{R: 0x30, G: 0x68, B: 0x50, A: 0xff},
	{R: 0x07, G: 0x18, B: 0x21, A: 0xff},
}

// ParsePalette builds a palette from up to four 0xRRGGBB values. Missing
// entries keep the default colors.
func ParsePalette(rgb []uint32) Palette {
	p := DefaultPalette
	for i, v := range rgb {
		if i >= len(p) {
			break
		}
		p[i] = color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}
	}
	return p
}

// FillPaletteRGBA expands the framebuffer into RGBA pixels in buf, which must
// hold 4*fb.W*fb.H bytes.
func FillPaletteRGBA(buf []byte, fb *Framebuffer, palette Palette) {
	for i, packed := range fb.Pix {
		for k := 0; k < 4; k++ {
			col := palette[(packed>>(uint(k)*2))&0b11]
			base := (i*4 + k) * 4
			buf[base+0] = col.R
			buf[base+1] = col.G
			buf[base+2] = col.B
			buf[base+3] = col.A
		}
	}
}
