package render

// ScreenSize is the side length of the default host framebuffer.
const ScreenSize = 160

// Framebuffer is a host-owned 2bpp surface, four pixels per byte with
// pixel x stored at bits (x%4)*2 of its byte.
type Framebuffer struct {
	W, H int
	Pix  []byte
}

// NewFramebuffer allocates a zeroed w*h surface. The width is rounded up to
// a multiple of four.
func NewFramebuffer(w, h int) *Framebuffer {
	if w <= 0 {
		w = 4
	}
	if h <= 0 {
		h = 1
	}
	if r := w % 4; r != 0 {
		w += 4 - r
	}
	return &Framebuffer{W: w, H: h, Pix: make([]byte, w*h/4)}
}

// NewScreen allocates the default 160x160 framebuffer.
func NewScreen() *Framebuffer { return NewFramebuffer(ScreenSize, ScreenSize) }

// Pixel returns the 2-bit value at (x, y), or 0 outside the surface.
func (fb *Framebuffer) Pixel(x, y int) uint8 {
	if x < 0 || y < 0 || x >= fb.W || y >= fb.H {
		return 0
	}
	i := (y*fb.W + x) / 4
	return (fb.Pix[i] >> (uint(x%4) * 2)) & 0b11
}

// Clear zeroes the surface.
func (fb *Framebuffer) Clear() {
	for i := range fb.Pix {
		fb.Pix[i] = 0
	}
}

// Blit copies a packed 2bpp w*h sprite into dst with its top-left corner at
// (x, y), clipped to dst. Rows are copied as whole bytes, so horizontal
// clipping happens in steps of four pixels.
func Blit(dst *Framebuffer, src []byte, x, y, w, h int) {
	dstX := max(x, 0)
	srcX := dstX - x
	dstY := max(y, 0)
	srcY := dstY - y

	visibleW := (min(w-srcX+dstX, dst.W) - dstX) / 4
	visibleH := min(h-srcY+dstY, dst.H) - dstY
	if visibleW <= 0 || visibleH <= 0 {
		return
	}

	for iy := 0; iy < visibleH; iy++ {
		srcI := ((srcY+iy)*w + srcX) / 4
		dstI := ((dstY+iy)*dst.W + dstX) / 4
		if srcI+visibleW > len(src) {
			return
		}
		copy(dst.Pix[dstI:dstI+visibleW], src[srcI:srcI+visibleW])
	}
}
