//go:build ebiten

package render

import "github.com/hajimehoshi/ebiten/v2"

// FramebufferPainter uploads a 2bpp framebuffer into an RGBA image.
type FramebufferPainter struct {
	w, h    int
	img     *ebiten.Image
	buf     []byte
	palette Palette
}

// NewFramebufferPainter allocates a painter for a w*h framebuffer.
func NewFramebufferPainter(w, h int, palette Palette) *FramebufferPainter {
	return &FramebufferPainter{
		w:       w,
		h:       h,
		img:     ebiten.NewImage(w, h),
		buf:     make([]byte, 4*w*h),
		palette: palette,
	}
}

// Draw expands fb through the palette and draws it scaled onto dst.
func (p *FramebufferPainter) Draw(dst *ebiten.Image, fb *Framebuffer, scale int) {
	if fb.W != p.w || fb.H != p.h {
		return
	}
	FillPaletteRGBA(p.buf, fb, p.palette)
	p.img.WritePixels(p.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(p.img, op)
}
