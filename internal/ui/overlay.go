//go:build ebiten

package ui

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"sand-ca/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const brushKey = "brush"

// Overlay draws the brush outline and an optional parameter panel on top of
// the chunk.
type Overlay struct {
	sim       core.Sim
	scale     int
	showStats bool
	showBrush bool

	params core.ParameterProvider
	setter core.IntParameterSetter
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	if scale <= 0 {
		scale = 1
	}
	o := &Overlay{sim: sim, scale: scale, showBrush: true}
	if p, ok := sim.(core.ParameterProvider); ok {
		o.params = p
	}
	if s, ok := sim.(core.IntParameterSetter); ok {
		o.setter = s
	}
	return o
}

// Update handles overlay toggles and brush resizing.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showStats = !o.showStats
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showBrush = !o.showBrush
	}
	if o.setter == nil {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketRight) {
		o.setter.SetIntParameter(brushKey, o.brushRadius()+1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft) {
		o.setter.SetIntParameter(brushKey, o.brushRadius()-1)
	}
}

func (o *Overlay) brushRadius() int {
	if o.params == nil {
		return 0
	}
	p, ok := o.params.Parameters().Find(brushKey)
	if !ok {
		return 0
	}
	r, err := strconv.Atoi(p.Value)
	if err != nil {
		return 0
	}
	return r
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if o.showBrush {
		if r := o.brushRadius(); r > 0 {
			x, y := ebiten.CursorPosition()
			s := float32(o.scale)
			vector.StrokeCircle(screen, float32(x), float32(y), float32(r)*s, 1, color.RGBA{R: 0x30, G: 0x68, B: 0x50, A: 0xc0}, false)
		}
	}
	if o.showStats && o.params != nil {
		ebitenutil.DebugPrintAt(screen, o.statsText(), 4, screen.Bounds().Dy()-16*o.lineCount())
	}
}

func (o *Overlay) lineCount() int {
	n := 0
	for _, g := range o.params.Parameters().Groups {
		n += len(g.Params)
	}
	return n + 1
}

func (o *Overlay) statsText() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s  %.0f TPS\n", o.sim.Name(), ebiten.ActualTPS())
	for _, g := range o.params.Parameters().Groups {
		for _, p := range g.Params {
			fmt.Fprintf(&b, "%s %s: %s\n", g.Name, p.Label, p.Value)
		}
	}
	return b.String()
}
