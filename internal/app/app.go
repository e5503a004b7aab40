//go:build ebiten

package app

import (
	"image/color"

	"sand-ca/internal/core"
	"sand-ca/internal/render"
	"sand-ca/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// Game adapts a session to the ebiten.Game interface.
type Game struct {
	session *Session
	painter *render.FramebufferPainter
	overlay *ui.Overlay
	face    text.Face

	labelColor color.Color
	scale      int
}

// New constructs a Game for the provided session.
func New(s *Session) *Game {
	scale := s.Config.Scale
	if scale <= 0 {
		scale = 1
	}
	return &Game{
		session:    s,
		painter:    render.NewFramebufferPainter(s.Screen.W, s.Screen.H, s.Palette),
		overlay:    ui.NewOverlay(s.Sim, scale),
		face:       text.NewGoXFace(basicfont.Face7x13),
		labelColor: s.Palette[1],
		scale:      scale,
	}
}

// Update samples the mouse once and runs a full tick.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.session.Log.Info("quit requested", "tick", g.session.Tick)
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.session.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.session.StepOnce()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.session.Reset(g.session.Config.Seed)
	}

	g.overlay.Update()
	g.session.Advance(g.pointerInput())
	return nil
}

func (g *Game) pointerInput() core.Input {
	var buttons uint8
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		buttons |= core.ButtonPrimary
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) {
		buttons |= core.ButtonSecondary
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle) {
		buttons |= core.ButtonMiddle
	}
	x, y := ebiten.CursorPosition()
	return core.Input{Buttons: buttons, X: int16(x / g.scale), Y: int16(y / g.scale)}
}

// Draw presents the chunk, then the label and overlay.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Draw(screen, g.session.Present(), g.scale)

	op := &text.DrawOptions{}
	op.GeoM.Scale(float64(max(1, g.scale/2)), float64(max(1, g.scale/2)))
	op.ColorScale.ScaleWithColor(g.labelColor)
	text.Draw(screen, g.session.Config.Label, g.face, op)

	g.overlay.Draw(screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.session.Screen.W * g.scale, g.session.Screen.H * g.scale
}
