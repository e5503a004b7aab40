// Package term runs a chunk in a terminal. Each character cell shows two
// vertically stacked pixels using the upper half block, so a 160x160
// framebuffer needs 160 columns and 80 rows; anything larger than the
// terminal is cut off at the right and bottom.
package term

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"sand-ca/internal/app"
	"sand-ca/internal/core"
	"sand-ca/internal/render"
)

const (
	frameInterval = 16 * time.Millisecond
	upperHalf     = '▀'
)

// Host drives a session from a tcell screen.
type Host struct {
	session *app.Session
	screen  tcell.Screen
	pacer   *core.FixedStep
	colors  [4]tcell.Color
	pointer core.Input
}

// NewHost binds a session to an initialized screen.
func NewHost(s *app.Session, screen tcell.Screen) *Host {
	h := &Host{session: s, screen: screen, pacer: core.NewFixedStep(s.Config.TPS)}
	for i, c := range s.Palette {
		h.colors[i] = tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
	}
	return h
}

// MouseInput converts a tcell mouse event into grid input. The pointer
// addresses the upper pixel of the character cell.
func MouseInput(ev *tcell.EventMouse) core.Input {
	col, row := ev.Position()
	var buttons uint8
	mask := ev.Buttons()
	if mask&tcell.ButtonPrimary != 0 {
		buttons |= core.ButtonPrimary
	}
	if mask&tcell.ButtonSecondary != 0 {
		buttons |= core.ButtonSecondary
	}
	if mask&tcell.ButtonMiddle != 0 {
		buttons |= core.ButtonMiddle
	}
	return core.Input{Buttons: buttons, X: int16(col), Y: int16(row * 2)}
}

// Run polls events on a separate goroutine and ticks the session on the
// calling goroutine until the user quits or ctx is done. It does not log:
// the terminal belongs to the screen until the caller calls Fini.
func (h *Host) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 64)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			if !h.handleEvent(ev) {
				return nil
			}
		case <-ticker.C:
			if h.pacer.ShouldStep() {
				h.session.Advance(h.pointer)
			}
			h.Draw()
		}
	}
}

// handleEvent returns false when the user asked to quit.
func (h *Host) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
			return false
		case ev.Key() != tcell.KeyRune:
		case ev.Rune() == 'q':
			return false
		case ev.Rune() == ' ':
			h.session.TogglePause()
		case ev.Rune() == 'n':
			h.session.StepOnce()
		case ev.Rune() == 'r':
			h.session.Reset(h.session.Config.Seed)
		}
	case *tcell.EventMouse:
		h.pointer = MouseInput(ev)
	case *tcell.EventResize:
		h.screen.Sync()
	}
	return true
}

// Draw presents the session framebuffer and the label, then shows the screen.
func (h *Host) Draw() {
	fb := h.session.Present()
	cols, rows := h.screen.Size()
	for row := 0; row < rows && row*2 < fb.H; row++ {
		for col := 0; col < cols && col < fb.W; col++ {
			top := h.colors[fb.Pixel(col, row*2)]
			bottom := h.colors[fb.Pixel(col, row*2+1)]
			h.screen.SetContent(col, row, upperHalf, nil, tcell.StyleDefault.Foreground(top).Background(bottom))
		}
	}
	h.drawLabel(fb, cols)
	h.screen.Show()
}

func (h *Host) drawLabel(fb *render.Framebuffer, cols int) {
	style := tcell.StyleDefault.Foreground(h.colors[1]).Background(h.colors[0])
	col := 0
	for _, r := range h.session.Config.Label {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if col+w > cols || col+w > fb.W {
			return
		}
		h.screen.SetContent(col, 0, r, nil, style)
		col += w
	}
}
