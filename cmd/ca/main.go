//go:build ebiten

package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"sand-ca/internal/app"
	_ "sand-ca/internal/sims/sand"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	session, err := app.Boot("ca", os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	game := app.New(session)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("sand-ca — " + session.Sim.Name())
	ebiten.SetTPS(session.Config.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		session.Log.Error("game loop failed", "err", err)
		os.Exit(1)
	}
	session.Log.Info("shutdown", "tick", session.Tick)
}
