package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"

	"sand-ca/internal/app"
	_ "sand-ca/internal/sims/sand"
	"sand-ca/internal/term"
)

func main() {
	session, err := app.Boot("sand-term", os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		session.Log.Error("open terminal", "err", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		session.Log.Error("init terminal", "err", err)
		os.Exit(1)
	}
	screen.EnableMouse()
	screen.HideCursor()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err = term.NewHost(session, screen).Run(ctx)
	stop()
	screen.Fini()

	if err != nil && !errors.Is(err, context.Canceled) {
		session.Log.Error("terminal loop failed", "err", err)
		os.Exit(1)
	}
	session.Log.Info("shutdown", "tick", session.Tick)
}
