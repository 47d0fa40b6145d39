// Package main shows terminal mouse-wheel gestures live.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/frudas24/deskzoom/gesture"
	"github.com/frudas24/deskzoom/internal/termsrc"
)

// update is a gesture callback posted to the event loop.
type update struct {
	phase string
	g     gesture.Gesture
}

// main runs the terminal loop until q or Escape.
func main() {
	if err := run(); err != nil {
		log.Printf("fatal: %v", err)
		os.Exit(1)
	}
}

// run owns the screen. Gesture callbacks may come from the wheel idle timer,
// so they are posted back to the loop instead of drawing directly.
func run() error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.EnableMouse()

	src := termsrc.New()
	src.Resize(screen.Size())

	post := func(phase string) func(gesture.Gesture) {
		return func(g gesture.Gesture) {
			_ = screen.PostEvent(tcell.NewEventInterrupt(update{phase: phase, g: g}))
		}
	}
	dispose, err := gesture.Register(src.Runtime(), src.Surface(), gesture.Config{
		StartGesture: post("start"),
		DoGesture:    post("do"),
		EndGesture:   post("end"),
	})
	if err != nil {
		return err
	}
	defer dispose()

	draw(screen, update{phase: "idle", g: gesture.Gesture{Scale: 1}})
	for {
		switch ev := screen.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Rune() == 'q' {
				return nil
			}
		case *tcell.EventInterrupt:
			if u, ok := ev.Data().(update); ok {
				draw(screen, u)
			}
		default:
			if src.Handle(ev) {
				if _, ok := ev.(*tcell.EventResize); ok {
					screen.Sync()
				}
			}
		}
	}
}

// draw renders the latest gesture state.
func draw(screen tcell.Screen, u update) {
	screen.Clear()
	lines := []string{
		"wheel to pan, ctrl+wheel to zoom, q to quit",
		fmt.Sprintf("phase:       %s", u.phase),
		fmt.Sprintf("origin:      %.0f,%.0f", u.g.Origin.X, u.g.Origin.Y),
		fmt.Sprintf("translation: %.1f,%.1f", u.g.Translation.X, u.g.Translation.Y),
		fmt.Sprintf("scale:       %.3f", u.g.Scale),
	}
	for row, line := range lines {
		for col, r := range line {
			screen.SetContent(col, row, r, nil, tcell.StyleDefault)
		}
	}
	screen.Show()
}
