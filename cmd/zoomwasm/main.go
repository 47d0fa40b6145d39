//go:build js && wasm

// Package main recognizes gestures on the #stage element and applies them to
// its first child as a CSS transform.
package main

import (
	"fmt"
	"log"
	"syscall/js"

	"github.com/frudas24/deskzoom/gesture"
	"github.com/frudas24/deskzoom/gesture/dom"
)

// view is a committed pan/zoom transform.
type view struct {
	x, y, scale float64
}

// compose applies g on top of v, keeping the gesture origin fixed on screen.
func (v view) compose(g gesture.Gesture) view {
	s := g.Scale
	if s <= 0 {
		s = 1
	}
	return view{
		x:     g.Origin.X - (g.Origin.X-v.x)*s + g.Translation.X,
		y:     g.Origin.Y - (g.Origin.Y-v.y)*s + g.Translation.Y,
		scale: v.scale * s,
	}
}

// main registers the recognizer and blocks forever.
func main() {
	doc := js.Global().Get("document")
	stage := doc.Call("getElementById", "stage")
	if stage.IsNull() {
		log.Printf("zoomwasm: #stage not found")
		return
	}
	content := stage.Get("firstElementChild")
	if content.IsNull() {
		content = stage
	}

	surface, err := dom.SurfaceFor(stage)
	if err != nil {
		log.Printf("zoomwasm: %v", err)
		return
	}

	committed := view{scale: 1}
	render := func(v view) {
		content.Get("style").Set("transformOrigin", "0 0")
		content.Get("style").Set("transform", fmt.Sprintf("translate(%.2fpx, %.2fpx) scale(%.4f)", v.x, v.y, v.scale))
	}
	update := func(g gesture.Gesture) {
		render(committed.compose(g))
	}

	_, err = gesture.Register(dom.NewRuntime(), surface, gesture.Config{
		StartGesture: update,
		DoGesture:    update,
		EndGesture: func(g gesture.Gesture) {
			committed = committed.compose(g)
			render(committed)
		},
	})
	if err != nil {
		log.Printf("zoomwasm: %v", err)
		return
	}
	select {}
}
