// Package main starts the DeskZoom server.
package main

import "flag"

// main is the entrypoint for the DeskZoom server.
func main() {
	debug := flag.Bool("debug", false, "Enable per-gesture debug logging")
	flag.Parse()

	if err := run(*debug); err != nil {
		logFatal(err)
	}
}
