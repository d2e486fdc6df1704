/*
Package clippy is a visual builder for CSS polygon clip paths. It wraps a single
element (an image in the bundled GUI), lets the user click on it to place the
polygon vertices and returns the resulting polygon coordinate list, expressed in
percentages of the element's size.

A clipping session goes through three phases, advanced by a single toggle control:

	idle -> clipping -> complete -> idle

Vertices are only accepted while clipping. Entering the complete phase freezes
the vertices and hands the finalized path to the caller exactly once.

The package provides a command line interface, which opens the source image in a
Gio window and writes the clip path of every completed session. To check the
supported flags type:

	$ clippy --help

The session state machine can also be used on its own:

	package main

	import (
		"fmt"

		"github.com/esimov/clippy"
	)

	func main() {
		c := clippy.NewClipper(
			clippy.WithBounds(clippy.Rect{Right: 200, Bottom: 100, Width: 200, Height: 100}),
			clippy.WithOnComplete(func(path string) {
				fmt.Println(clippy.Declaration(path))
			}),
		)
		c.Advance() // begin clipping
		c.Click(200, 0)
		c.Click(200, 100)
		c.Advance() // prints the clip-path declaration
	}
*/
package clippy
