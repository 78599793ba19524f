package main

import (
	"github.com/nvestern/chippy-core/cmd"
	"github.com/faiface/pixel/pixelgl"
)

func main() {
	// pixelgl needs to own the main thread, so cobra's Execute runs inside
	// pixelgl.Run rather than being called directly.
	pixelgl.Run(cmd.Execute)
}
