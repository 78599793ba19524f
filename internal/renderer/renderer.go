// Package renderer is the presentation surface for a chip8.VM: a pixelgl
// window that draws the VM's read-only display view and reports physical
// key transitions. It never touches VM internals directly — only the
// read-only ViewDisplay/HasDisplayUpdate accessors and the
// SetKeyPressed/SetKeyReleased methods spec.md §6 exposes to hosts.
package renderer

import (
	"fmt"
	"time"

	"github.com/nvestern/chippy-core/internal/chip8"
	"github.com/faiface/pixel"
	"github.com/faiface/pixel/imdraw"
	"github.com/faiface/pixel/pixelgl"
	"golang.org/x/image/colornames"
)

// keyRepeatInterval governs how quickly a held physical key re-fires
// SetKeyPressed while the window toolkit only reports discrete
// just-pressed/just-released edges.
const keyRepeatInterval = time.Second / 5

const (
	screenWidthPx  = 1024
	screenHeightPx = 768
)

// KeyMap is the hex-keypad-index -> physical-key mapping (the standard
// left-hand CHIP-8 layout).
var KeyMap = map[int]pixelgl.Button{
	0x1: pixelgl.Key1, 0x2: pixelgl.Key2, 0x3: pixelgl.Key3, 0xC: pixelgl.Key4,
	0x4: pixelgl.KeyQ, 0x5: pixelgl.KeyW, 0x6: pixelgl.KeyE, 0xD: pixelgl.KeyR,
	0x7: pixelgl.KeyA, 0x8: pixelgl.KeyS, 0x9: pixelgl.KeyD, 0xE: pixelgl.KeyF,
	0xA: pixelgl.KeyZ, 0x0: pixelgl.KeyX, 0xB: pixelgl.KeyC, 0xF: pixelgl.KeyV,
}

// Window wraps a pixelgl window with the key-repeat bookkeeping the host
// loop needs to translate toolkit key events into chip8 keypad edges.
type Window struct {
	*pixelgl.Window
	keysDown [16]*time.Ticker
}

// NewWindow opens a pixelgl window, with the base 1024x768 canvas scaled by
// factor (1 means exactly that base size; the 64x32 display is stretched to
// fill it).
func NewWindow(title string, scale float64) (*Window, error) {
	if scale <= 0 {
		scale = 1
	}
	cfg := pixelgl.WindowConfig{
		Title:  title,
		Bounds: pixel.R(0, 0, screenWidthPx*scale, screenHeightPx*scale),
		VSync:  true,
	}
	w, err := pixelgl.NewWindow(cfg)
	if err != nil {
		return nil, fmt.Errorf("renderer: opening window: %w", err)
	}
	return &Window{Window: w}, nil
}

// DrawGraphics paints the VM's current display view. It only reads from
// the view VM.ViewDisplay hands back; it never mutates VM state.
func (w *Window) DrawGraphics(display *chip8.Display) {
	w.Clear(colornames.Black)

	draw := imdraw.New(nil)
	draw.Color = pixel.RGB(1, 1, 1)

	bounds := w.Bounds()
	cellW := bounds.W() / float64(chip8.DisplayWidth)
	cellH := bounds.H() / float64(chip8.DisplayHeight)

	for row := 0; row < chip8.DisplayHeight; row++ {
		for col := 0; col < chip8.DisplayWidth; col++ {
			if !display[row][col] {
				continue
			}
			// Flip vertically: row 0 is the top of the CHIP-8 framebuffer
			// but pixel's Y axis grows upward.
			y := float64(chip8.DisplayHeight-1-row) * cellH
			x := float64(col) * cellW
			draw.Push(pixel.V(x, y))
			draw.Push(pixel.V(x+cellW, y+cellH))
			draw.Rectangle(0)
		}
	}

	draw.Draw(w)
	w.Update()
}

// PollKeys inspects every mapped physical key for just-pressed/
// just-released transitions and held-key repeats, invoking onPress/
// onRelease with the corresponding hex keypad index (0..15).
func (w *Window) PollKeys(onPress, onRelease func(index int)) {
	for index, button := range KeyMap {
		switch {
		case w.JustReleased(button):
			if w.keysDown[index] != nil {
				w.keysDown[index].Stop()
				w.keysDown[index] = nil
			}
			onRelease(index)
		case w.JustPressed(button):
			if w.keysDown[index] == nil {
				w.keysDown[index] = time.NewTicker(keyRepeatInterval)
			}
			onPress(index)
		}

		if w.keysDown[index] == nil {
			continue
		}
		select {
		case <-w.keysDown[index].C:
			onPress(index)
		default:
		}
	}
}
