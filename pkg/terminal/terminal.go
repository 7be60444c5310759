// Package terminal renders the Hack screen as text for hosts without a
// window, downsampling pixel blocks to characters.
package terminal

import (
	"strings"
	"time"

	tm "github.com/buger/goterm"

	"github.com/pcardune/hackvm/pkg/hack"
)

const (
	inkChar   = '█'
	paperChar = ' '
)

// View renders the framebuffer into a character grid. Each Step×Step pixel
// block becomes one character: ink if any pixel in the block is ink.
type View struct {
	// Step is the downsampling factor. Zero means 8, which fits the
	// 512×256 screen into 64×32 characters.
	Step int
}

func (v *View) step() int {
	if v.Step <= 0 {
		return 8
	}
	return v.Step
}

// Render returns the current screen contents as Step-downsampled text,
// one line per block row.
func (v *View) Render(ram *hack.RAM) string {
	step := v.step()
	wordsPerRow := hack.ScreenWidth / 16

	var b strings.Builder
	for y := 0; y < hack.ScreenHeight; y += step {
		for x := 0; x < hack.ScreenWidth; x += step {
			ch := paperChar
		block:
			for dy := 0; dy < step && y+dy < hack.ScreenHeight; dy++ {
				for dx := 0; dx < step && x+dx < hack.ScreenWidth; dx++ {
					px := x + dx
					w := ram.At(hack.ScreenBase + (y+dy)*wordsPerRow + px/16)
					if uint16(w)&(1<<(px%16)) != 0 {
						ch = inkChar
						break block
					}
				}
			}
			b.WriteRune(ch)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Loop redraws the terminal at roughly 30 frames per second until stop is
// closed.
func (v *View) Loop(ram *hack.RAM, stop <-chan struct{}) {
	ticker := time.NewTicker(33 * time.Millisecond)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
		}
		tm.Clear()
		tm.MoveCursor(1, 1)
		tm.Print(v.Render(ram))
		tm.Flush()
	}
}
