package machine

import (
	"time"

	"github.com/pcardune/hackvm/pkg/hack"
)

// The demo square is one word (16 pixels) wide and tall, moving on the
// word-aligned column grid.
const (
	demoSide = 16
	demoCols = hack.ScreenWidth / 16
	demoRows = hack.ScreenHeight
)

// Demo is a Machine that bounces a filled square around the screen. The
// arrow keys steer it through the keyboard register and space ends the run,
// so it exercises the full producer/consumer path: concurrent screen writes
// on one side, event encoding on the other.
type Demo struct {
	// Tick is the delay between animation steps. Zero means 16ms.
	Tick time.Duration
}

// Run implements hack.Machine.
func (m *Demo) Run(publish func(*hack.RAM)) int {
	tick := m.Tick
	if tick == 0 {
		tick = 16 * time.Millisecond
	}

	ram := hack.NewRAM(hack.RAMSize)
	publish(ram)

	col, row := demoCols/2, demoRows/2
	dc, dr := 1, 2
	for {
		drawSquare(ram, col, row, -1)

		switch ram.At(hack.KeyboardAddr) {
		case 32: // space
			return 0
		case 130:
			dc = -1
		case 131:
			dr = -2
		case 132:
			dc = 1
		case 133:
			dr = 2
		}

		time.Sleep(tick)
		drawSquare(ram, col, row, 0)

		col += dc
		row += dr
		if col < 0 {
			col, dc = 0, 1
		}
		if col > demoCols-1 {
			col, dc = demoCols-1, -1
		}
		if row < 0 {
			row, dr = 0, 2
		}
		if row > demoRows-demoSide {
			row, dr = demoRows-demoSide, -2
		}
	}
}

// drawSquare fills the word-aligned square at (col, row) with val.
func drawSquare(ram *hack.RAM, col, row int, val hack.Word) {
	for r := 0; r < demoSide; r++ {
		ram.Set(hack.ScreenBase+(row+r)*demoCols+col, val)
	}
}
