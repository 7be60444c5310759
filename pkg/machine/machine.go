// Package machine provides stand-in implementations of the hack.Machine
// contract: producers that allocate and publish a RAM so the display and
// dump tools have something to observe. Running actual Hack programs is the
// job of an external emulator wired in through the same contract.
package machine

import (
	"fmt"

	"github.com/pcardune/hackvm/pkg/hack"
)

// Image is a Machine that boots from a RAM image file: it loads the image,
// publishes the RAM, and reports Status as its exit code. The memory stays
// static after boot, which is exactly what the dump tool and the screen
// viewer need.
type Image struct {
	words []hack.Word

	// Status is the exit code Run reports. Zero unless the caller says
	// otherwise.
	Status int
}

// NewImage returns an Image machine booting from the given words.
func NewImage(words []hack.Word) (*Image, error) {
	if len(words) > hack.RAMSize {
		return nil, fmt.Errorf("image of %d words exceeds RAM size %d", len(words), hack.RAMSize)
	}
	return &Image{words: words}, nil
}

// LoadImage returns an Image machine booting from the RAM image at path.
func LoadImage(path string) (*Image, error) {
	words, err := hack.ReadImage(path)
	if err != nil {
		return nil, err
	}
	return NewImage(words)
}

// Run implements hack.Machine.
func (m *Image) Run(publish func(*hack.RAM)) int {
	ram := hack.NewRAM(hack.RAMSize)
	if err := ram.Load(m.words); err != nil {
		// NewImage/LoadImage bound the size already.
		panic(err)
	}
	publish(ram)
	return m.Status
}
