package screen

import (
	"testing"

	"github.com/pcardune/hackvm/pkg/hack"
)

func TestDecodeWordBitOrder(t *testing.T) {
	// Bit 0 is the leftmost pixel of the chunk.
	bits := DecodeWord(1)
	if !bits[0] {
		t.Error("bit 0 of word 1: expected ink")
	}
	for j := 1; j < 16; j++ {
		if bits[j] {
			t.Errorf("bit %d of word 1: expected paper", j)
		}
	}

	bits = DecodeWord(hack.Word(int16(-32768))) // only bit 15 set
	for j := 0; j < 15; j++ {
		if bits[j] {
			t.Errorf("bit %d of 0x8000: expected paper", j)
		}
	}
	if !bits[15] {
		t.Error("bit 15 of 0x8000: expected ink")
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	for _, w := range []hack.Word{0, 1, -1, 7, -2, 100, 0x5555, 0x7FFF, -32768} {
		if got := EncodeWord(DecodeWord(w)); got != w {
			t.Errorf("round trip of %d: got %d", w, got)
		}
	}
}

func TestFrameUniform(t *testing.T) {
	ram := hack.NewRAM(hack.RAMSize)
	r := NewRenderer()

	// All-zero screen renders solid paper.
	img := r.Frame(ram)
	if img.Bounds().Dx() != hack.ScreenWidth || img.Bounds().Dy() != hack.ScreenHeight {
		t.Fatalf("frame size: expected %dx%d, got %v", hack.ScreenWidth, hack.ScreenHeight, img.Bounds())
	}
	for i := 0; i < len(img.Pix); i += 4 {
		if img.Pix[i] != r.Paper.R || img.Pix[i+1] != r.Paper.G || img.Pix[i+2] != r.Paper.B {
			t.Fatalf("pixel %d of zero screen: expected paper", i/4)
		}
	}

	// All-ones screen renders solid ink.
	for i := 0; i < hack.ScreenWords; i++ {
		ram.Set(hack.ScreenBase+i, -1)
	}
	img = r.Frame(ram)
	for i := 0; i < len(img.Pix); i += 4 {
		if img.Pix[i] != r.Ink.R || img.Pix[i+1] != r.Ink.G || img.Pix[i+2] != r.Ink.B {
			t.Fatalf("pixel %d of all-ones screen: expected ink", i/4)
		}
	}
}

func TestFramePixelPlacement(t *testing.T) {
	ram := hack.NewRAM(hack.RAMSize)
	r := NewRenderer()

	// Second word of the second row, bit 3: x = 16+3, y = 1.
	row := hack.ScreenWidth / 16
	ram.Set(hack.ScreenBase+row+1, 1<<3)

	img := r.Frame(ram)
	c := img.RGBAAt(19, 1)
	if c != r.Ink {
		t.Errorf("pixel (19,1): expected ink, got %v", c)
	}
	if got := img.RGBAAt(18, 1); got != r.Paper {
		t.Errorf("pixel (18,1): expected paper, got %v", got)
	}
	if got := img.RGBAAt(19, 0); got != r.Paper {
		t.Errorf("pixel (19,0): expected paper, got %v", got)
	}
}
