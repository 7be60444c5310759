// Package screen decodes the bit-packed framebuffer region of Hack RAM
// into pixels and renders it to images.
package screen

import (
	"image"
	"image/color"

	"github.com/pcardune/hackvm/pkg/hack"
)

// DecodeWord unpacks one screen word into its 16 pixels, least-significant
// bit first: bit j is the j-th pixel from the left. Only the low 16 bits of
// the word are meaningful.
func DecodeWord(w hack.Word) [16]bool {
	var bits [16]bool
	block := uint16(w)
	for j := 0; j < 16; j++ {
		bits[j] = block&(1<<j) != 0
	}
	return bits
}

// EncodeWord packs 16 pixels back into a screen word, inverting DecodeWord.
// The result is sign-extended from the low 16 bits, so an all-ink chunk
// encodes to -1.
func EncodeWord(bits [16]bool) hack.Word {
	var block uint16
	for j := 0; j < 16; j++ {
		if bits[j] {
			block |= 1 << j
		}
	}
	return hack.Word(int16(block))
}

// Renderer turns the screen region of a RAM into RGBA frames. The frame
// buffer is reused across calls, so a returned image is only valid until
// the next Frame call.
type Renderer struct {
	Ink   color.RGBA // pixel color for bit value 1
	Paper color.RGBA // pixel color for bit value 0

	frame *image.RGBA
}

// NewRenderer returns a Renderer with the classic black-on-white palette.
func NewRenderer() *Renderer {
	return &Renderer{
		Ink:   color.RGBA{0x00, 0x00, 0x00, 0xFF},
		Paper: color.RGBA{0xFF, 0xFF, 0xFF, 0xFF},
	}
}

// Frame decodes the current screen contents into a ScreenWidth×ScreenHeight
// image. Words are read one at a time from the live RAM; a frame rendered
// while the machine is drawing may mix old and new words, which shows up as
// momentary tearing and nothing worse.
func (r *Renderer) Frame(ram *hack.RAM) *image.RGBA {
	if r.frame == nil {
		r.frame = image.NewRGBA(image.Rect(0, 0, hack.ScreenWidth, hack.ScreenHeight))
	}
	pix := r.frame.Pix
	p := 0
	for i := 0; i < hack.ScreenWords; i++ {
		block := uint16(ram.At(hack.ScreenBase + i))
		for j := 0; j < 16; j++ {
			c := r.Paper
			if block&(1<<j) != 0 {
				c = r.Ink
			}
			pix[p+0] = c.R
			pix[p+1] = c.G
			pix[p+2] = c.B
			pix[p+3] = c.A
			p += 4
		}
	}
	return r.frame
}
