// Package input encodes keyboard events into the Hack keyboard register.
package input

import "github.com/pcardune/hackvm/pkg/hack"

// Key is a logical key identity, independent of the windowing library.
type Key int

const (
	KeyNone Key = iota
	KeySpace
	KeyLeft
	KeyUp
	KeyRight
	KeyDown
)

// codes maps the recognized keys to the register values the machine
// expects. Keys absent from this table are ignored on press.
var codes = map[Key]hack.Word{
	KeySpace: 32,
	KeyLeft:  130,
	KeyUp:    131,
	KeyRight: 132,
	KeyDown:  133,
}

// Code returns the register code for k, or false if k is not mapped.
func Code(k Key) (hack.Word, bool) {
	c, ok := codes[k]
	return c, ok
}

// Encoder writes key events into the keyboard register of a RAM. The
// register holds a single code: a new press overwrites whatever was there,
// and any release clears it to 0, even if a different key is still held.
// Machine programs depend on this single-key behavior.
type Encoder struct {
	ram *hack.RAM
}

// NewEncoder returns an Encoder bound to ram.
func NewEncoder(ram *hack.RAM) *Encoder {
	return &Encoder{ram: ram}
}

// KeyDown records a press of k. Unmapped keys leave the register untouched.
func (e *Encoder) KeyDown(k Key) {
	if c, ok := codes[k]; ok {
		e.ram.Set(hack.KeyboardAddr, c)
	}
}

// KeyUp records a release. The register is cleared no matter which key was
// released.
func (e *Encoder) KeyUp(Key) {
	e.ram.Set(hack.KeyboardAddr, 0)
}
