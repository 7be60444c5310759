// Package hack models the memory side of the Hack computer: a flat RAM of
// signed words with a bit-packed screen region and a single-word keyboard
// register mapped into it.
package hack

// Word is the addressable unit of RAM. The screen and keyboard contracts
// only use the low 16 bits; the full width matches the emulator's word size.
type Word = int32

const (
	// ScreenWidth and ScreenHeight are the logical display resolution.
	ScreenWidth  = 512
	ScreenHeight = 256

	// ScreenBase is the first RAM address of the framebuffer. Each word
	// packs 16 horizontal pixels, rows laid out top to bottom.
	ScreenBase = 16384

	// ScreenWords is the framebuffer length in words.
	ScreenWords = ScreenWidth * ScreenHeight / 16

	// KeyboardAddr holds the code of the currently held key, or 0.
	KeyboardAddr = ScreenBase + ScreenWords

	// RAMSize is the total machine RAM in words: the general-purpose
	// region, the screen, and the keyboard register.
	RAMSize = ScreenBase + ScreenWords + 1
)
