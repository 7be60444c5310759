package hack

import (
	"errors"
	"fmt"
	"sync/atomic"
)

// ErrOutOfRange reports an address outside the RAM.
var ErrOutOfRange = errors.New("address out of range")

// RAM is the shared memory region. The emulator goroutine writes it while
// the display goroutine reads it; every access goes through a word-level
// atomic so readers may observe stale frames but never torn words. That is
// the intended consistency level for a live display.
type RAM struct {
	words []int32
}

// NewRAM returns a zeroed RAM of size words.
func NewRAM(size int) *RAM {
	return &RAM{words: make([]int32, size)}
}

// Size returns the number of addressable words.
func (r *RAM) Size() int { return len(r.words) }

// At returns the word at addr. Panics if addr is outside the RAM;
// use CheckRange first for externally supplied addresses.
func (r *RAM) At(addr int) Word {
	return atomic.LoadInt32(&r.words[addr])
}

// Set stores val at addr.
func (r *RAM) Set(addr int, val Word) {
	atomic.StoreInt32(&r.words[addr], val)
}

// CheckRange validates an externally supplied [start, end) address range.
func (r *RAM) CheckRange(start, end int) error {
	if start < 0 || start > len(r.words) {
		return fmt.Errorf("%w: start %d (RAM size %d)", ErrOutOfRange, start, len(r.words))
	}
	if end < start || end > len(r.words) {
		return fmt.Errorf("%w: end %d (RAM size %d)", ErrOutOfRange, end, len(r.words))
	}
	return nil
}

// Load copies words into RAM starting at address 0, one atomic store per
// word, leaving the remainder untouched. It is how image files and live
// reloads enter memory.
func (r *RAM) Load(words []Word) error {
	if len(words) > len(r.words) {
		return fmt.Errorf("%w: image of %d words exceeds RAM size %d", ErrOutOfRange, len(words), len(r.words))
	}
	for i, w := range words {
		atomic.StoreInt32(&r.words[i], w)
	}
	return nil
}

// Snapshot copies the [start, end) range out of RAM.
func (r *RAM) Snapshot(start, end int) ([]Word, error) {
	if err := r.CheckRange(start, end); err != nil {
		return nil, err
	}
	out := make([]Word, end-start)
	for i := range out {
		out[i] = atomic.LoadInt32(&r.words[start+i])
	}
	return out, nil
}
