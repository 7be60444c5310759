package hack

import (
	"encoding/binary"
	"fmt"
	"os"
)

// RAM image files are raw little-endian 32-bit words, address 0 first.
// They are how screen dumps and machine states move between the tools.

// ReadImage loads a RAM image file.
func ReadImage(path string) ([]Word, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if len(data)%4 != 0 {
		return nil, fmt.Errorf("ram image %q: size %d is not a whole number of words", path, len(data))
	}
	words := make([]Word, len(data)/4)
	for i := range words {
		words[i] = Word(binary.LittleEndian.Uint32(data[i*4:]))
	}
	return words, nil
}

// WriteImage saves words as a RAM image file.
func WriteImage(path string, words []Word) error {
	data := make([]byte, len(words)*4)
	for i, w := range words {
		binary.LittleEndian.PutUint32(data[i*4:], uint32(w))
	}
	return os.WriteFile(path, data, 0o644)
}
