package hack

import (
	"fmt"
	"io"
)

// DefaultDumpLen is how many words Dump prints when the caller gives no
// range: the first 16 words of RAM, where the machine leaves its results.
const DefaultDumpLen = 16

// Dump writes the [start, end) range of RAM to w, one "index:value" line
// per word in ascending order. Values are printed signed.
func Dump(w io.Writer, r *RAM, start, end int) error {
	if err := r.CheckRange(start, end); err != nil {
		return err
	}
	for i := start; i < end; i++ {
		if _, err := fmt.Fprintf(w, "%d:%d\n", i, r.At(i)); err != nil {
			return err
		}
	}
	return nil
}
