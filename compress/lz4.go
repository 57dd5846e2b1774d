package compress

import (
	"io"

	"github.com/pierrec/lz4/v4"
)

// newLZ4Reader wraps r with an LZ4 frame decompressor.
func newLZ4Reader(r io.Reader) (io.Reader, error) {
	return lz4.NewReader(r), nil
}
