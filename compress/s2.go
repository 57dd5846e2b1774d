package compress

import (
	"io"

	"github.com/klauspost/compress/s2"
)

// newS2Reader wraps r with an S2 decompressor. The S2 frame format extends
// snappy's, so snappy framed streams decode here as well.
func newS2Reader(r io.Reader) (io.Reader, error) {
	return s2.NewReader(r), nil
}
