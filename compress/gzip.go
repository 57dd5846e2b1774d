package compress

import (
	"io"

	"github.com/klauspost/compress/gzip"
)

// newGzipReader wraps r with a gzip decompressor. Concatenated gzip
// members, the usual shape of daily archive files, read as one continuous
// stream.
func newGzipReader(r io.Reader) (io.Reader, error) {
	gr, err := gzip.NewReader(r)
	if err != nil {
		return nil, err
	}

	return gr, nil
}
